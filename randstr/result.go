package randstr

import (
	"encoding/json"
	"slices"
)

// Result holds the values of one Generate call in generation order.
// A batch of exactly one value is a single result: callers that configured
// Count 1 read it with Single, everyone else with Values.
type Result struct {
	values []string
}

// Single returns the value of a one value batch. ok is false for any other size.
func (r Result) Single() (value string, ok bool) {
	if len(r.values) != 1 {
		return "", false
	}

	return r.values[0], true
}

// Values returns a copy of all generated values.
func (r Result) Values() []string {
	return slices.Clone(r.values)
}

// Len returns the number of generated values.
func (r Result) Len() int {
	return len(r.values)
}

// MarshalJSON encodes a single result as a JSON string and any other
// result as a JSON array.
func (r Result) MarshalJSON() ([]byte, error) {
	if v, ok := r.Single(); ok {
		return json.Marshal(v) //nolint:wrapcheck
	}

	if r.values == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(r.values) //nolint:wrapcheck
}
