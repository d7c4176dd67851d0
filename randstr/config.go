package randstr

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	// CharsetUpperCase holds the latin upper case letters.
	CharsetUpperCase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// CharsetLowerCase holds the latin lower case letters.
	CharsetLowerCase = "abcdefghijklmnopqrstuvwxyz"
	// CharsetNumeric holds the decimal digits.
	CharsetNumeric = "0123456789"

	// DefaultCharset is used when no charset is configured (62 symbols).
	DefaultCharset = CharsetLowerCase + CharsetUpperCase + CharsetNumeric
	// DefaultLength is the number of sampled symbols per value (~95 bits of entropy).
	DefaultLength = 16
	// DefaultCount is the number of values per Generate call.
	DefaultCount = 1
)

var validate = validator.New() //nolint:gochecknoglobals

// RejectPredicate vetoes a decorated candidate by returning true.
type RejectPredicate func(candidate string) bool

// Config describes what a Generator produces. It is an immutable value:
// every With* method returns a modified copy, so one Config can be shared
// between Generators safely.
type Config struct {
	charset string
	length  int
	count   int
	prefix  string
	suffix  string
	unique  bool
	reject  RejectPredicate
}

// constraints mirrors Config with exported fields for the validator.
// Field order defines which violation is reported first.
type constraints struct {
	Charset string `validate:"required"`
	Length  int    `validate:"gte=1"`
	Count   int    `validate:"gte=1"`
}

// NewConfig returns a Config with the default charset, length and count.
func NewConfig() Config {
	return NewConfigLen(DefaultLength)
}

// NewConfigLen returns a default Config producing values of the given length.
func NewConfigLen(length int) Config {
	return Config{
		charset: DefaultCharset,
		length:  length,
		count:   DefaultCount,
	}
}

// WithCharset sets the symbols to sample from. Every rune is one symbol.
func (c Config) WithCharset(charset string) Config {
	c.charset = charset

	return c
}

// UpperCaseOnly restricts the charset to A-Z.
func (c Config) UpperCaseOnly() Config {
	return c.WithCharset(CharsetUpperCase)
}

// LowerCaseOnly restricts the charset to a-z.
func (c Config) LowerCaseOnly() Config {
	return c.WithCharset(CharsetLowerCase)
}

// NumbersOnly restricts the charset to 0-9.
func (c Config) NumbersOnly() Config {
	return c.WithCharset(CharsetNumeric)
}

// WithLength sets the number of sampled symbols, prefix and suffix excluded.
func (c Config) WithLength(length int) Config {
	c.length = length

	return c
}

// WithCount sets how many values a single Generate call returns.
func (c Config) WithCount(count int) Config {
	c.count = count

	return c
}

// WithPrefix sets the string prepended to every value.
func (c Config) WithPrefix(prefix string) Config {
	c.prefix = prefix

	return c
}

// WithSuffix sets the string appended to every value.
func (c Config) WithSuffix(suffix string) Config {
	c.suffix = suffix

	return c
}

// Unique requires the values of one batch to be pairwise distinct.
func (c Config) Unique() Config {
	c.unique = true

	return c
}

// NotUnique allows repeated values within a batch.
func (c Config) NotUnique() Config {
	c.unique = false

	return c
}

// WithRejectPredicate installs fn to veto candidates. A nil fn removes it.
func (c Config) WithRejectPredicate(fn RejectPredicate) Config {
	c.reject = fn

	return c
}

// Charset returns the configured symbols.
func (c Config) Charset() string { return c.charset }

// Length returns the number of sampled symbols per value.
func (c Config) Length() int { return c.length }

// Count returns the number of values per Generate call.
func (c Config) Count() int { return c.count }

// Prefix returns the decoration prepended to every value.
func (c Config) Prefix() string { return c.prefix }

// Suffix returns the decoration appended to every value.
func (c Config) Suffix() string { return c.suffix }

// IsUnique reports whether values of a batch must be distinct.
func (c Config) IsUnique() bool { return c.unique }

// RejectPredicate returns the installed predicate or nil.
func (c Config) RejectPredicate() RejectPredicate { return c.reject }

// Validate checks charset, length and count in that order and returns an
// *InvalidConfigError for the first violation.
func (c Config) Validate() error {
	err := validate.Struct(constraints{
		Charset: c.charset,
		Length:  c.length,
		Count:   c.count,
	})
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err //nolint:wrapcheck
	}

	if errs[0].Field() == "Charset" {
		return &InvalidConfigError{Reason: ReasonEmptyCharset}
	}

	return &InvalidConfigError{Reason: ReasonNonPositive, Field: strings.ToLower(errs[0].Field())}
}
