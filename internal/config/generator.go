package config

import (
	"regexp"

	"github.com/pkg/errors"

	"github.com/GoPowerDNS-Admin/go-randstr/randstr"
)

// RandConfig converts the generator settings into a randstr.Config.
// Reject and RejectPattern are combined into one reject predicate.
func (g Generator) RandConfig() (randstr.Config, error) {
	cfg, err := randstr.ConfigFromMap(map[string]any{
		"charset": g.Charset,
		"length":  g.Length,
		"count":   g.Count,
		"prefix":  g.Prefix,
		"suffix":  g.Suffix,
		"unique":  g.Unique,
	})
	if err != nil {
		return randstr.Config{}, err //nolint:wrapcheck
	}

	var pattern *regexp.Regexp

	if g.RejectPattern != "" {
		if pattern, err = regexp.Compile(g.RejectPattern); err != nil {
			return randstr.Config{}, errors.Wrap(ErrInvalidRejectPattern, err.Error())
		}
	}

	if len(g.Reject) == 0 && pattern == nil {
		return cfg, nil
	}

	reject := make(map[string]struct{}, len(g.Reject))
	for _, v := range g.Reject {
		reject[v] = struct{}{}
	}

	return cfg.WithRejectPredicate(func(candidate string) bool {
		if _, ok := reject[candidate]; ok {
			return true
		}

		return pattern != nil && pattern.MatchString(candidate)
	}), nil
}
