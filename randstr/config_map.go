package randstr

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// mapOptions lists the only keys ConfigFromMap recognises.
type mapOptions struct {
	Count   *int    `mapstructure:"count"`
	Prefix  *string `mapstructure:"prefix"`
	Suffix  *string `mapstructure:"suffix"`
	Length  *int    `mapstructure:"length"`
	Charset *string `mapstructure:"charset"`
	Unique  *bool   `mapstructure:"unique"`
}

// ConfigFromMap builds a Config from a generic option map, starting from
// NewConfig. Only count, prefix, suffix, length, charset and unique are
// applied; key matching is exact and every other key is ignored. Values are
// weakly typed, so "12" is accepted for length.
// The result is not validated, Generate does that.
func ConfigFromMap(options map[string]any) (Config, error) {
	var opts mapOptions

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		WeaklyTypedInput: true,
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
	})
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to create option decoder")
	}

	if err = decoder.Decode(options); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode options")
	}

	cfg := NewConfig()

	if opts.Count != nil {
		cfg = cfg.WithCount(*opts.Count)
	}

	if opts.Prefix != nil {
		cfg = cfg.WithPrefix(*opts.Prefix)
	}

	if opts.Suffix != nil {
		cfg = cfg.WithSuffix(*opts.Suffix)
	}

	if opts.Length != nil {
		cfg = cfg.WithLength(*opts.Length)
	}

	if opts.Charset != nil {
		cfg = cfg.WithCharset(*opts.Charset)
	}

	if opts.Unique != nil {
		cfg.unique = *opts.Unique
	}

	return cfg, nil
}
