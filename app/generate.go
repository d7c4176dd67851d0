package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/go-randstr/randstr"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

type generateOptions struct {
	length        int
	count         int
	charset       string
	prefix        string
	suffix        string
	unique        bool
	upper         bool
	lower         bool
	numbers       bool
	reject        []string
	rejectPattern string
	format        string
	metricsFile   string
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate random strings",
		Example: `  randstr generate --length 10 --count 5 --unique
  randstr generate --numbers --length 6 --reject 000000
  randstr generate --prefix inv_ --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.length, "length", "l", randstr.DefaultLength, "number of random symbols per value")
	f.IntVarP(&opts.count, "count", "n", randstr.DefaultCount, "number of values")
	f.StringVar(&opts.charset, "charset", randstr.DefaultCharset, "symbols to sample from")
	f.BoolVar(&opts.upper, "upper", false, "use A-Z only")
	f.BoolVar(&opts.lower, "lower", false, "use a-z only")
	f.BoolVar(&opts.numbers, "numbers", false, "use 0-9 only")
	f.StringVar(&opts.prefix, "prefix", "", "string prepended to every value")
	f.StringVar(&opts.suffix, "suffix", "", "string appended to every value")
	f.BoolVarP(&opts.unique, "unique", "u", false, "values of one batch must be distinct")
	f.StringArrayVar(&opts.reject, "reject", nil, "value that must never be returned (repeatable)")
	f.StringVar(&opts.rejectPattern, "reject-pattern", "", "regular expression; matching values are never returned")
	f.StringVarP(&opts.format, "format", "o", formatText, "output format: text or json")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write prometheus metrics to this textfile")

	cmd.MarkFlagsMutuallyExclusive("charset", "upper", "lower", "numbers")

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions) error {
	if opts.format != formatText && opts.format != formatJSON {
		return errors.Wrap(ErrUnknownFormat, opts.format)
	}

	gen := root.cfg.Generator
	flags := cmd.Flags()

	// flags win over the config file, but only if given
	if flags.Changed("length") {
		gen.Length = opts.length
	}

	if flags.Changed("count") {
		gen.Count = opts.count
	}

	if flags.Changed("charset") {
		gen.Charset = opts.charset
	}

	if flags.Changed("prefix") {
		gen.Prefix = opts.prefix
	}

	if flags.Changed("suffix") {
		gen.Suffix = opts.suffix
	}

	if flags.Changed("unique") {
		gen.Unique = opts.unique
	}

	if flags.Changed("reject-pattern") {
		gen.RejectPattern = opts.rejectPattern
	}

	gen.Reject = append(gen.Reject, opts.reject...)

	cfg, err := gen.RandConfig()
	if err != nil {
		return err //nolint:wrapcheck
	}

	switch {
	case opts.upper:
		cfg = cfg.UpperCaseOnly()
	case opts.lower:
		cfg = cfg.LowerCaseOnly()
	case opts.numbers:
		cfg = cfg.NumbersOnly()
	}

	g := randstr.New(cfg, randstr.WithLogger(log.Logger), randstr.WithObserver(root.collector))

	res, genErr := g.Generate()
	if genErr != nil {
		log.Error().Err(genErr).Msg("generation failed")
	} else {
		log.Info().Int("count", res.Len()).Int("length", cfg.Length()).Msg("strings generated")
	}

	metricsFile := opts.metricsFile
	if metricsFile == "" {
		metricsFile = root.cfg.Metrics.TextFile
	}

	if metricsFile != "" {
		if err = root.collector.WriteTextfile(metricsFile); err != nil {
			log.Warn().Err(err).Str("path", metricsFile).Msg("can't write metrics")
		}
	}

	if genErr != nil {
		return genErr //nolint:wrapcheck
	}

	return writeResult(cmd.OutOrStdout(), res, opts.format)
}

func writeResult(w io.Writer, res randstr.Result, format string) error {
	if format == formatJSON {
		return json.NewEncoder(w).Encode(res) //nolint:wrapcheck
	}

	for _, v := range res.Values() {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}
