package randstr

import (
	"io"
	"math"
	"math/bits"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/GoPowerDNS-Admin/go-randstr/internal/uniuri"
)

const (
	// byteSymbols is the largest charset sampled by mapping shuffled bytes.
	byteSymbols = 256

	// maxPrealloc caps the capacity reserved for the result up front.
	maxPrealloc = 1 << 16
)

// Option configures a Generator.
type Option func(*Generator)

// WithSource replaces crypto/rand as the random source. Intended for tests.
func WithSource(src io.Reader) Option {
	return func(g *Generator) {
		g.source = uniuri.NewReader(src)
	}
}

// WithLogger sets the logger used for batch diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// WithObserver registers o to receive the Stats of every Generate call.
func WithObserver(o Observer) Option {
	return func(g *Generator) {
		g.observer = o
	}
}

// Generator produces random strings according to a Config.
// A Generator must not be used by multiple goroutines at the same time.
type Generator struct {
	config   Config
	source   *uniuri.Reader
	logger   zerolog.Logger
	observer Observer

	// per call state
	accepted []string
	seen     map[string]struct{}
	rejected map[string]struct{}
	raw      []byte
}

// New returns a Generator for cfg.
func New(cfg Config, opts ...Option) *Generator {
	g := &Generator{
		config: cfg,
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.source == nil {
		g.source = uniuri.NewReader(nil)
	}

	return g
}

// UseConfig replaces the Config for subsequent Generate calls.
func (g *Generator) UseConfig(cfg Config) {
	g.config = cfg
}

// Config returns the active Config.
func (g *Generator) Config() Config {
	return g.config
}

// Generate validates the active Config and produces Count values.
// It fails with an *InvalidConfigError before drawing any random data, or
// with ErrCombinationsExhausted once the distinct rejected candidates reach
// the number of possible values. No partial result is returned on failure.
func (g *Generator) Generate() (Result, error) {
	cfg := g.config

	if err := cfg.Validate(); err != nil {
		g.observe(Stats{Err: err})

		return Result{}, err
	}

	g.reset(cfg)

	var (
		stats           Stats
		symbols         = []rune(cfg.charset)
		maxCombinations = combinations(distinct(symbols), cfg.length)
	)

	for len(g.accepted) < cfg.count {
		if uint64(len(g.rejected)) >= maxCombinations {
			stats.Accepted = len(g.accepted)
			stats.DistinctRejected = len(g.rejected)
			stats.Err = errors.WithStack(ErrCombinationsExhausted)

			g.logger.Warn().
				Int("accepted", stats.Accepted).
				Int("rejected", stats.DistinctRejected).
				Uint64("combinations", maxCombinations).
				Msg("combinations exhausted")
			g.observe(stats)

			return Result{}, stats.Err
		}

		candidate, err := g.candidate(cfg, symbols)
		if err != nil {
			stats.Err = err
			g.observe(stats)

			return Result{}, err
		}

		duplicate := false
		if cfg.unique {
			_, duplicate = g.seen[candidate]
		}

		// the predicate sees every candidate exactly once, duplicates included
		skipped := cfg.reject != nil && cfg.reject(candidate)

		if duplicate || skipped {
			if duplicate {
				stats.Duplicates++
			}

			if skipped {
				stats.Skipped++
			}

			g.rejected[candidate] = struct{}{}

			continue
		}

		g.accepted = append(g.accepted, candidate)
		if cfg.unique {
			g.seen[candidate] = struct{}{}
		}
	}

	stats.Accepted = len(g.accepted)
	stats.DistinctRejected = len(g.rejected)

	g.logger.Debug().
		Int("count", stats.Accepted).
		Int("duplicates", stats.Duplicates).
		Int("skipped", stats.Skipped).
		Msg("batch generated")
	g.observe(stats)

	return Result{values: g.accepted}, nil
}

// reset starts a fresh batch. The previous accepted slice is handed over to
// the caller's Result and never reused.
func (g *Generator) reset(cfg Config) {
	g.accepted = make([]string, 0, min(cfg.count, maxPrealloc))
	g.rejected = make(map[string]struct{})

	if cfg.unique {
		g.seen = make(map[string]struct{}, min(cfg.count, maxPrealloc))
	} else {
		g.seen = nil
	}
}

// candidate samples one decorated value. For charsets up to 256 symbols it
// draws length bytes, shuffles them and maps every byte modulo the charset
// size; larger charsets draw an unbiased index per symbol.
func (g *Generator) candidate(cfg Config, symbols []rune) (string, error) {
	var sb strings.Builder

	sb.Grow(len(cfg.prefix) + cfg.length*utf8.UTFMax + len(cfg.suffix))
	sb.WriteString(cfg.prefix)

	n := len(symbols)

	if n <= byteSymbols {
		if cap(g.raw) < cfg.length {
			g.raw = make([]byte, cfg.length)
		}

		raw := g.raw[:cfg.length]

		if _, err := g.source.Read(raw); err != nil {
			return "", err //nolint:wrapcheck
		}

		if err := g.source.Shuffle(raw); err != nil {
			return "", err //nolint:wrapcheck
		}

		for _, b := range raw {
			sb.WriteRune(symbols[int(b)%n])
		}
	} else {
		for loop := 0; loop < cfg.length; loop++ {
			i, err := g.source.Intn(n)
			if err != nil {
				return "", err //nolint:wrapcheck
			}

			sb.WriteRune(symbols[i])
		}
	}

	sb.WriteString(cfg.suffix)

	return sb.String(), nil
}

func (g *Generator) observe(stats Stats) {
	if g.observer != nil {
		g.observer.Observe(stats)
	}
}

// distinct returns the number of different runes in symbols. Repeated
// symbols only change the odds, not the number of possible values.
func distinct(symbols []rune) int {
	set := make(map[rune]struct{}, len(symbols))
	for _, r := range symbols {
		set[r] = struct{}{}
	}

	return len(set)
}

// combinations returns symbols^length, saturated at math.MaxUint64 which is
// treated as unbounded.
func combinations(symbols, length int) uint64 {
	if symbols <= 1 {
		return uint64(symbols)
	}

	total := uint64(1)

	for loop := 0; loop < length; loop++ {
		hi, lo := bits.Mul64(total, uint64(symbols))
		if hi != 0 {
			return math.MaxUint64
		}

		total = lo
	}

	return total
}
