// Package app implements the main application commands.
package app

import (
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/go-randstr/internal/config"
	"github.com/GoPowerDNS-Admin/go-randstr/internal/logger"
	"github.com/GoPowerDNS-Admin/go-randstr/internal/metrics"
)

// rootOptions is shared by all subcommands. It is populated before a
// subcommand runs.
type rootOptions struct {
	configPath string   // Path to the directory holding main.toml
	envFiles   []string // .env files loaded before the config is read

	cfg       config.Config
	collector *metrics.Collector
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "randstr",
		Short: "randstr generates cryptographically secure random strings",
		Long: `randstr generates random strings from a configurable charset with
optional prefix and suffix, batch generation, uniqueness within a batch
and rejection of unwanted values.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.load()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"directory holding main.toml (default ./etc/ if present)")
	rootCmd.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil,
		".env files to load before reading the config")

	rootCmd.AddCommand(newGenerateCmd(opts), newConfigCmd(opts))

	return rootCmd
}

// load reads env files and config, then sets up metrics and logging.
func (o *rootOptions) load() error {
	var err error

	if len(o.envFiles) > 0 {
		if err = godotenv.Load(o.envFiles...); err != nil {
			return errors.Wrap(err, "failed to load env file")
		}
	}

	if o.cfg, err = config.ReadConfig(o.configPath); err != nil {
		return err //nolint:wrapcheck
	}

	o.collector = metrics.New(o.cfg.Log.ServiceName)

	if err = logger.Init(o.cfg.Log, o.collector.Registry()); err != nil {
		return errors.Wrap(err, "failed to init logger")
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
