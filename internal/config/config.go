// Package config handles input from etc/main.toml
package config

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/GoPowerDNS-Admin/go-randstr/internal/logger"
	"github.com/GoPowerDNS-Admin/go-randstr/randstr"
)

const (
	// DefaultPath is searched for main.toml when no path is given.
	DefaultPath = "./etc/"

	// EnvConfigJSON names the env var holding a JSON document merged over the file.
	EnvConfigJSON = "RANDSTR_CONFIG_JSON"

	mainFile = "main.toml"
)

var validate = validator.New() //nolint:gochecknoglobals

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Title: "randstr",
		Log: logger.Log{
			LogLevel:    "warn",
			AppName:     "randstr",
			ServiceName: "randstr",
			Console:     logger.Console{Enabled: true, UseConsoleWriter: true},
		},
		Generator: Generator{
			Charset: randstr.DefaultCharset,
			Length:  randstr.DefaultLength,
			Count:   randstr.DefaultCount,
		},
	}
}

// ReadConfig from config file.
// An empty path reads DefaultPath and falls back to Default if there is no
// main.toml; an explicit path must contain one.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
		explicit      = path != ""
	)

	if !explicit {
		path = DefaultPath
	}

	v := viper.New()
	setDefaults(v, Default())
	v.SetConfigFile(filepath.Join(path, mainFile))

	if err = v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrap(err, "failed to read main config file")
		}
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validateConfig(&c)
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("title", d.Title)
	v.SetDefault("log.logLevel", d.Log.LogLevel)
	v.SetDefault("log.appName", d.Log.AppName)
	v.SetDefault("log.serviceName", d.Log.ServiceName)
	v.SetDefault("log.console.enabled", d.Log.Console.Enabled)
	v.SetDefault("log.console.useConsoleWriter", d.Log.Console.UseConsoleWriter)
	v.SetDefault("generator.charset", d.Generator.Charset)
	v.SetDefault("generator.length", d.Generator.Length)
	v.SetDefault("generator.count", d.Generator.Count)
}

// decodeAndMergeConfig merges the JSON document over c. Keys are matched
// against the same names as main.toml, ignoring case.
func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	var override map[string]any

	if err := json.Unmarshal([]byte(configAsJSON), &override); err != nil {
		return Config{}, errors.Wrap(err, "failed to read config json from env")
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &c,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to create config decoder")
	}

	if err = dec.Decode(override); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config json from env")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer

	t := toml.NewEncoder(&buffer)
	t.SetIndentTables(true)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validateConfig checks the struct tags and the reject pattern.
func validateConfig(c *Config) error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}

	if c.Generator.RejectPattern != "" {
		if _, err := regexp.Compile(c.Generator.RejectPattern); err != nil {
			return errors.Wrap(ErrInvalidRejectPattern, err.Error())
		}
	}

	return nil
}
