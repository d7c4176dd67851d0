package config

import (
	"github.com/GoPowerDNS-Admin/go-randstr/internal/logger"
)

// Config overall data structure.
type Config struct {
	Title     string     `toml:"title" mapstructure:"title"`
	Log       logger.Log `toml:"log" mapstructure:"log"`
	Generator Generator  `toml:"generator" mapstructure:"generator"`
	Metrics   Metrics    `toml:"metrics" mapstructure:"metrics"`
}

// Generator holds the defaults of the generate command.
type Generator struct {
	Charset       string   `toml:"charset" mapstructure:"charset" validate:"required"`
	Length        int      `toml:"length" mapstructure:"length" validate:"gte=1"`
	Count         int      `toml:"count" mapstructure:"count" validate:"gte=1"`
	Prefix        string   `toml:"prefix" mapstructure:"prefix"`
	Suffix        string   `toml:"suffix" mapstructure:"suffix"`
	Unique        bool     `toml:"unique" mapstructure:"unique"`
	Reject        []string `toml:"reject" mapstructure:"reject"`               // exact values never returned
	RejectPattern string   `toml:"rejectPattern" mapstructure:"rejectPattern"` // values matching it are never returned
}

// Metrics implements the metrics settings.
type Metrics struct {
	TextFile string `toml:"textFile" mapstructure:"textFile"` // node_exporter textfile, empty disables it
}
