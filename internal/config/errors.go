package config

import (
	"errors"
)

var (
	// ErrInvalidRejectPattern error if config generator.rejectPattern is not a valid regular expression.
	ErrInvalidRejectPattern = errors.New("toml config generator.rejectPattern is not a valid regular expression")

	// ErrInvalidConfig wraps every validation failure of the config file.
	ErrInvalidConfig = errors.New("invalid config")
)
