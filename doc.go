// Package main provides the randstr command line tool.
// It generates cryptographically secure random strings from a configurable
// charset, optionally decorated with a prefix and suffix, in batches that can
// be required to hold distinct values and that never contain rejected values.
// Defaults are read from etc/main.toml and can be overridden by flags.
package main
