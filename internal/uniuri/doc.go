// Package uniuri provides a buffered, cryptographically secure byte source with
// unbiased integer sampling and shuffling, used to draw random string symbols.
package uniuri
