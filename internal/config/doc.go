// Package config loads rlmetrics settings from an optional YAML file,
// RLMETRICS_* environment variables and command-line flags, in increasing
// order of precedence.
package config
