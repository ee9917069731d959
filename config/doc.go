// Package config loads the subsystem configuration from YAML and the
// environment. Values resolve in order: defaults, config file, .env file,
// process environment.
package config
