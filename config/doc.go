// Package config loads typed configuration from YAML files and the
// environment, with .env file support. Structs declare their keys with
// mapstructure tags; environment variables override file values.
package config
