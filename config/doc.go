// Package config provides configuration loading and validation for
// applications built on flowkit.
//
// It uses Viper to load configuration from files and environment
// variables, supporting YAML files and .env overrides. AppConfig is the
// base every application embeds; it carries the logging and
// observability sections the library components consume.
//
// # Usage
//
//	type MyConfig struct {
//	    config.AppConfig `yaml:",inline" mapstructure:",squash"`
//	}
//	var cfg MyConfig
//	err := config.Load("my-app", &cfg)
//
// Environment variables override file values using underscore-separated
// paths (e.g., LOGGING_LEVEL, TRACING_ENDPOINT).
package config
