// Package config loads typed configuration from environment variables.
//
// A .env file in the working directory is read once on first use, then each
// struct type is parsed with caarlos0/env and cached, so every later Load of
// the same type returns the same values:
//
//	type ServerConfig struct {
//		Addr string `env:"APP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// MustLoad panics instead of returning an error and is meant for startup
// code. Reset drops the cache so tests can load again after changing the
// environment.
package config
