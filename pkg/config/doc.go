// Package config loads typed configuration structs from environment
// variables (with optional .env support) and caches them per type.
//
// Each subsystem declares its own Config struct with `env` tags:
//
//	type Config struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
