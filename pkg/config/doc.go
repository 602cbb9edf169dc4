// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct tag parsing and
// github.com/joho/godotenv for .env files. Each config type is parsed once
// per process and served from a cache afterwards, so Load is cheap to call
// from several places:
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Parse failures wrap ErrParsingConfig and are not cached. Tests that modify
// the environment call ResetCache before loading again.
package config
