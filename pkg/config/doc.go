// Package config loads typed configuration from environment variables.
//
// Struct fields are described with caarlos0/env tags. A .env file in the
// working directory is loaded once before the first parse; variables already
// present in the environment win over the file.
//
//	type HTTP struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	cfg, err := config.Load[HTTP]()
package config
