// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file from the working directory on first use and
// uses the caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/feedback/core/config"
//
//	var account email.Config // FEEDBACK_FROM_EMAIL, FEEDBACK_PASSWORD, ...
//	if err := config.Load(&account); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure (useful for startup)
//	var server smtp.Config
//	config.MustLoad(&server)
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process:
//
//	var a, b email.Config
//	config.Load(&a) // reads the environment
//	config.Load(&b) // copies the cached value, a == b
//
// Different types are cached independently. A failed load is not cached.
package config
