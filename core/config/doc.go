// Package config provides configuration management for the gradient tool.
//
// It utilizes Viper for loading configuration from environment variables,
// an optional config file (config.yaml) and a .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Gradient: search radius, gradient bounds, break threshold
//   - Cover: minimum shaft height and endpoint search radius
//   - Compat: compatibility strategy selection, rules and patterns
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Gradient.MinGradientPercent)
package config
