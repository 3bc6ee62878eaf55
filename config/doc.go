// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Every setting is optional; missing values fall back to the markers used by
// Ekitan text exports.
package config
