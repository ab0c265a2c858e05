// Package config provides configuration structures and utilities for macroscan.
// It defines the scan root, the allowlist of implemented macros, folder
// filtering, and report output preferences.
package config
