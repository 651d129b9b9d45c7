package config

import (
	"io"
	"time"
)

// Config defines read access to runtime configuration values.
//
// Implementations must be safe for concurrent reads after construction.
type Config interface {
	io.Closer

	// GetString retrieves the configuration value associated with the given key as a string.
	GetString(key string) string

	// GetInt retrieves the configuration value associated with the given key as an int.
	GetInt(key string) int

	// GetBool retrieves the configuration value associated with the given key as a bool.
	GetBool(key string) bool

	// GetFloat64 retrieves the configuration value associated with the given key as a float64.
	GetFloat64(key string) float64

	// GetSecond retrieves the configuration value associated with the given key as seconds.
	GetSecond(key string) time.Duration

	// GetArray retrieves the configuration value associated with the given key
	// as a comma-separated list.
	GetArray(key string) []string
}
