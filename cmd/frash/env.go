package main

import (
	"fmt"
	"strconv"

	"github.com/forestrie/go-frash/frash"
)

const (
	envLength    = "FRASH_LENGTH"
	envMaxLength = "FRASH_MAX_LENGTH"
	envLogLevel  = "FRASH_LOG_LEVEL"

	defaultLogLevel = "NOOP"
)

// envConfig holds the flag defaults that may be overridden from the
// environment, typically through a .env file.
type envConfig struct {
	length    int
	maxLength int
	logLevel  string
}

func envDefaults(getenv func(string) string) (envConfig, error) {
	cfg := envConfig{
		length:    frash.DefaultLength,
		maxLength: frash.DefaultMaxLength,
		logLevel:  defaultLogLevel,
	}

	var err error
	if cfg.length, err = envInt(getenv, envLength, cfg.length); err != nil {
		return envConfig{}, err
	}
	if cfg.maxLength, err = envInt(getenv, envMaxLength, cfg.maxLength); err != nil {
		return envConfig{}, err
	}
	if v := getenv(envLogLevel); v != "" {
		cfg.logLevel = v
	}
	return cfg, nil
}

func envInt(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", errUsage, key, v)
	}
	return n, nil
}
