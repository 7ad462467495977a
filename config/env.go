package config

import (
	"os"
	"strconv"
	"time"
)

// EnvBool reports whether the environment variable parses as true
func EnvBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

// ResolveSeed picks the RNG seed: flag, then config, then wall clock
func ResolveSeed(flagSeed, cfgSeed uint64) uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if cfgSeed != 0 {
		return cfgSeed
	}
	return uint64(time.Now().UnixNano())
}
