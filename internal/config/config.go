package config

import (
	"os"
	"strconv"
)

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// BoardWidth and BoardHeight are the default board size for the CLI,
// overridable per run with flags.

func BoardWidth() int { return envInt("BOARD_WIDTH", 10) }

func BoardHeight() int { return envInt("BOARD_HEIGHT", 5) }

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
