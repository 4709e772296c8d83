// Package config loads simulation settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Games    int          // number of matches to play
	Seed     uint64       // base seed; per-match seeds derive from it
	LogLevel logrus.Level
	DBPath   string // sqlite file; empty disables recording
	P0, P1   string // agent names for seats 0 and 1
}

func Load() (Config, error) {
	c := Config{
		DBPath: os.Getenv("JAIPUR_DB"),
		P0:     envOr("JAIPUR_P0", "random"),
		P1:     envOr("JAIPUR_P1", "random"),
	}

	games, err := strconv.Atoi(envOr("JAIPUR_GAMES", "100"))
	if err != nil || games < 1 {
		return Config{}, fmt.Errorf("invalid JAIPUR_GAMES %q: want a positive integer", os.Getenv("JAIPUR_GAMES"))
	}
	c.Games = games

	seed, err := strconv.ParseUint(envOr("JAIPUR_SEED", "1"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JAIPUR_SEED %q: %w", os.Getenv("JAIPUR_SEED"), err)
	}
	c.Seed = seed

	level, err := logrus.ParseLevel(envOr("JAIPUR_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid JAIPUR_LOG_LEVEL: %w", err)
	}
	c.LogLevel = level

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
