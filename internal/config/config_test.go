package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"JAIPUR_GAMES", "JAIPUR_SEED", "JAIPUR_LOG_LEVEL", "JAIPUR_DB", "JAIPUR_P0", "JAIPUR_P1"} {
		t.Setenv(k, "")
	}

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 100, c.Games)
	assert.Equal(t, uint64(1), c.Seed)
	assert.Equal(t, logrus.InfoLevel, c.LogLevel)
	assert.Empty(t, c.DBPath)
	assert.Equal(t, "random", c.P0)
	assert.Equal(t, "random", c.P1)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JAIPUR_GAMES", "25")
	t.Setenv("JAIPUR_SEED", "987654321")
	t.Setenv("JAIPUR_LOG_LEVEL", "debug")
	t.Setenv("JAIPUR_DB", "/tmp/matches.db")
	t.Setenv("JAIPUR_P0", "greedy")
	t.Setenv("JAIPUR_P1", "random")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, c.Games)
	assert.Equal(t, uint64(987654321), c.Seed)
	assert.Equal(t, logrus.DebugLevel, c.LogLevel)
	assert.Equal(t, "/tmp/matches.db", c.DBPath)
	assert.Equal(t, "greedy", c.P0)
	assert.Equal(t, "random", c.P1)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("JAIPUR_GAMES", "zero")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JAIPUR_GAMES", "0")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("JAIPUR_GAMES", "5")
	t.Setenv("JAIPUR_LOG_LEVEL", "loud")
	_, err = Load()
	assert.Error(t, err)
}
