package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	// t.Setenv registers the restore, Unsetenv makes the variable
	// truly absent rather than empty
	t.Setenv("MINESWEEPER_LOG_LEVEL", "")
	os.Unsetenv("MINESWEEPER_LOG_LEVEL")
	t.Setenv("MINESWEEPER_LOG_FILE", "")
	t.Setenv("MINESWEEPER_BOARD_SIZE", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Empty(t, cfg.BoardSize)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("MINESWEEPER_LOG_LEVEL", "debug")
	t.Setenv("MINESWEEPER_LOG_FILE", "/tmp/minesweeper.log")
	t.Setenv("MINESWEEPER_BOARD_SIZE", "medium")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "/tmp/minesweeper.log", cfg.LogFile)
	assert.Equal(t, "medium", cfg.BoardSize)
}

func TestFromEnvInvalidLevel(t *testing.T) {
	t.Setenv("MINESWEEPER_LOG_LEVEL", "shouting")

	_, err := FromEnv()
	assert.Error(t, err)
}
