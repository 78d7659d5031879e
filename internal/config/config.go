package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	envLogLevel  = "MINESWEEPER_LOG_LEVEL"
	envLogFile   = "MINESWEEPER_LOG_FILE"
	envBoardSize = "MINESWEEPER_BOARD_SIZE"
)

// Config holds the runtime options read from the environment. A .env
// file in the working directory is honored when present.
type Config struct {
	LogLevel  logrus.Level
	LogFile   string // rotating log file path; empty disables file logging
	BoardSize string // default preset label, overridable by flags
}

// FromEnv loads a Config from MINESWEEPER_* environment variables,
// defaulting to info-level logging on a Small board.
func FromEnv() (*Config, error) {
	_ = godotenv.Load() // a missing .env is fine

	cfg := &Config{
		LogLevel:  logrus.InfoLevel,
		LogFile:   os.Getenv(envLogFile),
		BoardSize: os.Getenv(envBoardSize),
	}
	if s, ok := os.LookupEnv(envLogLevel); ok {
		level, err := logrus.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envLogLevel, err)
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}

func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"log_level":  c.LogLevel.String(),
		"log_file":   c.LogFile,
		"board_size": c.BoardSize,
	}
}
