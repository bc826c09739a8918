// Package config loads pixedit settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/pixgrid/editor"
	"github.com/sirupsen/logrus"
)

// DefaultEnvFile is read by Load when no file is named; it may be absent.
const DefaultEnvFile = ".env"

// Environment keys.
const (
	EnvLogLevel = "PIXEDIT_LOG_LEVEL"
	EnvPrompt   = "PIXEDIT_PROMPT"
	EnvMaxSize  = "PIXEDIT_MAX_SIZE"
)

// Config holds runtime settings for the pixedit binary.
type Config struct {
	LogLevel logrus.Level
	Prompt   string
	MaxSize  int
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel: logrus.WarnLevel,
		Prompt:   "> ",
		MaxSize:  editor.DefaultMaxSize,
	}
}

// Load reads the dotenv file at path and then the process environment.
// An empty path means DefaultEnvFile, which is skipped if it does not exist;
// a path named explicitly must exist. Variables already set in the
// environment win over file values.
func Load(path string) (Config, error) {
	optional := path == ""
	if optional {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if !optional || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, falling back to Default for unset keys.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	if v := getenv(EnvLogLevel); v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	if v := getenv(EnvPrompt); v != "" {
		cfg.Prompt = v
	}
	if v := getenv(EnvMaxSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("config: %s must be a positive integer, got %q", EnvMaxSize, v)
		}
		cfg.MaxSize = n
	}
	return cfg, nil
}
