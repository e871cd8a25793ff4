// Package config resolves runtime settings from flags, environment
// (VSTACK_*), an optional .env file and an optional vstack.yaml.
//
// Precedence (highest first): explicit flag, environment, config file,
// default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyScreen       = "screen"
	KeyTheme        = "theme"
	KeyAccountEmail = "account.email"
	KeySeed         = "seed"
	KeyDebugLog     = "debug_log"
	KeyLogLevel     = "log_level"

	envPrefix = "VSTACK"
)

type Config struct {
	Screen       string
	Theme        string
	AccountEmail string
	SeedPath     string
	DebugLog     string
	LogLevel     string
}

// Load builds a Config. configFile may be empty, in which case vstack.yaml is
// looked up in the working directory and $XDG_CONFIG_HOME/vstack (or
// ~/.config/vstack); a missing file is not an error. flags, when non-nil, are
// bound by their long names (e.g. --debug-log binds debug_log).
func Load(configFile string, flags *pflag.FlagSet) (Config, error) {
	loadDotEnv()

	v := viper.New()
	v.SetDefault(KeyScreen, "businessContext")
	v.SetDefault(KeyTheme, "auto")
	v.SetDefault(KeyAccountEmail, "john.doe@company.com")
	v.SetDefault(KeyLogLevel, "debug")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, flag := range map[string]string{
			KeyScreen:   "screen",
			KeyTheme:    "theme",
			KeySeed:     "seed",
			KeyDebugLog: "debug-log",
			KeyLogLevel: "log-level",
		} {
			if f := flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind --%s: %w", flag, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("vstack")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := userConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Screen:       strings.TrimSpace(v.GetString(KeyScreen)),
		Theme:        strings.ToLower(strings.TrimSpace(v.GetString(KeyTheme))),
		AccountEmail: strings.TrimSpace(v.GetString(KeyAccountEmail)),
		SeedPath:     strings.TrimSpace(v.GetString(KeySeed)),
		DebugLog:     strings.TrimSpace(v.GetString(KeyDebugLog)),
		LogLevel:     strings.TrimSpace(v.GetString(KeyLogLevel)),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Theme {
	case "auto", "light", "dark":
	default:
		return fmt.Errorf("invalid theme %q (want auto|light|dark)", c.Theme)
	}
	return nil
}

// loadDotEnv loads .env from the working directory if present. Variables
// already set in the environment win.
func loadDotEnv() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
}

func userConfigDir() (string, error) {
	if x := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); x != "" {
		return filepath.Join(x, "vstack"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vstack"), nil
}
