package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/currencydash/anchor/internal/model"

	"github.com/spf13/viper"
)

// cliConfig holds the dashboard-relevant configuration.
type cliConfig struct {
	BackendURL      string        `mapstructure:"backend-url"`
	UserID          string        `mapstructure:"user-id"`
	CheckTimeout    time.Duration `mapstructure:"check-timeout"`
	AnalysisTimeout time.Duration `mapstructure:"analysis-timeout"`
	Skin            string        `mapstructure:"skin"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("ANCHOR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("backend-url", model.DefaultBackendURL)
	v.SetDefault("user-id", model.DefaultUserID)
	v.SetDefault("check-timeout", model.DefaultCheckTimeout)
	v.SetDefault("analysis-timeout", model.DefaultAnalysisTimeout)
	v.SetDefault("skin", model.DefaultSkin)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "anchor", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
