package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
)

type StoreConfig struct {
	Path         string `mapstructure:"path"`
	Passphrase   string `mapstructure:"passphrase"`
	CacheEnabled bool   `mapstructure:"cache_enabled"`
}

func (config StoreConfig) validate() error {
	var errs []error

	if config.Path == "" {
		errs = append(errs, fmt.Errorf("missing variable: store path"))
	}
	if config.Passphrase == "" {
		errs = append(errs, fmt.Errorf("missing variable: store passphrase"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config StoreConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("store.path", "STORE_PATH")
	if err != nil {
		return err
	}

	return viper.BindEnv("store.passphrase", "STORE_PASSPHRASE")
}
