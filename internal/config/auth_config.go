package config

import "github.com/spf13/viper"

// LoginRatePerMinute throttles login attempts when greater than zero.
// Zero keeps the historical behavior: no limit.
type AuthConfig struct {
	LoginRatePerMinute int `mapstructure:"login_rate_per_minute"`
}

func (config AuthConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("auth.login_rate_per_minute", "LOGIN_RATE_PER_MINUTE")
}
