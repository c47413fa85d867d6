package config

import (
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {
	override := Config{
		Logger: LoggerConfig{
			LogLevel:   LevelDebug,
			AppName:    "override-app",
			OutputFile: "./logs/override.log",
		},
		Store: StoreConfig{
			Path:       "./data/override.db",
			Passphrase: "override-passphrase",
		},
		Metrics: MetricsConfig{
			Port: 9999,
		},
		Auth: AuthConfig{
			LoginRatePerMinute: 12,
		},
	}
	os.Setenv("CONFIG_PATH", "../../configs/config.yaml")

	os.Setenv("LOG_LEVEL", string(override.Logger.LogLevel))
	os.Setenv("APP_NAME", override.Logger.AppName)
	os.Setenv("LOG_OUTPUT_FILE", override.Logger.OutputFile)
	os.Setenv("STORE_PATH", override.Store.Path)
	os.Setenv("STORE_PASSPHRASE", override.Store.Passphrase)
	os.Setenv("METRICS_PORT", strconv.Itoa(override.Metrics.Port))
	os.Setenv("LOGIN_RATE_PER_MINUTE", strconv.Itoa(override.Auth.LoginRatePerMinute))

	cfg := Get()

	assert.Equal(t, override.Logger.LogLevel, cfg.Logger.LogLevel)
	assert.Equal(t, override.Logger.AppName, cfg.Logger.AppName)
	assert.Equal(t, override.Logger.OutputFile, cfg.Logger.OutputFile)
	assert.Equal(t, override.Store.Path, cfg.Store.Path)
	assert.Equal(t, override.Store.Passphrase, cfg.Store.Passphrase)
	assert.Equal(t, override.Metrics.Port, cfg.Metrics.Port)
	assert.Equal(t, override.Auth.LoginRatePerMinute, cfg.Auth.LoginRatePerMinute)
}
