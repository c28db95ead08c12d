package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"strings"
	"telemetryd/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "TLMD_LOG_LEVEL")
	viper.BindEnv("database.url", "TLMD_DATABASE_URL")
	viper.BindEnv("database.maxConns", "TLMD_DATABASE_MAX_CONNS")
	viper.BindEnv("cache.enabled", "TLMD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "TLMD_CACHE_SIZE")
	viper.BindEnv("metrics.enabled", "TLMD_METRICS_ENABLED")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "TelemetryDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
