package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"hotprospects/internal/structures"
	"path/filepath"
	"strings"
	"time"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("webServer.host", "127.0.0.1")
	v.SetDefault("webServer.port", 8090)
	v.SetDefault("persistence.backend", structures.BackendFile)
	v.SetDefault("persistence.fileName", "SavedPeople")
	v.SetDefault("persistence.preferencesFile", "preferences.json")
	v.SetDefault("persistence.key", "SaveData")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("cache.ttl", 30*time.Second)
	v.SetDefault("reminders.trigger", structures.TriggerInterval)
	v.SetDefault("reminders.delay", 5*time.Second)
	v.SetDefault("reminders.hour", 9)
	v.SetDefault("reminders.authorization", "unknown")

	v.BindEnv("logger.level", "HP_LOG_LEVEL")
	v.BindEnv("persistence.backend", "HP_PERSISTENCE_BACKEND")
	v.BindEnv("persistence.dir", "HP_PERSISTENCE_DIR")
	v.BindEnv("reminders.authorization", "HP_REMINDER_AUTHORIZATION")
	v.BindEnv("cache.enabled", "HP_CACHE_ENABLED")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "HotProspects"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
