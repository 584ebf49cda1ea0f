package structures

import (
	"net/http"
	"time"
)

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Url     string
	Handler http.Handler
}

type Server struct {
	Host string `yaml:"host" mapstructure:"host" validate:"required"`
	Port int    `yaml:"port" mapstructure:"port" validate:"required|uint|min:1"`
}

const (
	BackendFile        = "file"
	BackendPreferences = "preferences"
)

type Persistence struct {
	Backend         string `yaml:"backend" mapstructure:"backend" validate:"required|in:file,preferences"`
	Dir             string `yaml:"dir" mapstructure:"dir" validate:"required"`
	FileName        string `yaml:"fileName" mapstructure:"fileName"`
	PreferencesFile string `yaml:"preferencesFile" mapstructure:"preferencesFile"`
	Key             string `yaml:"key" mapstructure:"key"`
	Compress        bool   `yaml:"compress" mapstructure:"compress"`
}

type LoggerConfig struct {
	Level string `yaml:"level" mapstructure:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" mapstructure:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" mapstructure:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Size    int           `yaml:"size" mapstructure:"size"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

const (
	TriggerInterval = "interval"
	TriggerCalendar = "calendar"
)

type RemindersConfig struct {
	Trigger       string        `yaml:"trigger" mapstructure:"trigger" validate:"required|in:interval,calendar"`
	Delay         time.Duration `yaml:"delay" mapstructure:"delay"`
	Hour          int           `yaml:"hour" mapstructure:"hour" validate:"min:0|max:23"`
	Minute        int           `yaml:"minute" mapstructure:"minute" validate:"min:0|max:59"`
	Authorization string        `yaml:"authorization" mapstructure:"authorization" validate:"in:unknown,denied,authorized"`
	AutoGrant     bool          `yaml:"autoGrant" mapstructure:"autoGrant"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server          `yaml:"webServer" mapstructure:"webServer"`
	Persistence Persistence     `yaml:"persistence" mapstructure:"persistence"`
	Logger      LoggerConfig    `yaml:"logger" mapstructure:"logger"`
	Cache       CacheConfig     `yaml:"cache" mapstructure:"cache"`
	Metrics     MetricsConfig   `yaml:"metrics" mapstructure:"metrics"`
	Reminders   RemindersConfig `yaml:"reminders" mapstructure:"reminders"`
}
