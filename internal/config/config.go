package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/jrschumacher/gpc-ping/internal/logger"
	"github.com/jrschumacher/gpc-ping/internal/validation"
	"github.com/spf13/viper"
)

const (
	EnvProd = "production"
	EnvDev  = "development"
	EnvTest = "test"
)

// Config holds application configuration loaded from environment variables or config file.
type Config struct {
	AppEnv   string `mapstructure:"app_env" default:"development" validate:"required,oneof=production development test"`
	Port     string `mapstructure:"port" default:"3000" validate:"required,numeric"`
	BasePath string `mapstructure:"base_path" default:"/gpc-ping" validate:"required,startswith=/"`

	// Validation settings
	DefaultSpecVersion string `mapstructure:"default_spec_version" default:"v1.6.0" validate:"required,specversion"`
	MaxTokenBytes      int    `mapstructure:"max_token_bytes" default:"16384" validate:"min=64"`
	ExposeClaims       bool   `mapstructure:"expose_claims" default:"true"`

	// HTTP server
	ReadTimeout     time.Duration `mapstructure:"read_timeout" default:"10s"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" default:"15s"`

	// Logging
	LogLevel  string `mapstructure:"log_level" default:"INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	LogFormat string `mapstructure:"log_format" default:"text" validate:"oneof=text json"`
}

// Load loads configuration from config file and environment variables using viper.
func Load() *Config {
	cfg := Config{}

	v := viper.New()
	v.AutomaticEnv()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	if err := defaults.Set(&cfg); err != nil {
		panic("failed to set struct defaults: " + err.Error())
	}

	// Bind env vars for each field
	typeOfCfg := reflect.TypeOf(cfg)
	for i := 0; i < typeOfCfg.NumField(); i++ {
		field := typeOfCfg.Field(i)
		key := field.Tag.Get("mapstructure")
		if key == "" {
			key = toSnakeCase(field.Name)
		}
		if err := v.BindEnv(key); err != nil {
			logger.Debug("Could not bind env var", "key", key, "error", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logger.Error("Error read config file", "error", err)
		}
		logger.Debug("No config file found, using environment variables")
	}

	if err := v.Unmarshal(&cfg); err != nil {
		logger.Warn("Could not unmarshal config", "error", err)
	}

	logger.Debug("Loaded config", "config", cfg.String())

	return &cfg
}

// Validate checks cfg against its struct tags. The specversion tag accepts
// only versions the validation engine supports.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.RegisterValidation("specversion", func(fl validator.FieldLevel) bool {
		return validation.Version(fl.Field().String()).IsValid()
	}); err != nil {
		return fmt.Errorf("register specversion validation: %w", err)
	}
	return validate.Struct(cfg)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// String returns a string representation of the config with secret fields redacted.
func (c *Config) String() string {
	v := reflect.ValueOf(*c)
	t := reflect.TypeOf(*c)
	var sb strings.Builder
	sb.WriteString("Config{")
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i).Interface()
		if field.Tag.Get("secret") == "true" {
			value = "***REDACTED***"
		}
		sb.WriteString(field.Name + ": " + toString(value))
		if i < t.NumField()-1 {
			sb.WriteString(", ")
		}
	}
	sb.WriteString("}")
	return sb.String()
}

func toString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// toSnakeCase converts CamelCase to snake_case
func toSnakeCase(str string) string {
	runes := []rune(str)
	var out []rune
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !unicode.IsUpper(prev) || nextLower {
				out = append(out, '_')
			}
		}
		out = append(out, unicode.ToLower(r))
	}
	return string(out)
}
