package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
//
// Firebase settings are optional: when no project is configured the
// server runs in synthetic mode against an in-memory store, so a bare
// `go run ./cmd/server` always comes up.
type Config struct {
	Port                             string `mapstructure:"PORT"`
	GinMode                          string `mapstructure:"GIN_MODE"`
	DemoMode                         bool   `mapstructure:"DEMO_MODE"`
	FirebaseProjectID                string `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials     string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseServiceAccountJSONBase64 string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"`
	StorageBucket                    string `mapstructure:"STORAGE_BUCKET"`
	ClientURL                        string `mapstructure:"CLIENT_URL"`
	RedisAddr                        string `mapstructure:"REDIS_ADDR"`
	RedisPassword                    string `mapstructure:"REDIS_PASSWORD"`
	RedisDB                          int    `mapstructure:"REDIS_DB"`
	AMQPURL                          string `mapstructure:"AMQP_URL"`
	InviteQueueName                  string `mapstructure:"INVITE_QUEUE_NAME"`
}

// LoadConfig loads configuration from environment variables using Viper.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("DEMO_MODE", false)
	v.SetDefault("INVITE_QUEUE_NAME", "family-invitations")
	v.SetDefault("REDIS_DB", 0)

	v.BindEnv("PORT")
	v.BindEnv("GIN_MODE")
	v.BindEnv("DEMO_MODE")
	v.BindEnv("FIREBASE_PROJECT_ID")
	v.BindEnv("GOOGLE_APPLICATION_CREDENTIALS")
	v.BindEnv("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64")
	v.BindEnv("STORAGE_BUCKET")
	v.BindEnv("CLIENT_URL")
	v.BindEnv("REDIS_ADDR")
	v.BindEnv("REDIS_PASSWORD")
	v.BindEnv("REDIS_DB")
	v.BindEnv("AMQP_URL")
	v.BindEnv("INVITE_QUEUE_NAME")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}

	// A configured project without any credential source cannot work;
	// catch it here rather than at the first Firestore call.
	if cfg.FirebaseProjectID != "" && !cfg.DemoMode {
		if cfg.GoogleApplicationCredentials == "" && cfg.FirebaseServiceAccountJSONBase64 == "" {
			return nil, errors.New("FIREBASE_PROJECT_ID is set but neither GOOGLE_APPLICATION_CREDENTIALS nor FIREBASE_SERVICE_ACCOUNT_JSON_BASE64 is provided")
		}
		if cfg.StorageBucket == "" {
			cfg.StorageBucket = cfg.FirebaseProjectID + ".appspot.com"
		}
	}

	return &cfg, nil
}

// LiveConfigured reports whether a remote backend is configured at all.
// When false the server starts directly in synthetic mode.
func (c *Config) LiveConfigured() bool {
	return !c.DemoMode && c.FirebaseProjectID != ""
}
