package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// insecureDefaultSecret is the placeholder shipped in example env files.
// Refusing it at startup keeps a forgotten deployment from signing tokens
// with a well-known key.
const insecureDefaultSecret = "your-secret-key-change-in-production"

// Config is built once in main and passed to each component. It is never
// mutated after Load returns.
type Config struct {
	DatabaseURL string

	RedisAddress  string
	RedisPassword string
	RedisDB       int

	HTTPAddress string

	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	PasswordPepper    string
	PasswordMinLength int

	AllowedOrigins   []string
	AllowCredentials bool

	LogLevel string
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	for _, key := range []string{
		"DATABASE_URL", "REDIS_ADDRESS", "REDIS_PASSWORD", "REDIS_DB",
		"HTTP_ADDRESS", "SECRET_KEY", "ACCESS_TOKEN_TTL", "REFRESH_TOKEN_TTL",
		"PASSWORD_PEPPER", "PASSWORD_MIN_LENGTH",
		"ALLOWED_ORIGINS", "ALLOW_CREDENTIALS", "LOG_LEVEL",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	v.SetDefault("HTTP_ADDRESS", ":8000")
	v.SetDefault("ACCESS_TOKEN_TTL", "30m")
	v.SetDefault("REFRESH_TOKEN_TTL", "168h")
	v.SetDefault("PASSWORD_MIN_LENGTH", 8)
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	v.SetDefault("ALLOW_CREDENTIALS", true)

	cfg := &Config{
		DatabaseURL:       v.GetString("DATABASE_URL"),
		RedisAddress:      v.GetString("REDIS_ADDRESS"),
		RedisPassword:     v.GetString("REDIS_PASSWORD"),
		RedisDB:           v.GetInt("REDIS_DB"),
		HTTPAddress:       v.GetString("HTTP_ADDRESS"),
		SecretKey:         v.GetString("SECRET_KEY"),
		AccessTokenTTL:    v.GetDuration("ACCESS_TOKEN_TTL"),
		RefreshTokenTTL:   v.GetDuration("REFRESH_TOKEN_TTL"),
		PasswordPepper:    v.GetString("PASSWORD_PEPPER"),
		PasswordMinLength: v.GetInt("PASSWORD_MIN_LENGTH"),
		AllowedOrigins:    v.GetStringSlice("ALLOWED_ORIGINS"),
		AllowCredentials:  v.GetBool("ALLOW_CREDENTIALS"),
		LogLevel:          v.GetString("LOG_LEVEL"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.RedisAddress == "" {
		return nil, fmt.Errorf("REDIS_ADDRESS is required")
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}
	if cfg.SecretKey == insecureDefaultSecret {
		return nil, fmt.Errorf("SECRET_KEY is set to the well-known placeholder; generate a real secret")
	}
	if cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL <= 0 {
		return nil, fmt.Errorf("token TTLs must be positive")
	}

	return cfg, nil
}
