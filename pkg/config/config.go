package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/code-100-precent/LingDrill/pkg/logger"
	"github.com/code-100-precent/LingDrill/pkg/utils"
	"github.com/spf13/cast"
)

// Config main configuration structure
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Log        logger.LogConfig `mapstructure:"log"`
	Synthesis  SynthesisConfig  `mapstructure:"synthesis"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
}

// ServerConfig server configuration
type ServerConfig struct {
	Name        string `env:"SERVER_NAME"`
	Addr        string `env:"ADDR"`
	Mode        string `env:"MODE"`
	APIPrefix   string `env:"API_PREFIX"`
	AdminPrefix string `env:"ADMIN_PREFIX"`
}

// DatabaseConfig database configuration
type DatabaseConfig struct {
	Driver string `env:"DB_DRIVER"`
	DSN    string `env:"DSN"`
}

// SynthesisConfig synthesis provider configuration
type SynthesisConfig struct {
	BaseURL      string        `env:"SYNTHESIS_BASE_URL"`
	MaxChunkLen  int           `env:"SYNTHESIS_MAX_CHUNK_LEN"`
	PacingDelay  time.Duration `env:"SYNTHESIS_PACING_DELAY"`
	ChunkTimeout time.Duration `env:"SYNTHESIS_CHUNK_TIMEOUT"`
	DefaultVoice string        `env:"SYNTHESIS_DEFAULT_VOICE"`
	CacheTTL     time.Duration `env:"SYNTHESIS_CACHE_TTL"`
}

// MiddlewareConfig middleware configuration
type MiddlewareConfig struct {
	EnableRateLimit bool   `env:"ENABLE_RATE_LIMIT"`
	RateLimitFormat string `env:"RATE_LIMIT_FORMAT"` // e.g. "100-S", "1000-M"
}

var GlobalConfig *Config

// Load reads the .env file and builds the global configuration
func Load() error {
	// Missing .env is not fatal, defaults cover local development
	env := os.Getenv("APP_ENV")
	err := utils.LoadEnv(env)
	if err != nil {
		log.Printf("Note: .env file not found or failed to load: %v (using default values)", err)
	}

	GlobalConfig = &Config{
		Server: ServerConfig{
			Name:        getStringOrDefault("SERVER_NAME", "lingdrill"),
			Addr:        getStringOrDefault("ADDR", ":7072"),
			Mode:        getStringOrDefault("MODE", "development"),
			APIPrefix:   getStringOrDefault("API_PREFIX", "/api"),
			AdminPrefix: getStringOrDefault("ADMIN_PREFIX", "/admin"),
		},
		Database: DatabaseConfig{
			Driver: getStringOrDefault("DB_DRIVER", "sqlite"),
			DSN:    getStringOrDefault("DSN", "./lingdrill.db"),
		},
		Log: logger.LogConfig{
			Level:      getStringOrDefault("LOG_LEVEL", "info"),
			Filename:   getStringOrDefault("LOG_FILENAME", "./logs/app.log"),
			MaxSize:    getIntOrDefault("LOG_MAX_SIZE", 100),
			MaxAge:     getIntOrDefault("LOG_MAX_AGE", 30),
			MaxBackups: getIntOrDefault("LOG_MAX_BACKUPS", 5),
			Daily:      getBoolOrDefault("LOG_DAILY", true),
		},
		Synthesis: SynthesisConfig{
			BaseURL:      getStringOrDefault("SYNTHESIS_BASE_URL", "https://translate.google.com/translate_tts"),
			MaxChunkLen:  getIntOrDefault("SYNTHESIS_MAX_CHUNK_LEN", 150),
			PacingDelay:  parseDuration(getStringOrDefault("SYNTHESIS_PACING_DELAY", "300ms"), 300*time.Millisecond),
			ChunkTimeout: parseDuration(getStringOrDefault("SYNTHESIS_CHUNK_TIMEOUT", "10s"), 10*time.Second),
			DefaultVoice: getStringOrDefault("SYNTHESIS_DEFAULT_VOICE", "en-US"),
			CacheTTL:     parseDuration(getStringOrDefault("SYNTHESIS_CACHE_TTL", "1h"), time.Hour),
		},
		Middleware: MiddlewareConfig{
			EnableRateLimit: getBoolOrDefault("ENABLE_RATE_LIMIT", false),
			RateLimitFormat: getStringOrDefault("RATE_LIMIT_FORMAT", "100-S"),
		},
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return errors.New("database DSN is required")
	}
	if c.Server.Addr == "" {
		return errors.New("server address is required")
	}
	if c.Synthesis.MaxChunkLen <= 0 {
		return errors.New("synthesis chunk length must be positive")
	}
	return nil
}

func getStringOrDefault(key, def string) string {
	if v := utils.GetEnv(key); v != "" {
		return v
	}
	return def
}

func getIntOrDefault(key string, def int) int {
	if v := utils.GetEnv(key); v != "" {
		return cast.ToInt(v)
	}
	return def
}

func getBoolOrDefault(key string, def bool) bool {
	if v := utils.GetEnv(key); v != "" {
		return cast.ToBool(v)
	}
	return def
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
