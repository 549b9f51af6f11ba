package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// LoadEnv loads the .env file for the given environment.
// APP_ENV=production loads .env.production, otherwise .env is used.
func LoadEnv(env string) error {
	filename := ".env"
	if env != "" && env != "development" {
		filename = fmt.Sprintf(".env.%s", strings.ToLower(env))
	}
	return godotenv.Load(filename)
}

// GetEnv returns the trimmed value of an environment variable.
func GetEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// GetIntEnv returns an environment variable as int64, 0 when unset or invalid.
func GetIntEnv(key string) int64 {
	return cast.ToInt64(GetEnv(key))
}

// GetBoolEnv returns an environment variable as bool, false when unset.
func GetBoolEnv(key string) bool {
	return cast.ToBool(GetEnv(key))
}
