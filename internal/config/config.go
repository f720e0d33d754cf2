package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	StoreDriver       string // postgres | file
	DatabaseURL       string
	DataDir           string
	JWTSecret         string
	JWTExpiresMinutes int
	AdminMobile       string
	AdminPasswordHash string
}

func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		StoreDriver:       getEnv("STORE_DRIVER", "postgres"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		DataDir:           getEnv("DATA_DIR", "data"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTExpiresMinutes: getEnvInt("JWT_EXPIRES_MINUTES", 60),
		AdminMobile:       getEnv("ADMIN_MOBILE", "admin"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	if cfg.StoreDriver == "postgres" && cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required when STORE_DRIVER=postgres")
	}

	return cfg
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
