package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName string
	Port    string

	DBDriver string
	DBSource string

	JWTSecret string
	JWTTTL    time.Duration

	// single source of truth for the tax rate; the cart model and any
	// server-side recomputation both read this value
	TaxRate float64

	// base URL customers reach, used for QR codes and login links
	PublicBaseURL string

	AdminEmail    string
	AdminPassword string
}

// LoadConfig reads .env plus the environment. Missing critical values fail
// fast here instead of surfacing as network errors on first use.
func LoadConfig() *Config {
	// .env is optional outside development
	_ = godotenv.Load()

	cfg := &Config{
		AppName:       getEnv("APP_NAME", "FoodOrder"),
		Port:          getEnv("PORT", "8000"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBSource:      getEnv("DB_SOURCE", "foodorder.db"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTTTL:        getEnvDuration("JWT_TTL", 24*time.Hour),
		TaxRate:       getEnvFloat("TAX_RATE", 0.05),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("missing env: JWT_SECRET")
	}
	if cfg.DBSource == "" {
		log.Fatal("missing env: DB_SOURCE")
	}
	if cfg.TaxRate < 0 || cfg.TaxRate >= 1 {
		log.Fatalf("invalid TAX_RATE %v: want a fraction like 0.05", cfg.TaxRate)
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return d
}
