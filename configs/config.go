package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	DBDriver   string
	DBSource   string
	DBLogLevel string
	Port       string
	JWTSecret  string
	JWTTTL     time.Duration

	AdminEmail    string
	AdminPassword string

	// orphan | block | cascade
	CategoryDeletePolicy string
	TaxRate              decimal.Decimal

	KafkaBrokers []string
	KafkaTopic   string
	CORSOrigins  []string
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}

	ttlHours, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 24
	}
	taxRate, err := decimal.NewFromString(getEnv("TAX_RATE", "0.05"))
	if err != nil || taxRate.IsNegative() {
		log.Printf("config: invalid TAX_RATE, using 0.05")
		taxRate = decimal.RequireFromString("0.05")
	}

	return &Config{
		DBDriver:             strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBSource:             getEnv("DB_SOURCE", "pos.db"),
		DBLogLevel:           getEnv("DB_LOG_LEVEL", "warn"),
		Port:                 getEnv("PORT", "8000"),
		JWTSecret:            getEnv("JWT_SECRET", "changeme"),
		JWTTTL:               time.Duration(ttlHours) * time.Hour,
		AdminEmail:           getEnv("ADMIN_EMAIL", ""),
		AdminPassword:        getEnv("ADMIN_PASSWORD", ""),
		CategoryDeletePolicy: strings.ToLower(getEnv("CATEGORY_DELETE_POLICY", "orphan")),
		TaxRate:              taxRate,
		KafkaBrokers:         splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:           getEnv("KAFKA_TOPIC", "pos.events"),
		CORSOrigins:          splitList(getEnv("CORS_ORIGINS", "*")),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
