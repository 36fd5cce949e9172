package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type JWTConfig struct {
	Secret       string
	PublicKeyPEM string
	Issuer       string
}

// PenaltyConfig parameterizes the late-payment penalty policy. The rate is a
// monthly fraction of the installment total, prorated by days late.
type PenaltyConfig struct {
	Rate       decimal.Decimal
	GraceDays  int
	MinPenalty decimal.Decimal
	MaxPenalty decimal.Decimal
	Currency   string
}

type Config struct {
	GRPCPort      int
	HTTPPort      int
	DB            DatabaseConfig
	Kafka         KafkaConfig
	JWT           JWTConfig
	Penalty       PenaltyConfig
	MigrationsDir string
	LogLevel      string
	LogFormat     string
	TLSCertFile   string
	TLSKeyFile    string
	ServiceName   string
}

func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
	if c.JWT.Secret == "" && c.JWT.PublicKeyPEM == "" {
		panic("JWT_SECRET or JWT_PUBLIC_KEY environment variable is required")
	}
}

func Load() Config {
	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9087),
		HTTPPort: getEnvInt("HTTP_PORT", 8087),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "ouestbank"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "ouestbank_lending"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_TOPIC", "lending.loan-events"),
		},
		JWT: JWTConfig{
			Secret:       getEnv("JWT_SECRET", ""),
			PublicKeyPEM: getEnv("JWT_PUBLIC_KEY", ""),
			Issuer:       getEnv("JWT_ISSUER", "ouestbank-gateway"),
		},
		Penalty: PenaltyConfig{
			Rate:       getEnvDecimal("PENALTY_RATE", "0.10"),
			GraceDays:  getEnvInt("PENALTY_GRACE_DAYS", 5),
			MinPenalty: getEnvDecimal("PENALTY_MIN", "0"),
			MaxPenalty: getEnvDecimal("PENALTY_MAX", "0"),
			Currency:   getEnv("PENALTY_CURRENCY", "XOF"),
		},
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		TLSCertFile:   getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:    getEnv("TLS_KEY_FILE", ""),
		ServiceName:   "lending-service",
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDecimal(key, fallback string) decimal.Decimal {
	raw := getEnv(key, fallback)
	if d, err := decimal.NewFromString(raw); err == nil {
		return d
	}
	return decimal.RequireFromString(fallback)
}
