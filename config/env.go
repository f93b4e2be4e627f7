package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	Port     string
	LogLevel string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	RedisURL      string
	RedisAddr     string
	RedisPassword string
	CartTTL       time.Duration

	JWTSecret         string
	JWTExpiry         time.Duration
	AdminPasswordHash string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	OrderEmailTo string

	TelegramToken  string
	TelegramChatID int64

	WhatsAppNumber string
	Timezone       string
	OriginURL      string
}

var AppConfig *Config

// LoadConfig reads .env (when present) and the process environment into AppConfig.
// It reports whether a .env file was found.
func LoadConfig() bool {
	found := godotenv.Load() == nil
	AppConfig = FromEnv()
	return found
}

func FromEnv() *Config {
	chatID, _ := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)

	return &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		Port:     getEnv("APP_PORT", getEnv("PORT", "8082")),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "doener_shop"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),

		RedisURL:      os.Getenv("REDIS_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CartTTL:       getDuration("CART_TTL", 24*time.Hour),

		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		JWTExpiry:         getDuration("JWT_EXPIRY", 24*time.Hour),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASS"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
		OrderEmailTo: os.Getenv("ORDER_EMAIL_TO"),

		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID: chatID,

		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "+4915212345678"),
		Timezone:       getEnv("TIMEZONE", "Europe/Berlin"),
		OriginURL:      getEnv("ORIGIN_URL", "*"),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Location resolves the shop timezone, falling back to UTC when the zone
// database does not know it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
