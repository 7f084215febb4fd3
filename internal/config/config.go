package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/wb-go/wbf/zlog"
)

// Config holds every knob the service reads from the environment.
type Config struct {
	Env  string
	Port string

	MongoURL string
	MongoDB  string

	AllowedOrigins []string

	// Empty RabbitURL disables registration notifications.
	RabbitURL      string
	RabbitExchange string
	RabbitQueue    string

	SMTPAddr     string
	SMTPHost     string
	SMTPFrom     string
	SMTPPassword string
}

// Load reads configuration from the environment, consulting a .env file when
// one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		zlog.Logger.Debug().Msg("no .env file found, using system environment variables")
	}

	return &Config{
		Env:      getEnvOrDefault("ENV", "development"),
		Port:     getEnvOrDefault("PORT", "8000"),
		MongoURL: getEnvOrDefault("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:  getEnvOrDefault("MONGO_DB", "techfest"),
		AllowedOrigins: splitList(getEnvOrDefault("ALLOWED_ORIGINS",
			"http://localhost:5173,http://localhost:3000,http://localhost:8000")),
		RabbitURL:      os.Getenv("RABBIT_URL"),
		RabbitExchange: getEnvOrDefault("RABBIT_EXCHANGE", "registrations"),
		RabbitQueue:    getEnvOrDefault("RABBIT_QUEUE", "registration-emails"),
		SMTPAddr:       getEnvOrDefault("SMTP_ADDR", "smtp.gmail.com:587"),
		SMTPHost:       getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
		SMTPFrom:       os.Getenv("SMTP_FROM"),
		SMTPPassword:   os.Getenv("SMTP_PASSWORD"),
	}
}

func getEnvOrDefault(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	return value
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
