package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the server reads from the environment.
type Config struct {
	ServerPort string
	DBPath     string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string
}

// Load reads an optional .env file and falls back to defaults suitable
// for local development. Email settings may stay empty; the mailer then
// only logs outgoing messages instead of talking to an SMTP server.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8008"),
		DBPath:     getEnv("DB_PATH", "project-management.db"),
		SMTPHost:   os.Getenv("SMTP_HOST"),
		SMTPPort:   getEnv("SMTP_PORT", "587"),
		SMTPUser:   os.Getenv("SMTP_USER"),
		SMTPPass:   os.Getenv("SMTP_PASS"),
		MailFrom:   getEnv("MAIL_FROM", "no-reply@project-management.local"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
