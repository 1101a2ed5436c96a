package config

import (
	"os"
)

type Config struct {
	ProjectID  string
	LogLevel   string
	Port       string
	APIBaseURL string
}

func New() *Config {
	return &Config{
		ProjectID:  os.Getenv("PROJECTID"),
		LogLevel:   os.Getenv("LOGLEVEL"),
		Port:       getEnv("PORT", "8080"),
		APIBaseURL: getEnv("APIBASEURL", "http://localhost:8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
