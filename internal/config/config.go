package config

import (
	"os"
	"time"
)

type Config struct {
	Port            string
	Env             string
	DatabaseDSN     string
	CepBaseURL      string
	WeatherBaseURL  string
	ExternalTimeout time.Duration
}

func Load() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		DatabaseDSN:     getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/eventify?parseTime=true"),
		CepBaseURL:      getEnv("CEP_API_BASE_URL", "https://cep.awesomeapi.com.br"),
		WeatherBaseURL:  getEnv("WEATHER_API_BASE_URL", "https://api.open-meteo.com"),
		ExternalTimeout: getDuration("EXTERNAL_TIMEOUT", 5*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
