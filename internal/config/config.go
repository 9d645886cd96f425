package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	DBPath    string
	RedisAddr string
	Port      string
	HouseEdge float64
	MaxBet    float64
}

func Load() *Config {
	cfg := &Config{
		DBPath:    getEnv("DB_PATH", "db.sqlite"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		Port:      getEnv("PORT", "8080"),
		HouseEdge: getFloat("HOUSE_EDGE", 0.01),
		MaxBet:    getFloat("MAX_BET", 1000),
	}

	if os.Getenv("API_KEY") == "" {
		log.Fatal("Missing critical environment variables")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
