package config

import (
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Env        string
	HTTPPort   string
	MongoURI   string
	MongoDB    string
	Secret     string
	BCryptCost int
	RateRPS    int
}

func Load() Config {
	cfg := Config{
		Env:        get("APP_ENV", "dev"),
		HTTPPort:   get("HTTP_PORT", "3003"),
		MongoURI:   get("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:    get("MONGODB_NAME", "bloglist"),
		Secret:     get("SECRET", "changeme-secret"),
		BCryptCost: getInt("BCRYPT_COST", bcrypt.DefaultCost),
		RateRPS:    getInt("RATE_RPS", 100),
	}
	return cfg
}

func get(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
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
