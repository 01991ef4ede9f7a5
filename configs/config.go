package config

import "os"

type Config struct {
	PostgresURI string
	RedisURI    string
	Port        string
	FrontendURL string
	AdminUser   string
	AdminPass   string
	SecretKey   string
	CookieName  string
	Env         string
}

func LoadConfig() *Config {
	return &Config{
		PostgresURI: getEnv("POSTGRES_URI", ""),
		RedisURI:    getEnv("REDIS_URI", ""),
		Port:        getEnv("PORT", "3000"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		AdminUser:   getEnv("ADMIN_USER", ""),
		AdminPass:   getEnv("ADMIN_PASS", ""),
		SecretKey:   getEnv("ADMIN_TOKEN_SECRET", ""),
		CookieName:  getEnv("COOKIE_NAME", "adminToken"),
		Env:         getEnv("APP_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
