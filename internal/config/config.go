package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port        string
	DSN         string
	JWTSecret   string
	FrontendURL string
	SMTPAddr    string
	SMTPFrom    string
	SMTPUser    string
	SMTPPass    string
	CORSOrigins []string
	Env         string
}

func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		Port:        getEnv("PORT", "5001"),
		DSN:         mustEnv("DB_DSN"),
		JWTSecret:   mustEnv("JWT_SECRET"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		SMTPAddr:    getEnv("SMTP_ADDR", "localhost:25"),
		SMTPFrom:    getEnv("SMTP_FROM", "TA Jobs <onboarding@tajobs.local>"),
		SMTPUser:    os.Getenv("SMTP_USER"),
		SMTPPass:    os.Getenv("SMTP_PASS"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		Env:         getEnv("ENV", "dev"),
	}
	log.Infof("config loaded: env=%s port=%s", c.Env, c.Port)
	return c
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env: %s", k)
	}
	return v
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
