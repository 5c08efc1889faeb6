package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBDSN      string
	UploadsDir string
	PublicURL  string
	LogFile    string
}

func Load() Config {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	port := getenv("PORT", "3333")
	cfg := Config{
		Port:       port,
		DBDSN:      getenv("DB_DSN", "ecoleta.db"), // sqlite file in project root
		UploadsDir: getenv("UPLOADS_DIR", "./uploads"),
		PublicURL:  getenv("PUBLIC_URL", "http://localhost:"+port),
		LogFile:    getenv("LOG_FILE", ""),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s UPLOADS_DIR=%s PUBLIC_URL=%s LOG_FILE=%s",
		cfg.Port, cfg.DBDSN, cfg.UploadsDir, cfg.PublicURL, cfg.LogFile)
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
