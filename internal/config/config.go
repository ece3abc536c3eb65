package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver      string // "mysql" (GLPI) | "postgres"
	DBDSN         string
	DBMaxConns    int
	DBConnTimeout int // segundos; tope de espera por una conexión del pool
	ServerPort    string
	SessionSecret string
	PDFDir        string
	UploadDir     string
	TemplatesGlob string
	StaticDir     string
	LogLevel      string
	LogFormat     string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDriver:      getEnv("DB_DRIVER", "mysql"),
		DBDSN:         os.Getenv("DB_DSN"),
		DBMaxConns:    getEnvInt("DB_MAX_CONNS", 10),
		DBConnTimeout: getEnvInt("DB_CONN_TIMEOUT", 10),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		PDFDir:        getEnv("PDF_DIR", "public/pdfs"),
		UploadDir:     getEnv("UPLOAD_DIR", "public/uploads"),
		TemplatesGlob: getEnv("TEMPLATES_GLOB", "web/templates/*.html"),
		StaticDir:     getEnv("STATIC_DIR", "web/static"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set")
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("%s: valor no numérico %q", key, v)
	}
	return n
}
