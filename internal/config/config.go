package config

import (
	"fmt"
	"os"
	"strings"
)

// Config agrupa la configuración necesaria para correr la aplicación.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTAudience string
	LogLevel    string
}

// Load lee variables de entorno y valida lo mínimo indispensable.
// El .env (si existe) lo carga cmd con godotenv antes de llamar a Load.
func Load() (Config, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}
	// Normalizamos por si alguien manda ":8080"
	port = strings.TrimPrefix(port, ":")

	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		return Config{}, fmt.Errorf("missing required env var: DATABASE_URL")
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		return Config{}, fmt.Errorf("missing required env var: JWT_SECRET")
	}

	logLevel := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "info"
	}

	return Config{
		Port:        port,
		DatabaseURL: databaseURL,
		JWTSecret:   jwtSecret,
		JWTAudience: strings.TrimSpace(os.Getenv("JWT_AUDIENCE")),
		LogLevel:    logLevel,
	}, nil
}

// LoadDatabaseURL lee solo DATABASE_URL. Lo usan herramientas (migraciones)
// que no necesitan el resto de la configuración del server.
func LoadDatabaseURL() (string, error) {
	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		return "", fmt.Errorf("missing required env var: DATABASE_URL")
	}
	return databaseURL, nil
}

// LoadAuth lee JWT_SECRET (obligatorio) y JWT_AUDIENCE. Lo usa listasctl token.
func LoadAuth() (secret, audience string, err error) {
	secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		return "", "", fmt.Errorf("missing required env var: JWT_SECRET")
	}
	return secret, strings.TrimSpace(os.Getenv("JWT_AUDIENCE")), nil
}
