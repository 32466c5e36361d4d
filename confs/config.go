package confs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadConfig loads environment variables from a .env file if present.
func LoadConfig() error {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Port is the HTTP listen port.
func Port() string {
	return getEnv("PORT", "5000")
}

// JWTSecret signs and verifies session tokens.
func JWTSecret() string {
	return getEnv("JWT_SECRET", "your-super-secret-key-2026")
}

// AdminEmail designates the one admin account accepted by the sensor
// update policy.
func AdminEmail() string {
	return getEnv("ADMIN_EMAIL", "admin@example.com")
}

// SensorAutoCreate controls whether telemetry for an unknown sensor id
// creates the record. Set to "false" to reject unknown sensors instead.
func SensorAutoCreate() bool {
	return getEnv("SENSOR_AUTO_CREATE", "true") != "false"
}
