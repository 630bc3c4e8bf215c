package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerAddress string
	Environment   string

	MongoURI    string
	MongoDBName string
	DataDir     string

	JWTSecret     string
	JWTExpiration time.Duration
	AuthRequired  bool

	FirebaseProjectID       string
	FirebaseCredentialsJSON string
}

func Load() *Config {
	return &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":5000"),
		Environment:   getEnv("APP_ENV", "development"),

		MongoURI:    getEnv("MONGODB_URI", ""),
		MongoDBName: getEnv("MONGODB_DB", "profiledb"),
		DataDir:     getEnv("DATA_DIR", "./data"),

		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiration: 24 * time.Hour,
		AuthRequired:  getEnvBool("AUTH_REQUIRED", false),

		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentialsJSON: getEnv("FIREBASE_CREDENTIALS_JSON", ""),
	}
}

// Development reports whether error details may be exposed in responses.
func (c *Config) Development() bool {
	return c.Environment != "production"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
