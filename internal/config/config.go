package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds every runtime setting the services need. Values come from the
// environment, optionally seeded from a .env file.
type Config struct {
	Port     string
	Env      string
	MongoURI string
	MongoDB  string

	JWTSecret string
	JWTExpiry time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	MQTTBroker string
	MQTTTopic  string

	DefaultLang string
	CORSOrigin  string
}

// Load reads configuration from the environment. A missing .env file is not
// an error; explicit environment variables always win.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug("no .env file loaded")
	}

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("APP_ENV", "development"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "fleetcrm"),
		JWTSecret:   getEnv("JWT_SECRET", "default-secret-key-change-in-production"),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "fleetcrm.entity-events"),
		MQTTBroker:  getEnv("MQTT_BROKER", "tcp://localhost:1883"),
		MQTTTopic:   getEnv("MQTT_TOPIC", "fleet/vehicles/+/telemetry"),
		DefaultLang: getEnv("DEFAULT_LANG", "fr"),
		CORSOrigin:  getEnv("CORS_ORIGIN", "http://localhost:5173"),
	}

	cfg.JWTExpiry = 24 * time.Hour
	if v := os.Getenv("JWT_EXPIRY"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.JWTExpiry = parsed
		} else {
			log.WithField("value", v).Warn("invalid JWT_EXPIRY, using default")
		}
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.KafkaBrokers = strings.Split(v, ",")
	}

	return cfg
}

// IsProduction reports whether the app runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
