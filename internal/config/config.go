package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	SourceSample = "sample"
	SourceMongo  = "mongo"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime settings read from the environment.
type Config struct {
	Source          string
	MongoURI        string
	MongoDB         string
	MongoCollection string
	LogLevel        string
	LogFormat       string
	MQTTBroker      string
	MQTTClientID    string
	MQTTTopicPrefix string
	MetricsTextfile string
}

// Load reads envFile (if it exists) into the environment and builds a Config.
// Variables already set in the environment take precedence over the file.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
		logrus.WithField("file", envFile).Debug("No env file found (using environment variables)")
	}

	cfg := &Config{
		Source:          getEnv("CARPARK_SOURCE", SourceSample),
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDB:         getEnv("MONGO_DB", "fleet"),
		MongoCollection: getEnv("MONGO_COLLECTION", "vehicles"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		MQTTBroker:      os.Getenv("MQTT_BROKER"),
		MQTTClientID:    os.Getenv("MQTT_CLIENT_ID"),
		MQTTTopicPrefix: getEnv("MQTT_TOPIC_PREFIX", "carpark"),
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceSample, SourceMongo:
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalidConfig, c.Source)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// ConfigureLogger applies the level and format to l.
func (c *Config) ConfigureLogger(l *logrus.Logger) {
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		l.SetLevel(lvl)
	}
	if strings.ToLower(c.LogFormat) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
