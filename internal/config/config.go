package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env string

	DataDir           string
	EventsFile        string
	RegistrationsFile string
	UsersFile         string

	MaxLoginAttempts int

	OTLPEndpoint    string
	ServiceName     string
	MetricsTextfile string
}

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	dataDir := getEnv("DATA_DIR", "data")

	attempts, err := getEnvInt("MAX_LOGIN_ATTEMPTS", 3)
	if err != nil {
		return Config{}, err
	}
	if attempts <= 0 {
		return Config{}, fmt.Errorf("MAX_LOGIN_ATTEMPTS must be positive, got %d", attempts)
	}

	return Config{
		Env:               getEnv("APP_ENV", "dev"),
		DataDir:           dataDir,
		EventsFile:        dataPath(dataDir, getEnv("EVENTS_FILE", "events.txt")),
		RegistrationsFile: dataPath(dataDir, getEnv("REGISTRATIONS_FILE", "registrations.txt")),
		UsersFile:         dataPath(dataDir, getEnv("USERS_FILE", "users.txt")),
		MaxLoginAttempts:  attempts,
		OTLPEndpoint:      os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:       getEnv("OTEL_SERVICE_NAME", "eventdesk"),
		MetricsTextfile:   os.Getenv("METRICS_TEXTFILE"),
	}, nil
}

// dataPath joins relative file names onto the data directory.
func dataPath(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	num, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return num, nil
}
