package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort            = "8080"
	DefaultUpstreamTimeout = 10 * time.Second
)

// Config del servicio. Todo sale de env (con .env opcional).
type Config struct {
	Port string

	LogLevel  string
	LogFormat string
	AppName   string

	// API remota de bovinos/establos/vacunas (opcional).
	UpstreamBaseURL string
	UpstreamToken   string
	UpstreamTimeout time.Duration

	// Fuentes alternativas (opcionales).
	DBDSN        string
	SnapshotFile string

	HeuristicsFile string
	DefaultMode    string
}

// Load carga ".env" si existe y luego lee el entorno.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom es Load con un archivo .env explícito; si no existe se ignora.
func LoadFrom(envFile string) (*Config, error) {
	if strings.TrimSpace(envFile) != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	timeout, err := loadDuration("UPSTREAM_TIMEOUT", DefaultUpstreamTimeout)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:            loadString("PORT", DefaultPort),
		LogLevel:        os.Getenv("LOG_LEVEL"),
		LogFormat:       os.Getenv("LOG_FORMAT"),
		AppName:         loadString("APP_NAME", "herd-analytics"),
		UpstreamBaseURL: strings.TrimSpace(os.Getenv("UPSTREAM_BASE_URL")),
		UpstreamToken:   strings.TrimSpace(os.Getenv("UPSTREAM_TOKEN")),
		UpstreamTimeout: timeout,
		DBDSN:           strings.TrimSpace(os.Getenv("DB_DSN")),
		SnapshotFile:    strings.TrimSpace(os.Getenv("HERD_SNAPSHOT")),
		HeuristicsFile:  strings.TrimSpace(os.Getenv("HEURISTICS_FILE")),
		DefaultMode:     strings.TrimSpace(os.Getenv("DEFAULT_MODE")),
	}, nil
}

func loadString(key, defValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defValue
}

// loadDuration acepta "15s", "2m" o un número de segundos.
func loadDuration(key string, defValue time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defValue, nil
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
