package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultEndpoint       = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultRetryPeriod    = 600 * time.Second
	DefaultRequestTimeout = 30 * time.Second
)

var (
	// ErrMissingVariable is returned when a required variable is unset or empty.
	ErrMissingVariable = errors.New("required environment variable is not set")
	// ErrInvalidVariable is returned when a variable cannot be parsed.
	ErrInvalidVariable = errors.New("invalid environment variable")
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID int64
	Endpoint       string
	RetryPeriod    time.Duration
	PollSchedule   string // Optional cron spec; overrides RetryPeriod when set
	RequestTimeout time.Duration
	FetchAttempts  uint
	LogLevel       string
	Environment    string
	LogFile        string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from the given lookup function.
func FromEnv(getenv func(string) string) (*AppConfig, error) {
	cfg := &AppConfig{
		PracticumToken: getenv("PRACTICUM_TOKEN"),
		TelegramToken:  getenv("TELEGRAM_TOKEN"),
	}

	var missing []string
	if cfg.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if cfg.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	chatIDStr := getenv("TELEGRAM_CHAT_ID")
	if chatIDStr == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingVariable, strings.Join(missing, ", "))
	}

	var err error
	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: TELEGRAM_CHAT_ID: %v", ErrInvalidVariable, err)
	}

	cfg.Endpoint = getenv("PRACTICUM_ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	cfg.RetryPeriod, err = seconds(getenv, "RETRY_PERIOD", DefaultRetryPeriod)
	if err != nil {
		return nil, err
	}
	cfg.RequestTimeout, err = seconds(getenv, "REQUEST_TIMEOUT", DefaultRequestTimeout)
	if err != nil {
		return nil, err
	}

	cfg.PollSchedule = strings.TrimSpace(getenv("POLL_SCHEDULE"))

	cfg.FetchAttempts = 1 // One request per cycle; the next cycle is the retry
	if v := getenv("FETCH_ATTEMPTS"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil || n == 0 {
			return nil, fmt.Errorf("%w: FETCH_ATTEMPTS must be a positive integer, got %q", ErrInvalidVariable, v)
		}
		cfg.FetchAttempts = uint(n)
	}

	cfg.LogLevel = strings.ToLower(getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.LogFile = getenv("LOG_FILE")

	return cfg, nil
}

func seconds(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive number of seconds, got %q", ErrInvalidVariable, key, v)
	}
	return time.Duration(n) * time.Second, nil
}
