package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort           = 22
	defaultConnectTimeout = 10 * time.Second
)

type Config struct {
	Server         string
	Port           int
	Username       string
	Password       string
	ConnectTimeout time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not found, using environment variables only")
	}

	port, err := getEnvInt("SFTP_PORT", defaultPort)
	if err != nil {
		return nil, err
	}
	timeoutSec, err := getEnvInt("SFTP_CONNECT_TIMEOUT", int(defaultConnectTimeout/time.Second))
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server:         getEnv("SFTP_SERVER", ""),
		Port:           port,
		Username:       getEnv("SFTP_USERNAME", ""),
		Password:       getEnv("SFTP_PASSWORD", ""),
		ConnectTimeout: time.Duration(timeoutSec) * time.Second,
	}

	return config, nil
}

// Validate checks the connection parameters after flag overrides have been
// applied. The password is only ever read from the environment or .env file
// and must never appear in logs or output.
func (c *Config) Validate() error {
	if c.Server == "" {
		return errors.New("server is required (SFTP_SERVER or --server)")
	}
	if c.Username == "" {
		return errors.New("username is required (SFTP_USERNAME or --username)")
	}
	if c.Password == "" {
		return errors.New("password is required (SFTP_PASSWORD)")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return n, nil
}
