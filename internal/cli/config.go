package cli

import (
	"os"
	"time"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
	Timeout   time.Duration
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("WORDGAME_SERVER", "http://localhost:8080"),
		Output:    getEnvOrDefault("WORDGAME_OUTPUT", "text"),
		// The end-turn endpoints wait for the computer's search
		Timeout: 30 * time.Second,
		Verbose: false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
