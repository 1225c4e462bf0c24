package cli

import (
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/mcoot/wordhunt/internal/solver"
)

// Config holds CLI configuration
type Config struct {
	ServerURL      string
	DictionaryPath string
	MinWordLength  int
	Output         string
	Verbose        bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:      getEnvOrDefault("WORDHUNT_SERVER", "http://localhost:8080"),
		DictionaryPath: getEnvOrDefault("WORDHUNT_DICTIONARY", "data/words.txt"),
		MinWordLength:  getEnvIntOrDefault("WORDHUNT_MIN_WORD_LENGTH", solver.DefaultMinWordLength),
		Output:         "text",
		Verbose:        false,
	}
}

// Logger returns a text logger on w that only speaks up in verbose mode
func (c *Config) Logger(w io.Writer) *slog.Logger {
	if !c.Verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return n
}
