package autofin

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings, read from a .env file when present
// and from the environment otherwise.
type Config struct {
	GeminiAPIKey string  // required for agent commands
	EodhdAPIKey  string  // required for market data commands
	ModelName    string  // default gemini-2.5-flash
	Temperature  float64 // default 0.3
}

const (
	geminiAPIKeyEnv = "GEMINI_API_KEY"
	eodhdAPIKeyEnv  = "EODHD_API_KEY"
	modelNameEnv    = "MODEL_NAME"
	temperatureEnv  = "TEMPERATURE"
)

// LoadConfig loads the configuration. A missing .env file is fine, the
// environment alone is enough. Key presence is checked by the commands
// that need them, not here, so read-only commands work without keys.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		GeminiAPIKey: os.Getenv(geminiAPIKeyEnv),
		EodhdAPIKey:  os.Getenv(eodhdAPIKeyEnv),
		ModelName:    "gemini-2.5-flash",
		Temperature:  0.3,
	}
	if model := os.Getenv(modelNameEnv); model != "" {
		cfg.ModelName = model
	}
	if temp := os.Getenv(temperatureEnv); temp != "" {
		v, err := strconv.ParseFloat(temp, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", temperatureEnv, temp, err)
		}
		cfg.Temperature = v
	}
	return cfg, nil
}

// RequireGemini returns an error when the Gemini API key is not set.
func (c *Config) RequireGemini() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("%s is not set, add it to your .env file or environment", geminiAPIKeyEnv)
	}
	return nil
}

// RequireEodhd returns an error when the EODHD API key is not set.
func (c *Config) RequireEodhd() error {
	if c.EodhdAPIKey == "" {
		return fmt.Errorf("%s is not set, add it to your .env file or environment", eodhdAPIKeyEnv)
	}
	return nil
}
