package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

const defaultBaseURL = "http://127.0.0.1:5000"
const defaultSearchDebounceMS = 500

// envBaseURL overrides the configured server URL when set. A .env file in
// the working directory is honored the same way the web client honored
// VITE_API_URL.
const envBaseURL = "NOTED_API_URL"

type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
	UI      UIConfig      `toml:"ui"`
}

type ServerConfig struct {
	BaseURL string `toml:"base_url"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

type UIConfig struct {
	SearchDebounceMS int `toml:"search_debounce_ms"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			BaseURL: defaultBaseURL,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		UI: UIConfig{
			SearchDebounceMS: defaultSearchDebounceMS,
		},
	}
}

// Load reads the config file under the data dir, applying defaults for
// anything unset. A missing file is not an error. Environment variables
// (optionally from a .env file in the working directory) win over the file.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return loadFromPath(path)
}

func loadFromPath(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, err
	}
	if url := strings.TrimSpace(os.Getenv(envBaseURL)); url != "" {
		cfg.Server.BaseURL = url
	}
	return cfg, nil
}

func (c Config) APIBaseURL() string {
	url := strings.TrimSpace(c.Server.BaseURL)
	if url == "" {
		return defaultBaseURL
	}
	return strings.TrimRight(url, "/")
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return "info"
	}
	return level
}

// SearchDebounce is the quiet period between the last search keystroke and
// the fetch it triggers.
func (c Config) SearchDebounce() time.Duration {
	ms := c.UI.SearchDebounceMS
	if ms <= 0 {
		ms = defaultSearchDebounceMS
	}
	return time.Duration(ms) * time.Millisecond
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}
