package lifenavcli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Backend names accepted by Config.Backend.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// DatabaseFile is the name of the sqlite file inside Config.DataDir.
const DatabaseFile = "lifenav.db"

// Config holds the settings shared by every command. Values come from the
// environment, optionally seeded from a .env file, and are overridden by flags.
type Config struct {
	DataDir    string `env:"LIFENAV_DATA_DIR"    envDefault:".lifenav"`
	Backend    string `env:"LIFENAV_BACKEND"     envDefault:"sqlite"`
	Codec      string `env:"LIFENAV_CODEC"       envDefault:"json"`
	KeyPrefix  string `env:"LIFENAV_KEY_PREFIX"`
	LogLevel   string `env:"LIFENAV_LOG_LEVEL"   envDefault:"info"`
	LogFile    string `env:"LIFENAV_LOG_FILE"`
	LogPretty  bool   `env:"LIFENAV_LOG_PRETTY"`
	Listen     string `env:"LIFENAV_LISTEN"      envDefault:"127.0.0.1:8787"`
	StrictRefs bool   `env:"LIFENAV_STRICT_REFS"`
	ReadOnly   bool   `env:"LIFENAV_READ_ONLY"`
}

// DatabasePath is where the sqlite backend keeps its file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, DatabaseFile)
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("invalid backend: %s (must be '%s' or '%s')", c.Backend, BackendSQLite, BackendMemory)
	}
	switch c.Codec {
	case "", "json", "cbor":
	default:
		return fmt.Errorf("invalid codec: %s (must be 'json' or 'cbor')", c.Codec)
	}
	return nil
}

// LoadConfig reads the environment after loading envFile into it. A missing
// envFile is not an error; variables already set win over the file.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
