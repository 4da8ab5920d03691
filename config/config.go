package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the disassembler's persisted configuration.
type Config struct {
	// Decode settings
	Decode struct {
		Profile        string `toml:"profile"` // v4T, v5TE, v6
		Mode           string `toml:"mode"`     // arm, thumb
		BaseAddress    uint64 `toml:"base_address"`
		RenderAliases  bool   `toml:"render_aliases"` // sp/lr/pc vs r13/r14/r15
	} `toml:"decode"`

	// Listing settings
	Listing struct {
		ColorOutput    bool   `toml:"color_output"`
		ShowRawWord    bool   `toml:"show_raw_word"`
		ShowAddress    bool   `toml:"show_address"`
		BytesPerColumn int    `toml:"bytes_per_column"`
		NumberFormat   string `toml:"number_format"` // hex, dec
	} `toml:"listing"`

	// Browser settings (the read-only TUI disassembly browser)
	Browser struct {
		HistorySize   int  `toml:"history_size"`
		ContextLines  int  `toml:"context_lines"`
		ShowNotRecognizedCount bool `toml:"show_not_recognized_count"`
	} `toml:"browser"`

	// API settings (decode-as-a-service)
	API struct {
		ListenAddress   string `toml:"listen_address"`
		MaxBodyBytes    int64  `toml:"max_body_bytes"`
		EnableWebSocket bool   `toml:"enable_websocket"`
	} `toml:"api"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Decode.Profile = "v5TE"
	cfg.Decode.Mode = "arm"
	cfg.Decode.BaseAddress = 0x8000
	cfg.Decode.RenderAliases = true

	cfg.Listing.ColorOutput = true
	cfg.Listing.ShowRawWord = true
	cfg.Listing.ShowAddress = true
	cfg.Listing.BytesPerColumn = 4
	cfg.Listing.NumberFormat = "hex"

	cfg.Browser.HistorySize = 1000
	cfg.Browser.ContextLines = 12
	cfg.Browser.ShowNotRecognizedCount = true

	cfg.API.ListenAddress = "127.0.0.1:8734"
	cfg.API.MaxBodyBytes = 1 << 20
	cfg.API.EnableWebSocket = true

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "armdis")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "armdis")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file. A missing file is
// not an error: the defaults are returned instead.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
