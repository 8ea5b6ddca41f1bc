package server

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete match-service configuration. All blocks are
// pointers so gohcl treats them as optional; LoadConfig fills defaults for
// anything a file leaves out.
type Config struct {
	Server  *Settings      `hcl:"server,block"`
	Bot     *BotConfig     `hcl:"bot,block"`
	History *HistoryConfig `hcl:"history,block"`
}

// Settings contains server-level configuration.
type Settings struct {
	Address            string `hcl:"address,optional"`
	Port               int    `hcl:"port,optional"`
	LogLevel           string `hcl:"log_level,optional"`
	RoundLimit         int    `hcl:"round_limit,optional"`
	IdleTimeoutSeconds int    `hcl:"idle_timeout_seconds,optional"`
	WasteOnInvalid     *bool  `hcl:"waste_on_invalid,optional"`
}

// BotConfig selects the opposing policy.
type BotConfig struct {
	Strategy string `hcl:"strategy,optional"`
	Seed     *int64 `hcl:"seed,optional"`
}

// HistoryConfig enables the on-disk match history log.
type HistoryConfig struct {
	Dir string `hcl:"dir"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	waste := true
	return &Config{
		Server: &Settings{
			Address:            "localhost",
			Port:               8080,
			LogLevel:           "info",
			RoundLimit:         3,
			IdleTimeoutSeconds: 300,
			WasteOnInvalid:     &waste,
		},
		Bot: &BotConfig{
			Strategy: "bomber",
		},
	}
}

// LoadConfig loads configuration from an HCL file, filling defaults for
// anything unset. A missing file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if config.Server == nil {
		config.Server = defaults.Server
	} else {
		if config.Server.Address == "" {
			config.Server.Address = defaults.Server.Address
		}
		if config.Server.Port == 0 {
			config.Server.Port = defaults.Server.Port
		}
		if config.Server.LogLevel == "" {
			config.Server.LogLevel = defaults.Server.LogLevel
		}
		if config.Server.RoundLimit == 0 {
			config.Server.RoundLimit = defaults.Server.RoundLimit
		}
		if config.Server.IdleTimeoutSeconds == 0 {
			config.Server.IdleTimeoutSeconds = defaults.Server.IdleTimeoutSeconds
		}
		if config.Server.WasteOnInvalid == nil {
			config.Server.WasteOnInvalid = defaults.Server.WasteOnInvalid
		}
	}
	if config.Bot == nil {
		config.Bot = defaults.Bot
	} else if config.Bot.Strategy == "" {
		config.Bot.Strategy = defaults.Bot.Strategy
	}

	return &config, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Server == nil || c.Bot == nil {
		return fmt.Errorf("server and bot configuration must be set")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Server.RoundLimit < 1 {
		return fmt.Errorf("round limit must be positive, got %d", c.Server.RoundLimit)
	}
	if c.Server.IdleTimeoutSeconds < 0 {
		return fmt.Errorf("idle timeout must be non-negative, got %d", c.Server.IdleTimeoutSeconds)
	}

	validStrategies := map[string]bool{
		"bomber":  true,
		"uniform": true,
	}
	if !validStrategies[c.Bot.Strategy] {
		return fmt.Errorf("invalid bot strategy %q", c.Bot.Strategy)
	}

	if c.History != nil && c.History.Dir == "" {
		return fmt.Errorf("history block requires a dir")
	}

	return nil
}

// GetAddress returns the full listen address.
func (c *Config) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// IdleTimeout returns the session idle timeout; zero disables expiry.
func (c *Config) IdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeoutSeconds) * time.Second
}

// WasteOnInvalid reports whether an invalid submission burns a round.
func (c *Config) WasteOnInvalid() bool {
	return c.Server.WasteOnInvalid != nil && *c.Server.WasteOnInvalid
}
