package nextversion

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the repository-local config file consulted by the
// CLI for branch-to-channel overrides.
const ConfigFileName = ".nextversion.toml"

// Config is the optional on-disk configuration. The [branches] table
// maps branch names to channel names ("none", "alpha" or "beta") and is
// layered over the built-in table.
type Config struct {
	Branches map[string]string `toml:"branches"`
}

// LoadConfig reads a TOML config file. A missing file is not an error;
// it returns (nil, nil) and callers proceed with defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}

	for branch, channel := range cfg.Branches {
		if _, err := parseChannel(channel); err != nil {
			return nil, fmt.Errorf("config %q, branch %q: %w", path, branch, err)
		}
	}

	return &cfg, nil
}

// Table builds the effective channel table: the built-in defaults with
// the config's branch entries layered on top. A nil Config yields the
// defaults.
func (c *Config) Table() *ChannelTable {
	table := DefaultChannelTable()
	if c == nil || len(c.Branches) == 0 {
		return table
	}

	overrides := make(map[string]Channel, len(c.Branches))
	for branch, channel := range c.Branches {
		// Validated at load time
		parsed, _ := parseChannel(channel)
		overrides[branch] = parsed
	}

	return table.WithOverrides(overrides)
}

func parseChannel(name string) (Channel, error) {
	switch name {
	case "none", "stable", "":
		return ChannelNone, nil
	case string(ChannelAlpha):
		return ChannelAlpha, nil
	case string(ChannelBeta):
		return ChannelBeta, nil
	default:
		return ChannelNone, fmt.Errorf("unknown channel %q (expected none, alpha or beta)", name)
	}
}
