/*
Package config manages TOML config for WordIndex commands.

	[index]
	backend = "arena"

	[query]
	sentinel = "0"
	max_len = 4096

	[server]
	max_list = 256
	reload_interval = 30

	[log]
	level = "warn"

Missing files are created with these defaults. Files that fail to decode are
recovered section by section, and anything still unusable falls back to the
builtin defaults with a warning.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordindex/internal/utils"
	"github.com/bastiangx/wordindex/pkg/suggest"
	"github.com/charmbracelet/log"
)

const appDir = "wordindex"

// Config holds the entire config structure
type Config struct {
	Index  IndexConfig  `toml:"index"`
	Query  QueryConfig  `toml:"query"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

// IndexConfig selects the index backend.
type IndexConfig struct {
	Backend string `toml:"backend"`
}

// QueryConfig has query loop options.
type QueryConfig struct {
	Sentinel string `toml:"sentinel"`
	MaxLen   int    `toml:"max_len"` // bytes per IPC query; the CLI loop has no limit
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxList        int `toml:"max_list"`
	ReloadInterval int `toml:"reload_interval"` // seconds, 0 disables
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Index: IndexConfig{
			Backend: suggest.BackendArena,
		},
		Query: QueryConfig{
			Sentinel: "0",
			MaxLen:   4096,
		},
		Server: ServerConfig{
			MaxList:        256,
			ReloadInterval: 30,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Normalize replaces unusable values with defaults.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.Index.Backend == "" {
		c.Index.Backend = def.Index.Backend
	}
	if c.Query.Sentinel == "" {
		c.Query.Sentinel = def.Query.Sentinel
	}
	if c.Query.MaxLen <= 0 {
		log.Warnf("Invalid query.max_len %d, using %d", c.Query.MaxLen, def.Query.MaxLen)
		c.Query.MaxLen = def.Query.MaxLen
	}
	if c.Server.MaxList <= 0 {
		log.Warnf("Invalid server.max_list %d, using %d", c.Server.MaxList, def.Server.MaxList)
		c.Server.MaxList = def.Server.MaxList
	}
	if c.Server.ReloadInterval < 0 {
		c.Server.ReloadInterval = 0
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. $XDG_CONFIG_HOME/wordindex
// 2. ~/.config/wordindex
// 3. Current executable dir
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dir := filepath.Join(xdg, appDir)
		if result := utils.CheckDirStatus(dir); result.Writable {
			return dir, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		dir := filepath.Join(homeDir, ".config", appDir)
		if result := utils.CheckDirStatus(dir); result.Writable {
			return dir, nil
		}
	} else {
		log.Errorf("Failed to get home directory: %v", err)
	}

	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [ConfigDir]/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.Normalize()
	return config, nil
}

// tryPartialParse keeps every section value whose type is right.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	raw, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(raw, "index"); ok {
		if val, ok := utils.ExtractString(section, "backend"); ok {
			config.Index.Backend = val
		}
	}
	if section, ok := utils.ExtractSection(raw, "query"); ok {
		if val, ok := utils.ExtractString(section, "sentinel"); ok {
			config.Query.Sentinel = val
		}
		if val, ok := utils.ExtractInt64(section, "max_len"); ok {
			config.Query.MaxLen = val
		}
	}
	if section, ok := utils.ExtractSection(raw, "server"); ok {
		if val, ok := utils.ExtractInt64(section, "max_list"); ok {
			config.Server.MaxList = val
		}
		if val, ok := utils.ExtractInt64(section, "reload_interval"); ok {
			config.Server.ReloadInterval = val
		}
	}
	if section, ok := utils.ExtractSection(raw, "log"); ok {
		if val, ok := utils.ExtractString(section, "level"); ok {
			config.Log.Level = val
		}
	}
	config.Normalize()
	return config, nil
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		return "builtin defaults"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
