package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigDir  = ".config/i4"
	DefaultConfigFile = "config.yaml"
	EnvPrefix         = "I4"
	DefaultTimeout    = 5 * time.Second
)

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Socket: SocketConfig{
			Timeout: DefaultTimeout,
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
}

// LoadConfig loads configuration from the specified path or default location.
// If path is empty, uses ~/.config/i4/config.yaml and falls back to the
// defaults when that file does not exist. I4_* environment variables
// override file values, e.g. I4_SOCKET_PATH or I4_NAVIGATION_SKIPEMPTYSIBLINGS.
func LoadConfig(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(ExpandHome(path))
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return decode(v)
}

// LoadConfigFromBytes loads configuration from raw bytes
// format should be "yaml" or "json"
func LoadConfigFromBytes(data []byte, format string) (*Config, error) {
	switch format {
	case "yaml", "yml", "json":
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	v := newViper()
	v.SetConfigType(format)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to parse %s config: %w", strings.ToUpper(format), err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so env overrides reach Unmarshal
	def := Default()
	v.SetDefault("socket.path", def.Socket.Path)
	v.SetDefault("socket.timeout", def.Socket.Timeout)
	v.SetDefault("output.color", def.Output.Color)
	v.SetDefault("output.ascii", def.Output.ASCII)
	v.SetDefault("output.json", def.Output.JSON)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.debug", def.Log.Debug)
	v.SetDefault("navigation.includeFloating", def.Navigation.IncludeFloating)
	v.SetDefault("navigation.skipEmptySiblings", def.Navigation.SkipEmptySiblings)
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Socket.Path = ExpandHome(cfg.Socket.Path)
	cfg.Log.File = ExpandHome(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Marshal renders the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteDefault writes the default configuration to path, refusing to
// overwrite an existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}
	}

	data, err := Default().Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	header := "# i4 configuration\n# Environment variables with the I4_ prefix override these values.\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ExpandHome replaces a leading ~/ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
