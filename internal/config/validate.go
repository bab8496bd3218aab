package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// MaxTimeout bounds the IPC timeout
const MaxTimeout = 5 * time.Minute

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if err := validateSocket(&c.Socket); err != nil {
		return fmt.Errorf("socket: %w", err)
	}
	if c.Log.File != "" && !filepath.IsAbs(c.Log.File) {
		return fmt.Errorf("log: file must be an absolute path, got %q", c.Log.File)
	}
	return nil
}

func validateSocket(s *SocketConfig) error {
	if s.Path != "" && !filepath.IsAbs(s.Path) {
		return fmt.Errorf("path must be an absolute path, got %q", s.Path)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", s.Timeout)
	}
	if s.Timeout > MaxTimeout {
		return fmt.Errorf("timeout must be at most %s, got %s", MaxTimeout, s.Timeout)
	}
	return nil
}
