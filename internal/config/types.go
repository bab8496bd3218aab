package config

import "time"

// Config is the root configuration structure
type Config struct {
	Socket     SocketConfig     `yaml:"socket" json:"socket" mapstructure:"socket"`
	Output     OutputConfig     `yaml:"output" json:"output" mapstructure:"output"`
	Log        LogConfig        `yaml:"log" json:"log" mapstructure:"log"`
	Navigation NavigationConfig `yaml:"navigation" json:"navigation" mapstructure:"navigation"`
}

// SocketConfig controls how the window manager is reached
type SocketConfig struct {
	Path    string        `yaml:"path,omitempty" json:"path,omitempty" mapstructure:"path"` // Empty: $I3SOCK, $SWAYSOCK, i3 --get-socketpath
	Timeout time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
}

// OutputConfig controls terminal rendering
type OutputConfig struct {
	Color bool `yaml:"color" json:"color" mapstructure:"color"`
	ASCII bool `yaml:"ascii" json:"ascii" mapstructure:"ascii"` // Plain ASCII tree glyphs
	JSON  bool `yaml:"json" json:"json" mapstructure:"json"`
}

// LogConfig selects the log sink
type LogConfig struct {
	File  string `yaml:"file,omitempty" json:"file,omitempty" mapstructure:"file"` // Empty: console
	Debug bool   `yaml:"debug" json:"debug" mapstructure:"debug"`
}

// NavigationConfig tunes previous/next window traversal
type NavigationConfig struct {
	IncludeFloating   bool `yaml:"includeFloating" json:"includeFloating" mapstructure:"includeFloating"`
	SkipEmptySiblings bool `yaml:"skipEmptySiblings" json:"skipEmptySiblings" mapstructure:"skipEmptySiblings"`
}
