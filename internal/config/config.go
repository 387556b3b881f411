package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/Mavwarf/ctmicons/internal/paths"
)

// DefaultText is the label drawn on every icon.
const DefaultText = "CTM"

// DefaultFontScale is the font size as a fraction of the icon edge.
const DefaultFontScale = 0.25

// IconSpec describes one square icon to render.
type IconSpec struct {
	Size int    `json:"size"`
	Path string `json:"path"`
}

// DefaultIcons returns the standard icon set, in render order.
func DefaultIcons() []IconSpec {
	return []IconSpec{
		{Size: 1024, Path: "assets/icon.png"},
		{Size: 1024, Path: "assets/adaptive-icon.png"},
		{Size: 512, Path: "assets/splash-icon.png"},
		{Size: 32, Path: "assets/favicon.png"},
	}
}

// MQTT holds broker settings for render events. An empty Broker disables
// publishing.
type MQTT struct {
	Broker   string `json:"broker,omitempty"`
	Topic    string `json:"topic,omitempty"`
	ClientID string `json:"client_id,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	QoS      byte   `json:"qos,omitempty"`
	Retain   bool   `json:"retain,omitempty"`
}

// Enabled reports whether a broker is configured.
func (m MQTT) Enabled() bool {
	return m.Broker != ""
}

// Options holds global settings parsed from the "config" key.
type Options struct {
	Text      string   `json:"text,omitempty"`
	FontScale float64  `json:"font_scale,omitempty"`
	Fonts     []string `json:"fonts,omitempty"` // overrides the platform candidates
	History   bool     `json:"history,omitempty"`
	MQTT      MQTT     `json:"mqtt,omitempty"`
}

// Config holds the top-level configuration: global options and icons.
type Config struct {
	Options Options    `json:"config"`
	Icons   []IconSpec `json:"icons,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Options: Options{Text: DefaultText, FontScale: DefaultFontScale},
		Icons:   DefaultIcons(),
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults. An absent or empty
// "icons" list falls back to DefaultIcons.
func (c *Config) UnmarshalJSON(data []byte) error {
	c.Options.Text = DefaultText
	c.Options.FontScale = DefaultFontScale
	type Alias Config
	if err := json.Unmarshal(data, (*Alias)(c)); err != nil {
		return err
	}
	if c.Options.Text == "" {
		c.Options.Text = DefaultText
	}
	if c.Options.FontScale == 0 {
		c.Options.FontScale = DefaultFontScale
	}
	if len(c.Icons) == 0 {
		c.Icons = DefaultIcons()
	}
	return nil
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty)
//  2. ctmicons-config.json next to the running binary
//  3. ~/.config/ctmicons/ctmicons-config.json
//
// When none of these exist the built-in Default is returned; a config
// file is optional.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	// Next to binary
	exe, err := os.Executable()
	if err == nil {
		p := filepath.Join(filepath.Dir(exe), paths.ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	// User config directory
	home, err := os.UserHomeDir()
	if err == nil {
		var p string
		if runtime.GOOS == "windows" {
			p = filepath.Join(home, "AppData", "Roaming", paths.AppDirName, paths.ConfigFileName)
		} else {
			p = filepath.Join(home, ".config", paths.AppDirName, paths.ConfigFileName)
		}
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	return Default(), nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
