package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig
	Log LogConfig
}

// UIConfig holds presentation settings. The reveal trigger (threshold,
// root margin) is deliberately absent: it is fixed by the page, not
// user-adjustable.
type UIConfig struct {
	// ReducedMotion skips the fade transition; revealed elements jump
	// straight to full style.
	ReducedMotion bool `mapstructure:"reduced_motion"`
	// Width is the content wrap width in columns.
	Width int `mapstructure:"width"`
	// GlamourStyle selects the markdown style: "dark", "light" or "auto".
	GlamourStyle string `mapstructure:"glamour_style"`
}

// LogConfig holds debug-log settings. The log goes to a file because the
// TUI owns the terminal; an empty path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and env. Env var overrides use prefix JAXPY_TOUR_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.reduced_motion", false)
	v.SetDefault("ui.width", 72)
	v.SetDefault("ui.glamour_style", "dark")
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JAXPY_TOUR_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jaxpy-tour"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JAXPY_TOUR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.Width < 40 {
		c.UI.Width = 40
	}
	return c, nil
}
