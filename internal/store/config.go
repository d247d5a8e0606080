package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ColumnCount is the number of table columns: name, venue, tag, date, link.
const ColumnCount = 5

// DefaultMinWidths mirrors the widget's pixel minimums (300/120/140/130/110) in terminal cells.
var DefaultMinWidths = []int{30, 12, 14, 13, 11}

var DefaultWidths = []int{48, 16, 24, 13, 34}

type Config struct {
	// Data is the record source: a file path or an http(s) URL.
	Data string `mapstructure:"data"`
	// Timezone names the zone used for year filtering and date labels ("" = local).
	Timezone string        `mapstructure:"timezone"`
	Columns  ColumnsConfig `mapstructure:"columns"`
	TUI      TUIConfig     `mapstructure:"tui"`
	Log      LogConfig     `mapstructure:"log"`
}

type ColumnsConfig struct {
	MinWidths []int `mapstructure:"min_widths"`
	Widths    []int `mapstructure:"widths"`
}

type TUIConfig struct {
	// Theme is light|dark|auto.
	Theme string `mapstructure:"theme"`
	// Glyphs is unicode|ascii.
	Glyphs string `mapstructure:"glyphs"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Debug bool   `mapstructure:"debug"`
}

// ConfigDir is ~/.config/paperboard unless PAPERBOARD_CONFIG_DIR overrides it.
func ConfigDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("PAPERBOARD_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "paperboard"), nil
}

// NewViper returns a viper instance with defaults, search paths and env binding applied.
// cfgFile, when set, replaces the search path.
func NewViper(cfgFile string) *viper.Viper {
	v := viper.New()
	v.SetDefault("data", DefaultDataPath)
	v.SetDefault("timezone", "")
	v.SetDefault("columns.min_widths", DefaultMinWidths)
	v.SetDefault("columns.widths", DefaultWidths)
	v.SetDefault("tui.theme", "auto")
	v.SetDefault("tui.glyphs", "unicode")
	v.SetDefault("log.file", "")
	v.SetDefault("log.debug", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("paperboard")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix("PAPERBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the config file (a missing file is fine) and decodes it.
func LoadConfig(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	if strings.TrimSpace(c.Data) == "" {
		c.Data = DefaultDataPath
	}
	if len(c.Columns.MinWidths) == 0 {
		c.Columns.MinWidths = append([]int(nil), DefaultMinWidths...)
	}
	if len(c.Columns.Widths) == 0 {
		c.Columns.Widths = append([]int(nil), DefaultWidths...)
	}
	if len(c.Columns.MinWidths) != ColumnCount {
		return fmt.Errorf("columns.min_widths: want %d values, got %d", ColumnCount, len(c.Columns.MinWidths))
	}
	if len(c.Columns.Widths) != ColumnCount {
		return fmt.Errorf("columns.widths: want %d values, got %d", ColumnCount, len(c.Columns.Widths))
	}
	// A configured width never starts below its minimum.
	for i, w := range c.Columns.Widths {
		if w < c.Columns.MinWidths[i] {
			c.Columns.Widths[i] = c.Columns.MinWidths[i]
		}
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone; empty means the local zone.
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", tz, err)
	}
	return loc, nil
}
