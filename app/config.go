package app

import (
	"fmt"
	"os"

	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/uiutil/widget"
	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	Scroll  ScrollSection     `toml:"scroll"`
	Font    FontSection       `toml:"font"`
	Palette map[string]string `toml:"palette"` // name -> "#rrggbb"
}

type ScrollSection struct {
	BarThickness   int `toml:"bar_thickness"`
	UnitIncrement  int `toml:"unit_increment"`
	BlockIncrement int `toml:"block_increment"`
	WheelStep      int `toml:"wheel_step"`
}

type FontSection struct {
	Size float64 `toml:"size"`
}

func DefaultConfig() *Config {
	sc := widget.DefaultScrollConfig()
	return &Config{
		Scroll: ScrollSection{
			BarThickness:   sc.BarThickness,
			UnitIncrement:  sc.UnitIncrement,
			BlockIncrement: sc.BlockIncrement,
			WheelStep:      50,
		},
		Font: FontSection{Size: 14},
	}
}

// Values not present in the file keep their defaults. An empty filename returns the defaults.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()
	if filename == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := ParseConfig(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

func ParseConfig(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg.Validate()
}

func (cfg *Config) Validate() error {
	s := &cfg.Scroll
	switch {
	case s.BarThickness < 0:
		return fmt.Errorf("bad bar_thickness: %v", s.BarThickness)
	case s.UnitIncrement <= 0:
		return fmt.Errorf("bad unit_increment: %v", s.UnitIncrement)
	case s.BlockIncrement <= 0:
		return fmt.Errorf("bad block_increment: %v", s.BlockIncrement)
	case s.WheelStep <= 0:
		return fmt.Errorf("bad wheel_step: %v", s.WheelStep)
	case cfg.Font.Size <= 0:
		return fmt.Errorf("bad font size: %v", cfg.Font.Size)
	}
	if _, err := cfg.ThemePalette(); err != nil {
		return err
	}
	return nil
}

func (cfg *Config) ScrollConfig() widget.ScrollConfig {
	return widget.ScrollConfig{
		BarThickness:   cfg.Scroll.BarThickness,
		UnitIncrement:  cfg.Scroll.UnitIncrement,
		BlockIncrement: cfg.Scroll.BlockIncrement,
	}
}

// Palette colors merged over the default palette.
func (cfg *Config) ThemePalette() (widget.Palette, error) {
	pal := widget.DefaultPalette.Copy()
	for k, v := range cfg.Palette {
		if _, ok := widget.DefaultPalette[k]; !ok {
			return nil, fmt.Errorf("palette: unknown color name: %q", k)
		}
		c, err := imageutil.ParseHexColor(v)
		if err != nil {
			return nil, fmt.Errorf("palette: %v: %w", k, err)
		}
		pal[k] = c
	}
	return pal, nil
}
