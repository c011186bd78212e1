package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"ColorDropper/internal/hexcolor"
)

// Config holds application configuration.
type Config struct {
	Image   ImageConfig
	Surface SurfaceConfig
	Overlay OverlayConfig
	Window  WindowConfig
	Picker  PickerConfig
}

// ImageConfig points at the raster painted into the surface.
type ImageConfig struct {
	Path string
}

// SurfaceConfig is the fixed drawing surface size in pixels.
type SurfaceConfig struct {
	Width  int
	Height int
}

// OverlayConfig shapes the ring that follows the cursor while picking.
type OverlayConfig struct {
	Radius      float32
	StrokeWidth float32 `mapstructure:"stroke_width"`
	Opacity     float64
	TextSize    float32 `mapstructure:"text_size"`
}

type WindowConfig struct {
	Title string
}

type PickerConfig struct {
	DefaultColor string `mapstructure:"default_color"`
}

// Load reads configuration from file and env. Env var overrides use prefix COLORDROPPER_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("image.path", "canvas.jpg")
	v.SetDefault("surface.width", 800)
	v.SetDefault("surface.height", 600)
	v.SetDefault("overlay.radius", 45)
	v.SetDefault("overlay.stroke_width", 10)
	v.SetDefault("overlay.opacity", 0.5)
	v.SetDefault("overlay.text_size", 11)
	v.SetDefault("window.title", "Color Dropper")
	v.SetDefault("picker.default_color", hexcolor.White)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("COLORDROPPER_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "colordropper"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("COLORDROPPER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine, a broken one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the widget cannot render with.
func (c Config) Validate() error {
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("surface size %dx%d must be positive", c.Surface.Width, c.Surface.Height)
	}
	if c.Overlay.Radius <= 0 || c.Overlay.StrokeWidth < 0 {
		return fmt.Errorf("overlay radius %v and stroke width %v out of range", c.Overlay.Radius, c.Overlay.StrokeWidth)
	}
	if c.Overlay.Opacity < 0 || c.Overlay.Opacity > 1 {
		return fmt.Errorf("overlay opacity %v must be within [0,1]", c.Overlay.Opacity)
	}
	if !hexcolor.Valid(c.Picker.DefaultColor) {
		return fmt.Errorf("picker default color: %w: %q", hexcolor.ErrInvalid, c.Picker.DefaultColor)
	}
	return nil
}
