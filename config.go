package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cardboard/internal/board"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const configFileName = ".cardboard.yaml"

type Config struct {
	SaveDirectory string            `yaml:"save_directory"`
	GridSpacing   float64           `yaml:"grid_spacing" validate:"gte=0"`
	BorderWidth   float64           `yaml:"border_width" validate:"gt=0"`
	Confirmations bool              `yaml:"confirmations"`
	StartScale    float64           `yaml:"start_scale" validate:"gte=0.5,lte=2"`
	Keys          board.KeyBindings `yaml:"keys"`
}

var configValidate = validator.New()

func defaultConfig() *Config {
	return &Config{
		GridSpacing:   board.DefaultGridSpacing,
		BorderWidth:   board.DefaultBorderWidth,
		Confirmations: true,
		StartScale:    1,
		Keys:          board.DefaultKeyBindings(),
	}
}

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, configFileName)
}

// loadConfig reads the YAML config at path over the defaults. A missing file
// is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		path = defaultConfigPath()
	}
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := config.normalize(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) normalize() error {
	if err := configValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("%s failed %s %s", strings.ToLower(e.Field()), e.Tag(), e.Param())
		}
		return err
	}
	if c.GridSpacing == 0 {
		c.GridSpacing = board.DefaultGridSpacing
	}
	c.GridSpacing = board.ClampGridSpacing(c.GridSpacing)
	c.Keys = c.Keys.Merge(board.DefaultKeyBindings())

	if strings.HasPrefix(c.SaveDirectory, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			c.SaveDirectory = filepath.Join(homeDir, strings.TrimPrefix(c.SaveDirectory, "~"))
		}
	}
	if c.SaveDirectory != "" && !filepath.IsAbs(c.SaveDirectory) {
		if absPath, err := filepath.Abs(c.SaveDirectory); err == nil {
			c.SaveDirectory = absPath
		}
	}
	return nil
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
