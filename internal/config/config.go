package config

import (
	"fmt"
	"os"

	"github.com/altin/fault-finder/internal/ui"
)

// ThemeEnv sets the default theme when --theme is not given.
const ThemeEnv = "FAULTFINDER_THEME"

type Config struct {
	DataPath string // empty means the bundled dataset
	Theme    ui.Theme
	LogFile  string // empty disables logging
	Query    string // initial search query
}

// DefaultTheme returns the theme named by FAULTFINDER_THEME, or light.
func DefaultTheme() string {
	if v := os.Getenv(ThemeEnv); v != "" {
		return v
	}
	return ui.ThemeLight.String()
}

func (c Config) Validate() error {
	if !c.Theme.Valid() {
		return fmt.Errorf("unknown theme %d", c.Theme)
	}
	if c.DataPath != "" {
		info, err := os.Stat(c.DataPath)
		if err != nil {
			return fmt.Errorf("dataset %s: %w", c.DataPath, err)
		}
		if info.IsDir() {
			return fmt.Errorf("dataset %s is a directory", c.DataPath)
		}
	}
	return nil
}
