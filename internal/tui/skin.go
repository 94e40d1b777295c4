package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// skinFile is the optional color override file, one hex value per key.
type skinFile struct {
	Navy   string `yaml:"navy"`
	Slate  string `yaml:"slate"`
	White  string `yaml:"white"`
	Gray   string `yaml:"gray"`
	Blue   string `yaml:"blue"`
	Green  string `yaml:"green"`
	Orange string `yaml:"orange"`
	Red    string `yaml:"red"`
	Purple string `yaml:"purple"`
}

// InitializeSkin loads the named skin from configDir/skins/<name>.yml and
// applies it to the palette. The "default" skin (or empty name) keeps the
// built-in colors. Unset keys keep their current value.
func InitializeSkin(name, configDir string) error {
	if name == "" || name == "default" {
		return nil
	}

	path := filepath.Join(configDir, "skins", name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("tui: read skin %q: %w", name, err)
	}

	var skin skinFile
	if err := yaml.Unmarshal(data, &skin); err != nil {
		return fmt.Errorf("tui: parse skin %q: %w", name, err)
	}

	applyColor(&ColorNavy, skin.Navy)
	applyColor(&ColorSlate, skin.Slate)
	applyColor(&ColorWhite, skin.White)
	applyColor(&ColorGray, skin.Gray)
	applyColor(&ColorBlue, skin.Blue)
	applyColor(&ColorGreen, skin.Green)
	applyColor(&ColorOrange, skin.Orange)
	applyColor(&ColorRed, skin.Red)
	applyColor(&ColorPurple, skin.Purple)

	rebuildStyles()
	return nil
}

func applyColor(dst *lipgloss.Color, value string) {
	if value != "" {
		*dst = lipgloss.Color(value)
	}
}
