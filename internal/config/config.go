package config

import (
    "errors"
    "fmt"
    "os"
    "path/filepath"

    "github.com/pelletier/go-toml/v2"
)

// Preferences are startup defaults only. Documents never carry formatting.
//
//  [font]
//  family = "Courier"
//  size = 14
//
//  [editor]
//  color = "#d0d0d0"
type Preferences struct {
    Font    FontPrefs   `toml:"font"`
    Editor  EditorPrefs `toml:"editor"`
    LogFile string      `toml:"log_file,omitempty"`
}

type FontPrefs struct {
    Family    string `toml:"family,omitempty"`
    Size      int    `toml:"size,omitempty"`
    Bold      bool   `toml:"bold,omitempty"`
    Italic    bool   `toml:"italic,omitempty"`
    Underline bool   `toml:"underline,omitempty"`
}

type EditorPrefs struct {
    Color       string `toml:"color,omitempty"` // foreground, "#rrggbb" or palette name
    LineNumbers bool   `toml:"line_numbers,omitempty"`
    NoColor     bool   `toml:"no_color,omitempty"`
}

// Defaults mirror the formatting state's startup values.
func Defaults() Preferences {
    return Preferences{Font: FontPrefs{Family: "Helvetica", Size: 12}}
}

// DefaultPath is $XDG_CONFIG_HOME/plainpad/config.toml (or the OS equivalent).
func DefaultPath() string {
    dir, err := os.UserConfigDir()
    if err != nil {
        return ""
    }
    return filepath.Join(dir, "plainpad", "config.toml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Preferences, error) {
    p := Defaults()
    if path == "" {
        return p, nil
    }
    data, err := os.ReadFile(path)
    if err != nil {
        if errors.Is(err, os.ErrNotExist) {
            return p, nil
        }
        return p, fmt.Errorf("read config: %w", err)
    }
    if err := toml.Unmarshal(data, &p); err != nil {
        return Defaults(), fmt.Errorf("parse config %s: %w", path, err)
    }
    if p.Font.Family == "" {
        p.Font.Family = Defaults().Font.Family
    }
    if p.Font.Size < 0 {
        return Defaults(), fmt.Errorf("config %s: font size must be positive, got %d", path, p.Font.Size)
    }
    if p.Font.Size == 0 {
        p.Font.Size = Defaults().Font.Size
    }
    return p, nil
}

// Save writes p as TOML, creating the parent directory.
func Save(path string, p Preferences) error {
    data, err := toml.Marshal(p)
    if err != nil {
        return err
    }
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
        return fmt.Errorf("create config dir: %w", err)
    }
    return os.WriteFile(path, data, 0644)
}
