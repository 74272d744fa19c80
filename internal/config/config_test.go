package config

import (
    "os"
    "path/filepath"
    "strings"
    "testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
    p, err := Load(filepath.Join(t.TempDir(), "none.toml"))
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if p != Defaults() {
        t.Fatalf("expected defaults, got %+v", p)
    }
}

func TestLoadOverridesDefaults(t *testing.T) {
    path := filepath.Join(t.TempDir(), "config.toml")
    src := `log_file = "/tmp/pad.log"

[font]
family = "Courier"
italic = true

[editor]
color = "#ff8800"
line_numbers = true
`
    if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
        t.Fatal(err)
    }
    p, err := Load(path)
    if err != nil {
        t.Fatal(err)
    }
    if p.Font.Family != "Courier" || p.Font.Size != 12 || !p.Font.Italic || p.Font.Bold {
        t.Fatalf("font prefs not applied: %+v", p.Font)
    }
    if p.Editor.Color != "#ff8800" || !p.Editor.LineNumbers || p.LogFile != "/tmp/pad.log" {
        t.Fatalf("editor prefs not applied: %+v", p)
    }
}

func TestLoadRejectsBadInput(t *testing.T) {
    cases := map[string]string{
        "syntax":        "[font\nfamily=",
        "negative size": "[font]\nsize = -4\n",
    }
    for name, src := range cases {
        path := filepath.Join(t.TempDir(), "bad.toml")
        os.WriteFile(path, []byte(src), 0o644)
        if _, err := Load(path); err == nil || !strings.Contains(err.Error(), path) {
            t.Fatalf("%s: expected error mentioning path, got %v", name, err)
        }
    }
}

func TestSaveLoadRoundTrip(t *testing.T) {
    path := filepath.Join(t.TempDir(), "nested", "config.toml")
    in := Defaults()
    in.Font.Size = 18
    in.Font.Underline = true
    in.Editor.Color = "red"
    if err := Save(path, in); err != nil {
        t.Fatal(err)
    }
    out, err := Load(path)
    if err != nil {
        t.Fatal(err)
    }
    if out != in {
        t.Fatalf("round trip: got %+v, want %+v", out, in)
    }
}
