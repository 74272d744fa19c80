package main

import (
    "os"
    "path/filepath"
    "testing"

    "plainpad/internal/status"
)

func TestCountFile(t *testing.T) {
    dir := t.TempDir()
    cases := []struct {
        name string
        body string
        want status.Metrics
    }{
        {"empty", "", status.Metrics{}},
        {"two words", "hello world", status.Metrics{Words: 2, Chars: 11}},
        {"trailing newline kept", "a b\n", status.Metrics{Words: 2, Chars: 4}},
        {"multibyte", "héllo wörld", status.Metrics{Words: 2, Chars: 11}},
        {"crlf counted as lf", "a b\r\n", status.Metrics{Words: 2, Chars: 4}},
    }
    for _, tc := range cases {
        path := filepath.Join(dir, tc.name+".txt")
        if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
            t.Fatal(err)
        }
        got, err := countFile(path)
        if err != nil {
            t.Fatalf("%s: %v", tc.name, err)
        }
        if got != tc.want {
            t.Fatalf("%s: got %+v want %+v", tc.name, got, tc.want)
        }
    }
}

func TestCountFileRejectsBinary(t *testing.T) {
    path := filepath.Join(t.TempDir(), "bin")
    os.WriteFile(path, []byte{0xff, 0x00, 0xfe}, 0o644)
    if _, err := countFile(path); err == nil {
        t.Fatal("expected error for invalid UTF-8")
    }
    if _, err := countFile(filepath.Join(t.TempDir(), "missing")); err == nil {
        t.Fatal("expected error for missing file")
    }
}
