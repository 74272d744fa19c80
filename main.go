// Copyright
// SPDX-License-Identifier: MIT
// plainpad: single-document plain-text editor for the terminal
package main

import (
    "context"
    "errors"
    "flag"
    "fmt"
    "io"
    "log"
    "os"
    "path/filepath"
    "strings"
    "unicode/utf8"

    tea "github.com/charmbracelet/bubbletea"
    "github.com/dustin/go-humanize"
    "github.com/pelletier/go-toml/v2"

    "plainpad/internal/config"
    "plainpad/internal/document"
    "plainpad/internal/format"
    "plainpad/internal/status"
    appTUI "plainpad/internal/tui"
    "plainpad/internal/tui/util"
)

const Version = "0.3.0"

/* ---------- CLI ---------- */

func main() {
    args := os.Args[1:]
    if len(args) == 0 {
        cmdEdit(nil)
        return
    }
    switch args[0] {
    case "help", "-h", "--help":
        if len(args) > 1 {
            helpTopic(args[1])
        } else {
            usage()
        }
    case "version", "-v", "--version":
        fmt.Println("plainpad", Version)
    case "edit":
        cmdEdit(args[1:])
    case "fonts":
        cmdFonts(args[1:])
    case "count":
        cmdCount(args[1:])
    case "config":
        cmdConfig(args[1:])
    default:
        // plainpad [options] FILE
        cmdEdit(args)
    }
}

func usage() {
    fmt.Println(`plainpad ` + Version + `
A single-document plain-text editor with whole-document font styling and live word/character counts.
USAGE
  plainpad [options] [FILE]
  plainpad <command> [options]
COMMANDS
  edit         Open the editor (default; try: plainpad help edit)
  fonts        List the font families the Font → Family menu offers
  count        Print word and character counts for files
  config       Print the effective preferences, or write a starter file with --init
  help         Show help (try: plainpad help edit)
  version      Print version
NOTES
  • Files are read and written as plain UTF-8; formatting is never saved.
  • Keys: ctrl+n new, ctrl+o open, ctrl+s save, ctrl+q exit, F10/Esc menu, F1 help.`)
}

func helpTopic(name string) {
    switch name {
    case "edit":
        fmt.Printf(`USAGE
  plainpad [edit] [--config PATH] [--family NAME] [--size N] [--color C]
               [--no-color] [--log-file PATH] [FILE]
DESCRIPTION
  Opens FILE (or an empty Untitled document). A FILE that does not exist yet
  becomes the suggested location for the first save.
OPTIONS
  --config PATH     Preferences file (default: %s)
  --family NAME     Initial font family (default: Helvetica)
  --size N          Initial font size in points (default: 12)
  --color C         Initial text color: a name (red, navy, ...) or #rrggbb
  --no-color        Plain status chips (also honored via NO_COLOR)
  --log-file PATH   Append diagnostic logs to file (created if missing)
`, config.DefaultPath())
    case "count":
        fmt.Println(`USAGE
  plainpad count FILE...
DESCRIPTION
  Prints "Words: N | Characters: M" for each file, as the editor's status bar
  would show it, followed by a total when more than one file is given.`)
    case "config":
        fmt.Println(`USAGE
  plainpad config [--config PATH] [--init]
DESCRIPTION
  Prints the effective preferences as TOML. With --init, writes the defaults
  to the preferences file unless one already exists.`)
    default:
        usage()
    }
}

/* ---------- commands ---------- */

func cmdEdit(args []string) {
    fs := flag.NewFlagSet("edit", flag.ExitOnError)
    fs.Usage = func() { helpTopic("edit") }
    cfgPath := fs.String("config", config.DefaultPath(), "Preferences file")
    family := fs.String("family", "", "Initial font family")
    size := fs.Int("size", 0, "Initial font size")
    color := fs.String("color", "", "Initial text color (name or #rrggbb)")
    noColor := fs.Bool("no-color", false, "Disable colored status chips")
    logPath := fs.String("log-file", "", "Append logs to file (created if missing)")
    _ = fs.Parse(args)
    if fs.NArg() > 1 {
        fatal(fmt.Errorf("edit takes at most one FILE, got %d", fs.NArg()))
    }

    prefs, err := config.Load(*cfgPath)
    if err != nil {
        fatal(err)
    }
    if *family != "" {
        prefs.Font.Family = *family
    }
    if *size != 0 {
        if *size < 0 {
            fatal(fmt.Errorf("--size must be positive, got %d", *size))
        }
        prefs.Font.Size = *size
    }
    if *color != "" {
        if _, err := util.ParseColor(*color); err != nil {
            fatal(err)
        }
        prefs.Editor.Color = *color
    }
    if *logPath == "" {
        *logPath = prefs.LogFile
    }

    closeLog, err := setupLog(*logPath)
    if err != nil {
        fatal(err)
    }
    defer closeLog()

    opts := appTUI.Options{
        Prefs:     prefs,
        Path:      fs.Arg(0),
        NoColor:   *noColor,
        Clipboard: appTUI.SystemClipboard(),
    }
    if opts.Clipboard == nil {
        log.Printf("clipboard unsupported on this system")
    }
    if err := appTUI.Run(opts); err != nil {
        fatal(err)
    }
}

func cmdFonts(args []string) {
    fs := flag.NewFlagSet("fonts", flag.ExitOnError)
    _ = fs.Parse(args)
    cat, err := format.Families(context.Background())
    if err != nil {
        fmt.Fprintln(os.Stderr, "warning:", err)
    }
    for _, n := range cat.Names() {
        fmt.Println(n)
    }
    if cat.Fallback {
        fmt.Fprintln(os.Stderr, "(fontconfig unavailable: built-in list shown)")
    }
}

func cmdCount(args []string) {
    fs := flag.NewFlagSet("count", flag.ExitOnError)
    fs.Usage = func() { helpTopic("count") }
    _ = fs.Parse(args)
    if fs.NArg() == 0 {
        helpTopic("count")
        os.Exit(2)
    }
    var total status.Metrics
    failed := false
    for _, path := range fs.Args() {
        m, err := countFile(path)
        if err != nil {
            fmt.Fprintln(os.Stderr, "error:", err)
            failed = true
            continue
        }
        total.Words += m.Words
        total.Chars += m.Chars
        fmt.Printf("%s: %s\n", path, m)
    }
    if fs.NArg() > 1 {
        fmt.Printf("total: %s words, %s characters\n",
            humanize.Comma(int64(total.Words)), humanize.Comma(int64(total.Chars)))
    }
    if failed {
        os.Exit(1)
    }
}

// countFile measures a file the way the editor does once it is loaded:
// the surface always carries one structural newline after the text.
func countFile(path string) (status.Metrics, error) {
    data, err := os.ReadFile(path)
    if err != nil {
        return status.Metrics{}, err
    }
    if !utf8.Valid(data) {
        return status.Metrics{}, fmt.Errorf("%s: not valid UTF-8 text", path)
    }
    return status.Measure(document.NormalizeNewlines(string(data)) + "\n"), nil
}

func cmdConfig(args []string) {
    fs := flag.NewFlagSet("config", flag.ExitOnError)
    fs.Usage = func() { helpTopic("config") }
    cfgPath := fs.String("config", config.DefaultPath(), "Preferences file")
    initFile := fs.Bool("init", false, "Write default preferences if the file is missing")
    _ = fs.Parse(args)

    if *initFile {
        if _, err := os.Stat(*cfgPath); !errors.Is(err, os.ErrNotExist) {
            fmt.Println(*cfgPath, "already exists; not overwriting")
            return
        }
        if err := config.Save(*cfgPath, config.Defaults()); err != nil {
            fatal(err)
        }
        fmt.Println("Wrote", *cfgPath)
        return
    }
    prefs, err := config.Load(*cfgPath)
    if err != nil {
        fatal(err)
    }
    out, err := toml.Marshal(prefs)
    if err != nil {
        fatal(err)
    }
    fmt.Printf("# %s\n%s", *cfgPath, out)
}

/* ---------- helpers ---------- */

// setupLog sends the standard logger to path, or discards it: the editor
// owns the terminal while it runs.
func setupLog(path string) (func(), error) {
    if path == "" {
        log.SetOutput(io.Discard)
        return func() {}, nil
    }
    if dir := filepath.Dir(path); dir != "." && dir != "" {
        _ = os.MkdirAll(dir, 0o755)
    }
    f, err := tea.LogToFile(path, "plainpad ")
    if err != nil {
        return nil, fmt.Errorf("open log file: %w", err)
    }
    log.Printf("=== plainpad %s started (%s) ===", Version, strings.Join(os.Args[1:], " "))
    return func() { _ = f.Close() }, nil
}

func fatal(err error) {
    fmt.Fprintln(os.Stderr, "error:", err)
    os.Exit(1)
}
