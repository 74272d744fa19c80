package tui

import (
	"plainpad/internal/tui/views/menubar"
)

// command is anything a menu row or shortcut can trigger.
type command int

const (
	cmdNone command = iota
	cmdNew
	cmdOpen
	cmdSave
	cmdSaveAs
	cmdCompare
	cmdExit
	cmdCopyAll
	cmdPaste
	cmdFamily
	cmdSize
	cmdBold
	cmdItalic
	cmdUnderline
	cmdColor
)

type menuItem struct {
	label string
	accel string
	cmd   command
	check func(m model) bool // nil for plain commands
}

type menuDef struct {
	title string
	items []menuItem
	// direct is run on selection when the menu has no items.
	direct command
}

var sep = menuItem{}

var menus = []menuDef{
	{title: "File", items: []menuItem{
		{label: "New", accel: "ctrl+n", cmd: cmdNew},
		{label: "Open…", accel: "ctrl+o", cmd: cmdOpen},
		{label: "Save", accel: "ctrl+s", cmd: cmdSave},
		{label: "Save As…", cmd: cmdSaveAs},
		{label: "Compare with Saved", cmd: cmdCompare},
		sep,
		{label: "Exit", accel: "ctrl+q", cmd: cmdExit},
	}},
	{title: "Edit", items: []menuItem{
		{label: "Copy All", cmd: cmdCopyAll},
		{label: "Paste", cmd: cmdPaste},
	}},
	{title: "Font", items: []menuItem{
		{label: "Family…", cmd: cmdFamily},
		{label: "Size…", cmd: cmdSize},
		sep,
		{label: "Bold", cmd: cmdBold, check: func(m model) bool { return m.format.Bold() }},
		{label: "Italic", cmd: cmdItalic, check: func(m model) bool { return m.format.Italic() }},
		{label: "Underline", cmd: cmdUnderline, check: func(m model) bool { return m.format.Underline() }},
	}},
	{title: "Text Color", direct: cmdColor},
}

func menuTitles() []string {
	out := make([]string, len(menus))
	for i, d := range menus {
		out[i] = d.title
	}
	return out
}

// menuState is the open menu and the highlighted row.
type menuState struct {
	open   int
	cursor int
}

func (s *menuState) switchTo(i int) {
	n := len(menus)
	s.open = (i%n + n) % n
	s.cursor = 0
}

// move steps the cursor by delta, skipping separators and wrapping.
func (s *menuState) move(delta int) {
	items := menus[s.open].items
	if len(items) == 0 {
		return
	}
	c := s.cursor
	for range items {
		c = (c + delta + len(items)) % len(items)
		if items[c].cmd != cmdNone {
			break
		}
	}
	s.cursor = c
}

// selected is the command under the cursor, or the menu's direct command.
func (s menuState) selected() command {
	d := menus[s.open]
	if len(d.items) == 0 {
		return d.direct
	}
	return d.items[s.cursor].cmd
}

func (s menuState) dropdown(m model) string {
	d := menus[s.open]
	if len(d.items) == 0 {
		return ""
	}
	rows := make([]menubar.Item, len(d.items))
	for i, it := range d.items {
		rows[i] = menubar.Item{Label: it.label, Accel: it.accel, Sep: it.cmd == cmdNone}
		if it.check != nil {
			rows[i].Check = true
			rows[i].Checked = it.check(m)
		}
	}
	return menubar.Dropdown(rows, s.cursor)
}
