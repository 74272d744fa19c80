package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"plainpad/internal/format"
	"plainpad/internal/tui/util"
)

// pickItem is one row of the family, size or color pickers.
type pickItem struct {
	title string
	desc  string
	value string
}

func (i pickItem) Title() string       { return i.title }
func (i pickItem) Description() string { return i.desc }
func (i pickItem) FilterValue() string { return i.title }

// customColor is the color picker row that opens the hex entry.
const customColor = "custom"

func newPicker(title string, items []list.Item, current string, describe bool) list.Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = describe
	if !describe {
		d.SetSpacing(0)
	}
	l := list.New(items, d, 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	for i, it := range items {
		if strings.EqualFold(it.(pickItem).value, current) {
			l.Select(i)
			break
		}
	}
	return l
}

func familyPicker(c *format.Catalog, current string) list.Model {
	items := make([]list.Item, 0, c.Len()+1)
	if !c.Has(current) {
		items = append(items, pickItem{title: current, desc: "not installed, terminal font used", value: current})
	}
	desc := "installed"
	if c.Fallback {
		desc = "built-in list"
	}
	for _, n := range c.Names() {
		items = append(items, pickItem{title: n, desc: desc, value: n})
	}
	return newPicker("Font Family", items, current, true)
}

func sizePicker(current int) list.Model {
	sizes := format.Sizes()
	items := make([]list.Item, len(sizes))
	for i, n := range sizes {
		v := strconv.Itoa(n)
		items[i] = pickItem{title: v + " pt", value: v}
	}
	return newPicker("Font Size", items, strconv.Itoa(current), false)
}

func colorPicker(current string) list.Model {
	items := make([]list.Item, 0, len(util.TextColors)+1)
	for _, c := range util.TextColors {
		desc := c.Hex
		if desc == "" {
			desc = "terminal foreground"
		}
		items = append(items, pickItem{title: c.Name, desc: desc, value: c.Hex})
	}
	items = append(items, pickItem{title: "Custom…", desc: "enter a #rrggbb value", value: customColor})
	return newPicker("Text Color", items, current, true)
}
