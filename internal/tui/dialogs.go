package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var boxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

func (m model) confirmView() string {
	p := m.doc.Pending()
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title) + "\n\n")
	b.WriteString(p.Message + "\n")
	if m.confirmNote != "" {
		b.WriteString(faintStyle.Render(m.confirmNote) + "\n")
	}
	b.WriteString("\n" + selStyle.Render("[Y]es") + "   [N]o   [C]ancel")
	return boxStyle.Render(b.String())
}

func (m model) openView() string {
	p := m.doc.Pending()
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title) + "  " + faintStyle.Render(filterLabel(p.Filter.Label, p.Filter.Extensions)) + "\n")
	if m.typing {
		b.WriteString("\n" + m.path.View())
		return b.String()
	}
	b.WriteString(faintStyle.Render(m.chooser.CurrentDirectory) + "\n\n")
	b.WriteString(m.chooser.View() + "\n")
	b.WriteString(faintStyle.Render("enter: open   ←/→: directories   tab: type a path   esc: cancel"))
	return b.String()
}

func (m model) saveView() string {
	p := m.doc.Pending()
	return titleStyle.Render(p.Title) + "  " + faintStyle.Render(filterLabel(p.Filter.Label, p.Filter.Extensions)) +
		"\n\n" + m.path.View()
}

func (m model) colorEntryView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Text Color") + "\n\n")
	b.WriteString(m.colorIn.View() + "\n\n")
	b.WriteString(faintStyle.Render("enter: apply   esc: cancel"))
	return boxStyle.Render(b.String())
}

func filterLabel(label string, exts []string) string {
	if len(exts) == 0 {
		return label
	}
	return fmt.Sprintf("%s (*%s)", label, strings.Join(exts, ", *"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
