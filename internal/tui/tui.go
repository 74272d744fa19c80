package tui

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"plainpad/internal/config"
	"plainpad/internal/document"
	"plainpad/internal/format"
	"plainpad/internal/status"
	"plainpad/internal/tui/state"
	"plainpad/internal/tui/util"
	"plainpad/internal/tui/views/menubar"
	"plainpad/internal/tui/widgets/diff"
	"plainpad/internal/tui/widgets/editor"
	"plainpad/internal/tui/widgets/helpoverlay"
	"plainpad/internal/tui/widgets/statusbar"
	"plainpad/internal/tui/widgets/tagchips"
)

// Options configures the editor session.
type Options struct {
	Prefs     config.Preferences
	Path      string // file to open at startup; may not exist yet
	NoColor   bool
	Clipboard Clipboard // nil disables Copy All / Paste
}

// Run starts the editor and blocks until the user exits.
func Run(opts Options) error {
	m := newModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// ===== Model =====

type model struct {
	ui   state.UIState
	keys keyMap
	help help.Model

	// core
	surface *surface
	format  *format.State
	tracker *status.Tracker
	doc     *document.Controller
	notes   *notices

	// chrome
	bar     *statusbar.StatusBar
	editor  editor.Editor
	overlay helpoverlay.HelpOverlay
	diffv   diff.DiffView
	noColor bool
	title   string

	clip    Clipboard
	catalog *format.Catalog

	// dialogs
	menu        menuState
	picker      list.Model
	chooser     filepicker.Model
	typing      bool // open chooser switched to typed path entry
	path        pathInput
	colorIn     textinput.Model
	compare     viewport.Model
	saved       string // baseline shown by the compare view
	confirmNote string
	suggested   string // save location seeded from a missing startup path
}

func newModel(opts Options) model {
	m := model{
		keys:    defaultKeyMap(),
		help:    help.New(),
		notes:   &notices{},
		bar:     statusbar.NewStatusBar(),
		editor:  editor.NewEditor(),
		overlay: helpoverlay.NewHelpOverlay(),
		diffv:   diff.NewDiffView(),
		noColor: util.NoColor(opts.NoColor || opts.Prefs.Editor.NoColor),
		clip:    opts.Clipboard,
		catalog: format.BuiltinCatalog(),
		path:    newPathInput(),
		colorIn: newColorInput(),
		compare: viewport.New(0, 0),
	}
	m.ui.MinCol = 20

	m.surface = newSurface(opts.Prefs.Editor.LineNumbers)
	m.tracker = status.NewTracker(m.bar)
	m.doc = document.NewController(m.surface, m.tracker, m.notes)

	m.format = format.New(m.surface)
	f := opts.Prefs.Font
	if f.Family != "" {
		m.format.SetFamily(f.Family)
	}
	if f.Size > 0 {
		m.format.SetSize(f.Size)
	}
	m.format.SetBold(f.Bold)
	m.format.SetItalic(f.Italic)
	m.format.SetUnderline(f.Underline)
	if c := opts.Prefs.Editor.Color; c != "" {
		m.setColor(c)
	}

	if opts.Path != "" {
		if _, err := os.Stat(opts.Path); errors.Is(err, fs.ErrNotExist) {
			m.suggested = opts.Path
			m.ui = state.Notify(m.ui, "New file: "+filepath.Base(opts.Path))
		} else {
			m.doc.OpenPath(opts.Path)
		}
	}
	m.tracker.Recompute(m.surface.Content())
	m.absorb()
	m.title = m.windowTitle()
	return m
}

func newColorInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "Color: "
	ti.Placeholder = "#rrggbb or a name"
	ti.CharLimit = 16
	return ti
}

type fontsMsg struct {
	catalog *format.Catalog
	err     error
}

func loadFonts() tea.Msg {
	c, err := format.Families(context.Background())
	return fontsMsg{catalog: c, err: err}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, loadFonts, tea.SetWindowTitle(m.title))
}

// Update routes key presses to whatever currently owns input.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		m.layout()
		return m, nil
	case fontsMsg:
		if msg.err != nil {
			log.Printf("font probe: %v", msg.err)
		}
		if msg.catalog != nil {
			m.catalog = msg.catalog
			log.Printf("fonts: %d families (fallback=%v)", m.catalog.Len(), m.catalog.Fallback)
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.ui = state.ToggleHelp(m.ui)
			return m, nil
		}
		switch m.ui.Mode {
		case state.Menu:
			return m.updateMenu(msg)
		case state.Confirm:
			return m.updateConfirm(msg)
		case state.OpenChooser:
			return m.updateOpen(msg)
		case state.SaveChooser:
			return m.updateSave(msg)
		case state.FamilyPicker, state.SizePicker, state.ColorPicker:
			return m.updatePicker(msg)
		case state.ColorEntry:
			return m.updateColorEntry(msg)
		case state.Compare:
			return m.updateCompare(msg)
		default:
			return m.updateEdit(msg)
		}
	}
	return m.forward(msg)
}

func (m model) updateEdit(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ui = state.ClearNotice(m.ui)
	switch {
	case key.Matches(k, m.keys.New):
		return m.run(cmdNew)
	case key.Matches(k, m.keys.Open):
		return m.run(cmdOpen)
	case key.Matches(k, m.keys.Save):
		return m.run(cmdSave)
	case key.Matches(k, m.keys.Menu):
		m.menu.switchTo(0)
		m.ui = state.Enter(m.ui, state.Menu)
		return m, nil
	}
	cmd := m.surface.Update(k)
	m.tracker.Recompute(m.surface.Content())
	return m, cmd
}

func (m model) updateMenu(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "esc", "f10":
		m.ui = state.Back(m.ui)
	case "left", "shift+tab":
		m.menu.switchTo(m.menu.open - 1)
	case "right", "tab":
		m.menu.switchTo(m.menu.open + 1)
	case "up", "k":
		m.menu.move(-1)
	case "down", "j":
		m.menu.move(1)
	case "enter", " ":
		m.ui = state.Back(m.ui)
		return m.run(m.menu.selected())
	}
	return m, nil
}

// run executes a menu or shortcut command.
func (m model) run(c command) (tea.Model, tea.Cmd) {
	var (
		p   document.Prompt
		err error
	)
	switch c {
	case cmdNew:
		p, err = m.doc.NewFile()
	case cmdOpen:
		p, err = m.doc.OpenFile()
	case cmdSave:
		p, err = m.doc.SaveFile()
	case cmdSaveAs:
		p, err = m.doc.SaveAs()
	case cmdCompare:
		return m.openCompare()
	case cmdExit:
		return m, tea.Quit
	case cmdCopyAll:
		m.copyAll()
		return m, nil
	case cmdPaste:
		m.paste()
		return m, nil
	case cmdFamily:
		return m.openPicker(state.FamilyPicker, familyPicker(m.catalog, m.format.Family()))
	case cmdSize:
		return m.openPicker(state.SizePicker, sizePicker(m.format.Size()))
	case cmdColor:
		return m.openPicker(state.ColorPicker, colorPicker(m.surface.color))
	case cmdBold:
		m.format.ToggleBold()
		return m, nil
	case cmdItalic:
		m.format.ToggleItalic()
		return m, nil
	case cmdUnderline:
		m.format.ToggleUnderline()
		return m, nil
	default:
		return m, nil
	}
	logOutcome("command", err)
	return m.prompt(p)
}

// prompt shows whatever the document controller is waiting on, or returns
// to editing when it finished.
func (m model) prompt(p document.Prompt) (tea.Model, tea.Cmd) {
	m.absorb()
	switch p.Kind {
	case document.PromptConfirmSave:
		m.confirmNote = m.changeSummary()
		m.ui = state.Enter(m.ui, state.Confirm)
		return m, nil
	case document.PromptOpenLocation:
		m.typing = false
		m.ui = state.Enter(m.ui, state.OpenChooser)
		return m, m.resetChooser()
	case document.PromptSaveLocation:
		m.ui = state.Enter(m.ui, state.SaveChooser)
		return m, m.path.Reset("File name: ", m.saveSeed())
	}
	m.ui = state.Back(m.ui)
	return m, m.syncTitle()
}

func (m model) updateConfirm(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	var choice document.Choice
	switch strings.ToLower(k.String()) {
	case "y", "enter":
		choice = document.ChoiceSave
	case "n":
		choice = document.ChoiceDiscard
	case "c", "esc":
		choice = document.ChoiceCancel
	default:
		return m, nil
	}
	p, err := m.doc.Confirm(choice)
	logOutcome("confirm", err)
	return m.prompt(p)
}

func (m model) updateOpen(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.typing {
		return m.updateLocation(k)
	}
	switch k.String() {
	case "esc":
		return m.locate("")
	case "tab":
		m.typing = true
		return m, m.path.Reset("File name: ", m.chooser.CurrentDirectory+string(filepath.Separator))
	}
	var cmd tea.Cmd
	m.chooser, cmd = m.chooser.Update(k)
	if ok, path := m.chooser.DidSelectFile(k); ok {
		return m.locate(path)
	}
	return m, cmd
}

func (m model) updateSave(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	return m.updateLocation(k)
}

func (m model) updateLocation(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "esc":
		return m.locate("")
	case "enter":
		return m.locate(m.path.Value())
	}
	return m, m.path.Update(k)
}

func (m model) locate(path string) (tea.Model, tea.Cmd) {
	p, err := m.doc.Locate(path)
	logOutcome("locate "+path, err)
	return m.prompt(p)
}

func (m model) openPicker(mode state.Mode, l list.Model) (tea.Model, tea.Cmd) {
	m.picker = l
	m.picker.SetSize(m.ui.Width, m.ui.BodyHeight())
	m.ui = state.Enter(m.ui, mode)
	return m, nil
}

func (m model) updatePicker(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker.FilterState() != list.Filtering {
		switch k.String() {
		case "esc":
			if m.picker.FilterState() != list.FilterApplied {
				m.ui = state.Back(m.ui)
				return m, nil
			}
		case "enter":
			if it, ok := m.picker.SelectedItem().(pickItem); ok {
				return m.pick(it)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(k)
	return m, cmd
}

func (m model) pick(it pickItem) (tea.Model, tea.Cmd) {
	switch m.ui.Mode {
	case state.FamilyPicker:
		m.format.SetFamily(it.value)
	case state.SizePicker:
		n, err := strconv.Atoi(it.value)
		if err != nil {
			return m, nil
		}
		m.format.SetSize(n)
	case state.ColorPicker:
		if it.value == customColor {
			m.ui = state.Enter(m.ui, state.ColorEntry)
			m.colorIn.SetValue(m.surface.color)
			m.colorIn.CursorEnd()
			return m, m.colorIn.Focus()
		}
		m.setColor(it.value)
	}
	m.ui = state.Back(m.ui)
	return m, nil
}

func (m model) updateColorEntry(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "esc":
		m.colorIn.Blur()
		m.ui = state.Back(m.ui)
		return m, nil
	case "enter":
		if m.setColor(m.colorIn.Value()) {
			m.colorIn.Blur()
			m.ui = state.Back(m.ui)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.colorIn, cmd = m.colorIn.Update(k)
	return m, cmd
}

// setColor applies a color name or hex value to the whole surface. Invalid
// input leaves the color alone and raises an error notice.
func (m *model) setColor(s string) bool {
	hex, err := util.ParseColor(s)
	if err != nil {
		log.Printf("text color: %v", err)
		m.ui = state.Fail(m.ui, err.Error())
		return false
	}
	m.surface.SetForeground(hex)
	m.ui = state.ClearNotice(m.ui)
	return true
}

func (m model) openCompare() (tea.Model, tea.Cmd) {
	text, ok, err := m.doc.Baseline()
	switch {
	case err != nil:
		log.Printf("compare: %v", err)
		m.ui = state.Fail(m.ui, "Compare failed: "+err.Error())
		return m, nil
	case !ok:
		m.ui = state.Notify(m.ui, m.doc.Title()+" has never been saved")
		return m, nil
	}
	m.saved = text
	m.ui = state.Enter(m.ui, state.Compare)
	m.renderCompare()
	return m, nil
}

func (m *model) renderCompare() {
	m.compare.SetContent(m.diffv.View(m.ui, m.saved, m.doc.Body()))
	m.compare.GotoTop()
}

func (m model) updateCompare(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "esc", "q":
		m.ui = state.Back(m.ui)
		return m, nil
	case "v":
		m.ui = state.ToggleView(m.ui)
		// Resize falls back to unified when the terminal is too narrow.
		m.ui = state.Resize(m.ui, m.ui.Width, m.ui.Height)
		m.renderCompare()
		return m, nil
	}
	var cmd tea.Cmd
	m.compare, cmd = m.compare.Update(k)
	return m, cmd
}

// forward hands non-key messages (blinks, directory listings) to the
// component that owns input.
func (m model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.ui.Mode {
	case state.OpenChooser:
		var c1 tea.Cmd
		m.chooser, c1 = m.chooser.Update(msg)
		return m, tea.Batch(c1, m.path.Update(msg))
	case state.SaveChooser:
		return m, m.path.Update(msg)
	case state.ColorEntry:
		m.colorIn, cmd = m.colorIn.Update(msg)
		return m, cmd
	case state.FamilyPicker, state.SizePicker, state.ColorPicker:
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	case state.Compare:
		m.compare, cmd = m.compare.Update(msg)
		return m, cmd
	}
	return m, m.surface.Update(msg)
}

func (m *model) layout() {
	body := m.ui.BodyHeight()
	m.surface.SetSize(m.ui.Width, body)
	m.help.Width = m.ui.Width
	m.compare.Width = m.ui.Width
	m.compare.Height = body
	switch m.ui.Mode {
	case state.FamilyPicker, state.SizePicker, state.ColorPicker:
		m.picker.SetSize(m.ui.Width, body)
	case state.OpenChooser:
		m.chooser, _ = m.chooser.Update(m.chooserSize())
	case state.Compare:
		m.renderCompare()
	}
}

// ===== File helpers =====

func (m *model) resetChooser() tea.Cmd {
	fp := filepicker.New()
	fp.AllowedTypes = document.TextFiles.Extensions
	fp.AutoHeight = true
	fp.CurrentDirectory = m.startDir()
	fp, _ = fp.Update(m.chooserSize())
	m.chooser = fp
	return m.chooser.Init()
}

// chooserSize leaves room for the chooser's title, directory and hint rows.
// The filepicker subtracts its own bottom margin from the height.
func (m model) chooserSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: m.ui.Width, Height: m.ui.BodyHeight() + 1}
}

func (m model) startDir() string {
	for _, p := range []string{m.doc.Path(), m.suggested} {
		if p != "" {
			if abs, err := filepath.Abs(filepath.Dir(p)); err == nil {
				return abs
			}
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func (m model) saveSeed() string {
	if p := m.doc.Path(); p != "" {
		return p
	}
	return m.suggested
}

func (m model) changeSummary() string {
	text, ok, err := m.doc.Baseline()
	switch {
	case err != nil:
		return "The saved copy could not be read."
	case !ok:
		return m.doc.Title() + " has never been saved."
	}
	added, removed := diff.Summary(text, m.doc.Body())
	if added == 0 && removed == 0 {
		return "No changes since last save."
	}
	return plural(added, "line") + " added, " + plural(removed, "line") + " removed since last save."
}

func (m model) windowTitle() string { return m.doc.Title() + " - plainpad" }

func (m *model) syncTitle() tea.Cmd {
	t := m.windowTitle()
	if t == m.title {
		return nil
	}
	m.title = t
	return tea.SetWindowTitle(t)
}

// ===== Notices =====

// logOutcome records the result of a document operation. Failures already
// reached the user through the notices.
func logOutcome(op string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, document.ErrCancelled):
		log.Printf("%s: cancelled", op)
	default:
		log.Printf("%s: %v", op, err)
	}
}

type notice struct {
	text string
	err  bool
}

// notices collects controller reports until the model drains them into the
// status line. Everything is logged as it arrives.
type notices struct{ queue []notice }

func (n *notices) Info(title, msg string) {
	log.Printf("%s: %s", title, msg)
	n.queue = append(n.queue, notice{text: msg})
}

func (n *notices) Error(title string, err error) {
	log.Printf("%s: %v", title, err)
	n.queue = append(n.queue, notice{text: title + ": " + err.Error(), err: true})
}

func (m *model) absorb() {
	for _, n := range m.notes.queue {
		if n.err {
			m.ui = state.Fail(m.ui, n.text)
		} else {
			m.ui = state.Notify(m.ui, n.text)
		}
	}
	m.notes.queue = nil
}

// ===== Views =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	selStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
)

func (m model) View() string {
	if m.ui.Width == 0 {
		return ""
	}
	active := -1
	if m.ui.Mode == state.Menu {
		active = m.menu.open
	}
	font := m.format.Font()
	chips := tagchips.View(util.ComputeTags(font, m.catalog.Has(font.Family), m.surface.color), m.noColor)

	var b strings.Builder
	b.WriteString(menubar.Bar(menuTitles(), active, m.ui.Width) + "\n")
	b.WriteString(m.body() + "\n")
	b.WriteString(m.bar.View(m.ui, m.doc.Title(), font.String(), chips) + "\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m model) body() string {
	if m.ui.ShowHelp {
		return m.editor.Panel(m.ui, m.overlay.View(m.ui))
	}
	switch m.ui.Mode {
	case state.Menu:
		if dd := m.menu.dropdown(m); dd != "" {
			off := menubar.Offset(menuTitles(), m.menu.open)
			return m.editor.Panel(m.ui, lipgloss.NewStyle().MarginLeft(off).Render(dd))
		}
	case state.Confirm:
		return m.editor.Dialog(m.ui, m.confirmView())
	case state.OpenChooser:
		return m.editor.Panel(m.ui, m.openView())
	case state.SaveChooser:
		return m.editor.Panel(m.ui, m.saveView())
	case state.FamilyPicker, state.SizePicker, state.ColorPicker:
		return m.editor.Panel(m.ui, m.picker.View())
	case state.ColorEntry:
		return m.editor.Dialog(m.ui, m.colorEntryView())
	case state.Compare:
		return m.editor.Panel(m.ui, m.compare.View())
	}
	return m.editor.View(m.ui, m.surface.View())
}

func (m model) footer() string {
	switch {
	case m.ui.Notice != "" && m.ui.NoticeErr:
		return errStyle.Render(m.ui.Notice)
	case m.ui.Notice != "":
		return m.ui.Notice
	}
	return m.help.View(m.keys)
}
