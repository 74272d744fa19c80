package document

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"plainpad/internal/status"
)

// memSurface stores text the way the editor does: body plus one structural newline.
type memSurface struct{ body string }

func (s *memSurface) Content() string     { return s.body + "\n" }
func (s *memSurface) Replace(text string) { s.body = text }

type memReporter struct {
	infos  []string
	errors []error
}

func (r *memReporter) Info(title, msg string)        { r.infos = append(r.infos, msg) }
func (r *memReporter) Error(title string, err error) { r.errors = append(r.errors, err) }

func setup(t *testing.T, body string) (*Controller, *memSurface, *memReporter, *status.Tracker) {
	t.Helper()
	s := &memSurface{body: body}
	r := &memReporter{}
	tr := status.NewTracker(nil)
	return NewController(s, tr, r), s, r, tr
}

func TestNewFileEmptyClearsWithoutPrompt(t *testing.T) {
	for _, body := range []string{"", "   \n\t "} {
		c, s, _, _ := setup(t, body)
		c.path = "old.txt"
		p, err := c.NewFile()
		if err != nil || p.Pending() {
			t.Fatalf("body %q: expected immediate clear, got prompt %v err %v", body, p.Kind, err)
		}
		if s.body != "" || c.Path() != "" {
			t.Fatalf("body %q: document not cleared (body=%q path=%q)", body, s.body, c.Path())
		}
	}
}

func TestNewFileCancelLeavesEverything(t *testing.T) {
	c, s, r, _ := setup(t, "draft")
	c.path = "notes.txt"
	p, _ := c.NewFile()
	if p.Kind != PromptConfirmSave {
		t.Fatalf("expected confirm prompt, got %v", p.Kind)
	}
	p, err := c.Confirm(ChoiceCancel)
	if !errors.Is(err, ErrCancelled) || p.Pending() {
		t.Fatalf("cancel should finish quietly: %v %v", p.Kind, err)
	}
	if s.body != "draft" || c.Path() != "notes.txt" {
		t.Fatalf("cancel changed state: body=%q path=%q", s.body, c.Path())
	}
	if len(r.infos)+len(r.errors) != 0 {
		t.Fatalf("cancel should not report anything")
	}
}

func TestNewFileDiscard(t *testing.T) {
	c, s, _, tr := setup(t, "draft words")
	tr.Recompute(s.Content())
	c.path = "notes.txt"
	c.NewFile()
	if _, err := c.Confirm(ChoiceDiscard); err != nil {
		t.Fatal(err)
	}
	if s.body != "" || c.Path() != "" {
		t.Fatalf("discard did not clear")
	}
	if tr.Last() != (status.Metrics{}) {
		t.Fatalf("tracker not notified: %+v", tr.Last())
	}
}

func TestNewFileSaveWithPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	c, s, r, _ := setup(t, "keep me")
	c.path = path
	c.NewFile()
	if _, err := c.Confirm(ChoiceSave); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "keep me" {
		t.Fatalf("saved %q", data)
	}
	if s.body != "" || c.Path() != "" {
		t.Fatalf("expected clear after save")
	}
	if len(r.infos) != 1 {
		t.Fatalf("expected save report")
	}
}

func TestNewFileSaveChoosesLocationThenClears(t *testing.T) {
	dir := t.TempDir()
	c, s, _, _ := setup(t, "keep me")
	c.NewFile()
	p, _ := c.Confirm(ChoiceSave)
	if p.Kind != PromptSaveLocation {
		t.Fatalf("expected save location prompt, got %v", p.Kind)
	}
	if _, err := c.Locate(filepath.Join(dir, "kept")); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "kept.txt"))
	if err != nil || string(data) != "keep me" {
		t.Fatalf("expected kept.txt with content, got %q %v", data, err)
	}
	if s.body != "" || c.Path() != "" {
		t.Fatalf("expected clear after save")
	}
}

func TestNewFileSaveCancelledLocationKeepsDocument(t *testing.T) {
	c, s, _, _ := setup(t, "keep me")
	c.NewFile()
	c.Confirm(ChoiceSave)
	c.Locate("")
	if s.body != "keep me" {
		t.Fatalf("document discarded after cancelled save")
	}
}

func TestSaveWithoutPathCancelled(t *testing.T) {
	dir := t.TempDir()
	c, s, r, _ := setup(t, "text")
	p, err := c.SaveFile()
	if err != nil || p.Kind != PromptSaveLocation {
		t.Fatalf("expected save prompt, got %v %v", p.Kind, err)
	}
	if _, err := c.Locate(""); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if s.body != "text" || c.Path() != "" {
		t.Fatalf("cancelled save changed state")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 || len(r.infos) != 0 {
		t.Fatalf("cancelled save wrote something")
	}
}

func TestSaveOpenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	body := "héllo wörld\nsecond line\n\ttabbed ✓"
	c, s, _, _ := setup(t, body)
	c.SaveFile()
	path := filepath.Join(dir, "round.txt")
	if _, err := c.Locate(path); err != nil {
		t.Fatal(err)
	}
	if c.Path() != path {
		t.Fatalf("path not recorded: %q", c.Path())
	}

	s.Replace("something else")
	c.OpenFile()
	if _, err := c.Locate(path); err != nil {
		t.Fatal(err)
	}
	if s.body != body {
		t.Fatalf("round trip mismatch:\n got %q\nwant %q", s.body, body)
	}
}

func TestSaveOverwritesExistingPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.txt")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, _, _, _ := setup(t, "new")
	c.path = path
	p, err := c.SaveFile()
	if err != nil || p.Pending() {
		t.Fatalf("save with path should not prompt: %v %v", p.Kind, err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Fatalf("got %q", data)
	}
}

func TestSaveFailureKeepsPath(t *testing.T) {
	c, _, r, _ := setup(t, "text")
	c.path = "prev.txt"
	c.SaveAs()
	bad := filepath.Join(t.TempDir(), "missing", "dir", "f.txt")
	_, err := c.Locate(bad)
	if !errors.Is(err, ErrFileWrite) {
		t.Fatalf("expected ErrFileWrite, got %v", err)
	}
	if c.Path() != "prev.txt" {
		t.Fatalf("path changed on failed save: %q", c.Path())
	}
	if len(r.errors) != 1 || len(r.infos) != 0 {
		t.Fatalf("expected one error report, got %v / %v", r.errors, r.infos)
	}
}

func TestOpenFailures(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "bin.txt")
	if err := os.WriteFile(bin, []byte{0xff, 0xfe, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{filepath.Join(dir, "nope.txt"), bin} {
		c, s, _, _ := setup(t, "current")
		c.path = "cur.txt"
		err := c.OpenPath(path)
		if !errors.Is(err, ErrFileRead) {
			t.Fatalf("%s: expected ErrFileRead, got %v", path, err)
		}
		var fe *FileError
		if !errors.As(err, &fe) || fe.Path != path {
			t.Fatalf("%s: expected FileError for path, got %v", path, err)
		}
		if s.body != "current" || c.Path() != "cur.txt" {
			t.Fatalf("%s: failed open mutated state", path)
		}
	}
}

func TestOpenCancelledChangesNothing(t *testing.T) {
	c, s, _, _ := setup(t, "current")
	p, _ := c.OpenFile()
	if p.Kind != PromptOpenLocation || !p.Filter.Match("a.TXT") || p.Filter.Match("a.md") {
		t.Fatalf("unexpected open prompt %+v", p)
	}
	c.Dismiss()
	if c.Pending().Pending() {
		t.Fatalf("dismiss left a pending prompt")
	}
	if _, err := c.Locate("/should/be/ignored.txt"); err != nil {
		t.Fatalf("locate without prompt: %v", err)
	}
	if s.body != "current" {
		t.Fatalf("content changed")
	}
}

func TestOpenNotifiesTracker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w.txt")
	os.WriteFile(path, []byte("one two three"), 0o644)
	c, _, _, tr := setup(t, "")
	if err := c.OpenPath(path); err != nil {
		t.Fatal(err)
	}
	if tr.Last() != (status.Metrics{Words: 3, Chars: 13}) {
		t.Fatalf("unexpected metrics %+v", tr.Last())
	}
	if c.Title() != "w.txt" {
		t.Fatalf("title %q", c.Title())
	}
}

func TestBaseline(t *testing.T) {
	c, _, _, _ := setup(t, "x")
	if _, ok, err := c.Baseline(); ok || err != nil {
		t.Fatalf("unsaved document should have no baseline")
	}
	path := filepath.Join(t.TempDir(), "b.txt")
	os.WriteFile(path, []byte("saved"), 0o644)
	c.path = path
	text, ok, err := c.Baseline()
	if !ok || err != nil || text != "saved" {
		t.Fatalf("baseline = %q %v %v", text, ok, err)
	}
}

func TestWithDefaultExt(t *testing.T) {
	cases := map[string]string{
		"notes":          "notes.txt",
		"notes.txt":      "notes.txt",
		"notes.md":       "notes.md",
		"dir.d/notes":    "dir.d/notes.txt",
		"archive.tar.gz": "archive.tar.gz",
	}
	for in, want := range cases {
		if got := TextFiles.WithDefaultExt(in); got != want {
			t.Fatalf("WithDefaultExt(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOpenExtensionlessName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README")
	if err := os.WriteFile(path, []byte("read me"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, s, _, _ := setup(t, "")
	c.OpenFile()
	if _, err := c.Locate(path); err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	if s.body != "read me" || c.Path() != path {
		t.Fatalf("body=%q path=%q", s.body, c.Path())
	}
}

func TestOpenNormalizesLineEndings(t *testing.T) {
	cases := map[string]string{
		"one\r\ntwo\r\n": "one\ntwo\n",
		"mac\rstyle":     "mac\nstyle",
		"plain\n":        "plain\n",
	}
	for in, want := range cases {
		path := filepath.Join(t.TempDir(), "f.txt")
		os.WriteFile(path, []byte(in), 0o644)
		c, s, _, _ := setup(t, "")
		if err := c.OpenPath(path); err != nil {
			t.Fatal(err)
		}
		if s.body != want {
			t.Fatalf("%q: got %q want %q", in, s.body, want)
		}
	}
}

// strictSurface refuses text containing a marker, like a surface that
// cannot hold some characters.
type strictSurface struct{ memSurface }

func (s *strictSurface) Check(text string) error {
	if strings.Contains(text, "\x01") {
		return errors.New("contains control character U+0001")
	}
	return nil
}

func TestOpenRefusesTextTheSurfaceWouldAlter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctl.txt")
	os.WriteFile(path, []byte("a\x01b"), 0o644)
	s := &strictSurface{memSurface{body: "mine"}}
	r := &memReporter{}
	c := NewController(s, status.NewTracker(nil), r)
	err := c.OpenPath(path)
	if !errors.Is(err, ErrFileRead) {
		t.Fatalf("expected ErrFileRead, got %v", err)
	}
	if s.body != "mine" || c.Path() != "" || len(r.errors) != 1 {
		t.Fatalf("refused open changed state: body=%q path=%q errors=%v", s.body, c.Path(), r.errors)
	}
}

func TestFileErrorNamesPathOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.txt")
	c, _, _, _ := setup(t, "")
	err := c.OpenPath(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if n := strings.Count(err.Error(), path); n != 1 {
		t.Fatalf("path appears %d times in %q", n, err.Error())
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("underlying error lost: %v", err)
	}
}
