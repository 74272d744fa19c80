package format

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"time"
)

// ProbeTimeout bounds the fc-list call.
var ProbeTimeout = 3 * time.Second

// builtinFamilies is used when fontconfig is not installed.
var builtinFamilies = []string{
	"Courier",
	"DejaVu Sans",
	"DejaVu Sans Mono",
	"DejaVu Serif",
	"Helvetica",
	"Liberation Mono",
	"Liberation Sans",
	"Liberation Serif",
	"Times",
}

// Catalog is a sorted, de-duplicated list of font family names.
type Catalog struct {
	families []string
	index    map[string]bool
	// Fallback is true when the list did not come from the system.
	Fallback bool
}

// NewCatalog builds a catalog from names; blanks and duplicates are dropped.
func NewCatalog(names []string) *Catalog {
	c := &Catalog{index: map[string]bool{}}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || c.index[n] {
			continue
		}
		c.index[n] = true
		c.families = append(c.families, n)
	}
	sort.Strings(c.families)
	return c
}

// BuiltinCatalog returns the fallback catalog.
func BuiltinCatalog() *Catalog {
	c := NewCatalog(builtinFamilies)
	c.Fallback = true
	return c
}

// Families lists the system's font families via fc-list, falling back to a
// built-in list when the probe fails or returns nothing.
func Families(ctx context.Context) (*Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	bin, err := exec.LookPath("fc-list")
	if err != nil {
		return BuiltinCatalog(), nil
	}
	out, err := exec.CommandContext(ctx, bin, ":", "family").Output()
	if err != nil {
		return BuiltinCatalog(), fmt.Errorf("fc-list: %w", err)
	}
	c := NewCatalog(ParseFamilies(string(out)))
	if c.Len() == 0 {
		return BuiltinCatalog(), nil
	}
	return c, nil
}

// ParseFamilies parses `fc-list : family` output. Each line may carry several
// comma-separated localized names; the first one is kept.
func ParseFamilies(out string) []string {
	var names []string
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, ','); i >= 0 {
			line = line[:i]
		}
		line = strings.ReplaceAll(line, `\-`, "-")
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names
}

func (c *Catalog) Names() []string { return append([]string(nil), c.families...) }
func (c *Catalog) Len() int         { return len(c.families) }

// Has reports whether name is an available family.
func (c *Catalog) Has(name string) bool { return c.index[name] }

// Sizes returns the selectable point sizes: even integers 8..48.
func Sizes() []int {
	out := make([]int, 0, 21)
	for n := 8; n <= 48; n += 2 {
		out = append(out, n)
	}
	return out
}
