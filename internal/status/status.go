package status

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Metrics is the status readout for the current document.
type Metrics struct {
	Words int
	Chars int
}

func (m Metrics) String() string {
	return fmt.Sprintf("Words: %d | Characters: %d", m.Words, m.Chars)
}

// Publisher displays metrics.
type Publisher interface {
	Publish(Metrics)
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(Metrics)

func (f PublisherFunc) Publish(m Metrics) { f(m) }

// Measure counts words and characters in text as stored by the surface,
// which always ends in one structural newline that is not counted.
func Measure(text string) Metrics {
	chars := utf8.RuneCountInString(text) - 1
	if chars < 0 {
		chars = 0
	}
	return Metrics{Words: len(strings.Fields(text)), Chars: chars}
}

// Tracker recomputes metrics on content changes and republishes them.
type Tracker struct {
	pub  Publisher
	last Metrics
}

func NewTracker(pub Publisher) *Tracker {
	return &Tracker{pub: pub}
}

// Recompute measures text, publishes the result and returns it.
func (t *Tracker) Recompute(text string) Metrics {
	t.last = Measure(text)
	if t.pub != nil {
		t.pub.Publish(t.last)
	}
	return t.last
}

// Last returns the most recently published metrics.
func (t *Tracker) Last() Metrics { return t.last }
