// Package tasklist models a named, ordered collection of task items.
package tasklist

import (
	"time"

	"github.com/google/uuid"
	colorful "github.com/lucasb-eyer/go-colorful"

	"taskmaster/pkg/task"
)

// DefaultColor is the display hint applied when a list has none.
const DefaultColor = "#4A90E2"

// List is an ordered collection of items plus display metadata. Item identity
// for per-item operations is the display index; IDs exist so callers can hold
// stable references across reorders.
type List struct {
	ID      string
	Name    string
	Color   string
	Created task.DateStamp
	Items   []*task.Item
}

func New(name string) *List {
	return &List{
		ID:      uuid.NewString(),
		Name:    name,
		Color:   DefaultColor,
		Created: task.NewDateStamp(time.Now()),
	}
}

// NormalizeColor validates a hex display color, falling back to DefaultColor
// for anything go-colorful cannot parse. Valid values pass through unchanged
// so persisted spellings survive round trips.
func NormalizeColor(c string) string {
	if _, err := colorful.Hex(c); err != nil {
		return DefaultColor
	}
	return c
}

// AddItem appends a new item built from text. The caller triggers persistence.
func (l *List) AddItem(text string) error {
	item, err := task.New(text)
	if err != nil {
		return err
	}
	l.Items = append(l.Items, item)
	return nil
}

// RemoveItem drops the item at index i, silently ignoring out-of-range
// indexes. A stale index means a stale view, not a caller bug.
func (l *List) RemoveItem(i int) {
	if !l.inRange(i) {
		return
	}
	l.Items = append(l.Items[:i], l.Items[i+1:]...)
}

// ToggleItem flips completion on the item at index i. Out of range is a no-op.
func (l *List) ToggleItem(i int, now time.Time) {
	if !l.inRange(i) {
		return
	}
	l.Items[i].Toggle(now)
}

// EditItem renames the item at index i and reports whether anything changed.
func (l *List) EditItem(i int, text string) bool {
	if !l.inRange(i) {
		return false
	}
	return l.Items[i].Rename(text)
}

func (l *List) inRange(i int) bool {
	return i >= 0 && i < len(l.Items)
}

// Stats summarizes completion for a list. Progress is a raw percentage;
// rounding to one decimal happens at display time only.
type Stats struct {
	Total     int
	Completed int
	Progress  float64
}

func (l *List) Stats() Stats {
	s := Stats{Total: len(l.Items)}
	for _, item := range l.Items {
		if item.Done {
			s.Completed++
		}
	}
	if s.Total > 0 {
		s.Progress = float64(s.Completed) / float64(s.Total) * 100
	}
	return s
}
