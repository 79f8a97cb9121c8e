// Package task models a single task item and its completion lifecycle.
package task

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyText rejects item text that trims down to nothing.
var ErrEmptyText = errors.New("task: text is empty after trimming")

// Item is one task. Completed is only present while Done is true; toggling an
// item back to open clears it again.
type Item struct {
	ID        string     `json:"-"`
	Text      string     `json:"text"`
	Done      bool       `json:"done"`
	Created   Timestamp  `json:"created_at"`
	Completed *Timestamp `json:"completed_at"`
}

// New builds an open item from text, trimming surrounding whitespace.
func New(text string) (*Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	return &Item{
		ID:      uuid.NewString(),
		Text:    text,
		Created: NewTimestamp(time.Now()),
	}, nil
}

// Toggle flips the completion state. Completing stamps the item with now;
// reopening clears the stamp.
func (i *Item) Toggle(now time.Time) {
	i.Done = !i.Done
	if i.Done {
		ts := NewTimestamp(now)
		i.Completed = &ts
	} else {
		i.Completed = nil
	}
}

// Rename replaces the text when the trimmed replacement is non-empty and
// differs from the current value. Returns whether anything changed; an
// unchanged or empty replacement is treated as a cancel, not an error.
func (i *Item) Rename(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || text == i.Text {
		return false
	}
	i.Text = text
	return true
}
