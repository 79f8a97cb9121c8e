// Package glyph defines the symbols used to render task state.
package glyph

import "fmt"

// Glyph pairs a symbol with its meaning for help output.
type Glyph struct {
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// Clipboard marks a list section header in exports.
const Clipboard = "📋"

type Status int

const (
	Pending Status = iota
	Completed
)

func DefaultStatuses() []Glyph {
	return []Glyph{
		{Symbol: "⭕", Meaning: "task open"},
		{Symbol: "✓", Meaning: "task completed"},
	}
}

// ForDone maps a completion flag to its status glyph.
func ForDone(done bool) Status {
	if done {
		return Completed
	}
	return Pending
}

func (s Status) Glyph() Glyph {
	return DefaultStatuses()[s]
}

func (s Status) String() string {
	return s.Glyph().Symbol
}
