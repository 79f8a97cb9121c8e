// Package printers renders lists and items for the terminal.
package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"taskmaster/pkg/glyph"
	"taskmaster/pkg/tasklist"
)

// PrettyPrint renders lists with progress and numbered items. Wrap bounds the
// item text column; zero means the default width.
type PrettyPrint struct {
	Wrap int
}

const defaultWrap = 72

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Title prints the list name with its progress fraction and percentage,
// rounded to one decimal at display time only.
func (pp *PrettyPrint) Title(l *tasklist.List) {
	st := l.Stats()
	fmt.Print(glyph.Underline(glyph.Bold(l.Name)))
	f := color.New(color.Faint)
	_, _ = f.Printf("  %d/%d (%.1f%%)", st.Completed, st.Total, st.Progress)
	_, _ = f.Printf("  created %s\n", l.Created)
}

// List prints one list: title, then a numbered table of items. Completed
// items are struck through with their completion time alongside.
func (pp *PrettyPrint) List(l *tasklist.List) {
	pp.Title(l)

	if len(l.Items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	wrap := pp.Wrap
	if wrap <= 0 {
		wrap = defaultWrap
	}

	tbl := uitable.New()
	tbl.Separator = " "
	for i, item := range l.Items {
		text := wordwrap.String(item.Text, wrap)
		completed := ""
		if item.Done {
			text = glyph.Strike(text)
			if item.Completed != nil {
				completed = item.Completed.String()
			}
		}
		tbl.AddRow(fmt.Sprintf("%3d.", i+1), glyph.ForDone(item.Done).String(), text, completed)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Board prints every list in order.
func (pp *PrettyPrint) Board(lists ...*tasklist.List) {
	for _, l := range lists {
		pp.List(l)
	}
}

// Summary prints the board totals line shown after board-wide output.
func (pp *PrettyPrint) Summary(lists, tasks, completed int) {
	f := color.New(color.Faint)
	_, _ = f.Printf("%d %s, %d %s, %d completed\n",
		lists, plural(lists, "list"), tasks, plural(tasks, "task"), completed)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// Notice prints a non-fatal warning, e.g. when a load fell back to defaults.
func (pp *PrettyPrint) Notice(msg string) {
	y := color.New(color.FgHiYellow, color.Italic)
	_, _ = y.Println(msg)
}
