package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"taskmaster/pkg/glyph"
	"taskmaster/pkg/task"
)

// Snapshot renders the plain-text export report for the current board. The
// layout is stable: banner header with export timestamp, one section per
// list with progress and numbered items, then board totals.
func (s *Service) Snapshot(now time.Time) string {
	banner := strings.Repeat("=", 50)
	rule := strings.Repeat("-", 40)

	b := &strings.Builder{}
	fmt.Fprintln(b, banner)
	fmt.Fprintln(b, "TASKMASTER PRO EXPORT")
	fmt.Fprintf(b, "Export Date: %s\n", task.NewTimestamp(now))
	fmt.Fprintln(b, banner)
	fmt.Fprintln(b)

	for _, l := range s.lists {
		st := l.Stats()
		fmt.Fprintf(b, "%s %s\n", glyph.Clipboard, strings.ToUpper(l.Name))
		fmt.Fprintf(b, "   Progress: %d/%d tasks (%.1f%%)\n", st.Completed, st.Total, st.Progress)
		fmt.Fprintf(b, "   Created: %s\n", l.Created)
		fmt.Fprintln(b, rule)

		for i, item := range l.Items {
			fmt.Fprintf(b, "   %d. [%s] %s\n", i+1, glyph.ForDone(item.Done), item.Text)
			if item.Done && item.Completed != nil {
				fmt.Fprintf(b, "       Completed: %s\n", item.Completed)
			}
		}
		fmt.Fprintln(b)
	}

	bs := s.BoardStats()
	fmt.Fprintln(b, banner)
	fmt.Fprintf(b, "Total Lists: %d\n", bs.Lists)
	fmt.Fprintf(b, "Total Tasks: %d\n", bs.Tasks)
	fmt.Fprintln(b, banner)
	return b.String()
}

// Export writes the snapshot to path, overwriting any existing file. It is
// read-only with respect to the board.
func (s *Service) Export(path string, now time.Time) error {
	if err := os.WriteFile(path, []byte(s.Snapshot(now)), 0o644); err != nil {
		return &PersistenceError{Op: "export", Err: err}
	}
	return nil
}
