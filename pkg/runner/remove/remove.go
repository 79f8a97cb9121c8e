// Package remove provides the runner logic for deleting an item.
package remove

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"taskmaster/pkg/app"
	"taskmaster/pkg/printers"
)

// Long task text needs an explicit confirmation before deletion. This is a
// presentation policy, not a model rule, which is why it lives here.
const confirmThreshold = 30

// Remove deletes one item. Number is the 1-based display index. Items whose
// text is confirmThreshold runes or longer require Force.
type Remove struct {
	ListName string
	Number   int
	Force    bool

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	if n.ListName == "" {
		return errors.New("no list specified, use --list")
	}
	if err := n.Service.SelectByName(n.ListName); err != nil {
		return err
	}
	l, _ := n.Service.Selection()
	if n.Number < 1 || n.Number > len(l.Items) {
		return fmt.Errorf("no task %d in %q", n.Number, l.Name)
	}

	item := l.Items[n.Number-1]
	if !n.Force && utf8.RuneCountInString(item.Text) >= confirmThreshold {
		return fmt.Errorf("refusing to remove %q without --yes", item.Text)
	}

	if err := n.Service.DeleteItem(n.Number - 1); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.List(l)
	return nil
}
