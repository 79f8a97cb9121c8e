// Package edit provides the runner logic for rewording an item.
package edit

import (
	"context"
	"errors"
	"fmt"

	"taskmaster/pkg/app"
	"taskmaster/pkg/printers"
)

// Edit replaces the text of one item. Number is the 1-based display index.
// An empty or unchanged replacement is a quiet cancel.
type Edit struct {
	ListName string
	Number   int
	Text     string

	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
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
	if err := n.Service.EditItem(n.Number-1, n.Text); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.List(l)
	return nil
}
