// Package complete provides the runner logic for toggling item completion.
package complete

import (
	"context"
	"errors"
	"fmt"

	"taskmaster/pkg/app"
	"taskmaster/pkg/printers"
)

// Complete toggles the completion state of one item. Number is the 1-based
// display index shown by get.
type Complete struct {
	ListName string
	Number   int

	Service *app.Service
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
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
	if err := n.Service.ToggleItem(n.Number - 1); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.List(l)
	return nil
}
