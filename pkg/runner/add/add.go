// Package add provides the runner logic for adding an item to a list.
package add

import (
	"context"
	"errors"

	"taskmaster/pkg/app"
	"taskmaster/pkg/printers"
)

// Add appends one item to the named list.
type Add struct {
	ListName string
	Text     string

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if n.ListName == "" {
		return errors.New("no list specified, use --list")
	}
	if err := n.Service.SelectByName(n.ListName); err != nil {
		return err
	}
	if err := n.Service.AddItem(n.Text); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	if l, ok := n.Service.Selection(); ok {
		pp.List(l)
	}
	return nil
}
