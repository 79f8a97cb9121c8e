// Package lists provides the runner logic for managing lists themselves.
package lists

import (
	"context"
	"errors"
	"fmt"

	"taskmaster/pkg/app"
	"taskmaster/pkg/printers"
)

// Create makes a new empty list and selects it.
type Create struct {
	Name string

	Service *app.Service
}

func (n *Create) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not create list, no service")
	}
	l, err := n.Service.CreateList(n.Name)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.List(l)
	return nil
}

// Rename changes a list's name, keeping items and metadata.
type Rename struct {
	Name    string
	NewName string

	Service *app.Service
}

func (n *Rename) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not rename list, no service")
	}
	if err := n.Service.SelectByName(n.Name); err != nil {
		return err
	}
	if err := n.Service.RenameList(n.NewName); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	if l, ok := n.Service.Selection(); ok {
		pp.List(l)
	}
	return nil
}

// Delete removes a list and everything in it. Deletion always needs Force;
// the destroyed item count is irreversible.
type Delete struct {
	Name  string
	Force bool

	Service *app.Service
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete list, no service")
	}
	if err := n.Service.SelectByName(n.Name); err != nil {
		return err
	}
	l, _ := n.Service.Selection()
	if !n.Force {
		return fmt.Errorf("refusing to delete %q and its %d tasks without --yes", l.Name, len(l.Items))
	}
	if err := n.Service.DeleteList(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Board(n.Service.Lists()...)
	bs := n.Service.BoardStats()
	pp.Summary(bs.Lists, bs.Tasks, bs.Completed)
	return nil
}
