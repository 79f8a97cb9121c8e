// Package get provides the runner logic for rendering lists and items.
package get

import (
	"context"
	"errors"

	"taskmaster/pkg/app"
	"taskmaster/pkg/printers"
)

// Get renders one list, or the whole board when ListName is empty. With
// Watch set it keeps re-rendering whenever the data file changes on disk
// until the context is cancelled.
type Get struct {
	ListName string
	Watch    bool

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	if err := n.render(); err != nil {
		return err
	}
	if !n.Watch {
		return nil
	}

	events, err := n.Service.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			if err := n.Service.Load(); err != nil {
				return err
			}
			if err := n.render(); err != nil {
				return err
			}
		}
	}
}

func (n *Get) render() error {
	pp := printers.PrettyPrint{}
	pp.NewLine()

	if n.ListName != "" {
		if err := n.Service.SelectByName(n.ListName); err != nil {
			return err
		}
		l, _ := n.Service.Selection()
		pp.List(l)
		return nil
	}

	pp.Board(n.Service.Lists()...)
	bs := n.Service.BoardStats()
	pp.Summary(bs.Lists, bs.Tasks, bs.Completed)
	return nil
}
