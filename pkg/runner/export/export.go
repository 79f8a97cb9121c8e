// Package export provides the runner logic for the plain-text export.
package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskmaster/pkg/app"
	"taskmaster/pkg/printers"
)

// Export writes the board report to Output, overwriting any existing file.
type Export struct {
	Output string

	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}
	if n.Output == "" {
		return errors.New("can not export, no output path")
	}
	if err := n.Service.Export(n.Output, time.Now()); err != nil {
		return err
	}

	bs := n.Service.BoardStats()
	pp := printers.PrettyPrint{}
	pp.NewLine()
	fmt.Printf("Exported to %s\n", n.Output)
	pp.Summary(bs.Lists, bs.Tasks, bs.Completed)
	return nil
}
