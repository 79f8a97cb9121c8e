package commands

import (
	"context"
	"errors"
	"os"
	"strings"

	isatty "github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"taskmaster/pkg/commands/options"
	"taskmaster/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	watch := false

	cmd := &cobra.Command{
		Use:   "get [list]",
		Short: "Show lists, items, and progress",
		Example: `
taskmaster get
taskmaster get Groceries
taskmaster get --list Groceries --watch
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				if lo.Name != "" {
					return errors.New("list given both as argument and flag")
				}
				lo.Name = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && !isatty.IsTerminal(os.Stdout.Fd()) {
				return errors.New("--watch needs a terminal")
			}
			s, err := newService()
			if err != nil {
				return err
			}
			g := get.Get{
				ListName: lo.Name,
				Watch:    watch,
				Service:  s,
			}
			return g.Do(context.Background())
		},
	}

	options.AddListArgs(cmd, lo)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Keep re-rendering as the data file changes.")

	topLevel.AddCommand(cmd)
}
