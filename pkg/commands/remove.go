package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"taskmaster/pkg/commands/options"
	"taskmaster/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	co := &options.ConfirmOptions{}
	number := 0

	cmd := &cobra.Command{
		Use:     "remove <number>",
		Aliases: []string{"rm"},
		Short:   "Delete a task from a list",
		Example: `
taskmaster remove --list Groceries 2
taskmaster remove --list Groceries 2 --yes
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires the task number shown by get")
			}
			var err error
			number, err = strconv.Atoi(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := remove.Remove{
				ListName: lo.Name,
				Number:   number,
				Force:    co.Yes,
				Service:  s,
			}
			return r.Do(context.Background())
		},
	}

	options.AddListArgs(cmd, lo)
	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
