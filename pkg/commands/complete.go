package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"taskmaster/pkg/commands/options"
	"taskmaster/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	number := 0

	cmd := &cobra.Command{
		Use:     "complete <number>",
		Aliases: []string{"done", "toggle"},
		Short:   "Toggle a task's completion state",
		Example: `
taskmaster complete --list Groceries 2
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
			c := complete.Complete{
				ListName: lo.Name,
				Number:   number,
				Service:  s,
			}
			return c.Do(context.Background())
		},
	}

	options.AddListArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}
