package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"taskmaster/pkg/commands/options"
	"taskmaster/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	lo := &options.ListOptions{}

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task to a list",
		Example: `
taskmaster add --list Groceries buy oat milk
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires the task text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			a := add.Add{
				ListName: lo.Name,
				Text:     strings.Join(args, " "),
				Service:  s,
			}
			return a.Do(context.Background())
		},
	}

	options.AddListArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}
