package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"taskmaster/pkg/commands/options"
	"taskmaster/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	number := 0

	cmd := &cobra.Command{
		Use:   "edit <number> <text>",
		Short: "Reword a task",
		Example: `
taskmaster edit --list Groceries 2 buy two oat milks
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires the task number and the new text")
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
			e := edit.Edit{
				ListName: lo.Name,
				Number:   number,
				Text:     strings.Join(args[1:], " "),
				Service:  s,
			}
			return e.Do(context.Background())
		},
	}

	options.AddListArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}
