package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"taskmaster/pkg/commands/options"
	"taskmaster/pkg/runner/lists"
)

func addList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Manage lists",
		Example: `
taskmaster list create Groceries
taskmaster list rename Groceries Shopping
taskmaster list delete Shopping --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addListCreate(cmd)
	addListRename(cmd)
	addListDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addListCreate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new empty list",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires the list name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			c := lists.Create{
				Name:    strings.Join(args, " "),
				Service: s,
			}
			return c.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addListRename(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rename <name> <new name>",
		Short: "Rename a list",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires the current and the new list name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := lists.Rename{
				Name:    args[0],
				NewName: strings.Join(args[1:], " "),
				Service: s,
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addListDelete(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a list and all of its tasks",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires the list name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			d := lists.Delete{
				Name:    strings.Join(args, " "),
				Force:   co.Yes,
				Service: s,
			}
			return d.Do(context.Background())
		},
	}

	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
