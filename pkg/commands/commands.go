// Package commands wires the cobra command tree for taskmaster.
package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "taskmaster",
		Short: base.Wrap80("TaskMaster Pro task lists on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addGet(topLevel)
	addAdd(topLevel)
	addComplete(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addList(topLevel)
	addExport(topLevel)
	addVersion(topLevel)
}
