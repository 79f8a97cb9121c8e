// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ListOptions captures the list selection flag shared by item commands.
type ListOptions struct {
	Name string
}

// AddListArgs wires the list selection flag on the provided command.
func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().StringVarP(&o.Name, "list", "l", "",
		"Specify the list to operate on.")
}
