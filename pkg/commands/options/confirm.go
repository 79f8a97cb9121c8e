package options

import (
	"github.com/spf13/cobra"
)

// ConfirmOptions carries the explicit confirmation flag for destructive
// commands.
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArgs(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Confirm a destructive operation without prompting.")
}
