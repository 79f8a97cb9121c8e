package commands

import (
	"context"

	"github.com/spf13/cobra"

	"taskmaster/pkg/runner/export"
	"taskmaster/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	output := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a plain-text report of all lists and tasks",
		Example: `
taskmaster export
taskmaster export --output ~/taskmaster_export.txt
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			if output == "" {
				cfg, err := store.LoadConfig()
				if err != nil {
					return err
				}
				output = cfg.ExportPath()
			}
			e := export.Export{
				Output:  output,
				Service: s,
			}
			return e.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "",
		"Export file path. Defaults to the configured export path.")

	topLevel.AddCommand(cmd)
}
