package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save cache paths after the build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			report, err := c.app.Save(cmd.Context(), configPath)
			if err != nil {
				// A cache failure must never break the surrounding build.
				c.logger.Error(err)
				return nil
			}

			out := cmd.OutOrStdout()
			if report.Saved {
				fmt.Fprintf(out, "save: stored %s\n", report.Key)
			} else {
				fmt.Fprintf(out, "save: skipped (%s)\n", report.Reason)
			}
			return nil
		},
	}
}
