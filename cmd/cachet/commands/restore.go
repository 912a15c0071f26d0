package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.cachet.dev/cachet/internal/core/domain"
)

func (c *CLI) newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Restore cached stores before the build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			report, err := c.app.Restore(cmd.Context(), configPath)
			if err != nil {
				// A cache failure must never break the surrounding build.
				c.logger.Error(err)
				return nil
			}

			out := cmd.OutOrStdout()
			switch report.Hit {
			case domain.HitExact:
				fmt.Fprintf(out, "restore: exact hit for %s\n", report.MatchedKey)
			case domain.HitPartial:
				fmt.Fprintf(out, "restore: partial hit %s (wanted %s)\n", report.MatchedKey, report.PrimaryKey)
			default:
				fmt.Fprintf(out, "restore: miss for %s\n", report.PrimaryKey)
			}
			return nil
		},
	}
}
