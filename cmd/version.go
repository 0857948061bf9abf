// File: cmd/version.go
package cmd

import (
	"fmt"

	"logsieve/pkg/version"

	"github.com/spf13/cobra"
)

// versionCmd displays the current version of logsieve. The --short flag
// prints a concise version string only.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of logsieve",
	Long:  `Display the current version information of the logsieve CLI tool.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		short, err := cmd.Flags().GetBool("short")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		v := version.Get()
		if short {
			fmt.Fprintln(cmd.OutOrStdout(), v.Version)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")
	RootCmd.AddCommand(versionCmd)
}
