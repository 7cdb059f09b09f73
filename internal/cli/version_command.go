// filepath: internal/cli/version_command.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	// Needs no configuration; a malformed config file must not block it.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mediacheck %s\n", Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
