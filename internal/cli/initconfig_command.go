// filepath: internal/cli/initconfig_command.go
package cli

import (
	"fmt"
	"os"

	"mediacheck/internal/config"
	"mediacheck/internal/logging"

	"github.com/spf13/cobra"
)

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a starter configuration file",
	Long:  `Writes a config.toml populated with the default settings. Refuses to overwrite an existing file.`,
	// Skips the usual config load: the existing file may be malformed, and
	// this command must still reach its own refusal message.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		resolveConfigPath()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil {
			return fmt.Errorf("refusing to overwrite existing config at %s", cfgFile)
		}

		if err := config.SaveConfig(cfgFile, config.Default()); err != nil {
			return err
		}

		logging.Log.Infof("Wrote starter configuration to %s", cfgFile)
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote starter configuration to %s\n", cfgFile)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initConfigCmd)
}
