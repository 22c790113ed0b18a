// Package configure holds the commands that manage the riset config file
//
// e.g., riset config ...
package configure

import (
	"github.com/spf13/cobra"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create the config file and show where riset keeps its files",
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(PathCmd())

	return cmd
}
