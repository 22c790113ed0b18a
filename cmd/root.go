// Package cmd assembles the riset command tree
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
	"github.com/tbtb-research/riset/internal/cli/auth"
	"github.com/tbtb-research/riset/internal/cli/configure"
	"github.com/tbtb-research/riset/internal/cli/project"
	"github.com/tbtb-research/riset/internal/cli/proposal"
	"github.com/tbtb-research/riset/internal/cli/task"
	"github.com/tbtb-research/riset/internal/config"
)

// NewRootCmd builds the riset root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "riset",
		Short: "Riset - manage research projects from the terminal",
		Long: `Riset is a command-line client for the research project service.
Sign in, then manage projects, their tasks and collaborators, and submit proposals.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if baseURL, _ := cmd.Flags().GetString("base-url"); baseURL != "" {
				return os.Setenv(config.EnvBaseURL, baseURL)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String("base-url", "", "API base URL (overrides "+config.EnvBaseURL+" and the config file)")

	rootCmd.AddCommand(auth.AuthCmd())
	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(proposal.ProposalCmd())
	rootCmd.AddCommand(configure.ConfigCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the riset version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "riset %s\n", cli.Version)
			return err
		},
	}
}

// Execute runs the root command and returns the error of the failed command, if any
func Execute() error {
	return NewRootCmd().Execute()
}
