package configure

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
	"github.com/tbtb-research/riset/internal/config"
)

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write a config file with the default settings to the user config directory
($XDG_CONFIG_HOME/riset/config.yaml or ~/.config/riset/config.yaml).
An existing file is kept unless --force is given.`,
		RunE: runInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cli.AddOutputFlags(cmd, "Only output the config file path")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromFlags(cmd)
	force, _ := cmd.Flags().GetBool("force")

	path, err := config.Path()
	if err != nil {
		return cli.Fail(formatter, "CONFIG_PATH_ERROR", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return cli.UsageError(formatter, "config file %s already exists, use --force to overwrite it", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cli.Fail(formatter, "CONFIG_WRITE_ERROR", err)
	}

	if err := config.Default().SaveTo(path); err != nil {
		return cli.Fail(formatter, "CONFIG_WRITE_ERROR", fmt.Errorf("failed to write %s: %w", path, err))
	}

	if formatter.Quiet && !formatter.JSON {
		return formatter.PrintID(path)
	}
	return formatter.Message("Wrote "+path, map[string]interface{}{"path": path})
}
