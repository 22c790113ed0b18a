package configure

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
	"github.com/tbtb-research/riset/internal/cli/styles"
	"github.com/tbtb-research/riset/internal/config"
)

// Paths lists the files riset reads and writes
type Paths struct {
	Config  string `json:"config"`
	Session string `json:"session"`
	Log     string `json:"log"`
}

// PathCmd returns the config path subcommand
func PathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Show the config, session and log file locations",
		RunE:  runPath,
	}

	cli.AddOutputFlags(cmd, "Only output the config file path")

	return cmd
}

func runPath(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	configPath, err := config.Path()
	if err != nil {
		return cli.Fail(formatter, "CONFIG_PATH_ERROR", err)
	}

	cfg := cliInstance.App.Config
	paths := Paths{
		Config:  configPath,
		Session: cfg.Session.File,
		Log:     cfg.Logging.File,
	}

	if formatter.Quiet && !formatter.JSON {
		return formatter.PrintID(paths.Config)
	}

	return formatter.Success(paths, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s\n%s\n%s\n",
			styles.Field("Config", paths.Config),
			styles.Field("Session", paths.Session),
			styles.Field("Log", paths.Log))
		return err
	})
}
