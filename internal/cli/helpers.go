package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/models"
)

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

// FormatterFromFlags builds the formatter selected by --json and --quiet
func FormatterFromFlags(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// ParseDeadline parses a YYYY-MM-DD deadline flag
func ParseDeadline(value string) (models.Date, error) {
	return models.ParseDate(strings.TrimSpace(value))
}

// OpenUpload opens a local file for a multipart upload.
// The caller closes the returned file.
func OpenUpload(path string) (*models.File, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%s is a directory", path)
	}

	return &models.File{Name: filepath.Base(path), Content: f}, f, nil
}

// StringFlagIfChanged returns a pointer to the flag value only when the user set it
func StringFlagIfChanged(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}
