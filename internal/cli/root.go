// Package cli implements the rise-scorm-creator command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version string shown by the version command.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "rise-scorm-creator",
	Short: "Convert Rise TinCan exports into LMS packages",
	Long: `rise-scorm-creator converts a Rise TinCan (xAPI) activity-tree XML
export into packages a Learning Management System can import.

Two target formats are supported:

  scorm   SCORM 1.2 package (.zip) for generic LMSes
  imscc   IMS Common Cartridge (.imscc) for Canvas

Each lesson becomes a small HTML page that embeds the hosted Rise
content in an iframe; the converter never fetches the content itself.

Examples:
  rise-scorm-creator scorm tincan.xml --base-url https://example.com/rise-content
  rise-scorm-creator imscc tincan.xml --base-url https://example.com/rise-content --url-format blocks
  rise-scorm-creator inspect tincan.xml`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rise-scorm-creator %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
