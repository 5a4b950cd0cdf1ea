package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/smrice3/rise-scorm-creator/internal/tincan"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <tincan.xml>",
	Short: "List the activities a conversion would package",
	Long: `Parse a Rise TinCan XML export and list the course information and
the activities that would be included in a package, without generating
anything. Useful as a dry run before scorm or imscc.

Example:
  rise-scorm-creator inspect tincan.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	xmlData, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	course, activities, err := tincan.Extract(xmlData)
	if err != nil {
		return fmt.Errorf("failed to read TinCan XML: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Title: %s\n", course.Title)
	if course.Description != "" {
		fmt.Fprintf(out, "Description: %s\n", course.Description)
	}
	fmt.Fprintf(out, "Activities: %d\n\n", len(activities))

	if len(activities) == 0 {
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tKIND\tNAME")
	fmt.Fprintln(w, "--\t----\t----")
	for _, a := range activities {
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.ID, a.Kind, a.Name)
	}

	return nil
}
