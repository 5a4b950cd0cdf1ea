package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/smrice3/rise-scorm-creator/internal/config"
	"github.com/smrice3/rise-scorm-creator/internal/pack"
	"github.com/smrice3/rise-scorm-creator/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	scormBaseURL   string
	scormOutput    string
	scormSchemaDir string
	scormVerbose   bool
	scormQuiet     bool
)

var scormCmd = &cobra.Command{
	Use:   "scorm <tincan.xml>",
	Short: "Generate a SCORM 1.2 package",
	Long: `Generate a SCORM 1.2 package (.zip) from a Rise TinCan XML export.

Every activity named .../blocks or .../section becomes an HTML page
embedding the hosted lesson, with a SCORM 1.2 runtime shim that reports
lesson status and session time to the LMS. Sections group their lessons
by name prefix in the manifest.

The base URL is where the Rise content is hosted, without /index.html.
It can also come from the config file or the RISE_BASE_URL environment
variable.

Examples:
  rise-scorm-creator scorm tincan.xml --base-url https://example.com/rise-content
  rise-scorm-creator scorm tincan.xml -o course.zip --schema-dir ./schemas`,
	Args: cobra.ExactArgs(1),
	RunE: runScorm,
}

func init() {
	scormCmd.Flags().StringVar(&scormBaseURL, "base-url", "", "base URL of the hosted Rise content (without /index.html)")
	scormCmd.Flags().StringVarP(&scormOutput, "output", "o", "", "output file path (default: timestamped name in output_dir)")
	scormCmd.Flags().StringVar(&scormSchemaDir, "schema-dir", "", "directory containing the SCORM 1.2 XSD files")
	scormCmd.Flags().BoolVarP(&scormVerbose, "verbose", "v", false, "verbose output")
	scormCmd.Flags().BoolVarP(&scormQuiet, "quiet", "q", false, "quiet mode")

	rootCmd.AddCommand(scormCmd)
}

func runScorm(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	xmlData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	baseURL := resolveBaseURL(scormBaseURL, cfg)
	if baseURL == "" {
		return fmt.Errorf("base URL is required (use --base-url, RISE_BASE_URL or the config file)")
	}

	schemaDir := scormSchemaDir
	if schemaDir == "" {
		schemaDir = cfg.SchemaDir
	}

	res, err := pipeline.Convert(pipeline.Request{
		Dialect:   pipeline.Scorm12,
		BaseURL:   baseURL,
		SchemaDir: schemaDir,
	}, xmlData)
	if err != nil {
		return err
	}

	reportWarnings(cmd, res.Warnings)

	if !scormQuiet && scormVerbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "course: %s\n", res.Course.Title)
		fmt.Fprintf(cmd.ErrOrStderr(), "activities: %d\n", len(res.Activities))
	}

	outPath := scormOutput
	if outPath == "" {
		outPath = filepath.Join(cfg.OutputDir, res.Filename)
	}

	if err := pack.WriteFileAtomic(outPath, res.Archive); err != nil {
		return err
	}

	if !scormQuiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "SCORM package written: %s\n", outPath)
	}

	return nil
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func resolveBaseURL(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	return config.GetEnvOrDefault("RISE_BASE_URL", cfg.BaseURL)
}

func reportWarnings(cmd *cobra.Command, warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
}
