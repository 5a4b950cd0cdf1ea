package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/smrice3/rise-scorm-creator/internal/ident"
	"github.com/smrice3/rise-scorm-creator/internal/pack"
	"github.com/smrice3/rise-scorm-creator/internal/pipeline"
	"github.com/smrice3/rise-scorm-creator/internal/render"
	"github.com/spf13/cobra"
)

var (
	imsccBaseURL   string
	imsccOutput    string
	imsccURLFormat string
	imsccAddPages  []string
	imsccVerbose   bool
	imsccQuiet     bool
)

var imsccCmd = &cobra.Command{
	Use:   "imscc <tincan.xml>",
	Short: "Generate a Canvas Common Cartridge",
	Long: `Generate an IMS Common Cartridge (.imscc) for Canvas from a Rise
TinCan XML export.

Sections become Canvas modules and the blocks that follow each section
become wiki pages inside it. Pre-authored HTML files can be appended
with --add-page; they are collected into a trailing "Additional
Content" module, reusing any identifier/workflow_state metadata they
already carry.

Examples:
  rise-scorm-creator imscc tincan.xml --base-url https://example.com/rise-content
  rise-scorm-creator imscc tincan.xml --base-url https://example.com/rise-content --url-format blocks
  rise-scorm-creator imscc tincan.xml --base-url https://example.com/rise-content --add-page welcome.html`,
	Args: cobra.ExactArgs(1),
	RunE: runImscc,
}

func init() {
	imsccCmd.Flags().StringVar(&imsccBaseURL, "base-url", "", "base URL of the hosted Rise content (without /index.html)")
	imsccCmd.Flags().StringVarP(&imsccOutput, "output", "o", "", "output file path (default: timestamped name in output_dir)")
	imsccCmd.Flags().StringVar(&imsccURLFormat, "url-format", "", "lesson URL path selector (blocks, lessons, sections)")
	imsccCmd.Flags().StringArrayVar(&imsccAddPages, "add-page", nil, "pre-authored HTML page to append (repeatable)")
	imsccCmd.Flags().BoolVarP(&imsccVerbose, "verbose", "v", false, "verbose output")
	imsccCmd.Flags().BoolVarP(&imsccQuiet, "quiet", "q", false, "quiet mode")

	rootCmd.AddCommand(imsccCmd)
}

func runImscc(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	xmlData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	baseURL := resolveBaseURL(imsccBaseURL, cfg)
	if baseURL == "" {
		return fmt.Errorf("base URL is required (use --base-url, RISE_BASE_URL or the config file)")
	}

	urlFormat := imsccURLFormat
	if urlFormat == "" {
		urlFormat = cfg.URLFormat
	}

	gen := ident.NewUUIDGenerator()
	var extras []render.AdditionalPage
	for _, pagePath := range imsccAddPages {
		content, err := os.ReadFile(pagePath)
		if err != nil {
			return fmt.Errorf("failed to read additional page: %w", err)
		}
		page, warnings := render.ScanAdditionalPage(filepath.Base(pagePath), content, gen)
		reportWarnings(cmd, warnings)
		extras = append(extras, page)
	}

	res, err := pipeline.Convert(pipeline.Request{
		Dialect:         pipeline.Imscc,
		BaseURL:         baseURL,
		URLFormat:       urlFormat,
		AdditionalPages: extras,
		IDs:             gen,
	}, xmlData)
	if err != nil {
		return err
	}

	reportWarnings(cmd, res.Warnings)

	if !imsccQuiet && imsccVerbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "course: %s\n", res.Course.Title)
		fmt.Fprintf(cmd.ErrOrStderr(), "activities: %d\n", len(res.Activities))
		fmt.Fprintf(cmd.ErrOrStderr(), "additional pages: %d\n", len(extras))
	}

	outPath := imsccOutput
	if outPath == "" {
		outPath = filepath.Join(cfg.OutputDir, res.Filename)
	}

	if err := pack.WriteFileAtomic(outPath, res.Archive); err != nil {
		return err
	}

	if !imsccQuiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "Common Cartridge written: %s\n", outPath)
	}

	return nil
}
