package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/coolbeans/attest/pkg/assess"
	"github.com/coolbeans/attest/pkg/export"
	"github.com/coolbeans/attest/pkg/library"
	"github.com/coolbeans/attest/pkg/report"
	"github.com/coolbeans/attest/pkg/types"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "attest",
		Short: "Compliance assessment reporting",
		Long: `Attest tracks compliance assessments against standards such as
ISO/IEC 27001 and the CIS Controls.

It maintains a library of standards with their requirement catalogs,
computes per-assessment statistics and compliance scores, and exports
reports as CSV, Markdown, HTML or JSON.`,
		Version: version,
	}

	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(standardsCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [project-name]",
		Short: "Initialize a new assessment project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectName := "attest-project"
			if len(args) > 0 {
				projectName = args[0]
			}

			dirs := []string{
				filepath.Join(projectName, "assessments"),
				filepath.Join(projectName, "reports"),
			}
			for _, dir := range dirs {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("failed to create directory %s: %w", dir, err)
				}
			}

			libraryPath := filepath.Join(projectName, "library")
			lib, err := library.Init(libraryPath)
			if err != nil {
				return err
			}
			added, err := library.Seed(lib)
			if err != nil {
				return fmt.Errorf("failed to seed standards: %w", err)
			}

			// Starter assessment covering the first seeded standard.
			standards := lib.Standards()
			assessmentPath := filepath.Join(projectName, "assessments", "example.yaml")
			starter := &library.AssessmentFile{
				Assessment: library.NewAssessment("Example Assessment", []string{standards[0].ID}),
			}
			if err := library.SaveAssessment(assessmentPath, starter); err != nil {
				return err
			}

			fmt.Printf("Initialized assessment project: %s\n", projectName)
			fmt.Printf("Seeded %d standards into %s\n", added, libraryPath)
			fmt.Printf("\nNext steps:\n")
			fmt.Printf("  1. Record results in %s\n", assessmentPath)
			fmt.Printf("  2. Run: attest stats --library %s -a %s\n", libraryPath, assessmentPath)
			fmt.Printf("  3. Run: attest export --library %s -a %s --format html -o report.html\n",
				libraryPath, assessmentPath)
			return nil
		},
	}
}

func standardsCmd() *cobra.Command {
	var libraryPath string

	cmd := &cobra.Command{
		Use:   "standards",
		Short: "List standards in the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := library.Open(libraryPath)
			if err != nil {
				return err
			}

			entries := lib.Entries()
			if len(entries) == 0 {
				fmt.Println("Library is empty. Run: attest init")
				return nil
			}

			fmt.Printf("%-40s %-10s %-14s %s\n", "STANDARD", "VERSION", "REQUIREMENTS", "ID")
			for _, entry := range entries {
				fmt.Printf("%-40s %-10s %-14d %s\n",
					entry.Standard.Name, entry.Standard.Version,
					entry.RequirementCount, entry.Standard.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&libraryPath, "library", "library", "Path to the standards library")
	return cmd
}

func statsCmd() *cobra.Command {
	var libraryPath string
	var assessmentPath string
	var standardID string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Compute assessment statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			assessment, requirements, standards, err := loadInputs(libraryPath, assessmentPath)
			if err != nil {
				return err
			}

			opts := report.DefaultOptions()
			opts.ActiveStandardID = standardID
			assessmentReport := report.Build(assessment, requirements, standards, opts)

			fmt.Printf("Assessment: %s (%s)\n\n", assessment.Name, assessment.Status)
			fmt.Print(assessmentReport.Stats.String())

			fmt.Println("\nBy standard:")
			for _, requirementGroup := range assessmentReport.Groups {
				groupStats := assess.ComputeStats(requirementGroup.Requirements)
				fmt.Printf("  %-40s %3d%% (%d requirements)\n",
					requirementGroup.Label, groupStats.ComplianceScore, groupStats.TotalRequirements)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&libraryPath, "library", "library", "Path to the standards library")
	cmd.Flags().StringVarP(&assessmentPath, "assessment", "a", "", "Path to the assessment file")
	cmd.Flags().StringVar(&standardID, "standard", "", "Only include requirements for this standard ID")
	cmd.MarkFlagRequired("assessment")
	return cmd
}

func validateCmd() *cobra.Command {
	var libraryPath string
	var assessmentPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an assessment is complete enough to export",
		RunE: func(cmd *cobra.Command, args []string) error {
			assessment, requirements, standards, err := loadInputs(libraryPath, assessmentPath)
			if err != nil {
				return err
			}

			result := report.Validate(assessment, requirements, standards)
			if result.Valid {
				fmt.Println("OK: assessment is ready to export")
				return nil
			}

			for _, validationError := range result.Errors {
				fmt.Fprintf(os.Stderr, "error: %s\n", validationError)
			}
			return fmt.Errorf("assessment failed validation with %d error(s)", len(result.Errors))
		},
	}

	cmd.Flags().StringVar(&libraryPath, "library", "library", "Path to the standards library")
	cmd.Flags().StringVarP(&assessmentPath, "assessment", "a", "", "Path to the assessment file")
	cmd.MarkFlagRequired("assessment")
	return cmd
}

func exportCmd() *cobra.Command {
	var libraryPath string
	var assessmentPath string
	var outputPath string
	var format string
	var standardID string
	var noSummary, noCharts, noRequirements, noAttachments bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an assessment report",
		Long: `Export an assessment report in one of the supported formats.

Formats: csv, markdown, html, json

Example:
  attest export -a assessments/example.yaml --format csv -o report.csv
  attest export -a assessments/example.yaml --format html --no-charts -o report.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			assessment, requirements, standards, err := loadInputs(libraryPath, assessmentPath)
			if err != nil {
				return err
			}

			if result := report.Validate(assessment, requirements, standards); !result.Valid {
				return fmt.Errorf("assessment is not exportable: %s", strings.Join(result.Errors, "; "))
			}

			opts := report.DefaultOptions()
			opts.ActiveStandardID = standardID
			opts.Format = report.Format(format)
			opts.IncludeSummary = !noSummary
			opts.IncludeCharts = !noCharts
			opts.IncludeRequirements = !noRequirements
			opts.IncludeAttachments = !noAttachments

			assessmentReport := report.Build(assessment, requirements, standards, opts)

			var output []byte
			switch opts.Format {
			case report.FormatCSV:
				rendered, err := export.CSV(assessmentReport)
				if err != nil {
					return err
				}
				output = []byte(rendered)
			case report.FormatMarkdown:
				output = []byte(export.Markdown(assessmentReport))
			case report.FormatHTML:
				output = []byte(export.HTML(assessmentReport))
			case report.FormatJSON:
				rendered, err := export.JSON(assessmentReport)
				if err != nil {
					return err
				}
				output = rendered
			default:
				return fmt.Errorf("unsupported format %q (use csv, markdown, html or json)", format)
			}

			if outputPath == "" {
				fmt.Print(string(output))
				return nil
			}
			if err := os.WriteFile(outputPath, output, 0644); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			fmt.Printf("Wrote %s report to %s\n", format, outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&libraryPath, "library", "library", "Path to the standards library")
	cmd.Flags().StringVarP(&assessmentPath, "assessment", "a", "", "Path to the assessment file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (stdout when omitted)")
	cmd.Flags().StringVar(&format, "format", "markdown", "Report format: csv, markdown, html, json")
	cmd.Flags().StringVar(&standardID, "standard", "", "Only include requirements for this standard ID")
	cmd.Flags().BoolVar(&noSummary, "no-summary", false, "Omit the summary section")
	cmd.Flags().BoolVar(&noCharts, "no-charts", false, "Omit the status distribution section")
	cmd.Flags().BoolVar(&noRequirements, "no-requirements", false, "Omit the requirement tables")
	cmd.Flags().BoolVar(&noAttachments, "no-attachments", false, "Omit the attached evidence section")
	cmd.MarkFlagRequired("assessment")
	return cmd
}

func watchCmd() *cobra.Command {
	var libraryPath string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the standards library for definition changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := library.Open(libraryPath)
			if err != nil {
				return err
			}

			registry, err := library.NewRegistry(lib.StandardsDir())
			if err != nil {
				return err
			}
			registry.OnChange(func(event string, definition *library.StandardDefinition) {
				fmt.Printf("%s: %s (%d requirements)\n",
					event, definition.Standard.DisplayName(), len(definition.Requirements))
			})

			if err := registry.Watch(); err != nil {
				return err
			}
			defer registry.StopWatch()

			fmt.Printf("Watching %s for changes (Ctrl-C to stop)\n", lib.StandardsDir())
			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop
			return nil
		},
	}

	cmd.Flags().StringVar(&libraryPath, "library", "library", "Path to the standards library")
	return cmd
}

// loadInputs opens the library and resolves an assessment file against it.
func loadInputs(libraryPath, assessmentPath string) (types.Assessment, []types.Requirement, []types.Standard, error) {
	lib, err := library.Open(libraryPath)
	if err != nil {
		return types.Assessment{}, nil, nil, err
	}
	return library.LoadAssessment(assessmentPath, lib)
}
