package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/sitecarbon/internal/report"
)

// newReportCmd creates the "report" subcommand: parse a project file, run
// both calculators, and write the JSON snapshot.
func newReportCmd(verbose *bool) *cobra.Command {
	var (
		projectPath   string
		factorsPath   string
		outPath       string
		pretty        bool
		missingFactor string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute a project emissions report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(*verbose)

			policy, err := parsePolicy(missingFactor)
			if err != nil {
				return err
			}
			project, err := loadProject(projectPath)
			if err != nil {
				return err
			}
			registry, err := loadRegistry(factorsPath, logger)
			if err != nil {
				return err
			}

			embodied, operational := newCalculators(project, registry, policy, logger)
			rejected := populate(project, embodied, operational, logger)

			snapshot := report.BuildSnapshot(embodied, operational, report.Options{
				GrossFloorAreaM2: project.Project.GrossFloorAreaM2,
			})

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				out = f
			}
			if err := snapshot.Encode(out, pretty); err != nil {
				return fmt.Errorf("failed to encode report: %w", err)
			}

			logger.Info().
				Str("project", project.Project.Name).
				Float64("total_tonnes", snapshot.Project.TotalTonnes).
				Int("rejected_items", rejected).
				Msg("report generated")

			if rejected > 0 {
				return fmt.Errorf("%d line item(s) rejected", rejected)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectPath, "project", "p", "", "project YAML file (required)")
	cmd.Flags().StringVar(&factorsPath, "factors", "", "optional factor overrides YAML file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the JSON report to a file instead of stdout")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	cmd.Flags().StringVar(&missingFactor, "on-missing-factor", "reject", "missing-factor policy: reject or zero")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
