package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/vibelux/roomcfd/pkg/analytics"
	"github.com/vibelux/roomcfd/pkg/render"
	"github.com/vibelux/roomcfd/pkg/solver"
	"github.com/vibelux/roomcfd/pkg/spec"
	"github.com/vibelux/roomcfd/pkg/validation"
)

// loadAndValidate loads the scenario and runs schema validation.
func loadAndValidate(projectPath string) (*spec.SimulationConfig, *validation.Report, error) {
	cfg, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading scenario: %w", err)
	}
	return cfg, validation.ValidateSchema(cfg), nil
}

func runValidate(projectPath string) error {
	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

// solveProject runs the full pipeline and returns the aggregated
// results. Ctrl-C cancels between outer iterations.
func solveProject(projectPath string, log *logrus.Logger) (*analytics.Results, error) {
	cfg, report, err := loadAndValidate(projectPath)
	if err != nil {
		return nil, err
	}
	if !report.Valid {
		printValidationReport(report)
		return nil, fmt.Errorf("scenario has validation errors")
	}
	for _, w := range report.Warnings {
		log.Warn(w.Message)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return analytics.Run(ctx, cfg, solver.Options{Logger: log}, analytics.Options{})
}

func runSolve(projectPath string, pretty bool, log *logrus.Logger) error {
	results, err := solveProject(projectPath, log)
	if err != nil {
		return err
	}

	if !results.Converged {
		log.Warnf("solver did not converge within %d iterations; results are approximate",
			len(results.Residuals))
	}

	if pretty {
		printMetrics(results)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func runRender(projectPath, outDir string, slice int, log *logrus.Logger) error {
	results, err := solveProject(projectPath, log)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	if slice < 0 {
		slice = results.Grid.Nz / 2
	}

	tempPath := filepath.Join(outDir, "temperature.png")
	if err := render.TemperatureSlice(results, slice, tempPath); err != nil {
		return fmt.Errorf("rendering temperature slice: %w", err)
	}

	linesPath := filepath.Join(outDir, "streamlines.png")
	if err := render.Streamlines(results, linesPath); err != nil {
		return fmt.Errorf("rendering streamlines: %w", err)
	}

	fmt.Printf("Wrote %s and %s\n", tempPath, linesPath)
	return nil
}
