package main

import (
	"fmt"

	"github.com/vibelux/roomcfd/pkg/analytics"
	"github.com/vibelux/roomcfd/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.ConfigPath != "" {
				fmt.Printf("    -> %s = %v\n", e.ConfigPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.ConfigPath != "" {
				fmt.Printf("    -> %s = %v\n", w.ConfigPath, w.ActualValue)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printMetrics(res *analytics.Results) {
	m := res.Metrics

	fmt.Println("Airflow Simulation Summary")
	fmt.Println("==========================")
	fmt.Println()

	status := "converged"
	if !res.Converged {
		status = "DID NOT CONVERGE"
	}
	fmt.Printf("  Outcome:            %s after %d iterations\n", status, len(res.Residuals))
	if len(res.Residuals) > 0 {
		fmt.Printf("  Final residual:     %.3e\n", res.Residuals[len(res.Residuals)-1])
	}
	fmt.Println()

	fmt.Printf("  Velocity max/avg:   %.3f / %.3f m/s\n", m.MaxVelocity, m.AvgVelocity)
	fmt.Printf("  Temperature:        %.1f to %.1f °C (avg %.1f)\n", m.MinTempC, m.MaxTempC, m.AvgTempC)
	fmt.Printf("  Pressure drop:      %.2f Pa\n", m.PressureDrop)
	fmt.Printf("  Air changes:        %.1f per hour\n", m.AirChangeRate)
	fmt.Printf("  Mixing efficiency:  %.0f%%\n", m.MixingEfficiency*100)
	fmt.Printf("  Comfort:            PMV %+.2f, PPD %.0f%%\n", m.Comfort.PMV, m.Comfort.PPD)
	fmt.Printf("  Streamlines traced: %d\n", len(res.Streamlines))

	for _, w := range res.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
}
