package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vibelux/roomcfd/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roomcfd",
		Short: "Indoor-climate CFD engine for grow room airflow design",
	}

	rootCmd.AddCommand(solveCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func solveCmd() *cobra.Command {
	var pretty bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "solve [project-path]",
		Short: "Run the airflow simulation and emit the results report",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSolve(args[0], pretty, newLogger(verbose))
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "print a human-readable metrics summary instead of JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-iteration residuals")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a room scenario without running the solver",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func renderCmd() *cobra.Command {
	var outDir string
	var slice int

	cmd := &cobra.Command{
		Use:   "render [project-path]",
		Short: "Solve and write temperature and streamline PNGs",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRender(args[0], outDir, slice, newLogger(false))
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "output", "directory for rendered images")
	cmd.Flags().IntVar(&slice, "slice", -1, "height index for the temperature slice (default: mid-height)")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server with live residual streaming",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			settings := server.LoadSettings(args[0])
			if port != 0 {
				settings.Port = port
			}

			log := logrus.New()
			if level, err := logrus.ParseLevel(settings.LogLevel); err == nil {
				log.SetLevel(level)
			}

			srv := server.New(args[0], settings, log)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP server port (overrides server.ini)")
	return cmd
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}
