package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Rajeshaligeti/hope-health/internal/infra/fsworkspace"
	"github.com/Rajeshaligeti/hope-health/internal/infra/logger"
	"github.com/Rajeshaligeti/hope-health/internal/infra/workspacefinder"
	"github.com/Rajeshaligeti/hope-health/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:           "hope",
		Short:         "HOPE: BMI evaluation, history, reminders and vitals from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			// init and version never touch a workspace log.
			if c.Name() == "init" || c.Name() == "version" {
				return nil
			}
			if root, ok := findWorkspace(); ok {
				cleanup, _ = logger.Setup(logger.Config{Root: root, Debug: debug})
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				_ = cleanup()
				cleanup = nil
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			finder := workspacefinder.NewFinder()

			deps := tui.Deps{
				WorkspaceLocator:     finder,
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.L(),
				Debug:                debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .hope/logs/hope.log")

	cmd.AddCommand(
		bmiCmd(),
		historyCmd(),
		remindersCmd(),
		vitalsCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

func findWorkspace() (string, bool) {
	wd, err := os.Getwd()
	if err != nil {
		return "", false
	}
	wd, _ = filepath.Abs(wd)

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil || root == "" {
		return "", false
	}
	return root, true
}

func printError(w io.Writer, err error) {
	msg := userMessage(err)
	fmt.Fprintf(w, "Error: %s\n", msg)
	if msg != err.Error() {
		fmt.Fprintf(w, "  detail: %v\n", err)
	}
}
