package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Rajeshaligeti/hope-health/internal/infra/fsworkspace"
	"github.com/Rajeshaligeti/hope-health/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a HOPE workspace (hope.yaml, history/, reminders/)",
		RunE: func(_ *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Printf("Workspace ready at %s\n", root)
			fmt.Println("Try: hope bmi --weight 70 --height 175")
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	return cmd
}
