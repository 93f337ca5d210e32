package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
	"github.com/Rajeshaligeti/hope-health/internal/usecase"
)

func vitalsCmd() *cobra.Command {
	var workspace string
	var format string

	cmd := &cobra.Command{
		Use:   "vitals [kind...]",
		Short: "Show the latest heart rate, blood pressure, steps and sleep",
		Example: "  hope vitals\n" +
			"  hope vitals steps sleep --format json",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			kinds := make([]domain.VitalKind, 0, len(args))
			for _, a := range args {
				k, err := domain.ParseVitalKind(a)
				if err != nil {
					return err
				}
				kinds = append(kinds, k)
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			cards, err := usecase.NewShowVitals(ws.vitals).Execute(cmd.Context(), kinds...)
			if err != nil {
				return err
			}
			return printVitals(os.Stdout, cards, format)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return cmd
}

func printVitals(w io.Writer, cards []usecase.VitalCard, format string) error {
	if format == formatJSON {
		return writeJSON(w, cards)
	}

	if len(cards) == 0 {
		fmt.Fprintln(w, "(no vitals recorded)")
		return nil
	}

	for _, c := range cards {
		line := fmt.Sprintf("%-15s %9s %-6s %s  %s", c.Title, c.Value, c.Unit, c.Trend.Arrow(), c.Status)
		if c.Progress != nil {
			line += fmt.Sprintf("  (%s%% of %s)", formatFloat(*c.Progress), formatFloat(c.Goal))
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
