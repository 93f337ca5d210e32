package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
	"github.com/Rajeshaligeti/hope-health/internal/infra/logger"
	"github.com/Rajeshaligeti/hope-health/internal/ports"
	"github.com/Rajeshaligeti/hope-health/internal/usecase"
)

func bmiCmd() *cobra.Command {
	var workspace string
	var weight string
	var height string
	var units string
	var note string
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "bmi [weight height]",
		Short: "Compute BMI and its risk category",
		Long: "Compute the body mass index for a weight/height pair.\n\n" +
			"Metric input is kilograms and centimeters; imperial input is pounds and inches.\n" +
			"Inside a workspace the evaluation is saved under history/ unless --no-save is set.",
		Example: "  hope bmi --weight 70 --height 175\n" +
			"  hope bmi 150 65 --units imperial\n" +
			"  hope bmi 82 180 --format json --no-save",
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			if len(args) > 0 {
				weight = args[0]
			}
			if len(args) > 1 {
				height = args[1]
			}

			cfg := domain.DefaultConfig()
			var store ports.HistoryStore

			ws, err := loadWorkspace(workspace)
			switch {
			case err == nil:
				cfg = ws.cfg
				if cfg.History.Enabled && !noSave {
					store = ws.store
				}
			case strings.TrimSpace(workspace) != "" || !domain.IsKind(err, domain.KindNotFound):
				// An explicit workspace or a broken hope.yaml is an error;
				// no workspace at all just means nothing is saved.
				return err
			}

			m, err := domain.ParseMeasurement(weight, height, units, cfg.Defaults.Units)
			if err != nil {
				return err
			}

			uc := usecase.NewEvaluateBMI(store, usecase.WithLogger(logger.L()))
			rec, id, err := uc.Execute(cmd.Context(), m, usecase.EvaluateOptions{
				Save: store != nil,
				Note: note,
			})
			if err != nil && rec.Result.Category == "" {
				return err
			}

			if perr := printEvaluation(os.Stdout, rec, id, format); perr != nil {
				return perr
			}
			return err
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&weight, "weight", "", "Weight in kg (metric) or lbs (imperial)")
	c.Flags().StringVar(&height, "height", "", "Height in cm (metric) or inches (imperial)")
	c.Flags().StringVarP(&units, "units", "u", "", "Unit system: metric|imperial (defaults to workspace setting)")
	c.Flags().StringVar(&note, "note", "", "Free-text note stored with the evaluation")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the evaluation under history/")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")

	return c
}

func printEvaluation(w io.Writer, rec domain.EvaluationRecord, id string, format string) error {
	if format == formatJSON {
		return writeJSON(w, map[string]any{
			"id":     id,
			"record": rec,
		})
	}

	m := rec.Measurement
	res := rec.Result

	fmt.Fprintf(w, "BMI:       %.1f\n", res.BMI)
	fmt.Fprintf(w, "Category:  %s (%s)\n", res.Category.Label(), res.Category.Range())
	fmt.Fprintf(w, "Risk:      %s\n", res.RiskDescription)
	fmt.Fprintf(w, "Input:     %s %s, %s %s (%s)\n",
		formatFloat(m.Weight), m.Units.WeightUnit(),
		formatFloat(m.Height), m.Units.HeightUnit(),
		m.Units,
	)
	if rec.Note != "" {
		fmt.Fprintf(w, "Note:      %s\n", rec.Note)
	}
	if id != "" {
		fmt.Fprintf(w, "Saved:     %s\n", id)
	}
	return nil
}
