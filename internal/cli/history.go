package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
	"github.com/Rajeshaligeti/hope-health/internal/usecase"
)

func historyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "history",
		Short: "Browse saved BMI evaluations",
	}

	c.AddCommand(historyListCmd(), historyShowCmd(), historySummaryCmd())
	return c
}

func historyListCmd() *cobra.Command {
	var workspace string
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved evaluations, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := usecase.NewListHistory(ws.store).Execute(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printHistoryList(os.Stdout, refs, format)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries (0 = all)")
	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return cmd
}

func historyShowCmd() *cobra.Command {
	var workspace string
	var fields []string
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one saved evaluation",
		Example: "  hope history show 20240115T090000Z_normal\n" +
			"  hope history show 20240115T090000Z_normal --field $.result.category",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			entry, err := usecase.NewShowHistory(ws.store).Execute(cmd.Context(), args[0], fields)
			if err != nil {
				return err
			}
			if err := printHistoryEntry(os.Stdout, entry, format); err != nil {
				return err
			}

			for _, f := range entry.Fields {
				if !f.Found {
					return fmt.Errorf("field %s: %s", f.Expr, f.Message)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringArrayVarP(&fields, "field", "f", nil, "JSONPath to print from the record (repeatable)")
	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return cmd
}

func historySummaryCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize saved evaluations by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			sum, err := usecase.NewSummarizeHistory(ws.store).Execute(cmd.Context())
			if err != nil {
				return err
			}
			printHistorySummary(os.Stdout, sum)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func printHistoryList(w io.Writer, refs []domain.HistoryRef, format string) error {
	if format == formatJSON {
		return writeJSON(w, refs)
	}

	if len(refs) == 0 {
		fmt.Fprintln(w, "(no saved evaluations)")
		return nil
	}

	for _, r := range refs {
		fmt.Fprintf(w, "- %s  %5.1f  %-13s  %s\n",
			r.ID, r.BMI, r.Category.Label(), r.EvaluatedAt.Local().Format(time.DateTime))
	}
	return nil
}

func printHistoryEntry(w io.Writer, entry usecase.HistoryEntry, format string) error {
	if format == formatJSON {
		payload := map[string]any{
			"id":     entry.ID,
			"record": entry.Record,
		}
		if len(entry.Fields) > 0 {
			fields := map[string]any{}
			for _, f := range entry.Fields {
				if f.Found {
					fields[f.Expr] = f.Value
				} else {
					fields[f.Expr] = nil
				}
			}
			payload["fields"] = fields
		}
		return writeJSON(w, payload)
	}

	// --field narrows pretty output to the requested values.
	if len(entry.Fields) > 0 {
		for _, f := range entry.Fields {
			if f.Found {
				fmt.Fprintf(w, "%s = %s\n", f.Expr, f.Value)
			} else {
				fmt.Fprintf(w, "%s: %s\n", f.Expr, f.Message)
			}
		}
		return nil
	}

	fmt.Fprintf(w, "ID:        %s\n", entry.ID)
	fmt.Fprintf(w, "Evaluated: %s\n", entry.Record.EvaluatedAt.Format(time.RFC3339))
	return printEvaluation(w, entry.Record, "", formatPretty)
}

func printHistorySummary(w io.Writer, sum domain.HistorySummary) {
	if sum.Count == 0 {
		fmt.Fprintln(w, "(no saved evaluations)")
		return
	}

	fmt.Fprintf(w, "Evaluations: %d\n", sum.Count)
	fmt.Fprintf(w, "BMI range:   %.1f - %.1f\n", sum.MinBMI, sum.MaxBMI)
	if sum.Latest != nil {
		fmt.Fprintf(w, "Latest:      %.1f %s (%s)\n",
			sum.Latest.Result.BMI,
			sum.Latest.Result.Category.Label(),
			sum.Latest.EvaluatedAt.Local().Format(time.DateOnly),
		)
	}
	fmt.Fprintln(w)
	for _, c := range domain.Categories {
		fmt.Fprintf(w, "  %-13s %d\n", c.Label(), sum.ByCategory[c])
	}
}
