package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
	"github.com/Rajeshaligeti/hope-health/internal/usecase"
)

func remindersCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "reminders",
		Short: "Look up reminders from a workspace calendar",
	}

	c.AddCommand(remindersDayCmd(), remindersUpcomingCmd(), remindersListCmd(), remindersValidateCmd())
	return c
}

func remindersDayCmd() *cobra.Command {
	var workspace string
	var calendar string
	var date string

	cmd := &cobra.Command{
		Use:     "day",
		Aliases: []string{"today"},
		Short:   "Show the reminders of one day (today by default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			rs, err := usecase.NewRemindersForDay(ws.reminders).Execute(cmd.Context(), resolveCalendarArg(ws, calendar), day)
			if err != nil {
				return err
			}
			printDay(os.Stdout, domain.DateKey(day), rs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVarP(&calendar, "calendar", "c", "", "Calendar name or path (defaults to workspace setting)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Day to show as YYYY-MM-DD (default today)")
	return cmd
}

func remindersUpcomingCmd() *cobra.Command {
	var workspace string
	var calendar string
	var from string
	var limit int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List pending reminders on or after a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := parseDateFlag(from)
			if err != nil {
				return err
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			rs, err := usecase.NewUpcomingReminders(ws.reminders).Execute(cmd.Context(), resolveCalendarArg(ws, calendar), day, limit)
			if err != nil {
				return err
			}
			printUpcoming(os.Stdout, rs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVarP(&calendar, "calendar", "c", "", "Calendar name or path (defaults to workspace setting)")
	cmd.Flags().StringVar(&from, "from", "", "First day as YYYY-MM-DD (default today)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of reminders (0 = all)")
	return cmd
}

func remindersListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reminder calendars",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := usecase.NewListCalendars(ws.calendars).Execute(cmd.Context(), ws.root)
			if err != nil {
				return err
			}

			if len(refs) == 0 {
				fmt.Println("(no calendars found)")
				return nil
			}

			fmt.Printf("Workspace: %s\n", ws.root)
			fmt.Printf("Default:   %s\n\n", ws.cfg.Defaults.Calendar)

			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Printf("- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func remindersValidateCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check every reminder calendar for dates, kinds and statuses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			checks, err := usecase.NewValidateCalendars(ws.calendars, ws.reminders).Execute(cmd.Context(), ws.root)
			if err != nil {
				return err
			}

			for _, c := range checks {
				rel, _ := filepath.Rel(ws.root, c.Ref.Path)
				if c.Err != nil {
					fmt.Printf("FAIL %s: %v\n", rel, c.Err)
					continue
				}
				fmt.Printf("OK   %s (%d days, %d reminders)\n", rel, c.Days, c.Count)
			}

			if n := usecase.Failed(checks); n > 0 {
				return fmt.Errorf("%d invalid calendar(s)", n)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func parseDateFlag(s string) (time.Time, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(domain.DateLayout, in, time.Local)
	if err != nil {
		return time.Time{}, &domain.InvalidInputError{Field: "date", Reason: fmt.Sprintf("%q is not YYYY-MM-DD", in)}
	}
	return t, nil
}

func printDay(w io.Writer, day string, rs []domain.Reminder) {
	fmt.Fprintf(w, "%s\n", day)
	if len(rs) == 0 {
		fmt.Fprintln(w, "  (no reminders)")
		return
	}
	for _, r := range rs {
		printReminder(w, r)
	}
}

func printUpcoming(w io.Writer, rs []domain.DatedReminder) {
	if len(rs) == 0 {
		fmt.Fprintln(w, "(nothing pending)")
		return
	}

	last := ""
	for _, r := range rs {
		if r.Date != last {
			fmt.Fprintf(w, "%s\n", r.Date)
			last = r.Date
		}
		printReminder(w, r.Reminder)
	}
}

func printReminder(w io.Writer, r domain.Reminder) {
	fmt.Fprintf(w, "  %-9s %-12s %-11s %s\n", r.Time, r.Kind, "["+string(r.Status)+"]", r.Title)
	if r.Description != "" {
		fmt.Fprintf(w, "            %s\n", r.Description)
	}
}
