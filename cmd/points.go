package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kosmi-edu/kosmi/internal/points"
	"github.com/kosmi-edu/kosmi/internal/store"
)

var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Inspect and repair a student's points ledger",
}

var pointsHistoryCmd = &cobra.Command{
	Use:   "history <student-id>",
	Short: "List a student's points events, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return withStudent(cmd, args[0], func(svc *points.Service, student store.Profile) error {
			entries, err := svc.History(cmd.Context(), student, limit)
			if err != nil {
				return fmt.Errorf("query ledger: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d punten\n\n", student.Greeting(), student.PointsTotal)
			if len(entries) == 0 {
				fmt.Fprintln(out, "Nog geen punten verdiend.")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%-5d  %s  %s %-14s  %-24s  %+d\n",
					e.Sequence,
					e.AwardedAt.Local().Format("2006-01-02 15:04"),
					e.Type.Icon(), e.Type.DisplayName(),
					e.LessonID,
					e.Points,
				)
			}
			return nil
		})
	},
}

var pointsReconcileCmd = &cobra.Command{
	Use:   "reconcile <student-id>",
	Short: "Recompute the stored total from the ledger",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStudent(cmd, args[0], func(svc *points.Service, student store.Profile) error {
			total, drift, err := svc.Reconcile(cmd.Context(), student)
			if err != nil {
				return fmt.Errorf("reconcile: %w", err)
			}
			out := cmd.OutOrStdout()
			if drift == 0 {
				fmt.Fprintf(out, "%s: %d punten, in sync\n", student.Greeting(), total)
				return nil
			}
			fmt.Fprintf(out, "%s: stored total %d corrected to %d\n", student.Greeting(), student.PointsTotal, total)
			return nil
		})
	},
}

func init() {
	pointsHistoryCmd.Flags().IntP("limit", "n", 20, "Number of events to show")

	pointsCmd.AddCommand(pointsHistoryCmd)
	pointsCmd.AddCommand(pointsReconcileCmd)
}

// withStudent opens the store, loads the student profile and runs fn.
func withStudent(cmd *cobra.Command, rawID string, fn func(*points.Service, store.Profile) error) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid student id %q: %w", rawID, err)
	}
	log, err := cliLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	student, err := s.ProfileRepo().Get(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("load profile %s: %w", id, err)
	}
	if student.Role != store.RoleStudent {
		return fmt.Errorf("profile %s is a %s, not a student", id, student.Role)
	}
	return fn(points.NewService(s.LedgerRepo(), s.ContentRepo(), log), *student)
}
