package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the published content tree (optionally filtered by grade)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		grade, _ := cmd.Flags().GetInt("grade")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		src := s.ContentRepo()

		worlds, err := src.PublishedWorlds(ctx)
		if err != nil {
			return fmt.Errorf("list worlds: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(worlds) == 0 {
			fmt.Fprintln(out, "No published worlds. Import content with `kosmi seed`.")
			return nil
		}

		for _, w := range worlds {
			fmt.Fprintf(out, "%s  (%s)\n", w.Title, w.Slug)
			topics, err := src.Topics(ctx, w.ID)
			if err != nil {
				return fmt.Errorf("list topics of %s: %w", w.ID, err)
			}
			for _, t := range topics {
				fmt.Fprintf(out, "  %s\n", t.Title)
				courses, err := src.Courses(ctx, t.ID)
				if err != nil {
					return fmt.Errorf("list courses of %s: %w", t.ID, err)
				}
				for _, c := range courses {
					if grade != 0 && !c.Suits(grade) {
						continue
					}
					fmt.Fprintf(out, "    %s  [groep %s]\n", c.Title, gradeRange(c.GradeMin, c.GradeMax))
					lessons, err := src.Lessons(ctx, c.ID)
					if err != nil {
						return fmt.Errorf("list lessons of %s: %w", c.ID, err)
					}
					for _, l := range lessons {
						full, err := src.Lesson(ctx, l.ID)
						if err != nil {
							return fmt.Errorf("load lesson %s: %w", l.ID, err)
						}
						grades := make([]string, 0, len(full.Variants))
						for _, v := range full.Variants {
							grades = append(grades, fmt.Sprint(v.TargetGrade))
						}
						fmt.Fprintf(out, "      %-24s %s  (varianten: %s)\n", l.ID, l.Title, strings.Join(grades, ","))
					}
				}
			}
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().Int("grade", 0, "Only show courses for this groep (1-8)")
}

func gradeRange(lo, hi int) string {
	switch {
	case lo == 0 && hi == 0:
		return "alle"
	case hi == 0:
		return fmt.Sprintf("%d+", lo)
	case lo == hi:
		return fmt.Sprint(lo)
	default:
		return fmt.Sprintf("%d-%d", lo, hi)
	}
}
