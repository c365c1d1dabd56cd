package cmd

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/kosmi-edu/kosmi/internal/config"
	"github.com/kosmi-edu/kosmi/internal/content"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file.yaml>...",
	Short: "Import worlds, topics, courses, lessons and characters from YAML",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		bundles := make([]*content.Bundle, 0, len(args))
		for _, path := range args {
			b, err := content.LoadBundleFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			bundles = append(bundles, b)
		}

		out := cmd.OutOrStdout()
		if dryRun {
			for i, b := range bundles {
				fmt.Fprintf(out, "%s: %s (valid)\n", args[i], bundleSummary(b))
			}
			return nil
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		var lessonIDs, characterIDs []string
		for i, b := range bundles {
			if err := s.ContentRepo().Import(ctx, b); err != nil {
				return fmt.Errorf("import %s: %w", args[i], err)
			}
			fmt.Fprintf(out, "%s: imported %s\n", args[i], bundleSummary(b))
			for _, l := range b.Lessons {
				lessonIDs = append(lessonIDs, l.ID)
			}
			for _, c := range b.Characters {
				characterIDs = append(characterIDs, c.ID)
			}
		}

		// A running server may hold the old documents in Redis.
		if url := config.ServerFromEnv().RedisURL; url != "" {
			opts, err := redis.ParseURL(url)
			if err != nil {
				return fmt.Errorf("parse KOSMI_REDIS_URL: %w", err)
			}
			rdb := redis.NewClient(opts)
			defer rdb.Close()
			cache := content.NewCachedSource(s.ContentRepo(), rdb, 0, nil)
			if err := cache.Invalidate(ctx, lessonIDs, characterIDs); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", err)
			}
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().Bool("dry-run", false, "Validate the files without writing")
}

func bundleSummary(b *content.Bundle) string {
	return fmt.Sprintf("%d worlds, %d topics, %d courses, %d lessons, %d characters",
		len(b.Worlds), len(b.Topics), len(b.Courses), len(b.Lessons), len(b.Characters))
}
