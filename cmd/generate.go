package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kosmi-edu/kosmi/internal/client"
	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/lessongen"
	"github.com/kosmi-edu/kosmi/internal/llm"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Draft lesson variants with the LLM and write them as seed YAML",
	Long: `Draft one variant per groep for a topic and write a bundle holding a single
lesson. Review the file, then import it with ` + "`kosmi seed`" + `.

With --api the server drafts the variants; the token must belong to a
school_admin.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("topic", "", "What the lesson is about (required)")
	generateCmd.Flags().IntSlice("grades", nil, "Groepen to write variants for, e.g. 3,5,7 (required)")
	generateCmd.Flags().String("lesson-id", "", "Id of the drafted lesson (default: derived from the topic)")
	generateCmd.Flags().String("course", "", "Course the lesson belongs to")
	generateCmd.Flags().String("title", "", "Lesson title (default: the topic)")
	generateCmd.Flags().StringP("out", "o", "", "Write YAML to this file instead of stdout")
	generateCmd.Flags().String("api", "", "Draft through this Kosmi server instead of a local LLM provider")
	generateCmd.Flags().String("token", "", "School admin bearer token for --api (overrides KOSMI_TOKEN)")
	_ = generateCmd.MarkFlagRequired("topic")
	_ = generateCmd.MarkFlagRequired("grades")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	grades, _ := cmd.Flags().GetIntSlice("grades")
	lessonID, _ := cmd.Flags().GetString("lesson-id")
	courseID, _ := cmd.Flags().GetString("course")
	title, _ := cmd.Flags().GetString("title")
	outPath, _ := cmd.Flags().GetString("out")

	if lessonID == "" {
		lessonID = slugify(topic)
	}
	if title == "" {
		title = topic
	}

	var variants []content.Variant
	var err error
	if cmd.Flags().Changed("api") {
		variants, err = draftRemote(cmd, topic, grades)
	} else {
		variants, err = draftLocal(cmd, topic, grades)
	}
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()
		w = f
	}
	if err := lessongen.Draft(lessonID, courseID, title, variants).WriteYAML(w); err != nil {
		return err
	}
	if outPath != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d variants to %s\n", len(variants), outPath)
	}
	return nil
}

func draftLocal(cmd *cobra.Command, topic string, grades []int) ([]content.Variant, error) {
	ctx := cmd.Context()
	log, err := cliLogger()
	if err != nil {
		return nil, err
	}
	defer log.Sync()

	s, err := openStore(cmd)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	provider, err := llm.NewProvider(ctx, llm.ConfigFromEnv(), s.EventRepo(), log)
	if err != nil {
		return nil, fmt.Errorf("LLM provider: %w", err)
	}
	gen := lessongen.New(provider, lessongen.DefaultConfig(), log)
	return gen.Generate(ctx, lessongen.Input{Topic: topic, Grades: grades})
}

func draftRemote(cmd *cobra.Command, topic string, grades []int) ([]content.Variant, error) {
	c, err := apiClient(cmd)
	if err != nil {
		return nil, err
	}
	resp, err := c.GenerateLesson(cmd.Context(), topic, grades)
	if errors.Is(err, client.ErrUnauthorized) {
		return nil, fmt.Errorf("token rejected: a school_admin token is required")
	}
	if err != nil {
		return nil, err
	}
	return resp.Variants, nil
}

// slugify lowercases s and joins its letters and digits with hyphens.
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
