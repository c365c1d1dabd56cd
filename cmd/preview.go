package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kosmi-edu/kosmi/internal/chat"
	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/llm"
	"github.com/kosmi-edu/kosmi/internal/screens/lesson"
)

var previewCmd = &cobra.Command{
	Use:   "preview <lesson-id>",
	Short: "Print a lesson variant and chat with its companion (no points, no progress)",
	Long: `Render the variant a student in the given groep would see, then talk to
the lesson's first companion from the terminal.

This is an editor tool: nothing is written to the ledger or progress tables
and no token is needed. Pass --no-chat to only print the lesson.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("grade", 5, "Groep of the imagined student (1-8)")
	previewCmd.Flags().String("name", "Sam", "Name the companion addresses")
	previewCmd.Flags().Bool("no-chat", false, "Skip the companion chat")
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	grade, _ := cmd.Flags().GetInt("grade")
	name, _ := cmd.Flags().GetString("name")
	noChat, _ := cmd.Flags().GetBool("no-chat")
	if grade < content.MinGrade || grade > content.MaxGrade {
		return fmt.Errorf("grade must be between %d and %d", content.MinGrade, content.MaxGrade)
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()
	src := s.ContentRepo()

	l, err := src.Lesson(ctx, args[0])
	if err != nil {
		return fmt.Errorf("load lesson %q: %w", args[0], err)
	}
	v, err := content.SelectVariant(*l, grade)
	if err != nil {
		return fmt.Errorf("lesson %q: %w", l.ID, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  (variant groep %d, %d + %d punten)\n\n", l.Title, v.TargetGrade, v.PointsBase, v.PointsDepthBonus)
	printSection(out, "Intro", v.IntroText)
	printSection(out, "Uitleg", v.Core.Content)
	printSection(out, "Verdieping", v.Depth.Content)
	printSection(out, "Reflectie", v.ReflectionQuestion)

	if noChat || len(l.CharacterIDs) == 0 {
		return nil
	}
	characters, err := src.Characters(ctx, l.CharacterIDs)
	if err != nil || len(characters) == 0 {
		return fmt.Errorf("lesson %q has no usable companion", l.ID)
	}
	companion := characters[0]

	// No EventRepo: previews are not audited.
	provider, err := llm.NewProvider(ctx, llm.ConfigFromEnv(), nil, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	svc := chat.New(src, provider, nil)

	fmt.Fprintf(out, "── Chat met %s (lege regel stopt) ──\n", companion.Name)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	var history []chat.Turn
	for {
		fmt.Fprint(out, "\nJij: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return nil
		}
		msg := strings.TrimSpace(scanner.Text())
		if msg == "" {
			return nil
		}
		reply, err := svc.Reply(ctx, chat.Request{
			CharacterID:  companion.ID,
			Message:      msg,
			StudentGrade: grade,
			StudentName:  name,
			History:      history,
		})
		if err != nil {
			fmt.Fprintf(out, "(geen antwoord: %v)\n", err)
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", companion.Name, reply)
		history = append(history,
			chat.Turn{Role: chat.RoleUser, Content: msg},
			chat.Turn{Role: chat.RoleAssistant, Content: reply},
		)
	}
}

func printSection(w io.Writer, title, src string) {
	text := lesson.PlainText(src)
	if text == "" {
		return
	}
	fmt.Fprintf(w, "── %s ──\n%s\n\n", title, text)
}
