package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kosmi-edu/kosmi/internal/chat"
	engine "github.com/kosmi-edu/kosmi/internal/lesson"
	"github.com/kosmi-edu/kosmi/internal/ui/components"
	"github.com/kosmi-edu/kosmi/internal/ui/theme"
)

// stepsBeforeSummary is the number of steps shown in the step bar.
const stepsBeforeSummary = 6

// maxTranscriptLines bounds the chat history drawn on screen.
const maxTranscriptLines = 12

func (s *LessonScreen) View(width, height int) string {
	if s.errMsg != "" {
		return center(width, height, theme.Warning.Render(s.errMsg))
	}
	if s.engine == nil {
		return center(width, height, theme.Hint.Render("Les laden..."))
	}

	inner := min(width-4, 90)
	st := s.engine.State()

	var body string
	switch st := st.(type) {
	case engine.Intro:
		body = s.renderIntro(st, inner)
	case engine.Core:
		body = renderSection(st.Title, st.Section.Content, st.Section.ImageCredit, inner, theme.Card)
	case engine.Chat:
		body = s.renderChat(st, inner)
	case engine.DepthPrompt:
		body = renderDepthPrompt(st, inner)
	case engine.Depth:
		body = renderSection("Verdieping", st.Section.Content, st.Section.ImageCredit, inner, theme.DepthCard)
	case engine.Reflection:
		body = s.renderReflection(st, inner)
	case engine.Completed:
		body = renderCompleted(st, inner)
	}

	var b strings.Builder
	if step := st.Step(); step != engine.StepCompleted {
		bar := components.StepBar{Current: int(step) + 1, Total: stepsBeforeSummary, Width: inner}
		b.WriteString(bar.View())
		b.WriteString("\n\n")
	}
	b.WriteString(body)
	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Warning.Render(s.notice))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(b.String())
}

func center(width, height int, s string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(s)
}

func (s *LessonScreen) renderIntro(st engine.Intro, width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render(st.Title))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(width).Render(st.Text))
	if st.CanListen {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Druk op Ctrl+L om het voor te laten lezen."))
	}
	return b.String()
}

func renderSection(title, src, credit string, width int, card lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render(title))
	b.WriteString("\n\n")
	text := PlainText(src)
	if credit != "" {
		text += "\n\n" + theme.Hint.Render("Afbeelding: "+credit)
	}
	b.WriteString(card.Width(width).Render(text))
	return b.String()
}

func (s *LessonScreen) renderChat(st engine.Chat, width int) string {
	if !st.Enabled() {
		return theme.Hint.Render("Bij deze les hoort geen gesprek. Druk op Enter om verder te gaan.")
	}

	name := st.Character.Name
	var lines []string
	for _, turn := range st.Transcript {
		who := theme.StudentName.Render("Jij")
		if turn.Role != chat.RoleUser {
			who = theme.CharacterName.Render(name)
		}
		lines = append(lines, theme.Body.Width(width).Render(who+": "+turn.Content))
	}
	if st.Pending {
		lines = append(lines, theme.Hint.Render(name+" denkt na..."))
	}
	if len(lines) > maxTranscriptLines {
		lines = lines[len(lines)-maxTranscriptLines:]
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Praat met " + name))
	b.WriteString("\n\n")
	if len(lines) == 0 {
		b.WriteString(theme.Hint.Render("Stel " + name + " een vraag over de les, of druk op Enter om verder te gaan."))
	} else {
		b.WriteString(strings.Join(lines, "\n"))
	}
	b.WriteString("\n\n")
	b.WriteString("> " + s.chatInput.View())
	if s.recording {
		b.WriteString("  " + theme.Warning.Render("● opname"))
	}
	return b.String()
}

func renderDepthPrompt(st engine.DepthPrompt, width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Wil je nog meer weten?"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).Render(
		fmt.Sprintf("Lees de verdieping en verdien %s extra!", theme.Points.Render(fmt.Sprintf("%d punten", st.Bonus)))))
	b.WriteString("\n\n")
	row := components.ButtonRow(
		components.Button{Key: "J", Label: "Ja, meer!", Active: true},
		components.Button{Key: "N", Label: "Nee, door"},
	)
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(row))
	return b.String()
}

func (s *LessonScreen) renderReflection(st engine.Reflection, width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Even nadenken"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(width).Render(st.Question))
	b.WriteString("\n\n")
	b.WriteString("> " + s.reflection.View())
	if s.recording {
		b.WriteString("  " + theme.Warning.Render("● opname"))
	}
	if st.Saving {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Opslaan..."))
	}
	return b.String()
}

func renderCompleted(st engine.Completed, width int) string {
	var b strings.Builder
	if st.Revisit {
		b.WriteString(theme.Title.Width(width).Render("Deze les heb je al gedaan!"))
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Width(width).Render("Je hebt in totaal " + theme.Points.Render(fmt.Sprintf("%d punten", st.Total)) + "."))
		return b.String()
	}
	b.WriteString(theme.Title.Width(width).Render("Goed gedaan!"))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Je verdiende " + theme.Points.Render(fmt.Sprintf("%d punten", st.VisitPoints)) + " in deze les."))
	if st.DepthAccessed {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Width(width).Render("Inclusief de bonus voor de verdieping."))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Totaal: " + theme.Points.Render(fmt.Sprintf("%d punten", st.Total))))
	return b.String()
}
