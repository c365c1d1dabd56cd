package lessongen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/llm"
)

func variantJSON(intro string, base int) llm.MockResponse {
	raw, _ := json.Marshal(map[string]any{
		"introText":          intro,
		"coreContent":        "<p>Bijen maken honing van nectar.</p>",
		"depthContent":       "<p>Een bijenvolk telt soms 50.000 bijen.</p>",
		"reflectionQuestion": "Waarom zijn bijen belangrijk voor bloemen?",
		"pointsBase":         base,
		"pointsDepthBonus":   0,
	})
	return llm.MockResponse{Content: raw}
}

func TestGenerateOneVariantPerGrade(t *testing.T) {
	mock := llm.NewMockProvider(variantJSON("Zoem zoem!", 100), variantJSON("Bijen zijn bestuivers.", 150))
	g := New(mock, DefaultConfig(), nil)

	variants, err := g.Generate(context.Background(), Input{Topic: "bijen", Grades: []int{2, 7, 2}})
	require.NoError(t, err)
	require.Len(t, variants, 2)

	require.Equal(t, 2, variants[0].TargetGrade)
	require.Equal(t, "Zoem zoem!", variants[0].IntroText)
	require.Equal(t, 7, variants[1].TargetGrade)
	require.Equal(t, 150, variants[1].PointsBase)
	require.Equal(t, content.DefaultPointsDepthBonus, variants[1].PointsDepthBonus)

	require.Equal(t, 2, mock.CallCount())
	require.Equal(t, []string{"lesson-generate", "lesson-generate"}, mock.Purposes)
	require.Equal(t, VariantSchema, mock.Calls[0].Schema)
	require.Contains(t, mock.Calls[0].Messages[0].Content, "groep 2 (leeftijd 6 jaar)")
	require.Contains(t, mock.Calls[1].Messages[0].Content, "kritisch denken")
}

func TestGenerateRejectsInput(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"empty topic", Input{Topic: "  ", Grades: []int{3}}},
		{"no grades", Input{Topic: "bijen"}},
		{"grade zero", Input{Topic: "bijen", Grades: []int{0}}},
		{"grade nine", Input{Topic: "bijen", Grades: []int{4, 9}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider()
			_, err := New(mock, DefaultConfig(), nil).Generate(context.Background(), tt.in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
			if mock.CallCount() != 0 {
				t.Errorf("provider called %d times", mock.CallCount())
			}
		})
	}
}

func TestGenerateFailsOnInvalidOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"introText":"Hoi"}`)})
	_, err := New(mock, DefaultConfig(), nil).Generate(context.Background(), Input{Topic: "bijen", Grades: []int{5}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "groep 5")
}

func TestGenerateStopsOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(variantJSON("Hoi", 100), llm.MockResponse{Err: &llm.ErrRateLimit{}})
	_, err := New(mock, DefaultConfig(), nil).Generate(context.Background(), Input{Topic: "bijen", Grades: []int{3, 4}})
	var rl *llm.ErrRateLimit
	require.ErrorAs(t, err, &rl)
}

func TestLevelGuidance(t *testing.T) {
	tests := []struct {
		grade int
		want  string
	}{
		{1, "heel simpel"},
		{2, "heel simpel"},
		{3, "begin van lezen"},
		{6, "abstracte concepten"},
		{8, "kritisch denken"},
	}
	for _, tt := range tests {
		if got := levelGuidance(tt.grade); !strings.Contains(got, tt.want) {
			t.Errorf("levelGuidance(%d) = %q, want %q", tt.grade, got, tt.want)
		}
	}
}

func TestDraftIsImportable(t *testing.T) {
	mock := llm.NewMockProvider(variantJSON("Hoi", 100))
	variants, err := New(mock, DefaultConfig(), nil).Generate(context.Background(), Input{Topic: "bijen", Grades: []int{4}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Draft("bijen-4", "natuur", "Bijen", variants).WriteYAML(&buf))

	b, err := content.LoadBundle(&buf)
	require.NoError(t, err)
	require.Len(t, b.Lessons, 1)
	require.Equal(t, "Bijen", b.Lessons[0].Title)
	require.Equal(t, 4, b.Lessons[0].Variants[0].TargetGrade)
}
