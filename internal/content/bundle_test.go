package content

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const seedYAML = `
worlds:
  - id: natuur
    title: Natuur
    published: true
topics:
  - id: dieren
    world: natuur
    title: Dieren
    published: true
courses:
  - id: kleine-beestjes
    topic: dieren
    title: Kleine beestjes
    grade_min: 1
    grade_max: 8
    published: true
characters:
  - id: professor-kever
    name: Professor Kever
    knowledge_scope: insecten en kleine dieren
    off_topic_redirect: Daar weet ik niet zoveel van. Zullen we het over insecten hebben?
    voice_id: voice-kever
    system_prompt: Je bent Professor Kever, een vriendelijke kever.
lessons:
  - id: wat-is-een-insect
    course: kleine-beestjes
    title: Wat is een insect?
    order: 1
    characters: [professor-kever]
    variants:
      - grade: 3
        intro: Insecten hebben zes poten.
        core:
          content: <p>Een insect heeft drie delen.</p>
        reflection_question: Welk insect vind jij het mooist?
      - grade: 5
        intro: Insecten zijn overal.
        points_base: 120
        points_depth_bonus: 40
`

func TestLoadBundle(t *testing.T) {
	b, err := LoadBundle(strings.NewReader(seedYAML))
	require.NoError(t, err)

	require.Len(t, b.Lessons, 1)
	l := b.Lessons[0]
	require.Equal(t, []string{"professor-kever"}, l.CharacterIDs)
	require.Len(t, l.Variants, 2)

	// Unset points take the defaults.
	require.Equal(t, DefaultPointsBase, l.Variants[0].PointsBase)
	require.Equal(t, DefaultPointsDepthBonus, l.Variants[0].PointsDepthBonus)
	require.Equal(t, 120, l.Variants[1].PointsBase)

	// Slugs default to ids.
	require.Equal(t, "natuur", b.Worlds[0].Slug)
	require.Equal(t, "Je bent Professor Kever, een vriendelijke kever.", b.Characters[0].SystemPrompt)
}

func TestLoadBundleEmpty(t *testing.T) {
	b, err := LoadBundle(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, b.Lessons)
}

func TestLoadBundleRejectsUnknownFields(t *testing.T) {
	_, err := LoadBundle(strings.NewReader("worlds:\n  - id: x\n    titel: typo\n"))
	require.Error(t, err)
}

func TestValidateReportsProblems(t *testing.T) {
	b := &Bundle{
		Courses: []Course{{ID: "c", Title: "C"}},
		Lessons: []Lesson{{
			ID:       "l",
			Title:    "L",
			CourseID: "missing",
			Variants: []Variant{{TargetGrade: 3}, {TargetGrade: 3}, {TargetGrade: 9}},
		}},
	}
	err := b.Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Problems, 3)
	require.Contains(t, verr.Problems[0], "unknown course")
	require.Contains(t, verr.Problems[1], "duplicate variant for grade 3")
	require.Contains(t, verr.Problems[2], "grade 9")
}

func TestWriteYAMLRoundTrips(t *testing.T) {
	b, err := LoadBundle(strings.NewReader(seedYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, b.WriteYAML(&buf))

	again, err := LoadBundle(&buf)
	require.NoError(t, err)
	require.Equal(t, b, again)
}
