package content

import (
	"errors"
	"testing"
)

func insectLesson() Lesson {
	return Lesson{
		ID:    "wat-is-een-insect",
		Title: "Wat is een insect?",
		Variants: []Variant{
			{TargetGrade: 3, IntroText: "groep 3", PointsBase: 100, PointsDepthBonus: 50},
			{TargetGrade: 5, IntroText: "groep 5", PointsBase: 100, PointsDepthBonus: 50},
			{TargetGrade: 7, IntroText: "groep 7", PointsBase: 120, PointsDepthBonus: 60},
		},
	}
}

func TestSelectVariantExactMatch(t *testing.T) {
	l := insectLesson()
	for _, grade := range []int{3, 5, 7} {
		v, err := SelectVariant(l, grade)
		if err != nil {
			t.Fatalf("grade %d: unexpected error: %v", grade, err)
		}
		if v.TargetGrade != grade {
			t.Errorf("grade %d: got variant for grade %d", grade, v.TargetGrade)
		}
	}
}

func TestSelectVariantFallsBackToFirst(t *testing.T) {
	l := insectLesson()
	for _, grade := range []int{1, 2, 4, 6, 8} {
		v, err := SelectVariant(l, grade)
		if err != nil {
			t.Fatalf("grade %d: unexpected error: %v", grade, err)
		}
		if v.IntroText != "groep 3" {
			t.Errorf("grade %d: fallback = %q, want first variant", grade, v.IntroText)
		}
	}
}

func TestSelectVariantFirstMeansDefinitionOrder(t *testing.T) {
	l := Lesson{Variants: []Variant{{TargetGrade: 6}, {TargetGrade: 2}}}
	v, err := SelectVariant(l, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.TargetGrade != 6 {
		t.Errorf("fallback grade = %d, want 6", v.TargetGrade)
	}
}

func TestSelectVariantNoVariants(t *testing.T) {
	_, err := SelectVariant(Lesson{ID: "leeg"}, 3)
	if !errors.Is(err, ErrNoVariants) {
		t.Fatalf("expected ErrNoVariants, got %v", err)
	}
}

func TestCourseSuits(t *testing.T) {
	tests := []struct {
		name  string
		c     Course
		grade int
		want  bool
	}{
		{"inside", Course{GradeMin: 3, GradeMax: 5}, 4, true},
		{"lower bound", Course{GradeMin: 3, GradeMax: 5}, 3, true},
		{"below", Course{GradeMin: 3, GradeMax: 5}, 2, false},
		{"above", Course{GradeMin: 3, GradeMax: 5}, 6, false},
		{"open", Course{}, 8, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Suits(tt.grade); got != tt.want {
				t.Errorf("Suits(%d) = %v, want %v", tt.grade, got, tt.want)
			}
		})
	}
}
