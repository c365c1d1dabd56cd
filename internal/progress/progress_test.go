package progress

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/store"
)

type fakeRepo struct {
	rows   map[string]store.ProgressRecord
	total  int
	last   store.CompletionData
	events int
}

func (f *fakeRepo) Get(_ context.Context, _ uuid.UUID, lessonID string) (*store.ProgressRecord, error) {
	r, ok := f.rows[lessonID]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeRepo) ForStudent(_ context.Context, _ uuid.UUID, ids []string) (map[string]store.ProgressRecord, error) {
	out := map[string]store.ProgressRecord{}
	for _, id := range ids {
		if r, ok := f.rows[id]; ok {
			out[id] = r
		}
	}
	return out, nil
}

func (f *fakeRepo) Complete(_ context.Context, data store.CompletionData) (*store.CompletionResult, error) {
	f.last = data
	prev, existed := f.rows[data.LessonID]
	first := !existed || !prev.Completed
	rec := store.ProgressRecord{
		StudentID:        data.StudentID,
		LessonID:         data.LessonID,
		Completed:        true,
		DepthAccessed:    data.DepthAccessed,
		ReflectionAnswer: data.ReflectionAnswer,
	}
	f.rows[data.LessonID] = rec
	res := &store.CompletionResult{Progress: rec, FirstCompletion: first}
	if first && data.CompletionPoints > 0 {
		f.total += data.CompletionPoints
		f.events++
		res.PointsAwarded = data.CompletionPoints
	}
	res.PointsTotal = f.total
	return res, nil
}

type lessonSource struct {
	content.Source
}

func (lessonSource) Lesson(_ context.Context, id string) (*content.Lesson, error) {
	if id != "planeten" {
		return nil, content.ErrNotFound
	}
	return &content.Lesson{ID: id, Variants: []content.Variant{
		{TargetGrade: 5, PointsBase: 120, PointsDepthBonus: 60},
		{TargetGrade: 7, PointsBase: 200, PointsDepthBonus: 80},
	}}, nil
}

func newTestService() (*Service, *fakeRepo) {
	repo := &fakeRepo{rows: map[string]store.ProgressRecord{}}
	return NewService(repo, lessonSource{}, nil), repo
}

func TestCompleteUsesVariantBasePoints(t *testing.T) {
	svc, repo := newTestService()
	s := store.Profile{ID: uuid.New(), Role: store.RoleStudent, Grade: 7}

	res, err := svc.Complete(context.Background(), s, Completion{
		LessonID:         "planeten",
		ReflectionAnswer: "  Mars is rood door roest.  ",
		DepthAccessed:    true,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if repo.last.CompletionPoints != 200 {
		t.Errorf("completion points = %d, want 200", repo.last.CompletionPoints)
	}
	if repo.last.ReflectionAnswer != "Mars is rood door roest." {
		t.Errorf("reflection not trimmed: %q", repo.last.ReflectionAnswer)
	}
	if !res.FirstCompletion || res.PointsAwarded != 200 {
		t.Errorf("result = %+v", res)
	}
}

func TestCompleteTwiceAwardsOnce(t *testing.T) {
	svc, repo := newTestService()
	s := store.Profile{ID: uuid.New(), Role: store.RoleStudent, Grade: 5}

	for i := 0; i < 2; i++ {
		if _, err := svc.Complete(context.Background(), s, Completion{LessonID: "planeten"}); err != nil {
			t.Fatalf("Complete #%d: %v", i+1, err)
		}
	}
	if repo.events != 1 || repo.total != 120 {
		t.Errorf("events = %d, total = %d; want 1, 120", repo.events, repo.total)
	}
}

func TestCompleteRejects(t *testing.T) {
	s := store.Profile{ID: uuid.New(), Role: store.RoleStudent, Grade: 5}
	tests := []struct {
		name string
		c    Completion
		want error
	}{
		{"unknown lesson", Completion{LessonID: "oceanen"}, content.ErrNotFound},
		{"long reflection", Completion{LessonID: "planeten", ReflectionAnswer: strings.Repeat("a", MaxReflectionLength+1)}, ErrReflectionTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			_, err := svc.Complete(context.Background(), s, tt.c)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if len(repo.rows) != 0 {
				t.Error("rejected completion wrote a row")
			}
		})
	}

	svc, _ := newTestService()
	if _, err := svc.Complete(context.Background(), s, Completion{}); !errors.Is(err, ErrLessonRequired) {
		t.Errorf("err = %v, want ErrLessonRequired", err)
	}
}

func TestCompleted(t *testing.T) {
	svc, repo := newTestService()
	s := store.Profile{ID: uuid.New(), Grade: 5}
	repo.rows["planeten"] = store.ProgressRecord{LessonID: "planeten", Completed: true}
	repo.rows["manen"] = store.ProgressRecord{LessonID: "manen", DepthAccessed: true}

	done, err := svc.Completed(context.Background(), s, []string{"planeten", "manen", "sterren"})
	if err != nil {
		t.Fatalf("Completed: %v", err)
	}
	if !done["planeten"] || done["manen"] || done["sterren"] {
		t.Errorf("completed = %v", done)
	}
}
