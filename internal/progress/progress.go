// Package progress records lesson completions.
package progress

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/logger"
	"github.com/kosmi-edu/kosmi/internal/store"
)

// MaxReflectionLength bounds a reflection answer in characters.
const MaxReflectionLength = 2000

var (
	// ErrLessonRequired is returned when a completion names no lesson.
	ErrLessonRequired = errors.New("lessonId is required")
	// ErrReflectionTooLong is returned when a reflection exceeds MaxReflectionLength.
	ErrReflectionTooLong = errors.New("reflection answer too long")
)

// Completion is what a student submits when finishing a lesson.
type Completion struct {
	LessonID         string
	ReflectionAnswer string
	DepthAccessed    bool
}

// Service completes lessons and reads progress.
type Service struct {
	repo    store.ProgressRepo
	lessons content.Source
	log     *logger.Logger
}

// NewService creates a Service.
func NewService(repo store.ProgressRepo, lessons content.Source, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{repo: repo, lessons: lessons, log: log}
}

// Complete upserts the student's record for the lesson. The first completion
// awards the base points of the variant the student plays.
func (s *Service) Complete(ctx context.Context, student store.Profile, c Completion) (*store.CompletionResult, error) {
	if c.LessonID == "" {
		return nil, ErrLessonRequired
	}
	reflection := strings.TrimSpace(c.ReflectionAnswer)
	if utf8.RuneCountInString(reflection) > MaxReflectionLength {
		return nil, ErrReflectionTooLong
	}

	lesson, err := s.lessons.Lesson(ctx, c.LessonID)
	if err != nil {
		return nil, err
	}
	variant, err := content.SelectVariant(*lesson, student.Grade)
	if err != nil {
		return nil, err
	}

	res, err := s.repo.Complete(ctx, store.CompletionData{
		StudentID:        student.ID,
		LessonID:         lesson.ID,
		ReflectionAnswer: reflection,
		DepthAccessed:    c.DepthAccessed,
		CompletionPoints: variant.PointsBase,
	})
	if err != nil {
		return nil, fmt.Errorf("complete lesson: %w", err)
	}

	s.log.Info("lesson completed",
		"student_id", student.ID,
		"lesson_id", lesson.ID,
		"first", res.FirstCompletion,
		"depth_accessed", c.DepthAccessed,
		"points_awarded", res.PointsAwarded,
	)
	return res, nil
}

// Get returns the student's record for a lesson, or nil.
func (s *Service) Get(ctx context.Context, student store.Profile, lessonID string) (*store.ProgressRecord, error) {
	return s.repo.Get(ctx, student.ID, lessonID)
}

// Completed reports which of the lessons the student has completed.
func (s *Service) Completed(ctx context.Context, student store.Profile, lessonIDs []string) (map[string]bool, error) {
	recs, err := s.repo.ForStudent(ctx, student.ID, lessonIDs)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(recs))
	for id, r := range recs {
		if r.Completed {
			out[id] = true
		}
	}
	return out, nil
}
