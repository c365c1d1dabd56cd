// Package points records point awards in the append-only ledger and reads
// totals back from it.
package points

import (
	"context"
	"errors"
	"fmt"

	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/logger"
	"github.com/kosmi-edu/kosmi/internal/store"
)

var (
	// ErrInvalidEvent is returned for event types clients may not record.
	ErrInvalidEvent = errors.New("invalid points event")
	// ErrAmountMismatch is returned when the claimed amount differs from
	// what the lesson variant awards.
	ErrAmountMismatch = errors.New("points amount does not match lesson")
)

// Request is a client's claim for points.
type Request struct {
	LessonID  string
	EventType EventType
	Points    int
}

// Result reports an award. Created is false when the award had already
// been recorded and the existing entry was returned.
type Result struct {
	Entry   Entry
	Created bool
}

// Service validates and records awards.
type Service struct {
	ledger  store.LedgerRepo
	lessons content.Source
	log     *logger.Logger
}

// NewService creates a Service.
func NewService(ledger store.LedgerRepo, lessons content.Source, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{ledger: ledger, lessons: lessons, log: log}
}

// Award validates a client claim against the lesson and appends it. Only
// depth_accessed may be recorded this way; completion points are awarded by
// the completion step. The amount must equal the depth bonus of the variant
// the student plays, and each lesson's bonus is awarded once per student,
// so a retried request does not double the award.
func (s *Service) Award(ctx context.Context, student store.Profile, req Request) (*Result, error) {
	if req.EventType != EventDepthAccessed {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEvent, req.EventType)
	}
	if req.LessonID == "" {
		return nil, fmt.Errorf("%w: lessonId is required", ErrInvalidEvent)
	}

	lesson, err := s.lessons.Lesson(ctx, req.LessonID)
	if err != nil {
		return nil, err
	}
	variant, err := content.SelectVariant(*lesson, student.Grade)
	if err != nil {
		return nil, err
	}
	if req.Points != variant.PointsDepthBonus {
		return nil, fmt.Errorf("%w: got %d, variant awards %d", ErrAmountMismatch, req.Points, variant.PointsDepthBonus)
	}

	rec, created, err := s.ledger.AppendOnce(ctx, store.PointsEventData{
		StudentID: student.ID,
		LessonID:  req.LessonID,
		EventType: string(req.EventType),
		Points:    req.Points,
	})
	if err != nil {
		return nil, fmt.Errorf("record points: %w", err)
	}

	s.log.Info("points recorded",
		"student_id", student.ID,
		"lesson_id", req.LessonID,
		"event_type", req.EventType,
		"points", req.Points,
		"created", created,
	)
	return &Result{Entry: toEntry(*rec), Created: created}, nil
}

// Total recomputes the student's total from the ledger.
func (s *Service) Total(ctx context.Context, student store.Profile) (int, error) {
	return s.ledger.Total(ctx, student.ID)
}

// History lists the student's awards, newest first.
func (s *Service) History(ctx context.Context, student store.Profile, limit int) ([]Entry, error) {
	recs, err := s.ledger.Query(ctx, student.ID, store.QueryOpts{Limit: limit})
	if err != nil {
		return nil, err
	}
	out := make([]Entry, len(recs))
	for i, r := range recs {
		out[i] = toEntry(r)
	}
	return out, nil
}

// Reconcile rewrites the denormalized total from the ledger. It reports the
// drift that was corrected.
func (s *Service) Reconcile(ctx context.Context, student store.Profile) (total, drift int, err error) {
	total, err = s.ledger.Reconcile(ctx, student.ID)
	if err != nil {
		return 0, 0, err
	}
	drift = student.PointsTotal - total
	if drift != 0 {
		s.log.Warn("points total drifted", "student_id", student.ID, "stored", student.PointsTotal, "ledger", total)
	}
	return total, drift, nil
}

func toEntry(r store.PointsEventRecord) Entry {
	return Entry{
		Sequence:  r.Sequence,
		LessonID:  r.LessonID,
		Type:      EventType(r.EventType),
		Points:    r.Points,
		AwardedAt: r.Timestamp,
	}
}
