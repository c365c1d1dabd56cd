package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kosmi-edu/kosmi/ent"
	"github.com/kosmi-edu/kosmi/ent/lessonprogress"
)

type progressRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *progressRepo) Get(ctx context.Context, studentID uuid.UUID, lessonID string) (*ProgressRecord, error) {
	p, err := r.client.LessonProgress.Query().
		Where(lessonprogress.StudentID(studentID), lessonprogress.LessonID(lessonID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	rec := toProgressRecord(p)
	return &rec, nil
}

func (r *progressRepo) ForStudent(ctx context.Context, studentID uuid.UUID, lessonIDs []string) (map[string]ProgressRecord, error) {
	query := r.client.LessonProgress.Query().
		Where(lessonprogress.StudentID(studentID))
	if len(lessonIDs) > 0 {
		query = query.Where(lessonprogress.LessonIDIn(lessonIDs...))
	}
	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	out := make(map[string]ProgressRecord, len(rows))
	for _, p := range rows {
		out[p.LessonID] = toProgressRecord(p)
	}
	return out, nil
}

// errRaceLost signals that a concurrent completion created the row first.
var errRaceLost = errors.New("progress row created concurrently")

func (r *progressRepo) Complete(ctx context.Context, data CompletionData) (*CompletionResult, error) {
	var seqNum int64
	if data.CompletionPoints > 0 {
		var err error
		if seqNum, err = r.seq.Next(ctx); err != nil {
			return nil, fmt.Errorf("next sequence: %w", err)
		}
	}

	res, err := r.complete(ctx, seqNum, data)
	if errors.Is(err, errRaceLost) {
		// The other writer committed; this attempt now takes the update path.
		res, err = r.complete(ctx, seqNum, data)
	}
	return res, err
}

func (r *progressRepo) complete(ctx context.Context, seqNum int64, data CompletionData) (*CompletionResult, error) {
	res := &CompletionResult{}
	now := time.Now()

	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		existing, err := tx.LessonProgress.Query().
			Where(lessonprogress.StudentID(data.StudentID), lessonprogress.LessonID(data.LessonID)).
			Only(ctx)

		var saved *ent.LessonProgress
		switch {
		case ent.IsNotFound(err):
			res.FirstCompletion = true
			saved, err = tx.LessonProgress.Create().
				SetStudentID(data.StudentID).
				SetLessonID(data.LessonID).
				SetCompleted(true).
				SetDepthAccessed(data.DepthAccessed).
				SetReflectionAnswer(data.ReflectionAnswer).
				SetCompletedAt(now).
				Save(ctx)
			if ent.IsConstraintError(err) {
				return errRaceLost
			}
		case err != nil:
			return fmt.Errorf("get progress: %w", err)
		default:
			res.FirstCompletion = !existing.Completed
			saved, err = existing.Update().
				SetCompleted(true).
				SetDepthAccessed(data.DepthAccessed).
				SetReflectionAnswer(data.ReflectionAnswer).
				SetCompletedAt(now).
				Save(ctx)
		}
		if err != nil {
			return fmt.Errorf("save progress: %w", err)
		}
		res.Progress = toProgressRecord(saved)

		if res.FirstCompletion && data.CompletionPoints > 0 {
			_, err := appendPoints(ctx, tx, seqNum, PointsEventData{
				StudentID: data.StudentID,
				LessonID:  data.LessonID,
				EventType: EventTypeLessonCompleted,
				Points:    data.CompletionPoints,
			})
			if err != nil {
				return err
			}
			res.PointsAwarded = data.CompletionPoints
		}

		student, err := tx.Profile.Get(ctx, data.StudentID)
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get student: %w", err)
		}
		res.PointsTotal = student.PointsTotal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func toProgressRecord(p *ent.LessonProgress) ProgressRecord {
	rec := ProgressRecord{
		StudentID:     p.StudentID,
		LessonID:      p.LessonID,
		Completed:     p.Completed,
		DepthAccessed: p.DepthAccessed,
		CompletedAt:   p.CompletedAt,
	}
	if p.ReflectionAnswer != nil {
		rec.ReflectionAnswer = *p.ReflectionAnswer
	}
	return rec
}
