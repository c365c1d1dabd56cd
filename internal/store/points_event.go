package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kosmi-edu/kosmi/ent"
	"github.com/kosmi-edu/kosmi/ent/pointsevent"
)

// ledgerRepo implements LedgerRepo. It plays the part of the database
// trigger that keeps profiles.points_total equal to the sum of the log.
type ledgerRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *ledgerRepo) Append(ctx context.Context, data PointsEventData) (*PointsEventRecord, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("next sequence: %w", err)
	}

	var saved *ent.PointsEvent
	err = withTx(ctx, r.client, func(tx *ent.Tx) error {
		var err error
		saved, err = appendPoints(ctx, tx, seqNum, data)
		return err
	})
	if err != nil {
		return nil, err
	}
	rec := toPointsRecord(saved)
	return &rec, nil
}

func (r *ledgerRepo) AppendOnce(ctx context.Context, data PointsEventData) (*PointsEventRecord, bool, error) {
	existing, err := r.find(ctx, r.client.PointsEvent, data)
	if err != nil || existing != nil {
		return existing, false, err
	}
	return r.insertOnce(ctx, data)
}

// insertOnce appends data. The (student, lesson, type) unique index rejects
// a second insert; losing that race returns the winner's event.
func (r *ledgerRepo) insertOnce(ctx context.Context, data PointsEventData) (*PointsEventRecord, bool, error) {
	rec, err := r.Append(ctx, data)
	if ent.IsConstraintError(err) {
		existing, ferr := r.find(ctx, r.client.PointsEvent, data)
		if ferr != nil {
			return nil, false, ferr
		}
		if existing != nil {
			return existing, false, nil
		}
	}
	if err != nil {
		return nil, false, err
	}
	return rec, true, nil
}

func (r *ledgerRepo) find(ctx context.Context, c *ent.PointsEventClient, data PointsEventData) (*PointsEventRecord, error) {
	e, err := c.Query().
		Where(
			pointsevent.StudentID(data.StudentID),
			pointsevent.LessonID(data.LessonID),
			pointsevent.EventType(data.EventType),
		).
		Order(ent.Asc(pointsevent.FieldSequence)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find points event: %w", err)
	}
	rec := toPointsRecord(e)
	return &rec, nil
}

func (r *ledgerRepo) Total(ctx context.Context, studentID uuid.UUID) (int, error) {
	return sumPoints(ctx, r.client.PointsEvent, studentID)
}

func (r *ledgerRepo) Query(ctx context.Context, studentID uuid.UUID, opts QueryOpts) ([]PointsEventRecord, error) {
	query := r.client.PointsEvent.Query().
		Where(pointsevent.StudentID(studentID)).
		Order(ent.Desc(pointsevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(pointsevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(pointsevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(pointsevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(pointsevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query points events: %w", err)
	}
	records := make([]PointsEventRecord, len(events))
	for i, e := range events {
		records[i] = toPointsRecord(e)
	}
	return records, nil
}

func (r *ledgerRepo) Reconcile(ctx context.Context, studentID uuid.UUID) (int, error) {
	var total int
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		var err error
		total, err = sumPoints(ctx, tx.PointsEvent, studentID)
		if err != nil {
			return err
		}
		err = tx.Profile.UpdateOneID(studentID).SetPointsTotal(total).Exec(ctx)
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("store points total: %w", err)
		}
		return nil
	})
	return total, err
}

// appendPoints writes one event and bumps the student's total.
func appendPoints(ctx context.Context, tx *ent.Tx, seqNum int64, data PointsEventData) (*ent.PointsEvent, error) {
	if data.Points < 0 {
		return nil, fmt.Errorf("append points: negative amount %d", data.Points)
	}
	err := tx.Profile.UpdateOneID(data.StudentID).AddPointsTotal(data.Points).Exec(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update points total: %w", err)
	}

	saved, err := tx.PointsEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetLessonID(data.LessonID).
		SetEventType(data.EventType).
		SetPointsAwarded(data.Points).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save points event: %w", err)
	}
	return saved, nil
}

func sumPoints(ctx context.Context, c *ent.PointsEventClient, studentID uuid.UUID) (int, error) {
	amounts, err := c.Query().
		Where(pointsevent.StudentID(studentID)).
		Select(pointsevent.FieldPointsAwarded).
		Ints(ctx)
	if err != nil {
		return 0, fmt.Errorf("sum points: %w", err)
	}
	total := 0
	for _, a := range amounts {
		total += a
	}
	return total, nil
}

func toPointsRecord(e *ent.PointsEvent) PointsEventRecord {
	return PointsEventRecord{
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		PointsEventData: PointsEventData{
			StudentID: e.StudentID,
			LessonID:  e.LessonID,
			EventType: e.EventType,
			Points:    e.PointsAwarded,
		},
	}
}
