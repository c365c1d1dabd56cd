package points

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/store"
)

type fakeLedger struct {
	events []store.PointsEventRecord
	seq    int64
	err    error
}

func (f *fakeLedger) Append(_ context.Context, data store.PointsEventData) (*store.PointsEventRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.seq++
	rec := store.PointsEventRecord{Sequence: f.seq, Timestamp: time.Now(), PointsEventData: data}
	f.events = append(f.events, rec)
	return &rec, nil
}

func (f *fakeLedger) AppendOnce(ctx context.Context, data store.PointsEventData) (*store.PointsEventRecord, bool, error) {
	for _, e := range f.events {
		if e.StudentID == data.StudentID && e.LessonID == data.LessonID && e.EventType == data.EventType {
			return &e, false, nil
		}
	}
	rec, err := f.Append(ctx, data)
	return rec, err == nil, err
}

func (f *fakeLedger) Total(_ context.Context, id uuid.UUID) (int, error) {
	total := 0
	for _, e := range f.events {
		if e.StudentID == id {
			total += e.Points
		}
	}
	return total, nil
}

func (f *fakeLedger) Query(_ context.Context, id uuid.UUID, opts store.QueryOpts) ([]store.PointsEventRecord, error) {
	var out []store.PointsEventRecord
	for i := len(f.events) - 1; i >= 0; i-- {
		if f.events[i].StudentID == id {
			out = append(out, f.events[i])
		}
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeLedger) Reconcile(ctx context.Context, id uuid.UUID) (int, error) {
	return f.Total(ctx, id)
}

type lessonSource struct {
	content.Source
	lessons map[string]content.Lesson
}

func (s lessonSource) Lesson(_ context.Context, id string) (*content.Lesson, error) {
	l, ok := s.lessons[id]
	if !ok {
		return nil, content.ErrNotFound
	}
	return &l, nil
}

func newTestService() (*Service, *fakeLedger) {
	ledger := &fakeLedger{}
	src := lessonSource{lessons: map[string]content.Lesson{
		"insecten": {
			ID: "insecten",
			Variants: []content.Variant{
				{TargetGrade: 3, PointsBase: 100, PointsDepthBonus: 50},
				{TargetGrade: 6, PointsBase: 150, PointsDepthBonus: 75},
			},
		},
		"leeg": {ID: "leeg"},
	}}
	return NewService(ledger, src, nil), ledger
}

func student(grade int) store.Profile {
	return store.Profile{ID: uuid.New(), Role: store.RoleStudent, Name: "Lotte", Grade: grade}
}

func TestAwardDepthBonus(t *testing.T) {
	svc, ledger := newTestService()
	s := student(6)

	res, err := svc.Award(context.Background(), s, Request{LessonID: "insecten", EventType: EventDepthAccessed, Points: 75})
	if err != nil {
		t.Fatalf("Award: %v", err)
	}
	if !res.Created {
		t.Error("first award should be created")
	}
	if res.Entry.Points != 75 || res.Entry.Type != EventDepthAccessed {
		t.Errorf("entry = %+v", res.Entry)
	}
	if len(ledger.events) != 1 {
		t.Fatalf("ledger has %d events, want 1", len(ledger.events))
	}
}

func TestAwardIsIdempotentPerLesson(t *testing.T) {
	svc, ledger := newTestService()
	s := student(3)
	req := Request{LessonID: "insecten", EventType: EventDepthAccessed, Points: 50}

	if _, err := svc.Award(context.Background(), s, req); err != nil {
		t.Fatalf("first Award: %v", err)
	}
	res, err := svc.Award(context.Background(), s, req)
	if err != nil {
		t.Fatalf("second Award: %v", err)
	}
	if res.Created {
		t.Error("repeated award should return the existing entry")
	}
	if len(ledger.events) != 1 {
		t.Errorf("ledger has %d events, want 1", len(ledger.events))
	}
}

func TestAwardRejects(t *testing.T) {
	tests := []struct {
		name  string
		grade int
		req   Request
		want  error
	}{
		{"completion from client", 3, Request{LessonID: "insecten", EventType: EventLessonCompleted, Points: 100}, ErrInvalidEvent},
		{"unknown type", 3, Request{LessonID: "insecten", EventType: "bonus", Points: 50}, ErrInvalidEvent},
		{"missing lesson id", 3, Request{EventType: EventDepthAccessed, Points: 50}, ErrInvalidEvent},
		{"wrong amount", 3, Request{LessonID: "insecten", EventType: EventDepthAccessed, Points: 500}, ErrAmountMismatch},
		{"amount of other grade", 3, Request{LessonID: "insecten", EventType: EventDepthAccessed, Points: 75}, ErrAmountMismatch},
		{"unknown lesson", 3, Request{LessonID: "vulkanen", EventType: EventDepthAccessed, Points: 50}, content.ErrNotFound},
		{"no variants", 3, Request{LessonID: "leeg", EventType: EventDepthAccessed, Points: 50}, content.ErrNoVariants},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ledger := newTestService()
			_, err := svc.Award(context.Background(), student(tt.grade), tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if len(ledger.events) != 0 {
				t.Errorf("rejected award wrote %d events", len(ledger.events))
			}
		})
	}
}

func TestAwardFallsBackToFirstVariant(t *testing.T) {
	svc, _ := newTestService()
	// Grade 8 has no variant, so the grade 3 variant's bonus applies.
	_, err := svc.Award(context.Background(), student(8), Request{LessonID: "insecten", EventType: EventDepthAccessed, Points: 50})
	if err != nil {
		t.Fatalf("Award: %v", err)
	}
}

func TestAwardLedgerFailure(t *testing.T) {
	svc, ledger := newTestService()
	ledger.err = errors.New("database is locked")
	_, err := svc.Award(context.Background(), student(3), Request{LessonID: "insecten", EventType: EventDepthAccessed, Points: 50})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	svc, ledger := newTestService()
	s := student(3)
	ledger.Append(context.Background(), store.PointsEventData{StudentID: s.ID, LessonID: "a", EventType: string(EventLessonCompleted), Points: 100})
	ledger.Append(context.Background(), store.PointsEventData{StudentID: s.ID, LessonID: "b", EventType: string(EventDepthAccessed), Points: 50})
	ledger.Append(context.Background(), store.PointsEventData{StudentID: uuid.New(), LessonID: "c", EventType: string(EventDepthAccessed), Points: 50})

	entries, err := svc.History(context.Background(), s, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].LessonID != "b" || entries[1].LessonID != "a" {
		t.Errorf("order = %s, %s", entries[0].LessonID, entries[1].LessonID)
	}

	total, err := svc.Total(context.Background(), s)
	if err != nil {
		t.Fatalf("Total: %v", err)
	}
	if total != 150 {
		t.Errorf("total = %d, want 150", total)
	}
}

func TestReconcileReportsDrift(t *testing.T) {
	svc, ledger := newTestService()
	s := student(3)
	s.PointsTotal = 180
	ledger.Append(context.Background(), store.PointsEventData{StudentID: s.ID, LessonID: "a", EventType: string(EventLessonCompleted), Points: 150})

	total, drift, err := svc.Reconcile(context.Background(), s)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if total != 150 || drift != 30 {
		t.Errorf("total, drift = %d, %d; want 150, 30", total, drift)
	}
}

func TestEventTypeDisplay(t *testing.T) {
	for _, et := range AllEventTypes() {
		if !et.Valid() {
			t.Errorf("%s not valid", et)
		}
		if et.DisplayName() == string(et) {
			t.Errorf("%s has no display name", et)
		}
		if et.Icon() == "" {
			t.Errorf("%s has no icon", et)
		}
	}
	if EventType("bonus").Valid() {
		t.Error("unknown type reported valid")
	}
}
