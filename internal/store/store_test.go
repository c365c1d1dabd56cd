package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/kosmi-edu/kosmi/ent"
	"github.com/kosmi-edu/kosmi/internal/content"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	// One in-memory database per test.
	s, err := Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testBundle() *content.Bundle {
	b := &content.Bundle{
		Worlds: []content.World{
			{ID: "natuur", Slug: "natuur", Title: "Natuur", Published: true, Position: 1},
			{ID: "ruimte", Slug: "ruimte", Title: "Ruimte", Published: false},
		},
		Topics: []content.Topic{
			{ID: "dieren", WorldID: "natuur", Title: "Dieren", Published: true},
		},
		Courses: []content.Course{
			{ID: "beestjes", TopicID: "dieren", Title: "Kleine beestjes", GradeMin: 1, GradeMax: 8, Published: true},
		},
		Characters: []content.Character{
			{ID: "kever", Name: "Professor Kever", VoiceID: "voice-kever", SystemPrompt: "Je bent Professor Kever."},
			{ID: "uil", Name: "Uil Olivia"},
		},
		Lessons: []content.Lesson{
			{
				ID:           "insect",
				CourseID:     "beestjes",
				Title:        "Wat is een insect?",
				Position:     1,
				CharacterIDs: []string{"kever"},
				Variants: []content.Variant{
					{TargetGrade: 5, IntroText: "Insecten zijn overal.", PointsBase: 120, PointsDepthBonus: 40},
					{TargetGrade: 3, IntroText: "Insecten hebben zes poten.", ReflectionQuestion: "Welk insect vind jij het mooist?"},
				},
			},
		},
	}
	b.Normalize()
	return b
}

func newStudent(t *testing.T, s *Store) *Profile {
	t.Helper()
	p, err := s.ProfileRepo().Create(context.Background(), Profile{
		Role:  RoleStudent,
		Name:  "Sanne",
		Grade: 3,
	})
	if err != nil {
		t.Fatalf("create student: %v", err)
	}
	return p
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
	if s.Dialect() != "sqlite3" {
		t.Errorf("dialect = %q, want sqlite3", s.Dialect())
	}
	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("ping: %v", err)
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode reports "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Re-creating the counter must not reset it.
	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"profiles", "points_events", "lesson_progresses", "lesson_variants", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestContentImportAndRead(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContentRepo()
	ctx := context.Background()

	if err := repo.Import(ctx, testBundle()); err != nil {
		t.Fatalf("import: %v", err)
	}

	worlds, err := repo.PublishedWorlds(ctx)
	if err != nil {
		t.Fatalf("published worlds: %v", err)
	}
	if len(worlds) != 1 || worlds[0].ID != "natuur" {
		t.Fatalf("worlds = %+v, want only natuur", worlds)
	}

	if _, err := repo.WorldBySlug(ctx, "ruimte"); !errors.Is(err, content.ErrNotFound) {
		t.Errorf("unpublished world: err = %v, want ErrNotFound", err)
	}

	topics, err := repo.Topics(ctx, "natuur")
	if err != nil || len(topics) != 1 {
		t.Fatalf("topics = %+v, %v", topics, err)
	}
	courses, err := repo.Courses(ctx, "dieren")
	if err != nil || len(courses) != 1 {
		t.Fatalf("courses = %+v, %v", courses, err)
	}
	lessons, err := repo.Lessons(ctx, "beestjes")
	if err != nil || len(lessons) != 1 {
		t.Fatalf("lessons = %+v, %v", lessons, err)
	}

	l, err := repo.Lesson(ctx, "insect")
	if err != nil {
		t.Fatalf("lesson: %v", err)
	}
	if len(l.Variants) != 2 {
		t.Fatalf("variants = %d, want 2", len(l.Variants))
	}
	// Definition order survives the round trip.
	if l.Variants[0].TargetGrade != 5 || l.Variants[1].TargetGrade != 3 {
		t.Errorf("variant order = %d,%d, want 5,3", l.Variants[0].TargetGrade, l.Variants[1].TargetGrade)
	}
	if l.Variants[1].PointsBase != content.DefaultPointsBase {
		t.Errorf("default points base = %d, want %d", l.Variants[1].PointsBase, content.DefaultPointsBase)
	}
	if len(l.CharacterIDs) != 1 || l.CharacterIDs[0] != "kever" {
		t.Errorf("characters = %v", l.CharacterIDs)
	}

	c, err := repo.Character(ctx, "kever")
	if err != nil {
		t.Fatalf("character: %v", err)
	}
	if c.SystemPrompt == "" {
		t.Error("system prompt not stored")
	}

	chars, err := repo.Characters(ctx, []string{"uil", "missing", "kever"})
	if err != nil {
		t.Fatalf("characters: %v", err)
	}
	if len(chars) != 2 || chars[0].ID != "uil" || chars[1].ID != "kever" {
		t.Errorf("characters = %+v, want uil then kever", chars)
	}
}

func TestContentImportReplacesVariants(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContentRepo()
	ctx := context.Background()

	b := testBundle()
	if err := repo.Import(ctx, b); err != nil {
		t.Fatalf("first import: %v", err)
	}

	b.Lessons[0].Title = "Insecten"
	b.Lessons[0].Variants = b.Lessons[0].Variants[1:]
	if err := repo.Import(ctx, b); err != nil {
		t.Fatalf("second import: %v", err)
	}

	l, err := repo.Lesson(ctx, "insect")
	if err != nil {
		t.Fatalf("lesson: %v", err)
	}
	if l.Title != "Insecten" {
		t.Errorf("title = %q, want updated", l.Title)
	}
	if len(l.Variants) != 1 || l.Variants[0].TargetGrade != 3 {
		t.Errorf("variants = %+v, want only grade 3", l.Variants)
	}
}

func TestProfileAddChild(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	parent, err := repo.Create(ctx, Profile{Role: RoleParent, Name: "Ellen"})
	if err != nil {
		t.Fatalf("create parent: %v", err)
	}

	for _, name := range []string{"Tim", "Sanne"} {
		if _, err := repo.AddChild(ctx, parent.ID, Profile{Name: name, Grade: 4}); err != nil {
			t.Fatalf("add child %s: %v", name, err)
		}
	}

	children, err := repo.Children(ctx, parent.ID)
	if err != nil {
		t.Fatalf("children: %v", err)
	}
	if len(children) != 2 {
		t.Fatalf("children = %d, want 2", len(children))
	}
	if children[0].Name != "Sanne" {
		t.Errorf("first child = %q, want Sanne (sorted by name)", children[0].Name)
	}
	for _, c := range children {
		if c.Role != RoleStudent {
			t.Errorf("child role = %q, want student", c.Role)
		}
		if c.ParentID == nil || *c.ParentID != parent.ID {
			t.Errorf("child parent = %v, want %v", c.ParentID, parent.ID)
		}
	}

	// A student cannot add children.
	if _, err := repo.AddChild(ctx, children[0].ID, Profile{Name: "X"}); err == nil {
		t.Error("expected error adding child to a student")
	}
	if _, err := repo.AddChild(ctx, uuid.New(), Profile{Name: "X"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown parent: err = %v, want ErrNotFound", err)
	}
}

func TestProfileGetNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.ProfileRepo().Get(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLedgerAppendMaintainsTotal(t *testing.T) {
	s := openTestStore(t)
	ledger := s.LedgerRepo()
	ctx := context.Background()
	student := newStudent(t, s)

	awards := []struct {
		lessonID string
		points   int
	}{{"insect", 50}, {"vlinder", 100}}
	for _, a := range awards {
		_, err := ledger.Append(ctx, PointsEventData{
			StudentID: student.ID,
			LessonID:  a.lessonID,
			EventType: "depth_accessed",
			Points:    a.points,
		})
		if err != nil {
			t.Fatalf("append %d: %v", a.points, err)
		}
	}

	total, err := ledger.Total(ctx, student.ID)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 150 {
		t.Errorf("total = %d, want 150", total)
	}

	p, err := s.ProfileRepo().Get(ctx, student.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.PointsTotal != 150 {
		t.Errorf("profile total = %d, want 150", p.PointsTotal)
	}

	events, err := ledger.Query(ctx, student.ID, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 || events[0].Points != 100 {
		t.Errorf("events = %+v, want newest first", events)
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("sequences not increasing: %d, %d", events[1].Sequence, events[0].Sequence)
	}
}

func TestLedgerAppendOnce(t *testing.T) {
	s := openTestStore(t)
	ledger := s.LedgerRepo()
	ctx := context.Background()
	student := newStudent(t, s)

	data := PointsEventData{StudentID: student.ID, LessonID: "insect", EventType: "depth_accessed", Points: 50}
	first, created, err := ledger.AppendOnce(ctx, data)
	if err != nil || !created {
		t.Fatalf("first append once: created=%v err=%v", created, err)
	}
	again, created, err := ledger.AppendOnce(ctx, data)
	if err != nil {
		t.Fatalf("second append once: %v", err)
	}
	if created {
		t.Error("second append once created a new event")
	}
	if again.Sequence != first.Sequence {
		t.Errorf("returned sequence %d, want existing %d", again.Sequence, first.Sequence)
	}
	total, _ := ledger.Total(ctx, student.ID)
	if total != 50 {
		t.Errorf("total = %d, want 50", total)
	}
}

func TestLedgerDuplicateAwardLosesToExisting(t *testing.T) {
	s := openTestStore(t)
	ledger := s.LedgerRepo().(*ledgerRepo)
	ctx := context.Background()
	student := newStudent(t, s)

	data := PointsEventData{StudentID: student.ID, LessonID: "insect", EventType: "depth_accessed", Points: 50}
	first, err := ledger.Append(ctx, data)
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	// A second writer that passed the existence check still hits the index.
	if _, err := ledger.Append(ctx, data); !ent.IsConstraintError(err) {
		t.Fatalf("duplicate append: err = %v, want constraint error", err)
	}

	rec, created, err := ledger.insertOnce(ctx, data)
	if err != nil {
		t.Fatalf("insert once: %v", err)
	}
	if created {
		t.Error("insert once reported a new event for a duplicate award")
	}
	if rec.Sequence != first.Sequence {
		t.Errorf("returned sequence %d, want existing %d", rec.Sequence, first.Sequence)
	}

	total, _ := ledger.Total(ctx, student.ID)
	p, _ := s.ProfileRepo().Get(ctx, student.ID)
	if total != 50 || p.PointsTotal != 50 {
		t.Errorf("ledger total = %d, profile total = %d, want 50", total, p.PointsTotal)
	}
}

func TestLedgerRejectsUnknownStudentAndNegativePoints(t *testing.T) {
	s := openTestStore(t)
	ledger := s.LedgerRepo()
	ctx := context.Background()

	_, err := ledger.Append(ctx, PointsEventData{StudentID: uuid.New(), LessonID: "x", EventType: "depth_accessed", Points: 5})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown student: err = %v, want ErrNotFound", err)
	}

	student := newStudent(t, s)
	if _, err := ledger.Append(ctx, PointsEventData{StudentID: student.ID, LessonID: "x", EventType: "depth_accessed", Points: -1}); err == nil {
		t.Error("expected error for negative points")
	}
	total, _ := ledger.Total(ctx, student.ID)
	if total != 0 {
		t.Errorf("total = %d after rejected appends, want 0", total)
	}
}

func TestLedgerReconcile(t *testing.T) {
	s := openTestStore(t)
	ledger := s.LedgerRepo()
	ctx := context.Background()
	student := newStudent(t, s)

	if _, err := ledger.Append(ctx, PointsEventData{StudentID: student.ID, LessonID: "insect", EventType: "depth_accessed", Points: 40}); err != nil {
		t.Fatalf("append: %v", err)
	}
	// Drift the denormalized total.
	if err := s.Client().Profile.UpdateOneID(student.ID).SetPointsTotal(999).Exec(ctx); err != nil {
		t.Fatalf("drift total: %v", err)
	}

	total, err := ledger.Reconcile(ctx, student.ID)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if total != 40 {
		t.Errorf("reconciled total = %d, want 40", total)
	}
	p, _ := s.ProfileRepo().Get(ctx, student.ID)
	if p.PointsTotal != 40 {
		t.Errorf("profile total = %d, want 40", p.PointsTotal)
	}
}

func TestProgressCompleteAwardsOnce(t *testing.T) {
	s := openTestStore(t)
	progress := s.ProgressRepo()
	ctx := context.Background()
	student := newStudent(t, s)

	rec, err := progress.Get(ctx, student.ID, "insect")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil progress before completion")
	}

	first, err := progress.Complete(ctx, CompletionData{
		StudentID:        student.ID,
		LessonID:         "insect",
		ReflectionAnswer: "De vlinder",
		DepthAccessed:    true,
		CompletionPoints: 100,
	})
	if err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if !first.FirstCompletion || first.PointsAwarded != 100 || first.PointsTotal != 100 {
		t.Errorf("first = %+v, want first completion awarding 100", first)
	}
	if !first.Progress.Completed || first.Progress.CompletedAt == nil {
		t.Errorf("progress = %+v, want completed with timestamp", first.Progress)
	}

	again, err := progress.Complete(ctx, CompletionData{
		StudentID:        student.ID,
		LessonID:         "insect",
		ReflectionAnswer: "De mier",
		CompletionPoints: 100,
	})
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if again.FirstCompletion || again.PointsAwarded != 0 || again.PointsTotal != 100 {
		t.Errorf("again = %+v, want no award", again)
	}
	// Later completions overwrite the answer and depth flag.
	if again.Progress.ReflectionAnswer != "De mier" || again.Progress.DepthAccessed {
		t.Errorf("progress = %+v, want overwritten fields", again.Progress)
	}

	events, err := s.LedgerRepo().Query(ctx, student.ID, QueryOpts{})
	if err != nil {
		t.Fatalf("query ledger: %v", err)
	}
	completed := 0
	for _, e := range events {
		if e.EventType == EventTypeLessonCompleted {
			completed++
		}
	}
	if completed != 1 {
		t.Errorf("lesson_completed events = %d, want 1", completed)
	}

	all, err := progress.ForStudent(ctx, student.ID, nil)
	if err != nil {
		t.Fatalf("for student: %v", err)
	}
	if _, ok := all["insect"]; !ok || len(all) != 1 {
		t.Errorf("for student = %+v", all)
	}
}

func TestProgressCompleteWithoutPoints(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	student := newStudent(t, s)

	res, err := s.ProgressRepo().Complete(ctx, CompletionData{StudentID: student.ID, LessonID: "insect"})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !res.FirstCompletion || res.PointsAwarded != 0 || res.PointsTotal != 0 {
		t.Errorf("res = %+v, want completion without award", res)
	}
}

func TestLLMEventsAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5-20250929", Purpose: "chat", InputTokens: 100, OutputTokens: 20, LatencyMs: 300, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5-20250929", Purpose: "chat", InputTokens: 200, OutputTokens: 40, LatencyMs: 500, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "lesson-gen", InputTokens: 900, OutputTokens: 1200, LatencyMs: 4000, Success: false, ErrorMessage: "rate limit"},
	}
	for _, c := range calls {
		if err := repo.AppendLLMRequest(ctx, c); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil || got == nil {
		t.Fatalf("get: %v, %v", got, err)
	}
	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil || missing != nil {
		t.Errorf("missing event = %v, %v; want nil, nil", missing, err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 || byPurpose[0].Purpose != "chat" {
		t.Fatalf("usage = %+v, want chat first", byPurpose)
	}
	if byPurpose[0].Calls != 2 || byPurpose[0].InputTokens != 300 || byPurpose[0].AvgLatencyMs != 400 {
		t.Errorf("chat usage = %+v", byPurpose[0])
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Errorf("usage by model = %+v", byModel)
	}
}
