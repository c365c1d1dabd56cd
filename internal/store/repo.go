package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kosmi-edu/kosmi/internal/content"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures a single model call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored model call.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo is the LLM request audit log.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)
	// GetLLMEvent returns nil when the event does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}

// ContentRepo reads published content and imports seed bundles.
type ContentRepo interface {
	content.Source

	// Import upserts every document of the bundle in one transaction.
	// Variants of an imported lesson are replaced.
	Import(ctx context.Context, b *content.Bundle) error
}

// Role is a profile's role.
type Role string

const (
	RoleParent      Role = "parent"
	RoleStudent     Role = "student"
	RoleSchoolAdmin Role = "school_admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleParent, RoleStudent, RoleSchoolAdmin:
		return true
	}
	return false
}

// Profile is an account.
type Profile struct {
	ID          uuid.UUID
	Role        Role
	Name        string
	DisplayName string
	Grade       int // 0 when unset
	ParentID    *uuid.UUID
	PointsTotal int
	CreatedAt   time.Time
}

// Greeting returns the name a student is addressed by.
func (p Profile) Greeting() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}

// ProfileRepo manages profiles and parent-child links.
type ProfileRepo interface {
	// Get returns ErrNotFound when the profile does not exist.
	Get(ctx context.Context, id uuid.UUID) (*Profile, error)
	Create(ctx context.Context, p Profile) (*Profile, error)
	// AddChild creates a student profile and links it to parentID.
	AddChild(ctx context.Context, parentID uuid.UUID, child Profile) (*Profile, error)
	Children(ctx context.Context, parentID uuid.UUID) ([]Profile, error)
}

// PointsEventData describes a points award.
type PointsEventData struct {
	StudentID uuid.UUID
	LessonID  string
	EventType string
	Points    int
}

// PointsEventRecord is a stored points award.
type PointsEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	PointsEventData
}

// LedgerRepo is the append-only points ledger. Appending also maintains the
// denormalized total on the student's profile in the same transaction.
type LedgerRepo interface {
	Append(ctx context.Context, data PointsEventData) (*PointsEventRecord, error)
	// AppendOnce appends unless the student already has an event of the same
	// type for the lesson, in which case it returns the existing event and
	// false.
	AppendOnce(ctx context.Context, data PointsEventData) (*PointsEventRecord, bool, error)
	// Total sums the student's events.
	Total(ctx context.Context, studentID uuid.UUID) (int, error)
	// Query returns the student's events, newest first.
	Query(ctx context.Context, studentID uuid.UUID, opts QueryOpts) ([]PointsEventRecord, error)
	// Reconcile rewrites the profile total from the event log and returns it.
	Reconcile(ctx context.Context, studentID uuid.UUID) (int, error)
}

// ProgressRecord is a student's completion record for one lesson.
type ProgressRecord struct {
	StudentID        uuid.UUID
	LessonID         string
	Completed        bool
	DepthAccessed    bool
	ReflectionAnswer string
	CompletedAt      *time.Time
}

// CompletionData is the payload of a lesson completion.
type CompletionData struct {
	StudentID        uuid.UUID
	LessonID         string
	ReflectionAnswer string
	DepthAccessed    bool
	// CompletionPoints is awarded as a lesson_completed event the first time
	// the lesson is completed. Zero awards nothing.
	CompletionPoints int
}

// CompletionResult reports what a completion changed.
type CompletionResult struct {
	Progress        ProgressRecord
	FirstCompletion bool
	PointsAwarded   int
	PointsTotal     int
}

// ProgressRepo manages lesson progress.
type ProgressRepo interface {
	// Get returns nil when the student has no record for the lesson.
	Get(ctx context.Context, studentID uuid.UUID, lessonID string) (*ProgressRecord, error)
	// ForStudent returns the student's records keyed by lesson id.
	ForStudent(ctx context.Context, studentID uuid.UUID, lessonIDs []string) (map[string]ProgressRecord, error)
	// Complete upserts the (student, lesson) record with completed set.
	Complete(ctx context.Context, data CompletionData) (*CompletionResult, error)
}

// EventTypeLessonCompleted is the ledger event written on first completion.
const EventTypeLessonCompleted = "lesson_completed"
