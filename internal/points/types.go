package points

import "time"

// EventType identifies why points were awarded.
type EventType string

const (
	// EventDepthAccessed is recorded when a student unlocks depth content.
	EventDepthAccessed EventType = "depth_accessed"
	// EventLessonCompleted is recorded on a lesson's first completion.
	EventLessonCompleted EventType = "lesson_completed"
)

// AllEventTypes returns all event types in display order.
func AllEventTypes() []EventType {
	return []EventType{EventLessonCompleted, EventDepthAccessed}
}

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	return t == EventDepthAccessed || t == EventLessonCompleted
}

// DisplayName returns the Dutch label shown to students and parents.
func (t EventType) DisplayName() string {
	switch t {
	case EventDepthAccessed:
		return "Verdieping"
	case EventLessonCompleted:
		return "Les afgerond"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the event type.
func (t EventType) Icon() string {
	switch t {
	case EventDepthAccessed:
		return "🌟"
	case EventLessonCompleted:
		return "🏆"
	default:
		return "✦"
	}
}

// Entry is one ledger entry.
type Entry struct {
	Sequence  int64
	LessonID  string
	Type      EventType
	Points    int
	AwardedAt time.Time
}
