package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/kosmi-edu/kosmi/internal/chat"
	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/store"
)

// ProfileView is a profile as sent to clients.
type ProfileView struct {
	ID          uuid.UUID `json:"id"`
	Role        string    `json:"role"`
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName,omitempty"`
	Grade       int       `json:"groep,omitempty"`
	PointsTotal int       `json:"pointsTotal"`
}

func toProfileView(p store.Profile) ProfileView {
	return ProfileView{
		ID:          p.ID,
		Role:        string(p.Role),
		Name:        p.Name,
		DisplayName: p.DisplayName,
		Grade:       p.Grade,
		PointsTotal: p.PointsTotal,
	}
}

// ProgressView is a stored lesson progress record.
type ProgressView struct {
	Completed        bool       `json:"completed"`
	DepthAccessed    bool       `json:"depthAccessed"`
	ReflectionAnswer string     `json:"reflectionAnswer,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}

// WorldsResponse is the student's home screen.
type WorldsResponse struct {
	Greeting    string          `json:"greeting"`
	PointsTotal int             `json:"pointsTotal"`
	Worlds      []content.World `json:"worlds"`
}

// TopicsResponse lists the topics of a world.
type TopicsResponse struct {
	World  content.World   `json:"world"`
	Topics []content.Topic `json:"topics"`
}

// CoursesResponse lists the courses of a topic suited to the student.
type CoursesResponse struct {
	Courses []content.Course `json:"courses"`
}

// LessonSummary is a lesson in a course listing.
type LessonSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Order     int    `json:"order"`
	Completed bool   `json:"completed"`
}

// LessonsResponse lists the lessons of a course.
type LessonsResponse struct {
	Lessons []LessonSummary `json:"lessons"`
}

// LessonView is everything the player needs for one visit.
type LessonView struct {
	Lesson     content.Lesson      `json:"lesson"`
	Variant    content.Variant     `json:"variant"`
	Characters []content.Character `json:"characters"`
	Profile    ProfileView         `json:"profile"`
	Progress   *ProgressView       `json:"progress,omitempty"`
}

// ChatRequest asks a character for a reply.
type ChatRequest struct {
	CharacterID         string      `json:"characterId"`
	Message             string      `json:"message"`
	StudentGrade        int         `json:"studentGroep"`
	StudentDisplayName  string      `json:"studentDisplayName"`
	ConversationHistory []chat.Turn `json:"conversationHistory"`
}

// ChatResponse carries the reply.
type ChatResponse struct {
	Response string `json:"response"`
}

// TTSRequest asks for narration.
type TTSRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voiceId"`
}

// STTResponse carries a dictation transcript.
type STTResponse struct {
	Transcript string `json:"transcript"`
}

// PointsRequest records a points event.
type PointsRequest struct {
	LessonID  string `json:"lessonId"`
	EventType string `json:"eventType"`
	Points    int    `json:"points"`
}

// PointsResponse acknowledges a points event.
type PointsResponse struct {
	Success bool `json:"success"`
	// Created is false when the event had already been recorded.
	Created     bool `json:"created"`
	PointsTotal int  `json:"pointsTotal"`
}

// PointsEventView is one ledger entry.
type PointsEventView struct {
	Sequence  int64     `json:"sequence"`
	LessonID  string    `json:"lessonId"`
	EventType string    `json:"eventType"`
	Points    int       `json:"points"`
	AwardedAt time.Time `json:"awardedAt"`
}

// PointsHistoryResponse lists the student's ledger, newest first.
type PointsHistoryResponse struct {
	PointsTotal int               `json:"pointsTotal"`
	Events      []PointsEventView `json:"events"`
}

// CompleteRequest finishes a lesson.
type CompleteRequest struct {
	LessonID         string `json:"lessonId"`
	ReflectionAnswer string `json:"reflectionAnswer"`
	DepthAccessed    bool   `json:"depthAccessed"`
}

// CompleteResponse acknowledges a completion.
type CompleteResponse struct {
	Success         bool `json:"success"`
	FirstCompletion bool `json:"firstCompletion"`
	PointsAwarded   int  `json:"pointsAwarded"`
	PointsTotal     int  `json:"pointsTotal"`
}

// AddChildRequest registers a child under the calling parent.
type AddChildRequest struct {
	Name  string `json:"name"`
	Grade int    `json:"groep"`
}

// ChildrenResponse lists a parent's children.
type ChildrenResponse struct {
	Children []ProfileView `json:"children"`
}

// GenerateRequest asks for lesson variants.
type GenerateRequest struct {
	Topic       string `json:"topic"`
	GradeLevels []int  `json:"groepLevels"`
	WorldID     string `json:"worldId,omitempty"`
}

// GenerateResponse carries the drafted variants.
type GenerateResponse struct {
	Variants []content.Variant `json:"variants"`
}
