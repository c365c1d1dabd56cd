package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kosmi-edu/kosmi/internal/chat"
	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/lessongen"
	"github.com/kosmi-edu/kosmi/internal/logger"
	"github.com/kosmi-edu/kosmi/internal/points"
	"github.com/kosmi-edu/kosmi/internal/progress"
	"github.com/kosmi-edu/kosmi/internal/speech"
	"github.com/kosmi-edu/kosmi/internal/store"
)

// Handler serves the Kosmi API. All collaborators are injected.
type Handler struct {
	log         *logger.Logger
	content     content.Source
	profiles    store.ProfileRepo
	chat        *chat.Service
	synthesizer speech.Synthesizer
	transcriber speech.Transcriber
	points      *points.Service
	progress    *progress.Service
	generator   *lessongen.Generator
	ping        func(context.Context) error
	maxUpload   int64
}

// HealthCheck reports liveness and database reachability.
func (h *Handler) HealthCheck(c *gin.Context) {
	if h.ping != nil {
		if err := h.ping(c.Request.Context()); err != nil {
			h.log.Warn("health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Me returns the caller's profile.
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, toProfileView(currentProfile(c)))
}

// Worlds lists published worlds with the student's greeting and total.
func (h *Handler) Worlds(c *gin.Context) {
	p := currentProfile(c)
	worlds, err := h.content.PublishedWorlds(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, WorldsResponse{
		Greeting:    p.Greeting(),
		PointsTotal: p.PointsTotal,
		Worlds:      nonNil(worlds),
	})
}

// Topics lists the topics of the world with the given slug.
func (h *Handler) Topics(c *gin.Context) {
	ctx := c.Request.Context()
	world, err := h.content.WorldBySlug(ctx, c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	topics, err := h.content.Topics(ctx, world.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, TopicsResponse{World: *world, Topics: nonNil(topics)})
}

// Courses lists a topic's courses that target the student's grade.
func (h *Handler) Courses(c *gin.Context) {
	p := currentProfile(c)
	courses, err := h.content.Courses(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	suited := make([]content.Course, 0, len(courses))
	for _, course := range courses {
		if course.Suits(p.Grade) {
			suited = append(suited, course)
		}
	}
	c.JSON(http.StatusOK, CoursesResponse{Courses: suited})
}

// Lessons lists a course's lessons with the student's completion flags.
func (h *Handler) Lessons(c *gin.Context) {
	ctx := c.Request.Context()
	p := currentProfile(c)
	lessons, err := h.content.Lessons(ctx, c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	ids := make([]string, len(lessons))
	for i, l := range lessons {
		ids[i] = l.ID
	}
	done, err := h.progress.Completed(ctx, p, ids)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	out := make([]LessonSummary, len(lessons))
	for i, l := range lessons {
		out[i] = LessonSummary{ID: l.ID, Title: l.Title, Order: l.Position, Completed: done[l.ID]}
	}
	c.JSON(http.StatusOK, LessonsResponse{Lessons: out})
}

// Lesson returns the lesson view for the student's grade.
func (h *Handler) Lesson(c *gin.Context) {
	ctx := c.Request.Context()
	p := currentProfile(c)

	lesson, err := h.content.Lesson(ctx, c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	variant, err := content.SelectVariant(*lesson, p.Grade)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	characters, err := h.content.Characters(ctx, lesson.CharacterIDs)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	rec, err := h.progress.Get(ctx, p, lesson.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	view := LessonView{
		Lesson:     *lesson,
		Variant:    variant,
		Characters: nonNil(characters),
		Profile:    toProfileView(p),
	}
	view.Lesson.Variants = nil
	if rec != nil {
		view.Progress = &ProgressView{
			Completed:        rec.Completed,
			DepthAccessed:    rec.DepthAccessed,
			ReflectionAnswer: rec.ReflectionAnswer,
			CompletedAt:      rec.CompletedAt,
		}
	}
	c.JSON(http.StatusOK, view)
}

// Chat answers a student message in character.
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, badRequest("Ongeldige aanvraag"))
		return
	}
	reply, err := h.chat.Reply(c.Request.Context(), chat.Request{
		CharacterID:  req.CharacterID,
		Message:      req.Message,
		StudentGrade: req.StudentGrade,
		StudentName:  req.StudentDisplayName,
		History:      req.ConversationHistory,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, ChatResponse{Response: reply})
}

// TTS streams narration audio.
func (h *Handler) TTS(c *gin.Context) {
	var req TTSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, badRequest("Ongeldige aanvraag"))
		return
	}
	audio, err := h.synthesizer.Synthesize(c.Request.Context(), req.Text, req.VoiceID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	defer audio.Body.Close()
	c.DataFromReader(http.StatusOK, audio.Length, audio.ContentType, audio.Body, nil)
}

// STT transcribes an uploaded clip from the "audio" form field.
func (h *Handler) STT(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)
	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		respondError(c, h.log, badRequest("Audio bestand is verplicht"))
		return
	}
	defer file.Close()

	text, err := h.transcriber.Transcribe(c.Request.Context(), file, header.Filename)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, STTResponse{Transcript: text})
}

// RecordPoints appends a points event for the student.
func (h *Handler) RecordPoints(c *gin.Context) {
	ctx := c.Request.Context()
	p := currentProfile(c)
	var req PointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, badRequest("Ongeldige aanvraag"))
		return
	}
	res, err := h.points.Award(ctx, p, points.Request{
		LessonID:  req.LessonID,
		EventType: points.EventType(req.EventType),
		Points:    req.Points,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	total, err := h.points.Total(ctx, p)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, PointsResponse{Success: true, Created: res.Created, PointsTotal: total})
}

// PointsHistory lists the student's points events. The optional limit query
// parameter defaults to 50 and is capped at 200.
func (h *Handler) PointsHistory(c *gin.Context) {
	ctx := c.Request.Context()
	p := currentProfile(c)
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(c, h.log, badRequest("limit moet een positief getal zijn"))
			return
		}
		limit = min(n, 200)
	}
	entries, err := h.points.History(ctx, p, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	total, err := h.points.Total(ctx, p)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	resp := PointsHistoryResponse{PointsTotal: total, Events: make([]PointsEventView, len(entries))}
	for i, e := range entries {
		resp.Events[i] = PointsEventView{
			Sequence:  e.Sequence,
			LessonID:  e.LessonID,
			EventType: string(e.Type),
			Points:    e.Points,
			AwardedAt: e.AwardedAt,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// CompleteLesson stores the student's completion.
func (h *Handler) CompleteLesson(c *gin.Context) {
	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, badRequest("Ongeldige aanvraag"))
		return
	}
	res, err := h.progress.Complete(c.Request.Context(), currentProfile(c), progress.Completion{
		LessonID:         req.LessonID,
		ReflectionAnswer: req.ReflectionAnswer,
		DepthAccessed:    req.DepthAccessed,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, CompleteResponse{
		Success:         true,
		FirstCompletion: res.FirstCompletion,
		PointsAwarded:   res.PointsAwarded,
		PointsTotal:     res.PointsTotal,
	})
}

// Children lists the parent's children.
func (h *Handler) Children(c *gin.Context) {
	children, err := h.profiles.Children(c.Request.Context(), currentProfile(c).ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	out := make([]ProfileView, len(children))
	for i, ch := range children {
		out[i] = toProfileView(ch)
	}
	c.JSON(http.StatusOK, ChildrenResponse{Children: out})
}

// AddChild creates a student profile linked to the parent.
func (h *Handler) AddChild(c *gin.Context) {
	var req AddChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, badRequest("Ongeldige aanvraag"))
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondError(c, h.log, badRequest("Naam is verplicht"))
		return
	}
	if req.Grade < content.MinGrade || req.Grade > content.MaxGrade {
		respondError(c, h.log, badRequest("Groep moet tussen 1 en 8 liggen"))
		return
	}
	parent := currentProfile(c)
	child, err := h.profiles.AddChild(c.Request.Context(), parent.ID, store.Profile{
		Name:        name,
		DisplayName: name,
		Grade:       req.Grade,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	h.log.Info("child added", "profile_id", parent.ID, "student_id", child.ID, "grade", child.Grade)
	c.JSON(http.StatusCreated, toProfileView(*child))
}

// GenerateLesson drafts variants for editors.
func (h *Handler) GenerateLesson(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, badRequest("Topic en groepLevels (array) zijn verplicht"))
		return
	}
	variants, err := h.generator.Generate(c.Request.Context(), lessongen.Input{
		Topic:  req.Topic,
		Grades: req.GradeLevels,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, GenerateResponse{Variants: variants})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
