// Package api is the Kosmi HTTP API: lesson loading, the chat and speech
// proxies, points and completion recording, parent child management and
// lesson generation for editors.
package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/kosmi-edu/kosmi/internal/auth"
	"github.com/kosmi-edu/kosmi/internal/chat"
	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/lessongen"
	"github.com/kosmi-edu/kosmi/internal/logger"
	"github.com/kosmi-edu/kosmi/internal/points"
	"github.com/kosmi-edu/kosmi/internal/progress"
	"github.com/kosmi-edu/kosmi/internal/speech"
	"github.com/kosmi-edu/kosmi/internal/store"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Log         *logger.Logger
	Verifier    *auth.Verifier
	Profiles    store.ProfileRepo
	Content     content.Source
	Chat        *chat.Service
	Synthesizer speech.Synthesizer
	Transcriber speech.Transcriber
	Points      *points.Service
	Progress    *progress.Service
	Generator   *lessongen.Generator
	// Ping backs the health check; nil always reports healthy.
	Ping func(context.Context) error

	CORSOrigins    []string
	MaxUploadBytes int64
	// TraceService enables otelgin spans under this service name.
	TraceService string
}

// NewRouter builds the gin engine.
func NewRouter(d Deps) *gin.Engine {
	log := d.Log
	if log == nil {
		log = logger.Nop()
	}
	maxUpload := d.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = speech.MaxAudioBytes
	}
	h := &Handler{
		log:         log.With("component", "api"),
		content:     d.Content,
		profiles:    d.Profiles,
		chat:        d.Chat,
		synthesizer: d.Synthesizer,
		transcriber: d.Transcriber,
		points:      d.Points,
		progress:    d.Progress,
		generator:   d.Generator,
		ping:        d.Ping,
		maxUpload:   maxUpload,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if d.TraceService != "" {
		r.Use(otelgin.Middleware(d.TraceService))
	}
	r.Use(RequestID())
	r.Use(RequestLogger(h.log))
	if len(d.CORSOrigins) > 0 {
		r.Use(CORS(d.CORSOrigins))
	}

	r.GET("/healthcheck", h.HealthCheck)

	api := r.Group("/api")
	api.Use(Authenticate(d.Verifier, d.Profiles, h.log))
	{
		api.GET("/me", h.Me)
		api.POST("/ai/chat", h.Chat)
		api.POST("/ai/tts", h.TTS)
		api.POST("/ai/stt", h.STT)
	}

	student := api.Group("/")
	student.Use(RequireStudent())
	{
		student.GET("/worlds", h.Worlds)
		student.GET("/worlds/:slug/topics", h.Topics)
		student.GET("/topics/:id/courses", h.Courses)
		student.GET("/courses/:id/lessons", h.Lessons)
		student.GET("/lessons/:id", h.Lesson)
		student.GET("/points", h.PointsHistory)
		student.POST("/points", h.RecordPoints)
		student.POST("/lesson/complete", h.CompleteLesson)
	}

	parent := api.Group("/parent")
	parent.Use(RequireRole(store.RoleParent))
	{
		parent.GET("/children", h.Children)
		parent.POST("/children", h.AddChild)
	}

	editor := api.Group("/ai")
	editor.Use(RequireRole(store.RoleSchoolAdmin))
	{
		editor.POST("/generate-lesson", h.GenerateLesson)
	}

	return r
}
