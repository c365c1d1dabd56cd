package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kosmi-edu/kosmi/internal/auth"
	"github.com/kosmi-edu/kosmi/internal/chat"
	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/lessongen"
	"github.com/kosmi-edu/kosmi/internal/llm"
	"github.com/kosmi-edu/kosmi/internal/points"
	"github.com/kosmi-edu/kosmi/internal/progress"
	"github.com/kosmi-edu/kosmi/internal/speech"
	"github.com/kosmi-edu/kosmi/internal/store"
)

const testSecret = "api-test-secret-0123456789abcdef"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testEnv struct {
	t        *testing.T
	store    *store.Store
	router   *gin.Engine
	issuer   *auth.Issuer
	chatLLM  *llm.MockProvider
	genLLM   *llm.MockProvider
	student  *store.Profile
	parent   *store.Profile
	admin    *store.Profile
	ungraded *store.Profile
}

func seedBundle() *content.Bundle {
	b := &content.Bundle{
		Worlds: []content.World{
			{ID: "natuur", Slug: "natuur", Title: "Natuur", Published: true},
			{ID: "geheim", Slug: "geheim", Title: "Geheim", Published: false},
		},
		Topics: []content.Topic{
			{ID: "dieren", WorldID: "natuur", Title: "Dieren", Published: true},
		},
		Courses: []content.Course{
			{ID: "beestjes", TopicID: "dieren", Title: "Kleine beestjes", GradeMin: 1, GradeMax: 4, Published: true},
			{ID: "evolutie", TopicID: "dieren", Title: "Evolutie", GradeMin: 7, GradeMax: 8, Published: true},
		},
		Characters: []content.Character{
			{ID: "kever", Name: "Professor Kever", VoiceID: "voice-kever", KnowledgeScope: "insecten", OffTopicRedirect: "Laten we het over insecten hebben!", SystemPrompt: "Je bent Professor Kever."},
		},
		Lessons: []content.Lesson{
			{
				ID: "insect", CourseID: "beestjes", Title: "Wat is een insect?", Position: 1,
				CharacterIDs: []string{"kever"},
				Variants: []content.Variant{
					{TargetGrade: 3, IntroText: "Insecten hebben zes poten!", ReflectionQuestion: "Welk insect vind jij het mooist?"},
					{TargetGrade: 5, IntroText: "Er zijn miljoenen soorten.", PointsBase: 120, PointsDepthBonus: 40},
					{TargetGrade: 7, IntroText: "Insecten hebben een exoskelet."},
				},
			},
			{ID: "spin", CourseID: "beestjes", Title: "Is een spin een insect?", Position: 2},
		},
	}
	b.Normalize()
	return b
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	s, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.ContentRepo().Import(ctx, seedBundle()))

	profiles := s.ProfileRepo()
	parent, err := profiles.Create(ctx, store.Profile{Role: store.RoleParent, Name: "Ingrid"})
	require.NoError(t, err)
	student, err := profiles.AddChild(ctx, parent.ID, store.Profile{Name: "Sem", DisplayName: "Semmie", Grade: 3})
	require.NoError(t, err)
	admin, err := profiles.Create(ctx, store.Profile{Role: store.RoleSchoolAdmin, Name: "Juf Anja"})
	require.NoError(t, err)
	ungraded, err := profiles.Create(ctx, store.Profile{Role: store.RoleStudent, Name: "Noor"})
	require.NoError(t, err)

	verifier, err := auth.NewVerifier(testSecret, "")
	require.NoError(t, err)

	chatLLM := llm.NewMockProvider()
	genLLM := llm.NewMockProvider()
	src := s.ContentRepo()
	router := NewRouter(Deps{
		Verifier:    verifier,
		Profiles:    profiles,
		Content:     src,
		Chat:        chat.New(src, chatLLM, nil),
		Synthesizer: speech.MockSynthesizer{},
		Transcriber: speech.MockTranscriber{Text: "Hoeveel poten heeft een mier?"},
		Points:      points.NewService(s.LedgerRepo(), src, nil),
		Progress:    progress.NewService(s.ProgressRepo(), src, nil),
		Generator:   lessongen.New(genLLM, lessongen.DefaultConfig(), nil),
		Ping:        s.Ping,
	})

	return &testEnv{
		t: t, store: s, router: router,
		issuer:  auth.NewIssuer(testSecret, "", time.Hour),
		chatLLM: chatLLM, genLLM: genLLM,
		student: student, parent: parent, admin: admin, ungraded: ungraded,
	}
}

func (e *testEnv) token(p *store.Profile) string {
	tok, err := e.issuer.Issue(p.ID)
	require.NoError(e.t, err)
	return tok
}

func (e *testEnv) do(method, path string, as *store.Profile, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if as != nil {
		req.Header.Set("Authorization", "Bearer "+e.token(as))
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/healthcheck", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestAuthentication(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/me", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, CodeUnauthorized, decode[ErrorEnvelope](t, w).Error.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	ghost := &store.Profile{ID: uuid.New()}
	require.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/api/me", ghost, nil).Code)

	w = env.do(http.MethodGet, "/api/me", env.student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[ProfileView](t, w)
	require.Equal(t, env.student.ID, me.ID)
	require.Equal(t, 3, me.Grade)
}

func TestRoleChecks(t *testing.T) {
	env := newTestEnv(t)
	tests := []struct {
		name   string
		method string
		path   string
		as     *store.Profile
		want   int
	}{
		{"parent cannot open lessons", http.MethodGet, "/api/lessons/insect", env.parent, http.StatusForbidden},
		{"student without grade", http.MethodGet, "/api/lessons/insect", env.ungraded, http.StatusForbidden},
		{"admin cannot list worlds", http.MethodGet, "/api/worlds", env.admin, http.StatusForbidden},
		{"student cannot list children", http.MethodGet, "/api/parent/children", env.student, http.StatusForbidden},
		{"parent cannot generate", http.MethodPost, "/api/ai/generate-lesson", env.parent, http.StatusForbidden},
		{"parent cannot record points", http.MethodPost, "/api/points", env.parent, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(tt.method, tt.path, tt.as, map[string]any{})
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestBrowseContent(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/worlds", env.student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	worlds := decode[WorldsResponse](t, w)
	require.Equal(t, "Semmie", worlds.Greeting)
	require.Len(t, worlds.Worlds, 1)
	require.Equal(t, "natuur", worlds.Worlds[0].Slug)

	w = env.do(http.MethodGet, "/api/worlds/natuur/topics", env.student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode[TopicsResponse](t, w).Topics, 1)

	require.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/api/worlds/atlantis/topics", env.student, nil).Code)

	// Grade 3 sees the 1-4 course, not the 7-8 one.
	w = env.do(http.MethodGet, "/api/topics/dieren/courses", env.student, nil)
	courses := decode[CoursesResponse](t, w).Courses
	require.Len(t, courses, 1)
	require.Equal(t, "beestjes", courses[0].ID)

	w = env.do(http.MethodGet, "/api/courses/beestjes/lessons", env.student, nil)
	lessons := decode[LessonsResponse](t, w).Lessons
	require.Len(t, lessons, 2)
	require.Equal(t, "insect", lessons[0].ID)
	require.False(t, lessons[0].Completed)
}

func TestLessonView(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/lessons/insect", env.student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotContains(t, w.Body.String(), "Je bent Professor Kever", "system prompt leaked")

	view := decode[LessonView](t, w)
	require.Equal(t, 3, view.Variant.TargetGrade)
	require.Equal(t, 100, view.Variant.PointsBase)
	require.Empty(t, view.Lesson.Variants)
	require.Len(t, view.Characters, 1)
	require.Equal(t, "voice-kever", view.Characters[0].VoiceID)
	require.Nil(t, view.Progress)

	require.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/api/lessons/vulkaan", env.student, nil).Code)
	// A lesson without variants cannot be played.
	require.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/api/lessons/spin", env.student, nil).Code)
}

func TestChat(t *testing.T) {
	env := newTestEnv(t)
	env.chatLLM.AddResponse(llm.TextResponse("Een mier heeft zes poten, Semmie!"))

	w := env.do(http.MethodPost, "/api/ai/chat", env.student, ChatRequest{
		CharacterID:        "kever",
		Message:            "Hoeveel poten heeft een mier?",
		StudentGrade:       3,
		StudentDisplayName: "Semmie",
		ConversationHistory: []chat.Turn{
			{Role: chat.RoleUser, Content: "Hoi!"},
			{Role: chat.RoleAssistant, Content: "Hallo Semmie!"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, "Een mier heeft zes poten, Semmie!", decode[ChatResponse](t, w).Response)

	call := env.chatLLM.Calls[0]
	require.Contains(t, call.System, "Laten we het over insecten hebben!")
	require.Len(t, call.Messages, 3)
	require.Equal(t, chat.MaxReplyTokens, call.MaxTokens)

	w = env.do(http.MethodPost, "/api/ai/chat", env.student, ChatRequest{CharacterID: "kever"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPost, "/api/ai/chat", env.student, ChatRequest{CharacterID: "draak", Message: "Hoi", StudentGrade: 3, StudentDisplayName: "Sem"})
	require.Equal(t, http.StatusNotFound, w.Code)

	env.chatLLM.AddResponse(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	w = env.do(http.MethodPost, "/api/ai/chat", env.student, ChatRequest{CharacterID: "kever", Message: "Hoi", StudentGrade: 3, StudentDisplayName: "Sem"})
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Equal(t, genericMessage, decode[ErrorEnvelope](t, w).Error.Message)
}

func TestTTS(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/ai/tts", env.student, TTSRequest{Text: "Insecten hebben zes poten!", VoiceID: "voice-kever"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
	require.NotZero(t, w.Body.Len())

	w = env.do(http.MethodPost, "/api/ai/tts", env.student, TTSRequest{Text: "Hoi"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSTT(t *testing.T) {
	env := newTestEnv(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("audio", "recording.webm")
	require.NoError(t, err)
	fw.Write([]byte("webm-bytes"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/ai/stt", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+env.token(env.student))
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, "Hoeveel poten heeft een mier?", decode[STTResponse](t, w).Transcript)

	w = env.do(http.MethodPost, "/api/ai/stt", env.student, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPointsAndCompletion(t *testing.T) {
	env := newTestEnv(t)

	depth := PointsRequest{LessonID: "insect", EventType: "depth_accessed", Points: 50}
	w := env.do(http.MethodPost, "/api/points", env.student, depth)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	pr := decode[PointsResponse](t, w)
	require.True(t, pr.Created)
	require.Equal(t, 50, pr.PointsTotal)

	// A retried request does not award twice.
	pr = decode[PointsResponse](t, env.do(http.MethodPost, "/api/points", env.student, depth))
	require.False(t, pr.Created)
	require.Equal(t, 50, pr.PointsTotal)

	for _, bad := range []PointsRequest{
		{LessonID: "insect", EventType: "depth_accessed", Points: 5000},
		{LessonID: "insect", EventType: "lesson_completed", Points: 100},
		{LessonID: "insect", EventType: "bonus", Points: 50},
	} {
		require.Equal(t, http.StatusBadRequest, env.do(http.MethodPost, "/api/points", env.student, bad).Code)
	}
	require.Equal(t, http.StatusNotFound, env.do(http.MethodPost, "/api/points", env.student, PointsRequest{LessonID: "vulkaan", EventType: "depth_accessed", Points: 50}).Code)

	complete := CompleteRequest{LessonID: "insect", ReflectionAnswer: "De vlinder", DepthAccessed: true}
	w = env.do(http.MethodPost, "/api/lesson/complete", env.student, complete)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cr := decode[CompleteResponse](t, w)
	require.True(t, cr.FirstCompletion)
	require.Equal(t, 100, cr.PointsAwarded)
	require.Equal(t, 150, cr.PointsTotal)

	// Completing again overwrites the row and awards nothing.
	cr = decode[CompleteResponse](t, env.do(http.MethodPost, "/api/lesson/complete", env.student, complete))
	require.False(t, cr.FirstCompletion)
	require.Zero(t, cr.PointsAwarded)
	require.Equal(t, 150, cr.PointsTotal)

	total, err := env.store.LedgerRepo().Total(context.Background(), env.student.ID)
	require.NoError(t, err)
	require.Equal(t, 150, total)

	view := decode[LessonView](t, env.do(http.MethodGet, "/api/lessons/insect", env.student, nil))
	require.NotNil(t, view.Progress)
	require.True(t, view.Progress.Completed)
	require.True(t, view.Progress.DepthAccessed)
	require.Equal(t, "De vlinder", view.Progress.ReflectionAnswer)
	require.Equal(t, 150, view.Profile.PointsTotal)

	lessons := decode[LessonsResponse](t, env.do(http.MethodGet, "/api/courses/beestjes/lessons", env.student, nil)).Lessons
	require.True(t, lessons[0].Completed)

	hist := decode[PointsHistoryResponse](t, env.do(http.MethodGet, "/api/points", env.student, nil))
	require.Equal(t, 150, hist.PointsTotal)
	require.Len(t, hist.Events, 2)
	require.Equal(t, "lesson_completed", hist.Events[0].EventType)
	require.Equal(t, 100, hist.Events[0].Points)
	require.Equal(t, "depth_accessed", hist.Events[1].EventType)
	require.Len(t, decode[PointsHistoryResponse](t, env.do(http.MethodGet, "/api/points?limit=1", env.student, nil)).Events, 1)
	require.Equal(t, http.StatusBadRequest, env.do(http.MethodGet, "/api/points?limit=nul", env.student, nil).Code)
	require.Equal(t, http.StatusForbidden, env.do(http.MethodGet, "/api/points", env.parent, nil).Code)

	require.Equal(t, http.StatusBadRequest, env.do(http.MethodPost, "/api/lesson/complete", env.student, CompleteRequest{}).Code)
}

func TestParentChildren(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/parent/children", env.parent, AddChildRequest{Name: "  Emma ", Grade: 6})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	emma := decode[ProfileView](t, w)
	require.Equal(t, "Emma", emma.Name)
	require.Equal(t, "student", emma.Role)
	require.Equal(t, 6, emma.Grade)

	w = env.do(http.MethodGet, "/api/parent/children", env.parent, nil)
	require.Equal(t, http.StatusOK, w.Code)
	children := decode[ChildrenResponse](t, w).Children
	require.Len(t, children, 2)
	require.Equal(t, "Emma", children[0].Name)
	require.Equal(t, "Sem", children[1].Name)

	for _, bad := range []AddChildRequest{{Name: "", Grade: 3}, {Name: "Lars", Grade: 0}, {Name: "Lars", Grade: 9}} {
		require.Equal(t, http.StatusBadRequest, env.do(http.MethodPost, "/api/parent/children", env.parent, bad).Code)
	}
}

func TestGenerateLesson(t *testing.T) {
	env := newTestEnv(t)
	raw := json.RawMessage(`{"introText":"Zoem!","coreContent":"<p>Bijen</p>","depthContent":"<p>Meer bijen</p>","reflectionQuestion":"Waarom?","pointsBase":100,"pointsDepthBonus":50}`)
	env.genLLM.AddResponse(llm.MockResponse{Content: raw})

	w := env.do(http.MethodPost, "/api/ai/generate-lesson", env.admin, GenerateRequest{Topic: "bijen", GradeLevels: []int{4}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	variants := decode[GenerateResponse](t, w).Variants
	require.Len(t, variants, 1)
	require.Equal(t, 4, variants[0].TargetGrade)
	require.Equal(t, "<p>Bijen</p>", variants[0].Core.Content)

	w = env.do(http.MethodPost, "/api/ai/generate-lesson", env.admin, GenerateRequest{Topic: "bijen"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
