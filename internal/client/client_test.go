package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kosmi-edu/kosmi/internal/api"
	"github.com/kosmi-edu/kosmi/internal/chat"
	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/points"
	"github.com/kosmi-edu/kosmi/internal/progress"
)

func newServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", "tok-123", srv.Client(), nil)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestReplySendsChatRequest(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/ai/chat", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		var req api.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "kever", req.CharacterID)
		require.Equal(t, 3, req.StudentGrade)
		require.Equal(t, "Sem", req.StudentDisplayName)
		require.Len(t, req.ConversationHistory, 1)
		writeJSON(w, http.StatusOK, api.ChatResponse{Response: "Zes poten!"})
	})

	reply, err := c.Reply(context.Background(), chat.Request{
		CharacterID:  "kever",
		Message:      "Hoeveel poten?",
		StudentGrade: 3,
		StudentName:  "Sem",
		History:      []chat.Turn{{Role: chat.RoleUser, Content: "Hoi"}},
	})
	require.NoError(t, err)
	require.Equal(t, "Zes poten!", reply)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantAuth bool
	}{
		{"unauthorized", http.StatusUnauthorized, true},
		{"forbidden", http.StatusForbidden, true},
		{"not found", http.StatusNotFound, false},
		{"upstream", http.StatusBadGateway, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, api.ErrorEnvelope{Error: api.APIError{Message: "Oeps", Code: "x"}})
			})
			_, err := c.Lesson(context.Background(), "insect")
			if tt.wantAuth {
				if !errors.Is(err, ErrUnauthorized) {
					t.Fatalf("err = %v, want ErrUnauthorized", err)
				}
				return
			}
			var se *StatusError
			if !errors.As(err, &se) {
				t.Fatalf("err = %v, want *StatusError", err)
			}
			if se.Status != tt.status || se.Message != "Oeps" || se.Code != "x" {
				t.Fatalf("got %+v", se)
			}
		})
	}
}

func TestErrorWithoutEnvelope(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	_, err := c.Worlds(context.Background())
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusInternalServerError, se.Status)
	require.Empty(t, se.Message)
}

func TestTranscribeUploadsMultipart(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/ai/stt", r.URL.Path)
		f, hdr, err := r.FormFile("audio")
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, "recording.webm", hdr.Filename)
		data, _ := io.ReadAll(f)
		require.Equal(t, "clip", string(data))
		writeJSON(w, http.StatusOK, api.STTResponse{Transcript: "Hallo"})
	})

	text, err := c.Transcribe(context.Background(), strings.NewReader("clip"), "recording.webm")
	require.NoError(t, err)
	require.Equal(t, "Hallo", text)
}

func TestRecordPointsAndComplete(t *testing.T) {
	var paths []string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/api/points":
			var req api.PointsRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "depth_accessed", req.EventType)
			require.Equal(t, 50, req.Points)
			writeJSON(w, http.StatusOK, api.PointsResponse{Success: true, Created: true, PointsTotal: 50})
		case "/api/lesson/complete":
			var req api.CompleteRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.True(t, req.DepthAccessed)
			require.Equal(t, "De vlinder", req.ReflectionAnswer)
			writeJSON(w, http.StatusOK, api.CompleteResponse{Success: true, FirstCompletion: true, PointsAwarded: 100, PointsTotal: 150})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	ctx := context.Background()

	require.NoError(t, c.RecordPoints(ctx, points.Request{LessonID: "insect", EventType: points.EventDepthAccessed, Points: 50}))
	res, err := c.CompleteLesson(ctx, progress.Completion{LessonID: "insect", ReflectionAnswer: "De vlinder", DepthAccessed: true})
	require.NoError(t, err)
	require.Equal(t, 150, res.PointsTotal)
	require.Equal(t, []string{"/api/points", "/api/lesson/complete"}, paths)
}

type bufPlayer struct{ got bytes.Buffer }

func (p *bufPlayer) Play(_ context.Context, audio io.Reader) error {
	_, err := io.Copy(&p.got, audio)
	return err
}

func TestNarratorPlaysSynthesizedAudio(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req api.TTSRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "voice-kever", req.VoiceID)
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("mp3"))
	})
	p := &bufPlayer{}
	require.NoError(t, NewNarrator(c, p).Narrate(context.Background(), "Hallo", "voice-kever"))
	require.Equal(t, "mp3", p.got.String())
}

func TestVisit(t *testing.T) {
	view := &api.LessonView{
		Lesson:  content.Lesson{ID: "insect"},
		Variant: content.Variant{TargetGrade: 3},
		Profile: api.ProfileView{Name: "Sem", Grade: 3, PointsTotal: 400},
		Progress: &api.ProgressView{
			Completed:        true,
			ReflectionAnswer: "De mier",
		},
	}
	v := Visit(view)
	require.Equal(t, "Sem", v.Student.Name)
	require.Equal(t, 400, v.Student.PointsTotal)
	require.NotNil(t, v.Progress)
	require.True(t, v.Progress.Completed)
	require.Equal(t, "De mier", v.Progress.ReflectionAnswer)

	view.Profile.DisplayName = "Semmie"
	view.Progress = nil
	v = Visit(view)
	require.Equal(t, "Semmie", v.Student.Name)
	require.Nil(t, v.Progress)
}

func TestPointsHistory(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/points", r.URL.Path)
		require.Equal(t, "5", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, api.PointsHistoryResponse{
			PointsTotal: 150,
			Events:      []api.PointsEventView{{Sequence: 2, LessonID: "insect", EventType: "lesson_completed", Points: 100}},
		})
	})

	hist, err := c.PointsHistory(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, 150, hist.PointsTotal)
	require.Len(t, hist.Events, 1)
	require.Equal(t, "insect", hist.Events[0].LessonID)
}

func TestParentChildren(t *testing.T) {
	childID := uuid.New()
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/parent/children", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, api.ChildrenResponse{Children: []api.ProfileView{
				{ID: childID, Role: "student", Name: "Sanne", Grade: 4, PointsTotal: 150},
			}})
		case http.MethodPost:
			var req api.AddChildRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, api.AddChildRequest{Name: "Daan", Grade: 6}, req)
			writeJSON(w, http.StatusCreated, api.ProfileView{ID: uuid.New(), Role: "student", Name: req.Name, Grade: req.Grade})
		}
	})

	children, err := c.Children(context.Background())
	require.NoError(t, err)
	require.Len(t, children, 1)
	require.Equal(t, childID, children[0].ID)
	require.Equal(t, 150, children[0].PointsTotal)

	child, err := c.AddChild(context.Background(), "Daan", 6)
	require.NoError(t, err)
	require.Equal(t, "Daan", child.Name)
	require.Equal(t, 6, child.Grade)
}

func TestGenerateLesson(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/ai/generate-lesson", r.URL.Path)
		var req api.GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "vulkanen", req.Topic)
		require.Equal(t, []int{5, 7}, req.GradeLevels)
		writeJSON(w, http.StatusOK, api.GenerateResponse{Variants: []content.Variant{
			{TargetGrade: 5, IntroText: "Vuur"},
			{TargetGrade: 7, IntroText: "Magma"},
		}})
	})

	resp, err := c.GenerateLesson(context.Background(), "vulkanen", []int{5, 7})
	require.NoError(t, err)
	require.Len(t, resp.Variants, 2)
	require.Equal(t, "Magma", resp.Variants[1].IntroText)
}
