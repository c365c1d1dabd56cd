// Package client talks to the Kosmi API on behalf of the terminal player.
// Client implements the lesson engine's Companion, Transcriber, Ledger and
// Completer ports; Narrator adds audio playback on top of Synthesize.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/kosmi-edu/kosmi/internal/api"
	"github.com/kosmi-edu/kosmi/internal/chat"
	"github.com/kosmi-edu/kosmi/internal/lesson"
	"github.com/kosmi-edu/kosmi/internal/logger"
	"github.com/kosmi-edu/kosmi/internal/points"
	"github.com/kosmi-edu/kosmi/internal/progress"
)

// ErrUnauthorized is returned for 401 and 403 responses. The player sends
// the student back to login on either.
var ErrUnauthorized = errors.New("not logged in")

// StatusError is a non-2xx response other than 401/403.
type StatusError struct {
	Status  int
	Code    string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// Client is an authenticated API client.
type Client struct {
	base  string
	token string
	http  *http.Client
	log   *logger.Logger
}

// New creates a client for the API at baseURL.
func New(baseURL, token string, httpClient *http.Client, log *logger.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		base:  strings.TrimRight(baseURL, "/"),
		token: token,
		http:  httpClient,
		log:   log.With("component", "client"),
	}
}

// Me returns the caller's profile.
func (c *Client) Me(ctx context.Context) (*api.ProfileView, error) {
	var out api.ProfileView
	if err := c.getJSON(ctx, "/api/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Worlds returns the student's home screen.
func (c *Client) Worlds(ctx context.Context) (*api.WorldsResponse, error) {
	var out api.WorldsResponse
	if err := c.getJSON(ctx, "/api/worlds", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Topics lists the topics of the world with the given slug.
func (c *Client) Topics(ctx context.Context, worldSlug string) (*api.TopicsResponse, error) {
	var out api.TopicsResponse
	if err := c.getJSON(ctx, "/api/worlds/"+url.PathEscape(worldSlug)+"/topics", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Courses lists the courses of a topic suited to the student.
func (c *Client) Courses(ctx context.Context, topicID string) (*api.CoursesResponse, error) {
	var out api.CoursesResponse
	if err := c.getJSON(ctx, "/api/topics/"+url.PathEscape(topicID)+"/courses", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Lessons lists the lessons of a course.
func (c *Client) Lessons(ctx context.Context, courseID string) (*api.LessonsResponse, error) {
	var out api.LessonsResponse
	if err := c.getJSON(ctx, "/api/courses/"+url.PathEscape(courseID)+"/lessons", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Lesson loads the lesson view for one visit.
func (c *Client) Lesson(ctx context.Context, id string) (*api.LessonView, error) {
	var out api.LessonView
	if err := c.getJSON(ctx, "/api/lessons/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reply asks a character for a chat reply.
func (c *Client) Reply(ctx context.Context, req chat.Request) (string, error) {
	var out api.ChatResponse
	err := c.postJSON(ctx, "/api/ai/chat", api.ChatRequest{
		CharacterID:         req.CharacterID,
		Message:             req.Message,
		StudentGrade:        req.StudentGrade,
		StudentDisplayName:  req.StudentName,
		ConversationHistory: req.History,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.Response, nil
}

// Synthesize requests narration audio. The caller closes the body.
func (c *Client) Synthesize(ctx context.Context, text, voiceID string) (io.ReadCloser, error) {
	body, err := json.Marshal(api.TTSRequest{Text: text, VoiceID: voiceID})
	if err != nil {
		return nil, fmt.Errorf("marshal tts request: %w", err)
	}
	resp, err := c.do(ctx, http.MethodPost, "/api/ai/tts", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Transcribe uploads a recording and returns its transcript.
func (c *Client) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("audio", filename)
	if err != nil {
		return "", fmt.Errorf("build upload: %w", err)
	}
	if _, err := io.Copy(fw, audio); err != nil {
		return "", fmt.Errorf("read recording: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("build upload: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/ai/stt", mw.FormDataContentType(), &buf)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	var out api.STTResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode transcript: %w", err)
	}
	return out.Transcript, nil
}

// RecordPoints posts a points event.
func (c *Client) RecordPoints(ctx context.Context, req points.Request) error {
	var out api.PointsResponse
	err := c.postJSON(ctx, "/api/points", api.PointsRequest{
		LessonID:  req.LessonID,
		EventType: string(req.EventType),
		Points:    req.Points,
	}, &out)
	if err != nil {
		return err
	}
	if !out.Created {
		c.log.Debug("points event already recorded", "lesson_id", req.LessonID)
	}
	return nil
}

// PointsHistory lists the student's points events, newest first. A zero
// limit uses the server default.
func (c *Client) PointsHistory(ctx context.Context, limit int) (*api.PointsHistoryResponse, error) {
	path := "/api/points"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out api.PointsHistoryResponse
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Complete stores the lesson completion.
func (c *Client) Complete(ctx context.Context, comp progress.Completion) error {
	_, err := c.CompleteLesson(ctx, comp)
	return err
}

// CompleteLesson stores the lesson completion and returns the server's
// summary.
func (c *Client) CompleteLesson(ctx context.Context, comp progress.Completion) (*api.CompleteResponse, error) {
	var out api.CompleteResponse
	err := c.postJSON(ctx, "/api/lesson/complete", api.CompleteRequest{
		LessonID:         comp.LessonID,
		ReflectionAnswer: comp.ReflectionAnswer,
		DepthAccessed:    comp.DepthAccessed,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Children lists the calling parent's children.
func (c *Client) Children(ctx context.Context) ([]api.ProfileView, error) {
	var out api.ChildrenResponse
	if err := c.getJSON(ctx, "/api/parent/children", &out); err != nil {
		return nil, err
	}
	return out.Children, nil
}

// AddChild registers a child under the calling parent.
func (c *Client) AddChild(ctx context.Context, name string, grade int) (*api.ProfileView, error) {
	var out api.ProfileView
	if err := c.postJSON(ctx, "/api/parent/children", api.AddChildRequest{Name: name, Grade: grade}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateLesson asks the server to draft variants for a topic.
func (c *Client) GenerateLesson(ctx context.Context, topic string, grades []int) (*api.GenerateResponse, error) {
	var out api.GenerateResponse
	if err := c.postJSON(ctx, "/api/ai/generate-lesson", api.GenerateRequest{Topic: topic, GradeLevels: grades}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Visit turns a lesson view into the engine's input.
func Visit(v *api.LessonView) lesson.Visit {
	visit := lesson.Visit{
		Lesson:     v.Lesson,
		Variant:    v.Variant,
		Characters: v.Characters,
		Student: lesson.Student{
			Name:        v.Profile.DisplayName,
			Grade:       v.Profile.Grade,
			PointsTotal: v.Profile.PointsTotal,
		},
	}
	if visit.Student.Name == "" {
		visit.Student.Name = v.Profile.Name
	}
	if v.Progress != nil {
		visit.Progress = &lesson.Prior{
			Completed:        v.Progress.Completed,
			DepthAccessed:    v.Progress.DepthAccessed,
			ReflectionAnswer: v.Progress.ReflectionAnswer,
		}
	}
	return visit
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	resp, err := c.do(ctx, http.MethodPost, path, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// do sends the request and returns a 2xx response whose body the caller
// must close.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.StatusCode/100 == 2 {
		return resp, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthorized
	}
	se := &StatusError{Status: resp.StatusCode}
	var env api.ErrorEnvelope
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if json.Unmarshal(raw, &env) == nil {
		se.Code = env.Error.Code
		se.Message = env.Error.Message
	}
	return nil, se
}
