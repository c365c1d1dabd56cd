package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/kosmi-edu/kosmi/internal/api"
	"github.com/kosmi-edu/kosmi/internal/auth"
	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/store"
)

const testBundle = `
worlds:
  - id: natuur
    title: Natuur
    published: true
topics:
  - id: dieren
    world: natuur
    title: Dieren
    published: true
courses:
  - id: beestjes
    topic: dieren
    title: Kleine beestjes
    grade_min: 1
    grade_max: 4
    published: true
lessons:
  - id: insect
    course: beestjes
    title: Wat is een insect?
    order: 1
    variants:
      - grade: 3
        intro: <p>Insecten hebben <strong>zes</strong> poten.</p>
        core:
          content: <p>Een insect heeft drie delen.</p>
        reflection_question: Welk insect vind jij het mooist?
`

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func seededDB(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	bundle := filepath.Join(dir, "natuur.yaml")
	require.NoError(t, os.WriteFile(bundle, []byte(testBundle), 0o644))
	db := filepath.Join(dir, "kosmi.db")

	out, _, err := execute(t, "seed", "--dry-run=false", "--db", db, bundle)
	require.NoError(t, err)
	require.Contains(t, out, "imported 1 worlds, 1 topics, 1 courses, 1 lessons, 0 characters")
	return db
}

func TestSeedCatalogAndPreview(t *testing.T) {
	db := seededDB(t)

	out, _, err := execute(t, "catalog", "--db", db)
	require.NoError(t, err)
	require.Contains(t, out, "Natuur  (natuur)")
	require.Contains(t, out, "Kleine beestjes  [groep 1-4]")
	require.Contains(t, out, "(varianten: 3)")

	out, _, err = execute(t, "preview", "--db", db, "--grade", "3", "--no-chat", "insect")
	require.NoError(t, err)
	require.Contains(t, out, "variant groep 3, 100 + 50 punten")
	require.Contains(t, out, "Insecten hebben zes poten.")
	require.Contains(t, out, "── Reflectie ──\nWelk insect vind jij het mooist?")
}

func TestSeedRejectsInvalidBundle(t *testing.T) {
	bundle := filepath.Join(t.TempDir(), "kapot.yaml")
	require.NoError(t, os.WriteFile(bundle, []byte("lessons:\n  - id: x\n    title: X\n    variants:\n      - grade: 12\n"), 0o644))

	_, _, err := execute(t, "seed", "--dry-run", bundle)
	require.Error(t, err)
	require.Contains(t, err.Error(), "variant grade 12")
}

func TestTokenAndPoints(t *testing.T) {
	t.Setenv("KOSMI_JWT_SECRET", "test-secret")
	db := seededDB(t)

	out, stderr, err := execute(t, "token", "--db", db, "--role", "student", "--name", "Sem", "--grade", "3")
	require.NoError(t, err)
	require.Contains(t, stderr, "Created student Sem")

	verifier, err := auth.NewVerifier("test-secret", "")
	require.NoError(t, err)
	id, err := verifier.Verify(strings.TrimSpace(out))
	require.NoError(t, err)

	s, err := store.Open(db)
	require.NoError(t, err)
	p, err := s.ProfileRepo().Get(t.Context(), id)
	require.NoError(t, err)
	require.Equal(t, 3, p.Grade)
	require.NoError(t, s.Close())

	out, _, err = execute(t, "points", "history", "--db", db, id.String())
	require.NoError(t, err)
	require.Contains(t, out, "Sem: 0 punten")
	require.Contains(t, out, "Nog geen punten verdiend.")

	out, _, err = execute(t, "points", "reconcile", "--db", db, id.String())
	require.NoError(t, err)
	require.Contains(t, out, "in sync")

	_, _, err = execute(t, "points", "history", "--db", db, uuid.NewString())
	require.Error(t, err)
}

// fakeAPI serves the parent and generation routes for one bearer token.
func fakeAPI(t *testing.T, token string) string {
	t.Helper()
	var children []api.ProfileView
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/parent/children", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.ChildrenResponse{Children: children})
	})
	mux.HandleFunc("POST /api/parent/children", func(w http.ResponseWriter, r *http.Request) {
		var req api.AddChildRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		child := api.ProfileView{ID: uuid.New(), Role: "student", Name: req.Name, Grade: req.Grade}
		children = append(children, child)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(child)
	})
	mux.HandleFunc("POST /api/ai/generate-lesson", func(w http.ResponseWriter, r *http.Request) {
		var req api.GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		var variants []content.Variant
		for _, g := range req.GradeLevels {
			variants = append(variants, content.Variant{
				TargetGrade:        g,
				IntroText:          "<p>Over " + req.Topic + "</p>",
				ReflectionQuestion: "Wat wist je nog niet?",
				PointsBase:         100,
				PointsDepthBonus:   50,
			})
		}
		json.NewEncoder(w).Encode(api.GenerateResponse{Variants: variants})
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(api.ErrorEnvelope{Error: api.APIError{Message: "Geen toegang", Code: "forbidden"}})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestChildrenCommands(t *testing.T) {
	url := fakeAPI(t, "ouder-tok")

	out, _, err := execute(t, "children", "--api", url, "--token", "ouder-tok")
	require.NoError(t, err)
	require.Contains(t, out, "No children linked yet")

	out, _, err = execute(t, "children", "add", "Sanne", "--grade", "4", "--api", url, "--token", "ouder-tok")
	require.NoError(t, err)
	require.Contains(t, out, "Added Sanne (groep 4)")
	require.Contains(t, out, "kosmi token ")

	out, _, err = execute(t, "children", "--api", url, "--token", "ouder-tok")
	require.NoError(t, err)
	require.Contains(t, out, "Sanne")
	require.Contains(t, out, "GROEP")

	_, _, err = execute(t, "children", "--api", url, "--token", "kind-tok")
	require.ErrorContains(t, err, "parent token")
}

func TestGenerateThroughAPI(t *testing.T) {
	url := fakeAPI(t, "admin-tok")
	outPath := filepath.Join(t.TempDir(), "bijen.yaml")

	_, _, err := execute(t, "generate", "--topic", "Bijen in de stad", "--grades", "3,6",
		"--course", "natuur-insecten", "-o", outPath, "--api", url, "--token", "admin-tok")
	require.NoError(t, err)

	b, err := content.LoadBundleFile(outPath)
	require.NoError(t, err)
	require.Len(t, b.Lessons, 1)
	require.Equal(t, "bijen-in-de-stad", b.Lessons[0].ID)
	require.Len(t, b.Lessons[0].Variants, 2)
	require.Equal(t, 6, b.Lessons[0].Variants[1].TargetGrade)
}

func TestResolveDBPath(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("KOSMI_DATABASE_URL", "")
	t.Setenv("KOSMI_DB", filepath.Join(t.TempDir(), "oud.db"))

	cmd := &cobra.Command{}
	cmd.Flags().String("db", "", "")

	p, err := resolveDBPath(cmd)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dataHome, "kosmi", "kosmi.db"), p)

	t.Setenv("KOSMI_DATABASE_URL", "postgres://kosmi@localhost/kosmi")
	p, err = resolveDBPath(cmd)
	require.NoError(t, err)
	require.Equal(t, "postgres://kosmi@localhost/kosmi", p)

	flagPath := filepath.Join(t.TempDir(), "vlag", "kosmi.db")
	require.NoError(t, cmd.Flags().Set("db", flagPath))
	p, err = resolveDBPath(cmd)
	require.NoError(t, err)
	require.Equal(t, flagPath, p)
	require.DirExists(t, filepath.Dir(flagPath))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Wat is een insect?", "wat-is-een-insect"},
		{"  Vulkanen & aardbevingen ", "vulkanen-aardbevingen"},
		{"Groep 7", "groep-7"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGradeRange(t *testing.T) {
	tests := []struct {
		lo, hi int
		want   string
	}{
		{0, 0, "alle"},
		{3, 0, "3+"},
		{5, 5, "5"},
		{1, 4, "1-4"},
	}
	for _, tt := range tests {
		if got := gradeRange(tt.lo, tt.hi); got != tt.want {
			t.Errorf("gradeRange(%d, %d) = %q, want %q", tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestFilterLLMEvents(t *testing.T) {
	events := []store.LLMEventRecord{
		{ID: 1, LLMRequestEventData: store.LLMRequestEventData{Purpose: "chat", Success: true}},
		{ID: 2, LLMRequestEventData: store.LLMRequestEventData{Purpose: "chat", Success: false}},
		{ID: 3, LLMRequestEventData: store.LLMRequestEventData{Purpose: "lesson-generate", Success: false}},
	}
	got := filterLLMEvents(events, "chat", true)
	require.Len(t, got, 1)
	require.Equal(t, 2, got[0].ID)
}
