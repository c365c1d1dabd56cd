package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return NewFromZap(zap.New(core)), logs
}

func TestRedactsSecrets(t *testing.T) {
	l, logs := observed()
	l.Info("login", "access_token", "abc.def.ghi", "api_key", "sk-1", "lesson_id", "insecten-1")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "[REDACTED]", fields["access_token"])
	require.Equal(t, "[REDACTED]", fields["api_key"])
	require.Equal(t, "insecten-1", fields["lesson_id"])
}

func TestTokenCountsAreNotSecrets(t *testing.T) {
	l, logs := observed()
	l.Info("llm request", "input_tokens", 12, "token", "abc")

	fields := logs.All()[0].ContextMap()
	require.Equal(t, int64(12), fields["input_tokens"])
	require.Equal(t, "[REDACTED]", fields["token"])
}

func TestHashesStudentIDs(t *testing.T) {
	l, logs := observed()
	l.With("student_id", "2b1c7f0e-0000-4000-8000-000000000001").Warn("chat failed")

	fields := logs.All()[0].ContextMap()
	got, ok := fields["student_id"].(string)
	require.True(t, ok)
	require.Regexp(t, `^hash:[0-9a-f]{12}$`, got)
}

func TestOddKeyValues(t *testing.T) {
	l, logs := observed()
	l.Debug("dangling", "key")
	require.GreaterOrEqual(t, logs.Len(), 1)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)

	l, err := New(Options{Mode: "prod", Level: "debug"})
	require.NoError(t, err)
	require.NotNil(t, l.Zap())
}

func TestNewWritesToOutputPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kosmi.log")
	l, err := New(Options{Mode: "prod", Output: path})
	require.NoError(t, err)
	l.Info("lesson opened", "lesson_id", "insect")
	l.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"lesson_id":"insect"`)
}
