// Package logger is a thin key-value wrapper around zap with redaction of
// credentials and hashing of child identifiers.
package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes structured key-value logs.
type Logger struct {
	sugar *zap.SugaredLogger
	salt  string
}

// Options configures New.
type Options struct {
	// Mode is "prod" for JSON output, anything else for console output.
	Mode string
	// Level is a zap level name; empty means info.
	Level string
	// HashSalt is mixed into hashed identifiers.
	HashSalt string
	// Output is a zap output path; empty means stderr.
	Output string
}

// New builds a Logger.
func New(opts Options) (*Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(opts.Mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	level := zap.InfoLevel
	if opts.Level != "" {
		if err := level.Set(opts.Level); err != nil {
			return nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	// Terminal UIs own stdout.
	out := opts.Output
	if out == "" {
		out = "stderr"
	}
	cfg.OutputPaths = []string{out}

	z, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return &Logger{sugar: z.Sugar(), salt: opts.HashSalt}, nil
}

// NewFromZap wraps an existing zap logger.
func NewFromZap(z *zap.Logger) *Logger {
	return &Logger{sugar: z.Sugar()}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// Zap exposes the underlying logger for libraries that want one.
func (l *Logger) Zap() *zap.Logger {
	return l.sugar.Desugar()
}

func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}

func (l *Logger) Debug(msg string, kv ...any) {
	l.sugar.Debugw(msg, l.sanitize(kv)...)
}

func (l *Logger) Info(msg string, kv ...any) {
	l.sugar.Infow(msg, l.sanitize(kv)...)
}

func (l *Logger) Warn(msg string, kv ...any) {
	l.sugar.Warnw(msg, l.sanitize(kv)...)
}

func (l *Logger) Error(msg string, kv ...any) {
	l.sugar.Errorw(msg, l.sanitize(kv)...)
}

// With returns a child logger that always carries kv.
func (l *Logger) With(kv ...any) *Logger {
	return &Logger{sugar: l.sugar.With(l.sanitize(kv)...), salt: l.salt}
}

func (l *Logger) sanitize(kv []any) []any {
	if len(kv) == 0 {
		return kv
	}
	out := make([]any, 0, len(kv))
	for i := 0; i < len(kv); i += 2 {
		if i == len(kv)-1 {
			out = append(out, kv[i])
			break
		}
		key := fmt.Sprint(kv[i])
		out = append(out, key, l.sanitizeValue(strings.ToLower(key), kv[i+1]))
	}
	return out
}

func (l *Logger) sanitizeValue(key string, v any) any {
	switch {
	case isSecretKey(key):
		return "[REDACTED]"
	case isIdentityKey(key):
		return l.hash(fmt.Sprint(v))
	}
	return v
}

func isSecretKey(key string) bool {
	if key == "token" || strings.HasSuffix(key, "_token") {
		return true
	}
	for _, s := range []string{"authorization", "password", "secret", "api_key", "apikey", "email"} {
		if strings.Contains(key, s) {
			return true
		}
	}
	return false
}

// Student and profile ids belong to children; logs only carry a stable hash.
func isIdentityKey(key string) bool {
	return strings.HasSuffix(key, "student_id") || strings.HasSuffix(key, "profile_id") || key == "user_id"
}

func (l *Logger) hash(raw string) string {
	if raw == "" {
		return ""
	}
	h := sha256.New()
	h.Write([]byte(l.salt))
	h.Write([]byte(raw))
	return "hash:" + hex.EncodeToString(h.Sum(nil))[:12]
}
