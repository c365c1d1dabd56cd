package api

import (
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kosmi-edu/kosmi/internal/auth"
	"github.com/kosmi-edu/kosmi/internal/logger"
	"github.com/kosmi-edu/kosmi/internal/store"
)

const (
	headerRequestID = "X-Request-Id"
	ctxProfile      = "kosmi.profile"
	ctxRequestID    = "kosmi.request_id"
)

// RequestID tags every request with an id, reusing a caller-supplied one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(headerRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Writer.Header().Set(headerRequestID, id)
		c.Next()
	}
}

// RequestLogger logs one line per request at a level matching the status.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString(ctxRequestID),
		}
		if p, ok := profileFrom(c); ok {
			fields = append(fields, "profile_id", p.ID)
		}
		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}

// CORS allows the web front end to call the API.
func CORS(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", headerRequestID},
		ExposeHeaders:    []string{headerRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// Authenticate verifies the bearer token and loads the caller's profile.
func Authenticate(v *auth.Verifier, profiles store.ProfileRepo, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := v.Verify(auth.BearerToken(c.GetHeader("Authorization")))
		if err != nil {
			respondError(c, log, err)
			return
		}
		p, err := profiles.Get(c.Request.Context(), id)
		if err != nil {
			// A valid token for a deleted profile is still not a session.
			if errors.Is(err, store.ErrNotFound) {
				err = auth.ErrInvalidToken
			}
			respondError(c, log, err)
			return
		}
		c.Set(ctxProfile, *p)
		c.Request = c.Request.WithContext(auth.WithProfileID(c.Request.Context(), id))
		c.Next()
	}
}

// RequireRole rejects callers whose role is not listed.
func RequireRole(roles ...store.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := profileFrom(c)
		if !ok || !slices.Contains(roles, p.Role) {
			forbid(c)
			return
		}
		c.Next()
	}
}

// RequireStudent admits students with a grade, the only profiles that can
// play lessons.
func RequireStudent() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := profileFrom(c)
		if !ok || p.Role != store.RoleStudent || p.Grade == 0 {
			forbid(c)
			return
		}
		c.Next()
	}
}

func forbid(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, ErrorEnvelope{Error: APIError{
		Message: "Geen toegang",
		Code:    CodeForbidden,
	}})
}

func profileFrom(c *gin.Context) (store.Profile, bool) {
	v, ok := c.Get(ctxProfile)
	if !ok {
		return store.Profile{}, false
	}
	p, ok := v.(store.Profile)
	return p, ok
}

// currentProfile is for handlers behind Authenticate.
func currentProfile(c *gin.Context) store.Profile {
	p, _ := profileFrom(c)
	return p
}
