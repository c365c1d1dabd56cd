package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kosmi-edu/kosmi/internal/logger"
)

// Cache key prefixes and default lifetime.
const (
	PrefixLesson    = "kosmi:lesson:"
	PrefixCharacter = "kosmi:character:"

	DefaultCacheTTL = 10 * time.Minute
)

// CachedSource is a read-through Redis cache in front of a Source for the
// documents read on every lesson visit and chat message. Redis failures
// degrade to reading the underlying Source.
type CachedSource struct {
	Source
	rdb *redis.Client
	ttl time.Duration
	log *logger.Logger
}

// NewCachedSource wraps src. A zero ttl uses DefaultCacheTTL.
func NewCachedSource(src Source, rdb *redis.Client, ttl time.Duration, log *logger.Logger) *CachedSource {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CachedSource{Source: src, rdb: rdb, ttl: ttl, log: log.With("component", "content_cache")}
}

// Lesson returns the lesson from cache, loading it from the source on a miss.
func (c *CachedSource) Lesson(ctx context.Context, id string) (*Lesson, error) {
	var l Lesson
	if c.get(ctx, PrefixLesson+id, &l) {
		return &l, nil
	}
	fresh, err := c.Source.Lesson(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, PrefixLesson+id, fresh)
	return fresh, nil
}

// Character returns the persona from cache, loading it on a miss.
func (c *CachedSource) Character(ctx context.Context, id string) (*Character, error) {
	var ch cachedCharacter
	if c.get(ctx, PrefixCharacter+id, &ch) {
		out := Character(ch)
		return &out, nil
	}
	fresh, err := c.Source.Character(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, PrefixCharacter+id, cachedCharacter(*fresh))
	return fresh, nil
}

// Characters resolves each id through the cache.
func (c *CachedSource) Characters(ctx context.Context, ids []string) ([]Character, error) {
	out := make([]Character, 0, len(ids))
	for _, id := range ids {
		ch, err := c.Character(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *ch)
	}
	return out, nil
}

// Invalidate drops cached lessons and characters, e.g. after a seed import.
func (c *CachedSource) Invalidate(ctx context.Context, lessonIDs, characterIDs []string) error {
	keys := make([]string, 0, len(lessonIDs)+len(characterIDs))
	for _, id := range lessonIDs {
		keys = append(keys, PrefixLesson+id)
	}
	for _, id := range characterIDs {
		keys = append(keys, PrefixCharacter+id)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidate content cache: %w", err)
	}
	return nil
}

func (c *CachedSource) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn("cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (c *CachedSource) set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.log.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("cache write failed", "key", key, "error", err)
	}
}

// cachedCharacter keeps the system prompt, which Character omits from JSON.
type cachedCharacter struct {
	ID                 string `json:"id"`
	Slug               string `json:"slug"`
	WorldID            string `json:"worldId"`
	Name               string `json:"name"`
	PersonaDescription string `json:"personaDescription"`
	ToneGuide          string `json:"toneGuide"`
	KnowledgeScope     string `json:"knowledgeScope"`
	OffTopicRedirect   string `json:"offTopicRedirect"`
	VoiceID            string `json:"voiceId"`
	SystemPrompt       string `json:"systemPrompt"`
	Avatar             string `json:"avatar"`
}
