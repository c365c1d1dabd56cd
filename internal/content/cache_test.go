package content

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type memorySource struct {
	lessons    map[string]Lesson
	characters map[string]Character
	lessonHits int
}

func (m *memorySource) PublishedWorlds(context.Context) ([]World, error)          { return nil, nil }
func (m *memorySource) WorldBySlug(context.Context, string) (*World, error)       { return nil, ErrNotFound }
func (m *memorySource) Topics(context.Context, string) ([]Topic, error)           { return nil, nil }
func (m *memorySource) Courses(context.Context, string) ([]Course, error)         { return nil, nil }
func (m *memorySource) Lessons(context.Context, string) ([]Lesson, error)         { return nil, nil }
func (m *memorySource) Characters(context.Context, []string) ([]Character, error) { return nil, nil }

func (m *memorySource) Lesson(_ context.Context, id string) (*Lesson, error) {
	m.lessonHits++
	l, ok := m.lessons[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &l, nil
}

func (m *memorySource) Character(_ context.Context, id string) (*Character, error) {
	c, ok := m.characters[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

// unreachableRedis points at a closed port so every command fails fast.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestCachedSourceDegradesWithoutRedis(t *testing.T) {
	src := &memorySource{
		lessons: map[string]Lesson{"wat-is-een-insect": insectLesson()},
		characters: map[string]Character{
			"kever": {ID: "kever", Name: "Professor Kever", SystemPrompt: "Je bent een kever."},
		},
	}
	c := NewCachedSource(src, unreachableRedis(t), 0, nil)
	ctx := context.Background()

	l, err := c.Lesson(ctx, "wat-is-een-insect")
	require.NoError(t, err)
	require.Equal(t, "Wat is een insect?", l.Title)
	require.Equal(t, 1, src.lessonHits)

	ch, err := c.Character(ctx, "kever")
	require.NoError(t, err)
	require.Equal(t, "Je bent een kever.", ch.SystemPrompt)
}

func TestCachedSourceCharactersSkipsUnknown(t *testing.T) {
	src := &memorySource{characters: map[string]Character{
		"a": {ID: "a", Name: "A"},
		"c": {ID: "c", Name: "C"},
	}}
	c := NewCachedSource(src, unreachableRedis(t), time.Minute, nil)

	got, err := c.Characters(context.Background(), []string{"c", "b", "a"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "c", got[0].ID)
	require.Equal(t, "a", got[1].ID)
}

func TestCachedSourcePropagatesNotFound(t *testing.T) {
	c := NewCachedSource(&memorySource{}, unreachableRedis(t), 0, nil)
	_, err := c.Lesson(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
