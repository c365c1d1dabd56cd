package content

import "context"

// Source is read access to published content.
type Source interface {
	PublishedWorlds(ctx context.Context) ([]World, error)
	WorldBySlug(ctx context.Context, slug string) (*World, error)
	Topics(ctx context.Context, worldID string) ([]Topic, error)
	Courses(ctx context.Context, topicID string) ([]Course, error)
	Lessons(ctx context.Context, courseID string) ([]Lesson, error)

	// Lesson returns the lesson with its variants in definition order.
	Lesson(ctx context.Context, id string) (*Lesson, error)

	// Character returns the persona including its system prompt.
	Character(ctx context.Context, id string) (*Character, error)

	// Characters resolves ids in order, silently skipping unknown ones.
	Characters(ctx context.Context, ids []string) ([]Character, error)
}
