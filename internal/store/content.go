package store

import (
	"context"
	"fmt"

	"github.com/kosmi-edu/kosmi/ent"
	"github.com/kosmi-edu/kosmi/ent/character"
	"github.com/kosmi-edu/kosmi/ent/course"
	"github.com/kosmi-edu/kosmi/ent/lesson"
	"github.com/kosmi-edu/kosmi/ent/lessonvariant"
	"github.com/kosmi-edu/kosmi/ent/topic"
	"github.com/kosmi-edu/kosmi/ent/world"
	"github.com/kosmi-edu/kosmi/internal/content"
)

type contentRepo struct {
	client *ent.Client
}

func (r *contentRepo) PublishedWorlds(ctx context.Context) ([]content.World, error) {
	rows, err := r.client.World.Query().
		Where(world.Published(true)).
		Order(ent.Asc(world.FieldPosition), ent.Asc(world.FieldTitle)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query worlds: %w", err)
	}
	out := make([]content.World, len(rows))
	for i, w := range rows {
		out[i] = toWorld(w)
	}
	return out, nil
}

func (r *contentRepo) WorldBySlug(ctx context.Context, slug string) (*content.World, error) {
	w, err := r.client.World.Query().
		Where(world.Slug(slug), world.Published(true)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, content.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get world %q: %w", slug, err)
	}
	out := toWorld(w)
	return &out, nil
}

func (r *contentRepo) Topics(ctx context.Context, worldID string) ([]content.Topic, error) {
	rows, err := r.client.Topic.Query().
		Where(topic.WorldID(worldID), topic.Published(true)).
		Order(ent.Asc(topic.FieldPosition), ent.Asc(topic.FieldTitle)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topics: %w", err)
	}
	out := make([]content.Topic, len(rows))
	for i, t := range rows {
		out[i] = content.Topic{
			ID:          t.ID,
			Slug:        t.Slug,
			WorldID:     t.WorldID,
			Title:       t.Title,
			Description: t.Description,
			Published:   t.Published,
			Position:    t.Position,
		}
	}
	return out, nil
}

func (r *contentRepo) Courses(ctx context.Context, topicID string) ([]content.Course, error) {
	rows, err := r.client.Course.Query().
		Where(course.TopicID(topicID), course.Published(true)).
		Order(ent.Asc(course.FieldPosition), ent.Asc(course.FieldTitle)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	out := make([]content.Course, len(rows))
	for i, c := range rows {
		out[i] = content.Course{
			ID:          c.ID,
			Slug:        c.Slug,
			TopicID:     c.TopicID,
			Title:       c.Title,
			Description: c.Description,
			GradeMin:    c.GradeMin,
			GradeMax:    c.GradeMax,
			Published:   c.Published,
			Position:    c.Position,
		}
	}
	return out, nil
}

func (r *contentRepo) Lessons(ctx context.Context, courseID string) ([]content.Lesson, error) {
	rows, err := r.client.Lesson.Query().
		Where(lesson.CourseID(courseID)).
		Order(ent.Asc(lesson.FieldPosition), ent.Asc(lesson.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lessons: %w", err)
	}
	out := make([]content.Lesson, len(rows))
	for i, l := range rows {
		out[i] = toLesson(l, nil)
	}
	return out, nil
}

func (r *contentRepo) Lesson(ctx context.Context, id string) (*content.Lesson, error) {
	l, err := r.client.Lesson.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, content.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get lesson %q: %w", id, err)
	}

	variants, err := r.client.LessonVariant.Query().
		Where(lessonvariant.LessonID(id)).
		Order(ent.Asc(lessonvariant.FieldPosition), ent.Asc(lessonvariant.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query variants of %q: %w", id, err)
	}

	out := toLesson(l, variants)
	return &out, nil
}

func (r *contentRepo) Character(ctx context.Context, id string) (*content.Character, error) {
	c, err := r.client.Character.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, content.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get character %q: %w", id, err)
	}
	out := toCharacter(c)
	return &out, nil
}

func (r *contentRepo) Characters(ctx context.Context, ids []string) ([]content.Character, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.client.Character.Query().
		Where(character.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query characters: %w", err)
	}
	byID := make(map[string]*ent.Character, len(rows))
	for _, c := range rows {
		byID[c.ID] = c
	}
	out := make([]content.Character, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			out = append(out, toCharacter(c))
		}
	}
	return out, nil
}

func (r *contentRepo) Import(ctx context.Context, b *content.Bundle) error {
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		for _, w := range b.Worlds {
			if err := importWorld(ctx, tx, w); err != nil {
				return err
			}
		}
		for _, t := range b.Topics {
			if err := importTopic(ctx, tx, t); err != nil {
				return err
			}
		}
		for _, c := range b.Courses {
			if err := importCourse(ctx, tx, c); err != nil {
				return err
			}
		}
		for _, c := range b.Characters {
			if err := importCharacter(ctx, tx, c); err != nil {
				return err
			}
		}
		for _, l := range b.Lessons {
			if err := importLesson(ctx, tx, l); err != nil {
				return err
			}
		}
		return nil
	})
}

func importWorld(ctx context.Context, tx *ent.Tx, w content.World) error {
	exists, err := tx.World.Query().Where(world.ID(w.ID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("import world %q: %w", w.ID, err)
	}
	if exists {
		err = tx.World.UpdateOneID(w.ID).
			SetSlug(w.Slug).
			SetTitle(w.Title).
			SetDescription(w.Description).
			SetCoverImage(w.CoverImage).
			SetPublished(w.Published).
			SetPosition(w.Position).
			Exec(ctx)
	} else {
		err = tx.World.Create().
			SetID(w.ID).
			SetSlug(w.Slug).
			SetTitle(w.Title).
			SetDescription(w.Description).
			SetCoverImage(w.CoverImage).
			SetPublished(w.Published).
			SetPosition(w.Position).
			Exec(ctx)
	}
	if err != nil {
		return fmt.Errorf("import world %q: %w", w.ID, err)
	}
	return nil
}

func importTopic(ctx context.Context, tx *ent.Tx, t content.Topic) error {
	exists, err := tx.Topic.Query().Where(topic.ID(t.ID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("import topic %q: %w", t.ID, err)
	}
	if exists {
		err = tx.Topic.UpdateOneID(t.ID).
			SetSlug(t.Slug).
			SetWorldID(t.WorldID).
			SetTitle(t.Title).
			SetDescription(t.Description).
			SetPublished(t.Published).
			SetPosition(t.Position).
			Exec(ctx)
	} else {
		err = tx.Topic.Create().
			SetID(t.ID).
			SetSlug(t.Slug).
			SetWorldID(t.WorldID).
			SetTitle(t.Title).
			SetDescription(t.Description).
			SetPublished(t.Published).
			SetPosition(t.Position).
			Exec(ctx)
	}
	if err != nil {
		return fmt.Errorf("import topic %q: %w", t.ID, err)
	}
	return nil
}

func importCourse(ctx context.Context, tx *ent.Tx, c content.Course) error {
	gradeMin, gradeMax := c.GradeMin, c.GradeMax
	if gradeMin == 0 {
		gradeMin = content.MinGrade
	}
	if gradeMax == 0 {
		gradeMax = content.MaxGrade
	}
	exists, err := tx.Course.Query().Where(course.ID(c.ID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("import course %q: %w", c.ID, err)
	}
	if exists {
		err = tx.Course.UpdateOneID(c.ID).
			SetSlug(c.Slug).
			SetTopicID(c.TopicID).
			SetTitle(c.Title).
			SetDescription(c.Description).
			SetGradeMin(gradeMin).
			SetGradeMax(gradeMax).
			SetPublished(c.Published).
			SetPosition(c.Position).
			Exec(ctx)
	} else {
		err = tx.Course.Create().
			SetID(c.ID).
			SetSlug(c.Slug).
			SetTopicID(c.TopicID).
			SetTitle(c.Title).
			SetDescription(c.Description).
			SetGradeMin(gradeMin).
			SetGradeMax(gradeMax).
			SetPublished(c.Published).
			SetPosition(c.Position).
			Exec(ctx)
	}
	if err != nil {
		return fmt.Errorf("import course %q: %w", c.ID, err)
	}
	return nil
}

func importCharacter(ctx context.Context, tx *ent.Tx, c content.Character) error {
	exists, err := tx.Character.Query().Where(character.ID(c.ID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("import character %q: %w", c.ID, err)
	}
	if exists {
		err = tx.Character.UpdateOneID(c.ID).
			SetSlug(c.Slug).
			SetWorldID(c.WorldID).
			SetName(c.Name).
			SetPersonaDescription(c.PersonaDescription).
			SetToneGuide(c.ToneGuide).
			SetKnowledgeScope(c.KnowledgeScope).
			SetOffTopicRedirect(c.OffTopicRedirect).
			SetVoiceID(c.VoiceID).
			SetSystemPrompt(c.SystemPrompt).
			SetAvatar(c.Avatar).
			Exec(ctx)
	} else {
		err = tx.Character.Create().
			SetID(c.ID).
			SetSlug(c.Slug).
			SetWorldID(c.WorldID).
			SetName(c.Name).
			SetPersonaDescription(c.PersonaDescription).
			SetToneGuide(c.ToneGuide).
			SetKnowledgeScope(c.KnowledgeScope).
			SetOffTopicRedirect(c.OffTopicRedirect).
			SetVoiceID(c.VoiceID).
			SetSystemPrompt(c.SystemPrompt).
			SetAvatar(c.Avatar).
			Exec(ctx)
	}
	if err != nil {
		return fmt.Errorf("import character %q: %w", c.ID, err)
	}
	return nil
}

func importLesson(ctx context.Context, tx *ent.Tx, l content.Lesson) error {
	exists, err := tx.Lesson.Query().Where(lesson.ID(l.ID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("import lesson %q: %w", l.ID, err)
	}
	if exists {
		err = tx.Lesson.UpdateOneID(l.ID).
			SetCourseID(l.CourseID).
			SetTitle(l.Title).
			SetPosition(l.Position).
			SetCharacters(l.CharacterIDs).
			Exec(ctx)
	} else {
		err = tx.Lesson.Create().
			SetID(l.ID).
			SetCourseID(l.CourseID).
			SetTitle(l.Title).
			SetPosition(l.Position).
			SetCharacters(l.CharacterIDs).
			Exec(ctx)
	}
	if err != nil {
		return fmt.Errorf("import lesson %q: %w", l.ID, err)
	}

	if _, err := tx.LessonVariant.Delete().Where(lessonvariant.LessonID(l.ID)).Exec(ctx); err != nil {
		return fmt.Errorf("replace variants of %q: %w", l.ID, err)
	}
	for i, v := range l.Variants {
		err := tx.LessonVariant.Create().
			SetLessonID(l.ID).
			SetTargetGrade(v.TargetGrade).
			SetPosition(i).
			SetIntroText(v.IntroText).
			SetCoreContent(v.Core.Content).
			SetCoreImage(v.Core.Image).
			SetCoreImageCredit(v.Core.ImageCredit).
			SetDepthContent(v.Depth.Content).
			SetDepthImage(v.Depth.Image).
			SetDepthImageCredit(v.Depth.ImageCredit).
			SetReflectionQuestion(v.ReflectionQuestion).
			SetPointsBase(v.PointsBase).
			SetPointsDepthBonus(v.PointsDepthBonus).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("import variant %d of %q: %w", v.TargetGrade, l.ID, err)
		}
	}
	return nil
}

func toWorld(w *ent.World) content.World {
	return content.World{
		ID:          w.ID,
		Slug:        w.Slug,
		Title:       w.Title,
		Description: w.Description,
		CoverImage:  w.CoverImage,
		Published:   w.Published,
		Position:    w.Position,
	}
}

func toLesson(l *ent.Lesson, variants []*ent.LessonVariant) content.Lesson {
	out := content.Lesson{
		ID:           l.ID,
		CourseID:     l.CourseID,
		Title:        l.Title,
		Position:     l.Position,
		CharacterIDs: l.Characters,
	}
	for _, v := range variants {
		out.Variants = append(out.Variants, content.Variant{
			TargetGrade: v.TargetGrade,
			IntroText:   v.IntroText,
			Core: content.Section{
				Content:     v.CoreContent,
				Image:       v.CoreImage,
				ImageCredit: v.CoreImageCredit,
			},
			Depth: content.Section{
				Content:     v.DepthContent,
				Image:       v.DepthImage,
				ImageCredit: v.DepthImageCredit,
			},
			ReflectionQuestion: v.ReflectionQuestion,
			PointsBase:         v.PointsBase,
			PointsDepthBonus:   v.PointsDepthBonus,
		})
	}
	return out
}

func toCharacter(c *ent.Character) content.Character {
	return content.Character{
		ID:                 c.ID,
		Slug:               c.Slug,
		WorldID:            c.WorldID,
		Name:               c.Name,
		PersonaDescription: c.PersonaDescription,
		ToneGuide:          c.ToneGuide,
		KnowledgeScope:     c.KnowledgeScope,
		OffTopicRedirect:   c.OffTopicRedirect,
		VoiceID:            c.VoiceID,
		SystemPrompt:       c.SystemPrompt,
		Avatar:             c.Avatar,
	}
}
