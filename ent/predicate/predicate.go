// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Character is the predicate function for character builders.
type Character func(*sql.Selector)

// Course is the predicate function for course builders.
type Course func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Lesson is the predicate function for lesson builders.
type Lesson func(*sql.Selector)

// LessonProgress is the predicate function for lessonprogress builders.
type LessonProgress func(*sql.Selector)

// LessonVariant is the predicate function for lessonvariant builders.
type LessonVariant func(*sql.Selector)

// ParentChildLink is the predicate function for parentchildlink builders.
type ParentChildLink func(*sql.Selector)

// PointsEvent is the predicate function for pointsevent builders.
type PointsEvent func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)

// World is the predicate function for world builders.
type World func(*sql.Selector)
