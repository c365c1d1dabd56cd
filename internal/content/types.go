package content

import "errors"

// ErrNotFound is returned when a content document does not exist or is not
// visible to students.
var ErrNotFound = errors.New("content not found")

// ErrNoVariants is returned when a lesson has no variant to play.
var ErrNoVariants = errors.New("lesson has no variants")

// MinGrade and MaxGrade bound the Dutch primary-school years (groep).
const (
	MinGrade = 1
	MaxGrade = 8
)

// World is the top level of the content hierarchy.
type World struct {
	ID          string `json:"id" yaml:"id"`
	Slug        string `json:"slug" yaml:"slug"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description"`
	CoverImage  string `json:"coverImage,omitempty" yaml:"cover_image"`
	Published   bool   `json:"published" yaml:"published"`
	Position    int    `json:"position" yaml:"position"`
}

// Topic groups courses inside a world.
type Topic struct {
	ID          string `json:"id" yaml:"id"`
	Slug        string `json:"slug" yaml:"slug"`
	WorldID     string `json:"worldId" yaml:"world"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description"`
	Published   bool   `json:"published" yaml:"published"`
	Position    int    `json:"position" yaml:"position"`
}

// Course is an ordered series of lessons for a grade range.
type Course struct {
	ID          string `json:"id" yaml:"id"`
	Slug        string `json:"slug" yaml:"slug"`
	TopicID     string `json:"topicId" yaml:"topic"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description"`
	GradeMin    int    `json:"targetGroepMin" yaml:"grade_min"`
	GradeMax    int    `json:"targetGroepMax" yaml:"grade_max"`
	Published   bool   `json:"published" yaml:"published"`
	Position    int    `json:"position" yaml:"position"`
}

// Suits reports whether the course targets the given grade. A zero bound is
// open.
func (c Course) Suits(grade int) bool {
	if c.GradeMin > 0 && grade < c.GradeMin {
		return false
	}
	if c.GradeMax > 0 && grade > c.GradeMax {
		return false
	}
	return true
}

// Lesson is one unit of a course, played through a grade-specific Variant.
type Lesson struct {
	ID           string    `json:"id" yaml:"id"`
	CourseID     string    `json:"courseId" yaml:"course"`
	Title        string    `json:"title" yaml:"title"`
	Position     int       `json:"order" yaml:"order"`
	CharacterIDs []string  `json:"characters" yaml:"characters"`
	Variants     []Variant `json:"variants,omitempty" yaml:"variants"`
}

// Section is a block of rich text with an optional illustration.
type Section struct {
	Content     string `json:"content" yaml:"content"`
	Image       string `json:"image,omitempty" yaml:"image"`
	ImageCredit string `json:"imageCredit,omitempty" yaml:"image_credit"`
}

// Variant renders a lesson for one grade.
type Variant struct {
	TargetGrade        int     `json:"targetGroep" yaml:"grade"`
	IntroText          string  `json:"introText" yaml:"intro"`
	Core               Section `json:"core" yaml:"core"`
	Depth              Section `json:"depth" yaml:"depth"`
	ReflectionQuestion string  `json:"reflectionQuestion" yaml:"reflection_question"`
	PointsBase         int     `json:"pointsBase" yaml:"points_base"`
	PointsDepthBonus   int     `json:"pointsDepthBonus" yaml:"points_depth_bonus"`
}

// Default point values for variants that do not set their own.
const (
	DefaultPointsBase       = 100
	DefaultPointsDepthBonus = 50
)

// Character is a chat companion persona. SystemPrompt is server-side only.
type Character struct {
	ID                 string `json:"id" yaml:"id"`
	Slug               string `json:"slug" yaml:"slug"`
	WorldID            string `json:"worldId,omitempty" yaml:"world"`
	Name               string `json:"name" yaml:"name"`
	PersonaDescription string `json:"personaDescription,omitempty" yaml:"persona"`
	ToneGuide          string `json:"toneGuide,omitempty" yaml:"tone"`
	KnowledgeScope     string `json:"knowledgeScope,omitempty" yaml:"knowledge_scope"`
	OffTopicRedirect   string `json:"offTopicRedirect,omitempty" yaml:"off_topic_redirect"`
	VoiceID            string `json:"voiceId,omitempty" yaml:"voice_id"`
	SystemPrompt       string `json:"-" yaml:"system_prompt"`
	Avatar             string `json:"avatar,omitempty" yaml:"avatar"`
}
