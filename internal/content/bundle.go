package content

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Bundle is a set of content documents, as authored in a YAML seed file or
// produced by lesson generation.
type Bundle struct {
	Worlds     []World     `yaml:"worlds"`
	Topics     []Topic     `yaml:"topics"`
	Courses    []Course    `yaml:"courses"`
	Lessons    []Lesson    `yaml:"lessons"`
	Characters []Character `yaml:"characters"`
}

// LoadBundleFile reads a YAML bundle from path.
func LoadBundleFile(path string) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bundle: %w", err)
	}
	defer f.Close()
	return LoadBundle(f)
}

// LoadBundle decodes, normalizes and validates a YAML bundle.
func LoadBundle(r io.Reader) (*Bundle, error) {
	var b Bundle
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		if errors.Is(err, io.EOF) {
			return &b, nil
		}
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	b.Normalize()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// WriteYAML encodes the bundle as YAML.
func (b *Bundle) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}
	return enc.Close()
}

// Normalize fills defaults: slugs fall back to ids, and unset point values
// take the standard amounts.
func (b *Bundle) Normalize() {
	for i := range b.Worlds {
		if b.Worlds[i].Slug == "" {
			b.Worlds[i].Slug = b.Worlds[i].ID
		}
	}
	for i := range b.Topics {
		if b.Topics[i].Slug == "" {
			b.Topics[i].Slug = b.Topics[i].ID
		}
	}
	for i := range b.Courses {
		if b.Courses[i].Slug == "" {
			b.Courses[i].Slug = b.Courses[i].ID
		}
	}
	for i := range b.Characters {
		if b.Characters[i].Slug == "" {
			b.Characters[i].Slug = b.Characters[i].ID
		}
	}
	for i := range b.Lessons {
		for j := range b.Lessons[i].Variants {
			v := &b.Lessons[i].Variants[j]
			if v.PointsBase == 0 {
				v.PointsBase = DefaultPointsBase
			}
			if v.PointsDepthBonus == 0 {
				v.PointsDepthBonus = DefaultPointsDepthBonus
			}
		}
	}
}

// ValidationError lists every problem found in a bundle.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid bundle: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid bundle: %s (and %d more)", e.Problems[0], len(e.Problems)-1)
}

// Validate checks ids, references within the bundle and variant grades.
// References to documents outside the bundle are not checked.
func (b *Bundle) Validate() error {
	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	worlds := make(map[string]bool)
	for _, w := range b.Worlds {
		if w.ID == "" || w.Title == "" {
			addf("world %q: id and title are required", w.ID)
		}
		worlds[w.ID] = true
	}
	topics := make(map[string]bool)
	for _, t := range b.Topics {
		if t.ID == "" || t.Title == "" {
			addf("topic %q: id and title are required", t.ID)
		}
		if len(worlds) > 0 && !worlds[t.WorldID] {
			addf("topic %q: unknown world %q", t.ID, t.WorldID)
		}
		topics[t.ID] = true
	}
	courses := make(map[string]bool)
	for _, c := range b.Courses {
		if c.ID == "" || c.Title == "" {
			addf("course %q: id and title are required", c.ID)
		}
		if len(topics) > 0 && !topics[c.TopicID] {
			addf("course %q: unknown topic %q", c.ID, c.TopicID)
		}
		if c.GradeMin > 0 && c.GradeMax > 0 && c.GradeMin > c.GradeMax {
			addf("course %q: grade_min %d above grade_max %d", c.ID, c.GradeMin, c.GradeMax)
		}
		courses[c.ID] = true
	}
	characters := make(map[string]bool)
	for _, ch := range b.Characters {
		if ch.ID == "" || ch.Name == "" {
			addf("character %q: id and name are required", ch.ID)
		}
		characters[ch.ID] = true
	}
	for _, l := range b.Lessons {
		if l.ID == "" || l.Title == "" {
			addf("lesson %q: id and title are required", l.ID)
		}
		if len(courses) > 0 && !courses[l.CourseID] {
			addf("lesson %q: unknown course %q", l.ID, l.CourseID)
		}
		if len(characters) > 0 {
			for _, id := range l.CharacterIDs {
				if !characters[id] {
					addf("lesson %q: unknown character %q", l.ID, id)
				}
			}
		}
		seen := make(map[int]bool)
		for _, v := range l.Variants {
			if v.TargetGrade < MinGrade || v.TargetGrade > MaxGrade {
				addf("lesson %q: variant grade %d outside %d-%d", l.ID, v.TargetGrade, MinGrade, MaxGrade)
			}
			if seen[v.TargetGrade] {
				addf("lesson %q: duplicate variant for grade %d", l.ID, v.TargetGrade)
			}
			seen[v.TargetGrade] = true
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
