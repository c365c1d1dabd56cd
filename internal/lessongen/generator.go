// Package lessongen drafts grade-specific lesson variants with an LLM.
package lessongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/llm"
	"github.com/kosmi-edu/kosmi/internal/logger"
)

// ErrInvalidInput is returned for an empty topic or unusable grade list.
var ErrInvalidInput = errors.New("topic en groepLevels zijn verplicht")

// Input describes what to generate.
type Input struct {
	Topic  string
	Grades []int
}

// Generator drafts lesson variants.
type Generator struct {
	provider llm.Provider
	cfg      Config
	log      *logger.Logger
}

// New creates a Generator.
func New(provider llm.Provider, cfg Config, log *logger.Logger) *Generator {
	if log == nil {
		log = logger.Nop()
	}
	return &Generator{provider: provider, cfg: cfg, log: log}
}

type variantOutput struct {
	IntroText          string `json:"introText"`
	CoreContent        string `json:"coreContent"`
	DepthContent       string `json:"depthContent"`
	ReflectionQuestion string `json:"reflectionQuestion"`
	PointsBase         int    `json:"pointsBase"`
	PointsDepthBonus   int    `json:"pointsDepthBonus"`
}

// Generate drafts one variant per requested grade, in request order.
// Duplicate grades are generated once. Any failed grade fails the request.
func (g *Generator) Generate(ctx context.Context, in Input) ([]content.Variant, error) {
	grades, err := g.check(in)
	if err != nil {
		return nil, err
	}
	ctx = llm.WithPurpose(ctx, "lesson-generate")

	variants := make([]content.Variant, 0, len(grades))
	for _, grade := range grades {
		v, err := g.generateOne(ctx, strings.TrimSpace(in.Topic), grade)
		if err != nil {
			return nil, fmt.Errorf("groep %d: %w", grade, err)
		}
		variants = append(variants, v)
	}
	g.log.Info("lesson variants generated", "topic", in.Topic, "grades", grades)
	return variants, nil
}

func (g *Generator) check(in Input) ([]int, error) {
	if strings.TrimSpace(in.Topic) == "" || len(in.Grades) == 0 {
		return nil, ErrInvalidInput
	}
	var grades []int
	for _, gr := range in.Grades {
		if gr < content.MinGrade || gr > content.MaxGrade {
			return nil, fmt.Errorf("%w: groep %d bestaat niet", ErrInvalidInput, gr)
		}
		if !slices.Contains(grades, gr) {
			grades = append(grades, gr)
		}
	}
	if g.cfg.MaxGrades > 0 && len(grades) > g.cfg.MaxGrades {
		return nil, fmt.Errorf("%w: at most %d grades", ErrInvalidInput, g.cfg.MaxGrades)
	}
	return grades, nil
}

func (g *Generator) generateOne(ctx context.Context, topic string, grade int) (content.Variant, error) {
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{llm.UserMessage(buildUserMessage(topic, grade))},
		Schema:      VariantSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return content.Variant{}, err
	}
	if err := llm.ValidateJSON(VariantSchema, resp.Content); err != nil {
		return content.Variant{}, err
	}

	var out variantOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return content.Variant{}, fmt.Errorf("parse variant: %w", err)
	}

	v := content.Variant{
		TargetGrade:        grade,
		IntroText:          out.IntroText,
		Core:               content.Section{Content: out.CoreContent},
		Depth:              content.Section{Content: out.DepthContent},
		ReflectionQuestion: out.ReflectionQuestion,
		PointsBase:         out.PointsBase,
		PointsDepthBonus:   out.PointsDepthBonus,
	}
	if v.PointsBase == 0 {
		v.PointsBase = content.DefaultPointsBase
	}
	if v.PointsDepthBonus == 0 {
		v.PointsDepthBonus = content.DefaultPointsDepthBonus
	}
	return v, nil
}

// Draft wraps generated variants in a bundle holding one lesson, ready to be
// reviewed and imported.
func Draft(lessonID, courseID, title string, variants []content.Variant) *content.Bundle {
	return &content.Bundle{
		Lessons: []content.Lesson{{
			ID:       lessonID,
			CourseID: courseID,
			Title:    title,
			Variants: variants,
		}},
	}
}
