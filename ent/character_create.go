// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kosmi-edu/kosmi/ent/character"
)

// CharacterCreate is the builder for creating a Character entity.
type CharacterCreate struct {
	config
	mutation *CharacterMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *CharacterCreate) SetCreatedAt(v time.Time) *CharacterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CharacterCreate) SetNillableCreatedAt(v *time.Time) *CharacterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CharacterCreate) SetUpdatedAt(v time.Time) *CharacterCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CharacterCreate) SetNillableUpdatedAt(v *time.Time) *CharacterCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSlug sets the "slug" field.
func (_c *CharacterCreate) SetSlug(v string) *CharacterCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetWorldID sets the "world_id" field.
func (_c *CharacterCreate) SetWorldID(v string) *CharacterCreate {
	_c.mutation.SetWorldID(v)
	return _c
}

// SetNillableWorldID sets the "world_id" field if the given value is not nil.
func (_c *CharacterCreate) SetNillableWorldID(v *string) *CharacterCreate {
	if v != nil {
		_c.SetWorldID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *CharacterCreate) SetName(v string) *CharacterCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPersonaDescription sets the "persona_description" field.
func (_c *CharacterCreate) SetPersonaDescription(v string) *CharacterCreate {
	_c.mutation.SetPersonaDescription(v)
	return _c
}

// SetNillablePersonaDescription sets the "persona_description" field if the given value is not nil.
func (_c *CharacterCreate) SetNillablePersonaDescription(v *string) *CharacterCreate {
	if v != nil {
		_c.SetPersonaDescription(*v)
	}
	return _c
}

// SetToneGuide sets the "tone_guide" field.
func (_c *CharacterCreate) SetToneGuide(v string) *CharacterCreate {
	_c.mutation.SetToneGuide(v)
	return _c
}

// SetNillableToneGuide sets the "tone_guide" field if the given value is not nil.
func (_c *CharacterCreate) SetNillableToneGuide(v *string) *CharacterCreate {
	if v != nil {
		_c.SetToneGuide(*v)
	}
	return _c
}

// SetKnowledgeScope sets the "knowledge_scope" field.
func (_c *CharacterCreate) SetKnowledgeScope(v string) *CharacterCreate {
	_c.mutation.SetKnowledgeScope(v)
	return _c
}

// SetNillableKnowledgeScope sets the "knowledge_scope" field if the given value is not nil.
func (_c *CharacterCreate) SetNillableKnowledgeScope(v *string) *CharacterCreate {
	if v != nil {
		_c.SetKnowledgeScope(*v)
	}
	return _c
}

// SetOffTopicRedirect sets the "off_topic_redirect" field.
func (_c *CharacterCreate) SetOffTopicRedirect(v string) *CharacterCreate {
	_c.mutation.SetOffTopicRedirect(v)
	return _c
}

// SetNillableOffTopicRedirect sets the "off_topic_redirect" field if the given value is not nil.
func (_c *CharacterCreate) SetNillableOffTopicRedirect(v *string) *CharacterCreate {
	if v != nil {
		_c.SetOffTopicRedirect(*v)
	}
	return _c
}

// SetVoiceID sets the "voice_id" field.
func (_c *CharacterCreate) SetVoiceID(v string) *CharacterCreate {
	_c.mutation.SetVoiceID(v)
	return _c
}

// SetNillableVoiceID sets the "voice_id" field if the given value is not nil.
func (_c *CharacterCreate) SetNillableVoiceID(v *string) *CharacterCreate {
	if v != nil {
		_c.SetVoiceID(*v)
	}
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *CharacterCreate) SetSystemPrompt(v string) *CharacterCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_c *CharacterCreate) SetNillableSystemPrompt(v *string) *CharacterCreate {
	if v != nil {
		_c.SetSystemPrompt(*v)
	}
	return _c
}

// SetAvatar sets the "avatar" field.
func (_c *CharacterCreate) SetAvatar(v string) *CharacterCreate {
	_c.mutation.SetAvatar(v)
	return _c
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_c *CharacterCreate) SetNillableAvatar(v *string) *CharacterCreate {
	if v != nil {
		_c.SetAvatar(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CharacterCreate) SetID(v string) *CharacterCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CharacterMutation object of the builder.
func (_c *CharacterCreate) Mutation() *CharacterMutation {
	return _c.mutation
}

// Save creates the Character in the database.
func (_c *CharacterCreate) Save(ctx context.Context) (*Character, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CharacterCreate) SaveX(ctx context.Context) *Character {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CharacterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CharacterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CharacterCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := character.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := character.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.WorldID(); !ok {
		v := character.DefaultWorldID
		_c.mutation.SetWorldID(v)
	}
	if _, ok := _c.mutation.PersonaDescription(); !ok {
		v := character.DefaultPersonaDescription
		_c.mutation.SetPersonaDescription(v)
	}
	if _, ok := _c.mutation.ToneGuide(); !ok {
		v := character.DefaultToneGuide
		_c.mutation.SetToneGuide(v)
	}
	if _, ok := _c.mutation.KnowledgeScope(); !ok {
		v := character.DefaultKnowledgeScope
		_c.mutation.SetKnowledgeScope(v)
	}
	if _, ok := _c.mutation.OffTopicRedirect(); !ok {
		v := character.DefaultOffTopicRedirect
		_c.mutation.SetOffTopicRedirect(v)
	}
	if _, ok := _c.mutation.VoiceID(); !ok {
		v := character.DefaultVoiceID
		_c.mutation.SetVoiceID(v)
	}
	if _, ok := _c.mutation.SystemPrompt(); !ok {
		v := character.DefaultSystemPrompt
		_c.mutation.SetSystemPrompt(v)
	}
	if _, ok := _c.mutation.Avatar(); !ok {
		v := character.DefaultAvatar
		_c.mutation.SetAvatar(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CharacterCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Character.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Character.updated_at"`)}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Character.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := character.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Character.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WorldID(); !ok {
		return &ValidationError{Name: "world_id", err: errors.New(`ent: missing required field "Character.world_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Character.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := character.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Character.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PersonaDescription(); !ok {
		return &ValidationError{Name: "persona_description", err: errors.New(`ent: missing required field "Character.persona_description"`)}
	}
	if _, ok := _c.mutation.ToneGuide(); !ok {
		return &ValidationError{Name: "tone_guide", err: errors.New(`ent: missing required field "Character.tone_guide"`)}
	}
	if _, ok := _c.mutation.KnowledgeScope(); !ok {
		return &ValidationError{Name: "knowledge_scope", err: errors.New(`ent: missing required field "Character.knowledge_scope"`)}
	}
	if _, ok := _c.mutation.OffTopicRedirect(); !ok {
		return &ValidationError{Name: "off_topic_redirect", err: errors.New(`ent: missing required field "Character.off_topic_redirect"`)}
	}
	if _, ok := _c.mutation.VoiceID(); !ok {
		return &ValidationError{Name: "voice_id", err: errors.New(`ent: missing required field "Character.voice_id"`)}
	}
	if _, ok := _c.mutation.SystemPrompt(); !ok {
		return &ValidationError{Name: "system_prompt", err: errors.New(`ent: missing required field "Character.system_prompt"`)}
	}
	if _, ok := _c.mutation.Avatar(); !ok {
		return &ValidationError{Name: "avatar", err: errors.New(`ent: missing required field "Character.avatar"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := character.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Character.id": %w`, err)}
		}
	}
	return nil
}

func (_c *CharacterCreate) sqlSave(ctx context.Context) (*Character, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Character.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CharacterCreate) createSpec() (*Character, *sqlgraph.CreateSpec) {
	var (
		_node = &Character{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(character.Table, sqlgraph.NewFieldSpec(character.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(character.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(character.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(character.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.WorldID(); ok {
		_spec.SetField(character.FieldWorldID, field.TypeString, value)
		_node.WorldID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(character.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.PersonaDescription(); ok {
		_spec.SetField(character.FieldPersonaDescription, field.TypeString, value)
		_node.PersonaDescription = value
	}
	if value, ok := _c.mutation.ToneGuide(); ok {
		_spec.SetField(character.FieldToneGuide, field.TypeString, value)
		_node.ToneGuide = value
	}
	if value, ok := _c.mutation.KnowledgeScope(); ok {
		_spec.SetField(character.FieldKnowledgeScope, field.TypeString, value)
		_node.KnowledgeScope = value
	}
	if value, ok := _c.mutation.OffTopicRedirect(); ok {
		_spec.SetField(character.FieldOffTopicRedirect, field.TypeString, value)
		_node.OffTopicRedirect = value
	}
	if value, ok := _c.mutation.VoiceID(); ok {
		_spec.SetField(character.FieldVoiceID, field.TypeString, value)
		_node.VoiceID = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(character.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.Avatar(); ok {
		_spec.SetField(character.FieldAvatar, field.TypeString, value)
		_node.Avatar = value
	}
	return _node, _spec
}

// CharacterCreateBulk is the builder for creating many Character entities in bulk.
type CharacterCreateBulk struct {
	config
	err      error
	builders []*CharacterCreate
}

// Save creates the Character entities in the database.
func (_c *CharacterCreateBulk) Save(ctx context.Context) ([]*Character, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Character, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CharacterMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CharacterCreateBulk) SaveX(ctx context.Context) []*Character {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CharacterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CharacterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
