// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kosmi-edu/kosmi/ent/character"
	"github.com/kosmi-edu/kosmi/ent/predicate"
)

// CharacterUpdate is the builder for updating Character entities.
type CharacterUpdate struct {
	config
	hooks    []Hook
	mutation *CharacterMutation
}

// Where appends a list predicates to the CharacterUpdate builder.
func (_u *CharacterUpdate) Where(ps ...predicate.Character) *CharacterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CharacterUpdate) SetUpdatedAt(v time.Time) *CharacterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *CharacterUpdate) SetSlug(v string) *CharacterUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableSlug(v *string) *CharacterUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetWorldID sets the "world_id" field.
func (_u *CharacterUpdate) SetWorldID(v string) *CharacterUpdate {
	_u.mutation.SetWorldID(v)
	return _u
}

// SetNillableWorldID sets the "world_id" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableWorldID(v *string) *CharacterUpdate {
	if v != nil {
		_u.SetWorldID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CharacterUpdate) SetName(v string) *CharacterUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableName(v *string) *CharacterUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPersonaDescription sets the "persona_description" field.
func (_u *CharacterUpdate) SetPersonaDescription(v string) *CharacterUpdate {
	_u.mutation.SetPersonaDescription(v)
	return _u
}

// SetNillablePersonaDescription sets the "persona_description" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillablePersonaDescription(v *string) *CharacterUpdate {
	if v != nil {
		_u.SetPersonaDescription(*v)
	}
	return _u
}

// SetToneGuide sets the "tone_guide" field.
func (_u *CharacterUpdate) SetToneGuide(v string) *CharacterUpdate {
	_u.mutation.SetToneGuide(v)
	return _u
}

// SetNillableToneGuide sets the "tone_guide" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableToneGuide(v *string) *CharacterUpdate {
	if v != nil {
		_u.SetToneGuide(*v)
	}
	return _u
}

// SetKnowledgeScope sets the "knowledge_scope" field.
func (_u *CharacterUpdate) SetKnowledgeScope(v string) *CharacterUpdate {
	_u.mutation.SetKnowledgeScope(v)
	return _u
}

// SetNillableKnowledgeScope sets the "knowledge_scope" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableKnowledgeScope(v *string) *CharacterUpdate {
	if v != nil {
		_u.SetKnowledgeScope(*v)
	}
	return _u
}

// SetOffTopicRedirect sets the "off_topic_redirect" field.
func (_u *CharacterUpdate) SetOffTopicRedirect(v string) *CharacterUpdate {
	_u.mutation.SetOffTopicRedirect(v)
	return _u
}

// SetNillableOffTopicRedirect sets the "off_topic_redirect" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableOffTopicRedirect(v *string) *CharacterUpdate {
	if v != nil {
		_u.SetOffTopicRedirect(*v)
	}
	return _u
}

// SetVoiceID sets the "voice_id" field.
func (_u *CharacterUpdate) SetVoiceID(v string) *CharacterUpdate {
	_u.mutation.SetVoiceID(v)
	return _u
}

// SetNillableVoiceID sets the "voice_id" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableVoiceID(v *string) *CharacterUpdate {
	if v != nil {
		_u.SetVoiceID(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *CharacterUpdate) SetSystemPrompt(v string) *CharacterUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableSystemPrompt(v *string) *CharacterUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetAvatar sets the "avatar" field.
func (_u *CharacterUpdate) SetAvatar(v string) *CharacterUpdate {
	_u.mutation.SetAvatar(v)
	return _u
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableAvatar(v *string) *CharacterUpdate {
	if v != nil {
		_u.SetAvatar(*v)
	}
	return _u
}

// Mutation returns the CharacterMutation object of the builder.
func (_u *CharacterUpdate) Mutation() *CharacterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CharacterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CharacterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CharacterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CharacterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CharacterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := character.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CharacterUpdate) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := character.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Character.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := character.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Character.name": %w`, err)}
		}
	}
	return nil
}

func (_u *CharacterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(character.Table, character.Columns, sqlgraph.NewFieldSpec(character.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(character.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(character.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorldID(); ok {
		_spec.SetField(character.FieldWorldID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(character.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PersonaDescription(); ok {
		_spec.SetField(character.FieldPersonaDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToneGuide(); ok {
		_spec.SetField(character.FieldToneGuide, field.TypeString, value)
	}
	if value, ok := _u.mutation.KnowledgeScope(); ok {
		_spec.SetField(character.FieldKnowledgeScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.OffTopicRedirect(); ok {
		_spec.SetField(character.FieldOffTopicRedirect, field.TypeString, value)
	}
	if value, ok := _u.mutation.VoiceID(); ok {
		_spec.SetField(character.FieldVoiceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(character.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Avatar(); ok {
		_spec.SetField(character.FieldAvatar, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{character.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CharacterUpdateOne is the builder for updating a single Character entity.
type CharacterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CharacterMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CharacterUpdateOne) SetUpdatedAt(v time.Time) *CharacterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *CharacterUpdateOne) SetSlug(v string) *CharacterUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableSlug(v *string) *CharacterUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetWorldID sets the "world_id" field.
func (_u *CharacterUpdateOne) SetWorldID(v string) *CharacterUpdateOne {
	_u.mutation.SetWorldID(v)
	return _u
}

// SetNillableWorldID sets the "world_id" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableWorldID(v *string) *CharacterUpdateOne {
	if v != nil {
		_u.SetWorldID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CharacterUpdateOne) SetName(v string) *CharacterUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableName(v *string) *CharacterUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPersonaDescription sets the "persona_description" field.
func (_u *CharacterUpdateOne) SetPersonaDescription(v string) *CharacterUpdateOne {
	_u.mutation.SetPersonaDescription(v)
	return _u
}

// SetNillablePersonaDescription sets the "persona_description" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillablePersonaDescription(v *string) *CharacterUpdateOne {
	if v != nil {
		_u.SetPersonaDescription(*v)
	}
	return _u
}

// SetToneGuide sets the "tone_guide" field.
func (_u *CharacterUpdateOne) SetToneGuide(v string) *CharacterUpdateOne {
	_u.mutation.SetToneGuide(v)
	return _u
}

// SetNillableToneGuide sets the "tone_guide" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableToneGuide(v *string) *CharacterUpdateOne {
	if v != nil {
		_u.SetToneGuide(*v)
	}
	return _u
}

// SetKnowledgeScope sets the "knowledge_scope" field.
func (_u *CharacterUpdateOne) SetKnowledgeScope(v string) *CharacterUpdateOne {
	_u.mutation.SetKnowledgeScope(v)
	return _u
}

// SetNillableKnowledgeScope sets the "knowledge_scope" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableKnowledgeScope(v *string) *CharacterUpdateOne {
	if v != nil {
		_u.SetKnowledgeScope(*v)
	}
	return _u
}

// SetOffTopicRedirect sets the "off_topic_redirect" field.
func (_u *CharacterUpdateOne) SetOffTopicRedirect(v string) *CharacterUpdateOne {
	_u.mutation.SetOffTopicRedirect(v)
	return _u
}

// SetNillableOffTopicRedirect sets the "off_topic_redirect" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableOffTopicRedirect(v *string) *CharacterUpdateOne {
	if v != nil {
		_u.SetOffTopicRedirect(*v)
	}
	return _u
}

// SetVoiceID sets the "voice_id" field.
func (_u *CharacterUpdateOne) SetVoiceID(v string) *CharacterUpdateOne {
	_u.mutation.SetVoiceID(v)
	return _u
}

// SetNillableVoiceID sets the "voice_id" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableVoiceID(v *string) *CharacterUpdateOne {
	if v != nil {
		_u.SetVoiceID(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *CharacterUpdateOne) SetSystemPrompt(v string) *CharacterUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableSystemPrompt(v *string) *CharacterUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetAvatar sets the "avatar" field.
func (_u *CharacterUpdateOne) SetAvatar(v string) *CharacterUpdateOne {
	_u.mutation.SetAvatar(v)
	return _u
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableAvatar(v *string) *CharacterUpdateOne {
	if v != nil {
		_u.SetAvatar(*v)
	}
	return _u
}

// Mutation returns the CharacterMutation object of the builder.
func (_u *CharacterUpdateOne) Mutation() *CharacterMutation {
	return _u.mutation
}

// Where appends a list predicates to the CharacterUpdate builder.
func (_u *CharacterUpdateOne) Where(ps ...predicate.Character) *CharacterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CharacterUpdateOne) Select(field string, fields ...string) *CharacterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Character entity.
func (_u *CharacterUpdateOne) Save(ctx context.Context) (*Character, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CharacterUpdateOne) SaveX(ctx context.Context) *Character {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CharacterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CharacterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CharacterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := character.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CharacterUpdateOne) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := character.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Character.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := character.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Character.name": %w`, err)}
		}
	}
	return nil
}

func (_u *CharacterUpdateOne) sqlSave(ctx context.Context) (_node *Character, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(character.Table, character.Columns, sqlgraph.NewFieldSpec(character.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Character.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, character.FieldID)
		for _, f := range fields {
			if !character.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != character.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(character.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(character.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorldID(); ok {
		_spec.SetField(character.FieldWorldID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(character.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PersonaDescription(); ok {
		_spec.SetField(character.FieldPersonaDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToneGuide(); ok {
		_spec.SetField(character.FieldToneGuide, field.TypeString, value)
	}
	if value, ok := _u.mutation.KnowledgeScope(); ok {
		_spec.SetField(character.FieldKnowledgeScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.OffTopicRedirect(); ok {
		_spec.SetField(character.FieldOffTopicRedirect, field.TypeString, value)
	}
	if value, ok := _u.mutation.VoiceID(); ok {
		_spec.SetField(character.FieldVoiceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(character.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Avatar(); ok {
		_spec.SetField(character.FieldAvatar, field.TypeString, value)
	}
	_node = &Character{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{character.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
