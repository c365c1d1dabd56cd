// Code generated by ent, DO NOT EDIT.

package character

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kosmi-edu/kosmi/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldUpdatedAt, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldSlug, v))
}

// WorldID applies equality check predicate on the "world_id" field. It's identical to WorldIDEQ.
func WorldID(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldWorldID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldName, v))
}

// PersonaDescription applies equality check predicate on the "persona_description" field. It's identical to PersonaDescriptionEQ.
func PersonaDescription(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldPersonaDescription, v))
}

// ToneGuide applies equality check predicate on the "tone_guide" field. It's identical to ToneGuideEQ.
func ToneGuide(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldToneGuide, v))
}

// KnowledgeScope applies equality check predicate on the "knowledge_scope" field. It's identical to KnowledgeScopeEQ.
func KnowledgeScope(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldKnowledgeScope, v))
}

// OffTopicRedirect applies equality check predicate on the "off_topic_redirect" field. It's identical to OffTopicRedirectEQ.
func OffTopicRedirect(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldOffTopicRedirect, v))
}

// VoiceID applies equality check predicate on the "voice_id" field. It's identical to VoiceIDEQ.
func VoiceID(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldVoiceID, v))
}

// SystemPrompt applies equality check predicate on the "system_prompt" field. It's identical to SystemPromptEQ.
func SystemPrompt(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldSystemPrompt, v))
}

// Avatar applies equality check predicate on the "avatar" field. It's identical to AvatarEQ.
func Avatar(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldAvatar, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldUpdatedAt, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Character {
	return predicate.Character(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldSlug, v))
}

// WorldIDEQ applies the EQ predicate on the "world_id" field.
func WorldIDEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldWorldID, v))
}

// WorldIDNEQ applies the NEQ predicate on the "world_id" field.
func WorldIDNEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldWorldID, v))
}

// WorldIDIn applies the In predicate on the "world_id" field.
func WorldIDIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldWorldID, vs...))
}

// WorldIDNotIn applies the NotIn predicate on the "world_id" field.
func WorldIDNotIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldWorldID, vs...))
}

// WorldIDGT applies the GT predicate on the "world_id" field.
func WorldIDGT(v string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldWorldID, v))
}

// WorldIDGTE applies the GTE predicate on the "world_id" field.
func WorldIDGTE(v string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldWorldID, v))
}

// WorldIDLT applies the LT predicate on the "world_id" field.
func WorldIDLT(v string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldWorldID, v))
}

// WorldIDLTE applies the LTE predicate on the "world_id" field.
func WorldIDLTE(v string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldWorldID, v))
}

// WorldIDContains applies the Contains predicate on the "world_id" field.
func WorldIDContains(v string) predicate.Character {
	return predicate.Character(sql.FieldContains(FieldWorldID, v))
}

// WorldIDHasPrefix applies the HasPrefix predicate on the "world_id" field.
func WorldIDHasPrefix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasPrefix(FieldWorldID, v))
}

// WorldIDHasSuffix applies the HasSuffix predicate on the "world_id" field.
func WorldIDHasSuffix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasSuffix(FieldWorldID, v))
}

// WorldIDEqualFold applies the EqualFold predicate on the "world_id" field.
func WorldIDEqualFold(v string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldWorldID, v))
}

// WorldIDContainsFold applies the ContainsFold predicate on the "world_id" field.
func WorldIDContainsFold(v string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldWorldID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Character {
	return predicate.Character(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldName, v))
}

// PersonaDescriptionEQ applies the EQ predicate on the "persona_description" field.
func PersonaDescriptionEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldPersonaDescription, v))
}

// PersonaDescriptionNEQ applies the NEQ predicate on the "persona_description" field.
func PersonaDescriptionNEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldPersonaDescription, v))
}

// PersonaDescriptionIn applies the In predicate on the "persona_description" field.
func PersonaDescriptionIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldPersonaDescription, vs...))
}

// PersonaDescriptionNotIn applies the NotIn predicate on the "persona_description" field.
func PersonaDescriptionNotIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldPersonaDescription, vs...))
}

// PersonaDescriptionGT applies the GT predicate on the "persona_description" field.
func PersonaDescriptionGT(v string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldPersonaDescription, v))
}

// PersonaDescriptionGTE applies the GTE predicate on the "persona_description" field.
func PersonaDescriptionGTE(v string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldPersonaDescription, v))
}

// PersonaDescriptionLT applies the LT predicate on the "persona_description" field.
func PersonaDescriptionLT(v string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldPersonaDescription, v))
}

// PersonaDescriptionLTE applies the LTE predicate on the "persona_description" field.
func PersonaDescriptionLTE(v string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldPersonaDescription, v))
}

// PersonaDescriptionContains applies the Contains predicate on the "persona_description" field.
func PersonaDescriptionContains(v string) predicate.Character {
	return predicate.Character(sql.FieldContains(FieldPersonaDescription, v))
}

// PersonaDescriptionHasPrefix applies the HasPrefix predicate on the "persona_description" field.
func PersonaDescriptionHasPrefix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasPrefix(FieldPersonaDescription, v))
}

// PersonaDescriptionHasSuffix applies the HasSuffix predicate on the "persona_description" field.
func PersonaDescriptionHasSuffix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasSuffix(FieldPersonaDescription, v))
}

// PersonaDescriptionEqualFold applies the EqualFold predicate on the "persona_description" field.
func PersonaDescriptionEqualFold(v string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldPersonaDescription, v))
}

// PersonaDescriptionContainsFold applies the ContainsFold predicate on the "persona_description" field.
func PersonaDescriptionContainsFold(v string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldPersonaDescription, v))
}

// ToneGuideEQ applies the EQ predicate on the "tone_guide" field.
func ToneGuideEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldToneGuide, v))
}

// ToneGuideNEQ applies the NEQ predicate on the "tone_guide" field.
func ToneGuideNEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldToneGuide, v))
}

// ToneGuideIn applies the In predicate on the "tone_guide" field.
func ToneGuideIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldToneGuide, vs...))
}

// ToneGuideNotIn applies the NotIn predicate on the "tone_guide" field.
func ToneGuideNotIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldToneGuide, vs...))
}

// ToneGuideGT applies the GT predicate on the "tone_guide" field.
func ToneGuideGT(v string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldToneGuide, v))
}

// ToneGuideGTE applies the GTE predicate on the "tone_guide" field.
func ToneGuideGTE(v string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldToneGuide, v))
}

// ToneGuideLT applies the LT predicate on the "tone_guide" field.
func ToneGuideLT(v string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldToneGuide, v))
}

// ToneGuideLTE applies the LTE predicate on the "tone_guide" field.
func ToneGuideLTE(v string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldToneGuide, v))
}

// ToneGuideContains applies the Contains predicate on the "tone_guide" field.
func ToneGuideContains(v string) predicate.Character {
	return predicate.Character(sql.FieldContains(FieldToneGuide, v))
}

// ToneGuideHasPrefix applies the HasPrefix predicate on the "tone_guide" field.
func ToneGuideHasPrefix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasPrefix(FieldToneGuide, v))
}

// ToneGuideHasSuffix applies the HasSuffix predicate on the "tone_guide" field.
func ToneGuideHasSuffix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasSuffix(FieldToneGuide, v))
}

// ToneGuideEqualFold applies the EqualFold predicate on the "tone_guide" field.
func ToneGuideEqualFold(v string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldToneGuide, v))
}

// ToneGuideContainsFold applies the ContainsFold predicate on the "tone_guide" field.
func ToneGuideContainsFold(v string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldToneGuide, v))
}

// KnowledgeScopeEQ applies the EQ predicate on the "knowledge_scope" field.
func KnowledgeScopeEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldKnowledgeScope, v))
}

// KnowledgeScopeNEQ applies the NEQ predicate on the "knowledge_scope" field.
func KnowledgeScopeNEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldKnowledgeScope, v))
}

// KnowledgeScopeIn applies the In predicate on the "knowledge_scope" field.
func KnowledgeScopeIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldKnowledgeScope, vs...))
}

// KnowledgeScopeNotIn applies the NotIn predicate on the "knowledge_scope" field.
func KnowledgeScopeNotIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldKnowledgeScope, vs...))
}

// KnowledgeScopeGT applies the GT predicate on the "knowledge_scope" field.
func KnowledgeScopeGT(v string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldKnowledgeScope, v))
}

// KnowledgeScopeGTE applies the GTE predicate on the "knowledge_scope" field.
func KnowledgeScopeGTE(v string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldKnowledgeScope, v))
}

// KnowledgeScopeLT applies the LT predicate on the "knowledge_scope" field.
func KnowledgeScopeLT(v string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldKnowledgeScope, v))
}

// KnowledgeScopeLTE applies the LTE predicate on the "knowledge_scope" field.
func KnowledgeScopeLTE(v string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldKnowledgeScope, v))
}

// KnowledgeScopeContains applies the Contains predicate on the "knowledge_scope" field.
func KnowledgeScopeContains(v string) predicate.Character {
	return predicate.Character(sql.FieldContains(FieldKnowledgeScope, v))
}

// KnowledgeScopeHasPrefix applies the HasPrefix predicate on the "knowledge_scope" field.
func KnowledgeScopeHasPrefix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasPrefix(FieldKnowledgeScope, v))
}

// KnowledgeScopeHasSuffix applies the HasSuffix predicate on the "knowledge_scope" field.
func KnowledgeScopeHasSuffix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasSuffix(FieldKnowledgeScope, v))
}

// KnowledgeScopeEqualFold applies the EqualFold predicate on the "knowledge_scope" field.
func KnowledgeScopeEqualFold(v string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldKnowledgeScope, v))
}

// KnowledgeScopeContainsFold applies the ContainsFold predicate on the "knowledge_scope" field.
func KnowledgeScopeContainsFold(v string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldKnowledgeScope, v))
}

// OffTopicRedirectEQ applies the EQ predicate on the "off_topic_redirect" field.
func OffTopicRedirectEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldOffTopicRedirect, v))
}

// OffTopicRedirectNEQ applies the NEQ predicate on the "off_topic_redirect" field.
func OffTopicRedirectNEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldOffTopicRedirect, v))
}

// OffTopicRedirectIn applies the In predicate on the "off_topic_redirect" field.
func OffTopicRedirectIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldOffTopicRedirect, vs...))
}

// OffTopicRedirectNotIn applies the NotIn predicate on the "off_topic_redirect" field.
func OffTopicRedirectNotIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldOffTopicRedirect, vs...))
}

// OffTopicRedirectGT applies the GT predicate on the "off_topic_redirect" field.
func OffTopicRedirectGT(v string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldOffTopicRedirect, v))
}

// OffTopicRedirectGTE applies the GTE predicate on the "off_topic_redirect" field.
func OffTopicRedirectGTE(v string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldOffTopicRedirect, v))
}

// OffTopicRedirectLT applies the LT predicate on the "off_topic_redirect" field.
func OffTopicRedirectLT(v string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldOffTopicRedirect, v))
}

// OffTopicRedirectLTE applies the LTE predicate on the "off_topic_redirect" field.
func OffTopicRedirectLTE(v string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldOffTopicRedirect, v))
}

// OffTopicRedirectContains applies the Contains predicate on the "off_topic_redirect" field.
func OffTopicRedirectContains(v string) predicate.Character {
	return predicate.Character(sql.FieldContains(FieldOffTopicRedirect, v))
}

// OffTopicRedirectHasPrefix applies the HasPrefix predicate on the "off_topic_redirect" field.
func OffTopicRedirectHasPrefix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasPrefix(FieldOffTopicRedirect, v))
}

// OffTopicRedirectHasSuffix applies the HasSuffix predicate on the "off_topic_redirect" field.
func OffTopicRedirectHasSuffix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasSuffix(FieldOffTopicRedirect, v))
}

// OffTopicRedirectEqualFold applies the EqualFold predicate on the "off_topic_redirect" field.
func OffTopicRedirectEqualFold(v string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldOffTopicRedirect, v))
}

// OffTopicRedirectContainsFold applies the ContainsFold predicate on the "off_topic_redirect" field.
func OffTopicRedirectContainsFold(v string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldOffTopicRedirect, v))
}

// VoiceIDEQ applies the EQ predicate on the "voice_id" field.
func VoiceIDEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldVoiceID, v))
}

// VoiceIDNEQ applies the NEQ predicate on the "voice_id" field.
func VoiceIDNEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldVoiceID, v))
}

// VoiceIDIn applies the In predicate on the "voice_id" field.
func VoiceIDIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldVoiceID, vs...))
}

// VoiceIDNotIn applies the NotIn predicate on the "voice_id" field.
func VoiceIDNotIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldVoiceID, vs...))
}

// VoiceIDGT applies the GT predicate on the "voice_id" field.
func VoiceIDGT(v string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldVoiceID, v))
}

// VoiceIDGTE applies the GTE predicate on the "voice_id" field.
func VoiceIDGTE(v string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldVoiceID, v))
}

// VoiceIDLT applies the LT predicate on the "voice_id" field.
func VoiceIDLT(v string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldVoiceID, v))
}

// VoiceIDLTE applies the LTE predicate on the "voice_id" field.
func VoiceIDLTE(v string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldVoiceID, v))
}

// VoiceIDContains applies the Contains predicate on the "voice_id" field.
func VoiceIDContains(v string) predicate.Character {
	return predicate.Character(sql.FieldContains(FieldVoiceID, v))
}

// VoiceIDHasPrefix applies the HasPrefix predicate on the "voice_id" field.
func VoiceIDHasPrefix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasPrefix(FieldVoiceID, v))
}

// VoiceIDHasSuffix applies the HasSuffix predicate on the "voice_id" field.
func VoiceIDHasSuffix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasSuffix(FieldVoiceID, v))
}

// VoiceIDEqualFold applies the EqualFold predicate on the "voice_id" field.
func VoiceIDEqualFold(v string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldVoiceID, v))
}

// VoiceIDContainsFold applies the ContainsFold predicate on the "voice_id" field.
func VoiceIDContainsFold(v string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldVoiceID, v))
}

// SystemPromptEQ applies the EQ predicate on the "system_prompt" field.
func SystemPromptEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldSystemPrompt, v))
}

// SystemPromptNEQ applies the NEQ predicate on the "system_prompt" field.
func SystemPromptNEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldSystemPrompt, v))
}

// SystemPromptIn applies the In predicate on the "system_prompt" field.
func SystemPromptIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldSystemPrompt, vs...))
}

// SystemPromptNotIn applies the NotIn predicate on the "system_prompt" field.
func SystemPromptNotIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldSystemPrompt, vs...))
}

// SystemPromptGT applies the GT predicate on the "system_prompt" field.
func SystemPromptGT(v string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldSystemPrompt, v))
}

// SystemPromptGTE applies the GTE predicate on the "system_prompt" field.
func SystemPromptGTE(v string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldSystemPrompt, v))
}

// SystemPromptLT applies the LT predicate on the "system_prompt" field.
func SystemPromptLT(v string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldSystemPrompt, v))
}

// SystemPromptLTE applies the LTE predicate on the "system_prompt" field.
func SystemPromptLTE(v string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldSystemPrompt, v))
}

// SystemPromptContains applies the Contains predicate on the "system_prompt" field.
func SystemPromptContains(v string) predicate.Character {
	return predicate.Character(sql.FieldContains(FieldSystemPrompt, v))
}

// SystemPromptHasPrefix applies the HasPrefix predicate on the "system_prompt" field.
func SystemPromptHasPrefix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasPrefix(FieldSystemPrompt, v))
}

// SystemPromptHasSuffix applies the HasSuffix predicate on the "system_prompt" field.
func SystemPromptHasSuffix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasSuffix(FieldSystemPrompt, v))
}

// SystemPromptEqualFold applies the EqualFold predicate on the "system_prompt" field.
func SystemPromptEqualFold(v string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldSystemPrompt, v))
}

// SystemPromptContainsFold applies the ContainsFold predicate on the "system_prompt" field.
func SystemPromptContainsFold(v string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldSystemPrompt, v))
}

// AvatarEQ applies the EQ predicate on the "avatar" field.
func AvatarEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldAvatar, v))
}

// AvatarNEQ applies the NEQ predicate on the "avatar" field.
func AvatarNEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldAvatar, v))
}

// AvatarIn applies the In predicate on the "avatar" field.
func AvatarIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldAvatar, vs...))
}

// AvatarNotIn applies the NotIn predicate on the "avatar" field.
func AvatarNotIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldAvatar, vs...))
}

// AvatarGT applies the GT predicate on the "avatar" field.
func AvatarGT(v string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldAvatar, v))
}

// AvatarGTE applies the GTE predicate on the "avatar" field.
func AvatarGTE(v string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldAvatar, v))
}

// AvatarLT applies the LT predicate on the "avatar" field.
func AvatarLT(v string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldAvatar, v))
}

// AvatarLTE applies the LTE predicate on the "avatar" field.
func AvatarLTE(v string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldAvatar, v))
}

// AvatarContains applies the Contains predicate on the "avatar" field.
func AvatarContains(v string) predicate.Character {
	return predicate.Character(sql.FieldContains(FieldAvatar, v))
}

// AvatarHasPrefix applies the HasPrefix predicate on the "avatar" field.
func AvatarHasPrefix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasPrefix(FieldAvatar, v))
}

// AvatarHasSuffix applies the HasSuffix predicate on the "avatar" field.
func AvatarHasSuffix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasSuffix(FieldAvatar, v))
}

// AvatarEqualFold applies the EqualFold predicate on the "avatar" field.
func AvatarEqualFold(v string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldAvatar, v))
}

// AvatarContainsFold applies the ContainsFold predicate on the "avatar" field.
func AvatarContainsFold(v string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldAvatar, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Character) predicate.Character {
	return predicate.Character(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Character) predicate.Character {
	return predicate.Character(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Character) predicate.Character {
	return predicate.Character(sql.NotPredicates(p))
}
