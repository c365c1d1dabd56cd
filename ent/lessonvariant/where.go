// Code generated by ent, DO NOT EDIT.

package lessonvariant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kosmi-edu/kosmi/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldUpdatedAt, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldLessonID, v))
}

// TargetGrade applies equality check predicate on the "target_grade" field. It's identical to TargetGradeEQ.
func TargetGrade(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldTargetGrade, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldPosition, v))
}

// IntroText applies equality check predicate on the "intro_text" field. It's identical to IntroTextEQ.
func IntroText(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldIntroText, v))
}

// CoreContent applies equality check predicate on the "core_content" field. It's identical to CoreContentEQ.
func CoreContent(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldCoreContent, v))
}

// CoreImage applies equality check predicate on the "core_image" field. It's identical to CoreImageEQ.
func CoreImage(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldCoreImage, v))
}

// CoreImageCredit applies equality check predicate on the "core_image_credit" field. It's identical to CoreImageCreditEQ.
func CoreImageCredit(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldCoreImageCredit, v))
}

// DepthContent applies equality check predicate on the "depth_content" field. It's identical to DepthContentEQ.
func DepthContent(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldDepthContent, v))
}

// DepthImage applies equality check predicate on the "depth_image" field. It's identical to DepthImageEQ.
func DepthImage(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldDepthImage, v))
}

// DepthImageCredit applies equality check predicate on the "depth_image_credit" field. It's identical to DepthImageCreditEQ.
func DepthImageCredit(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldDepthImageCredit, v))
}

// ReflectionQuestion applies equality check predicate on the "reflection_question" field. It's identical to ReflectionQuestionEQ.
func ReflectionQuestion(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldReflectionQuestion, v))
}

// PointsBase applies equality check predicate on the "points_base" field. It's identical to PointsBaseEQ.
func PointsBase(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldPointsBase, v))
}

// PointsDepthBonus applies equality check predicate on the "points_depth_bonus" field. It's identical to PointsDepthBonusEQ.
func PointsDepthBonus(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldPointsDepthBonus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLTE(FieldUpdatedAt, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldContainsFold(FieldLessonID, v))
}

// TargetGradeEQ applies the EQ predicate on the "target_grade" field.
func TargetGradeEQ(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldTargetGrade, v))
}

// TargetGradeNEQ applies the NEQ predicate on the "target_grade" field.
func TargetGradeNEQ(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNEQ(FieldTargetGrade, v))
}

// TargetGradeIn applies the In predicate on the "target_grade" field.
func TargetGradeIn(vs ...int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldIn(FieldTargetGrade, vs...))
}

// TargetGradeNotIn applies the NotIn predicate on the "target_grade" field.
func TargetGradeNotIn(vs ...int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNotIn(FieldTargetGrade, vs...))
}

// TargetGradeGT applies the GT predicate on the "target_grade" field.
func TargetGradeGT(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGT(FieldTargetGrade, v))
}

// TargetGradeGTE applies the GTE predicate on the "target_grade" field.
func TargetGradeGTE(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGTE(FieldTargetGrade, v))
}

// TargetGradeLT applies the LT predicate on the "target_grade" field.
func TargetGradeLT(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLT(FieldTargetGrade, v))
}

// TargetGradeLTE applies the LTE predicate on the "target_grade" field.
func TargetGradeLTE(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLTE(FieldTargetGrade, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLTE(FieldPosition, v))
}

// IntroTextEQ applies the EQ predicate on the "intro_text" field.
func IntroTextEQ(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldIntroText, v))
}

// IntroTextNEQ applies the NEQ predicate on the "intro_text" field.
func IntroTextNEQ(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNEQ(FieldIntroText, v))
}

// IntroTextIn applies the In predicate on the "intro_text" field.
func IntroTextIn(vs ...string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldIn(FieldIntroText, vs...))
}

// IntroTextNotIn applies the NotIn predicate on the "intro_text" field.
func IntroTextNotIn(vs ...string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNotIn(FieldIntroText, vs...))
}

// IntroTextGT applies the GT predicate on the "intro_text" field.
func IntroTextGT(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGT(FieldIntroText, v))
}

// IntroTextGTE applies the GTE predicate on the "intro_text" field.
func IntroTextGTE(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGTE(FieldIntroText, v))
}

// IntroTextLT applies the LT predicate on the "intro_text" field.
func IntroTextLT(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLT(FieldIntroText, v))
}

// IntroTextLTE applies the LTE predicate on the "intro_text" field.
func IntroTextLTE(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLTE(FieldIntroText, v))
}

// IntroTextContains applies the Contains predicate on the "intro_text" field.
func IntroTextContains(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldContains(FieldIntroText, v))
}

// IntroTextHasPrefix applies the HasPrefix predicate on the "intro_text" field.
func IntroTextHasPrefix(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldHasPrefix(FieldIntroText, v))
}

// IntroTextHasSuffix applies the HasSuffix predicate on the "intro_text" field.
func IntroTextHasSuffix(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldHasSuffix(FieldIntroText, v))
}

// IntroTextEqualFold applies the EqualFold predicate on the "intro_text" field.
func IntroTextEqualFold(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEqualFold(FieldIntroText, v))
}

// IntroTextContainsFold applies the ContainsFold predicate on the "intro_text" field.
func IntroTextContainsFold(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldContainsFold(FieldIntroText, v))
}

// CoreContentEQ applies the EQ predicate on the "core_content" field.
func CoreContentEQ(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldCoreContent, v))
}

// CoreContentNEQ applies the NEQ predicate on the "core_content" field.
func CoreContentNEQ(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNEQ(FieldCoreContent, v))
}

// CoreContentIn applies the In predicate on the "core_content" field.
func CoreContentIn(vs ...string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldIn(FieldCoreContent, vs...))
}

// CoreContentNotIn applies the NotIn predicate on the "core_content" field.
func CoreContentNotIn(vs ...string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNotIn(FieldCoreContent, vs...))
}

// CoreContentGT applies the GT predicate on the "core_content" field.
func CoreContentGT(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGT(FieldCoreContent, v))
}

// CoreContentGTE applies the GTE predicate on the "core_content" field.
func CoreContentGTE(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGTE(FieldCoreContent, v))
}

// CoreContentLT applies the LT predicate on the "core_content" field.
func CoreContentLT(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLT(FieldCoreContent, v))
}

// CoreContentLTE applies the LTE predicate on the "core_content" field.
func CoreContentLTE(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLTE(FieldCoreContent, v))
}

// CoreContentContains applies the Contains predicate on the "core_content" field.
func CoreContentContains(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldContains(FieldCoreContent, v))
}

// CoreContentHasPrefix applies the HasPrefix predicate on the "core_content" field.
func CoreContentHasPrefix(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldHasPrefix(FieldCoreContent, v))
}

// CoreContentHasSuffix applies the HasSuffix predicate on the "core_content" field.
func CoreContentHasSuffix(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldHasSuffix(FieldCoreContent, v))
}

// CoreContentEqualFold applies the EqualFold predicate on the "core_content" field.
func CoreContentEqualFold(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEqualFold(FieldCoreContent, v))
}

// CoreContentContainsFold applies the ContainsFold predicate on the "core_content" field.
func CoreContentContainsFold(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldContainsFold(FieldCoreContent, v))
}

// CoreImageEQ applies the EQ predicate on the "core_image" field.
func CoreImageEQ(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldCoreImage, v))
}

// CoreImageNEQ applies the NEQ predicate on the "core_image" field.
func CoreImageNEQ(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNEQ(FieldCoreImage, v))
}

// CoreImageIn applies the In predicate on the "core_image" field.
func CoreImageIn(vs ...string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldIn(FieldCoreImage, vs...))
}

// CoreImageNotIn applies the NotIn predicate on the "core_image" field.
func CoreImageNotIn(vs ...string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNotIn(FieldCoreImage, vs...))
}

// CoreImageGT applies the GT predicate on the "core_image" field.
func CoreImageGT(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGT(FieldCoreImage, v))
}

// CoreImageGTE applies the GTE predicate on the "core_image" field.
func CoreImageGTE(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGTE(FieldCoreImage, v))
}

// CoreImageLT applies the LT predicate on the "core_image" field.
func CoreImageLT(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLT(FieldCoreImage, v))
}

// CoreImageLTE applies the LTE predicate on the "core_image" field.
func CoreImageLTE(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLTE(FieldCoreImage, v))
}

// CoreImageContains applies the Contains predicate on the "core_image" field.
func CoreImageContains(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldContains(FieldCoreImage, v))
}

// CoreImageHasPrefix applies the HasPrefix predicate on the "core_image" field.
func CoreImageHasPrefix(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldHasPrefix(FieldCoreImage, v))
}

// CoreImageHasSuffix applies the HasSuffix predicate on the "core_image" field.
func CoreImageHasSuffix(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldHasSuffix(FieldCoreImage, v))
}

// CoreImageEqualFold applies the EqualFold predicate on the "core_image" field.
func CoreImageEqualFold(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEqualFold(FieldCoreImage, v))
}

// CoreImageContainsFold applies the ContainsFold predicate on the "core_image" field.
func CoreImageContainsFold(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldContainsFold(FieldCoreImage, v))
}

// CoreImageCreditEQ applies the EQ predicate on the "core_image_credit" field.
func CoreImageCreditEQ(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldCoreImageCredit, v))
}

// CoreImageCreditNEQ applies the NEQ predicate on the "core_image_credit" field.
func CoreImageCreditNEQ(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNEQ(FieldCoreImageCredit, v))
}

// CoreImageCreditIn applies the In predicate on the "core_image_credit" field.
func CoreImageCreditIn(vs ...string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldIn(FieldCoreImageCredit, vs...))
}

// CoreImageCreditNotIn applies the NotIn predicate on the "core_image_credit" field.
func CoreImageCreditNotIn(vs ...string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNotIn(FieldCoreImageCredit, vs...))
}

// CoreImageCreditGT applies the GT predicate on the "core_image_credit" field.
func CoreImageCreditGT(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGT(FieldCoreImageCredit, v))
}

// CoreImageCreditGTE applies the GTE predicate on the "core_image_credit" field.
func CoreImageCreditGTE(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGTE(FieldCoreImageCredit, v))
}

// CoreImageCreditLT applies the LT predicate on the "core_image_credit" field.
func CoreImageCreditLT(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLT(FieldCoreImageCredit, v))
}

// CoreImageCreditLTE applies the LTE predicate on the "core_image_credit" field.
func CoreImageCreditLTE(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLTE(FieldCoreImageCredit, v))
}

// CoreImageCreditContains applies the Contains predicate on the "core_image_credit" field.
func CoreImageCreditContains(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldContains(FieldCoreImageCredit, v))
}

// CoreImageCreditHasPrefix applies the HasPrefix predicate on the "core_image_credit" field.
func CoreImageCreditHasPrefix(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldHasPrefix(FieldCoreImageCredit, v))
}

// CoreImageCreditHasSuffix applies the HasSuffix predicate on the "core_image_credit" field.
func CoreImageCreditHasSuffix(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldHasSuffix(FieldCoreImageCredit, v))
}

// CoreImageCreditEqualFold applies the EqualFold predicate on the "core_image_credit" field.
func CoreImageCreditEqualFold(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEqualFold(FieldCoreImageCredit, v))
}

// CoreImageCreditContainsFold applies the ContainsFold predicate on the "core_image_credit" field.
func CoreImageCreditContainsFold(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldContainsFold(FieldCoreImageCredit, v))
}

// DepthContentEQ applies the EQ predicate on the "depth_content" field.
func DepthContentEQ(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldDepthContent, v))
}

// DepthContentNEQ applies the NEQ predicate on the "depth_content" field.
func DepthContentNEQ(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNEQ(FieldDepthContent, v))
}

// DepthContentIn applies the In predicate on the "depth_content" field.
func DepthContentIn(vs ...string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldIn(FieldDepthContent, vs...))
}

// DepthContentNotIn applies the NotIn predicate on the "depth_content" field.
func DepthContentNotIn(vs ...string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNotIn(FieldDepthContent, vs...))
}

// DepthContentGT applies the GT predicate on the "depth_content" field.
func DepthContentGT(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGT(FieldDepthContent, v))
}

// DepthContentGTE applies the GTE predicate on the "depth_content" field.
func DepthContentGTE(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGTE(FieldDepthContent, v))
}

// DepthContentLT applies the LT predicate on the "depth_content" field.
func DepthContentLT(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLT(FieldDepthContent, v))
}

// DepthContentLTE applies the LTE predicate on the "depth_content" field.
func DepthContentLTE(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLTE(FieldDepthContent, v))
}

// DepthContentContains applies the Contains predicate on the "depth_content" field.
func DepthContentContains(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldContains(FieldDepthContent, v))
}

// DepthContentHasPrefix applies the HasPrefix predicate on the "depth_content" field.
func DepthContentHasPrefix(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldHasPrefix(FieldDepthContent, v))
}

// DepthContentHasSuffix applies the HasSuffix predicate on the "depth_content" field.
func DepthContentHasSuffix(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldHasSuffix(FieldDepthContent, v))
}

// DepthContentEqualFold applies the EqualFold predicate on the "depth_content" field.
func DepthContentEqualFold(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEqualFold(FieldDepthContent, v))
}

// DepthContentContainsFold applies the ContainsFold predicate on the "depth_content" field.
func DepthContentContainsFold(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldContainsFold(FieldDepthContent, v))
}

// DepthImageEQ applies the EQ predicate on the "depth_image" field.
func DepthImageEQ(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldDepthImage, v))
}

// DepthImageNEQ applies the NEQ predicate on the "depth_image" field.
func DepthImageNEQ(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNEQ(FieldDepthImage, v))
}

// DepthImageIn applies the In predicate on the "depth_image" field.
func DepthImageIn(vs ...string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldIn(FieldDepthImage, vs...))
}

// DepthImageNotIn applies the NotIn predicate on the "depth_image" field.
func DepthImageNotIn(vs ...string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNotIn(FieldDepthImage, vs...))
}

// DepthImageGT applies the GT predicate on the "depth_image" field.
func DepthImageGT(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGT(FieldDepthImage, v))
}

// DepthImageGTE applies the GTE predicate on the "depth_image" field.
func DepthImageGTE(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGTE(FieldDepthImage, v))
}

// DepthImageLT applies the LT predicate on the "depth_image" field.
func DepthImageLT(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLT(FieldDepthImage, v))
}

// DepthImageLTE applies the LTE predicate on the "depth_image" field.
func DepthImageLTE(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLTE(FieldDepthImage, v))
}

// DepthImageContains applies the Contains predicate on the "depth_image" field.
func DepthImageContains(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldContains(FieldDepthImage, v))
}

// DepthImageHasPrefix applies the HasPrefix predicate on the "depth_image" field.
func DepthImageHasPrefix(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldHasPrefix(FieldDepthImage, v))
}

// DepthImageHasSuffix applies the HasSuffix predicate on the "depth_image" field.
func DepthImageHasSuffix(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldHasSuffix(FieldDepthImage, v))
}

// DepthImageEqualFold applies the EqualFold predicate on the "depth_image" field.
func DepthImageEqualFold(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEqualFold(FieldDepthImage, v))
}

// DepthImageContainsFold applies the ContainsFold predicate on the "depth_image" field.
func DepthImageContainsFold(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldContainsFold(FieldDepthImage, v))
}

// DepthImageCreditEQ applies the EQ predicate on the "depth_image_credit" field.
func DepthImageCreditEQ(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldDepthImageCredit, v))
}

// DepthImageCreditNEQ applies the NEQ predicate on the "depth_image_credit" field.
func DepthImageCreditNEQ(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNEQ(FieldDepthImageCredit, v))
}

// DepthImageCreditIn applies the In predicate on the "depth_image_credit" field.
func DepthImageCreditIn(vs ...string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldIn(FieldDepthImageCredit, vs...))
}

// DepthImageCreditNotIn applies the NotIn predicate on the "depth_image_credit" field.
func DepthImageCreditNotIn(vs ...string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNotIn(FieldDepthImageCredit, vs...))
}

// DepthImageCreditGT applies the GT predicate on the "depth_image_credit" field.
func DepthImageCreditGT(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGT(FieldDepthImageCredit, v))
}

// DepthImageCreditGTE applies the GTE predicate on the "depth_image_credit" field.
func DepthImageCreditGTE(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGTE(FieldDepthImageCredit, v))
}

// DepthImageCreditLT applies the LT predicate on the "depth_image_credit" field.
func DepthImageCreditLT(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLT(FieldDepthImageCredit, v))
}

// DepthImageCreditLTE applies the LTE predicate on the "depth_image_credit" field.
func DepthImageCreditLTE(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLTE(FieldDepthImageCredit, v))
}

// DepthImageCreditContains applies the Contains predicate on the "depth_image_credit" field.
func DepthImageCreditContains(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldContains(FieldDepthImageCredit, v))
}

// DepthImageCreditHasPrefix applies the HasPrefix predicate on the "depth_image_credit" field.
func DepthImageCreditHasPrefix(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldHasPrefix(FieldDepthImageCredit, v))
}

// DepthImageCreditHasSuffix applies the HasSuffix predicate on the "depth_image_credit" field.
func DepthImageCreditHasSuffix(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldHasSuffix(FieldDepthImageCredit, v))
}

// DepthImageCreditEqualFold applies the EqualFold predicate on the "depth_image_credit" field.
func DepthImageCreditEqualFold(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEqualFold(FieldDepthImageCredit, v))
}

// DepthImageCreditContainsFold applies the ContainsFold predicate on the "depth_image_credit" field.
func DepthImageCreditContainsFold(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldContainsFold(FieldDepthImageCredit, v))
}

// ReflectionQuestionEQ applies the EQ predicate on the "reflection_question" field.
func ReflectionQuestionEQ(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldReflectionQuestion, v))
}

// ReflectionQuestionNEQ applies the NEQ predicate on the "reflection_question" field.
func ReflectionQuestionNEQ(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNEQ(FieldReflectionQuestion, v))
}

// ReflectionQuestionIn applies the In predicate on the "reflection_question" field.
func ReflectionQuestionIn(vs ...string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldIn(FieldReflectionQuestion, vs...))
}

// ReflectionQuestionNotIn applies the NotIn predicate on the "reflection_question" field.
func ReflectionQuestionNotIn(vs ...string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNotIn(FieldReflectionQuestion, vs...))
}

// ReflectionQuestionGT applies the GT predicate on the "reflection_question" field.
func ReflectionQuestionGT(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGT(FieldReflectionQuestion, v))
}

// ReflectionQuestionGTE applies the GTE predicate on the "reflection_question" field.
func ReflectionQuestionGTE(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGTE(FieldReflectionQuestion, v))
}

// ReflectionQuestionLT applies the LT predicate on the "reflection_question" field.
func ReflectionQuestionLT(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLT(FieldReflectionQuestion, v))
}

// ReflectionQuestionLTE applies the LTE predicate on the "reflection_question" field.
func ReflectionQuestionLTE(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLTE(FieldReflectionQuestion, v))
}

// ReflectionQuestionContains applies the Contains predicate on the "reflection_question" field.
func ReflectionQuestionContains(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldContains(FieldReflectionQuestion, v))
}

// ReflectionQuestionHasPrefix applies the HasPrefix predicate on the "reflection_question" field.
func ReflectionQuestionHasPrefix(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldHasPrefix(FieldReflectionQuestion, v))
}

// ReflectionQuestionHasSuffix applies the HasSuffix predicate on the "reflection_question" field.
func ReflectionQuestionHasSuffix(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldHasSuffix(FieldReflectionQuestion, v))
}

// ReflectionQuestionEqualFold applies the EqualFold predicate on the "reflection_question" field.
func ReflectionQuestionEqualFold(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEqualFold(FieldReflectionQuestion, v))
}

// ReflectionQuestionContainsFold applies the ContainsFold predicate on the "reflection_question" field.
func ReflectionQuestionContainsFold(v string) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldContainsFold(FieldReflectionQuestion, v))
}

// PointsBaseEQ applies the EQ predicate on the "points_base" field.
func PointsBaseEQ(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldPointsBase, v))
}

// PointsBaseNEQ applies the NEQ predicate on the "points_base" field.
func PointsBaseNEQ(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNEQ(FieldPointsBase, v))
}

// PointsBaseIn applies the In predicate on the "points_base" field.
func PointsBaseIn(vs ...int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldIn(FieldPointsBase, vs...))
}

// PointsBaseNotIn applies the NotIn predicate on the "points_base" field.
func PointsBaseNotIn(vs ...int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNotIn(FieldPointsBase, vs...))
}

// PointsBaseGT applies the GT predicate on the "points_base" field.
func PointsBaseGT(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGT(FieldPointsBase, v))
}

// PointsBaseGTE applies the GTE predicate on the "points_base" field.
func PointsBaseGTE(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGTE(FieldPointsBase, v))
}

// PointsBaseLT applies the LT predicate on the "points_base" field.
func PointsBaseLT(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLT(FieldPointsBase, v))
}

// PointsBaseLTE applies the LTE predicate on the "points_base" field.
func PointsBaseLTE(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLTE(FieldPointsBase, v))
}

// PointsDepthBonusEQ applies the EQ predicate on the "points_depth_bonus" field.
func PointsDepthBonusEQ(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldEQ(FieldPointsDepthBonus, v))
}

// PointsDepthBonusNEQ applies the NEQ predicate on the "points_depth_bonus" field.
func PointsDepthBonusNEQ(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNEQ(FieldPointsDepthBonus, v))
}

// PointsDepthBonusIn applies the In predicate on the "points_depth_bonus" field.
func PointsDepthBonusIn(vs ...int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldIn(FieldPointsDepthBonus, vs...))
}

// PointsDepthBonusNotIn applies the NotIn predicate on the "points_depth_bonus" field.
func PointsDepthBonusNotIn(vs ...int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldNotIn(FieldPointsDepthBonus, vs...))
}

// PointsDepthBonusGT applies the GT predicate on the "points_depth_bonus" field.
func PointsDepthBonusGT(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGT(FieldPointsDepthBonus, v))
}

// PointsDepthBonusGTE applies the GTE predicate on the "points_depth_bonus" field.
func PointsDepthBonusGTE(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldGTE(FieldPointsDepthBonus, v))
}

// PointsDepthBonusLT applies the LT predicate on the "points_depth_bonus" field.
func PointsDepthBonusLT(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLT(FieldPointsDepthBonus, v))
}

// PointsDepthBonusLTE applies the LTE predicate on the "points_depth_bonus" field.
func PointsDepthBonusLTE(v int) predicate.LessonVariant {
	return predicate.LessonVariant(sql.FieldLTE(FieldPointsDepthBonus, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonVariant) predicate.LessonVariant {
	return predicate.LessonVariant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonVariant) predicate.LessonVariant {
	return predicate.LessonVariant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonVariant) predicate.LessonVariant {
	return predicate.LessonVariant(sql.NotPredicates(p))
}
