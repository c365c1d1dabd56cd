// Code generated by ent, DO NOT EDIT.

package lessonprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/kosmi-edu/kosmi/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v uuid.UUID) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldStudentID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldLessonID, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCompleted, v))
}

// DepthAccessed applies equality check predicate on the "depth_accessed" field. It's identical to DepthAccessedEQ.
func DepthAccessed(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldDepthAccessed, v))
}

// ReflectionAnswer applies equality check predicate on the "reflection_answer" field. It's identical to ReflectionAnswerEQ.
func ReflectionAnswer(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldReflectionAnswer, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldUpdatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v uuid.UUID) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v uuid.UUID) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...uuid.UUID) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...uuid.UUID) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v uuid.UUID) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v uuid.UUID) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v uuid.UUID) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v uuid.UUID) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldStudentID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContainsFold(FieldLessonID, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldCompleted, v))
}

// DepthAccessedEQ applies the EQ predicate on the "depth_accessed" field.
func DepthAccessedEQ(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldDepthAccessed, v))
}

// DepthAccessedNEQ applies the NEQ predicate on the "depth_accessed" field.
func DepthAccessedNEQ(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldDepthAccessed, v))
}

// ReflectionAnswerEQ applies the EQ predicate on the "reflection_answer" field.
func ReflectionAnswerEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldReflectionAnswer, v))
}

// ReflectionAnswerNEQ applies the NEQ predicate on the "reflection_answer" field.
func ReflectionAnswerNEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldReflectionAnswer, v))
}

// ReflectionAnswerIn applies the In predicate on the "reflection_answer" field.
func ReflectionAnswerIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldReflectionAnswer, vs...))
}

// ReflectionAnswerNotIn applies the NotIn predicate on the "reflection_answer" field.
func ReflectionAnswerNotIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldReflectionAnswer, vs...))
}

// ReflectionAnswerGT applies the GT predicate on the "reflection_answer" field.
func ReflectionAnswerGT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldReflectionAnswer, v))
}

// ReflectionAnswerGTE applies the GTE predicate on the "reflection_answer" field.
func ReflectionAnswerGTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldReflectionAnswer, v))
}

// ReflectionAnswerLT applies the LT predicate on the "reflection_answer" field.
func ReflectionAnswerLT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldReflectionAnswer, v))
}

// ReflectionAnswerLTE applies the LTE predicate on the "reflection_answer" field.
func ReflectionAnswerLTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldReflectionAnswer, v))
}

// ReflectionAnswerContains applies the Contains predicate on the "reflection_answer" field.
func ReflectionAnswerContains(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContains(FieldReflectionAnswer, v))
}

// ReflectionAnswerHasPrefix applies the HasPrefix predicate on the "reflection_answer" field.
func ReflectionAnswerHasPrefix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasPrefix(FieldReflectionAnswer, v))
}

// ReflectionAnswerHasSuffix applies the HasSuffix predicate on the "reflection_answer" field.
func ReflectionAnswerHasSuffix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasSuffix(FieldReflectionAnswer, v))
}

// ReflectionAnswerIsNil applies the IsNil predicate on the "reflection_answer" field.
func ReflectionAnswerIsNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIsNull(FieldReflectionAnswer))
}

// ReflectionAnswerNotNil applies the NotNil predicate on the "reflection_answer" field.
func ReflectionAnswerNotNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotNull(FieldReflectionAnswer))
}

// ReflectionAnswerEqualFold applies the EqualFold predicate on the "reflection_answer" field.
func ReflectionAnswerEqualFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEqualFold(FieldReflectionAnswer, v))
}

// ReflectionAnswerContainsFold applies the ContainsFold predicate on the "reflection_answer" field.
func ReflectionAnswerContainsFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContainsFold(FieldReflectionAnswer, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonProgress) predicate.LessonProgress {
	return predicate.LessonProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonProgress) predicate.LessonProgress {
	return predicate.LessonProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonProgress) predicate.LessonProgress {
	return predicate.LessonProgress(sql.NotPredicates(p))
}
