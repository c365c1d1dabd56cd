// Code generated by ent, DO NOT EDIT.

package pointsevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/kosmi-edu/kosmi/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldTimestamp, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v uuid.UUID) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldStudentID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldLessonID, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldEventType, v))
}

// PointsAwarded applies equality check predicate on the "points_awarded" field. It's identical to PointsAwardedEQ.
func PointsAwarded(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldPointsAwarded, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLTE(FieldTimestamp, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v uuid.UUID) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v uuid.UUID) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...uuid.UUID) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...uuid.UUID) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v uuid.UUID) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v uuid.UUID) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v uuid.UUID) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v uuid.UUID) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLTE(FieldStudentID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldContainsFold(FieldLessonID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldContainsFold(FieldEventType, v))
}

// PointsAwardedEQ applies the EQ predicate on the "points_awarded" field.
func PointsAwardedEQ(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldEQ(FieldPointsAwarded, v))
}

// PointsAwardedNEQ applies the NEQ predicate on the "points_awarded" field.
func PointsAwardedNEQ(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNEQ(FieldPointsAwarded, v))
}

// PointsAwardedIn applies the In predicate on the "points_awarded" field.
func PointsAwardedIn(vs ...int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldIn(FieldPointsAwarded, vs...))
}

// PointsAwardedNotIn applies the NotIn predicate on the "points_awarded" field.
func PointsAwardedNotIn(vs ...int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldNotIn(FieldPointsAwarded, vs...))
}

// PointsAwardedGT applies the GT predicate on the "points_awarded" field.
func PointsAwardedGT(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGT(FieldPointsAwarded, v))
}

// PointsAwardedGTE applies the GTE predicate on the "points_awarded" field.
func PointsAwardedGTE(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldGTE(FieldPointsAwarded, v))
}

// PointsAwardedLT applies the LT predicate on the "points_awarded" field.
func PointsAwardedLT(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLT(FieldPointsAwarded, v))
}

// PointsAwardedLTE applies the LTE predicate on the "points_awarded" field.
func PointsAwardedLTE(v int) predicate.PointsEvent {
	return predicate.PointsEvent(sql.FieldLTE(FieldPointsAwarded, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PointsEvent) predicate.PointsEvent {
	return predicate.PointsEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PointsEvent) predicate.PointsEvent {
	return predicate.PointsEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PointsEvent) predicate.PointsEvent {
	return predicate.PointsEvent(sql.NotPredicates(p))
}
