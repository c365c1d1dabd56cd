// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/kosmi-edu/kosmi/ent/pointsevent"
)

// PointsEvent is the model entity for the PointsEvent schema.
type PointsEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global sequence shared by all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock time the event was appended
	Timestamp time.Time `json:"timestamp,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID uuid.UUID `json:"student_id,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// depth_accessed or lesson_completed
	EventType string `json:"event_type,omitempty"`
	// PointsAwarded holds the value of the "points_awarded" field.
	PointsAwarded int `json:"points_awarded,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PointsEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pointsevent.FieldID, pointsevent.FieldSequence, pointsevent.FieldPointsAwarded:
			values[i] = new(sql.NullInt64)
		case pointsevent.FieldLessonID, pointsevent.FieldEventType:
			values[i] = new(sql.NullString)
		case pointsevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		case pointsevent.FieldStudentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PointsEvent fields.
func (_m *PointsEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pointsevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pointsevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case pointsevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case pointsevent.FieldStudentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value != nil {
				_m.StudentID = *value
			}
		case pointsevent.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case pointsevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case pointsevent.FieldPointsAwarded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points_awarded", values[i])
			} else if value.Valid {
				_m.PointsAwarded = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PointsEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PointsEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PointsEvent.
// Note that you need to call PointsEvent.Unwrap() before calling this method if this PointsEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PointsEvent) Update() *PointsEventUpdateOne {
	return NewPointsEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PointsEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PointsEvent) Unwrap() *PointsEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PointsEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PointsEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PointsEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudentID))
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("points_awarded=")
	builder.WriteString(fmt.Sprintf("%v", _m.PointsAwarded))
	builder.WriteByte(')')
	return builder.String()
}

// PointsEvents is a parsable slice of PointsEvent.
type PointsEvents []*PointsEvent
