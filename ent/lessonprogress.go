// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/kosmi-edu/kosmi/ent/lessonprogress"
)

// LessonProgress is the model entity for the LessonProgress schema.
type LessonProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID uuid.UUID `json:"student_id,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed bool `json:"completed,omitempty"`
	// DepthAccessed holds the value of the "depth_accessed" field.
	DepthAccessed bool `json:"depth_accessed,omitempty"`
	// ReflectionAnswer holds the value of the "reflection_answer" field.
	ReflectionAnswer *string `json:"reflection_answer,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonprogress.FieldCompleted, lessonprogress.FieldDepthAccessed:
			values[i] = new(sql.NullBool)
		case lessonprogress.FieldID:
			values[i] = new(sql.NullInt64)
		case lessonprogress.FieldLessonID, lessonprogress.FieldReflectionAnswer:
			values[i] = new(sql.NullString)
		case lessonprogress.FieldCreatedAt, lessonprogress.FieldUpdatedAt, lessonprogress.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case lessonprogress.FieldStudentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonProgress fields.
func (_m *LessonProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessonprogress.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case lessonprogress.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case lessonprogress.FieldStudentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value != nil {
				_m.StudentID = *value
			}
		case lessonprogress.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case lessonprogress.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case lessonprogress.FieldDepthAccessed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field depth_accessed", values[i])
			} else if value.Valid {
				_m.DepthAccessed = value.Bool
			}
		case lessonprogress.FieldReflectionAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reflection_answer", values[i])
			} else if value.Valid {
				_m.ReflectionAnswer = new(string)
				*_m.ReflectionAnswer = value.String
			}
		case lessonprogress.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonProgress.
// This includes values selected through modifiers, order, etc.
func (_m *LessonProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonProgress.
// Note that you need to call LessonProgress.Unwrap() before calling this method if this LessonProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonProgress) Update() *LessonProgressUpdateOne {
	return NewLessonProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonProgress) Unwrap() *LessonProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonProgress) String() string {
	var builder strings.Builder
	builder.WriteString("LessonProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudentID))
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("depth_accessed=")
	builder.WriteString(fmt.Sprintf("%v", _m.DepthAccessed))
	builder.WriteString(", ")
	if v := _m.ReflectionAnswer; v != nil {
		builder.WriteString("reflection_answer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// LessonProgresses is a parsable slice of LessonProgress.
type LessonProgresses []*LessonProgress
