// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/kosmi-edu/kosmi/ent/parentchildlink"
)

// ParentChildLink is the model entity for the ParentChildLink schema.
type ParentChildLink struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ParentID holds the value of the "parent_id" field.
	ParentID uuid.UUID `json:"parent_id,omitempty"`
	// ChildID holds the value of the "child_id" field.
	ChildID      uuid.UUID `json:"child_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ParentChildLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case parentchildlink.FieldID:
			values[i] = new(sql.NullInt64)
		case parentchildlink.FieldCreatedAt, parentchildlink.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case parentchildlink.FieldParentID, parentchildlink.FieldChildID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ParentChildLink fields.
func (_m *ParentChildLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case parentchildlink.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case parentchildlink.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case parentchildlink.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case parentchildlink.FieldParentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value != nil {
				_m.ParentID = *value
			}
		case parentchildlink.FieldChildID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field child_id", values[i])
			} else if value != nil {
				_m.ChildID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ParentChildLink.
// This includes values selected through modifiers, order, etc.
func (_m *ParentChildLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ParentChildLink.
// Note that you need to call ParentChildLink.Unwrap() before calling this method if this ParentChildLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ParentChildLink) Update() *ParentChildLinkUpdateOne {
	return NewParentChildLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ParentChildLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ParentChildLink) Unwrap() *ParentChildLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ParentChildLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ParentChildLink) String() string {
	var builder strings.Builder
	builder.WriteString("ParentChildLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("parent_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParentID))
	builder.WriteString(", ")
	builder.WriteString("child_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChildID))
	builder.WriteByte(')')
	return builder.String()
}

// ParentChildLinks is a parsable slice of ParentChildLink.
type ParentChildLinks []*ParentChildLink
