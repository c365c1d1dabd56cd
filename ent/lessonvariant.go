// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kosmi-edu/kosmi/ent/lessonvariant"
)

// LessonVariant is the model entity for the LessonVariant schema.
type LessonVariant struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// TargetGrade holds the value of the "target_grade" field.
	TargetGrade int `json:"target_grade,omitempty"`
	// Definition order; the lowest is the fallback variant
	Position int `json:"position,omitempty"`
	// IntroText holds the value of the "intro_text" field.
	IntroText string `json:"intro_text,omitempty"`
	// CoreContent holds the value of the "core_content" field.
	CoreContent string `json:"core_content,omitempty"`
	// CoreImage holds the value of the "core_image" field.
	CoreImage string `json:"core_image,omitempty"`
	// CoreImageCredit holds the value of the "core_image_credit" field.
	CoreImageCredit string `json:"core_image_credit,omitempty"`
	// DepthContent holds the value of the "depth_content" field.
	DepthContent string `json:"depth_content,omitempty"`
	// DepthImage holds the value of the "depth_image" field.
	DepthImage string `json:"depth_image,omitempty"`
	// DepthImageCredit holds the value of the "depth_image_credit" field.
	DepthImageCredit string `json:"depth_image_credit,omitempty"`
	// ReflectionQuestion holds the value of the "reflection_question" field.
	ReflectionQuestion string `json:"reflection_question,omitempty"`
	// PointsBase holds the value of the "points_base" field.
	PointsBase int `json:"points_base,omitempty"`
	// PointsDepthBonus holds the value of the "points_depth_bonus" field.
	PointsDepthBonus int `json:"points_depth_bonus,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonVariant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonvariant.FieldID, lessonvariant.FieldTargetGrade, lessonvariant.FieldPosition, lessonvariant.FieldPointsBase, lessonvariant.FieldPointsDepthBonus:
			values[i] = new(sql.NullInt64)
		case lessonvariant.FieldLessonID, lessonvariant.FieldIntroText, lessonvariant.FieldCoreContent, lessonvariant.FieldCoreImage, lessonvariant.FieldCoreImageCredit, lessonvariant.FieldDepthContent, lessonvariant.FieldDepthImage, lessonvariant.FieldDepthImageCredit, lessonvariant.FieldReflectionQuestion:
			values[i] = new(sql.NullString)
		case lessonvariant.FieldCreatedAt, lessonvariant.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonVariant fields.
func (_m *LessonVariant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonvariant.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessonvariant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case lessonvariant.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case lessonvariant.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case lessonvariant.FieldTargetGrade:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field target_grade", values[i])
			} else if value.Valid {
				_m.TargetGrade = int(value.Int64)
			}
		case lessonvariant.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case lessonvariant.FieldIntroText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intro_text", values[i])
			} else if value.Valid {
				_m.IntroText = value.String
			}
		case lessonvariant.FieldCoreContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field core_content", values[i])
			} else if value.Valid {
				_m.CoreContent = value.String
			}
		case lessonvariant.FieldCoreImage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field core_image", values[i])
			} else if value.Valid {
				_m.CoreImage = value.String
			}
		case lessonvariant.FieldCoreImageCredit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field core_image_credit", values[i])
			} else if value.Valid {
				_m.CoreImageCredit = value.String
			}
		case lessonvariant.FieldDepthContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field depth_content", values[i])
			} else if value.Valid {
				_m.DepthContent = value.String
			}
		case lessonvariant.FieldDepthImage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field depth_image", values[i])
			} else if value.Valid {
				_m.DepthImage = value.String
			}
		case lessonvariant.FieldDepthImageCredit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field depth_image_credit", values[i])
			} else if value.Valid {
				_m.DepthImageCredit = value.String
			}
		case lessonvariant.FieldReflectionQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reflection_question", values[i])
			} else if value.Valid {
				_m.ReflectionQuestion = value.String
			}
		case lessonvariant.FieldPointsBase:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points_base", values[i])
			} else if value.Valid {
				_m.PointsBase = int(value.Int64)
			}
		case lessonvariant.FieldPointsDepthBonus:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points_depth_bonus", values[i])
			} else if value.Valid {
				_m.PointsDepthBonus = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonVariant.
// This includes values selected through modifiers, order, etc.
func (_m *LessonVariant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonVariant.
// Note that you need to call LessonVariant.Unwrap() before calling this method if this LessonVariant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonVariant) Update() *LessonVariantUpdateOne {
	return NewLessonVariantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonVariant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonVariant) Unwrap() *LessonVariant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonVariant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonVariant) String() string {
	var builder strings.Builder
	builder.WriteString("LessonVariant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("target_grade=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetGrade))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("intro_text=")
	builder.WriteString(_m.IntroText)
	builder.WriteString(", ")
	builder.WriteString("core_content=")
	builder.WriteString(_m.CoreContent)
	builder.WriteString(", ")
	builder.WriteString("core_image=")
	builder.WriteString(_m.CoreImage)
	builder.WriteString(", ")
	builder.WriteString("core_image_credit=")
	builder.WriteString(_m.CoreImageCredit)
	builder.WriteString(", ")
	builder.WriteString("depth_content=")
	builder.WriteString(_m.DepthContent)
	builder.WriteString(", ")
	builder.WriteString("depth_image=")
	builder.WriteString(_m.DepthImage)
	builder.WriteString(", ")
	builder.WriteString("depth_image_credit=")
	builder.WriteString(_m.DepthImageCredit)
	builder.WriteString(", ")
	builder.WriteString("reflection_question=")
	builder.WriteString(_m.ReflectionQuestion)
	builder.WriteString(", ")
	builder.WriteString("points_base=")
	builder.WriteString(fmt.Sprintf("%v", _m.PointsBase))
	builder.WriteString(", ")
	builder.WriteString("points_depth_bonus=")
	builder.WriteString(fmt.Sprintf("%v", _m.PointsDepthBonus))
	builder.WriteByte(')')
	return builder.String()
}

// LessonVariants is a parsable slice of LessonVariant.
type LessonVariants []*LessonVariant
