// Code generated by ent, DO NOT EDIT.

package lessonvariant

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessonvariant type in the database.
	Label = "lesson_variant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldTargetGrade holds the string denoting the target_grade field in the database.
	FieldTargetGrade = "target_grade"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldIntroText holds the string denoting the intro_text field in the database.
	FieldIntroText = "intro_text"
	// FieldCoreContent holds the string denoting the core_content field in the database.
	FieldCoreContent = "core_content"
	// FieldCoreImage holds the string denoting the core_image field in the database.
	FieldCoreImage = "core_image"
	// FieldCoreImageCredit holds the string denoting the core_image_credit field in the database.
	FieldCoreImageCredit = "core_image_credit"
	// FieldDepthContent holds the string denoting the depth_content field in the database.
	FieldDepthContent = "depth_content"
	// FieldDepthImage holds the string denoting the depth_image field in the database.
	FieldDepthImage = "depth_image"
	// FieldDepthImageCredit holds the string denoting the depth_image_credit field in the database.
	FieldDepthImageCredit = "depth_image_credit"
	// FieldReflectionQuestion holds the string denoting the reflection_question field in the database.
	FieldReflectionQuestion = "reflection_question"
	// FieldPointsBase holds the string denoting the points_base field in the database.
	FieldPointsBase = "points_base"
	// FieldPointsDepthBonus holds the string denoting the points_depth_bonus field in the database.
	FieldPointsDepthBonus = "points_depth_bonus"
	// Table holds the table name of the lessonvariant in the database.
	Table = "lesson_variants"
)

// Columns holds all SQL columns for lessonvariant fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldLessonID,
	FieldTargetGrade,
	FieldPosition,
	FieldIntroText,
	FieldCoreContent,
	FieldCoreImage,
	FieldCoreImageCredit,
	FieldDepthContent,
	FieldDepthImage,
	FieldDepthImageCredit,
	FieldReflectionQuestion,
	FieldPointsBase,
	FieldPointsDepthBonus,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	LessonIDValidator func(string) error
	// TargetGradeValidator is a validator for the "target_grade" field. It is called by the builders before save.
	TargetGradeValidator func(int) error
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
	// DefaultIntroText holds the default value on creation for the "intro_text" field.
	DefaultIntroText string
	// DefaultCoreContent holds the default value on creation for the "core_content" field.
	DefaultCoreContent string
	// DefaultCoreImage holds the default value on creation for the "core_image" field.
	DefaultCoreImage string
	// DefaultCoreImageCredit holds the default value on creation for the "core_image_credit" field.
	DefaultCoreImageCredit string
	// DefaultDepthContent holds the default value on creation for the "depth_content" field.
	DefaultDepthContent string
	// DefaultDepthImage holds the default value on creation for the "depth_image" field.
	DefaultDepthImage string
	// DefaultDepthImageCredit holds the default value on creation for the "depth_image_credit" field.
	DefaultDepthImageCredit string
	// DefaultReflectionQuestion holds the default value on creation for the "reflection_question" field.
	DefaultReflectionQuestion string
	// DefaultPointsBase holds the default value on creation for the "points_base" field.
	DefaultPointsBase int
	// PointsBaseValidator is a validator for the "points_base" field. It is called by the builders before save.
	PointsBaseValidator func(int) error
	// DefaultPointsDepthBonus holds the default value on creation for the "points_depth_bonus" field.
	DefaultPointsDepthBonus int
	// PointsDepthBonusValidator is a validator for the "points_depth_bonus" field. It is called by the builders before save.
	PointsDepthBonusValidator func(int) error
)

// OrderOption defines the ordering options for the LessonVariant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByTargetGrade orders the results by the target_grade field.
func ByTargetGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetGrade, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByIntroText orders the results by the intro_text field.
func ByIntroText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntroText, opts...).ToFunc()
}

// ByCoreContent orders the results by the core_content field.
func ByCoreContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoreContent, opts...).ToFunc()
}

// ByCoreImage orders the results by the core_image field.
func ByCoreImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoreImage, opts...).ToFunc()
}

// ByCoreImageCredit orders the results by the core_image_credit field.
func ByCoreImageCredit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoreImageCredit, opts...).ToFunc()
}

// ByDepthContent orders the results by the depth_content field.
func ByDepthContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepthContent, opts...).ToFunc()
}

// ByDepthImage orders the results by the depth_image field.
func ByDepthImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepthImage, opts...).ToFunc()
}

// ByDepthImageCredit orders the results by the depth_image_credit field.
func ByDepthImageCredit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepthImageCredit, opts...).ToFunc()
}

// ByReflectionQuestion orders the results by the reflection_question field.
func ByReflectionQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReflectionQuestion, opts...).ToFunc()
}

// ByPointsBase orders the results by the points_base field.
func ByPointsBase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointsBase, opts...).ToFunc()
}

// ByPointsDepthBonus orders the results by the points_depth_bonus field.
func ByPointsDepthBonus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointsDepthBonus, opts...).ToFunc()
}
