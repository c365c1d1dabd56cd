// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CharactersColumns holds the columns for the "characters" table.
	CharactersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "world_id", Type: field.TypeString, Default: ""},
		{Name: "name", Type: field.TypeString},
		{Name: "persona_description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "tone_guide", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "knowledge_scope", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "off_topic_redirect", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "voice_id", Type: field.TypeString, Default: ""},
		{Name: "system_prompt", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "avatar", Type: field.TypeString, Default: ""},
	}
	// CharactersTable holds the schema information for the "characters" table.
	CharactersTable = &schema.Table{
		Name:       "characters",
		Columns:    CharactersColumns,
		PrimaryKey: []*schema.Column{CharactersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "character_world_id",
				Unique:  false,
				Columns: []*schema.Column{CharactersColumns[4]},
			},
		},
	}
	// CoursesColumns holds the columns for the "courses" table.
	CoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "grade_min", Type: field.TypeInt, Default: 1},
		{Name: "grade_max", Type: field.TypeInt, Default: 8},
		{Name: "published", Type: field.TypeBool, Default: false},
		{Name: "position", Type: field.TypeInt, Default: 0},
	}
	// CoursesTable holds the schema information for the "courses" table.
	CoursesTable = &schema.Table{
		Name:       "courses",
		Columns:    CoursesColumns,
		PrimaryKey: []*schema.Column{CoursesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "course_topic_id",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_model",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "course_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "characters", Type: field.TypeJSON, Nullable: true},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_course_id_position",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[3], LessonsColumns[5]},
			},
		},
	}
	// LessonProgressesColumns holds the columns for the "lesson_progresses" table.
	LessonProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeUUID},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "depth_accessed", Type: field.TypeBool, Default: false},
		{Name: "reflection_answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// LessonProgressesTable holds the schema information for the "lesson_progresses" table.
	LessonProgressesTable = &schema.Table{
		Name:       "lesson_progresses",
		Columns:    LessonProgressesColumns,
		PrimaryKey: []*schema.Column{LessonProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonprogress_student_id_lesson_id",
				Unique:  true,
				Columns: []*schema.Column{LessonProgressesColumns[3], LessonProgressesColumns[4]},
			},
		},
	}
	// LessonVariantsColumns holds the columns for the "lesson_variants" table.
	LessonVariantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "target_grade", Type: field.TypeInt},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "intro_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "core_content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "core_image", Type: field.TypeString, Default: ""},
		{Name: "core_image_credit", Type: field.TypeString, Default: ""},
		{Name: "depth_content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "depth_image", Type: field.TypeString, Default: ""},
		{Name: "depth_image_credit", Type: field.TypeString, Default: ""},
		{Name: "reflection_question", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "points_base", Type: field.TypeInt, Default: 100},
		{Name: "points_depth_bonus", Type: field.TypeInt, Default: 50},
	}
	// LessonVariantsTable holds the schema information for the "lesson_variants" table.
	LessonVariantsTable = &schema.Table{
		Name:       "lesson_variants",
		Columns:    LessonVariantsColumns,
		PrimaryKey: []*schema.Column{LessonVariantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonvariant_lesson_id_target_grade",
				Unique:  true,
				Columns: []*schema.Column{LessonVariantsColumns[3], LessonVariantsColumns[4]},
			},
		},
	}
	// ParentChildLinksColumns holds the columns for the "parent_child_links" table.
	ParentChildLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "parent_id", Type: field.TypeUUID},
		{Name: "child_id", Type: field.TypeUUID},
	}
	// ParentChildLinksTable holds the schema information for the "parent_child_links" table.
	ParentChildLinksTable = &schema.Table{
		Name:       "parent_child_links",
		Columns:    ParentChildLinksColumns,
		PrimaryKey: []*schema.Column{ParentChildLinksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "parentchildlink_parent_id_child_id",
				Unique:  true,
				Columns: []*schema.Column{ParentChildLinksColumns[3], ParentChildLinksColumns[4]},
			},
			{
				Name:    "parentchildlink_child_id",
				Unique:  false,
				Columns: []*schema.Column{ParentChildLinksColumns[4]},
			},
		},
	}
	// PointsEventsColumns holds the columns for the "points_events" table.
	PointsEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeUUID},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "points_awarded", Type: field.TypeInt},
	}
	// PointsEventsTable holds the schema information for the "points_events" table.
	PointsEventsTable = &schema.Table{
		Name:       "points_events",
		Columns:    PointsEventsColumns,
		PrimaryKey: []*schema.Column{PointsEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pointsevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PointsEventsColumns[1]},
			},
			{
				Name:    "pointsevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PointsEventsColumns[2]},
			},
			{
				Name:    "pointsevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{PointsEventsColumns[3]},
			},
			{
				Name:    "pointsevent_student_id_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{PointsEventsColumns[3], PointsEventsColumns[4]},
			},
			{
				Name:    "pointsevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{PointsEventsColumns[5]},
			},
			{
				Name:    "pointsevent_student_id_lesson_id_event_type",
				Unique:  true,
				Columns: []*schema.Column{PointsEventsColumns[3], PointsEventsColumns[4], PointsEventsColumns[5]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "role", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Default: ""},
		{Name: "grade", Type: field.TypeInt, Nullable: true},
		{Name: "parent_id", Type: field.TypeUUID, Nullable: true},
		{Name: "points_total", Type: field.TypeInt, Default: 0},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_role",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[3]},
			},
			{
				Name:    "profile_parent_id",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[7]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "world_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "published", Type: field.TypeBool, Default: false},
		{Name: "position", Type: field.TypeInt, Default: 0},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topic_world_id",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[4]},
			},
		},
	}
	// WorldsColumns holds the columns for the "worlds" table.
	WorldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "cover_image", Type: field.TypeString, Default: ""},
		{Name: "published", Type: field.TypeBool, Default: false},
		{Name: "position", Type: field.TypeInt, Default: 0},
	}
	// WorldsTable holds the schema information for the "worlds" table.
	WorldsTable = &schema.Table{
		Name:       "worlds",
		Columns:    WorldsColumns,
		PrimaryKey: []*schema.Column{WorldsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "world_published",
				Unique:  false,
				Columns: []*schema.Column{WorldsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CharactersTable,
		CoursesTable,
		LlmRequestEventsTable,
		LessonsTable,
		LessonProgressesTable,
		LessonVariantsTable,
		ParentChildLinksTable,
		PointsEventsTable,
		ProfilesTable,
		TopicsTable,
		WorldsTable,
	}
)

func init() {
}
