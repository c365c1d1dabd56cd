// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/kosmi-edu/kosmi/ent/character"
	"github.com/kosmi-edu/kosmi/ent/course"
	"github.com/kosmi-edu/kosmi/ent/lesson"
	"github.com/kosmi-edu/kosmi/ent/lessonprogress"
	"github.com/kosmi-edu/kosmi/ent/lessonvariant"
	"github.com/kosmi-edu/kosmi/ent/llmrequestevent"
	"github.com/kosmi-edu/kosmi/ent/parentchildlink"
	"github.com/kosmi-edu/kosmi/ent/pointsevent"
	"github.com/kosmi-edu/kosmi/ent/profile"
	"github.com/kosmi-edu/kosmi/ent/schema"
	"github.com/kosmi-edu/kosmi/ent/topic"
	"github.com/kosmi-edu/kosmi/ent/world"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	characterMixin := schema.Character{}.Mixin()
	characterMixinFields0 := characterMixin[0].Fields()
	_ = characterMixinFields0
	characterFields := schema.Character{}.Fields()
	_ = characterFields
	// characterDescCreatedAt is the schema descriptor for created_at field.
	characterDescCreatedAt := characterMixinFields0[0].Descriptor()
	// character.DefaultCreatedAt holds the default value on creation for the created_at field.
	character.DefaultCreatedAt = characterDescCreatedAt.Default.(func() time.Time)
	// characterDescUpdatedAt is the schema descriptor for updated_at field.
	characterDescUpdatedAt := characterMixinFields0[1].Descriptor()
	// character.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	character.DefaultUpdatedAt = characterDescUpdatedAt.Default.(func() time.Time)
	// character.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	character.UpdateDefaultUpdatedAt = characterDescUpdatedAt.UpdateDefault.(func() time.Time)
	// characterDescSlug is the schema descriptor for slug field.
	characterDescSlug := characterFields[1].Descriptor()
	// character.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	character.SlugValidator = characterDescSlug.Validators[0].(func(string) error)
	// characterDescWorldID is the schema descriptor for world_id field.
	characterDescWorldID := characterFields[2].Descriptor()
	// character.DefaultWorldID holds the default value on creation for the world_id field.
	character.DefaultWorldID = characterDescWorldID.Default.(string)
	// characterDescName is the schema descriptor for name field.
	characterDescName := characterFields[3].Descriptor()
	// character.NameValidator is a validator for the "name" field. It is called by the builders before save.
	character.NameValidator = characterDescName.Validators[0].(func(string) error)
	// characterDescPersonaDescription is the schema descriptor for persona_description field.
	characterDescPersonaDescription := characterFields[4].Descriptor()
	// character.DefaultPersonaDescription holds the default value on creation for the persona_description field.
	character.DefaultPersonaDescription = characterDescPersonaDescription.Default.(string)
	// characterDescToneGuide is the schema descriptor for tone_guide field.
	characterDescToneGuide := characterFields[5].Descriptor()
	// character.DefaultToneGuide holds the default value on creation for the tone_guide field.
	character.DefaultToneGuide = characterDescToneGuide.Default.(string)
	// characterDescKnowledgeScope is the schema descriptor for knowledge_scope field.
	characterDescKnowledgeScope := characterFields[6].Descriptor()
	// character.DefaultKnowledgeScope holds the default value on creation for the knowledge_scope field.
	character.DefaultKnowledgeScope = characterDescKnowledgeScope.Default.(string)
	// characterDescOffTopicRedirect is the schema descriptor for off_topic_redirect field.
	characterDescOffTopicRedirect := characterFields[7].Descriptor()
	// character.DefaultOffTopicRedirect holds the default value on creation for the off_topic_redirect field.
	character.DefaultOffTopicRedirect = characterDescOffTopicRedirect.Default.(string)
	// characterDescVoiceID is the schema descriptor for voice_id field.
	characterDescVoiceID := characterFields[8].Descriptor()
	// character.DefaultVoiceID holds the default value on creation for the voice_id field.
	character.DefaultVoiceID = characterDescVoiceID.Default.(string)
	// characterDescSystemPrompt is the schema descriptor for system_prompt field.
	characterDescSystemPrompt := characterFields[9].Descriptor()
	// character.DefaultSystemPrompt holds the default value on creation for the system_prompt field.
	character.DefaultSystemPrompt = characterDescSystemPrompt.Default.(string)
	// characterDescAvatar is the schema descriptor for avatar field.
	characterDescAvatar := characterFields[10].Descriptor()
	// character.DefaultAvatar holds the default value on creation for the avatar field.
	character.DefaultAvatar = characterDescAvatar.Default.(string)
	// characterDescID is the schema descriptor for id field.
	characterDescID := characterFields[0].Descriptor()
	// character.IDValidator is a validator for the "id" field. It is called by the builders before save.
	character.IDValidator = characterDescID.Validators[0].(func(string) error)
	courseMixin := schema.Course{}.Mixin()
	courseMixinFields0 := courseMixin[0].Fields()
	_ = courseMixinFields0
	courseFields := schema.Course{}.Fields()
	_ = courseFields
	// courseDescCreatedAt is the schema descriptor for created_at field.
	courseDescCreatedAt := courseMixinFields0[0].Descriptor()
	// course.DefaultCreatedAt holds the default value on creation for the created_at field.
	course.DefaultCreatedAt = courseDescCreatedAt.Default.(func() time.Time)
	// courseDescUpdatedAt is the schema descriptor for updated_at field.
	courseDescUpdatedAt := courseMixinFields0[1].Descriptor()
	// course.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	course.DefaultUpdatedAt = courseDescUpdatedAt.Default.(func() time.Time)
	// course.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	course.UpdateDefaultUpdatedAt = courseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// courseDescSlug is the schema descriptor for slug field.
	courseDescSlug := courseFields[1].Descriptor()
	// course.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	course.SlugValidator = courseDescSlug.Validators[0].(func(string) error)
	// courseDescTopicID is the schema descriptor for topic_id field.
	courseDescTopicID := courseFields[2].Descriptor()
	// course.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	course.TopicIDValidator = courseDescTopicID.Validators[0].(func(string) error)
	// courseDescTitle is the schema descriptor for title field.
	courseDescTitle := courseFields[3].Descriptor()
	// course.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	course.TitleValidator = courseDescTitle.Validators[0].(func(string) error)
	// courseDescDescription is the schema descriptor for description field.
	courseDescDescription := courseFields[4].Descriptor()
	// course.DefaultDescription holds the default value on creation for the description field.
	course.DefaultDescription = courseDescDescription.Default.(string)
	// courseDescGradeMin is the schema descriptor for grade_min field.
	courseDescGradeMin := courseFields[5].Descriptor()
	// course.DefaultGradeMin holds the default value on creation for the grade_min field.
	course.DefaultGradeMin = courseDescGradeMin.Default.(int)
	// course.GradeMinValidator is a validator for the "grade_min" field. It is called by the builders before save.
	course.GradeMinValidator = courseDescGradeMin.Validators[0].(func(int) error)
	// courseDescGradeMax is the schema descriptor for grade_max field.
	courseDescGradeMax := courseFields[6].Descriptor()
	// course.DefaultGradeMax holds the default value on creation for the grade_max field.
	course.DefaultGradeMax = courseDescGradeMax.Default.(int)
	// course.GradeMaxValidator is a validator for the "grade_max" field. It is called by the builders before save.
	course.GradeMaxValidator = courseDescGradeMax.Validators[0].(func(int) error)
	// courseDescPublished is the schema descriptor for published field.
	courseDescPublished := courseFields[7].Descriptor()
	// course.DefaultPublished holds the default value on creation for the published field.
	course.DefaultPublished = courseDescPublished.Default.(bool)
	// courseDescPosition is the schema descriptor for position field.
	courseDescPosition := courseFields[8].Descriptor()
	// course.DefaultPosition holds the default value on creation for the position field.
	course.DefaultPosition = courseDescPosition.Default.(int)
	// courseDescID is the schema descriptor for id field.
	courseDescID := courseFields[0].Descriptor()
	// course.IDValidator is a validator for the "id" field. It is called by the builders before save.
	course.IDValidator = courseDescID.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessonMixin := schema.Lesson{}.Mixin()
	lessonMixinFields0 := lessonMixin[0].Fields()
	_ = lessonMixinFields0
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescCreatedAt is the schema descriptor for created_at field.
	lessonDescCreatedAt := lessonMixinFields0[0].Descriptor()
	// lesson.DefaultCreatedAt holds the default value on creation for the created_at field.
	lesson.DefaultCreatedAt = lessonDescCreatedAt.Default.(func() time.Time)
	// lessonDescUpdatedAt is the schema descriptor for updated_at field.
	lessonDescUpdatedAt := lessonMixinFields0[1].Descriptor()
	// lesson.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lesson.DefaultUpdatedAt = lessonDescUpdatedAt.Default.(func() time.Time)
	// lesson.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lesson.UpdateDefaultUpdatedAt = lessonDescUpdatedAt.UpdateDefault.(func() time.Time)
	// lessonDescCourseID is the schema descriptor for course_id field.
	lessonDescCourseID := lessonFields[1].Descriptor()
	// lesson.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	lesson.CourseIDValidator = lessonDescCourseID.Validators[0].(func(string) error)
	// lessonDescTitle is the schema descriptor for title field.
	lessonDescTitle := lessonFields[2].Descriptor()
	// lesson.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lesson.TitleValidator = lessonDescTitle.Validators[0].(func(string) error)
	// lessonDescPosition is the schema descriptor for position field.
	lessonDescPosition := lessonFields[3].Descriptor()
	// lesson.DefaultPosition holds the default value on creation for the position field.
	lesson.DefaultPosition = lessonDescPosition.Default.(int)
	// lessonDescID is the schema descriptor for id field.
	lessonDescID := lessonFields[0].Descriptor()
	// lesson.IDValidator is a validator for the "id" field. It is called by the builders before save.
	lesson.IDValidator = lessonDescID.Validators[0].(func(string) error)
	lessonprogressMixin := schema.LessonProgress{}.Mixin()
	lessonprogressMixinFields0 := lessonprogressMixin[0].Fields()
	_ = lessonprogressMixinFields0
	lessonprogressFields := schema.LessonProgress{}.Fields()
	_ = lessonprogressFields
	// lessonprogressDescCreatedAt is the schema descriptor for created_at field.
	lessonprogressDescCreatedAt := lessonprogressMixinFields0[0].Descriptor()
	// lessonprogress.DefaultCreatedAt holds the default value on creation for the created_at field.
	lessonprogress.DefaultCreatedAt = lessonprogressDescCreatedAt.Default.(func() time.Time)
	// lessonprogressDescUpdatedAt is the schema descriptor for updated_at field.
	lessonprogressDescUpdatedAt := lessonprogressMixinFields0[1].Descriptor()
	// lessonprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lessonprogress.DefaultUpdatedAt = lessonprogressDescUpdatedAt.Default.(func() time.Time)
	// lessonprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lessonprogress.UpdateDefaultUpdatedAt = lessonprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	// lessonprogressDescLessonID is the schema descriptor for lesson_id field.
	lessonprogressDescLessonID := lessonprogressFields[1].Descriptor()
	// lessonprogress.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonprogress.LessonIDValidator = lessonprogressDescLessonID.Validators[0].(func(string) error)
	// lessonprogressDescCompleted is the schema descriptor for completed field.
	lessonprogressDescCompleted := lessonprogressFields[2].Descriptor()
	// lessonprogress.DefaultCompleted holds the default value on creation for the completed field.
	lessonprogress.DefaultCompleted = lessonprogressDescCompleted.Default.(bool)
	// lessonprogressDescDepthAccessed is the schema descriptor for depth_accessed field.
	lessonprogressDescDepthAccessed := lessonprogressFields[3].Descriptor()
	// lessonprogress.DefaultDepthAccessed holds the default value on creation for the depth_accessed field.
	lessonprogress.DefaultDepthAccessed = lessonprogressDescDepthAccessed.Default.(bool)
	lessonvariantMixin := schema.LessonVariant{}.Mixin()
	lessonvariantMixinFields0 := lessonvariantMixin[0].Fields()
	_ = lessonvariantMixinFields0
	lessonvariantFields := schema.LessonVariant{}.Fields()
	_ = lessonvariantFields
	// lessonvariantDescCreatedAt is the schema descriptor for created_at field.
	lessonvariantDescCreatedAt := lessonvariantMixinFields0[0].Descriptor()
	// lessonvariant.DefaultCreatedAt holds the default value on creation for the created_at field.
	lessonvariant.DefaultCreatedAt = lessonvariantDescCreatedAt.Default.(func() time.Time)
	// lessonvariantDescUpdatedAt is the schema descriptor for updated_at field.
	lessonvariantDescUpdatedAt := lessonvariantMixinFields0[1].Descriptor()
	// lessonvariant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lessonvariant.DefaultUpdatedAt = lessonvariantDescUpdatedAt.Default.(func() time.Time)
	// lessonvariant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lessonvariant.UpdateDefaultUpdatedAt = lessonvariantDescUpdatedAt.UpdateDefault.(func() time.Time)
	// lessonvariantDescLessonID is the schema descriptor for lesson_id field.
	lessonvariantDescLessonID := lessonvariantFields[0].Descriptor()
	// lessonvariant.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonvariant.LessonIDValidator = lessonvariantDescLessonID.Validators[0].(func(string) error)
	// lessonvariantDescTargetGrade is the schema descriptor for target_grade field.
	lessonvariantDescTargetGrade := lessonvariantFields[1].Descriptor()
	// lessonvariant.TargetGradeValidator is a validator for the "target_grade" field. It is called by the builders before save.
	lessonvariant.TargetGradeValidator = lessonvariantDescTargetGrade.Validators[0].(func(int) error)
	// lessonvariantDescPosition is the schema descriptor for position field.
	lessonvariantDescPosition := lessonvariantFields[2].Descriptor()
	// lessonvariant.DefaultPosition holds the default value on creation for the position field.
	lessonvariant.DefaultPosition = lessonvariantDescPosition.Default.(int)
	// lessonvariantDescIntroText is the schema descriptor for intro_text field.
	lessonvariantDescIntroText := lessonvariantFields[3].Descriptor()
	// lessonvariant.DefaultIntroText holds the default value on creation for the intro_text field.
	lessonvariant.DefaultIntroText = lessonvariantDescIntroText.Default.(string)
	// lessonvariantDescCoreContent is the schema descriptor for core_content field.
	lessonvariantDescCoreContent := lessonvariantFields[4].Descriptor()
	// lessonvariant.DefaultCoreContent holds the default value on creation for the core_content field.
	lessonvariant.DefaultCoreContent = lessonvariantDescCoreContent.Default.(string)
	// lessonvariantDescCoreImage is the schema descriptor for core_image field.
	lessonvariantDescCoreImage := lessonvariantFields[5].Descriptor()
	// lessonvariant.DefaultCoreImage holds the default value on creation for the core_image field.
	lessonvariant.DefaultCoreImage = lessonvariantDescCoreImage.Default.(string)
	// lessonvariantDescCoreImageCredit is the schema descriptor for core_image_credit field.
	lessonvariantDescCoreImageCredit := lessonvariantFields[6].Descriptor()
	// lessonvariant.DefaultCoreImageCredit holds the default value on creation for the core_image_credit field.
	lessonvariant.DefaultCoreImageCredit = lessonvariantDescCoreImageCredit.Default.(string)
	// lessonvariantDescDepthContent is the schema descriptor for depth_content field.
	lessonvariantDescDepthContent := lessonvariantFields[7].Descriptor()
	// lessonvariant.DefaultDepthContent holds the default value on creation for the depth_content field.
	lessonvariant.DefaultDepthContent = lessonvariantDescDepthContent.Default.(string)
	// lessonvariantDescDepthImage is the schema descriptor for depth_image field.
	lessonvariantDescDepthImage := lessonvariantFields[8].Descriptor()
	// lessonvariant.DefaultDepthImage holds the default value on creation for the depth_image field.
	lessonvariant.DefaultDepthImage = lessonvariantDescDepthImage.Default.(string)
	// lessonvariantDescDepthImageCredit is the schema descriptor for depth_image_credit field.
	lessonvariantDescDepthImageCredit := lessonvariantFields[9].Descriptor()
	// lessonvariant.DefaultDepthImageCredit holds the default value on creation for the depth_image_credit field.
	lessonvariant.DefaultDepthImageCredit = lessonvariantDescDepthImageCredit.Default.(string)
	// lessonvariantDescReflectionQuestion is the schema descriptor for reflection_question field.
	lessonvariantDescReflectionQuestion := lessonvariantFields[10].Descriptor()
	// lessonvariant.DefaultReflectionQuestion holds the default value on creation for the reflection_question field.
	lessonvariant.DefaultReflectionQuestion = lessonvariantDescReflectionQuestion.Default.(string)
	// lessonvariantDescPointsBase is the schema descriptor for points_base field.
	lessonvariantDescPointsBase := lessonvariantFields[11].Descriptor()
	// lessonvariant.DefaultPointsBase holds the default value on creation for the points_base field.
	lessonvariant.DefaultPointsBase = lessonvariantDescPointsBase.Default.(int)
	// lessonvariant.PointsBaseValidator is a validator for the "points_base" field. It is called by the builders before save.
	lessonvariant.PointsBaseValidator = lessonvariantDescPointsBase.Validators[0].(func(int) error)
	// lessonvariantDescPointsDepthBonus is the schema descriptor for points_depth_bonus field.
	lessonvariantDescPointsDepthBonus := lessonvariantFields[12].Descriptor()
	// lessonvariant.DefaultPointsDepthBonus holds the default value on creation for the points_depth_bonus field.
	lessonvariant.DefaultPointsDepthBonus = lessonvariantDescPointsDepthBonus.Default.(int)
	// lessonvariant.PointsDepthBonusValidator is a validator for the "points_depth_bonus" field. It is called by the builders before save.
	lessonvariant.PointsDepthBonusValidator = lessonvariantDescPointsDepthBonus.Validators[0].(func(int) error)
	parentchildlinkMixin := schema.ParentChildLink{}.Mixin()
	parentchildlinkMixinFields0 := parentchildlinkMixin[0].Fields()
	_ = parentchildlinkMixinFields0
	parentchildlinkFields := schema.ParentChildLink{}.Fields()
	_ = parentchildlinkFields
	// parentchildlinkDescCreatedAt is the schema descriptor for created_at field.
	parentchildlinkDescCreatedAt := parentchildlinkMixinFields0[0].Descriptor()
	// parentchildlink.DefaultCreatedAt holds the default value on creation for the created_at field.
	parentchildlink.DefaultCreatedAt = parentchildlinkDescCreatedAt.Default.(func() time.Time)
	// parentchildlinkDescUpdatedAt is the schema descriptor for updated_at field.
	parentchildlinkDescUpdatedAt := parentchildlinkMixinFields0[1].Descriptor()
	// parentchildlink.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	parentchildlink.DefaultUpdatedAt = parentchildlinkDescUpdatedAt.Default.(func() time.Time)
	// parentchildlink.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	parentchildlink.UpdateDefaultUpdatedAt = parentchildlinkDescUpdatedAt.UpdateDefault.(func() time.Time)
	pointseventMixin := schema.PointsEvent{}.Mixin()
	pointseventMixinFields0 := pointseventMixin[0].Fields()
	_ = pointseventMixinFields0
	pointseventFields := schema.PointsEvent{}.Fields()
	_ = pointseventFields
	// pointseventDescTimestamp is the schema descriptor for timestamp field.
	pointseventDescTimestamp := pointseventMixinFields0[1].Descriptor()
	// pointsevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pointsevent.DefaultTimestamp = pointseventDescTimestamp.Default.(func() time.Time)
	// pointseventDescLessonID is the schema descriptor for lesson_id field.
	pointseventDescLessonID := pointseventFields[1].Descriptor()
	// pointsevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	pointsevent.LessonIDValidator = pointseventDescLessonID.Validators[0].(func(string) error)
	// pointseventDescEventType is the schema descriptor for event_type field.
	pointseventDescEventType := pointseventFields[2].Descriptor()
	// pointsevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	pointsevent.EventTypeValidator = pointseventDescEventType.Validators[0].(func(string) error)
	// pointseventDescPointsAwarded is the schema descriptor for points_awarded field.
	pointseventDescPointsAwarded := pointseventFields[3].Descriptor()
	// pointsevent.PointsAwardedValidator is a validator for the "points_awarded" field. It is called by the builders before save.
	pointsevent.PointsAwardedValidator = pointseventDescPointsAwarded.Validators[0].(func(int) error)
	profileMixin := schema.Profile{}.Mixin()
	profileMixinFields0 := profileMixin[0].Fields()
	_ = profileMixinFields0
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileMixinFields0[0].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileMixinFields0[1].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescRole is the schema descriptor for role field.
	profileDescRole := profileFields[1].Descriptor()
	// profile.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	profile.RoleValidator = profileDescRole.Validators[0].(func(string) error)
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[2].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescDisplayName is the schema descriptor for display_name field.
	profileDescDisplayName := profileFields[3].Descriptor()
	// profile.DefaultDisplayName holds the default value on creation for the display_name field.
	profile.DefaultDisplayName = profileDescDisplayName.Default.(string)
	// profileDescGrade is the schema descriptor for grade field.
	profileDescGrade := profileFields[4].Descriptor()
	// profile.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	profile.GradeValidator = profileDescGrade.Validators[0].(func(int) error)
	// profileDescPointsTotal is the schema descriptor for points_total field.
	profileDescPointsTotal := profileFields[6].Descriptor()
	// profile.DefaultPointsTotal holds the default value on creation for the points_total field.
	profile.DefaultPointsTotal = profileDescPointsTotal.Default.(int)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
	topicMixin := schema.Topic{}.Mixin()
	topicMixinFields0 := topicMixin[0].Fields()
	_ = topicMixinFields0
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescCreatedAt is the schema descriptor for created_at field.
	topicDescCreatedAt := topicMixinFields0[0].Descriptor()
	// topic.DefaultCreatedAt holds the default value on creation for the created_at field.
	topic.DefaultCreatedAt = topicDescCreatedAt.Default.(func() time.Time)
	// topicDescUpdatedAt is the schema descriptor for updated_at field.
	topicDescUpdatedAt := topicMixinFields0[1].Descriptor()
	// topic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	topic.DefaultUpdatedAt = topicDescUpdatedAt.Default.(func() time.Time)
	// topic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	topic.UpdateDefaultUpdatedAt = topicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// topicDescSlug is the schema descriptor for slug field.
	topicDescSlug := topicFields[1].Descriptor()
	// topic.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	topic.SlugValidator = topicDescSlug.Validators[0].(func(string) error)
	// topicDescWorldID is the schema descriptor for world_id field.
	topicDescWorldID := topicFields[2].Descriptor()
	// topic.WorldIDValidator is a validator for the "world_id" field. It is called by the builders before save.
	topic.WorldIDValidator = topicDescWorldID.Validators[0].(func(string) error)
	// topicDescTitle is the schema descriptor for title field.
	topicDescTitle := topicFields[3].Descriptor()
	// topic.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	topic.TitleValidator = topicDescTitle.Validators[0].(func(string) error)
	// topicDescDescription is the schema descriptor for description field.
	topicDescDescription := topicFields[4].Descriptor()
	// topic.DefaultDescription holds the default value on creation for the description field.
	topic.DefaultDescription = topicDescDescription.Default.(string)
	// topicDescPublished is the schema descriptor for published field.
	topicDescPublished := topicFields[5].Descriptor()
	// topic.DefaultPublished holds the default value on creation for the published field.
	topic.DefaultPublished = topicDescPublished.Default.(bool)
	// topicDescPosition is the schema descriptor for position field.
	topicDescPosition := topicFields[6].Descriptor()
	// topic.DefaultPosition holds the default value on creation for the position field.
	topic.DefaultPosition = topicDescPosition.Default.(int)
	// topicDescID is the schema descriptor for id field.
	topicDescID := topicFields[0].Descriptor()
	// topic.IDValidator is a validator for the "id" field. It is called by the builders before save.
	topic.IDValidator = topicDescID.Validators[0].(func(string) error)
	worldMixin := schema.World{}.Mixin()
	worldMixinFields0 := worldMixin[0].Fields()
	_ = worldMixinFields0
	worldFields := schema.World{}.Fields()
	_ = worldFields
	// worldDescCreatedAt is the schema descriptor for created_at field.
	worldDescCreatedAt := worldMixinFields0[0].Descriptor()
	// world.DefaultCreatedAt holds the default value on creation for the created_at field.
	world.DefaultCreatedAt = worldDescCreatedAt.Default.(func() time.Time)
	// worldDescUpdatedAt is the schema descriptor for updated_at field.
	worldDescUpdatedAt := worldMixinFields0[1].Descriptor()
	// world.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	world.DefaultUpdatedAt = worldDescUpdatedAt.Default.(func() time.Time)
	// world.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	world.UpdateDefaultUpdatedAt = worldDescUpdatedAt.UpdateDefault.(func() time.Time)
	// worldDescSlug is the schema descriptor for slug field.
	worldDescSlug := worldFields[1].Descriptor()
	// world.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	world.SlugValidator = worldDescSlug.Validators[0].(func(string) error)
	// worldDescTitle is the schema descriptor for title field.
	worldDescTitle := worldFields[2].Descriptor()
	// world.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	world.TitleValidator = worldDescTitle.Validators[0].(func(string) error)
	// worldDescDescription is the schema descriptor for description field.
	worldDescDescription := worldFields[3].Descriptor()
	// world.DefaultDescription holds the default value on creation for the description field.
	world.DefaultDescription = worldDescDescription.Default.(string)
	// worldDescCoverImage is the schema descriptor for cover_image field.
	worldDescCoverImage := worldFields[4].Descriptor()
	// world.DefaultCoverImage holds the default value on creation for the cover_image field.
	world.DefaultCoverImage = worldDescCoverImage.Default.(string)
	// worldDescPublished is the schema descriptor for published field.
	worldDescPublished := worldFields[5].Descriptor()
	// world.DefaultPublished holds the default value on creation for the published field.
	world.DefaultPublished = worldDescPublished.Default.(bool)
	// worldDescPosition is the schema descriptor for position field.
	worldDescPosition := worldFields[6].Descriptor()
	// world.DefaultPosition holds the default value on creation for the position field.
	world.DefaultPosition = worldDescPosition.Default.(int)
	// worldDescID is the schema descriptor for id field.
	worldDescID := worldFields[0].Descriptor()
	// world.IDValidator is a validator for the "id" field. It is called by the builders before save.
	world.IDValidator = worldDescID.Validators[0].(func(string) error)
}
