// file: internals/features/lms/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type CourseLevel string

const (
	CourseLevelBeginner     CourseLevel = "beginner"
	CourseLevelIntermediate CourseLevel = "intermediate"
	CourseLevelAdvanced     CourseLevel = "advanced"
)

func (l CourseLevel) IsValid() bool {
	switch l {
	case CourseLevelBeginner, CourseLevelIntermediate, CourseLevelAdvanced:
		return true
	}
	return false
}

type CourseModel struct {
	CourseID          uuid.UUID   `gorm:"column:course_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`
	CourseWorkspaceID uuid.UUID   `gorm:"column:course_workspace_id;type:uuid;not null;index" json:"course_workspace_id"`
	CourseTitle       string      `gorm:"column:course_title;type:varchar(255);not null" json:"course_title"`
	CourseDescription string      `gorm:"column:course_description;type:text" json:"course_description"`
	CourseObjectives  string      `gorm:"column:course_learning_objectives;type:text" json:"course_learning_objectives"`
	CourseLevel       CourseLevel `gorm:"column:course_level;type:varchar(16);not null;default:'beginner'" json:"course_level"`
	CourseIsPublished bool        `gorm:"column:course_is_published;not null;default:false" json:"course_is_published"`

	// Public URL of the cover object in OSS; empty when no cover is attached.
	CourseCoverImageURL string `gorm:"column:course_cover_image_url;type:text" json:"course_cover_image_url,omitempty"`

	CourseCreatedAt time.Time `gorm:"column:course_created_at;not null;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time `gorm:"column:course_updated_at;not null;autoUpdateTime" json:"course_updated_at"`
}

// No soft delete: removing a course is permanent and cascades to sections and
// modules inside one transaction (see the controller).
func (CourseModel) TableName() string { return "courses" }
