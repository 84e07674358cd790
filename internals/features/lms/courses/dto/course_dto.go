// file: internals/features/lms/courses/dto/course_dto.go
package dto

import (
	"time"

	"kursusku_backend/internals/features/lms/courses/model"
)

// ============================
// Requests
// ============================

// Cover image arrives as a multipart file part named "cover_image", hence the
// form tags alongside json.
type CreateCourseRequest struct {
	CourseTitle       string `json:"course_title" form:"course_title" validate:"required,min=1,max=255"`
	CourseDescription string `json:"course_description" form:"course_description" validate:"max=10000"`
	CourseObjectives  string `json:"course_learning_objectives" form:"course_learning_objectives" validate:"max=10000"`
	CourseLevel       string `json:"course_level" form:"course_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	CourseIsPublished bool   `json:"course_is_published" form:"course_is_published"`
}

type UpdateCourseRequest struct {
	CourseTitle       *string `json:"course_title" form:"course_title" validate:"omitempty,min=1,max=255"`
	CourseDescription *string `json:"course_description" form:"course_description" validate:"omitempty,max=10000"`
	CourseObjectives  *string `json:"course_learning_objectives" form:"course_learning_objectives" validate:"omitempty,max=10000"`
	CourseLevel       *string `json:"course_level" form:"course_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	CourseIsPublished *bool   `json:"course_is_published" form:"course_is_published"`
}

// ============================
// Response
// ============================

type CourseDTO struct {
	CourseID            string    `json:"course_id"`
	CourseWorkspaceID   string    `json:"course_workspace_id"`
	CourseTitle         string    `json:"course_title"`
	CourseDescription   string    `json:"course_description"`
	CourseObjectives    string    `json:"course_learning_objectives"`
	CourseLevel         string    `json:"course_level"`
	CourseIsPublished   bool      `json:"course_is_published"`
	CourseCoverImageURL string    `json:"course_cover_image_url,omitempty"`
	CourseCreatedAt     time.Time `json:"course_created_at"`
	CourseUpdatedAt     time.Time `json:"course_updated_at"`
}

func ToCourseDTO(m model.CourseModel) CourseDTO {
	return CourseDTO{
		CourseID:            m.CourseID.String(),
		CourseWorkspaceID:   m.CourseWorkspaceID.String(),
		CourseTitle:         m.CourseTitle,
		CourseDescription:   m.CourseDescription,
		CourseObjectives:    m.CourseObjectives,
		CourseLevel:         string(m.CourseLevel),
		CourseIsPublished:   m.CourseIsPublished,
		CourseCoverImageURL: m.CourseCoverImageURL,
		CourseCreatedAt:     m.CourseCreatedAt,
		CourseUpdatedAt:     m.CourseUpdatedAt,
	}
}
