// file: internals/features/lms/sections/model/section_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SectionModel struct {
	SectionID          uuid.UUID `gorm:"column:section_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"section_id"`
	SectionCourseID    uuid.UUID `gorm:"column:section_course_id;type:uuid;not null;index" json:"section_course_id"`
	SectionWorkspaceID uuid.UUID `gorm:"column:section_workspace_id;type:uuid;not null;index" json:"section_workspace_id"`
	SectionTitle       string    `gorm:"column:section_title;type:varchar(255);not null" json:"section_title"`

	// Display sort key within the course. Not unique: ties are broken by id
	// as a secondary sort, never rejected.
	SectionOrder int `gorm:"column:section_order;not null;default:0" json:"section_order"`

	SectionCreatedAt time.Time `gorm:"column:section_created_at;not null;autoCreateTime" json:"section_created_at"`
	SectionUpdatedAt time.Time `gorm:"column:section_updated_at;not null;autoUpdateTime" json:"section_updated_at"`
}

func (SectionModel) TableName() string { return "sections" }
