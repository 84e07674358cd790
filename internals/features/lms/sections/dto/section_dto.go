// file: internals/features/lms/sections/dto/section_dto.go
package dto

import (
	"time"

	"kursusku_backend/internals/features/lms/sections/model"
)

// ============================
// Requests
// ============================

type CreateSectionRequest struct {
	SectionTitle string `json:"section_title" validate:"required,min=1,max=255"`
	SectionOrder int    `json:"section_order" validate:"gte=0"`
}

type UpdateSectionRequest struct {
	SectionTitle *string `json:"section_title" validate:"omitempty,min=1,max=255"`
	SectionOrder *int    `json:"section_order" validate:"omitempty,gte=0"`
}

// UpdateSectionOrderRequest carries the client-computed order for the whole
// course after a drag-reorder. The course scope is derived from the first
// entry; an empty list is a no-op.
type UpdateSectionOrderRequest struct {
	Sections []SectionOrderItem `json:"sections" validate:"dive"`
}

type SectionOrderItem struct {
	SectionID    string `json:"section_id" validate:"required,uuid"`
	SectionOrder int    `json:"section_order" validate:"gte=0"`
}

// ============================
// Response
// ============================

type SectionDTO struct {
	SectionID        string    `json:"section_id"`
	SectionCourseID  string    `json:"section_course_id"`
	SectionTitle     string    `json:"section_title"`
	SectionOrder     int       `json:"section_order"`
	SectionCreatedAt time.Time `json:"section_created_at"`
	SectionUpdatedAt time.Time `json:"section_updated_at"`
}

func ToSectionDTO(m model.SectionModel) SectionDTO {
	return SectionDTO{
		SectionID:        m.SectionID.String(),
		SectionCourseID:  m.SectionCourseID.String(),
		SectionTitle:     m.SectionTitle,
		SectionOrder:     m.SectionOrder,
		SectionCreatedAt: m.SectionCreatedAt,
		SectionUpdatedAt: m.SectionUpdatedAt,
	}
}
