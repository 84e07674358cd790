// file: internals/features/lms/modules/dto/module_dto.go
package dto

import (
	"encoding/json"
	"time"

	"kursusku_backend/internals/features/lms/modules/model"
)

// ============================
// Requests
// ============================

// ModuleData is optional on create: when absent the controller fills it from
// the module type registry's default factory.
type CreateModuleRequest struct {
	ModuleSectionID string          `json:"module_section_id" validate:"required,uuid"`
	ModuleCourseID  string          `json:"module_course_id" validate:"required,uuid"`
	ModuleTitle     string          `json:"module_title" validate:"required,min=1,max=255"`
	ModuleType      string          `json:"module_type" validate:"required"`
	ModuleOrder     int             `json:"module_order" validate:"gte=0"`
	ModuleData      json.RawMessage `json:"module_data,omitempty"`
}

type UpdateModuleRequest struct {
	ModuleTitle *string         `json:"module_title" validate:"omitempty,min=1,max=255"`
	ModuleOrder *int            `json:"module_order" validate:"omitempty,gte=0"`
	ModuleData  json.RawMessage `json:"module_data,omitempty"`
}

// UpdateModuleOrderRequest is the bulk reorder payload. Entries may move a
// module to a different section; modules not listed are left untouched.
type UpdateModuleOrderRequest struct {
	CourseID     string            `json:"course_id" validate:"required,uuid"`
	ModuleOrders []ModuleOrderItem `json:"module_orders" validate:"required,min=1,dive"`
}

type ModuleOrderItem struct {
	ModuleID  string `json:"module_id" validate:"required,uuid"`
	Order     int    `json:"order" validate:"gte=0"`
	SectionID string `json:"section_id" validate:"required,uuid"`
}

// ============================
// Response
// ============================

type ModuleDTO struct {
	ModuleID        string          `json:"module_id"`
	ModuleSectionID string          `json:"module_section_id"`
	ModuleCourseID  string          `json:"module_course_id"`
	ModuleTitle     string          `json:"module_title"`
	ModuleType      string          `json:"module_type"`
	ModuleOrder     int             `json:"module_order"`
	ModuleData      json.RawMessage `json:"module_data"`
	ModuleCreatedAt time.Time       `json:"module_created_at"`
	ModuleUpdatedAt time.Time       `json:"module_updated_at"`
}

func ToModuleDTO(m model.ModuleModel) ModuleDTO {
	return ModuleDTO{
		ModuleID:        m.ModuleID.String(),
		ModuleSectionID: m.ModuleSectionID.String(),
		ModuleCourseID:  m.ModuleCourseID.String(),
		ModuleTitle:     m.ModuleTitle,
		ModuleType:      m.ModuleType,
		ModuleOrder:     m.ModuleOrder,
		ModuleData:      json.RawMessage(m.ModuleData),
		ModuleCreatedAt: m.ModuleCreatedAt,
		ModuleUpdatedAt: m.ModuleUpdatedAt,
	}
}
