// file: internals/features/lms/modules/model/module_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kursusku_backend/internals/features/lms/modules/modtype"
)

type ModuleModel struct {
	ModuleID          uuid.UUID `gorm:"column:module_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"module_id"`
	ModuleSectionID   uuid.UUID `gorm:"column:module_section_id;type:uuid;not null;index" json:"module_section_id"`
	ModuleCourseID    uuid.UUID `gorm:"column:module_course_id;type:uuid;not null;index" json:"module_course_id"`
	ModuleWorkspaceID uuid.UUID `gorm:"column:module_workspace_id;type:uuid;not null;index" json:"module_workspace_id"`

	ModuleTitle string `gorm:"column:module_title;type:varchar(255);not null" json:"module_title"`
	ModuleType  string `gorm:"column:module_type;type:varchar(16);not null" json:"module_type"`
	ModuleOrder int    `gorm:"column:module_order;not null;default:0" json:"module_order"`

	// Type-specific payload, shape governed by modtype definitions.
	ModuleData datatypes.JSON `gorm:"column:module_data;type:jsonb;not null" json:"module_data"`

	ModuleCreatedAt time.Time `gorm:"column:module_created_at;not null;autoCreateTime" json:"module_created_at"`
	ModuleUpdatedAt time.Time `gorm:"column:module_updated_at;not null;autoUpdateTime" json:"module_updated_at"`
}

func (ModuleModel) TableName() string { return "modules" }

// DecodeData parses the jsonb payload into its concrete modtype variant.
func (m *ModuleModel) DecodeData() (modtype.ModuleData, error) {
	return modtype.DecodeData(m.ModuleType, m.ModuleData)
}

// SetData serializes a typed payload back into the jsonb column.
func (m *ModuleModel) SetData(data modtype.ModuleData) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	m.ModuleData = datatypes.JSON(b)
	return nil
}

// ToDomain maps the row into the neutral representation the validators use.
func (m *ModuleModel) ToDomain() (modtype.Module, error) {
	data, err := m.DecodeData()
	if err != nil {
		return modtype.Module{}, err
	}
	return modtype.Module{
		ID:        m.ModuleID.String(),
		SectionID: m.ModuleSectionID.String(),
		Title:     m.ModuleTitle,
		Type:      m.ModuleType,
		Order:     m.ModuleOrder,
		Data:      data,
	}, nil
}
