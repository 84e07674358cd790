// file: internals/features/lms/sections/controller/section_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "kursusku_backend/internals/features/lms/courses/model"
	moduleModel "kursusku_backend/internals/features/lms/modules/model"
	"kursusku_backend/internals/features/lms/sections/dto"
	"kursusku_backend/internals/features/lms/sections/model"
	helper "kursusku_backend/internals/helpers"
	helperAuth "kursusku_backend/internals/helpers/auth"
)

var validate = validator.New()

type SectionController struct {
	DB *gorm.DB
}

func NewSectionController(db *gorm.DB) *SectionController {
	return &SectionController{DB: db}
}

// =============================
// Create Section
// POST /courses/:course_id/sections
// =============================
func (ctrl *SectionController) CreateSection(c *fiber.Ctx) error {
	workspaceID, err := helperAuth.GetWorkspaceID(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "course_id is not a valid uuid")
	}

	var body dto.CreateSectionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	// Parent must exist in the caller's workspace before the insert.
	var course courseModel.CourseModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&course, "course_id = ? AND course_workspace_id = ?", courseID, workspaceID).Error; err != nil {
		return helper.TranslateDBError(err, "Course not found")
	}

	section := model.SectionModel{
		SectionCourseID:    courseID,
		SectionWorkspaceID: workspaceID,
		SectionTitle:       strings.TrimSpace(body.SectionTitle),
		SectionOrder:       body.SectionOrder,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&section).Error; err != nil {
		return helper.TranslateDBError(err, "")
	}

	return helper.JsonCreated(c, "Section created", dto.ToSectionDTO(section))
}

// =============================
// Update Section (partial)
// PUT /sections/:id
// =============================
func (ctrl *SectionController) UpdateSection(c *fiber.Ctx) error {
	workspaceID, err := helperAuth.GetWorkspaceID(c)
	if err != nil {
		return err
	}
	sectionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "section id is not a valid uuid")
	}

	var body dto.UpdateSectionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var section model.SectionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&section, "section_id = ? AND section_workspace_id = ?", sectionID, workspaceID).Error; err != nil {
		return helper.TranslateDBError(err, "Section not found")
	}

	if body.SectionTitle != nil {
		section.SectionTitle = strings.TrimSpace(*body.SectionTitle)
	}
	if body.SectionOrder != nil {
		section.SectionOrder = *body.SectionOrder
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&section).Error; err != nil {
		return helper.TranslateDBError(err, "")
	}
	return helper.JsonUpdated(c, "Section updated", dto.ToSectionDTO(section))
}

// =============================
// Delete Section (cascades to its modules)
// DELETE /sections/:id
// =============================
func (ctrl *SectionController) DeleteSection(c *fiber.Ctx) error {
	workspaceID, err := helperAuth.GetWorkspaceID(c)
	if err != nil {
		return err
	}
	sectionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "section id is not a valid uuid")
	}

	var section model.SectionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&section, "section_id = ? AND section_workspace_id = ?", sectionID, workspaceID).Error; err != nil {
		return helper.TranslateDBError(err, "Section not found")
	}

	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&moduleModel.ModuleModel{}, "module_section_id = ?", sectionID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SectionModel{}, "section_id = ?", sectionID).Error
	})
	if err != nil {
		return helper.TranslateDBError(err, "")
	}

	return helper.JsonDeleted(c, "Section deleted", fiber.Map{"section_id": sectionID})
}

// =============================
// Update Section Order (bulk, atomic)
// PUT /sections/order
// =============================
//
// The client sends the whole reindexed list after a drag-reorder. The course
// scope is derived from the first entry; an empty list is a no-op. Any id
// that does not match a row in that course fails the entire batch.
func (ctrl *SectionController) UpdateSectionOrder(c *fiber.Ctx) error {
	workspaceID, err := helperAuth.GetWorkspaceID(c)
	if err != nil {
		return err
	}

	var body dto.UpdateSectionOrderRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if len(body.Sections) == 0 {
		return helper.JsonUpdated(c, "No sections to reorder", []dto.SectionDTO{})
	}

	firstID, err := uuid.Parse(body.Sections[0].SectionID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "section_id is not a valid uuid")
	}
	var first model.SectionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&first, "section_id = ? AND section_workspace_id = ?", firstID, workspaceID).Error; err != nil {
		return helper.TranslateDBError(err, "Section not found")
	}
	courseID := first.SectionCourseID

	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		for _, item := range body.Sections {
			res := tx.Model(&model.SectionModel{}).
				Where("section_id = ? AND section_course_id = ?", item.SectionID, courseID).
				Update("section_order", item.SectionOrder)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected != 1 {
				return fiber.NewError(fiber.StatusNotFound, "Section "+item.SectionID+" not found in course")
			}
		}
		return nil
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fe
		}
		return helper.TranslateDBError(err, "")
	}

	var sections []model.SectionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("section_course_id = ?", courseID).
		Order("section_order ASC, section_id ASC").
		Find(&sections).Error; err != nil {
		return helper.TranslateDBError(err, "")
	}
	out := make([]dto.SectionDTO, 0, len(sections))
	for _, s := range sections {
		out = append(out, dto.ToSectionDTO(s))
	}
	return helper.JsonUpdated(c, "Section order updated", out)
}
