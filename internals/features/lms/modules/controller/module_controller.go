// file: internals/features/lms/modules/controller/module_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/lms/modules/dto"
	"kursusku_backend/internals/features/lms/modules/model"
	"kursusku_backend/internals/features/lms/modules/modtype"
	sectionModel "kursusku_backend/internals/features/lms/sections/model"
	helper "kursusku_backend/internals/helpers"
	helperAuth "kursusku_backend/internals/helpers/auth"
)

var validate = validator.New()

type ModuleController struct {
	DB *gorm.DB
}

func NewModuleController(db *gorm.DB) *ModuleController {
	return &ModuleController{DB: db}
}

// =============================
// Module type metadata
// GET /module-types
// =============================
func (ctrl *ModuleController) GetModuleTypes(c *fiber.Ctx) error {
	return helper.JsonOK(c, "", modtype.Metas())
}

// =============================
// Create Module
// POST /modules
// =============================
//
// When module_data is absent the registry's default factory fills it in.
// Payload semantics (e.g. "quiz needs a question") are enforced on update,
// not here: a freshly added module legitimately starts in an incomplete
// state that the editor prompts the author to finish.
func (ctrl *ModuleController) CreateModule(c *fiber.Ctx) error {
	workspaceID, err := helperAuth.GetWorkspaceID(c)
	if err != nil {
		return err
	}

	var body dto.CreateModuleRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if _, ok := modtype.Get(body.ModuleType); !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown module type "+body.ModuleType)
	}

	var data modtype.ModuleData
	if len(body.ModuleData) == 0 {
		data, err = modtype.DefaultData(body.ModuleType)
	} else {
		data, err = modtype.DecodeData(body.ModuleType, body.ModuleData)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid module data: "+err.Error())
	}

	sectionID, err := uuid.Parse(body.ModuleSectionID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "module_section_id is not a valid uuid")
	}
	courseID, err := uuid.Parse(body.ModuleCourseID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "module_course_id is not a valid uuid")
	}

	// Referential check: the section must belong to the given course inside
	// the caller's workspace.
	var section sectionModel.SectionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&section, "section_id = ? AND section_course_id = ? AND section_workspace_id = ?",
			sectionID, courseID, workspaceID).Error; err != nil {
		return helper.TranslateDBError(err, "Section not found in course")
	}

	module := model.ModuleModel{
		ModuleSectionID:   sectionID,
		ModuleCourseID:    courseID,
		ModuleWorkspaceID: workspaceID,
		ModuleTitle:       strings.TrimSpace(body.ModuleTitle),
		ModuleType:        body.ModuleType,
		ModuleOrder:       body.ModuleOrder,
	}
	if err := module.SetData(data); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to encode module data")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&module).Error; err != nil {
		return helper.TranslateDBError(err, "")
	}
	return helper.JsonCreated(c, "Module created", dto.ToModuleDTO(module))
}

// =============================
// Update Module (partial; full payload validation)
// PUT /modules/:id
// =============================
func (ctrl *ModuleController) UpdateModule(c *fiber.Ctx) error {
	workspaceID, err := helperAuth.GetWorkspaceID(c)
	if err != nil {
		return err
	}
	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "module id is not a valid uuid")
	}

	var body dto.UpdateModuleRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var module model.ModuleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&module, "module_id = ? AND module_workspace_id = ?", moduleID, workspaceID).Error; err != nil {
		return helper.TranslateDBError(err, "Module not found")
	}

	if body.ModuleTitle != nil {
		module.ModuleTitle = strings.TrimSpace(*body.ModuleTitle)
	}
	if body.ModuleOrder != nil {
		module.ModuleOrder = *body.ModuleOrder
	}
	if len(body.ModuleData) > 0 {
		data, err := modtype.DecodeData(module.ModuleType, body.ModuleData)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid module data: "+err.Error())
		}
		if err := module.SetData(data); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to encode module data")
		}
	}

	// Saving an edited module requires the full structural/semantic rules to
	// hold; errors come back dot-path keyed for inline display.
	domain, err := module.ToDomain()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid module data: "+err.Error())
	}
	if errs := modtype.Validate(domain); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&module).Error; err != nil {
		return helper.TranslateDBError(err, "")
	}
	return helper.JsonUpdated(c, "Module updated", dto.ToModuleDTO(module))
}

// =============================
// Delete Module
// DELETE /modules/:id
// =============================
func (ctrl *ModuleController) DeleteModule(c *fiber.Ctx) error {
	workspaceID, err := helperAuth.GetWorkspaceID(c)
	if err != nil {
		return err
	}
	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "module id is not a valid uuid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.ModuleModel{}, "module_id = ? AND module_workspace_id = ?", moduleID, workspaceID)
	if res.Error != nil {
		return helper.TranslateDBError(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Module not found")
	}
	return helper.JsonDeleted(c, "Module deleted", fiber.Map{"module_id": moduleID})
}

// =============================
// Update Module Order (bulk, atomic; section moves allowed)
// PUT /modules/order
// =============================
//
// Applies order and section reassignment to the listed modules only; any id
// that does not resolve inside the course fails the whole batch. Modules not
// listed are untouched.
func (ctrl *ModuleController) UpdateModuleOrder(c *fiber.Ctx) error {
	workspaceID, err := helperAuth.GetWorkspaceID(c)
	if err != nil {
		return err
	}

	var body dto.UpdateModuleOrderRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	courseID, err := uuid.Parse(body.CourseID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "course_id is not a valid uuid")
	}

	// Every target section must exist in this course before any row moves.
	sectionIDs := make([]string, 0, len(body.ModuleOrders))
	seen := map[string]bool{}
	for _, item := range body.ModuleOrders {
		if !seen[item.SectionID] {
			seen[item.SectionID] = true
			sectionIDs = append(sectionIDs, item.SectionID)
		}
	}
	var sectionCount int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&sectionModel.SectionModel{}).
		Where("section_id IN ? AND section_course_id = ? AND section_workspace_id = ?",
			sectionIDs, courseID, workspaceID).
		Count(&sectionCount).Error; err != nil {
		return helper.TranslateDBError(err, "")
	}
	if sectionCount != int64(len(sectionIDs)) {
		return fiber.NewError(fiber.StatusNotFound, "One or more target sections not found in course")
	}

	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		for _, item := range body.ModuleOrders {
			res := tx.Model(&model.ModuleModel{}).
				Where("module_id = ? AND module_course_id = ? AND module_workspace_id = ?",
					item.ModuleID, courseID, workspaceID).
				Updates(map[string]any{
					"module_order":      item.Order,
					"module_section_id": item.SectionID,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected != 1 {
				return fiber.NewError(fiber.StatusNotFound, "Module "+item.ModuleID+" not found in course")
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

	// Respond with the updated rows only. Clients merge the response by id,
	// so modules outside the batch must not be re-serialized back to them.
	moduleIDs := make([]string, 0, len(body.ModuleOrders))
	for _, item := range body.ModuleOrders {
		moduleIDs = append(moduleIDs, item.ModuleID)
	}
	var modules []model.ModuleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("module_id IN ? AND module_course_id = ?", moduleIDs, courseID).
		Order("module_order ASC, module_id ASC").
		Find(&modules).Error; err != nil {
		return helper.TranslateDBError(err, "")
	}
	out := make([]dto.ModuleDTO, 0, len(modules))
	for _, m := range modules {
		out = append(out, dto.ToModuleDTO(m))
	}
	return helper.JsonUpdated(c, "Module order updated", out)
}
