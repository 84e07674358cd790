// file: internals/features/lms/courses/controller/course_content_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/lms/courses/model"
	moduleDTO "kursusku_backend/internals/features/lms/modules/dto"
	moduleModel "kursusku_backend/internals/features/lms/modules/model"
	sectionDTO "kursusku_backend/internals/features/lms/sections/dto"
	sectionModel "kursusku_backend/internals/features/lms/sections/model"
	helper "kursusku_backend/internals/helpers"
	helperAuth "kursusku_backend/internals/helpers/auth"
)

type CourseContentController struct {
	DB *gorm.DB
}

func NewCourseContentController(db *gorm.DB) *CourseContentController {
	return &CourseContentController{DB: db}
}

// GetCourseContent returns the whole builder snapshot for one course:
// sections and modules, both display-sorted by order with id as tiebreaker
// (duplicate orders are tolerated, never rejected).
func (ctrl *CourseContentController) GetCourseContent(c *fiber.Ctx) error {
	workspaceID, err := helperAuth.GetWorkspaceID(c)
	if err != nil {
		return err
	}
	return ctrl.respondContent(c, workspaceID, false)
}

// GetPublishedCourseContent is the public variant: published courses only,
// no editor token required, workspace resolved from the course row itself.
func (ctrl *CourseContentController) GetPublishedCourseContent(c *fiber.Ctx) error {
	return ctrl.respondContent(c, uuid.Nil, true)
}

func (ctrl *CourseContentController) respondContent(c *fiber.Ctx, workspaceID uuid.UUID, publishedOnly bool) error {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "course_id is not a valid uuid")
	}

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.CourseModel{}).Where("course_id = ?", courseID)
	if publishedOnly {
		q = q.Where("course_is_published = TRUE")
	} else {
		q = q.Where("course_workspace_id = ?", workspaceID)
	}
	var course model.CourseModel
	if err := q.First(&course).Error; err != nil {
		return helper.TranslateDBError(err, "Course not found")
	}

	var sections []sectionModel.SectionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("section_course_id = ?", courseID).
		Order("section_order ASC, section_id ASC").
		Find(&sections).Error; err != nil {
		return helper.TranslateDBError(err, "")
	}

	var modules []moduleModel.ModuleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("module_course_id = ?", courseID).
		Order("module_order ASC, module_id ASC").
		Find(&modules).Error; err != nil {
		return helper.TranslateDBError(err, "")
	}

	sectionOut := make([]sectionDTO.SectionDTO, 0, len(sections))
	for _, s := range sections {
		sectionOut = append(sectionOut, sectionDTO.ToSectionDTO(s))
	}
	moduleOut := make([]moduleDTO.ModuleDTO, 0, len(modules))
	for _, m := range modules {
		moduleOut = append(moduleOut, moduleDTO.ToModuleDTO(m))
	}

	return helper.JsonOK(c, "", fiber.Map{
		"sections": sectionOut,
		"modules":  moduleOut,
	})
}
