// file: internals/features/lms/courses/controller/course_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/lms/courses/dto"
	"kursusku_backend/internals/features/lms/courses/model"
	moduleModel "kursusku_backend/internals/features/lms/modules/model"
	sectionModel "kursusku_backend/internals/features/lms/sections/model"
	helper "kursusku_backend/internals/helpers"
	helperAuth "kursusku_backend/internals/helpers/auth"
	"kursusku_backend/internals/helpers/storage"
)

var validate = validator.New()

type CourseController struct {
	DB   *gorm.DB
	Blob storage.BlobService // nil when OSS is not configured
}

func NewCourseController(db *gorm.DB, blob storage.BlobService) *CourseController {
	return &CourseController{DB: db, Blob: blob}
}

// =============================
// Create Course
// =============================
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	workspaceID, err := helperAuth.GetWorkspaceID(c)
	if err != nil {
		return err
	}

	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	level := model.CourseLevel(body.CourseLevel)
	if body.CourseLevel == "" {
		level = model.CourseLevelBeginner
	}

	course := model.CourseModel{
		CourseWorkspaceID: workspaceID,
		CourseTitle:       strings.TrimSpace(body.CourseTitle),
		CourseDescription: body.CourseDescription,
		CourseObjectives:  body.CourseObjectives,
		CourseLevel:       level,
		CourseIsPublished: body.CourseIsPublished,
	}

	// Optional cover: uploaded before the insert so the row never references
	// a missing object; on insert failure the fresh object is removed again.
	coverUploaded := ""
	if fh, err := c.FormFile("cover_image"); err == nil && fh != nil {
		if ctrl.Blob == nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Cover image storage is not configured")
		}
		url, err := ctrl.Blob.UploadCoverImage(c.UserContext(), workspaceID, fh)
		if err != nil {
			return err
		}
		coverUploaded = url
		course.CourseCoverImageURL = url
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&course).Error; err != nil {
		if coverUploaded != "" {
			if delErr := ctrl.Blob.DeleteByPublicURL(c.UserContext(), coverUploaded); delErr != nil {
				log.Printf("[WARN] orphan cover cleanup failed: %v", delErr)
			}
		}
		return helper.TranslateDBError(err, "")
	}

	return helper.JsonCreated(c, "Course created", dto.ToCourseDTO(course))
}

// =============================
// List Courses (workspace scoped, paginated)
// =============================
func (ctrl *CourseController) ListCourses(c *fiber.Ctx) error {
	workspaceID, err := helperAuth.GetWorkspaceID(c)
	if err != nil {
		return err
	}

	paging := helper.ParsePaging(c, helper.DefaultPagingOpts)

	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.CourseModel{}).
		Where("course_workspace_id = ?", workspaceID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.TranslateDBError(err, "")
	}

	var courses []model.CourseModel
	if err := q.
		Order("course_created_at DESC").
		Limit(paging.Limit()).
		Offset(paging.Offset()).
		Find(&courses).Error; err != nil {
		return helper.TranslateDBError(err, "")
	}

	out := make([]dto.CourseDTO, 0, len(courses))
	for _, course := range courses {
		out = append(out, dto.ToCourseDTO(course))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationMeta(total, paging))
}

// =============================
// Get Course by ID
// =============================
func (ctrl *CourseController) GetCourse(c *fiber.Ctx) error {
	workspaceID, err := helperAuth.GetWorkspaceID(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "course_id is not a valid uuid")
	}

	var course model.CourseModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&course, "course_id = ? AND course_workspace_id = ?", courseID, workspaceID).Error; err != nil {
		return helper.TranslateDBError(err, "Course not found")
	}
	return helper.JsonOK(c, "", dto.ToCourseDTO(course))
}

// =============================
// Update Course (partial; cover replace-on-update)
// =============================
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	workspaceID, err := helperAuth.GetWorkspaceID(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "course_id is not a valid uuid")
	}

	var body dto.UpdateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.CourseModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&course, "course_id = ? AND course_workspace_id = ?", courseID, workspaceID).Error; err != nil {
		return helper.TranslateDBError(err, "Course not found")
	}

	if body.CourseTitle != nil {
		course.CourseTitle = strings.TrimSpace(*body.CourseTitle)
	}
	if body.CourseDescription != nil {
		course.CourseDescription = *body.CourseDescription
	}
	if body.CourseObjectives != nil {
		course.CourseObjectives = *body.CourseObjectives
	}
	if body.CourseLevel != nil {
		course.CourseLevel = model.CourseLevel(*body.CourseLevel)
	}
	if body.CourseIsPublished != nil {
		course.CourseIsPublished = *body.CourseIsPublished
	}

	// Replace-on-update: a new cover image supersedes the old object.
	oldCover := course.CourseCoverImageURL
	newCover := ""
	if fh, err := c.FormFile("cover_image"); err == nil && fh != nil {
		if ctrl.Blob == nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Cover image storage is not configured")
		}
		url, err := ctrl.Blob.UploadCoverImage(c.UserContext(), workspaceID, fh)
		if err != nil {
			return err
		}
		newCover = url
		course.CourseCoverImageURL = url
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&course).Error; err != nil {
		if newCover != "" {
			if delErr := ctrl.Blob.DeleteByPublicURL(c.UserContext(), newCover); delErr != nil {
				log.Printf("[WARN] orphan cover cleanup failed: %v", delErr)
			}
		}
		return helper.TranslateDBError(err, "")
	}

	// Old object is released only after the row points at the new one.
	if newCover != "" && oldCover != "" && oldCover != newCover {
		if delErr := ctrl.Blob.DeleteByPublicURL(c.UserContext(), oldCover); delErr != nil {
			log.Printf("[WARN] old cover cleanup failed: %v", delErr)
		}
	}

	return helper.JsonUpdated(c, "Course updated", dto.ToCourseDTO(course))
}

// =============================
// Delete Course (cascade, one transaction)
// =============================
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	workspaceID, err := helperAuth.GetWorkspaceID(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "course_id is not a valid uuid")
	}

	var course model.CourseModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&course, "course_id = ? AND course_workspace_id = ?", courseID, workspaceID).Error; err != nil {
		return helper.TranslateDBError(err, "Course not found")
	}

	// Modules, sections and the course row go in one unit of work; a failure
	// anywhere rolls the whole delete back.
	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&moduleModel.ModuleModel{}, "module_course_id = ?", courseID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&sectionModel.SectionModel{}, "section_course_id = ?", courseID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.CourseModel{}, "course_id = ?", courseID).Error
	})
	if err != nil {
		return helper.TranslateDBError(err, "")
	}

	// Cover object release is best effort once the row is gone; the object
	// store is not part of the DB transaction.
	if course.CourseCoverImageURL != "" && ctrl.Blob != nil {
		if delErr := ctrl.Blob.DeleteByPublicURL(c.UserContext(), course.CourseCoverImageURL); delErr != nil {
			log.Printf("[WARN] cover cleanup after course delete failed: %v", delErr)
		}
	}

	return helper.JsonDeleted(c, "Course deleted", fiber.Map{"course_id": courseID})
}
