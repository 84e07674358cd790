// file: internals/features/lms/courses/route/editor_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/lms/courses/controller"
	"kursusku_backend/internals/helpers/storage"
	"kursusku_backend/internals/middlewares"
)

// CourseEditorRoutes mounts the course CRUD and the builder content snapshot.
func CourseEditorRoutes(editor fiber.Router, db *gorm.DB, blob storage.BlobService) {
	courseCtrl := controller.NewCourseController(db, blob)
	contentCtrl := controller.NewCourseContentController(db)

	courses := editor.Group("/courses")
	courses.Post("/", middlewares.UploadRateLimiter(), courseCtrl.CreateCourse)
	courses.Get("/", courseCtrl.ListCourses)
	courses.Get("/:course_id", courseCtrl.GetCourse)
	courses.Put("/:course_id", middlewares.UploadRateLimiter(), courseCtrl.UpdateCourse)
	courses.Delete("/:course_id", courseCtrl.DeleteCourse)

	courses.Get("/:course_id/content", contentCtrl.GetCourseContent)
}
