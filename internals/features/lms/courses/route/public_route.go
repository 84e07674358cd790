// file: internals/features/lms/courses/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/lms/courses/controller"
)

// CoursePublicRoutes exposes published course content to learners without an
// editor token.
func CoursePublicRoutes(public fiber.Router, db *gorm.DB) {
	contentCtrl := controller.NewCourseContentController(db)
	public.Get("/courses/:course_id/content", contentCtrl.GetPublishedCourseContent)
}
