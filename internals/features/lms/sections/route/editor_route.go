// file: internals/features/lms/sections/route/editor_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/lms/sections/controller"
)

// SectionEditorRoutes mounts section CRUD and the bulk reorder.
func SectionEditorRoutes(editor fiber.Router, db *gorm.DB) {
	sectionCtrl := controller.NewSectionController(db)

	editor.Post("/courses/:course_id/sections", sectionCtrl.CreateSection)

	sections := editor.Group("/sections")
	sections.Put("/order", sectionCtrl.UpdateSectionOrder) // before /:id
	sections.Put("/:id", sectionCtrl.UpdateSection)
	sections.Delete("/:id", sectionCtrl.DeleteSection)
}
