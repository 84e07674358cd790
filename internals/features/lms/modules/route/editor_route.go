// file: internals/features/lms/modules/route/editor_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/lms/modules/controller"
)

// ModuleEditorRoutes mounts module CRUD, the bulk reorder and the module-type
// metadata used by the builder's module picker.
func ModuleEditorRoutes(editor fiber.Router, db *gorm.DB) {
	moduleCtrl := controller.NewModuleController(db)

	editor.Get("/module-types", moduleCtrl.GetModuleTypes)

	modules := editor.Group("/modules")
	modules.Post("/", moduleCtrl.CreateModule)
	modules.Put("/order", moduleCtrl.UpdateModuleOrder) // before /:id
	modules.Put("/:id", moduleCtrl.UpdateModule)
	modules.Delete("/:id", moduleCtrl.DeleteModule)
}
