// file: internals/route/index.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/configs"
	courseRoute "kursusku_backend/internals/features/lms/courses/route"
	moduleRoute "kursusku_backend/internals/features/lms/modules/route"
	sectionRoute "kursusku_backend/internals/features/lms/sections/route"
	"kursusku_backend/internals/helpers/storage"
	authMw "kursusku_backend/internals/middlewares/auth"
	featureMw "kursusku_backend/internals/middlewares/features"
)

// SetupRoutes wires every route group onto the app.
//
//	/api/a       editor surface, JWT + workspace editor role
//	/api/public  learner-facing, no auth
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	blob, err := storage.NewOSSBlobServiceFromEnv()
	if err != nil {
		// Cover uploads are optional infrastructure; everything else works
		// without them.
		log.Printf("[ROUTE] cover image storage disabled: %v", err)
		blob = nil
	}

	api := app.Group("/api")

	editor := api.Group("/a",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		featureMw.IsWorkspaceEditor(),
	)
	courseRoute.CourseEditorRoutes(editor, db, blob)
	sectionRoute.SectionEditorRoutes(editor, db)
	moduleRoute.ModuleEditorRoutes(editor, db)

	public := api.Group("/public")
	courseRoute.CoursePublicRoutes(public, db)
}
