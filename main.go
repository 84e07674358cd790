// file: main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"kursusku_backend/internals/configs"
	database "kursusku_backend/internals/databases"
	helper "kursusku_backend/internals/helpers"
	"kursusku_backend/internals/middlewares"
	"kursusku_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	database.ConnectDB()
	database.TunePool()
	database.RunMigrations()

	app := fiber.New(fiber.Config{
		AppName:     "kursusku-backend",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		BodyLimit:   8 * 1024 * 1024, // multipart cover uploads
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.FromFiberError(c, err)
		},
	})

	app.Use(requestid.New())
	app.Use(compress.New())
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	route.SetupRoutes(app, database.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("[FATAL] server stopped: %v", err)
		}
	}()
	log.Printf("[INFO] listening on :%s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[INFO] shutting down...")
	if err := app.Shutdown(); err != nil {
		log.Printf("[WARN] shutdown error: %v", err)
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("[INFO] bye.")
}
