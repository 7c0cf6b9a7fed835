package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liphant/liphant-api/handlers"
	"github.com/liphant/liphant-api/middleware"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile/me", middleware.Protected())
	profile.Get("", handlers.GetProfile)
	profile.Put("", handlers.UpdateProfile)

	children := api.Group("/children", middleware.Protected(), middleware.ParentRequired())
	children.Post("", handlers.AddChild)
	children.Get("", handlers.ListMyChildren)
	children.Put("/:childId", handlers.UpdateChild)
	children.Delete("/:childId", handlers.DeleteChild)
	children.Post("/:childId/progress-reports", handlers.GenerateProgressReport)
	children.Get("/:childId/progress-reports", handlers.ListProgressReports)

	// Teachers who filed records for a child can read them too, so this
	// route only requires authentication.
	api.Get("/children/:childId/session-records", middleware.Protected(), handlers.GetChildSessionRecords)
}
