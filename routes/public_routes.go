package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liphant/liphant-api/handlers"
)

// Browsing teachers, centers and specializations needs no account.
func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/teachers", handlers.ListActiveTeachers)
	api.Get("/teachers/:teacherId", handlers.GetTeacherProfile)
	api.Get("/teachers/:teacherId/availability", handlers.GetTeacherAvailability)
	api.Get("/specializations", handlers.ListSpecializations)

	api.Get("/centers", handlers.ListActiveCenters)
	api.Get("/centers/:centerId", handlers.GetCenterProfile)

	api.Get("/events", handlers.ListUpcomingEvents)
}
