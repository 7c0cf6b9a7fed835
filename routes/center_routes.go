package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liphant/liphant-api/handlers"
	"github.com/liphant/liphant-api/middleware"
)

func CenterRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/centers/register", middleware.Protected(), handlers.RegisterCenter)

	center := api.Group("/center", middleware.Protected(), middleware.CenterRequired())

	services := center.Group("/services")
	services.Post("", handlers.CreateService)
	services.Get("", handlers.ListMyServices)
	services.Put("/:serviceId", handlers.UpdateService)
	services.Post("/:serviceId/teachers", handlers.AssignTeacherToService)
	services.Delete("/:serviceId/teachers/:teacherId", handlers.RemoveTeacherFromService)
	services.Get("/:serviceId/eligible-teachers", handlers.GetEligibleTeachers)

	roster := center.Group("/roster")
	roster.Post("", handlers.AddTeacherToRoster)
	roster.Get("", handlers.ListRoster)
	roster.Delete("/:teacherId", handlers.DeactivateRosterTeacher)

	bookings := center.Group("/bookings")
	bookings.Get("", handlers.GetCenterBookings)
	bookings.Post("/:bookingId/assign", handlers.AssignTeacherToBooking)
}
