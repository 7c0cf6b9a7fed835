package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liphant/liphant-api/handlers"
	"github.com/liphant/liphant-api/middleware"
)

func TeacherRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	teacher := api.Group("/teacher", middleware.Protected())
	teacher.Post("/apply", handlers.ApplyToBeATeacher)

	availability := teacher.Group("/availability", middleware.TeacherRequired())
	availability.Post("", handlers.CreateAvailabilitySlot)
	availability.Get("/me", handlers.GetMyAvailability)
	availability.Delete("/:slotId", handlers.DeleteAvailabilitySlot)

	profile := teacher.Group("/profile", middleware.TeacherRequired())
	profile.Get("/me", handlers.GetMyTeacherProfile)
	profile.Put("/me", handlers.UpdateMyTeacherProfile)

	specializations := teacher.Group("/specializations", middleware.TeacherRequired())
	specializations.Post("", handlers.AddSpecializationToProfile)
	specializations.Delete("/:specializationId", handlers.RemoveSpecializationFromProfile)

	sessions := teacher.Group("/bookings", middleware.TeacherRequired())
	sessions.Get("", handlers.GetMyTeacherBookings)
	sessions.Post("/:bookingId/confirm", handlers.ConfirmBooking)
	sessions.Post("/:bookingId/decline", handlers.DeclineBooking)
	sessions.Post("/:bookingId/complete", handlers.CompleteBooking)
	sessions.Post("/:bookingId/session-record", handlers.CreateSessionRecord)

	teacher.Put("/session-records/:recordId", middleware.TeacherRequired(), handlers.UpdateSessionRecord)
}
