package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liphant/liphant-api/handlers"
	"github.com/liphant/liphant-api/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Get("/me", handlers.GetMyBookings)
	booking.Post("", middleware.ParentRequired(), handlers.CreateBooking)
	booking.Post("/:bookingId/cancel", handlers.CancelBooking)
	booking.Post("/:bookingId/review", middleware.ParentRequired(), handlers.CreateReview)
}
