package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liphant/liphant-api/handlers"
	"github.com/liphant/liphant-api/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/teacher-applications/pending", handlers.ListPendingTeacherApplications)
	admin.Put("/teacher-applications/:teacherId", handlers.ManageTeacherApplication)
	admin.Get("/center-registrations/pending", handlers.ListPendingCenters)
	admin.Put("/center-registrations/:centerId", handlers.ManageCenterRegistration)

	admin.Get("/dashboard-analytics", handlers.GetDashboardAnalytics)
	admin.Get("/bookings", handlers.AdminGetAllBookings)

	specializations := admin.Group("/specializations")
	specializations.Post("", handlers.CreateSpecialization)
	specializations.Put("/:specializationId", handlers.UpdateSpecialization)
	specializations.Delete("/:specializationId", handlers.DeleteSpecialization)

	users := admin.Group("/users")
	users.Get("", handlers.GetAllUsers)
	users.Put("/:userId/status", handlers.ToggleUserStatus)
	users.Delete("/:userId", handlers.AdminDeleteUser)

	reviews := admin.Group("/reviews")
	reviews.Get("", handlers.AdminGetReviews)
	reviews.Delete("/:reviewId", handlers.AdminDeleteReview)

	forum := admin.Group("/forum")
	forum.Delete("/posts/:postId", handlers.AdminRemoveForumPost)
	forum.Delete("/comments/:commentId", handlers.AdminRemoveForumComment)
}
