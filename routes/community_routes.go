package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liphant/liphant-api/handlers"
	"github.com/liphant/liphant-api/middleware"
)

func CommunityRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	forum := api.Group("/forum", middleware.Protected())
	forum.Post("/posts", handlers.CreateForumPost)
	forum.Get("/posts", handlers.ListForumPosts)
	forum.Get("/posts/:postId", handlers.GetForumPost)
	forum.Delete("/posts/:postId", handlers.DeleteMyForumPost)
	forum.Post("/posts/:postId/comments", handlers.CreateForumComment)

	events := api.Group("/events", middleware.Protected())
	events.Post("", handlers.CreateEvent)
	events.Post("/:eventId/register", handlers.RegisterForEvent)
	events.Delete("/:eventId/register", handlers.CancelEventRegistration)
}
