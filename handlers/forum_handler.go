package handlers

import (
	"strconv"
	"time"

	"github.com/liphant/liphant-api/database"
	"github.com/liphant/liphant-api/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type ForumPostRequest struct {
	Title    string `json:"title" validate:"required,min=5,max=255"`
	Body     string `json:"body" validate:"required,min=10"`
	Language string `json:"language" validate:"omitempty,oneof=en ar"`
}

func CreateForumPost(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	authorID, _ := uuid.Parse(claims["user_id"].(string))

	var req ForumPostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	post := models.ForumPost{
		AuthorID: authorID,
		Title:    req.Title,
		Body:     req.Body,
		Language: language,
	}
	if err := database.DB.Create(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create post"})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func ListForumPosts(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))
	offset := (page - 1) * pageSize

	query := database.DB.Preload("Author").Where("status = ?", "visible")
	if language := c.Query("language"); language != "" {
		query = query.Where("language = ?", language)
	}

	var posts []models.ForumPost
	query.Order("created_at desc").Limit(pageSize).Offset(offset).Find(&posts)

	return c.JSON(posts)
}

func GetForumPost(c *fiber.Ctx) error {
	postID := c.Params("postId")

	var post models.ForumPost
	if err := database.DB.
		Preload("Author").
		Preload("Comments", "status = ?", "visible").
		Preload("Comments.Author").
		First(&post, "id = ? AND status = ?", postID, "visible").Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
	}

	return c.JSON(post)
}

func DeleteMyForumPost(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	authorID, _ := uuid.Parse(claims["user_id"].(string))
	postID := c.Params("postId")

	var post models.ForumPost
	if err := database.DB.First(&post, "id = ? AND author_id = ?", postID, authorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
	}

	post.Status = "removed"
	database.DB.Save(&post)

	return c.SendStatus(fiber.StatusNoContent)
}

type ForumCommentRequest struct {
	Body string `json:"body" validate:"required,min=2"`
}

func CreateForumComment(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	authorID, _ := uuid.Parse(claims["user_id"].(string))
	postID := c.Params("postId")

	var req ForumCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var post models.ForumPost
	if err := database.DB.First(&post, "id = ? AND status = ?", postID, "visible").Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
	}

	comment := models.ForumComment{
		PostID:   post.ID,
		AuthorID: authorID,
		Body:     req.Body,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create comment"})
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

type EventRequest struct {
	TitleEn       string  `json:"title_en" validate:"required"`
	TitleAr       string  `json:"title_ar" validate:"required"`
	DescriptionEn *string `json:"description_en"`
	DescriptionAr *string `json:"description_ar"`
	Location      *string `json:"location"`
	StartsAt      string  `json:"starts_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndsAt        *string `json:"ends_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Capacity      int     `json:"capacity" validate:"omitempty,min=0"`
}

func CreateEvent(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	role := claims["role"].(string)

	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	startsAt, _ := time.Parse(time.RFC3339, req.StartsAt)
	if startsAt.Before(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Event cannot start in the past"})
	}

	event := models.Event{
		CreatedByID:   userID,
		TitleEn:       req.TitleEn,
		TitleAr:       req.TitleAr,
		DescriptionEn: req.DescriptionEn,
		DescriptionAr: req.DescriptionAr,
		Location:      req.Location,
		StartsAt:      startsAt,
		Capacity:      req.Capacity,
	}
	if req.EndsAt != nil {
		endsAt, _ := time.Parse(time.RFC3339, *req.EndsAt)
		event.EndsAt = &endsAt
	}
	if role == "center" {
		event.CenterID = &userID
	}

	if err := database.DB.Create(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create event"})
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

func ListUpcomingEvents(c *fiber.Ctx) error {
	var events []models.Event
	database.DB.Where("starts_at > ?", time.Now()).Order("starts_at asc").Find(&events)

	return c.JSON(events)
}

func RegisterForEvent(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	eventID := c.Params("eventId")

	var event models.Event
	if err := database.DB.First(&event, "id = ?", eventID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}
	if event.StartsAt.Before(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot register for a past event"})
	}

	if event.Capacity > 0 {
		var registered int64
		database.DB.Model(&models.EventRegistration{}).Where("event_id = ?", event.ID).Count(&registered)
		if registered >= int64(event.Capacity) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Event is at capacity"})
		}
	}

	registration := models.EventRegistration{
		EventID: event.ID,
		UserID:  userID,
	}
	if err := database.DB.Create(&registration).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You are already registered for this event"})
	}

	return c.Status(fiber.StatusCreated).JSON(registration)
}

func CancelEventRegistration(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	eventID := c.Params("eventId")

	var registration models.EventRegistration
	if err := database.DB.First(&registration, "event_id = ? AND user_id = ?", eventID, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Registration not found"})
	}

	database.DB.Delete(&registration)

	return c.SendStatus(fiber.StatusNoContent)
}
