package handlers

import (
	"time"

	"github.com/liphant/liphant-api/database"
	"github.com/liphant/liphant-api/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	FullName          *string `json:"full_name"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	PhoneNumber       *string `json:"phone_number"`
	PreferredLanguage *string `json:"preferred_language" validate:"omitempty,oneof=en ar"`
	City              *string `json:"city"`
}

func GetProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(user)
}

func UpdateProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.ProfilePictureURL != nil {
		user.ProfilePictureURL = req.ProfilePictureURL
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.PreferredLanguage != nil {
		user.PreferredLanguage = *req.PreferredLanguage
	}
	if req.City != nil {
		user.City = req.City
	}

	database.DB.Save(&user)

	return c.JSON(user)
}

type ChildRequest struct {
	FullName  string  `json:"full_name" validate:"required,min=2"`
	BirthDate *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Diagnosis *string `json:"diagnosis"`
	Notes     *string `json:"notes"`
}

func AddChild(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	parentID, _ := uuid.Parse(claims["user_id"].(string))

	var req ChildRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	child := models.Child{
		ParentID:  parentID,
		FullName:  req.FullName,
		Diagnosis: req.Diagnosis,
		Notes:     req.Notes,
	}
	if req.BirthDate != nil {
		birthDate, _ := time.Parse("2006-01-02", *req.BirthDate)
		child.BirthDate = &birthDate
	}

	if err := database.DB.Create(&child).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add child"})
	}

	return c.Status(fiber.StatusCreated).JSON(child)
}

func ListMyChildren(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	parentID, _ := uuid.Parse(claims["user_id"].(string))

	var children []models.Child
	database.DB.Where("parent_id = ?", parentID).Order("created_at asc").Find(&children)

	return c.JSON(children)
}

func UpdateChild(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	parentID, _ := uuid.Parse(claims["user_id"].(string))
	childID := c.Params("childId")

	var child models.Child
	if err := database.DB.First(&child, "id = ? AND parent_id = ?", childID, parentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Child not found"})
	}

	var req ChildRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	child.FullName = req.FullName
	child.Diagnosis = req.Diagnosis
	child.Notes = req.Notes
	if req.BirthDate != nil {
		birthDate, _ := time.Parse("2006-01-02", *req.BirthDate)
		child.BirthDate = &birthDate
	}

	database.DB.Save(&child)

	return c.JSON(child)
}

func DeleteChild(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	parentID, _ := uuid.Parse(claims["user_id"].(string))
	childID := c.Params("childId")

	var child models.Child
	if err := database.DB.First(&child, "id = ? AND parent_id = ?", childID, parentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Child not found"})
	}

	var bookingCount int64
	database.DB.Model(&models.Booking{}).Where("child_id = ?", childID).Count(&bookingCount)
	if bookingCount > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot delete a child with booking history"})
	}

	database.DB.Delete(&child)

	return c.SendStatus(fiber.StatusNoContent)
}
