package handlers

import (
	"errors"

	"github.com/liphant/liphant-api/database"
	"github.com/liphant/liphant-api/models"
	"github.com/liphant/liphant-api/scheduling"
	"github.com/liphant/liphant-api/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRecordRequest struct {
	Summary       string  `json:"summary" validate:"required,min=10"`
	ProgressNotes *string `json:"progress_notes"`
	Goals         *string `json:"goals"`
}

func CreateSessionRecord(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID, _ := uuid.Parse(claims["user_id"].(string))
	bookingID := c.Params("bookingId")

	var req SessionRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.TeacherID == nil || *booking.TeacherID != teacherID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the teacher for this booking"})
	}
	if booking.Status != scheduling.StatusCompleted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Session records can only be filed for completed sessions"})
	}

	var existing models.SessionRecord
	if err := database.DB.Where("booking_id = ?", bookingID).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A record for this session already exists"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	record := models.SessionRecord{
		BookingID:     booking.ID,
		TeacherID:     teacherID,
		ChildID:       booking.ChildID,
		Summary:       req.Summary,
		ProgressNotes: req.ProgressNotes,
		Goals:         req.Goals,
	}
	if err := database.DB.Create(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to file session record"})
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

func UpdateSessionRecord(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID, _ := uuid.Parse(claims["user_id"].(string))
	recordID := c.Params("recordId")

	var record models.SessionRecord
	if err := database.DB.First(&record, "id = ? AND teacher_id = ?", recordID, teacherID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session record not found"})
	}

	var req SessionRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	record.Summary = req.Summary
	record.ProgressNotes = req.ProgressNotes
	record.Goals = req.Goals
	database.DB.Save(&record)

	return c.JSON(record)
}

func GetChildSessionRecords(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	actorID, _ := uuid.Parse(claims["user_id"].(string))
	childID := c.Params("childId")

	var child models.Child
	if err := database.DB.First(&child, "id = ?", childID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Child not found"})
	}

	// Parents see their own child's records; teachers see records they filed.
	if child.ParentID != actorID {
		var filed int64
		database.DB.Model(&models.SessionRecord{}).Where("child_id = ? AND teacher_id = ?", childID, actorID).Count(&filed)
		if filed == 0 {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have access to this child's records"})
		}
	}

	var records []models.SessionRecord
	database.DB.Preload("Booking").Where("child_id = ?", childID).Order("created_at desc").Find(&records)

	return c.JSON(records)
}

func GenerateProgressReport(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	parentID, _ := uuid.Parse(claims["user_id"].(string))
	childID := c.Params("childId")

	var child models.Child
	if err := database.DB.First(&child, "id = ? AND parent_id = ?", childID, parentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Child not found"})
	}

	report, err := services.GenerateProgressReport(child)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

func ListProgressReports(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	parentID, _ := uuid.Parse(claims["user_id"].(string))
	childID := c.Params("childId")

	var reports []models.ProgressReport
	database.DB.Where("child_id = ? AND parent_id = ?", childID, parentID).Order("created_at desc").Find(&reports)

	return c.JSON(reports)
}
