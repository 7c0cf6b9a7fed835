package handlers

import (
	"errors"

	"github.com/liphant/liphant-api/database"
	"github.com/liphant/liphant-api/models"
	"github.com/liphant/liphant-api/scheduling"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherApplicationRequest struct {
	HeadlineEn        string  `json:"headline_en" validate:"required"`
	HeadlineAr        *string `json:"headline_ar"`
	BioEn             string  `json:"bio_en" validate:"required"`
	BioAr             *string `json:"bio_ar"`
	HourlyRate        float64 `json:"hourly_rate" validate:"required,gt=0"`
	YearsOfExperience int     `json:"years_of_experience" validate:"omitempty,min=0"`
}

func ApplyToBeATeacher(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req TeacherApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existingTeacher models.Teacher
	err := database.DB.Where("user_id = ?", userID).First(&existingTeacher).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already submitted an application."})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	newApplication := models.Teacher{
		UserID:            userID,
		HeadlineEn:        &req.HeadlineEn,
		HeadlineAr:        req.HeadlineAr,
		BioEn:             &req.BioEn,
		BioAr:             req.BioAr,
		HourlyRate:        req.HourlyRate,
		YearsOfExperience: req.YearsOfExperience,
	}

	if err := database.DB.Create(&newApplication).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create application"})
	}

	return c.Status(fiber.StatusCreated).JSON(newApplication)
}

type CreateAvailabilityRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Recurring *bool  `json:"recurring,omitempty"`
}

func CreateAvailabilitySlot(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	startMin, appErr := scheduling.ParseClock(req.StartTime)
	if appErr != nil {
		return c.Status(appErr.HTTPStatus).JSON(fiber.Map{"error": appErr.Message})
	}
	endMin, appErr := scheduling.ParseClock(req.EndTime)
	if appErr != nil {
		return c.Status(appErr.HTTPStatus).JSON(fiber.Map{"error": appErr.Message})
	}
	if appErr := scheduling.ValidateInterval(startMin, endMin); appErr != nil {
		return c.Status(appErr.HTTPStatus).JSON(fiber.Map{"error": appErr.Message})
	}

	var existing []models.AvailabilitySlot
	database.DB.Where("teacher_id = ? AND day_of_week = ?", teacherID, req.DayOfWeek).Find(&existing)

	windows := make([]scheduling.SlotWindow, len(existing))
	for i, s := range existing {
		windows[i] = scheduling.SlotWindow{ID: s.ID, StartMin: s.StartMin, EndMin: s.EndMin}
	}
	if scheduling.SlotOverlaps(windows, startMin, endMin) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "This window overlaps an existing availability slot for that day"})
	}

	recurring := true
	if req.Recurring != nil {
		recurring = *req.Recurring
	}

	newSlot := models.AvailabilitySlot{
		TeacherID: teacherID,
		DayOfWeek: req.DayOfWeek,
		StartMin:  startMin,
		EndMin:    endMin,
		Recurring: recurring,
	}

	if err := database.DB.Create(&newSlot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create availability slot"})
	}

	return c.Status(fiber.StatusCreated).JSON(newSlot)
}

func GetMyAvailability(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID := claims["user_id"].(string)

	var slots []models.AvailabilitySlot
	database.DB.Where("teacher_id = ?", teacherID).
		Order("day_of_week asc, start_min asc").
		Find(&slots)

	return c.JSON(slots)
}

func GetTeacherAvailability(c *fiber.Ctx) error {
	teacherID := c.Params("teacherId")

	var slots []models.AvailabilitySlot
	database.DB.Where("teacher_id = ?", teacherID).
		Order("day_of_week asc, start_min asc").
		Find(&slots)

	return c.JSON(slots)
}

func DeleteAvailabilitySlot(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID, _ := uuid.Parse(claims["user_id"].(string))
	slotID := c.Params("slotId")

	var slot models.AvailabilitySlot
	if err := database.DB.First(&slot, "id = ? AND teacher_id = ?", slotID, teacherID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Availability slot not found or you do not have permission to delete it."})
	}

	database.DB.Delete(&slot)

	return c.SendStatus(fiber.StatusNoContent)
}

type AddSpecializationRequest struct {
	SpecializationID string `json:"specialization_id" validate:"required,uuid"`
}

func AddSpecializationToProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID := claims["user_id"].(string)

	var req AddSpecializationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var teacher models.Teacher
	if err := database.DB.Where("user_id = ?", teacherID).First(&teacher).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher profile not found"})
	}

	var specialization models.Specialization
	if err := database.DB.Where("id = ?", req.SpecializationID).First(&specialization).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Specialization not found"})
	}

	database.DB.Model(&teacher).Association("Specializations").Append(&specialization)

	return c.JSON(fiber.Map{"message": "Specialization added successfully"})
}

func RemoveSpecializationFromProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID := claims["user_id"].(string)
	specializationID := c.Params("specializationId")

	var teacher models.Teacher
	if err := database.DB.Where("user_id = ?", teacherID).First(&teacher).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher profile not found"})
	}

	var specialization models.Specialization
	if err := database.DB.Where("id = ?", specializationID).First(&specialization).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Specialization not found"})
	}

	database.DB.Model(&teacher).Association("Specializations").Delete(&specialization)

	return c.SendStatus(fiber.StatusNoContent)
}

func GetTeacherProfile(c *fiber.Ctx) error {
	teacherID := c.Params("teacherId")

	var teacher models.Teacher
	if err := database.DB.Preload("User").Preload("Specializations").First(&teacher, "user_id = ? AND status = ?", teacherID, "active").Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Active teacher not found"})
	}

	return c.JSON(teacher)
}

func ListActiveTeachers(c *fiber.Ctx) error {
	var activeTeachers []models.Teacher
	query := database.DB.Preload("User").Preload("Specializations").Where("status = ?", "active")

	if specializationID := c.Query("specialization_id"); specializationID != "" {
		query = query.Joins("JOIN teacher_specializations ON teacher_specializations.teacher_user_id = teachers.user_id").
			Where("teacher_specializations.specialization_id = ?", specializationID)
	}
	if city := c.Query("city"); city != "" {
		query = query.Joins("JOIN users ON users.id = teachers.user_id").Where("users.city = ?", city)
	}
	if minRating := c.Query("min_rating"); minRating != "" {
		query = query.Where("avg_rating >= ?", minRating)
	}

	if err := query.Find(&activeTeachers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve teachers"})
	}

	return c.JSON(activeTeachers)
}

func ListSpecializations(c *fiber.Ctx) error {
	var specializations []models.Specialization
	database.DB.Order("name_en asc").Find(&specializations)

	return c.JSON(specializations)
}

func GetMyTeacherProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID, _ := uuid.Parse(claims["user_id"].(string))

	var teacher models.Teacher
	if err := database.DB.Preload("User").Preload("Specializations").First(&teacher, "user_id = ?", teacherID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher profile not found"})
	}
	return c.JSON(teacher)
}

func UpdateMyTeacherProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID, _ := uuid.Parse(claims["user_id"].(string))

	type UpdateRequest struct {
		HeadlineEn        *string  `json:"headline_en"`
		HeadlineAr        *string  `json:"headline_ar"`
		BioEn             *string  `json:"bio_en"`
		BioAr             *string  `json:"bio_ar"`
		HourlyRate        *float64 `json:"hourly_rate" validate:"omitempty,gt=0"`
		YearsOfExperience *int     `json:"years_of_experience" validate:"omitempty,min=0"`
	}
	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var teacher models.Teacher
	if err := database.DB.First(&teacher, "user_id = ?", teacherID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher profile not found"})
	}

	if req.HeadlineEn != nil {
		teacher.HeadlineEn = req.HeadlineEn
	}
	if req.HeadlineAr != nil {
		teacher.HeadlineAr = req.HeadlineAr
	}
	if req.BioEn != nil {
		teacher.BioEn = req.BioEn
	}
	if req.BioAr != nil {
		teacher.BioAr = req.BioAr
	}
	if req.HourlyRate != nil {
		teacher.HourlyRate = *req.HourlyRate
	}
	if req.YearsOfExperience != nil {
		teacher.YearsOfExperience = *req.YearsOfExperience
	}

	database.DB.Save(&teacher)

	return c.JSON(teacher)
}
