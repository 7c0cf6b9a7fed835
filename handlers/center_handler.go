package handlers

import (
	"errors"
	"time"

	"github.com/liphant/liphant-api/apperrors"
	"github.com/liphant/liphant-api/database"
	"github.com/liphant/liphant-api/models"
	"github.com/liphant/liphant-api/notifications"
	"github.com/liphant/liphant-api/scheduling"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CenterApplicationRequest struct {
	NameEn        string  `json:"name_en" validate:"required"`
	NameAr        string  `json:"name_ar" validate:"required"`
	DescriptionEn *string `json:"description_en"`
	DescriptionAr *string `json:"description_ar"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
}

func RegisterCenter(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req CenterApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existing models.Center
	err := database.DB.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already registered a center."})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	center := models.Center{
		UserID:        userID,
		NameEn:        req.NameEn,
		NameAr:        req.NameAr,
		DescriptionEn: req.DescriptionEn,
		DescriptionAr: req.DescriptionAr,
		Address:       req.Address,
		City:          req.City,
	}

	if err := database.DB.Create(&center).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to register center"})
	}

	return c.Status(fiber.StatusCreated).JSON(center)
}

func ListActiveCenters(c *fiber.Ctx) error {
	var centers []models.Center
	query := database.DB.Preload("Services", "is_active = ?", true).Where("status = ?", "active")

	if city := c.Query("city"); city != "" {
		query = query.Where("city = ?", city)
	}

	if err := query.Find(&centers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve centers"})
	}

	return c.JSON(centers)
}

func GetCenterProfile(c *fiber.Ctx) error {
	centerID := c.Params("centerId")

	var center models.Center
	if err := database.DB.Preload("Services", "is_active = ?", true).First(&center, "user_id = ? AND status = ?", centerID, "active").Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Active center not found"})
	}

	return c.JSON(center)
}

type ServiceRequest struct {
	NameEn        string  `json:"name_en" validate:"required"`
	NameAr        string  `json:"name_ar" validate:"required"`
	DescriptionEn *string `json:"description_en"`
	DescriptionAr *string `json:"description_ar"`
	Price         float64 `json:"price" validate:"required,gt=0"`
}

func CreateService(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	centerID, _ := uuid.Parse(claims["user_id"].(string))

	var req ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	service := models.Service{
		CenterID:      centerID,
		NameEn:        req.NameEn,
		NameAr:        req.NameAr,
		DescriptionEn: req.DescriptionEn,
		DescriptionAr: req.DescriptionAr,
		Price:         req.Price,
		IsActive:      true,
	}

	if err := database.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create service"})
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

func UpdateService(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	centerID, _ := uuid.Parse(claims["user_id"].(string))
	serviceID := c.Params("serviceId")

	var service models.Service
	if err := database.DB.First(&service, "id = ? AND center_id = ?", serviceID, centerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	type UpdateRequest struct {
		NameEn        *string  `json:"name_en"`
		NameAr        *string  `json:"name_ar"`
		DescriptionEn *string  `json:"description_en"`
		DescriptionAr *string  `json:"description_ar"`
		Price         *float64 `json:"price" validate:"omitempty,gt=0"`
		IsActive      *bool    `json:"is_active"`
	}
	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.NameEn != nil {
		service.NameEn = *req.NameEn
	}
	if req.NameAr != nil {
		service.NameAr = *req.NameAr
	}
	if req.DescriptionEn != nil {
		service.DescriptionEn = req.DescriptionEn
	}
	if req.DescriptionAr != nil {
		service.DescriptionAr = req.DescriptionAr
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	database.DB.Save(&service)

	return c.JSON(service)
}

func ListMyServices(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	centerID, _ := uuid.Parse(claims["user_id"].(string))

	var services []models.Service
	database.DB.Preload("Teachers.User").Where("center_id = ?", centerID).Find(&services)

	return c.JSON(services)
}

type RosterRequest struct {
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
}

func AddTeacherToRoster(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	centerID, _ := uuid.Parse(claims["user_id"].(string))

	var req RosterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	teacherID, _ := uuid.Parse(req.TeacherID)

	var teacher models.Teacher
	if err := database.DB.First(&teacher, "user_id = ? AND status = ?", teacherID, "active").Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Active teacher not found"})
	}

	var existing models.CenterTeacher
	err := database.DB.Where("center_id = ? AND teacher_id = ?", centerID, teacherID).First(&existing).Error
	if err == nil {
		if existing.IsActive {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Teacher is already on your roster"})
		}
		existing.IsActive = true
		database.DB.Save(&existing)
		return c.JSON(existing)
	}

	employment := models.CenterTeacher{
		CenterID:  centerID,
		TeacherID: teacherID,
		IsActive:  true,
	}
	if err := database.DB.Create(&employment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add teacher to roster"})
	}

	return c.Status(fiber.StatusCreated).JSON(employment)
}

func DeactivateRosterTeacher(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	centerID, _ := uuid.Parse(claims["user_id"].(string))
	teacherID := c.Params("teacherId")

	var employment models.CenterTeacher
	if err := database.DB.First(&employment, "center_id = ? AND teacher_id = ?", centerID, teacherID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher is not on your roster"})
	}

	employment.IsActive = false
	database.DB.Save(&employment)

	return c.SendStatus(fiber.StatusNoContent)
}

func ListRoster(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	centerID, _ := uuid.Parse(claims["user_id"].(string))

	var roster []models.CenterTeacher
	database.DB.Preload("Teacher.User").Where("center_id = ?", centerID).Find(&roster)

	return c.JSON(roster)
}

func AssignTeacherToService(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	centerID, _ := uuid.Parse(claims["user_id"].(string))
	serviceID := c.Params("serviceId")

	var req RosterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	teacherID, _ := uuid.Parse(req.TeacherID)

	var service models.Service
	if err := database.DB.First(&service, "id = ? AND center_id = ?", serviceID, centerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	var employment models.CenterTeacher
	if err := database.DB.First(&employment, "center_id = ? AND teacher_id = ? AND is_active = ?", centerID, teacherID, true).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Teacher must be an active member of your roster"})
	}

	var teacher models.Teacher
	if err := database.DB.First(&teacher, "user_id = ?", teacherID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}

	database.DB.Model(&service).Association("Teachers").Append(&teacher)

	return c.JSON(fiber.Map{"message": "Teacher assigned to service"})
}

func RemoveTeacherFromService(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	centerID, _ := uuid.Parse(claims["user_id"].(string))
	serviceID := c.Params("serviceId")
	teacherID := c.Params("teacherId")

	var service models.Service
	if err := database.DB.First(&service, "id = ? AND center_id = ?", serviceID, centerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	var teacher models.Teacher
	if err := database.DB.First(&teacher, "user_id = ?", teacherID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}

	database.DB.Model(&service).Association("Teachers").Delete(&teacher)

	return c.SendStatus(fiber.StatusNoContent)
}

func GetCenterBookings(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	centerID, _ := uuid.Parse(claims["user_id"].(string))

	query := database.DB.
		Preload("Parent").
		Preload("Child").
		Preload("Service").
		Preload("Teacher").
		Where("center_id = ?", centerID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	query.Order("date desc, start_min desc").Find(&bookings)

	return c.JSON(bookings)
}

// GetEligibleTeachers lists the teachers a center admin may assign to a
// service booking for a date and interval.
func GetEligibleTeachers(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	centerID, _ := uuid.Parse(claims["user_id"].(string))
	serviceID := c.Params("serviceId")

	var service models.Service
	if err := database.DB.First(&service, "id = ? AND center_id = ?", serviceID, centerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid or missing date, expected YYYY-MM-DD"})
	}
	startMin, appErr := scheduling.ParseClock(c.Query("start"))
	if appErr != nil {
		return c.Status(appErr.HTTPStatus).JSON(fiber.Map{"error": appErr.Message})
	}
	endMin, appErr := scheduling.ParseClock(c.Query("end"))
	if appErr != nil {
		return c.Status(appErr.HTTPStatus).JSON(fiber.Map{"error": appErr.Message})
	}
	if appErr := scheduling.ValidateInterval(startMin, endMin); appErr != nil {
		return c.Status(appErr.HTTPStatus).JSON(fiber.Map{"error": appErr.Message})
	}

	eligible, err := eligibleTeachersForService(database.DB, &service, date, startMin, endMin)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute eligible teachers"})
	}

	var teachers []models.Teacher
	if len(eligible) > 0 {
		database.DB.Preload("User").Where("user_id IN ?", eligible).Find(&teachers)
	}

	return c.JSON(teachers)
}

type AssignBookingRequest struct {
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
}

// AssignTeacherToBooking moves an awaiting-assignment booking to confirmed.
// The teacher must be on the center's active roster, assigned to the
// booked service, and conflict-free for the slot; the whole decision runs
// under the same row lock as booking creation.
func AssignTeacherToBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	centerID, _ := uuid.Parse(claims["user_id"].(string))
	bookingID := c.Params("bookingId")

	var req AssignBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	teacherID, _ := uuid.Parse(req.TeacherID)

	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Preload("Parent").First(&booking, "id = ?", bookingID).Error; err != nil {
			return apperrors.NotFound("Booking")
		}
		if booking.CenterID == nil || *booking.CenterID != centerID {
			return apperrors.Forbidden("This booking does not belong to your center")
		}

		var employment models.CenterTeacher
		if err := tx.First(&employment, "center_id = ? AND teacher_id = ? AND is_active = ?", centerID, teacherID, true).Error; err != nil {
			return apperrors.Validation("Teacher must be an active member of your roster")
		}

		var assignedCount int64
		if err := tx.Table("service_teachers").
			Where("service_id = ? AND teacher_user_id = ?", booking.ServiceID, teacherID).
			Count(&assignedCount).Error; err != nil {
			return err
		}
		if assignedCount == 0 {
			return apperrors.Validation("Teacher is not assigned to this service")
		}

		windows, err := teacherBookingWindows(tx, teacherID, booking.Date)
		if err != nil {
			return err
		}
		if scheduling.HasConflict(windows, booking.StartMin, booking.EndMin, booking.ID) {
			return apperrors.Conflict("Teacher already has a booking at this time")
		}

		booking.TeacherID = &teacherID
		return transitionBookingTx(tx, &booking, scheduling.EventAssign)
	})
	if err != nil {
		return respondBookingError(c, err)
	}

	go notifications.SendEmail(booking.Parent.FullName, booking.Parent.Email, "Your Booking is Confirmed!",
		"<h1>Booking Confirmed</h1><p>The center has assigned a teacher and confirmed your session.</p>")

	return c.JSON(fiber.Map{"message": "Teacher assigned and booking confirmed.", "booking": booking})
}
