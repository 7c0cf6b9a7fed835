package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/liphant/liphant-api/apperrors"
	"github.com/liphant/liphant-api/database"
	"github.com/liphant/liphant-api/models"
	"github.com/liphant/liphant-api/notifications"
	"github.com/liphant/liphant-api/scheduling"
	"github.com/liphant/liphant-api/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateBookingRequest struct {
	ChildID   string  `json:"child_id" validate:"required,uuid"`
	TeacherID *string `json:"teacher_id" validate:"omitempty,uuid"`
	ServiceID *string `json:"service_id" validate:"omitempty,uuid"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string  `json:"start_time" validate:"required"`
	EndTime   string  `json:"end_time" validate:"required"`
	Notes     *string `json:"notes,omitempty"`
}

// bookingLockKey names the advisory lock serializing writes to one
// teacher's schedule on one calendar day.
func bookingLockKey(teacherID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("booking:%s:%s", teacherID, date.Format("2006-01-02"))
}

// teacherBookingWindows loads every booking for one teacher and date after
// taking a transaction-scoped advisory lock on that (teacher, date) pair.
// A FOR UPDATE scan only locks rows that already exist, so when two
// overlapping requests race over an empty day both would pass the conflict
// check; the advisory lock holds the second writer until the first commits,
// and its windows scan then sees the winning row.
func teacherBookingWindows(tx *gorm.DB, teacherID uuid.UUID, date time.Time) ([]scheduling.BookingWindow, error) {
	if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", bookingLockKey(teacherID, date)).Error; err != nil {
		return nil, err
	}

	var rows []models.Booking
	if err := tx.Where("teacher_id = ? AND date = ?", teacherID, date).Find(&rows).Error; err != nil {
		return nil, err
	}

	windows := make([]scheduling.BookingWindow, len(rows))
	for i, b := range rows {
		windows[i] = scheduling.BookingWindow{ID: b.ID, StartMin: b.StartMin, EndMin: b.EndMin, Status: b.Status}
	}
	return windows, nil
}

func CreateBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	parentID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if (req.TeacherID == nil) == (req.ServiceID == nil) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Provide exactly one of teacher_id or service_id"})
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
	date, _ := time.Parse("2006-01-02", req.Date)

	var child models.Child
	if err := database.DB.First(&child, "id = ? AND parent_id = ?", req.ChildID, parentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Child not found"})
	}

	if req.TeacherID != nil {
		return createDirectBooking(c, parentID, child.ID, *req.TeacherID, date, startMin, endMin, req.Notes)
	}
	return createServiceBooking(c, parentID, child.ID, *req.ServiceID, date, startMin, endMin, req.Notes)
}

func createDirectBooking(c *fiber.Ctx, parentID, childID uuid.UUID, teacherIDStr string, date time.Time, startMin, endMin int, notes *string) error {
	teacherID, _ := uuid.Parse(teacherIDStr)

	var teacher models.Teacher
	if err := database.DB.Preload("User").First(&teacher, "user_id = ? AND status = ?", teacherID, "active").Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Active teacher not found"})
	}

	amount := teacher.HourlyRate * float64(endMin-startMin) / 60

	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		windows, err := teacherBookingWindows(tx, teacherID, date)
		if err != nil {
			return err
		}
		if scheduling.HasConflict(windows, startMin, endMin, uuid.Nil) {
			return apperrors.Conflict("This time is already booked")
		}

		reference, err := utils.GenerateBookingReference(tx)
		if err != nil {
			return err
		}

		booking = models.Booking{
			Reference: reference,
			ParentID:  parentID,
			ChildID:   childID,
			TeacherID: &teacherID,
			Date:      date,
			StartMin:  startMin,
			EndMin:    endMin,
			Status:    scheduling.StatusPending,
			Amount:    amount,
			Notes:     notes,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return c.Status(appErr.HTTPStatus).JSON(fiber.Map{"error": appErr.Message, "code": appErr.Code})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	go notifications.SendEmail(teacher.User.FullName, teacher.User.Email, "You Have a New Booking Request!",
		"<h1>New Booking Request</h1><p>A parent has requested a session with you. Please log in to confirm or decline.</p>")

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func createServiceBooking(c *fiber.Ctx, parentID, childID uuid.UUID, serviceIDStr string, date time.Time, startMin, endMin int, notes *string) error {
	serviceID, _ := uuid.Parse(serviceIDStr)

	var service models.Service
	if err := database.DB.Preload("Center.User").First(&service, "id = ? AND is_active = ?", serviceID, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}
	if service.Center.Status != "active" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		eligible, err := eligibleTeachersForService(tx, &service, date, startMin, endMin)
		if err != nil {
			return err
		}
		if len(eligible) == 0 {
			return apperrors.Conflict("No teacher is available for this service at the requested time")
		}

		reference, err := utils.GenerateBookingReference(tx)
		if err != nil {
			return err
		}

		booking = models.Booking{
			Reference: reference,
			ParentID:  parentID,
			ChildID:   childID,
			CenterID:  &service.CenterID,
			ServiceID: &service.ID,
			Date:      date,
			StartMin:  startMin,
			EndMin:    endMin,
			Status:    scheduling.StatusAwaitingAssignment,
			Amount:    service.Price,
			Notes:     notes,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return c.Status(appErr.HTTPStatus).JSON(fiber.Map{"error": appErr.Message, "code": appErr.Code})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	go notifications.SendEmail(service.Center.User.FullName, service.Center.User.Email, "New Service Booking Request",
		"<h1>New Booking Request</h1><p>A parent has requested a session for one of your services. Please assign a teacher.</p>")

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// eligibleTeachersForService intersects the center's active roster, the
// teachers assigned to the service, and conflict-free schedules for the
// interval. Booking rows for every candidate are read under the same row
// lock the insert path uses.
func eligibleTeachersForService(tx *gorm.DB, service *models.Service, date time.Time, startMin, endMin int) ([]uuid.UUID, error) {
	var employed []uuid.UUID
	if err := tx.Model(&models.CenterTeacher{}).
		Where("center_id = ? AND is_active = ?", service.CenterID, true).
		Order("created_at asc").
		Pluck("teacher_id", &employed).Error; err != nil {
		return nil, err
	}

	var assigned []uuid.UUID
	if err := tx.Table("service_teachers").
		Where("service_id = ?", service.ID).
		Pluck("teacher_user_id", &assigned).Error; err != nil {
		return nil, err
	}

	bookingsByTeacher := make(map[uuid.UUID][]scheduling.BookingWindow, len(employed))
	for _, teacherID := range employed {
		windows, err := teacherBookingWindows(tx, teacherID, date)
		if err != nil {
			return nil, err
		}
		bookingsByTeacher[teacherID] = windows
	}

	return scheduling.EligibleTeachers(employed, assigned, bookingsByTeacher, startMin, endMin), nil
}

// transitionBookingTx applies a lifecycle event to a booking inside tx and
// saves the new status. The caller has already authorized the actor.
func transitionBookingTx(tx *gorm.DB, booking *models.Booking, event string) error {
	next, appErr := scheduling.Transition(booking.Status, event)
	if appErr != nil {
		return appErr
	}
	booking.Status = next
	return tx.Save(booking).Error
}

func ConfirmBooking(c *fiber.Ctx) error {
	return teacherBookingAction(c, scheduling.EventConfirm, "Booking confirmed.")
}

func DeclineBooking(c *fiber.Ctx) error {
	return teacherBookingAction(c, scheduling.EventDecline, "Booking declined.")
}

func teacherBookingAction(c *fiber.Ctx, event, message string) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID, _ := uuid.Parse(claims["user_id"].(string))
	bookingID := c.Params("bookingId")

	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Preload("Parent").First(&booking, "id = ?", bookingID).Error; err != nil {
			return apperrors.NotFound("Booking")
		}
		if booking.TeacherID == nil || *booking.TeacherID != teacherID {
			return apperrors.Forbidden("You are not the teacher for this booking")
		}
		return transitionBookingTx(tx, &booking, event)
	})
	if err != nil {
		return respondBookingError(c, err)
	}

	subject := "Your Booking Request Was Declined"
	body := "<h1>Booking Declined</h1><p>The teacher is not available for the requested time. Please try another slot.</p>"
	if booking.Status == scheduling.StatusConfirmed {
		subject = "Your Booking is Confirmed!"
		body = "<h1>Booking Confirmed</h1><p>The teacher has confirmed your session.</p>"
	}
	go notifications.SendEmail(booking.Parent.FullName, booking.Parent.Email, subject, body)

	return c.JSON(fiber.Map{"message": message, "booking": booking})
}

func CompleteBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID, _ := uuid.Parse(claims["user_id"].(string))
	bookingID := c.Params("bookingId")

	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, "id = ?", bookingID).Error; err != nil {
			return apperrors.NotFound("Booking")
		}
		if booking.TeacherID == nil || *booking.TeacherID != teacherID {
			return apperrors.Forbidden("You are not the teacher for this booking")
		}

		sessionEnd := booking.Date.Add(time.Duration(booking.EndMin) * time.Minute)
		if sessionEnd.After(time.Now()) {
			return apperrors.Validation("Cannot mark a session as complete before it has ended")
		}
		return transitionBookingTx(tx, &booking, scheduling.EventComplete)
	})
	if err != nil {
		return respondBookingError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Session marked as complete.", "booking": booking})
}

func CancelBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	actorID, _ := uuid.Parse(claims["user_id"].(string))
	bookingID := c.Params("bookingId")

	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, "id = ?", bookingID).Error; err != nil {
			return apperrors.NotFound("Booking")
		}

		isParent := booking.ParentID == actorID
		isTeacher := booking.TeacherID != nil && *booking.TeacherID == actorID
		isCenter := booking.CenterID != nil && *booking.CenterID == actorID
		if !isParent && !isTeacher && !isCenter {
			return apperrors.Forbidden("You are not a party to this booking")
		}
		return transitionBookingTx(tx, &booking, scheduling.EventCancel)
	})
	if err != nil {
		return respondBookingError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Booking cancelled.", "booking": booking})
}

func respondBookingError(c *fiber.Ctx, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.HTTPStatus).JSON(fiber.Map{"error": appErr.Message, "code": appErr.Code})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking"})
}

func GetMyBookings(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	parentID, _ := uuid.Parse(claims["user_id"].(string))

	var bookings []models.Booking
	database.DB.
		Preload("Teacher").
		Preload("Child").
		Preload("Service").
		Preload("Center").
		Where("parent_id = ?", parentID).
		Order("date desc, start_min desc").
		Find(&bookings)

	return c.JSON(bookings)
}

func GetMyTeacherBookings(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID, _ := uuid.Parse(claims["user_id"].(string))

	var bookings []models.Booking
	database.DB.
		Preload("Parent").
		Preload("Child").
		Preload("Service").
		Where("teacher_id = ?", teacherID).
		Order("date desc, start_min desc").
		Find(&bookings)

	return c.JSON(bookings)
}

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func CreateReview(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	parentID, _ := uuid.Parse(claims["user_id"].(string))
	bookingID := c.Params("bookingId")

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var newReview models.Review
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
			return errors.New("booking not found")
		}
		if booking.ParentID != parentID {
			return errors.New("you are not the parent for this booking")
		}
		if booking.Status != scheduling.StatusCompleted {
			return errors.New("reviews can only be submitted for completed sessions")
		}
		if booking.TeacherID == nil {
			return errors.New("this booking has no assigned teacher")
		}

		var existingReview models.Review
		if err := tx.Where("booking_id = ?", bookingID).First(&existingReview).Error; err == nil {
			return errors.New("a review for this booking has already been submitted")
		}

		newReview = models.Review{
			BookingID: booking.ID,
			ParentID:  parentID,
			TeacherID: *booking.TeacherID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}
		if err := tx.Create(&newReview).Error; err != nil {
			return err
		}

		var result struct {
			Avg float64
		}
		tx.Model(&models.Review{}).Where("teacher_id = ?", newReview.TeacherID).Select("avg(rating) as avg").Scan(&result)

		return tx.Model(&models.Teacher{}).Where("user_id = ?", newReview.TeacherID).Update("avg_rating", result.Avg).Error
	})

	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(newReview)
}
