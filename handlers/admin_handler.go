package handlers

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liphant/liphant-api/database"
	"github.com/liphant/liphant-api/models"
	"github.com/liphant/liphant-api/notifications"
	"gorm.io/gorm"
)

func ListPendingTeacherApplications(c *fiber.Ctx) error {
	var pendingTeachers []models.Teacher
	if err := database.DB.Preload("User").Preload("Specializations").Where("status = ?", "pending").Find(&pendingTeachers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(pendingTeachers)
}

func ManageTeacherApplication(c *fiber.Ctx) error {
	type MgtRequest struct {
		Status string `json:"status" validate:"required,oneof=active rejected"`
	}

	var req MgtRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	teacherUserID := c.Params("teacherId")

	var teacherApp models.Teacher
	if err := database.DB.Where("user_id = ?", teacherUserID).First(&teacherApp).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}

	var user models.User
	if err := database.DB.Where("id = ?", teacherUserID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Associated user not found"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		teacherApp.Status = req.Status
		if err := tx.Save(&teacherApp).Error; err != nil {
			return err
		}
		if req.Status == "active" {
			user.Role = "teacher"
			if err := tx.Save(&user).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update application status"})
	}

	switch req.Status {
	case "active":
		go notifications.SendEmail(
			user.FullName,
			user.Email,
			"Your Shadow Teacher Application has been Approved!",
			"<h1>Congratulations!</h1><p>Your application to become a shadow teacher on Liphant has been approved. You can now set your availability and receive booking requests.</p>",
		)
	case "rejected":
		go notifications.SendEmail(
			user.FullName,
			user.Email,
			"Update on Your Shadow Teacher Application",
			"<h1>Application Update</h1><p>We regret to inform you that after careful review, your shadow teacher application was not approved at this time.</p>",
		)
	}

	return c.JSON(fiber.Map{"message": "Application status updated successfully"})
}

func ListPendingCenters(c *fiber.Ctx) error {
	var pendingCenters []models.Center
	if err := database.DB.Preload("User").Where("status = ?", "pending").Find(&pendingCenters).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(pendingCenters)
}

func ManageCenterRegistration(c *fiber.Ctx) error {
	type MgtRequest struct {
		Status string `json:"status" validate:"required,oneof=active rejected"`
	}

	var req MgtRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	centerUserID := c.Params("centerId")

	var center models.Center
	if err := database.DB.Where("user_id = ?", centerUserID).First(&center).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Center registration not found"})
	}

	var user models.User
	if err := database.DB.Where("id = ?", centerUserID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Associated user not found"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		center.Status = req.Status
		if err := tx.Save(&center).Error; err != nil {
			return err
		}
		if req.Status == "active" {
			user.Role = "center"
			if err := tx.Save(&user).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update center status"})
	}

	switch req.Status {
	case "active":
		go notifications.SendEmail(user.FullName, user.Email, "Your Center has been Approved!",
			"<h1>Welcome to Liphant!</h1><p>Your center registration has been approved. You can now publish services and manage your teacher roster.</p>")
	case "rejected":
		go notifications.SendEmail(user.FullName, user.Email, "Update on Your Center Registration",
			"<h1>Registration Update</h1><p>We regret to inform you that your center registration was not approved at this time.</p>")
	}

	return c.JSON(fiber.Map{"message": "Center status updated successfully"})
}

type SpecializationRequest struct {
	NameEn string `json:"name_en" validate:"required,min=2"`
	NameAr string `json:"name_ar" validate:"required,min=2"`
}

func CreateSpecialization(c *fiber.Ctx) error {
	var req SpecializationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	specialization := models.Specialization{NameEn: req.NameEn, NameAr: req.NameAr}
	if err := database.DB.Create(&specialization).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A specialization with this name already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create specialization"})
	}

	return c.Status(fiber.StatusCreated).JSON(specialization)
}

func UpdateSpecialization(c *fiber.Ctx) error {
	var req SpecializationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var specialization models.Specialization
	if err := database.DB.First(&specialization, "id = ?", c.Params("specializationId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Specialization not found"})
	}

	specialization.NameEn = req.NameEn
	specialization.NameAr = req.NameAr
	if err := database.DB.Save(&specialization).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update specialization"})
	}

	return c.JSON(specialization)
}

func DeleteSpecialization(c *fiber.Ctx) error {
	specializationID := c.Params("specializationId")

	var inUse int64
	database.DB.Table("teacher_specializations").Where("specialization_id = ?", specializationID).Count(&inUse)
	if inUse > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Specialization is in use by teacher profiles and cannot be deleted"})
	}

	if err := database.DB.Delete(&models.Specialization{}, "id = ?", specializationID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete specialization"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

type DashboardAnalyticsResponse struct {
	TotalParents        int64            `json:"total_parents"`
	TotalActiveTeachers int64            `json:"total_active_teachers"`
	TotalActiveCenters  int64            `json:"total_active_centers"`
	BookingsLast30Days  int64            `json:"bookings_last_30_days"`
	CompletedSessions   int64            `json:"completed_sessions"`
	RecentBookings      []models.Booking `json:"recent_bookings"`
}

func GetDashboardAnalytics(c *fiber.Ctx) error {
	var response DashboardAnalyticsResponse

	database.DB.Model(&models.User{}).Where("role = ?", "parent").Count(&response.TotalParents)
	database.DB.Model(&models.Teacher{}).Where("status = ?", "active").Count(&response.TotalActiveTeachers)
	database.DB.Model(&models.Center{}).Where("status = ?", "active").Count(&response.TotalActiveCenters)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&models.Booking{}).Where("created_at > ?", thirtyDaysAgo).Count(&response.BookingsLast30Days)
	database.DB.Model(&models.Booking{}).Where("status = ?", "completed").Count(&response.CompletedSessions)

	database.DB.Order("created_at desc").Limit(5).Preload("Parent").Preload("Teacher").Preload("Child").Find(&response.RecentBookings)

	return c.JSON(response)
}

func GetAllUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	search := strings.TrimSpace(c.Query("search"))
	role := c.Query("role")
	offset := (page - 1) * limit

	var users []models.User
	var totalUsers int64

	query := database.DB.Model(&models.User{})
	countQuery := database.DB.Model(&models.User{})

	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("full_name ILIKE ? OR email ILIKE ?", searchTerm, searchTerm)
		countQuery = countQuery.Where("full_name ILIKE ? OR email ILIKE ?", searchTerm, searchTerm)
	}
	if role != "" {
		query = query.Where("role = ?", role)
		countQuery = countQuery.Where("role = ?", role)
	}

	countQuery.Count(&totalUsers)
	query.Offset(offset).Limit(limit).Find(&users)

	return c.JSON(fiber.Map{
		"data": users,
		"meta": fiber.Map{
			"total_users":  totalUsers,
			"total_pages":  int(math.Ceil(float64(totalUsers) / float64(limit))),
			"current_page": page,
		},
	})
}

func ToggleUserStatus(c *fiber.Ctx) error {
	userID := c.Params("userId")
	type Request struct {
		IsActive bool `json:"is_active"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", userID).Update("is_active", req.IsActive).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{"message": "User status updated successfully."})
}

func AdminGetAllBookings(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	status := c.Query("status")
	offset := (page - 1) * limit

	var bookings []models.Booking
	var totalBookings int64

	query := database.DB.Model(&models.Booking{})
	countQuery := database.DB.Model(&models.Booking{})

	if status != "" {
		query = query.Where("status = ?", status)
		countQuery = countQuery.Where("status = ?", status)
	}

	countQuery.Count(&totalBookings)
	query.Order("created_at desc").Offset(offset).Limit(limit).Preload("Parent").Preload("Teacher").Preload("Child").Find(&bookings)

	return c.JSON(fiber.Map{
		"data": bookings,
		"meta": fiber.Map{
			"total":     totalBookings,
			"page":      page,
			"last_page": int(math.Ceil(float64(totalBookings) / float64(limit))),
		},
	})
}

func AdminGetReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	database.DB.Order("created_at desc").Preload("Parent").Preload("Teacher").Find(&reviews)
	return c.JSON(reviews)
}

func AdminDeleteReview(c *fiber.Ctx) error {
	reviewID := c.Params("reviewId")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, "id = ?", reviewID).Error; err != nil {
			return errors.New("review not found")
		}

		teacherID := review.TeacherID

		if err := tx.Delete(&review).Error; err != nil {
			return err
		}

		var result struct{ Avg float64 }
		tx.Model(&models.Review{}).Where("teacher_id = ?", teacherID).Select("COALESCE(AVG(rating), 0) as avg").Scan(&result)

		return tx.Model(&models.Teacher{}).Where("user_id = ?", teacherID).Update("avg_rating", result.Avg).Error
	})

	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Forum moderation. Removal is a soft hide so threads keep their shape.

func AdminRemoveForumPost(c *fiber.Ctx) error {
	if err := database.DB.Model(&models.ForumPost{}).
		Where("id = ?", c.Params("postId")).
		Update("status", "removed").Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
	}
	return c.JSON(fiber.Map{"message": "Post removed."})
}

func AdminRemoveForumComment(c *fiber.Ctx) error {
	if err := database.DB.Model(&models.ForumComment{}).
		Where("id = ?", c.Params("commentId")).
		Update("status", "removed").Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Comment not found"})
	}
	return c.JSON(fiber.Map{"message": "Comment removed."})
}

func AdminDeleteUser(c *fiber.Ctx) error {
	userID := c.Params("userId")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return errors.New("user not found")
		}

		if user.Role == "teacher" {
			if err := tx.Where("teacher_id = ?", userID).Delete(&models.Review{}).Error; err != nil {
				return err
			}
			if err := tx.Where("teacher_id = ?", userID).Delete(&models.AvailabilitySlot{}).Error; err != nil {
				return err
			}
			if err := tx.Where("teacher_id = ?", userID).Delete(&models.CenterTeacher{}).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Teacher{UserID: user.ID}).Association("Specializations").Clear(); err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", userID).Delete(&models.Teacher{}).Error; err != nil {
				return err
			}
		}

		if user.Role == "parent" {
			if err := tx.Where("parent_id = ?", userID).Delete(&models.Child{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&user).Error
	})

	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
