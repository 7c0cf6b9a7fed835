package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/liphant/liphant-api/database"
	"github.com/liphant/liphant-api/models"
	"github.com/liphant/liphant-api/notifications"
	"github.com/liphant/liphant-api/scheduling"
)

// SendSessionReminders emails both parties about confirmed sessions
// starting roughly an hour from now. Runs every 5 minutes, so the
// window is 60-65 minutes out to avoid double sends.
func SendSessionReminders() {
	log.Println("Running job: SendSessionReminders...")

	now := time.Now()
	today := now.Format("2006-01-02")

	var todaysBookings []models.Booking
	err := database.DB.
		Preload("Parent").
		Preload("Teacher").
		Preload("Child").
		Where("status = ? AND date = ?", scheduling.StatusConfirmed, today).
		Find(&todaysBookings).Error
	if err != nil {
		log.Printf("Error checking for upcoming sessions: %v", err)
		return
	}

	minutesNow := now.Hour()*60 + now.Minute()

	for _, booking := range todaysBookings {
		lead := booking.StartMin - minutesNow
		if lead < 60 || lead >= 65 {
			continue
		}
		if booking.Teacher == nil {
			continue
		}

		emailSubject := "Reminder: Your Session Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Session Reminder</h1><p>Hi there,</p><p>This is a friendly reminder that the session for %s is scheduled to start in one hour, at %s.</p>",
			booking.Child.FullName,
			scheduling.FormatClock(booking.StartMin),
		)

		go notifications.SendEmail(booking.Parent.FullName, booking.Parent.Email, emailSubject, emailBody)
		go notifications.SendEmail(booking.Teacher.FullName, booking.Teacher.Email, emailSubject, emailBody)
	}
}
