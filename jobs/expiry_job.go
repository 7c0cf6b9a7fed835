package jobs

import (
	"log"
	"time"

	"github.com/liphant/liphant-api/database"
	"github.com/liphant/liphant-api/models"
	"github.com/liphant/liphant-api/scheduling"
)

// ExpireStaleBookings cancels requests that were never confirmed or
// assigned before their session date passed, freeing the slot for
// conflict checks.
func ExpireStaleBookings() {
	log.Println("Running job: ExpireStaleBookings...")

	today := time.Now().Format("2006-01-02")

	result := database.DB.Model(&models.Booking{}).
		Where("status IN ? AND date < ?", []string{scheduling.StatusPending, scheduling.StatusAwaitingAssignment}, today).
		Update("status", scheduling.StatusCancelled)

	if result.Error != nil {
		log.Printf("Error expiring stale bookings: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Cancelled %d stale booking request(s).", result.RowsAffected)
	}
}
