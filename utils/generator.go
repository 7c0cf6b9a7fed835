package utils

import (
	"math/rand"
	"time"

	"github.com/liphant/liphant-api/models"
	"gorm.io/gorm"
)

const bookingReferenceLength = 10
const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateBookingReference returns a short human-readable code that is
// unique among bookings. Runs inside the caller's transaction so the
// uniqueness check and the insert see the same snapshot.
func GenerateBookingReference(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, bookingReferenceLength)
		for i := range b {
			b[i] = referenceAlphabet[seededRand.Intn(len(referenceAlphabet))]
		}
		reference := string(b)

		var booking models.Booking
		err := tx.Where("reference = ?", reference).First(&booking).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return reference, nil
			}
			return "", err
		}
	}
}
