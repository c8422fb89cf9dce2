package database

import (
	"log"

	bookingmodel "tourstravels_backend/internals/features/bookings/model"
	packagemodel "tourstravels_backend/internals/features/packages/model"
	paymentmodel "tourstravels_backend/internals/features/payments/model"
	usermodel "tourstravels_backend/internals/features/users/model"
)

// Migrate creates/updates the schema. The unique index on
// payments.payment_booking_id is what closes the duplicate-payment race
// between two concurrent pay() calls; application-level checks alone
// cannot.
func Migrate() {
	if err := DB.AutoMigrate(
		&usermodel.UserModel{},
		&usermodel.TokenBlacklistModel{},
		&packagemodel.TravelPackageModel{},
		&bookingmodel.BookingModel{},
		&paymentmodel.PaymentModel{},
	); err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ Schema migrated.")
}
