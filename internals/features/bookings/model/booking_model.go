package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingModel struct {
	BookingID uuid.UUID `gorm:"column:booking_id;type:uuid;default:gen_random_uuid();primaryKey" json:"booking_id"`

	// Owned-id references, resolved through repository lookups; no
	// lazy-loaded associations.
	BookingUserID    uuid.UUID `gorm:"column:booking_user_id;type:uuid;not null;index"    json:"booking_user_id"`
	BookingPackageID uuid.UUID `gorm:"column:booking_package_id;type:uuid;not null;index" json:"booking_package_id"`

	BookingTouristsCount int `gorm:"column:booking_tourists_count;not null" json:"booking_tourists_count"`

	// Copied from the package price at creation time.
	BookingAmount float64 `gorm:"column:booking_amount;type:numeric(12,2);not null" json:"booking_amount"`

	BookingDate          time.Time `gorm:"column:booking_date;type:date;not null"            json:"booking_date"`
	BookingTourStartDate time.Time `gorm:"column:booking_tour_start_date;type:date;not null" json:"booking_tour_start_date"`

	// PENDING / AGENT_APPROVED / AGENT_REJECTED / CONFIRMED / CANCELLED /
	// CANCELLED_BY_CUSTOMER
	BookingStatus string `gorm:"column:booking_status;type:varchar(40);not null;index" json:"booking_status"`

	// PENDING / SUCCESS / REFUNDED / FAILED
	BookingPaymentStatus string `gorm:"column:booking_payment_status;type:varchar(40);not null" json:"booking_payment_status"`

	BookingCreatedAt time.Time      `gorm:"column:booking_created_at;autoCreateTime" json:"booking_created_at"`
	BookingUpdatedAt *time.Time     `gorm:"column:booking_updated_at;autoUpdateTime" json:"booking_updated_at,omitempty"`
	BookingDeletedAt gorm.DeletedAt `gorm:"column:booking_deleted_at;index"          json:"-"`
}

func (BookingModel) TableName() string { return "bookings" }

// BookingDetail carries the joined display columns listings need.
type BookingDetail struct {
	BookingModel
	CustomerName string    `gorm:"column:customer_name" json:"customer_name"`
	PackageTitle string    `gorm:"column:package_title" json:"package_title"`
	AgentID      uuid.UUID `gorm:"column:agent_id"      json:"agent_id"`
}
