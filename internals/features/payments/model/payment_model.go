package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	// One payment per booking; the unique index is the hard stop against
	// two concurrent pay calls both inserting.
	PaymentBookingID uuid.UUID `gorm:"column:payment_booking_id;type:uuid;not null;uniqueIndex" json:"payment_booking_id"`

	PaymentAmount float64 `gorm:"column:payment_amount;type:numeric(12,2);not null" json:"payment_amount"`

	// PENDING / SUCCESS / REFUNDED / FAILED
	PaymentStatus string `gorm:"column:payment_status;type:varchar(20);not null;index" json:"payment_status"`

	// SIMULATED / MIDTRANS_SNAP
	PaymentMode string `gorm:"column:payment_mode;type:varchar(20);not null" json:"payment_mode"`

	// Order ID sent to the gateway and the Snap token it answered with.
	PaymentOrderID   string  `gorm:"column:payment_order_id;type:text" json:"payment_order_id,omitempty"`
	PaymentSnapToken *string `gorm:"column:payment_snap_token;type:text" json:"payment_snap_token,omitempty"`

	PaymentPaidAt *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt *time.Time     `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at,omitempty"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index"          json:"-"`
}

func (PaymentModel) TableName() string { return "payments" }
