package dto

import (
	"time"

	"github.com/google/uuid"

	model "tourstravels_backend/internals/features/payments/model"
)

/* ======================= RESPONSES ======================= */

type PaymentResponse struct {
	PaymentID uuid.UUID  `json:"payment_id"`
	BookingID uuid.UUID  `json:"booking_id"`
	Amount    float64    `json:"amount"`
	Status    string     `json:"status"`
	Mode      string     `json:"mode"`
	OrderID   string     `json:"order_id,omitempty"`
	SnapToken *string    `json:"snap_token,omitempty"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromPaymentModel(m model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID: m.PaymentID,
		BookingID: m.PaymentBookingID,
		Amount:    m.PaymentAmount,
		Status:    m.PaymentStatus,
		Mode:      m.PaymentMode,
		OrderID:   m.PaymentOrderID,
		SnapToken: m.PaymentSnapToken,
		PaidAt:    m.PaymentPaidAt,
		CreatedAt: m.PaymentCreatedAt,
	}
}

func FromPaymentModels(list []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromPaymentModel(m))
	}
	return out
}

type PaymentStatsResponse struct {
	TotalPayments int64            `json:"total_payments"`
	ByStatus      map[string]int64 `json:"by_status"`
	TotalRevenue  float64          `json:"total_revenue"`
}
