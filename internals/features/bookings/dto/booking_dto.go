package dto

import (
	"time"

	"github.com/google/uuid"

	model "tourstravels_backend/internals/features/bookings/model"
)

/* ======================= REQUESTS ======================= */

type CreateBookingRequest struct {
	PackageID     uuid.UUID `json:"package_id" validate:"required"`
	TouristsCount int       `json:"tourists_count" validate:"required,gt=0"`
	// Date-only, "2006-01-02".
	TourStartDate string `json:"tour_start_date" validate:"required"`
}

/* ======================= RESPONSES ======================= */

type BookingResponse struct {
	BookingID     uuid.UUID `json:"booking_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	PackageID     uuid.UUID `json:"package_id"`
	TouristsCount int       `json:"tourists_count"`
	Amount        float64   `json:"amount"`
	BookingDate   string    `json:"booking_date"`
	TourStartDate string    `json:"tour_start_date"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CustomerName  string    `json:"customer_name,omitempty"`
	PackageTitle  string    `json:"package_title,omitempty"`
	AgentID       uuid.UUID `json:"agent_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromBookingModel(m model.BookingModel) BookingResponse {
	return BookingResponse{
		BookingID:     m.BookingID,
		CustomerID:    m.BookingUserID,
		PackageID:     m.BookingPackageID,
		TouristsCount: m.BookingTouristsCount,
		Amount:        m.BookingAmount,
		BookingDate:   m.BookingDate.Format("2006-01-02"),
		TourStartDate: m.BookingTourStartDate.Format("2006-01-02"),
		Status:        m.BookingStatus,
		PaymentStatus: m.BookingPaymentStatus,
		CreatedAt:     m.BookingCreatedAt,
	}
}

func FromBookingDetail(d model.BookingDetail) BookingResponse {
	out := FromBookingModel(d.BookingModel)
	out.CustomerName = d.CustomerName
	out.PackageTitle = d.PackageTitle
	out.AgentID = d.AgentID
	return out
}

func FromBookingDetails(list []model.BookingDetail) []BookingResponse {
	out := make([]BookingResponse, 0, len(list))
	for _, d := range list {
		out = append(out, FromBookingDetail(d))
	}
	return out
}
