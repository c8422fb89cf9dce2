package dto

import (
	"time"

	"github.com/google/uuid"

	model "tourstravels_backend/internals/features/packages/model"
)

/* ======================= REQUESTS ======================= */

type CreatePackageRequest struct {
	Title         string     `json:"title" validate:"required,min=3"`
	Destination   string     `json:"destination"`
	Description   string     `json:"description"`
	Price         float64    `json:"price" validate:"required,gt=0"`
	Duration      string     `json:"duration"`
	TourStartTime *time.Time `json:"tour_start_time"`
	TourEndTime   *time.Time `json:"tour_end_time"`
}

type UpdatePackageRequest struct {
	Title         *string    `json:"title" validate:"omitempty,min=3"`
	Destination   *string    `json:"destination"`
	Description   *string    `json:"description"`
	Price         *float64   `json:"price" validate:"omitempty,gt=0"`
	Duration      *string    `json:"duration"`
	TourStartTime *time.Time `json:"tour_start_time"`
	TourEndTime   *time.Time `json:"tour_end_time"`
}

type AddImageURLsRequest struct {
	ImageURLs []string `json:"image_urls" validate:"required,min=1,max=5,dive,url"`
}

/* ======================= RESPONSES ======================= */

type PackageResponse struct {
	PackageID     uuid.UUID  `json:"package_id"`
	AgentID       uuid.UUID  `json:"agent_id"`
	Title         string     `json:"title"`
	Destination   string     `json:"destination,omitempty"`
	Description   string     `json:"description,omitempty"`
	Price         float64    `json:"price"`
	Duration      string     `json:"duration,omitempty"`
	TourStartTime *time.Time `json:"tour_start_time,omitempty"`
	TourEndTime   *time.Time `json:"tour_end_time,omitempty"`
	ImageURLs     []string   `json:"image_urls"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromPackageModel(m model.TravelPackageModel) PackageResponse {
	return PackageResponse{
		PackageID:     m.PackageID,
		AgentID:       m.PackageAgentID,
		Title:         m.PackageTitle,
		Destination:   m.PackageDestination,
		Description:   m.PackageDescription,
		Price:         m.PackagePrice,
		Duration:      m.PackageDuration,
		TourStartTime: m.PackageTourStartTime,
		TourEndTime:   m.PackageTourEndTime,
		ImageURLs:     append([]string(nil), m.PackageImageURLs...),
		Status:        m.PackageStatus,
		CreatedAt:     m.PackageCreatedAt,
	}
}

func FromPackageModels(list []model.TravelPackageModel) []PackageResponse {
	out := make([]PackageResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromPackageModel(m))
	}
	return out
}
