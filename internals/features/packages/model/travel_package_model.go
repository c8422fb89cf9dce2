package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type TravelPackageModel struct {
	PackageID uuid.UUID `gorm:"column:package_id;type:uuid;default:gen_random_uuid();primaryKey" json:"package_id"`

	// Owning agent (user with role AGENT).
	PackageAgentID uuid.UUID `gorm:"column:package_agent_id;type:uuid;not null;index" json:"package_agent_id"`

	PackageTitle       string  `gorm:"column:package_title;type:text;not null"       json:"package_title"`
	PackageDestination string  `gorm:"column:package_destination;type:text"          json:"package_destination"`
	PackageDescription string  `gorm:"column:package_description;type:text"          json:"package_description"`
	PackagePrice       float64 `gorm:"column:package_price;type:numeric(12,2);not null" json:"package_price"`
	PackageDuration    string  `gorm:"column:package_duration;type:text"             json:"package_duration"`

	// Optional window a booking's tour date must fall within.
	PackageTourStartTime *time.Time `gorm:"column:package_tour_start_time;type:date" json:"package_tour_start_time,omitempty"`
	PackageTourEndTime   *time.Time `gorm:"column:package_tour_end_time;type:date"   json:"package_tour_end_time,omitempty"`

	// 0–5 image URLs.
	PackageImageURLs pq.StringArray `gorm:"column:package_image_urls;type:text[]" json:"package_image_urls"`

	// PENDING / APPROVED / REJECTED
	PackageStatus string `gorm:"column:package_status;type:varchar(20);not null;index" json:"package_status"`

	PackageCreatedAt time.Time      `gorm:"column:package_created_at;autoCreateTime" json:"package_created_at"`
	PackageUpdatedAt *time.Time     `gorm:"column:package_updated_at;autoUpdateTime" json:"package_updated_at,omitempty"`
	PackageDeletedAt gorm.DeletedAt `gorm:"column:package_deleted_at;index"          json:"-"`
}

func (TravelPackageModel) TableName() string { return "packages" }

// HasWindow reports whether the package restricts bookable tour dates.
func (p *TravelPackageModel) HasWindow() bool {
	return p.PackageTourStartTime != nil && p.PackageTourEndTime != nil
}
