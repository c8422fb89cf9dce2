package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserName     string `gorm:"column:user_name;type:text;not null" json:"user_name"`
	UserEmail    string `gorm:"column:user_email;type:text;not null;uniqueIndex" json:"user_email"`
	UserPassword string `gorm:"column:user_password;type:text;not null" json:"-"`
	UserPhone    string `gorm:"column:user_phone;type:text" json:"user_phone,omitempty"`
	UserAddress  string `gorm:"column:user_address;type:text" json:"user_address,omitempty"`

	UserProfilePicURL *string `gorm:"column:user_profile_pic_url;type:text" json:"user_profile_pic_url,omitempty"`

	// ADMIN / AGENT / CUSTOMER
	UserRole string `gorm:"column:user_role;type:varchar(20);not null;index" json:"user_role"`

	// Agent registration sub-state: NULL/false = pending, true = approved.
	UserCompanyName   *string    `gorm:"column:user_company_name;type:text"    json:"user_company_name,omitempty"`
	UserLicenseNumber *string    `gorm:"column:user_license_number;type:text"  json:"user_license_number,omitempty"`
	UserIsApproved    *bool      `gorm:"column:user_is_approved"               json:"user_is_approved,omitempty"`
	UserApprovalDate  *time.Time `gorm:"column:user_approval_date"             json:"user_approval_date,omitempty"`
	UserApprovedBy    *string    `gorm:"column:user_approved_by;type:text"     json:"user_approved_by,omitempty"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index"          json:"-"`
}

func (UserModel) TableName() string { return "users" }

// Approved reports whether an agent may act on protected operations.
func (u *UserModel) Approved() bool {
	return u.UserIsApproved != nil && *u.UserIsApproved
}
