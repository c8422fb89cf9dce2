package dto

import (
	"time"

	"github.com/google/uuid"

	model "tourstravels_backend/internals/features/users/model"
)

/* ======================= REQUESTS ======================= */

type RegisterCustomerRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,min=6"`
	Address  string `json:"address"`
}

type RegisterAgentRequest struct {
	Name          string `json:"name" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	Phone         string `json:"phone" validate:"omitempty,min=6"`
	Address       string `json:"address"`
	CompanyName   string `json:"company_name" validate:"required"`
	LicenseNumber string `json:"license_number" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ApproveAgentRequest struct {
	AdminName string `json:"admin_name"`
}

type UpdateProfileRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=2"`
	Phone         *string `json:"phone" validate:"omitempty,min=6"`
	Address       *string `json:"address"`
	ProfilePicURL *string `json:"profile_pic_url" validate:"omitempty,url"`
}

/* ======================= RESPONSES ======================= */

type LoginResponse struct {
	Token  string    `json:"token"`
	Role   string    `json:"role"`
	UserID uuid.UUID `json:"user_id"`
}

type UserResponse struct {
	UserID        uuid.UUID  `json:"user_id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	Address       string     `json:"address,omitempty"`
	Role          string     `json:"role"`
	ProfilePicURL *string    `json:"profile_pic_url,omitempty"`
	CompanyName   *string    `json:"company_name,omitempty"`
	LicenseNumber *string    `json:"license_number,omitempty"`
	IsApproved    *bool      `json:"is_approved,omitempty"`
	ApprovalDate  *time.Time `json:"approval_date,omitempty"`
	ApprovedBy    *string    `json:"approved_by,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromUserModel(m model.UserModel) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		Name:          m.UserName,
		Email:         m.UserEmail,
		Phone:         m.UserPhone,
		Address:       m.UserAddress,
		Role:          m.UserRole,
		ProfilePicURL: m.UserProfilePicURL,
		CompanyName:   m.UserCompanyName,
		LicenseNumber: m.UserLicenseNumber,
		IsApproved:    m.UserIsApproved,
		ApprovalDate:  m.UserApprovalDate,
		ApprovedBy:    m.UserApprovedBy,
		CreatedAt:     m.UserCreatedAt,
	}
}

func FromUserModels(list []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromUserModel(m))
	}
	return out
}
