package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	dto "tourstravels_backend/internals/features/users/dto"
	model "tourstravels_backend/internals/features/users/model"
	"tourstravels_backend/internals/features/users/service"
	helper "tourstravels_backend/internals/helpers"
)

type AuthController struct {
	DB      *gorm.DB
	Service *service.AuthService
}

func NewAuthController(db *gorm.DB, svc *service.AuthService) *AuthController {
	return &AuthController{DB: db, Service: svc}
}

/* ======================= REGISTER (CUSTOMER) ======================= */
// POST /api/auth/register
func (h *AuthController) RegisterCustomer(c *fiber.Ctx) error {
	var req dto.RegisterCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return err
	}

	u, err := h.Service.RegisterCustomer(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Registration successful", dto.FromUserModel(*u))
}

/* ======================= REGISTER (AGENT, PENDING) ======================= */
// POST /api/auth/register-agent
func (h *AuthController) RegisterAgent(c *fiber.Ctx) error {
	var req dto.RegisterAgentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return err
	}

	if _, err := h.Service.RegisterAgentPending(c.UserContext(), req); err != nil {
		return err
	}
	return helper.JsonCreated(c, "Agent registration submitted! Awaiting admin approval.", nil)
}

/* ======================= LOGIN ======================= */
// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return err
	}

	resp, err := h.Service.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Login successful", resp)
}

/* ======================= LOGOUT ======================= */
// POST /api/auth/logout — blacklists the presented token until it expires.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token").(string)
	if tokenString == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing token")
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiresAt = time.Unix(int64(exp), 0)
		}
	}

	entry := model.TokenBlacklistModel{
		Token:                   tokenString,
		TokenBlacklistExpiresAt: expiresAt,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&entry).Error; err != nil {
		// duplicate logout is fine
		return helper.JsonOK(c, "Logged out", nil)
	}
	return helper.JsonOK(c, "Logged out", nil)
}
