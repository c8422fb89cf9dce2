package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "tourstravels_backend/internals/features/users/dto"
	"tourstravels_backend/internals/features/users/service"
	helper "tourstravels_backend/internals/helpers"
	authhelper "tourstravels_backend/internals/helpers/auth"
)

type ProfileController struct {
	Service *service.AuthService
}

func NewProfileController(svc *service.AuthService) *ProfileController {
	return &ProfileController{Service: svc}
}

// GET /api/customer/profile
func (h *ProfileController) GetProfile(c *fiber.Ctx) error {
	actor, err := authhelper.PrincipalFromContext(c)
	if err != nil {
		return err
	}
	u, err := h.Service.GetProfile(c.UserContext(), actor.UserID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.FromUserModel(*u))
}

// PUT /api/customer/profile
func (h *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	actor, err := authhelper.PrincipalFromContext(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return err
	}

	u, err := h.Service.UpdateProfile(c.UserContext(), actor.UserID, req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Profile updated", dto.FromUserModel(*u))
}
