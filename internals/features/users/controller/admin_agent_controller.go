package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "tourstravels_backend/internals/features/users/dto"
	"tourstravels_backend/internals/features/users/service"
	helper "tourstravels_backend/internals/helpers"
	"tourstravels_backend/internals/helpers/sms"
)

// AdminAgentController: agent registration queue + user listings.
type AdminAgentController struct {
	Service  *service.AuthService
	Notifier sms.Notifier
}

func NewAdminAgentController(svc *service.AuthService, notifier sms.Notifier) *AdminAgentController {
	return &AdminAgentController{Service: svc, Notifier: notifier}
}

/* ======================= USER LISTINGS ======================= */

// GET /api/admin/users
func (h *AdminAgentController) ListUsers(c *fiber.Ctx) error {
	users, err := h.Service.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.FromUserModels(users))
}

// GET /api/admin/agents
func (h *AdminAgentController) ListAgents(c *fiber.Ctx) error {
	agents, err := h.Service.ListAgents(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.FromUserModels(agents))
}

// GET /api/admin/agents/pending
func (h *AdminAgentController) ListPendingAgents(c *fiber.Ctx) error {
	agents, err := h.Service.ListPendingAgents(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.FromUserModels(agents))
}

// GET /api/admin/agents/approved
func (h *AdminAgentController) ListApprovedAgents(c *fiber.Ctx) error {
	agents, err := h.Service.ListApprovedAgents(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.FromUserModels(agents))
}

/* ======================= APPROVAL ======================= */

// PUT /api/admin/agents/approve/:id
func (h *AdminAgentController) ApproveAgent(c *fiber.Ctx) error {
	agentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid agent ID")
	}

	var req dto.ApproveAgentRequest
	_ = c.BodyParser(&req) // body optional

	agent, err := h.Service.ApproveAgent(c.UserContext(), agentID, req.AdminName)
	if err != nil {
		return err
	}

	log.Printf("✅ Agent approved: %s", agent.UserEmail)
	h.Notifier.Send(agent.UserPhone, "Your agent registration has been approved. You can now log in.")
	return helper.JsonOK(c, "Agent approved successfully", fiber.Map{
		"agent_email": agent.UserEmail,
	})
}

// PUT /api/admin/agents/reject/:id
func (h *AdminAgentController) RejectAgent(c *fiber.Ctx) error {
	agentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid agent ID")
	}

	if err := h.Service.RejectAgent(c.UserContext(), agentID); err != nil {
		return err
	}
	return helper.JsonOK(c, "Agent registration rejected", fiber.Map{"id": agentID})
}

// POST /api/admin/agents — admin-created agents are approved immediately.
func (h *AdminAgentController) CreateAgent(c *fiber.Ctx) error {
	var req dto.RegisterAgentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return err
	}

	adminName, _ := c.Locals("user_name").(string)
	agent, err := h.Service.CreateAgent(c.UserContext(), req, adminName)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Agent created", dto.FromUserModel(*agent))
}

/* ======================= SMS TEST ======================= */

// POST /api/admin/sms/test
func (h *AdminAgentController) TestSms(c *fiber.Ctx) error {
	var req struct {
		Phone   string `json:"phone" validate:"required"`
		Message string `json:"message" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return err
	}

	h.Notifier.Send(req.Phone, req.Message)
	return helper.JsonOK(c, "SMS queued", nil)
}
