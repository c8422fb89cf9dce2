package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tourstravels_backend/internals/constants"
	dto "tourstravels_backend/internals/features/bookings/dto"
	"tourstravels_backend/internals/features/bookings/service"
	helper "tourstravels_backend/internals/helpers"
	authhelper "tourstravels_backend/internals/helpers/auth"
)

// BookingController serves all three roles; each route group maps onto
// the same service with a different Principal.
type BookingController struct {
	Service *service.BookingService
}

func NewBookingController(svc *service.BookingService) *BookingController {
	return &BookingController{Service: svc}
}

/* ======================= CUSTOMER ======================= */

// POST /api/customer/bookings
func (h *BookingController) Create(c *fiber.Ctx) error {
	actor, err := authhelper.PrincipalFromContext(c)
	if err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return err
	}
	start, err := time.Parse("2006-01-02", req.TourStartDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid tour start date, expected YYYY-MM-DD")
	}

	b, err := h.Service.Create(c.UserContext(), actor, service.CreateBookingInput{
		PackageID:     req.PackageID,
		TouristsCount: req.TouristsCount,
		TourStartDate: start,
	})
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Booking created, awaiting agent approval", dto.FromBookingModel(*b))
}

// GET /api/customer/bookings
func (h *BookingController) MyBookings(c *fiber.Ctx) error {
	actor, err := authhelper.PrincipalFromContext(c)
	if err != nil {
		return err
	}
	list, err := h.Service.ListByCustomer(c.UserContext(), actor.UserID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.FromBookingDetails(list))
}

// PUT /api/customer/bookings/cancel/:id
func (h *BookingController) CancelByCustomer(c *fiber.Ctx) error {
	actor, err := authhelper.PrincipalFromContext(c)
	if err != nil {
		return err
	}
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid booking ID")
	}
	b, err := h.Service.CancelByCustomer(c.UserContext(), actor, bookingID)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Booking cancelled", dto.FromBookingModel(*b))
}

/* ======================= AGENT ======================= */

// GET /api/agent/bookings
func (h *BookingController) AgentBookings(c *fiber.Ctx) error {
	actor, err := authhelper.PrincipalFromContext(c)
	if err != nil {
		return err
	}
	list, err := h.Service.ListByAgent(c.UserContext(), actor.UserID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.FromBookingDetails(list))
}

// PUT /api/agent/bookings/approve/:id
func (h *BookingController) AgentApprove(c *fiber.Ctx) error {
	return h.agentDecide(c, constants.DecisionApprove)
}

// PUT /api/agent/bookings/reject/:id
func (h *BookingController) AgentReject(c *fiber.Ctx) error {
	return h.agentDecide(c, constants.DecisionReject)
}

func (h *BookingController) agentDecide(c *fiber.Ctx, decision string) error {
	actor, err := authhelper.PrincipalFromContext(c)
	if err != nil {
		return err
	}
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid booking ID")
	}
	b, err := h.Service.AgentDecision(c.UserContext(), actor, bookingID, decision)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Booking "+b.BookingStatus, dto.FromBookingModel(*b))
}

/* ======================= ADMIN ======================= */

// GET /api/admin/bookings
func (h *BookingController) ListAll(c *fiber.Ctx) error {
	list, err := h.Service.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.FromBookingDetails(list))
}

// PUT /api/admin/bookings/confirm/:id
func (h *BookingController) AdminConfirm(c *fiber.Ctx) error {
	return h.adminDecide(c, constants.DecisionConfirm)
}

// PUT /api/admin/bookings/cancel/:id
func (h *BookingController) AdminCancel(c *fiber.Ctx) error {
	return h.adminDecide(c, constants.DecisionCancel)
}

func (h *BookingController) adminDecide(c *fiber.Ctx, decision string) error {
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid booking ID")
	}
	b, err := h.Service.AdminDecision(c.UserContext(), bookingID, decision)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Booking "+b.BookingStatus, dto.FromBookingModel(*b))
}
