package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "tourstravels_backend/internals/features/payments/dto"
	"tourstravels_backend/internals/features/payments/service"
	helper "tourstravels_backend/internals/helpers"
	authhelper "tourstravels_backend/internals/helpers/auth"
)

type PaymentController struct {
	Service *service.PaymentService
}

func NewPaymentController(svc *service.PaymentService) *PaymentController {
	return &PaymentController{Service: svc}
}

/* ======================= CUSTOMER ======================= */

// POST /api/customer/payments/pay/:bookingId — idempotent, paying twice
// returns the first payment.
func (h *PaymentController) Pay(c *fiber.Ctx) error {
	actor, err := authhelper.PrincipalFromContext(c)
	if err != nil {
		return err
	}
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid booking ID")
	}
	p, err := h.Service.Pay(c.UserContext(), actor, bookingID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Payment "+p.PaymentStatus, dto.FromPaymentModel(*p))
}

// GET /api/customer/payments
func (h *PaymentController) MyPayments(c *fiber.Ctx) error {
	actor, err := authhelper.PrincipalFromContext(c)
	if err != nil {
		return err
	}
	list, err := h.Service.ListByCustomer(c.UserContext(), actor.UserID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.FromPaymentModels(list))
}

/* ======================= ADMIN ======================= */

// GET /api/admin/payments
func (h *PaymentController) ListAll(c *fiber.Ctx) error {
	list, err := h.Service.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.FromPaymentModels(list))
}

// PUT /api/admin/payments/confirm/:id
func (h *PaymentController) Confirm(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment ID")
	}
	p, err := h.Service.Confirm(c.UserContext(), paymentID)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Payment confirmed", dto.FromPaymentModel(*p))
}

// PUT /api/admin/payments/refund/:id
func (h *PaymentController) Refund(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment ID")
	}
	p, err := h.Service.Refund(c.UserContext(), paymentID)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Payment refunded", dto.FromPaymentModel(*p))
}

// GET /api/admin/payments/stats
func (h *PaymentController) Stats(c *fiber.Ctx) error {
	byStatus, revenue, total, err := h.Service.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.PaymentStatsResponse{
		TotalPayments: total,
		ByStatus:      byStatus,
		TotalRevenue:  revenue,
	})
}
