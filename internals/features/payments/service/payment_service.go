package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"tourstravels_backend/internals/constants"
	bookingmodel "tourstravels_backend/internals/features/bookings/model"
	model "tourstravels_backend/internals/features/payments/model"
	"tourstravels_backend/internals/features/payments/repository"
	usermodel "tourstravels_backend/internals/features/users/model"
	authhelper "tourstravels_backend/internals/helpers/auth"
	"tourstravels_backend/internals/helpers/errs"
	"tourstravels_backend/internals/helpers/sms"
)

// CustomerLookup resolves the paying customer; satisfied by the users
// repository.
type CustomerLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*usermodel.UserModel, error)
}

type PaymentService struct {
	payments repository.PaymentRepository
	users    CustomerLookup
	gateway  SnapGateway
	notifier sms.Notifier
}

func NewPaymentService(payments repository.PaymentRepository, users CustomerLookup, gateway SnapGateway, notifier sms.Notifier) *PaymentService {
	return &PaymentService{payments: payments, users: users, gateway: gateway, notifier: notifier}
}

/* ======================= PAY ======================= */

// Pay charges a booking exactly once. A repeat call returns the existing
// payment unchanged. Without a gateway the payment settles immediately
// and the booking auto-advances to CONFIRMED; with one, the payment
// stays PENDING holding a Snap token until confirmation.
func (s *PaymentService) Pay(ctx context.Context, actor authhelper.Principal, bookingID uuid.UUID) (*model.PaymentModel, error) {
	customer, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	var settled bool
	out, err := s.payments.Charge(ctx, bookingID, func(b *bookingmodel.BookingModel, existing *model.PaymentModel) (*model.PaymentModel, error) {
		if b.BookingUserID != actor.UserID {
			return nil, errs.Forbidden("You are not allowed to pay for this booking")
		}
		if existing != nil {
			return existing, nil
		}
		switch b.BookingStatus {
		case constants.BookingStatusAgentRejected,
			constants.BookingStatusCancelled,
			constants.BookingStatusCancelledByCustomer:
			return nil, errs.Conflict("Booking can no longer be paid")
		}

		p := &model.PaymentModel{
			PaymentBookingID: b.BookingID,
			PaymentAmount:    b.BookingAmount,
			PaymentOrderID:   fmt.Sprintf("TOUR-%s", b.BookingID),
		}
		if s.gateway == nil {
			now := time.Now()
			p.PaymentMode = constants.PaymentModeSimulated
			p.PaymentStatus = constants.PaymentStatusSuccess
			p.PaymentPaidAt = &now
			markPaid(b)
			settled = true
			return p, nil
		}

		token, err := s.gateway.SnapToken(p.PaymentOrderID, p.PaymentAmount, customer.UserName, customer.UserEmail)
		if err != nil {
			return nil, errs.Internal("failed to create gateway transaction", err)
		}
		p.PaymentMode = constants.PaymentModeMidtransSnap
		p.PaymentStatus = constants.PaymentStatusPending
		p.PaymentSnapToken = &token
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	if settled {
		log.Printf("💳 Payment %s settled for booking %s", out.PaymentID, bookingID)
		s.notify(customer, "Your payment was received and your booking is confirmed")
	}
	return out, nil
}

/* ======================= ADMIN ======================= */

// Confirm settles a PENDING payment and advances its booking.
func (s *PaymentService) Confirm(ctx context.Context, paymentID uuid.UUID) (*model.PaymentModel, error) {
	var customerID uuid.UUID
	out, err := s.payments.Mutate(ctx, paymentID, func(p *model.PaymentModel, b *bookingmodel.BookingModel) error {
		if p.PaymentStatus != constants.PaymentStatusPending {
			return errs.Conflict("Payment already processed")
		}
		now := time.Now()
		p.PaymentStatus = constants.PaymentStatusSuccess
		p.PaymentPaidAt = &now
		markPaid(b)
		customerID = b.BookingUserID
		return nil
	})
	if err != nil {
		return nil, err
	}
	if customer, err := s.users.FindByID(ctx, customerID); err == nil {
		s.notify(customer, "Your payment was received and your booking is confirmed")
	}
	return out, nil
}

// Refund reverses a settled payment. The booking keeps its status; only
// the payment side flips so a later admin decision can act on it.
func (s *PaymentService) Refund(ctx context.Context, paymentID uuid.UUID) (*model.PaymentModel, error) {
	return s.payments.Mutate(ctx, paymentID, func(p *model.PaymentModel, b *bookingmodel.BookingModel) error {
		if p.PaymentStatus != constants.PaymentStatusSuccess {
			return errs.Conflict("Only successful payments can be refunded")
		}
		p.PaymentStatus = constants.PaymentStatusRefunded
		b.BookingPaymentStatus = constants.PaymentStatusRefunded
		return nil
	})
}

// Stats aggregates payment counts per status plus settled revenue.
func (s *PaymentService) Stats(ctx context.Context) (map[string]int64, float64, int64, error) {
	rows, err := s.payments.StatsByStatus(ctx)
	if err != nil {
		return nil, 0, 0, err
	}
	byStatus := make(map[string]int64, len(rows))
	var total int64
	var revenue float64
	for _, row := range rows {
		byStatus[row.Status] = row.Count
		total += row.Count
		if row.Status == constants.PaymentStatusSuccess {
			revenue += row.Total
		}
	}
	return byStatus, revenue, total, nil
}

/* ======================= READS ======================= */

func (s *PaymentService) ListAll(ctx context.Context) ([]model.PaymentModel, error) {
	return s.payments.ListAll(ctx)
}

func (s *PaymentService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.PaymentModel, error) {
	return s.payments.ListByCustomer(ctx, customerID)
}

func (s *PaymentService) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*model.PaymentModel, error) {
	return s.payments.FindByBookingID(ctx, bookingID)
}

/* ======================= INTERNAL ======================= */

// markPaid flips the booking's payment side and auto-advances a booking
// still waiting on approval straight to CONFIRMED.
func markPaid(b *bookingmodel.BookingModel) {
	b.BookingPaymentStatus = constants.PaymentStatusSuccess
	if b.BookingStatus == constants.BookingStatusPending || b.BookingStatus == constants.BookingStatusAgentApproved {
		b.BookingStatus = constants.BookingStatusConfirmed
	}
}

func (s *PaymentService) notify(customer *usermodel.UserModel, message string) {
	if customer == nil || customer.UserPhone == "" {
		return
	}
	s.notifier.Send(customer.UserPhone, message)
}
