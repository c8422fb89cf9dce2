package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"tourstravels_backend/internals/constants"
	model "tourstravels_backend/internals/features/bookings/model"
	"tourstravels_backend/internals/features/bookings/repository"
	packagemodel "tourstravels_backend/internals/features/packages/model"
	usermodel "tourstravels_backend/internals/features/users/model"
	authhelper "tourstravels_backend/internals/helpers/auth"
	"tourstravels_backend/internals/helpers/errs"
	"tourstravels_backend/internals/helpers/sms"
)

// PackageLookup resolves the booked package; satisfied by the packages
// repository.
type PackageLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*packagemodel.TravelPackageModel, error)
}

// CustomerLookup resolves the booking owner for notifications; satisfied
// by the users repository.
type CustomerLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*usermodel.UserModel, error)
}

type CreateBookingInput struct {
	PackageID     uuid.UUID
	TouristsCount int
	TourStartDate time.Time
}

type BookingService struct {
	bookings repository.BookingRepository
	packages PackageLookup
	users    CustomerLookup
	notifier sms.Notifier
}

func NewBookingService(bookings repository.BookingRepository, packages PackageLookup, users CustomerLookup, notifier sms.Notifier) *BookingService {
	return &BookingService{bookings: bookings, packages: packages, users: users, notifier: notifier}
}

/* ======================= CREATE ======================= */

// Create books an APPROVED package for the acting customer. The amount is
// snapshotted from the package price so later price edits never change
// what the customer owes.
func (s *BookingService) Create(ctx context.Context, actor authhelper.Principal, in CreateBookingInput) (*model.BookingModel, error) {
	pkg, err := s.packages.FindByID(ctx, in.PackageID)
	if err != nil {
		return nil, err
	}
	if pkg.PackageStatus != constants.PackageStatusApproved {
		return nil, errs.Conflict("Package not approved")
	}

	start := dateOnly(in.TourStartDate)
	if start.IsZero() {
		return nil, errs.Validation("Tour start date is required")
	}
	if start.Before(dateOnly(time.Now())) {
		return nil, errs.Validation("Tour start date cannot be in the past")
	}
	if pkg.HasWindow() {
		if start.Before(dateOnly(*pkg.PackageTourStartTime)) || start.After(dateOnly(*pkg.PackageTourEndTime)) {
			return nil, errs.Validation("Selected date is outside the tour schedule")
		}
	}

	b := &model.BookingModel{
		BookingUserID:        actor.UserID,
		BookingPackageID:     pkg.PackageID,
		BookingTouristsCount: in.TouristsCount,
		BookingAmount:        pkg.PackagePrice,
		BookingDate:          dateOnly(time.Now()),
		BookingTourStartDate: start,
		BookingStatus:        constants.BookingStatusPending,
		BookingPaymentStatus: constants.PaymentStatusPending,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	log.Printf("🧳 Booking %s created for package %s", b.BookingID, pkg.PackageID)
	return b, nil
}

/* ======================= DECISIONS ======================= */

// AgentDecision: only the agent owning the booked package may approve or
// reject, and only while the booking is still PENDING.
func (s *BookingService) AgentDecision(ctx context.Context, actor authhelper.Principal, bookingID uuid.UUID, decision string) (*model.BookingModel, error) {
	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	pkg, err := s.packages.FindByID(ctx, b.BookingPackageID)
	if err != nil {
		return nil, err
	}
	if pkg.PackageAgentID != actor.UserID {
		return nil, errs.Forbidden("You are not allowed to decide on this booking")
	}

	out, err := s.bookings.Mutate(ctx, bookingID, func(b *model.BookingModel) error {
		if b.BookingStatus != constants.BookingStatusPending {
			return errs.Conflict("Booking already reviewed")
		}
		switch decision {
		case constants.DecisionApprove:
			b.BookingStatus = constants.BookingStatusAgentApproved
		case constants.DecisionReject:
			b.BookingStatus = constants.BookingStatusAgentRejected
		default:
			return errs.Validation("Invalid decision")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notifyCustomer(ctx, out, pkg.PackageTitle)
	return out, nil
}

// AdminDecision: CONFIRM is gated on a completed payment; CANCEL is an
// admin override and is always allowed.
func (s *BookingService) AdminDecision(ctx context.Context, bookingID uuid.UUID, decision string) (*model.BookingModel, error) {
	out, err := s.bookings.Mutate(ctx, bookingID, func(b *model.BookingModel) error {
		switch decision {
		case constants.DecisionConfirm:
			if b.BookingPaymentStatus != constants.PaymentStatusSuccess {
				return errs.Conflict("Payment must be completed before confirming booking")
			}
			b.BookingStatus = constants.BookingStatusConfirmed
		case constants.DecisionCancel:
			b.BookingStatus = constants.BookingStatusCancelled
		default:
			return errs.Validation("Invalid decision")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notifyCustomer(ctx, out, "")
	return out, nil
}

// CancelByCustomer: the owner may cancel any booking that has not been
// paid and has not already reached a terminal status.
func (s *BookingService) CancelByCustomer(ctx context.Context, actor authhelper.Principal, bookingID uuid.UUID) (*model.BookingModel, error) {
	return s.bookings.Mutate(ctx, bookingID, func(b *model.BookingModel) error {
		if b.BookingUserID != actor.UserID {
			return errs.Forbidden("You are not allowed to cancel this booking")
		}
		if b.BookingPaymentStatus == constants.PaymentStatusSuccess {
			return errs.Conflict("Cannot cancel booking after payment")
		}
		if constants.BookingStatusTerminal(b.BookingStatus) {
			if strings.Contains(b.BookingStatus, "CANCELLED") {
				return errs.Conflict("Booking already cancelled")
			}
			return errs.Conflict("Booking can no longer be cancelled")
		}
		b.BookingStatus = constants.BookingStatusCancelledByCustomer
		return nil
	})
}

/* ======================= READS ======================= */

func (s *BookingService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.BookingDetail, error) {
	return s.bookings.ListByCustomer(ctx, customerID)
}

func (s *BookingService) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]model.BookingDetail, error) {
	return s.bookings.ListByAgent(ctx, agentID)
}

func (s *BookingService) ListAll(ctx context.Context) ([]model.BookingDetail, error) {
	return s.bookings.ListAll(ctx)
}

func (s *BookingService) GetByID(ctx context.Context, bookingID uuid.UUID) (*model.BookingModel, error) {
	return s.bookings.FindByID(ctx, bookingID)
}

/* ======================= NOTIFICATIONS ======================= */

func (s *BookingService) notifyCustomer(ctx context.Context, b *model.BookingModel, title string) {
	customer, err := s.users.FindByID(ctx, b.BookingUserID)
	if err != nil || customer.UserPhone == "" {
		return
	}
	if title == "" {
		title = "your tour"
	}
	s.notifier.Send(customer.UserPhone, fmt.Sprintf("Your booking for %s is now %s", title, b.BookingStatus))
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
