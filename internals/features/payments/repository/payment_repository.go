package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bookingmodel "tourstravels_backend/internals/features/bookings/model"
	model "tourstravels_backend/internals/features/payments/model"
	"tourstravels_backend/internals/helpers/errs"
)

// StatusCount is one row of the admin stats aggregation.
type StatusCount struct {
	Status string  `gorm:"column:payment_status"`
	Count  int64   `gorm:"column:cnt"`
	Total  float64 `gorm:"column:total"`
}

type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.PaymentModel, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*model.PaymentModel, error)
	ListAll(ctx context.Context) ([]model.PaymentModel, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.PaymentModel, error)
	StatsByStatus(ctx context.Context) ([]StatusCount, error)

	// Charge runs fn with the booking locked FOR UPDATE plus whatever
	// payment already exists for it (nil when none). fn returns the
	// payment that should end up stored; both rows are saved.
	Charge(ctx context.Context, bookingID uuid.UUID, fn func(b *bookingmodel.BookingModel, existing *model.PaymentModel) (*model.PaymentModel, error)) (*model.PaymentModel, error)

	// Mutate locks the payment and its booking together so confirm and
	// refund keep the two rows consistent.
	Mutate(ctx context.Context, id uuid.UUID, fn func(p *model.PaymentModel, b *bookingmodel.BookingModel) error) (*model.PaymentModel, error)
}

type gormPaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &gormPaymentRepository{db: db}
}

func (r *gormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.PaymentModel, error) {
	var p model.PaymentModel
	if err := r.db.WithContext(ctx).Where("payment_id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Payment")
		}
		return nil, errs.Internal("failed to load payment", err)
	}
	return &p, nil
}

func (r *gormPaymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*model.PaymentModel, error) {
	var p model.PaymentModel
	if err := r.db.WithContext(ctx).Where("payment_booking_id = ?", bookingID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Payment")
		}
		return nil, errs.Internal("failed to load payment", err)
	}
	return &p, nil
}

func (r *gormPaymentRepository) ListAll(ctx context.Context) ([]model.PaymentModel, error) {
	var list []model.PaymentModel
	if err := r.db.WithContext(ctx).
		Order("payment_created_at ASC").
		Find(&list).Error; err != nil {
		return nil, errs.Internal("failed to list payments", err)
	}
	return list, nil
}

func (r *gormPaymentRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.PaymentModel, error) {
	var list []model.PaymentModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN bookings b ON b.booking_id = payments.payment_booking_id").
		Where("b.booking_user_id = ?", customerID).
		Order("payments.payment_created_at ASC").
		Find(&list).Error; err != nil {
		return nil, errs.Internal("failed to list payments", err)
	}
	return list, nil
}

func (r *gormPaymentRepository) StatsByStatus(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	if err := r.db.WithContext(ctx).Model(&model.PaymentModel{}).
		Select("payment_status, COUNT(*) AS cnt, COALESCE(SUM(payment_amount), 0) AS total").
		Group("payment_status").
		Scan(&rows).Error; err != nil {
		return nil, errs.Internal("failed to aggregate payments", err)
	}
	return rows, nil
}

func (r *gormPaymentRepository) Charge(ctx context.Context, bookingID uuid.UUID, fn func(b *bookingmodel.BookingModel, existing *model.PaymentModel) (*model.PaymentModel, error)) (*model.PaymentModel, error) {
	var out *model.PaymentModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b bookingmodel.BookingModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_id = ?", bookingID).
			First(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound("Booking")
			}
			return errs.Internal("failed to load booking", err)
		}

		// The booking lock serializes concurrent charges, so at most one
		// caller sees existing == nil.
		var existing *model.PaymentModel
		var found model.PaymentModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("payment_booking_id = ?", bookingID).
			First(&found).Error
		switch {
		case err == nil:
			existing = &found
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return errs.Internal("failed to load payment", err)
		}

		p, err := fn(&b, existing)
		if err != nil {
			return err
		}
		if err := tx.Save(&b).Error; err != nil {
			return errs.Internal("failed to save booking", err)
		}
		if err := tx.Save(p).Error; err != nil {
			return errs.Internal("failed to save payment", err)
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gormPaymentRepository) Mutate(ctx context.Context, id uuid.UUID, fn func(p *model.PaymentModel, b *bookingmodel.BookingModel) error) (*model.PaymentModel, error) {
	var out *model.PaymentModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.PaymentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("payment_id = ?", id).
			First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound("Payment")
			}
			return errs.Internal("failed to load payment", err)
		}
		var b bookingmodel.BookingModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_id = ?", p.PaymentBookingID).
			First(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound("Booking")
			}
			return errs.Internal("failed to load booking", err)
		}
		if err := fn(&p, &b); err != nil {
			return err
		}
		if err := tx.Save(&b).Error; err != nil {
			return errs.Internal("failed to save booking", err)
		}
		if err := tx.Save(&p).Error; err != nil {
			return errs.Internal("failed to save payment", err)
		}
		out = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
