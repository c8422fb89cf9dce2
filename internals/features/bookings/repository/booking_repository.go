package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "tourstravels_backend/internals/features/bookings/model"
	"tourstravels_backend/internals/helpers/errs"
)

const detailSelect = "bookings.*, u.user_name AS customer_name, p.package_title AS package_title, p.package_agent_id AS agent_id"

type BookingRepository interface {
	Create(ctx context.Context, b *model.BookingModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.BookingModel, error)
	ExistsByPackageID(ctx context.Context, packageID uuid.UUID) (bool, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.BookingDetail, error)
	ListByAgent(ctx context.Context, agentID uuid.UUID) ([]model.BookingDetail, error)
	ListAll(ctx context.Context) ([]model.BookingDetail, error)
	Mutate(ctx context.Context, id uuid.UUID, fn func(b *model.BookingModel) error) (*model.BookingModel, error)
}

type gormBookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &gormBookingRepository{db: db}
}

func (r *gormBookingRepository) Create(ctx context.Context, b *model.BookingModel) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return errs.Internal("failed to create booking", err)
	}
	return nil
}

func (r *gormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.BookingModel, error) {
	var b model.BookingModel
	if err := r.db.WithContext(ctx).Where("booking_id = ?", id).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Booking")
		}
		return nil, errs.Internal("failed to load booking", err)
	}
	return &b, nil
}

func (r *gormBookingRepository) ExistsByPackageID(ctx context.Context, packageID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.BookingModel{}).
		Where("booking_package_id = ?", packageID).
		Count(&count).Error; err != nil {
		return false, errs.Internal("failed to check bookings", err)
	}
	return count > 0, nil
}

func (r *gormBookingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.BookingDetail, error) {
	return r.listDetails(ctx, "bookings.booking_user_id = ?", customerID)
}

func (r *gormBookingRepository) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]model.BookingDetail, error) {
	return r.listDetails(ctx, "p.package_agent_id = ?", agentID)
}

func (r *gormBookingRepository) ListAll(ctx context.Context) ([]model.BookingDetail, error) {
	return r.listDetails(ctx, "", nil)
}

func (r *gormBookingRepository) listDetails(ctx context.Context, cond string, arg any) ([]model.BookingDetail, error) {
	q := r.db.WithContext(ctx).Model(&model.BookingModel{}).
		Select(detailSelect).
		Joins("JOIN users u ON u.user_id = bookings.booking_user_id").
		Joins("JOIN packages p ON p.package_id = bookings.booking_package_id").
		Order("bookings.booking_created_at ASC")
	if cond != "" {
		q = q.Where(cond, arg)
	}
	var list []model.BookingDetail
	if err := q.Scan(&list).Error; err != nil {
		return nil, errs.Internal("failed to list bookings", err)
	}
	return list, nil
}

// Mutate applies the state transition under FOR UPDATE so two decisions
// racing on the same booking serialize; the second one sees the
// post-transition status and fails its precondition.
func (r *gormBookingRepository) Mutate(ctx context.Context, id uuid.UUID, fn func(b *model.BookingModel) error) (*model.BookingModel, error) {
	var out *model.BookingModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b model.BookingModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_id = ?", id).
			First(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound("Booking")
			}
			return errs.Internal("failed to load booking", err)
		}
		if err := fn(&b); err != nil {
			return err
		}
		if err := tx.Save(&b).Error; err != nil {
			return errs.Internal("failed to save booking", err)
		}
		out = &b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
