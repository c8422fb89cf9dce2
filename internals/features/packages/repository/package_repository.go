package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "tourstravels_backend/internals/features/packages/model"
	"tourstravels_backend/internals/helpers/errs"
)

type PackageRepository interface {
	Create(ctx context.Context, p *model.TravelPackageModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TravelPackageModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByStatus(ctx context.Context, status string) ([]model.TravelPackageModel, error)
	ListByAgent(ctx context.Context, agentID uuid.UUID) ([]model.TravelPackageModel, error)
	Mutate(ctx context.Context, id uuid.UUID, fn func(p *model.TravelPackageModel) error) (*model.TravelPackageModel, error)
}

type gormPackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &gormPackageRepository{db: db}
}

func (r *gormPackageRepository) Create(ctx context.Context, p *model.TravelPackageModel) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return errs.Internal("failed to create package", err)
	}
	return nil
}

func (r *gormPackageRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TravelPackageModel, error) {
	var p model.TravelPackageModel
	if err := r.db.WithContext(ctx).Where("package_id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Package")
		}
		return nil, errs.Internal("failed to load package", err)
	}
	return &p, nil
}

func (r *gormPackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("package_id = ?", id).Delete(&model.TravelPackageModel{})
	if res.Error != nil {
		return errs.Internal("failed to delete package", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("Package")
	}
	return nil
}

func (r *gormPackageRepository) ListByStatus(ctx context.Context, status string) ([]model.TravelPackageModel, error) {
	var list []model.TravelPackageModel
	if err := r.db.WithContext(ctx).
		Where("package_status = ?", status).
		Order("package_created_at ASC").
		Find(&list).Error; err != nil {
		return nil, errs.Internal("failed to list packages", err)
	}
	return list, nil
}

func (r *gormPackageRepository) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]model.TravelPackageModel, error) {
	var list []model.TravelPackageModel
	if err := r.db.WithContext(ctx).
		Where("package_agent_id = ?", agentID).
		Order("package_created_at ASC").
		Find(&list).Error; err != nil {
		return nil, errs.Internal("failed to list packages", err)
	}
	return list, nil
}

// Mutate runs fn against the row under FOR UPDATE so a decision and a
// concurrent edit cannot interleave.
func (r *gormPackageRepository) Mutate(ctx context.Context, id uuid.UUID, fn func(p *model.TravelPackageModel) error) (*model.TravelPackageModel, error) {
	var out *model.TravelPackageModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.TravelPackageModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("package_id = ?", id).
			First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound("Package")
			}
			return errs.Internal("failed to load package", err)
		}
		if err := fn(&p); err != nil {
			return err
		}
		if err := tx.Save(&p).Error; err != nil {
			return errs.Internal("failed to save package", err)
		}
		out = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
