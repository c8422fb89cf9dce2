package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tourstravels_backend/internals/constants"
	model "tourstravels_backend/internals/features/users/model"
	"tourstravels_backend/internals/helpers/errs"
)

// UserRepository is the narrow store surface the auth service needs.
type UserRepository interface {
	Create(ctx context.Context, u *model.UserModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error)
	FindByEmail(ctx context.Context, email string) (*model.UserModel, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, u *model.UserModel) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]model.UserModel, error)
	ListAgents(ctx context.Context, approved *bool) ([]model.UserModel, error)
	Mutate(ctx context.Context, id uuid.UUID, fn func(u *model.UserModel) error) (*model.UserModel, error)
}

type gormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(ctx context.Context, u *model.UserModel) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return errs.Conflict("Email already registered")
		}
		return errs.Internal("failed to create user", err)
	}
	return nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("User")
		}
		return nil, errs.Internal("failed to load user", err)
	}
	return &u, nil
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.db.WithContext(ctx).Where("user_email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("User")
		}
		return nil, errs.Internal("failed to load user", err)
	}
	return &u, nil
}

func (r *gormUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("user_email = ?", email).
		Count(&count).Error; err != nil {
		return false, errs.Internal("failed to check email", err)
	}
	return count > 0, nil
}

func (r *gormUserRepository) Save(ctx context.Context, u *model.UserModel) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return errs.Internal("failed to save user", err)
	}
	return nil
}

func (r *gormUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", id).Delete(&model.UserModel{})
	if res.Error != nil {
		return errs.Internal("failed to delete user", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("User")
	}
	return nil
}

func (r *gormUserRepository) ListAll(ctx context.Context) ([]model.UserModel, error) {
	var list []model.UserModel
	if err := r.db.WithContext(ctx).
		Order("user_created_at ASC").
		Find(&list).Error; err != nil {
		return nil, errs.Internal("failed to list users", err)
	}
	return list, nil
}

func (r *gormUserRepository) ListAgents(ctx context.Context, approved *bool) ([]model.UserModel, error) {
	q := r.db.WithContext(ctx).
		Where("user_role = ?", constants.RoleAgent).
		Order("user_created_at ASC")
	if approved != nil {
		if *approved {
			q = q.Where("user_is_approved = TRUE")
		} else {
			q = q.Where("(user_is_approved IS NULL OR user_is_approved = FALSE)")
		}
	}
	var list []model.UserModel
	if err := q.Find(&list).Error; err != nil {
		return nil, errs.Internal("failed to list agents", err)
	}
	return list, nil
}

// Mutate applies fn to the row under a FOR UPDATE lock so two concurrent
// decisions cannot both observe the pre-transition state.
func (r *gormUserRepository) Mutate(ctx context.Context, id uuid.UUID, fn func(u *model.UserModel) error) (*model.UserModel, error) {
	var out *model.UserModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u model.UserModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", id).
			First(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound("User")
			}
			return errs.Internal("failed to load user", err)
		}
		if err := fn(&u); err != nil {
			return err
		}
		if err := tx.Save(&u).Error; err != nil {
			return errs.Internal("failed to save user", err)
		}
		out = &u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
