package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"tourstravels_backend/internals/constants"
	dto "tourstravels_backend/internals/features/packages/dto"
	model "tourstravels_backend/internals/features/packages/model"
	"tourstravels_backend/internals/features/packages/repository"
	usermodel "tourstravels_backend/internals/features/users/model"
	authhelper "tourstravels_backend/internals/helpers/auth"
	"tourstravels_backend/internals/helpers/errs"
)

const maxPackageImages = 5

// AgentLookup resolves the owning agent; satisfied by the users repository.
type AgentLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*usermodel.UserModel, error)
}

// BookingChecker guards deletion; satisfied by the bookings repository.
type BookingChecker interface {
	ExistsByPackageID(ctx context.Context, packageID uuid.UUID) (bool, error)
}

type PackageService struct {
	packages repository.PackageRepository
	agents   AgentLookup
	bookings BookingChecker
}

func NewPackageService(packages repository.PackageRepository, agents AgentLookup, bookings BookingChecker) *PackageService {
	return &PackageService{packages: packages, agents: agents, bookings: bookings}
}

/* ======================= LIFECYCLE ======================= */

// Create: a new package always starts PENDING, owned by the creating agent.
func (s *PackageService) Create(ctx context.Context, actor authhelper.Principal, req dto.CreatePackageRequest) (*model.TravelPackageModel, error) {
	agent, err := s.agents.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if agent.UserRole != constants.RoleAgent {
		return nil, errs.NotFound("Agent")
	}

	p := &model.TravelPackageModel{
		PackageAgentID:       agent.UserID,
		PackageTitle:         req.Title,
		PackageDestination:   req.Destination,
		PackageDescription:   req.Description,
		PackagePrice:         req.Price,
		PackageDuration:      req.Duration,
		PackageTourStartTime: req.TourStartTime,
		PackageTourEndTime:   req.TourEndTime,
		PackageStatus:        constants.PackageStatusPending,
	}
	if err := s.packages.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update: any edit by the owning agent resets the package to PENDING,
// regardless of its previous status; re-approval is required.
func (s *PackageService) Update(ctx context.Context, actor authhelper.Principal, packageID uuid.UUID, req dto.UpdatePackageRequest) (*model.TravelPackageModel, error) {
	return s.packages.Mutate(ctx, packageID, func(p *model.TravelPackageModel) error {
		if p.PackageAgentID != actor.UserID {
			return errs.Forbidden("You are not allowed to edit this package")
		}
		if req.Title != nil {
			p.PackageTitle = *req.Title
		}
		if req.Destination != nil {
			p.PackageDestination = *req.Destination
		}
		if req.Description != nil {
			p.PackageDescription = *req.Description
		}
		if req.Price != nil {
			p.PackagePrice = *req.Price
		}
		if req.Duration != nil {
			p.PackageDuration = *req.Duration
		}
		if req.TourStartTime != nil {
			p.PackageTourStartTime = req.TourStartTime
		}
		if req.TourEndTime != nil {
			p.PackageTourEndTime = req.TourEndTime
		}
		p.PackageStatus = constants.PackageStatusPending
		return nil
	})
}

// Decide: admin approves or rejects a PENDING package exactly once.
func (s *PackageService) Decide(ctx context.Context, packageID uuid.UUID, decision string) (*model.TravelPackageModel, error) {
	return s.packages.Mutate(ctx, packageID, func(p *model.TravelPackageModel) error {
		if p.PackageStatus != constants.PackageStatusPending {
			return errs.Conflict("Package already reviewed")
		}
		switch decision {
		case constants.DecisionApprove:
			p.PackageStatus = constants.PackageStatusApproved
		case constants.DecisionReject:
			p.PackageStatus = constants.PackageStatusRejected
		default:
			return errs.Validation("Invalid decision")
		}
		log.Printf("📦 Package %s → %s", p.PackageID, p.PackageStatus)
		return nil
	})
}

// Delete: owner-only (admins may also delete), blocked while any booking
// references the package.
func (s *PackageService) Delete(ctx context.Context, actor authhelper.Principal, packageID uuid.UUID) error {
	p, err := s.packages.FindByID(ctx, packageID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && p.PackageAgentID != actor.UserID {
		return errs.Forbidden("You are not allowed to delete this package")
	}

	hasBookings, err := s.bookings.ExistsByPackageID(ctx, packageID)
	if err != nil {
		return err
	}
	if hasBookings {
		return errs.Conflict("Cannot delete package with existing bookings")
	}
	return s.packages.Delete(ctx, packageID)
}

/* ======================= IMAGES ======================= */

// AttachImageURLs appends stored image URLs; a package holds at most 5.
func (s *PackageService) AttachImageURLs(ctx context.Context, actor authhelper.Principal, packageID uuid.UUID, urls []string) (*model.TravelPackageModel, error) {
	if len(urls) == 0 {
		return nil, errs.Validation("At least one image URL is required")
	}
	if len(urls) > maxPackageImages {
		return nil, errs.Validation("max 5 images")
	}
	return s.packages.Mutate(ctx, packageID, func(p *model.TravelPackageModel) error {
		if p.PackageAgentID != actor.UserID {
			return errs.Forbidden("You are not allowed to modify this package")
		}
		if len(p.PackageImageURLs)+len(urls) > maxPackageImages {
			return errs.Validation("max 5 images")
		}
		p.PackageImageURLs = append(p.PackageImageURLs, urls...)
		return nil
	})
}

/* ======================= READS ======================= */

func (s *PackageService) ListApproved(ctx context.Context) ([]model.TravelPackageModel, error) {
	return s.packages.ListByStatus(ctx, constants.PackageStatusApproved)
}

func (s *PackageService) ListPending(ctx context.Context) ([]model.TravelPackageModel, error) {
	return s.packages.ListByStatus(ctx, constants.PackageStatusPending)
}

func (s *PackageService) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]model.TravelPackageModel, error) {
	return s.packages.ListByAgent(ctx, agentID)
}

func (s *PackageService) GetByID(ctx context.Context, packageID uuid.UUID) (*model.TravelPackageModel, error) {
	return s.packages.FindByID(ctx, packageID)
}
