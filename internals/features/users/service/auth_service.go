package service

import (
	"context"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tourstravels_backend/internals/constants"
	dto "tourstravels_backend/internals/features/users/dto"
	model "tourstravels_backend/internals/features/users/model"
	"tourstravels_backend/internals/features/users/repository"
	"tourstravels_backend/internals/helpers/errs"
)

const tokenTTL = 24 * time.Hour

type AuthService struct {
	users     repository.UserRepository
	jwtSecret []byte
}

func NewAuthService(users repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: []byte(jwtSecret)}
}

/* ======================= REGISTRATION ======================= */

// RegisterCustomer: public self-registration, active immediately.
func (s *AuthService) RegisterCustomer(ctx context.Context, req dto.RegisterCustomerRequest) (*model.UserModel, error) {
	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.Conflict("Email already registered. Please login or use a different email.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Internal("failed to hash password", err)
	}

	u := &model.UserModel{
		UserName:     req.Name,
		UserEmail:    req.Email,
		UserPassword: string(hash),
		UserPhone:    req.Phone,
		UserAddress:  req.Address,
		UserRole:     constants.RoleCustomer,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// RegisterAgentPending: public agent sign-up; stays pending until an
// admin approves it, and login is refused meanwhile.
func (s *AuthService) RegisterAgentPending(ctx context.Context, req dto.RegisterAgentRequest) (*model.UserModel, error) {
	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.Conflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Internal("failed to hash password", err)
	}

	pending := false
	u := &model.UserModel{
		UserName:          req.Name,
		UserEmail:         req.Email,
		UserPassword:      string(hash),
		UserPhone:         req.Phone,
		UserAddress:       req.Address,
		UserRole:          constants.RoleAgent,
		UserCompanyName:   &req.CompanyName,
		UserLicenseNumber: &req.LicenseNumber,
		UserIsApproved:    &pending,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// CreateAgent: admin-created agents skip the approval queue.
func (s *AuthService) CreateAgent(ctx context.Context, req dto.RegisterAgentRequest, adminName string) (*model.UserModel, error) {
	u, err := s.RegisterAgentPending(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.ApproveAgent(ctx, u.UserID, adminName)
}

/* ======================= LOGIN / LOGOUT ======================= */

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errs.IsNotFound(err) {
			return nil, errs.Validation("Invalid credentials")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(req.Password)) != nil {
		return nil, errs.Validation("Invalid credentials")
	}

	// Pending agents cannot authenticate for protected operations.
	if u.UserRole == constants.RoleAgent && !u.Approved() {
		return nil, errs.Forbidden("Your registration is pending admin approval")
	}

	token, err := s.generateToken(u)
	if err != nil {
		return nil, errs.Internal("failed to sign token", err)
	}

	log.Printf("✅ Login successful: %s (role=%s)", u.UserEmail, u.UserRole)
	return &dto.LoginResponse{Token: token, Role: u.UserRole, UserID: u.UserID}, nil
}

func (s *AuthService) generateToken(u *model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   u.UserID.String(),
		"role":      u.UserRole,
		"user_name": u.UserName,
		"exp":       time.Now().Add(tokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

/* ======================= AGENT APPROVAL ======================= */

// ApproveAgent flips a pending agent registration to approved. A second
// decision on an already-approved agent conflicts.
func (s *AuthService) ApproveAgent(ctx context.Context, agentID uuid.UUID, adminName string) (*model.UserModel, error) {
	if adminName == "" {
		adminName = "Admin User"
	}
	return s.users.Mutate(ctx, agentID, func(u *model.UserModel) error {
		if u.UserRole != constants.RoleAgent {
			return errs.NotFound("Agent")
		}
		if u.Approved() {
			return errs.Conflict("Agent already approved")
		}
		approved := true
		now := time.Now()
		u.UserIsApproved = &approved
		u.UserApprovalDate = &now
		u.UserApprovedBy = &adminName
		return nil
	})
}

// RejectAgent removes a pending registration so the email can register
// again later.
func (s *AuthService) RejectAgent(ctx context.Context, agentID uuid.UUID) error {
	u, err := s.users.FindByID(ctx, agentID)
	if err != nil {
		return err
	}
	if u.UserRole != constants.RoleAgent {
		return errs.NotFound("Agent")
	}
	if u.Approved() {
		return errs.Conflict("Cannot reject an approved agent")
	}
	return s.users.Delete(ctx, agentID)
}

/* ======================= LISTINGS / PROFILE ======================= */

func (s *AuthService) ListUsers(ctx context.Context) ([]model.UserModel, error) {
	return s.users.ListAll(ctx)
}

func (s *AuthService) ListAgents(ctx context.Context) ([]model.UserModel, error) {
	return s.users.ListAgents(ctx, nil)
}

func (s *AuthService) ListPendingAgents(ctx context.Context) ([]model.UserModel, error) {
	pending := false
	return s.users.ListAgents(ctx, &pending)
}

func (s *AuthService) ListApprovedAgents(ctx context.Context) ([]model.UserModel, error) {
	approved := true
	return s.users.ListAgents(ctx, &approved)
}

func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserModel, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest) (*model.UserModel, error) {
	return s.users.Mutate(ctx, userID, func(u *model.UserModel) error {
		if req.Name != nil && *req.Name != "" {
			u.UserName = *req.Name
		}
		if req.Phone != nil && *req.Phone != "" {
			u.UserPhone = *req.Phone
		}
		if req.Address != nil && *req.Address != "" {
			u.UserAddress = *req.Address
		}
		if req.ProfilePicURL != nil && *req.ProfilePicURL != "" {
			u.UserProfilePicURL = req.ProfilePicURL
		}
		return nil
	})
}
