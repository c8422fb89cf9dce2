package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"tourstravels_backend/internals/constants"
	dto "tourstravels_backend/internals/features/users/dto"
	model "tourstravels_backend/internals/features/users/model"
	"tourstravels_backend/internals/helpers/errs"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*model.UserModel
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*model.UserModel{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.UserModel) error {
	for _, existing := range r.users {
		if existing.UserEmail == u.UserEmail {
			return errs.Conflict("Email already registered")
		}
	}
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	cp := *u
	r.users[u.UserID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.UserModel, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errs.NotFound("User")
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.UserModel, error) {
	for _, u := range r.users {
		if u.UserEmail == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errs.NotFound("User")
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.UserEmail == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Save(_ context.Context, u *model.UserModel) error {
	cp := *u
	r.users[u.UserID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return errs.NotFound("User")
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) ListAll(_ context.Context) ([]model.UserModel, error) {
	var out []model.UserModel
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) ListAgents(_ context.Context, approved *bool) ([]model.UserModel, error) {
	var out []model.UserModel
	for _, u := range r.users {
		if u.UserRole != constants.RoleAgent {
			continue
		}
		if approved != nil && u.Approved() != *approved {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Mutate(ctx context.Context, id uuid.UUID, fn func(u *model.UserModel) error) (*model.UserModel, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errs.NotFound("User")
	}
	cp := *u
	if err := fn(&cp); err != nil {
		return nil, err
	}
	r.users[id] = &cp
	out := cp
	return &out, nil
}

func newTestAuthService() (*AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewAuthService(repo, "test-secret"), repo
}

func customerReq(email string) dto.RegisterCustomerRequest {
	return dto.RegisterCustomerRequest{
		Name:     "Jamie",
		Email:    email,
		Password: "secret123",
		Phone:    "+15550001",
	}
}

func agentReq(email string) dto.RegisterAgentRequest {
	return dto.RegisterAgentRequest{
		Name:          "Alex",
		Email:         email,
		Password:      "secret123",
		Phone:         "+15550002",
		CompanyName:   "Wander Co",
		LicenseNumber: "LIC-42",
	}
}

func TestRegisterCustomerDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.RegisterCustomer(ctx, customerReq("a@example.com")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.RegisterCustomer(ctx, customerReq("a@example.com"))
	if !errs.IsConflict(err) {
		t.Fatalf("want conflict on duplicate email, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	u, err := svc.RegisterCustomer(ctx, customerReq("login@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	resp, err := svc.Login(ctx, dto.LoginRequest{Email: "login@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token == "" || resp.Role != constants.RoleCustomer || resp.UserID != u.UserID {
		t.Fatalf("unexpected login response: %+v", resp)
	}

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "login@example.com", Password: "wrong"})
	if !errs.IsValidation(err) {
		t.Fatalf("want validation error on bad password, got %v", err)
	}
	_, err = svc.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	if !errs.IsValidation(err) {
		t.Fatalf("want validation error on unknown email, got %v", err)
	}
}

func TestPendingAgentCannotLoginUntilApproved(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	agent, err := svc.RegisterAgentPending(ctx, agentReq("agent@example.com"))
	if err != nil {
		t.Fatalf("register agent: %v", err)
	}

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "agent@example.com", Password: "secret123"})
	if !errs.IsForbidden(err) {
		t.Fatalf("want forbidden for pending agent, got %v", err)
	}

	if _, err := svc.ApproveAgent(ctx, agent.UserID, "Root Admin"); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := svc.Login(ctx, dto.LoginRequest{Email: "agent@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("approved agent login: %v", err)
	}
}

func TestApproveAgentOnlyOnce(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	agent, err := svc.RegisterAgentPending(ctx, agentReq("once@example.com"))
	if err != nil {
		t.Fatalf("register agent: %v", err)
	}

	approved, err := svc.ApproveAgent(ctx, agent.UserID, "Root Admin")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if !approved.Approved() || approved.UserApprovedBy == nil || *approved.UserApprovedBy != "Root Admin" {
		t.Fatalf("approval not recorded: %+v", approved)
	}

	_, err = svc.ApproveAgent(ctx, agent.UserID, "Root Admin")
	if !errs.IsConflict(err) {
		t.Fatalf("want conflict on second approval, got %v", err)
	}
}

func TestApproveAgentRejectsNonAgents(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	u, err := svc.RegisterCustomer(ctx, customerReq("cust@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err = svc.ApproveAgent(ctx, u.UserID, "Root Admin")
	if !errs.IsNotFound(err) {
		t.Fatalf("want not found for customer id, got %v", err)
	}
}

func TestRejectAgent(t *testing.T) {
	svc, repo := newTestAuthService()
	ctx := context.Background()

	pending, err := svc.RegisterAgentPending(ctx, agentReq("reject@example.com"))
	if err != nil {
		t.Fatalf("register agent: %v", err)
	}
	if err := svc.RejectAgent(ctx, pending.UserID); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if _, ok := repo.users[pending.UserID]; ok {
		t.Fatal("rejected registration should be removed")
	}

	// The freed email can register again.
	if _, err := svc.RegisterAgentPending(ctx, agentReq("reject@example.com")); err != nil {
		t.Fatalf("re-register after reject: %v", err)
	}
}

func TestRejectApprovedAgentConflicts(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	agent, err := svc.CreateAgent(ctx, agentReq("created@example.com"), "Root Admin")
	if err != nil {
		t.Fatalf("create agent: %v", err)
	}
	if !agent.Approved() {
		t.Fatal("admin-created agent should skip the approval queue")
	}
	err = svc.RejectAgent(ctx, agent.UserID)
	if !errs.IsConflict(err) {
		t.Fatalf("want conflict rejecting approved agent, got %v", err)
	}
}

func TestListAgentsSplitsByApproval(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	pending, _ := svc.RegisterAgentPending(ctx, agentReq("p@example.com"))
	approved, _ := svc.RegisterAgentPending(ctx, agentReq("q@example.com"))
	if _, err := svc.ApproveAgent(ctx, approved.UserID, ""); err != nil {
		t.Fatalf("approve: %v", err)
	}

	gotPending, err := svc.ListPendingAgents(ctx)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(gotPending) != 1 || gotPending[0].UserID != pending.UserID {
		t.Fatalf("pending list wrong: %+v", gotPending)
	}

	gotApproved, err := svc.ListApprovedAgents(ctx)
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if len(gotApproved) != 1 || gotApproved[0].UserID != approved.UserID {
		t.Fatalf("approved list wrong: %+v", gotApproved)
	}
}

func TestUpdateProfileIgnoresEmptyFields(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	u, err := svc.RegisterCustomer(ctx, customerReq("prof@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	name := "New Name"
	empty := ""
	got, err := svc.UpdateProfile(ctx, u.UserID, dto.UpdateProfileRequest{Name: &name, Phone: &empty})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.UserName != "New Name" {
		t.Fatalf("name not updated: %q", got.UserName)
	}
	if got.UserPhone != "+15550001" {
		t.Fatalf("empty phone should not overwrite, got %q", got.UserPhone)
	}
}
