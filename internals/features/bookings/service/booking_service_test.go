package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"tourstravels_backend/internals/constants"
	model "tourstravels_backend/internals/features/bookings/model"
	packagemodel "tourstravels_backend/internals/features/packages/model"
	usermodel "tourstravels_backend/internals/features/users/model"
	authhelper "tourstravels_backend/internals/helpers/auth"
	"tourstravels_backend/internals/helpers/errs"
)

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*model.BookingModel
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[uuid.UUID]*model.BookingModel{}}
}

func (r *fakeBookingRepo) Create(_ context.Context, b *model.BookingModel) error {
	if b.BookingID == uuid.Nil {
		b.BookingID = uuid.New()
	}
	cp := *b
	r.bookings[b.BookingID] = &cp
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*model.BookingModel, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, errs.NotFound("Booking")
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) ExistsByPackageID(_ context.Context, packageID uuid.UUID) (bool, error) {
	for _, b := range r.bookings {
		if b.BookingPackageID == packageID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]model.BookingDetail, error) {
	var out []model.BookingDetail
	for _, b := range r.bookings {
		if b.BookingUserID == customerID {
			out = append(out, model.BookingDetail{BookingModel: *b})
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByAgent(_ context.Context, _ uuid.UUID) ([]model.BookingDetail, error) {
	return nil, nil
}

func (r *fakeBookingRepo) ListAll(_ context.Context) ([]model.BookingDetail, error) {
	var out []model.BookingDetail
	for _, b := range r.bookings {
		out = append(out, model.BookingDetail{BookingModel: *b})
	}
	return out, nil
}

func (r *fakeBookingRepo) Mutate(_ context.Context, id uuid.UUID, fn func(b *model.BookingModel) error) (*model.BookingModel, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, errs.NotFound("Booking")
	}
	cp := *b
	if err := fn(&cp); err != nil {
		return nil, err
	}
	r.bookings[id] = &cp
	out := cp
	return &out, nil
}

type fakePackageLookup struct {
	packages map[uuid.UUID]*packagemodel.TravelPackageModel
}

func (l *fakePackageLookup) FindByID(_ context.Context, id uuid.UUID) (*packagemodel.TravelPackageModel, error) {
	p, ok := l.packages[id]
	if !ok {
		return nil, errs.NotFound("Package")
	}
	return p, nil
}

type fakeCustomerLookup struct {
	users map[uuid.UUID]*usermodel.UserModel
}

func (l *fakeCustomerLookup) FindByID(_ context.Context, id uuid.UUID) (*usermodel.UserModel, error) {
	u, ok := l.users[id]
	if !ok {
		return nil, errs.NotFound("User")
	}
	return u, nil
}

type recordingNotifier struct {
	sent []string
}

func (n *recordingNotifier) Send(_, message string) {
	n.sent = append(n.sent, message)
}

type bookingFixture struct {
	svc      *BookingService
	repo     *fakeBookingRepo
	packages *fakePackageLookup
	notifier *recordingNotifier
	agent    authhelper.Principal
	customer authhelper.Principal
	pkg      *packagemodel.TravelPackageModel
}

func newBookingFixture() *bookingFixture {
	agentID := uuid.New()
	customerID := uuid.New()
	pkg := &packagemodel.TravelPackageModel{
		PackageID:      uuid.New(),
		PackageAgentID: agentID,
		PackageTitle:   "Bali Getaway",
		PackagePrice:   1200,
		PackageStatus:  constants.PackageStatusApproved,
	}
	repo := newFakeBookingRepo()
	packages := &fakePackageLookup{packages: map[uuid.UUID]*packagemodel.TravelPackageModel{pkg.PackageID: pkg}}
	users := &fakeCustomerLookup{users: map[uuid.UUID]*usermodel.UserModel{
		customerID: {UserID: customerID, UserName: "Jamie", UserPhone: "+15550001", UserRole: constants.RoleCustomer},
	}}
	notifier := &recordingNotifier{}
	return &bookingFixture{
		svc:      NewBookingService(repo, packages, users, notifier),
		repo:     repo,
		packages: packages,
		notifier: notifier,
		agent:    authhelper.Principal{UserID: agentID, Role: constants.RoleAgent},
		customer: authhelper.Principal{UserID: customerID, Role: constants.RoleCustomer},
		pkg:      pkg,
	}
}

func (f *bookingFixture) createInput() CreateBookingInput {
	return CreateBookingInput{
		PackageID:     f.pkg.PackageID,
		TouristsCount: 2,
		TourStartDate: time.Now().AddDate(0, 0, 7),
	}
}

func TestCreateBooking(t *testing.T) {
	f := newBookingFixture()
	b, err := f.svc.Create(context.Background(), f.customer, f.createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.BookingStatus != constants.BookingStatusPending {
		t.Fatalf("new booking should be PENDING, got %s", b.BookingStatus)
	}
	if b.BookingPaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("payment side should be PENDING, got %s", b.BookingPaymentStatus)
	}
	if b.BookingAmount != f.pkg.PackagePrice {
		t.Fatalf("amount should snapshot the package price, got %v", b.BookingAmount)
	}
}

func TestCreateBookingAmountSurvivesPriceEdit(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	b, err := f.svc.Create(ctx, f.customer, f.createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	f.pkg.PackagePrice = 9999
	got, err := f.svc.GetByID(ctx, b.BookingID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.BookingAmount != 1200 {
		t.Fatalf("amount must not track price edits, got %v", got.BookingAmount)
	}
}

func TestCreateBookingRequiresApprovedPackage(t *testing.T) {
	f := newBookingFixture()
	f.pkg.PackageStatus = constants.PackageStatusPending
	_, err := f.svc.Create(context.Background(), f.customer, f.createInput())
	if !errs.IsConflict(err) {
		t.Fatalf("want conflict for unapproved package, got %v", err)
	}
}

func TestCreateBookingDateValidation(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	in := f.createInput()
	in.TourStartDate = time.Time{}
	if _, err := f.svc.Create(ctx, f.customer, in); !errs.IsValidation(err) {
		t.Fatalf("want validation for missing date, got %v", err)
	}

	in = f.createInput()
	in.TourStartDate = time.Now().AddDate(0, 0, -1)
	if _, err := f.svc.Create(ctx, f.customer, in); !errs.IsValidation(err) {
		t.Fatalf("want validation for past date, got %v", err)
	}
}

func TestCreateBookingWindow(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	start := time.Now().AddDate(0, 0, 10)
	end := time.Now().AddDate(0, 0, 20)
	f.pkg.PackageTourStartTime = &start
	f.pkg.PackageTourEndTime = &end

	in := f.createInput()
	in.TourStartDate = time.Now().AddDate(0, 0, 5)
	if _, err := f.svc.Create(ctx, f.customer, in); !errs.IsValidation(err) {
		t.Fatalf("want validation outside window, got %v", err)
	}

	in.TourStartDate = time.Now().AddDate(0, 0, 15)
	if _, err := f.svc.Create(ctx, f.customer, in); err != nil {
		t.Fatalf("inside window should pass: %v", err)
	}
}

func TestAgentDecision(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	b, _ := f.svc.Create(ctx, f.customer, f.createInput())

	stranger := authhelper.Principal{UserID: uuid.New(), Role: constants.RoleAgent}
	if _, err := f.svc.AgentDecision(ctx, stranger, b.BookingID, constants.DecisionApprove); !errs.IsForbidden(err) {
		t.Fatalf("want forbidden for non-owning agent, got %v", err)
	}

	got, err := f.svc.AgentDecision(ctx, f.agent, b.BookingID, constants.DecisionApprove)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if got.BookingStatus != constants.BookingStatusAgentApproved {
		t.Fatalf("got %s", got.BookingStatus)
	}
	if len(f.notifier.sent) != 1 {
		t.Fatalf("customer should be notified once, got %d", len(f.notifier.sent))
	}

	if _, err := f.svc.AgentDecision(ctx, f.agent, b.BookingID, constants.DecisionReject); !errs.IsConflict(err) {
		t.Fatalf("want conflict on second decision, got %v", err)
	}
}

func TestAdminConfirmRequiresPayment(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	b, _ := f.svc.Create(ctx, f.customer, f.createInput())

	_, err := f.svc.AdminDecision(ctx, b.BookingID, constants.DecisionConfirm)
	if !errs.IsConflict(err) {
		t.Fatalf("want conflict without payment, got %v", err)
	}

	f.repo.bookings[b.BookingID].BookingPaymentStatus = constants.PaymentStatusSuccess
	got, err := f.svc.AdminDecision(ctx, b.BookingID, constants.DecisionConfirm)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if got.BookingStatus != constants.BookingStatusConfirmed {
		t.Fatalf("got %s", got.BookingStatus)
	}
}

func TestAdminCancelIsAlwaysAllowed(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	b, _ := f.svc.Create(ctx, f.customer, f.createInput())

	got, err := f.svc.AdminDecision(ctx, b.BookingID, constants.DecisionCancel)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got.BookingStatus != constants.BookingStatusCancelled {
		t.Fatalf("got %s", got.BookingStatus)
	}
}

func TestCancelByCustomer(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	b, _ := f.svc.Create(ctx, f.customer, f.createInput())

	stranger := authhelper.Principal{UserID: uuid.New(), Role: constants.RoleCustomer}
	if _, err := f.svc.CancelByCustomer(ctx, stranger, b.BookingID); !errs.IsForbidden(err) {
		t.Fatalf("want forbidden for non-owner, got %v", err)
	}

	got, err := f.svc.CancelByCustomer(ctx, f.customer, b.BookingID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got.BookingStatus != constants.BookingStatusCancelledByCustomer {
		t.Fatalf("got %s", got.BookingStatus)
	}

	if _, err := f.svc.CancelByCustomer(ctx, f.customer, b.BookingID); !errs.IsConflict(err) {
		t.Fatalf("want conflict cancelling twice, got %v", err)
	}
}

func TestCancelByCustomerBlockedAfterPayment(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	b, _ := f.svc.Create(ctx, f.customer, f.createInput())

	f.repo.bookings[b.BookingID].BookingPaymentStatus = constants.PaymentStatusSuccess
	_, err := f.svc.CancelByCustomer(ctx, f.customer, b.BookingID)
	if !errs.IsConflict(err) {
		t.Fatalf("want conflict after payment, got %v", err)
	}
}
