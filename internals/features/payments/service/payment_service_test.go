package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"tourstravels_backend/internals/constants"
	bookingmodel "tourstravels_backend/internals/features/bookings/model"
	model "tourstravels_backend/internals/features/payments/model"
	"tourstravels_backend/internals/features/payments/repository"
	usermodel "tourstravels_backend/internals/features/users/model"
	authhelper "tourstravels_backend/internals/helpers/auth"
	"tourstravels_backend/internals/helpers/errs"
)

type fakePaymentRepo struct {
	bookings map[uuid.UUID]*bookingmodel.BookingModel
	payments map[uuid.UUID]*model.PaymentModel
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		bookings: map[uuid.UUID]*bookingmodel.BookingModel{},
		payments: map[uuid.UUID]*model.PaymentModel{},
	}
}

func (r *fakePaymentRepo) byBooking(bookingID uuid.UUID) *model.PaymentModel {
	for _, p := range r.payments {
		if p.PaymentBookingID == bookingID {
			return p
		}
	}
	return nil
}

func (r *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*model.PaymentModel, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, errs.NotFound("Payment")
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*model.PaymentModel, error) {
	if p := r.byBooking(bookingID); p != nil {
		cp := *p
		return &cp, nil
	}
	return nil, errs.NotFound("Payment")
}

func (r *fakePaymentRepo) ListAll(_ context.Context) ([]model.PaymentModel, error) {
	var out []model.PaymentModel
	for _, p := range r.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePaymentRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]model.PaymentModel, error) {
	var out []model.PaymentModel
	for _, p := range r.payments {
		if b, ok := r.bookings[p.PaymentBookingID]; ok && b.BookingUserID == customerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) StatsByStatus(_ context.Context) ([]repository.StatusCount, error) {
	agg := map[string]*repository.StatusCount{}
	for _, p := range r.payments {
		row, ok := agg[p.PaymentStatus]
		if !ok {
			row = &repository.StatusCount{Status: p.PaymentStatus}
			agg[p.PaymentStatus] = row
		}
		row.Count++
		row.Total += p.PaymentAmount
	}
	var out []repository.StatusCount
	for _, row := range agg {
		out = append(out, *row)
	}
	return out, nil
}

func (r *fakePaymentRepo) Charge(_ context.Context, bookingID uuid.UUID, fn func(b *bookingmodel.BookingModel, existing *model.PaymentModel) (*model.PaymentModel, error)) (*model.PaymentModel, error) {
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, errs.NotFound("Booking")
	}
	bcp := *b
	var existing *model.PaymentModel
	if found := r.byBooking(bookingID); found != nil {
		cp := *found
		existing = &cp
	}
	p, err := fn(&bcp, existing)
	if err != nil {
		return nil, err
	}
	if p.PaymentID == uuid.Nil {
		p.PaymentID = uuid.New()
	}
	r.bookings[bookingID] = &bcp
	pcp := *p
	r.payments[p.PaymentID] = &pcp
	out := pcp
	return &out, nil
}

func (r *fakePaymentRepo) Mutate(_ context.Context, id uuid.UUID, fn func(p *model.PaymentModel, b *bookingmodel.BookingModel) error) (*model.PaymentModel, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, errs.NotFound("Payment")
	}
	b, ok := r.bookings[p.PaymentBookingID]
	if !ok {
		return nil, errs.NotFound("Booking")
	}
	pcp := *p
	bcp := *b
	if err := fn(&pcp, &bcp); err != nil {
		return nil, err
	}
	r.payments[id] = &pcp
	r.bookings[p.PaymentBookingID] = &bcp
	out := pcp
	return &out, nil
}

type fakeUserLookup struct {
	users map[uuid.UUID]*usermodel.UserModel
}

func (l *fakeUserLookup) FindByID(_ context.Context, id uuid.UUID) (*usermodel.UserModel, error) {
	u, ok := l.users[id]
	if !ok {
		return nil, errs.NotFound("User")
	}
	return u, nil
}

type fakeGateway struct {
	calls int
}

func (g *fakeGateway) SnapToken(orderID string, _ float64, _, _ string) (string, error) {
	g.calls++
	return "snap-" + orderID, nil
}

type silentNotifier struct{}

func (silentNotifier) Send(_, _ string) {}

type paymentFixture struct {
	repo     *fakePaymentRepo
	customer authhelper.Principal
	booking  *bookingmodel.BookingModel
}

func newPaymentFixture() *paymentFixture {
	customerID := uuid.New()
	booking := &bookingmodel.BookingModel{
		BookingID:            uuid.New(),
		BookingUserID:        customerID,
		BookingPackageID:     uuid.New(),
		BookingTouristsCount: 2,
		BookingAmount:        1200,
		BookingDate:          time.Now(),
		BookingTourStartDate: time.Now().AddDate(0, 0, 7),
		BookingStatus:        constants.BookingStatusPending,
		BookingPaymentStatus: constants.PaymentStatusPending,
	}
	repo := newFakePaymentRepo()
	repo.bookings[booking.BookingID] = booking
	return &paymentFixture{
		repo:     repo,
		customer: authhelper.Principal{UserID: customerID, Role: constants.RoleCustomer},
		booking:  booking,
	}
}

func (f *paymentFixture) service(gateway SnapGateway) *PaymentService {
	users := &fakeUserLookup{users: map[uuid.UUID]*usermodel.UserModel{
		f.customer.UserID: {UserID: f.customer.UserID, UserName: "Jamie", UserEmail: "jamie@example.com", UserPhone: "+15550001"},
	}}
	return NewPaymentService(f.repo, users, gateway, silentNotifier{})
}

func TestPaySettlesAndConfirmsBooking(t *testing.T) {
	f := newPaymentFixture()
	svc := f.service(nil)

	p, err := svc.Pay(context.Background(), f.customer, f.booking.BookingID)
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if p.PaymentStatus != constants.PaymentStatusSuccess || p.PaymentMode != constants.PaymentModeSimulated {
		t.Fatalf("unexpected payment: %+v", p)
	}
	if p.PaymentAmount != f.booking.BookingAmount {
		t.Fatalf("payment amount should match the booking, got %v", p.PaymentAmount)
	}

	b := f.repo.bookings[f.booking.BookingID]
	if b.BookingPaymentStatus != constants.PaymentStatusSuccess {
		t.Fatalf("booking payment side not flipped: %s", b.BookingPaymentStatus)
	}
	if b.BookingStatus != constants.BookingStatusConfirmed {
		t.Fatalf("paid booking should auto-confirm, got %s", b.BookingStatus)
	}
}

func TestPayIsIdempotent(t *testing.T) {
	f := newPaymentFixture()
	svc := f.service(nil)
	ctx := context.Background()

	first, err := svc.Pay(ctx, f.customer, f.booking.BookingID)
	if err != nil {
		t.Fatalf("first pay: %v", err)
	}
	second, err := svc.Pay(ctx, f.customer, f.booking.BookingID)
	if err != nil {
		t.Fatalf("second pay: %v", err)
	}
	if first.PaymentID != second.PaymentID {
		t.Fatal("repeat pay must return the existing payment")
	}
	if len(f.repo.payments) != 1 {
		t.Fatalf("exactly one payment row expected, got %d", len(f.repo.payments))
	}
}

func TestPayOwnershipAndTerminalStates(t *testing.T) {
	f := newPaymentFixture()
	svc := f.service(nil)
	ctx := context.Background()

	stranger := authhelper.Principal{UserID: uuid.New(), Role: constants.RoleCustomer}
	if _, err := svc.Pay(ctx, stranger, f.booking.BookingID); !errs.IsForbidden(err) {
		t.Fatalf("want forbidden for non-owner, got %v", err)
	}

	f.booking.BookingStatus = constants.BookingStatusCancelled
	if _, err := svc.Pay(ctx, f.customer, f.booking.BookingID); !errs.IsConflict(err) {
		t.Fatalf("want conflict for cancelled booking, got %v", err)
	}

	if _, err := svc.Pay(ctx, f.customer, uuid.New()); !errs.IsNotFound(err) {
		t.Fatalf("want not found for unknown booking, got %v", err)
	}
}

func TestPayThroughGatewayStaysPending(t *testing.T) {
	f := newPaymentFixture()
	gw := &fakeGateway{}
	svc := f.service(gw)

	p, err := svc.Pay(context.Background(), f.customer, f.booking.BookingID)
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if p.PaymentStatus != constants.PaymentStatusPending || p.PaymentMode != constants.PaymentModeMidtransSnap {
		t.Fatalf("unexpected payment: %+v", p)
	}
	if p.PaymentSnapToken == nil || *p.PaymentSnapToken == "" {
		t.Fatal("gateway payment should carry a snap token")
	}
	if gw.calls != 1 {
		t.Fatalf("gateway called %d times", gw.calls)
	}

	b := f.repo.bookings[f.booking.BookingID]
	if b.BookingStatus != constants.BookingStatusPending || b.BookingPaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("booking must not advance before confirmation: %+v", b)
	}
}

func TestConfirmAdvancesBookingOnce(t *testing.T) {
	f := newPaymentFixture()
	svc := f.service(&fakeGateway{})
	ctx := context.Background()

	p, err := svc.Pay(ctx, f.customer, f.booking.BookingID)
	if err != nil {
		t.Fatalf("pay: %v", err)
	}

	confirmed, err := svc.Confirm(ctx, p.PaymentID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.PaymentStatus != constants.PaymentStatusSuccess || confirmed.PaymentPaidAt == nil {
		t.Fatalf("unexpected payment: %+v", confirmed)
	}
	b := f.repo.bookings[f.booking.BookingID]
	if b.BookingStatus != constants.BookingStatusConfirmed || b.BookingPaymentStatus != constants.PaymentStatusSuccess {
		t.Fatalf("booking not advanced: %+v", b)
	}

	if _, err := svc.Confirm(ctx, p.PaymentID); !errs.IsConflict(err) {
		t.Fatalf("want conflict confirming twice, got %v", err)
	}
}

func TestRefund(t *testing.T) {
	f := newPaymentFixture()
	svc := f.service(nil)
	ctx := context.Background()

	p, err := svc.Pay(ctx, f.customer, f.booking.BookingID)
	if err != nil {
		t.Fatalf("pay: %v", err)
	}

	refunded, err := svc.Refund(ctx, p.PaymentID)
	if err != nil {
		t.Fatalf("refund: %v", err)
	}
	if refunded.PaymentStatus != constants.PaymentStatusRefunded {
		t.Fatalf("got %s", refunded.PaymentStatus)
	}
	b := f.repo.bookings[f.booking.BookingID]
	if b.BookingPaymentStatus != constants.PaymentStatusRefunded {
		t.Fatal("booking payment side should mirror the refund")
	}
	if b.BookingStatus != constants.BookingStatusConfirmed {
		t.Fatalf("refund must not change the booking status, got %s", b.BookingStatus)
	}

	if _, err := svc.Refund(ctx, p.PaymentID); !errs.IsConflict(err) {
		t.Fatalf("want conflict refunding twice, got %v", err)
	}
}

func TestRefundRequiresSettledPayment(t *testing.T) {
	f := newPaymentFixture()
	svc := f.service(&fakeGateway{})
	ctx := context.Background()

	p, err := svc.Pay(ctx, f.customer, f.booking.BookingID)
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if _, err := svc.Refund(ctx, p.PaymentID); !errs.IsConflict(err) {
		t.Fatalf("want conflict refunding pending payment, got %v", err)
	}
}

func TestStats(t *testing.T) {
	f := newPaymentFixture()
	svc := f.service(nil)
	ctx := context.Background()

	if _, err := svc.Pay(ctx, f.customer, f.booking.BookingID); err != nil {
		t.Fatalf("pay: %v", err)
	}

	other := &bookingmodel.BookingModel{
		BookingID:            uuid.New(),
		BookingUserID:        f.customer.UserID,
		BookingPackageID:     uuid.New(),
		BookingAmount:        800,
		BookingStatus:        constants.BookingStatusPending,
		BookingPaymentStatus: constants.PaymentStatusPending,
	}
	f.repo.bookings[other.BookingID] = other
	if _, err := svc.Pay(ctx, f.customer, other.BookingID); err != nil {
		t.Fatalf("pay other: %v", err)
	}

	byStatus, revenue, total, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if total != 2 || byStatus[constants.PaymentStatusSuccess] != 2 {
		t.Fatalf("unexpected counts: total=%d byStatus=%v", total, byStatus)
	}
	if revenue != 2000 {
		t.Fatalf("revenue should sum settled amounts, got %v", revenue)
	}
}
