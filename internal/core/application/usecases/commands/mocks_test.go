package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/domain/model/access"
	"parcelflow/internal/core/domain/model/audit"
	"parcelflow/internal/core/domain/model/delivery"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/payment"
	"parcelflow/internal/core/domain/model/profile"
	"parcelflow/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) GetByTrackingNumber(ctx context.Context, tn delivery.TrackingNumber) (*delivery.Delivery, error) {
	args := m.Called(ctx, tn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) GetAllInStatus(ctx context.Context, status delivery.Status) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) CountActiveByRider(ctx context.Context, riderID kernel.UUID) (int, error) {
	args := m.Called(ctx, riderID)
	return args.Int(0), args.Error(1)
}

type MockProfileRepository struct{ mock.Mock }

func (m *MockProfileRepository) Add(ctx context.Context, p *profile.UserProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProfileRepository) Update(ctx context.Context, p *profile.UserProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProfileRepository) Get(ctx context.Context, id kernel.UUID) (*profile.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.UserProfile), args.Error(1)
}
func (m *MockProfileRepository) GetAvailableRiders(ctx context.Context) ([]*profile.UserProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profile.UserProfile), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepository) GetByDeliveryID(ctx context.Context, deliveryID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, deliveryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockAuditRecorder struct{ mock.Mock }

func (m *MockAuditRecorder) Record(ctx context.Context, entry audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) PublishDeliveryStatusChanged(ctx context.Context, event ports.DeliveryStatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockUoW satisfies every unit-of-work composition used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}
func (m *MockUoW) ProfileRepository() ports.ProfileRepository {
	args := m.Called()
	return args.Get(0).(ports.ProfileRepository)
}
func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}
func (m *MockUoW) AuditRecorder() ports.AuditRecorder {
	args := m.Called()
	return args.Get(0).(ports.AuditRecorder)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockProfileUoWFactory struct{ mock.Mock }

func (m *MockProfileUoWFactory) Create() commands.ProfileUoW {
	args := m.Called()
	return args.Get(0).(commands.ProfileUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

// Shared builders.

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthorizer(security ports.AuditRecorder) *commands.Authorizer {
	return commands.NewAuthorizer(
		access.NewEvaluator(access.DefaultRolePolicy()), security, discardLogger())
}

func newPrincipal(t *testing.T, roleName string) access.Principal {
	t.Helper()
	p, err := access.NewPrincipal(kernel.NewUUID(), roleName, false)
	require.NoError(t, err)
	return p
}

func principalWithID(t *testing.T, id kernel.UUID, roleName string) access.Principal {
	t.Helper()
	p, err := access.NewPrincipal(id, roleName, false)
	require.NoError(t, err)
	return p
}

func testFeeSchedule(t *testing.T) commands.FeeSchedule {
	t.Helper()
	fees, err := commands.NewFeeSchedule(decimal.NewFromFloat(3.50), kernel.CurrencyUSD)
	require.NoError(t, err)
	return fees
}

func testPackage(t *testing.T) delivery.Package {
	t.Helper()
	pkg, err := delivery.NewPackage(
		"Paper archive", decimal.NewFromFloat(4.0), delivery.PackageTypeDocument, "", false, false)
	require.NoError(t, err)
	return pkg
}

func testRoute(t *testing.T) delivery.Route {
	t.Helper()
	route, err := delivery.NewRoute("1 Depot Ln", "2 Office Sq", nil, nil)
	require.NoError(t, err)
	return route
}

func testDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	fee, err := kernel.NewMoney(decimal.NewFromFloat(14.00), kernel.CurrencyUSD)
	require.NoError(t, err)

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), testPackage(t), "Recipient", "+254700000000",
		testRoute(t), time.Now().Add(time.Hour), time.Now().Add(4*time.Hour),
		delivery.PriorityNormal, fee, "")
	require.NoError(t, err)
	return d
}

func testActiveCustomer(t *testing.T, id kernel.UUID) *profile.UserProfile {
	t.Helper()
	p, err := profile.RestoreUserProfile(
		id, "Customer", "c@example.com", "+254700000001", "",
		profile.UserTypeCustomer, profile.StatusActive, nil, time.Now().UTC())
	require.NoError(t, err)
	return p
}

func testAvailableRider(t *testing.T, rating float64) *profile.UserProfile {
	t.Helper()
	details, err := profile.RestoreRiderDetails(
		"DL-9", time.Now().AddDate(1, 0, 0), profile.VehicleTypeMotorcycle,
		"KDC 3C", "", "national_id", "789", true, rating)
	require.NoError(t, err)

	p, err := profile.RestoreUserProfile(
		kernel.NewUUID(), "Rider", "r@example.com", "+254700000002", "",
		profile.UserTypeRider, profile.StatusActive, &details, time.Now().UTC())
	require.NoError(t, err)
	return p
}

func testPendingRider(t *testing.T) *profile.UserProfile {
	t.Helper()
	details, err := profile.NewRiderDetails(
		"DL-8", time.Now().AddDate(1, 0, 0), profile.VehicleTypeBicycle,
		"KDD 4D", "", "national_id", "321")
	require.NoError(t, err)

	p, err := profile.NewUserProfile(
		kernel.NewUUID(), "Applicant", "a@example.com", "+254700000003", "",
		profile.UserTypeRider, &details)
	require.NoError(t, err)
	return p
}
