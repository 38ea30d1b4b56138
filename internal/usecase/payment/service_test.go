package payment

import (
	"context"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainPayment "courier-track/internal/domain/payment"
	domainShipment "courier-track/internal/domain/shipment"
	domainUser "courier-track/internal/domain/user"
	appErrors "courier-track/pkg/errors"
)

// mockPaymentRepository is a mock implementation of payment.Repository.
type mockPaymentRepository struct {
	mock.Mock
}

func (m *mockPaymentRepository) Create(ctx context.Context, p *domainPayment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPaymentRepository) GetByShipmentID(ctx context.Context, shipmentID uuid.UUID) (*domainPayment.Payment, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainPayment.Payment), args.Error(1)
}

// mockShipmentRepository stubs the subset of shipment.Repository the
// payment service touches.
type mockShipmentRepository struct {
	mock.Mock
}

func (m *mockShipmentRepository) Create(ctx context.Context, sh *domainShipment.Shipment) error {
	args := m.Called(ctx, sh)
	return args.Error(0)
}

func (m *mockShipmentRepository) GetByID(ctx context.Context, shipmentID uuid.UUID) (*domainShipment.Shipment, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainShipment.Shipment), args.Error(1)
}

func (m *mockShipmentRepository) GetByTrackingID(ctx context.Context, trackingID string) (*domainShipment.Shipment, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainShipment.Shipment), args.Error(1)
}

func (m *mockShipmentRepository) ListBySender(ctx context.Context, senderID uuid.UUID) ([]*domainShipment.Shipment, error) {
	args := m.Called(ctx, senderID)
	return args.Get(0).([]*domainShipment.Shipment), args.Error(1)
}

func (m *mockShipmentRepository) ListByCourier(ctx context.Context, courierID uuid.UUID) ([]*domainShipment.Shipment, error) {
	args := m.Called(ctx, courierID)
	return args.Get(0).([]*domainShipment.Shipment), args.Error(1)
}

func (m *mockShipmentRepository) ListAll(ctx context.Context) ([]*domainShipment.Shipment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domainShipment.Shipment), args.Error(1)
}

func (m *mockShipmentRepository) AssignCourier(ctx context.Context, shipmentID, courierID uuid.UUID) error {
	args := m.Called(ctx, shipmentID, courierID)
	return args.Error(0)
}

func (m *mockShipmentRepository) AdvanceStatus(ctx context.Context, shipmentID uuid.UUID, from, to domainShipment.ShipmentStatus, event *domainShipment.TrackingEvent) error {
	args := m.Called(ctx, shipmentID, from, to, event)
	return args.Error(0)
}

func (m *mockShipmentRepository) AppendEvent(ctx context.Context, event *domainShipment.TrackingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func bookedShipment(senderID uuid.UUID) *domainShipment.Shipment {
	return &domainShipment.Shipment{
		ID:            uuid.New(),
		TrackingID:    "TRK12345678",
		SenderID:      senderID,
		EstimatedCost: decimal.RequireFromString("25.00"),
		Status:        domainShipment.StatusBooked,
	}
}

var txnIDRe = regexp.MustCompile(`^TXN[0-9A-F]{8}$`)

func TestProcess_CODStaysPending(t *testing.T) {
	paymentRepo := new(mockPaymentRepository)
	shipmentRepo := new(mockShipmentRepository)
	service := NewService(paymentRepo, shipmentRepo)

	senderID := uuid.New()
	sh := bookedShipment(senderID)
	shipmentRepo.On("GetByID", mock.Anything, sh.ID).Return(sh, nil)
	paymentRepo.On("Create", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil)

	resp, err := service.Process(context.Background(), sh.ID, senderID, &ProcessPaymentRequest{
		Method: domainShipment.PaymentMethodCOD,
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "25.00", resp.Amount)
	assert.Nil(t, resp.TransactionID)
	assert.Nil(t, resp.PaidAt)
}

func TestProcess_CardCompletesWithTransactionID(t *testing.T) {
	paymentRepo := new(mockPaymentRepository)
	shipmentRepo := new(mockShipmentRepository)
	service := NewService(paymentRepo, shipmentRepo)

	senderID := uuid.New()
	sh := bookedShipment(senderID)
	shipmentRepo.On("GetByID", mock.Anything, sh.ID).Return(sh, nil)
	paymentRepo.On("Create", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil)

	resp, err := service.Process(context.Background(), sh.ID, senderID, &ProcessPaymentRequest{
		Method: domainShipment.PaymentMethodCard,
	})
	require.NoError(t, err)

	assert.Equal(t, "completed", resp.Status)
	require.NotNil(t, resp.TransactionID)
	assert.Regexp(t, txnIDRe, *resp.TransactionID)
	assert.NotNil(t, resp.PaidAt)
}

func TestProcess_OnlySenderMayPay(t *testing.T) {
	paymentRepo := new(mockPaymentRepository)
	shipmentRepo := new(mockShipmentRepository)
	service := NewService(paymentRepo, shipmentRepo)

	sh := bookedShipment(uuid.New())
	shipmentRepo.On("GetByID", mock.Anything, sh.ID).Return(sh, nil)

	_, err := service.Process(context.Background(), sh.ID, uuid.New(), &ProcessPaymentRequest{
		Method: domainShipment.PaymentMethodUPI,
	})
	assert.ErrorIs(t, err, appErrors.ErrInsufficientPermissions)
	paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProcess_RejectsDoublePayment(t *testing.T) {
	paymentRepo := new(mockPaymentRepository)
	shipmentRepo := new(mockShipmentRepository)
	service := NewService(paymentRepo, shipmentRepo)

	senderID := uuid.New()
	sh := bookedShipment(senderID)
	shipmentRepo.On("GetByID", mock.Anything, sh.ID).Return(sh, nil)
	paymentRepo.On("Create", mock.Anything, mock.AnythingOfType("*payment.Payment")).
		Return(domainPayment.ErrPaymentAlreadyExists)

	_, err := service.Process(context.Background(), sh.ID, senderID, &ProcessPaymentRequest{
		Method: domainShipment.PaymentMethodWallet,
	})
	assert.ErrorIs(t, err, domainPayment.ErrPaymentAlreadyExists)
}

func TestProcess_RejectsUnknownMethod(t *testing.T) {
	service := NewService(new(mockPaymentRepository), new(mockShipmentRepository))

	_, err := service.Process(context.Background(), uuid.New(), uuid.New(), &ProcessPaymentRequest{
		Method: "cheque",
	})
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestStatus_AdminMayView(t *testing.T) {
	paymentRepo := new(mockPaymentRepository)
	shipmentRepo := new(mockShipmentRepository)
	service := NewService(paymentRepo, shipmentRepo)

	sh := bookedShipment(uuid.New())
	shipmentRepo.On("GetByID", mock.Anything, sh.ID).Return(sh, nil)
	paymentRepo.On("GetByShipmentID", mock.Anything, sh.ID).Return(&domainPayment.Payment{
		ID:         uuid.New(),
		ShipmentID: sh.ID,
		Amount:     sh.EstimatedCost,
		Method:     domainShipment.PaymentMethodCOD,
		Status:     domainPayment.StatusPending,
	}, nil)

	resp, err := service.Status(context.Background(), sh.ID, uuid.New(), domainUser.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
}

func TestStatus_NotFound(t *testing.T) {
	paymentRepo := new(mockPaymentRepository)
	shipmentRepo := new(mockShipmentRepository)
	service := NewService(paymentRepo, shipmentRepo)

	senderID := uuid.New()
	sh := bookedShipment(senderID)
	shipmentRepo.On("GetByID", mock.Anything, sh.ID).Return(sh, nil)
	paymentRepo.On("GetByShipmentID", mock.Anything, sh.ID).Return(nil, domainPayment.ErrPaymentNotFound)

	_, err := service.Status(context.Background(), sh.ID, senderID, domainUser.RoleCustomer)
	assert.ErrorIs(t, err, domainPayment.ErrPaymentNotFound)
}
