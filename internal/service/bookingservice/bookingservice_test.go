package bookingservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nstoliar/escrowd/internal/domain"
)

type mocks struct {
	bookingRepo *MockBookingRepo
	orderRepo   *MockOrderRepo
	paymentRepo *MockPaymentRepo
	ledgerRepo  *MockLedgerRepo
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		bookingRepo: NewMockBookingRepo(ctrl),
		orderRepo:   NewMockOrderRepo(ctrl),
		paymentRepo: NewMockPaymentRepo(ctrl),
		ledgerRepo:  NewMockLedgerRepo(ctrl),
	}
	service := New(m.bookingRepo, m.orderRepo, m.paymentRepo, m.ledgerRepo)
	return service, m
}

func TestCompleteBooking(t *testing.T) {
	bookingID := uuid.New()
	clientID := uuid.New()
	providerID := uuid.New()
	booking := func(status string) *domain.ServiceBooking {
		return &domain.ServiceBooking{
			ID:                bookingID,
			ClientID:          clientID,
			ServiceID:         3,
			ProviderProfileID: providerID,
			AmountRub:         5000,
			Status:            status,
			EscrowStatus:      domain.EscrowHeld,
		}
	}

	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
		check         func(t *testing.T, result *CompleteBookingResult)
	}{
		{
			name: "Booking not found",
			prepareMock: func(m *mocks) {
				m.bookingRepo.EXPECT().GetByID(gomock.Any(), bookingID).Return(nil, nil)
			},
			expectedError: ErrBookingNotFound,
		},
		{
			name: "Pending booking cannot be completed",
			prepareMock: func(m *mocks) {
				m.bookingRepo.EXPECT().GetByID(gomock.Any(), bookingID).
					Return(booking(domain.BookingPending), nil)
			},
			expectedError: ErrInvalidState,
		},
		{
			name: "Lost the conditional update race",
			prepareMock: func(m *mocks) {
				m.bookingRepo.EXPECT().GetByID(gomock.Any(), bookingID).
					Return(booking(domain.BookingConfirmed), nil)
				m.bookingRepo.EXPECT().MarkCompleted(gomock.Any(), bookingID).Return(false, nil)
			},
			expectedError: ErrInvalidState,
		},
		{
			name: "Completion with an existing order",
			prepareMock: func(m *mocks) {
				m.bookingRepo.EXPECT().GetByID(gomock.Any(), bookingID).
					Return(booking(domain.BookingConfirmed), nil)
				m.bookingRepo.EXPECT().MarkCompleted(gomock.Any(), bookingID).Return(true, nil)
				m.orderRepo.EXPECT().FindByBookingID(gomock.Any(), bookingID).
					Return(&domain.Order{ID: 42, BuyerID: clientID, SellerID: providerID}, nil)
				m.orderRepo.EXPECT().MarkDelivered(gomock.Any(), int64(42)).Return(true, nil)
				m.paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, payment *domain.Payment) error {
						assert.Equal(t, domain.PaymentCaptured, payment.Status)
						assert.Equal(t, "booking_"+bookingID.String(), payment.ProviderRef)
						return nil
					})
				m.orderRepo.EXPECT().LinkPayment(gomock.Any(), int64(42), gomock.Any()).Return(nil)
				m.ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, entry *domain.PayoutLedgerEntry) error {
						assert.Equal(t, providerID, entry.UserID)
						assert.Equal(t, domain.EntryCredit, entry.Type)
						assert.Equal(t, bookingID.String()+":complete:provider", entry.IdempotencyKey)
						return nil
					})
			},
			check: func(t *testing.T, result *CompleteBookingResult) {
				assert.Equal(t, int64(42), result.OrderID)
				assert.Equal(t, domain.BookingCompleted, result.Status)
				assert.Equal(t, domain.EscrowReleased, result.EscrowStatus)
				assert.Equal(t, int64(5000), result.AmountRub)
			},
		},
		{
			name: "Completion creates the order when none exists",
			prepareMock: func(m *mocks) {
				m.bookingRepo.EXPECT().GetByID(gomock.Any(), bookingID).
					Return(booking(domain.BookingConfirmed), nil)
				m.bookingRepo.EXPECT().MarkCompleted(gomock.Any(), bookingID).Return(true, nil)
				m.orderRepo.EXPECT().FindByBookingID(gomock.Any(), bookingID).Return(nil, nil)
				m.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *domain.Order) error {
						assert.Equal(t, domain.OrderDelivered, order.Status)
						assert.Equal(t, domain.EscrowReleased, order.EscrowStatus)
						assert.Equal(t, bookingID, *order.ServiceBookingID)
						order.ID = 77
						return nil
					})
				m.paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.orderRepo.EXPECT().LinkPayment(gomock.Any(), int64(77), gomock.Any()).Return(nil)
				m.ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, result *CompleteBookingResult) {
				assert.Equal(t, int64(77), result.OrderID)
			},
		},
		{
			name: "Ledger failure queues a retry task",
			prepareMock: func(m *mocks) {
				m.bookingRepo.EXPECT().GetByID(gomock.Any(), bookingID).
					Return(booking(domain.BookingConfirmed), nil)
				m.bookingRepo.EXPECT().MarkCompleted(gomock.Any(), bookingID).Return(true, nil)
				m.orderRepo.EXPECT().FindByBookingID(gomock.Any(), bookingID).
					Return(&domain.Order{ID: 42}, nil)
				m.orderRepo.EXPECT().MarkDelivered(gomock.Any(), int64(42)).Return(true, nil)
				m.paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.orderRepo.EXPECT().LinkPayment(gomock.Any(), int64(42), gomock.Any()).Return(nil)
				m.ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
				m.ledgerRepo.EXPECT().EnqueueTask(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, task *domain.PayoutTask) error {
						assert.Equal(t, bookingID.String()+":complete:provider", task.IdempotencyKey)
						assert.Equal(t, domain.EntryCredit, task.EntryType)
						return nil
					})
			},
			check: func(t *testing.T, result *CompleteBookingResult) {
				assert.Equal(t, domain.BookingCompleted, result.Status)
			},
		},
		{
			name: "Charge record failure is non-fatal",
			prepareMock: func(m *mocks) {
				m.bookingRepo.EXPECT().GetByID(gomock.Any(), bookingID).
					Return(booking(domain.BookingConfirmed), nil)
				m.bookingRepo.EXPECT().MarkCompleted(gomock.Any(), bookingID).Return(true, nil)
				m.orderRepo.EXPECT().FindByBookingID(gomock.Any(), bookingID).
					Return(&domain.Order{ID: 42}, nil)
				m.orderRepo.EXPECT().MarkDelivered(gomock.Any(), int64(42)).Return(true, nil)
				m.paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
				m.ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, result *CompleteBookingResult) {
				assert.Equal(t, domain.BookingCompleted, result.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}

			result, err := service.CompleteBooking(context.Background(), bookingID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				tt.check(t, result)
			}
		})
	}
}
