package paymentservice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nstoliar/escrowd/internal/domain"
)

type mocks struct {
	paymentRepo *MockPaymentRepo
	orderRepo   *MockOrderRepo
	ledgerRepo  *MockLedgerRepo
	providers   *MockRegistry
	rates       *MockRateSource
	provider    *MockProvider
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		paymentRepo: NewMockPaymentRepo(ctrl),
		orderRepo:   NewMockOrderRepo(ctrl),
		ledgerRepo:  NewMockLedgerRepo(ctrl),
		providers:   NewMockRegistry(ctrl),
		rates:       NewMockRateSource(ctrl),
		provider:    NewMockProvider(ctrl),
	}
	service := New(m.paymentRepo, m.orderRepo, m.ledgerRepo, m.providers, m.rates)
	return service, m
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name          string
		in            AuthorizeInput
		prepareMock   func(m *mocks)
		expectedError error
		check         func(t *testing.T, payment *domain.Payment, secret string)
	}{
		{
			name:          "Non-positive amount",
			in:            AuthorizeInput{AmountRub: 0, Provider: "MOCKPAY"},
			expectedError: ErrValidation,
		},
		{
			name: "Unsupported provider",
			in:   AuthorizeInput{AmountRub: 1000, Provider: "PAYPAL"},
			prepareMock: func(m *mocks) {
				m.providers.EXPECT().Get("PAYPAL").Return(nil, false)
			},
			expectedError: ErrProviderUnsupported,
		},
		{
			name: "Provider rejects the hold",
			in:   AuthorizeInput{AmountRub: 1000, Provider: "SBER"},
			prepareMock: func(m *mocks) {
				m.providers.EXPECT().Get("SBER").Return(m.provider, true)
				m.provider.EXPECT().Authorize(gomock.Any(), gomock.Any(), int64(1000)).
					Return("", errors.New("gateway timeout"))
			},
			expectedError: errors.New("gateway timeout"),
		},
		{
			name: "Successful authorization with defaults",
			in:   AuthorizeInput{AmountRub: 15000, Provider: "MOCKPAY", Description: "Order #42"},
			prepareMock: func(m *mocks) {
				m.providers.EXPECT().Get("MOCKPAY").Return(m.provider, true)
				m.provider.EXPECT().Authorize(gomock.Any(), gomock.Any(), int64(15000)).
					Return("secret_abc", nil)
				m.paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, payment *domain.Payment, secret string) {
				assert.Equal(t, "secret_abc", secret)
				assert.Equal(t, domain.PaymentAuthorized, payment.Status)
				assert.Equal(t, "RUB", payment.Currency)
				assert.True(t, strings.HasPrefix(payment.ProviderRef, "mockpay_"))
				assert.Equal(t, "Order #42", payment.Metadata["description"])
				assert.NotContains(t, payment.Metadata, "fx_rate")
			},
		},
		{
			name: "Foreign currency records fx metadata",
			in:   AuthorizeInput{AmountRub: 9000, Provider: "MOCKPAY", Currency: "USD"},
			prepareMock: func(m *mocks) {
				m.providers.EXPECT().Get("MOCKPAY").Return(m.provider, true)
				m.provider.EXPECT().Authorize(gomock.Any(), gomock.Any(), int64(9000)).
					Return("secret_usd", nil)
				m.rates.EXPECT().Rate(gomock.Any(), "USD").Return(90.0, nil)
				m.paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, payment *domain.Payment, secret string) {
				assert.Equal(t, "USD", payment.Currency)
				assert.Equal(t, 90.0, payment.Metadata["fx_rate"])
				assert.Equal(t, 100.0, payment.Metadata["amount_ccy"])
			},
		},
		{
			name: "Rate lookup failure is non-fatal",
			in:   AuthorizeInput{AmountRub: 9000, Provider: "MOCKPAY", Currency: "EUR"},
			prepareMock: func(m *mocks) {
				m.providers.EXPECT().Get("MOCKPAY").Return(m.provider, true)
				m.provider.EXPECT().Authorize(gomock.Any(), gomock.Any(), int64(9000)).
					Return("secret_eur", nil)
				m.rates.EXPECT().Rate(gomock.Any(), "EUR").Return(0.0, errors.New("rates down"))
				m.paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, payment *domain.Payment, secret string) {
				assert.NotContains(t, payment.Metadata, "fx_rate")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}

			payment, secret, err := service.Authorize(context.Background(), tt.in)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, payment)
			} else {
				assert.NoError(t, err)
				tt.check(t, payment, secret)
			}
		})
	}
}

func TestCapture(t *testing.T) {
	paymentID := uuid.New()
	authorized := func() *domain.Payment {
		return &domain.Payment{
			ID:          paymentID,
			Provider:    "MOCKPAY",
			ProviderRef: "mockpay_abc123def456",
			AmountRub:   1500,
			Currency:    "RUB",
			Status:      domain.PaymentAuthorized,
			Metadata:    map[string]any{},
		}
	}
	partial := int64(500)
	tooMuch := int64(2000)

	tests := []struct {
		name          string
		amountRub     *int64
		prepareMock   func(m *mocks)
		expectedError error
		check         func(t *testing.T, payment *domain.Payment)
	}{
		{
			name: "Payment not found",
			prepareMock: func(m *mocks) {
				m.paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).Return(nil, nil)
			},
			expectedError: ErrPaymentNotFound,
		},
		{
			name: "Already captured",
			prepareMock: func(m *mocks) {
				p := authorized()
				p.Status = domain.PaymentCaptured
				m.paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).Return(p, nil)
			},
			expectedError: ErrInvalidState,
		},
		{
			name:      "Amount exceeds authorization",
			amountRub: &tooMuch,
			prepareMock: func(m *mocks) {
				m.paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).Return(authorized(), nil)
			},
			expectedError: ErrAmountExceeded,
		},
		{
			name: "Full capture by default",
			prepareMock: func(m *mocks) {
				m.paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).Return(authorized(), nil)
				m.providers.EXPECT().Get("MOCKPAY").Return(m.provider, true)
				m.provider.EXPECT().Capture(gomock.Any(), "mockpay_abc123def456", int64(1500)).
					Return("cap_ref", nil)
				m.paymentRepo.EXPECT().MarkCaptured(gomock.Any(), paymentID, gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.orderRepo.EXPECT().FindByPaymentID(gomock.Any(), paymentID).
					Return(&domain.Order{ID: 42}, nil)
				m.orderRepo.EXPECT().MarkPaid(gomock.Any(), int64(42)).Return(true, nil)
			},
			check: func(t *testing.T, payment *domain.Payment) {
				assert.Equal(t, domain.PaymentCaptured, payment.Status)
				assert.Equal(t, "cap_ref", payment.Metadata["capture_ref"])
				assert.Equal(t, int64(1500), payment.Metadata["captured_amount"])
				assert.NotNil(t, payment.ProcessedAt)
			},
		},
		{
			name:      "Partial capture",
			amountRub: &partial,
			prepareMock: func(m *mocks) {
				m.paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).Return(authorized(), nil)
				m.providers.EXPECT().Get("MOCKPAY").Return(m.provider, true)
				m.provider.EXPECT().Capture(gomock.Any(), "mockpay_abc123def456", int64(500)).
					Return("cap_partial", nil)
				m.paymentRepo.EXPECT().MarkCaptured(gomock.Any(), paymentID, gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.orderRepo.EXPECT().FindByPaymentID(gomock.Any(), paymentID).Return(nil, nil)
			},
			check: func(t *testing.T, payment *domain.Payment) {
				assert.Equal(t, int64(500), payment.Metadata["captured_amount"])
			},
		},
		{
			name: "Lost the conditional update race",
			prepareMock: func(m *mocks) {
				m.paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).Return(authorized(), nil)
				m.providers.EXPECT().Get("MOCKPAY").Return(m.provider, true)
				m.provider.EXPECT().Capture(gomock.Any(), "mockpay_abc123def456", int64(1500)).
					Return("cap_late", nil)
				m.paymentRepo.EXPECT().MarkCaptured(gomock.Any(), paymentID, gomock.Any(), gomock.Any()).
					Return(false, nil)
				captured := authorized()
				captured.Status = domain.PaymentCaptured
				m.paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).Return(captured, nil)
			},
			expectedError: ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}

			payment, err := service.Capture(context.Background(), paymentID, tt.amountRub)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, payment)
			} else {
				assert.NoError(t, err)
				tt.check(t, payment)
			}
		})
	}
}

func TestRefund(t *testing.T) {
	paymentID := uuid.New()
	buyerID := uuid.New()
	sellerID := uuid.New()
	payment := func(status string) *domain.Payment {
		return &domain.Payment{
			ID:          paymentID,
			Provider:    "MOCKPAY",
			ProviderRef: "mockpay_abc123def456",
			AmountRub:   1500,
			Currency:    "RUB",
			Status:      status,
			Metadata:    map[string]any{},
		}
	}
	order := func(escrow string) *domain.Order {
		return &domain.Order{
			ID:             42,
			BuyerID:        buyerID,
			SellerID:       sellerID,
			TotalAmountRub: 1500,
			Status:         domain.OrderPaid,
			EscrowStatus:   escrow,
		}
	}

	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
		check         func(t *testing.T, p *domain.Payment)
	}{
		{
			name: "Already refunded",
			prepareMock: func(m *mocks) {
				m.paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).
					Return(payment(domain.PaymentRefunded), nil)
			},
			expectedError: ErrAlreadyRefunded,
		},
		{
			name: "Cancelled payment cannot be refunded",
			prepareMock: func(m *mocks) {
				m.paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).
					Return(payment(domain.PaymentCancelled), nil)
			},
			expectedError: ErrInvalidState,
		},
		{
			name: "Void of an authorized hold skips the ledger",
			prepareMock: func(m *mocks) {
				m.paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).
					Return(payment(domain.PaymentAuthorized), nil)
				m.providers.EXPECT().Get("MOCKPAY").Return(m.provider, true)
				m.provider.EXPECT().Refund(gomock.Any(), "mockpay_abc123def456", "changed my mind").
					Return("ref_void", nil)
				m.paymentRepo.EXPECT().MarkRefunded(gomock.Any(), paymentID, gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.orderRepo.EXPECT().FindByPaymentID(gomock.Any(), paymentID).
					Return(order(domain.EscrowHeld), nil)
				m.orderRepo.EXPECT().MarkRefunded(gomock.Any(), int64(42), domain.EscrowHeld).
					Return(true, nil)
			},
			check: func(t *testing.T, p *domain.Payment) {
				assert.Equal(t, domain.PaymentRefunded, p.Status)
				assert.Equal(t, "changed my mind", p.Metadata["refund_reason"])
			},
		},
		{
			name: "Captured refund credits the buyer",
			prepareMock: func(m *mocks) {
				m.paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).
					Return(payment(domain.PaymentCaptured), nil)
				m.providers.EXPECT().Get("MOCKPAY").Return(m.provider, true)
				m.provider.EXPECT().Refund(gomock.Any(), "mockpay_abc123def456", "changed my mind").
					Return("ref_abc", nil)
				m.paymentRepo.EXPECT().MarkRefunded(gomock.Any(), paymentID, gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.orderRepo.EXPECT().FindByPaymentID(gomock.Any(), paymentID).
					Return(order(domain.EscrowHeld), nil)
				m.orderRepo.EXPECT().MarkRefunded(gomock.Any(), int64(42), domain.EscrowHeld).
					Return(true, nil)
				m.ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, entry *domain.PayoutLedgerEntry) error {
						assert.Equal(t, buyerID, entry.UserID)
						assert.Equal(t, domain.EntryCredit, entry.Type)
						assert.Equal(t, paymentID.String()+":refund:buyer", entry.IdempotencyKey)
						return nil
					})
			},
			check: func(t *testing.T, p *domain.Payment) {
				assert.Equal(t, domain.PaymentRefunded, p.Status)
			},
		},
		{
			name: "Released escrow adds a seller clawback",
			prepareMock: func(m *mocks) {
				m.paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).
					Return(payment(domain.PaymentCaptured), nil)
				m.providers.EXPECT().Get("MOCKPAY").Return(m.provider, true)
				m.provider.EXPECT().Refund(gomock.Any(), "mockpay_abc123def456", "changed my mind").
					Return("ref_abc", nil)
				m.paymentRepo.EXPECT().MarkRefunded(gomock.Any(), paymentID, gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.orderRepo.EXPECT().FindByPaymentID(gomock.Any(), paymentID).
					Return(order(domain.EscrowReleased), nil)
				m.orderRepo.EXPECT().MarkRefunded(gomock.Any(), int64(42), domain.EscrowReleased).
					Return(true, nil)
				m.ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Times(2).
					DoAndReturn(func(_ context.Context, entry *domain.PayoutLedgerEntry) error {
						if entry.Type == domain.EntryDebit {
							assert.Equal(t, sellerID, entry.UserID)
						} else {
							assert.Equal(t, buyerID, entry.UserID)
						}
						return nil
					})
			},
			check: func(t *testing.T, p *domain.Payment) {
				assert.Equal(t, domain.PaymentRefunded, p.Status)
			},
		},
		{
			name: "Failed ledger appends fall back to the retry queue",
			prepareMock: func(m *mocks) {
				m.paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).
					Return(payment(domain.PaymentCaptured), nil)
				m.providers.EXPECT().Get("MOCKPAY").Return(m.provider, true)
				m.provider.EXPECT().Refund(gomock.Any(), "mockpay_abc123def456", "changed my mind").
					Return("ref_abc", nil)
				m.paymentRepo.EXPECT().MarkRefunded(gomock.Any(), paymentID, gomock.Any(), gomock.Any()).
					Return(true, nil)
				m.orderRepo.EXPECT().FindByPaymentID(gomock.Any(), paymentID).
					Return(order(domain.EscrowHeld), nil)
				m.orderRepo.EXPECT().MarkRefunded(gomock.Any(), int64(42), domain.EscrowHeld).
					Return(true, nil)
				m.ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
					Return(errors.New("db down"))
				m.ledgerRepo.EXPECT().EnqueueTask(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, task *domain.PayoutTask) error {
						assert.Equal(t, paymentID.String()+":refund:buyer", task.IdempotencyKey)
						return nil
					})
			},
			check: func(t *testing.T, p *domain.Payment) {
				assert.Equal(t, domain.PaymentRefunded, p.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}

			p, err := service.Refund(context.Background(), paymentID, "changed my mind")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, p)
			} else {
				assert.NoError(t, err)
				tt.check(t, p)
			}
		})
	}
}

func TestGetPayment(t *testing.T) {
	paymentID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		service, m := NewMock(t)
		now := time.Now()
		m.paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).Return(&domain.Payment{
			ID:          paymentID,
			Status:      domain.PaymentCaptured,
			ProcessedAt: &now,
		}, nil)

		payment, err := service.GetPayment(context.Background(), paymentID)
		assert.NoError(t, err)
		assert.Equal(t, paymentID, payment.ID)
	})

	t.Run("Not found", func(t *testing.T) {
		service, m := NewMock(t)
		m.paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).Return(nil, nil)

		payment, err := service.GetPayment(context.Background(), paymentID)
		assert.ErrorIs(t, err, ErrPaymentNotFound)
		assert.Nil(t, payment)
	})
}

func TestNewProviderRef(t *testing.T) {
	ref, err := newProviderRef("MOCKPAY")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "mockpay_"))
	assert.Len(t, ref, len("mockpay_")+12)

	other, err := newProviderRef("MOCKPAY")
	assert.NoError(t, err)
	assert.NotEqual(t, ref, other)
}
