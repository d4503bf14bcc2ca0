package paymentservice

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nstoliar/escrowd/internal/domain"
	"github.com/nstoliar/escrowd/internal/provider"
)

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	MarkCaptured(ctx context.Context, id uuid.UUID, meta map[string]any, processedAt time.Time) (bool, error)
	MarkRefunded(ctx context.Context, id uuid.UUID, meta map[string]any, processedAt time.Time) (bool, error)
}

type OrderRepo interface {
	FindByPaymentID(ctx context.Context, paymentID uuid.UUID) (*domain.Order, error)
	MarkPaid(ctx context.Context, orderID int64) (bool, error)
	MarkRefunded(ctx context.Context, orderID int64, fromEscrow string) (bool, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.PayoutLedgerEntry) error
	EnqueueTask(ctx context.Context, task *domain.PayoutTask) error
}

type Registry interface {
	Get(tag string) (provider.Provider, bool)
}

type RateSource interface {
	Rate(ctx context.Context, code string) (float64, error)
}

type Service struct {
	paymentRepo PaymentRepo
	orderRepo   OrderRepo
	ledgerRepo  LedgerRepo
	providers   Registry
	rates       RateSource
}

func New(paymentRepo PaymentRepo, orderRepo OrderRepo, ledgerRepo LedgerRepo, providers Registry, rates RateSource) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		ledgerRepo:  ledgerRepo,
		providers:   providers,
		rates:       rates,
	}
}

var (
	ErrValidation          = errors.New("validation failed")
	ErrProviderUnsupported = errors.New("unsupported payment provider")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrInvalidState        = errors.New("invalid payment state")
	ErrAmountExceeded      = errors.New("capture amount exceeds authorized amount")
	ErrAlreadyRefunded     = errors.New("payment already refunded")
)

const defaultCurrency = "RUB"

const refAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// newProviderRef builds "<provider>_<suffix>" with a 12-char random suffix
// over a 36-char alphabet, making collisions negligible.
func newProviderRef(providerTag string) (string, error) {
	suffix := make([]byte, 12)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(refAlphabet))))
		if err != nil {
			return "", fmt.Errorf("can't generate provider ref: %w", err)
		}
		suffix[i] = refAlphabet[n.Int64()]
	}
	return strings.ToLower(providerTag) + "_" + string(suffix), nil
}

type AuthorizeInput struct {
	AmountRub   int64
	Currency    string
	Provider    string
	Description string
	Metadata    map[string]any
}

// Authorize places a hold with the provider and persists the payment in
// AUTHORIZED. The returned client secret is transient and never stored.
func (s *Service) Authorize(ctx context.Context, in AuthorizeInput) (*domain.Payment, string, error) {
	if in.AmountRub <= 0 {
		return nil, "", fmt.Errorf("%w: amount_rub must be positive, got %d", ErrValidation, in.AmountRub)
	}
	prov, ok := s.providers.Get(in.Provider)
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrProviderUnsupported, in.Provider)
	}

	ref, err := newProviderRef(in.Provider)
	if err != nil {
		return nil, "", err
	}

	clientSecret, err := prov.Authorize(ctx, ref, in.AmountRub)
	if err != nil {
		zap.L().Error("provider authorize failed", zap.String("provider", in.Provider), zap.Error(err))
		return nil, "", err
	}

	currency := in.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	metadata := make(map[string]any, len(in.Metadata)+3)
	for k, v := range in.Metadata {
		metadata[k] = v
	}
	if in.Description != "" {
		metadata["description"] = in.Description
	}
	if currency != defaultCurrency {
		// Non-fatal: the payer-facing amount is informational only.
		if rate, err := s.rates.Rate(ctx, currency); err != nil {
			zap.L().Warn("rate lookup failed, skipping fx metadata", zap.String("currency", currency), zap.Error(err))
		} else {
			metadata["fx_rate"] = rate
			metadata["amount_ccy"] = float64(in.AmountRub) / rate
		}
	}

	payment := &domain.Payment{
		ID:          uuid.New(),
		Provider:    in.Provider,
		ProviderRef: ref,
		AmountRub:   in.AmountRub,
		Currency:    currency,
		Status:      domain.PaymentAuthorized,
		Metadata:    metadata,
		CreatedAt:   time.Now(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, "", err
	}

	return payment, clientSecret, nil
}

// Capture settles an authorized payment. The side effects run in a fixed
// order: payment first, then the order escrow. A concurrent capture loses the
// conditional update and observes ErrInvalidState.
func (s *Service) Capture(ctx context.Context, paymentID uuid.UUID, amountRub *int64) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if payment.Status != domain.PaymentAuthorized {
		return nil, fmt.Errorf("%w: payment is %s, want %s", ErrInvalidState, payment.Status, domain.PaymentAuthorized)
	}

	amount := payment.AmountRub
	if amountRub != nil {
		amount = *amountRub
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount_rub must be positive, got %d", ErrValidation, amount)
	}
	if amount > payment.AmountRub {
		return nil, fmt.Errorf("%w: %d > %d", ErrAmountExceeded, amount, payment.AmountRub)
	}

	prov, ok := s.providers.Get(payment.Provider)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderUnsupported, payment.Provider)
	}
	captureRef, err := prov.Capture(ctx, payment.ProviderRef, amount)
	if err != nil {
		zap.L().Error("provider capture failed", zap.String("provider", payment.Provider), zap.Error(err))
		return nil, err
	}

	now := time.Now()
	meta := map[string]any{
		"capture_ref":     captureRef,
		"captured_amount": amount,
	}
	captured, err := s.paymentRepo.MarkCaptured(ctx, paymentID, meta, now)
	if err != nil {
		return nil, err
	}
	if !captured {
		return nil, s.transitionConflict(ctx, paymentID, domain.PaymentAuthorized)
	}

	order, err := s.orderRepo.FindByPaymentID(ctx, paymentID)
	if err != nil {
		zap.L().Error("failed to load order after capture", zap.String("payment_id", paymentID.String()), zap.Error(err))
	} else if order != nil {
		if _, err := s.orderRepo.MarkPaid(ctx, order.ID); err != nil {
			zap.L().Error("failed to mark order paid", zap.Int64("order_id", order.ID), zap.Error(err))
		}
	}

	payment.Status = domain.PaymentCaptured
	payment.ProcessedAt = &now
	for k, v := range meta {
		payment.Metadata[k] = v
	}
	return payment, nil
}

// Refund voids an authorized or captured payment. When escrow was already
// released to the seller, a DEBIT entry claws the amount back alongside the
// buyer's CREDIT, keeping the ledger double-entry.
func (s *Service) Refund(ctx context.Context, paymentID uuid.UUID, reason string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if payment.Status == domain.PaymentRefunded {
		return nil, ErrAlreadyRefunded
	}
	if payment.Status != domain.PaymentAuthorized && payment.Status != domain.PaymentCaptured {
		return nil, fmt.Errorf("%w: payment is %s", ErrInvalidState, payment.Status)
	}

	prov, ok := s.providers.Get(payment.Provider)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderUnsupported, payment.Provider)
	}
	refundRef, err := prov.Refund(ctx, payment.ProviderRef, reason)
	if err != nil {
		zap.L().Error("provider refund failed", zap.String("provider", payment.Provider), zap.Error(err))
		return nil, err
	}

	wasCaptured := payment.Status == domain.PaymentCaptured

	now := time.Now()
	meta := map[string]any{
		"refund_ref": refundRef,
	}
	if reason != "" {
		meta["refund_reason"] = reason
	}
	refunded, err := s.paymentRepo.MarkRefunded(ctx, paymentID, meta, now)
	if err != nil {
		return nil, err
	}
	if !refunded {
		return nil, s.transitionConflict(ctx, paymentID, domain.PaymentCaptured)
	}

	if err := s.settleRefund(ctx, payment, wasCaptured); err != nil {
		zap.L().Error("refund settlement incomplete", zap.String("payment_id", paymentID.String()), zap.Error(err))
	}

	payment.Status = domain.PaymentRefunded
	payment.ProcessedAt = &now
	for k, v := range meta {
		payment.Metadata[k] = v
	}
	return payment, nil
}

// settleRefund performs the downstream order and ledger effects of a refund.
// The payment is already REFUNDED at this point; everything here is
// retry-safe via the ledger idempotency keys, so failures are queued rather
// than rolled back.
func (s *Service) settleRefund(ctx context.Context, payment *domain.Payment, wasCaptured bool) error {
	order, err := s.orderRepo.FindByPaymentID(ctx, payment.ID)
	if err != nil {
		return err
	}
	if order == nil {
		return nil
	}

	wasReleased := order.EscrowStatus == domain.EscrowReleased
	if _, err := s.orderRepo.MarkRefunded(ctx, order.ID, order.EscrowStatus); err != nil {
		return err
	}
	if !wasCaptured {
		return nil
	}

	s.appendOrQueue(ctx, &domain.PayoutLedgerEntry{
		UserID:         order.BuyerID,
		OrderID:        order.ID,
		AmountRub:      payment.AmountRub,
		Type:           domain.EntryCredit,
		IdempotencyKey: ledgerKey(payment.ID, "refund", "buyer"),
	})
	if wasReleased {
		s.appendOrQueue(ctx, &domain.PayoutLedgerEntry{
			UserID:         order.SellerID,
			OrderID:        order.ID,
			AmountRub:      payment.AmountRub,
			Type:           domain.EntryDebit,
			IdempotencyKey: ledgerKey(payment.ID, "refund", "seller"),
		})
	}
	return nil
}

// appendOrQueue writes a ledger entry; on failure the entry is queued for the
// settlement worker instead of failing the operation.
func (s *Service) appendOrQueue(ctx context.Context, entry *domain.PayoutLedgerEntry) {
	if err := s.ledgerRepo.Append(ctx, entry); err == nil {
		return
	}
	zap.L().Warn("ledger append failed, queueing retry task", zap.String("key", entry.IdempotencyKey))
	task := &domain.PayoutTask{
		IdempotencyKey: entry.IdempotencyKey,
		UserID:         entry.UserID,
		OrderID:        entry.OrderID,
		AmountRub:      entry.AmountRub,
		EntryType:      entry.Type,
	}
	if err := s.ledgerRepo.EnqueueTask(ctx, task); err != nil {
		zap.L().Error("failed to enqueue payout task", zap.String("key", entry.IdempotencyKey), zap.Error(err))
	}
}

// transitionConflict re-reads the payment to report why a conditional state
// flip matched no rows.
func (s *Service) transitionConflict(ctx context.Context, paymentID uuid.UUID, wanted string) error {
	current, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil || current == nil {
		return fmt.Errorf("%w: payment no longer in expected state", ErrInvalidState)
	}
	if current.Status == domain.PaymentRefunded && wanted == domain.PaymentCaptured {
		return ErrAlreadyRefunded
	}
	return fmt.Errorf("%w: payment is %s", ErrInvalidState, current.Status)
}

func (s *Service) GetPayment(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

func ledgerKey(paymentID uuid.UUID, op, role string) string {
	return paymentID.String() + ":" + op + ":" + role
}
