package bookingservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nstoliar/escrowd/internal/domain"
)

type BookingRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceBooking, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error)
}

type OrderRepo interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*domain.Order, error)
	MarkDelivered(ctx context.Context, orderID int64) (bool, error)
	LinkPayment(ctx context.Context, orderID int64, paymentID uuid.UUID) error
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) error
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.PayoutLedgerEntry) error
	EnqueueTask(ctx context.Context, task *domain.PayoutTask) error
}

type Service struct {
	bookingRepo BookingRepo
	orderRepo   OrderRepo
	paymentRepo PaymentRepo
	ledgerRepo  LedgerRepo
}

func New(bookingRepo BookingRepo, orderRepo OrderRepo, paymentRepo PaymentRepo, ledgerRepo LedgerRepo) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		ledgerRepo:  ledgerRepo,
	}
}

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidState    = errors.New("invalid booking state")
)

type CompleteBookingResult struct {
	BookingID    uuid.UUID
	OrderID      int64
	Status       string
	EscrowStatus string
	AmountRub    int64
}

// CompleteBooking finishes a confirmed booking: the booking flips to
// COMPLETED with escrow released, its order is upserted to DELIVERED, a
// CAPTURED payment records the out-of-band charge taken at booking time, and
// the provider is credited. The ledger credit is best-effort and retried by
// the settlement worker on failure.
func (s *Service) CompleteBooking(ctx context.Context, bookingID uuid.UUID) (*CompleteBookingResult, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status != domain.BookingConfirmed {
		return nil, fmt.Errorf("%w: booking is %s, want %s", ErrInvalidState, booking.Status, domain.BookingConfirmed)
	}

	completed, err := s.bookingRepo.MarkCompleted(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, fmt.Errorf("%w: booking is no longer %s", ErrInvalidState, domain.BookingConfirmed)
	}

	order, err := s.resolveOrder(ctx, booking)
	if err != nil {
		return nil, err
	}

	s.recordCharge(ctx, booking, order)

	if err := s.ledgerRepo.Append(ctx, &domain.PayoutLedgerEntry{
		UserID:         booking.ProviderProfileID,
		OrderID:        order.ID,
		AmountRub:      booking.AmountRub,
		Type:           domain.EntryCredit,
		IdempotencyKey: ledgerKey(bookingID),
	}); err != nil {
		zap.L().Warn("provider credit failed, queueing retry task", zap.String("booking_id", bookingID.String()))
		task := &domain.PayoutTask{
			IdempotencyKey: ledgerKey(bookingID),
			UserID:         booking.ProviderProfileID,
			OrderID:        order.ID,
			AmountRub:      booking.AmountRub,
			EntryType:      domain.EntryCredit,
		}
		if err := s.ledgerRepo.EnqueueTask(ctx, task); err != nil {
			zap.L().Error("failed to enqueue payout task", zap.String("booking_id", bookingID.String()), zap.Error(err))
		}
	}

	return &CompleteBookingResult{
		BookingID:    bookingID,
		OrderID:      order.ID,
		Status:       domain.BookingCompleted,
		EscrowStatus: domain.EscrowReleased,
		AmountRub:    booking.AmountRub,
	}, nil
}

// resolveOrder is upsert-shaped: an existing order for the booking is marked
// delivered, otherwise one is created already delivered and released.
func (s *Service) resolveOrder(ctx context.Context, booking *domain.ServiceBooking) (*domain.Order, error) {
	order, err := s.orderRepo.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	if order != nil {
		if _, err := s.orderRepo.MarkDelivered(ctx, order.ID); err != nil {
			return nil, err
		}
		order.Status = domain.OrderDelivered
		order.EscrowStatus = domain.EscrowReleased
		return order, nil
	}

	bookingID := booking.ID
	order = &domain.Order{
		BuyerID:          booking.ClientID,
		SellerID:         booking.ProviderProfileID,
		ServiceBookingID: &bookingID,
		Status:           domain.OrderDelivered,
		EscrowStatus:     domain.EscrowReleased,
		TotalAmountRub:   booking.AmountRub,
		EscrowAmountRub:  booking.AmountRub,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		zap.L().Error("can't create order for booking", zap.String("booking_id", booking.ID.String()), zap.Error(err))
		return nil, err
	}
	return order, nil
}

// recordCharge persists a CAPTURED payment modeling the charge that happened
// out of band at booking time. Failure is logged, not fatal: the booking is
// already settled and the record can be reconciled later.
func (s *Service) recordCharge(ctx context.Context, booking *domain.ServiceBooking, order *domain.Order) {
	now := time.Now()
	payment := &domain.Payment{
		ID:          uuid.New(),
		Provider:    domain.ProviderMockpay,
		ProviderRef: "booking_" + booking.ID.String(),
		AmountRub:   booking.AmountRub,
		Currency:    "RUB",
		Status:      domain.PaymentCaptured,
		Metadata: map[string]any{
			"service_booking_id": booking.ID.String(),
		},
		ProcessedAt: &now,
		CreatedAt:   now,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		zap.L().Error("failed to record booking charge", zap.String("booking_id", booking.ID.String()), zap.Error(err))
		return
	}
	if err := s.orderRepo.LinkPayment(ctx, order.ID, payment.ID); err != nil {
		zap.L().Error("failed to link booking charge to order", zap.Int64("order_id", order.ID), zap.Error(err))
	}
}

func ledgerKey(bookingID uuid.UUID) string {
	return bookingID.String() + ":complete:provider"
}
