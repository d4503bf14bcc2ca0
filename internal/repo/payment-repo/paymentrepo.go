package paymentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/nstoliar/escrowd/internal/domain"
	"github.com/nstoliar/escrowd/internal/pg"
)

// Repository owns the payments table. Status is only ever changed through the
// conditional transition methods below, keyed on the expected prior status.
type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
        INSERT INTO payments (id, provider, provider_ref, amount_rub, currency, status, metadata, processed_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			payment.ID, payment.Provider, payment.ProviderRef, payment.AmountRub,
			payment.Currency, payment.Status, payment.Metadata, payment.ProcessedAt, payment.CreatedAt)
		if err != nil {
			zap.L().Error("can't save payment", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	query := `
        SELECT id, provider, provider_ref, amount_rub, currency, status, metadata, processed_at, created_at
        FROM payments
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var payment domain.Payment
	err := row.Scan(&payment.ID, &payment.Provider, &payment.ProviderRef, &payment.AmountRub,
		&payment.Currency, &payment.Status, &payment.Metadata, &payment.ProcessedAt, &payment.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return &payment, nil
}

// MarkCaptured flips AUTHORIZED to CAPTURED and merges meta into the payment
// metadata in the same statement. Returns false when no row was in the
// expected status, which is how a losing concurrent capture is detected.
func (r *Repository) MarkCaptured(ctx context.Context, id uuid.UUID, meta map[string]any, processedAt time.Time) (bool, error) {
	query := `
        UPDATE payments
        SET status = $1, processed_at = $2, metadata = metadata || $3
        WHERE id = $4 AND status = $5
    `
	var captured bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, domain.PaymentCaptured, processedAt, meta, id, domain.PaymentAuthorized)
		if err != nil {
			zap.L().Error("failed to capture payment", zap.Error(err))
			return err
		}
		captured = tag.RowsAffected() == 1
		return nil
	})
	if err != nil {
		return false, err
	}
	return captured, nil
}

// MarkRefunded flips AUTHORIZED or CAPTURED to REFUNDED. A payment already in
// REFUNDED never matches, so refunds cannot be applied twice.
func (r *Repository) MarkRefunded(ctx context.Context, id uuid.UUID, meta map[string]any, processedAt time.Time) (bool, error) {
	query := `
        UPDATE payments
        SET status = $1, processed_at = $2, metadata = metadata || $3
        WHERE id = $4 AND status IN ($5, $6)
    `
	var refunded bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, domain.PaymentRefunded, processedAt, meta, id,
			domain.PaymentAuthorized, domain.PaymentCaptured)
		if err != nil {
			zap.L().Error("failed to refund payment", zap.Error(err))
			return err
		}
		refunded = tag.RowsAffected() == 1
		return nil
	})
	if err != nil {
		return false, err
	}
	return refunded, nil
}
