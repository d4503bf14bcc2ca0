package bookingrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/nstoliar/escrowd/internal/domain"
	"github.com/nstoliar/escrowd/internal/pg"
)

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

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceBooking, error) {
	query := `
        SELECT id, client_id, service_id, provider_profile_id, amount_rub, status, escrow_status, created_at
        FROM service_bookings
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var booking domain.ServiceBooking
	err := row.Scan(&booking.ID, &booking.ClientID, &booking.ServiceID, &booking.ProviderProfileID,
		&booking.AmountRub, &booking.Status, &booking.EscrowStatus, &booking.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find booking", zap.Error(err))
		return nil, err
	}
	return &booking, nil
}

// MarkCompleted flips CONFIRMED to COMPLETED and releases escrow. Returns
// false when the booking was not in CONFIRMED, which covers both wrong
// lifecycle state and a concurrent completion.
func (r *Repository) MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
        UPDATE service_bookings
        SET status = $1, escrow_status = $2
        WHERE id = $3 AND status = $4
    `
	var updated bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, domain.BookingCompleted, domain.EscrowReleased, id, domain.BookingConfirmed)
		if err != nil {
			zap.L().Error("failed to complete booking", zap.Error(err))
			return err
		}
		updated = tag.RowsAffected() == 1
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}
