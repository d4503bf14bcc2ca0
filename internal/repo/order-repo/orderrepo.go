package orderrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/nstoliar/escrowd/internal/domain"
	"github.com/nstoliar/escrowd/internal/pg"
)

const orderColumns = `id, buyer_id, seller_id, listing_id, vendor_product_id, service_booking_id,
        payment_id, status, escrow_status, total_amount_rub, escrow_amount_rub, created_at`

// Repository owns the orders table. Status and escrow_status are written only
// through the transition methods, each keyed on the expected prior state.
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

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(&order.ID, &order.BuyerID, &order.SellerID, &order.ListingID,
		&order.VendorProductID, &order.ServiceBookingID, &order.PaymentID,
		&order.Status, &order.EscrowStatus, &order.TotalAmountRub, &order.EscrowAmountRub, &order.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't scan order row", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *Repository) Create(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (buyer_id, seller_id, listing_id, vendor_product_id, service_booking_id,
            payment_id, status, escrow_status, total_amount_rub, escrow_amount_rub)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, order.BuyerID, order.SellerID, order.ListingID,
			order.VendorProductID, order.ServiceBookingID, order.PaymentID,
			order.Status, order.EscrowStatus, order.TotalAmountRub, order.EscrowAmountRub)
		if err := row.Scan(&order.ID, &order.CreatedAt); err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByPaymentID(ctx context.Context, paymentID uuid.UUID) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE payment_id = $1
    `
	return scanOrder(r.db.QueryRow(ctx, query, paymentID))
}

func (r *Repository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE service_booking_id = $1
    `
	return scanOrder(r.db.QueryRow(ctx, query, bookingID))
}

// MarkPaid moves a pending order with held escrow to PAID after its payment
// was captured.
func (r *Repository) MarkPaid(ctx context.Context, orderID int64) (bool, error) {
	query := `
        UPDATE orders
        SET status = $1
        WHERE id = $2 AND status = $3 AND escrow_status = $4
    `
	var updated bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, domain.OrderPaid, orderID, domain.OrderPending, domain.EscrowHeld)
		if err != nil {
			zap.L().Error("failed to mark order paid", zap.Error(err))
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

// MarkRefunded cancels the order and flips escrow from the expected prior
// status to REFUNDED.
func (r *Repository) MarkRefunded(ctx context.Context, orderID int64, fromEscrow string) (bool, error) {
	query := `
        UPDATE orders
        SET status = $1, escrow_status = $2
        WHERE id = $3 AND escrow_status = $4
    `
	var updated bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, domain.OrderCancelled, domain.EscrowRefunded, orderID, fromEscrow)
		if err != nil {
			zap.L().Error("failed to mark order refunded", zap.Error(err))
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

// MarkDelivered releases escrow for a completed order.
func (r *Repository) MarkDelivered(ctx context.Context, orderID int64) (bool, error) {
	query := `
        UPDATE orders
        SET status = $1, escrow_status = $2
        WHERE id = $3 AND escrow_status = $4
    `
	var updated bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, domain.OrderDelivered, domain.EscrowReleased, orderID, domain.EscrowHeld)
		if err != nil {
			zap.L().Error("failed to mark order delivered", zap.Error(err))
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

func (r *Repository) LinkPayment(ctx context.Context, orderID int64, paymentID uuid.UUID) error {
	query := `
        UPDATE orders
        SET payment_id = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, paymentID, orderID)
	if err != nil {
		zap.L().Error("failed to link payment to order", zap.Error(err))
		return err
	}
	return nil
}
