package groupbuyrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/nstoliar/escrowd/internal/domain"
	"github.com/nstoliar/escrowd/internal/pg"
)

const pledgeColumns = `id, deal_id, buyer_id, payment_id, quantity, price_per_unit_rub,
        total_amount_rub, discount_amount_rub, status, order_id, created_at`

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

func (r *Repository) GetDeal(ctx context.Context, dealID int64) (*domain.GroupBuyDeal, error) {
	query := `
        SELECT id, vendor_product_id, seller_id, price_per_unit_rub, min_quantity,
            current_quantity, discount_percentage, status, created_at
        FROM group_buy_deals
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, dealID)

	var deal domain.GroupBuyDeal
	err := row.Scan(&deal.ID, &deal.VendorProductID, &deal.SellerID, &deal.PricePerUnitRub,
		&deal.MinQuantity, &deal.CurrentQuantity, &deal.DiscountPercentage, &deal.Status, &deal.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find deal", zap.Error(err))
		return nil, err
	}
	return &deal, nil
}

// CompleteAndReprice atomically flips the deal from ACTIVE to COMPLETED and
// confirms all pending pledges at the discounted price. The flip is keyed on
// the current status and the quantity threshold, so a concurrent close loses
// and gets ok=false with no pledges touched.
func (r *Repository) CompleteAndReprice(ctx context.Context, dealID, discountedPrice, discountPerUnit int64) ([]domain.GroupBuyOrder, bool, error) {
	completeQuery := `
        UPDATE group_buy_deals
        SET status = $1
        WHERE id = $2 AND status = $3 AND current_quantity >= min_quantity
    `
	confirmQuery := `
        UPDATE group_buy_orders
        SET price_per_unit_rub = $1,
            total_amount_rub = $1 * quantity,
            discount_amount_rub = $2 * quantity,
            status = $3
        WHERE deal_id = $4 AND status = $5
        RETURNING ` + pledgeColumns + `
    `
	var confirmed []domain.GroupBuyOrder
	var completed bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, completeQuery, domain.DealCompleted, dealID, domain.DealActive)
		if err != nil {
			zap.L().Error("failed to complete deal", zap.Error(err))
			return err
		}
		if tag.RowsAffected() != 1 {
			return nil
		}
		completed = true

		rows, err := r.db.Query(ctx, confirmQuery, discountedPrice, discountPerUnit, domain.PledgeConfirmed, dealID, domain.PledgePending)
		if err != nil {
			zap.L().Error("failed to confirm pledges", zap.Error(err))
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var pledge domain.GroupBuyOrder
			err := rows.Scan(&pledge.ID, &pledge.DealID, &pledge.BuyerID, &pledge.PaymentID,
				&pledge.Quantity, &pledge.PricePerUnitRub, &pledge.TotalAmountRub,
				&pledge.DiscountAmountRub, &pledge.Status, &pledge.OrderID, &pledge.CreatedAt)
			if err != nil {
				zap.L().Error("can't scan pledge row", zap.Error(err))
				return err
			}
			confirmed = append(confirmed, pledge)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, false, err
	}
	return confirmed, completed, nil
}

func (r *Repository) ListOrders(ctx context.Context, dealID int64) ([]domain.GroupBuyOrder, error) {
	query := `
        SELECT ` + pledgeColumns + `
        FROM group_buy_orders
        WHERE deal_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, dealID)
	if err != nil {
		zap.L().Error("can't get pledges", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var pledges []domain.GroupBuyOrder
	for rows.Next() {
		var pledge domain.GroupBuyOrder
		err := rows.Scan(&pledge.ID, &pledge.DealID, &pledge.BuyerID, &pledge.PaymentID,
			&pledge.Quantity, &pledge.PricePerUnitRub, &pledge.TotalAmountRub,
			&pledge.DiscountAmountRub, &pledge.Status, &pledge.OrderID, &pledge.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan pledge row", zap.Error(err))
			return nil, err
		}
		pledges = append(pledges, pledge)
	}
	return pledges, rows.Err()
}

// LinkOrder back-links a confirmed pledge to the order synthesized for it.
func (r *Repository) LinkOrder(ctx context.Context, pledgeID, orderID int64) error {
	query := `
        UPDATE group_buy_orders
        SET order_id = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, orderID, pledgeID)
	if err != nil {
		zap.L().Error("failed to link order to pledge", zap.Error(err))
		return err
	}
	return nil
}
