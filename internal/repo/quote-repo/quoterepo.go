package quoterepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/nstoliar/escrowd/internal/domain"
	"github.com/nstoliar/escrowd/internal/pg"
)

// Repository persists shipping quotes. Quotes are immutable: there is no
// update surface.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, quote *domain.ShippingQuote) error {
	query := `
		INSERT INTO shipping_quotes (id, from_country, to_country, weight_kg, length_cm, width_cm, height_cm,
			chargeable_weight_kg, value_rub, contents, service_level, carrier, insurance_included,
			base_cost_rub, duty_rub, total_cost_rub, estimated_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, quote.ID, quote.FromCountry, quote.ToCountry, quote.WeightKg,
		quote.LengthCm, quote.WidthCm, quote.HeightCm, quote.ChargeableWeightKg, quote.ValueRub,
		quote.Contents, quote.ServiceLevel, quote.Carrier, quote.InsuranceIncluded,
		quote.BaseCostRub, quote.DutyRub, quote.TotalCostRub, quote.EstimatedDays).Scan(&quote.CreatedAt)
	if err != nil {
		zap.L().Error("can't save shipping quote", zap.Error(err))
		return err
	}
	return nil
}
