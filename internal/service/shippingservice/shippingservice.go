package shippingservice

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nstoliar/escrowd/internal/domain"
)

type QuoteRepo interface {
	Create(ctx context.Context, quote *domain.ShippingQuote) error
}

type Service struct {
	repo            QuoteRepo
	domesticCountry string
}

func New(repo QuoteRepo, domesticCountry string) *Service {
	return &Service{
		repo:            repo,
		domesticCountry: domesticCountry,
	}
}

var ErrValidation = errors.New("validation failed")

// Service levels.
const (
	LevelEconomy   = "ECONOMY"
	LevelStandard  = "STANDARD"
	LevelExpress   = "EXPRESS"
	LevelOvernight = "OVERNIGHT"
)

type serviceLevel struct {
	baseRateRub       int64
	transitDays       int
	carrier           string
	insuranceIncluded bool
}

var serviceLevels = map[string]serviceLevel{
	LevelEconomy:   {baseRateRub: 500, transitDays: 21, carrier: "Почта России", insuranceIncluded: false},
	LevelStandard:  {baseRateRub: 800, transitDays: 14, carrier: "СДЭК", insuranceIncluded: true},
	LevelExpress:   {baseRateRub: 1500, transitDays: 7, carrier: "DHL", insuranceIncluded: true},
	LevelOvernight: {baseRateRub: 3000, transitDays: 2, carrier: "DHL Express", insuranceIncluded: true},
}

// Duty tiers on declared value, applied to domestic-bound parcels only.
const (
	dutyFreeThresholdRub = 200
	dutyMidThresholdRub  = 1000
	dutyMidRate          = 0.15
	dutyHighRate         = 0.20
)

// Volumetric divisor: cm³ per chargeable kg.
const volumetricDivisor = 5000

type QuoteInput struct {
	FromCountry  string
	ToCountry    string
	WeightKg     float64
	LengthCm     float64
	WidthCm      float64
	HeightCm     float64
	ValueRub     int64
	Contents     string
	ServiceLevel string
}

// Quote computes a carrier quote and persists it. Quotes are immutable:
// recalculating always produces a new record.
func (s *Service) Quote(ctx context.Context, in QuoteInput) (*domain.ShippingQuote, error) {
	if in.WeightKg <= 0 {
		return nil, fmt.Errorf("%w: weight_kg must be positive", ErrValidation)
	}
	if in.LengthCm <= 0 || in.WidthCm <= 0 || in.HeightCm <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive", ErrValidation)
	}
	if in.ValueRub <= 0 {
		return nil, fmt.Errorf("%w: value_rub must be positive", ErrValidation)
	}

	level := in.ServiceLevel
	if level == "" {
		level = LevelStandard
	}
	rate, ok := serviceLevels[level]
	if !ok {
		return nil, fmt.Errorf("%w: unknown service level %s", ErrValidation, in.ServiceLevel)
	}

	toCountry := in.ToCountry
	if toCountry == "" {
		toCountry = s.domesticCountry
	}

	volumetric := in.LengthCm * in.WidthCm * in.HeightCm / volumetricDivisor
	chargeable := math.Max(in.WeightKg, volumetric)
	baseCost := rate.baseRateRub * int64(math.Ceil(chargeable))
	duty := dutyEstimate(in.ValueRub, toCountry, s.domesticCountry)

	quote := &domain.ShippingQuote{
		ID:                 uuid.New(),
		FromCountry:        in.FromCountry,
		ToCountry:          toCountry,
		WeightKg:           in.WeightKg,
		LengthCm:           in.LengthCm,
		WidthCm:            in.WidthCm,
		HeightCm:           in.HeightCm,
		ChargeableWeightKg: chargeable,
		ValueRub:           in.ValueRub,
		Contents:           in.Contents,
		ServiceLevel:       level,
		Carrier:            rate.carrier,
		InsuranceIncluded:  rate.insuranceIncluded,
		BaseCostRub:        baseCost,
		DutyRub:            duty,
		TotalCostRub:       baseCost + duty,
		EstimatedDays:      rate.transitDays,
	}
	if err := s.repo.Create(ctx, quote); err != nil {
		zap.L().Error("failed to save shipping quote", zap.Error(err))
		return nil, err
	}
	return quote, nil
}

func dutyEstimate(valueRub int64, toCountry, domesticCountry string) int64 {
	if toCountry != domesticCountry {
		return 0
	}
	switch {
	case valueRub <= dutyFreeThresholdRub:
		return 0
	case valueRub <= dutyMidThresholdRub:
		return int64(math.Round(float64(valueRub) * dutyMidRate))
	default:
		return int64(math.Round(float64(valueRub) * dutyHighRate))
	}
}
