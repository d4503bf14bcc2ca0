package shippingservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nstoliar/escrowd/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockQuoteRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockQuoteRepo(ctrl)
	service := New(repo, "RU")
	return service, repo
}

func baseInput() QuoteInput {
	return QuoteInput{
		FromCountry: "CN",
		ToCountry:   "RU",
		WeightKg:    2,
		LengthCm:    40,
		WidthCm:     30,
		HeightCm:    20,
		ValueRub:    500,
		Contents:    "electronics",
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(in *QuoteInput)
		persisted     bool
		expectedError error
		check         func(t *testing.T, q *domain.ShippingQuote)
	}{
		{
			name:          "Non-positive weight",
			mutate:        func(in *QuoteInput) { in.WeightKg = 0 },
			expectedError: ErrValidation,
		},
		{
			name:          "Non-positive dimension",
			mutate:        func(in *QuoteInput) { in.HeightCm = -1 },
			expectedError: ErrValidation,
		},
		{
			name:          "Non-positive value",
			mutate:        func(in *QuoteInput) { in.ValueRub = 0 },
			expectedError: ErrValidation,
		},
		{
			name:          "Unknown service level",
			mutate:        func(in *QuoteInput) { in.ServiceLevel = "TELEPORT" },
			expectedError: ErrValidation,
		},
		{
			name:      "Volumetric weight dominates",
			mutate:    func(in *QuoteInput) {},
			persisted: true,
			check: func(t *testing.T, q *domain.ShippingQuote) {
				// 40*30*20/5000 = 4.8 beats the 2 kg actual weight.
				assert.Equal(t, 4.8, q.ChargeableWeightKg)
				assert.Equal(t, LevelStandard, q.ServiceLevel)
				assert.Equal(t, int64(4000), q.BaseCostRub)
				assert.Equal(t, int64(75), q.DutyRub)
				assert.Equal(t, int64(4075), q.TotalCostRub)
				assert.Equal(t, 14, q.EstimatedDays)
				assert.Equal(t, "СДЭК", q.Carrier)
				assert.True(t, q.InsuranceIncluded)
			},
		},
		{
			name: "Actual weight dominates",
			mutate: func(in *QuoteInput) {
				in.WeightKg = 10
			},
			persisted: true,
			check: func(t *testing.T, q *domain.ShippingQuote) {
				assert.Equal(t, 10.0, q.ChargeableWeightKg)
				assert.Equal(t, int64(8000), q.BaseCostRub)
			},
		},
		{
			name: "Empty destination defaults to domestic",
			mutate: func(in *QuoteInput) {
				in.ToCountry = ""
			},
			persisted: true,
			check: func(t *testing.T, q *domain.ShippingQuote) {
				assert.Equal(t, "RU", q.ToCountry)
				assert.Equal(t, int64(75), q.DutyRub)
			},
		},
		{
			name: "No duty on foreign-bound parcels",
			mutate: func(in *QuoteInput) {
				in.ToCountry = "KZ"
				in.ValueRub = 5000
			},
			persisted: true,
			check: func(t *testing.T, q *domain.ShippingQuote) {
				assert.Equal(t, int64(0), q.DutyRub)
				assert.Equal(t, q.BaseCostRub, q.TotalCostRub)
			},
		},
		{
			name: "Duty-free tier",
			mutate: func(in *QuoteInput) {
				in.ValueRub = 200
			},
			persisted: true,
			check: func(t *testing.T, q *domain.ShippingQuote) {
				assert.Equal(t, int64(0), q.DutyRub)
			},
		},
		{
			name: "Mid duty tier boundary",
			mutate: func(in *QuoteInput) {
				in.ValueRub = 1000
			},
			persisted: true,
			check: func(t *testing.T, q *domain.ShippingQuote) {
				assert.Equal(t, int64(150), q.DutyRub)
			},
		},
		{
			name: "High duty tier",
			mutate: func(in *QuoteInput) {
				in.ValueRub = 2000
			},
			persisted: true,
			check: func(t *testing.T, q *domain.ShippingQuote) {
				assert.Equal(t, int64(400), q.DutyRub)
			},
		},
		{
			name: "Economy has no insurance",
			mutate: func(in *QuoteInput) {
				in.ServiceLevel = LevelEconomy
			},
			persisted: true,
			check: func(t *testing.T, q *domain.ShippingQuote) {
				assert.False(t, q.InsuranceIncluded)
				assert.Equal(t, "Почта России", q.Carrier)
				assert.Equal(t, int64(2500), q.BaseCostRub)
				assert.Equal(t, 21, q.EstimatedDays)
			},
		},
		{
			name: "Overnight pricing",
			mutate: func(in *QuoteInput) {
				in.ServiceLevel = LevelOvernight
			},
			persisted: true,
			check: func(t *testing.T, q *domain.ShippingQuote) {
				assert.Equal(t, int64(15000), q.BaseCostRub)
				assert.Equal(t, 2, q.EstimatedDays)
				assert.Equal(t, "DHL Express", q.Carrier)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			in := baseInput()
			tt.mutate(&in)
			if tt.persisted {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			}

			quote, err := service.Quote(context.Background(), in)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, quote)
			} else {
				assert.NoError(t, err)
				tt.check(t, quote)
			}
		})
	}
}

func TestQuotePersistFailure(t *testing.T) {
	service, repo := NewMock(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

	quote, err := service.Quote(context.Background(), baseInput())
	assert.Error(t, err)
	assert.Nil(t, quote)
}
