package dto

type DimensionsDTO struct {
	LengthCm float64 `json:"length_cm" example:"40" validate:"required,gt=0"`
	WidthCm  float64 `json:"width_cm" example:"30" validate:"required,gt=0"`
	HeightCm float64 `json:"height_cm" example:"20" validate:"required,gt=0"`
}

type ShippingQuoteRequestDTO struct {
	FromCountry  string        `json:"from_country" example:"CN" validate:"required,len=2"`
	ToCountry    string        `json:"to_country,omitempty" example:"RU" validate:"omitempty,len=2"`
	WeightKg     float64       `json:"weight_kg" example:"2" validate:"required,gt=0"`
	Dimensions   DimensionsDTO `json:"dimensions" validate:"required"`
	ValueRub     int64         `json:"value_rub" example:"500" validate:"required,gt=0"`
	Contents     string        `json:"contents" example:"electronics" validate:"required"`
	ServiceLevel string        `json:"service_level,omitempty" example:"STANDARD" validate:"omitempty,oneof=ECONOMY STANDARD EXPRESS OVERNIGHT"`
}

type ShippingQuoteResponseDTO struct {
	QuoteID            string  `json:"quote_id"`
	ChargeableWeightKg float64 `json:"chargeable_weight_kg" example:"4.8"`
	BaseCostRub        int64   `json:"base_cost_rub" example:"4000"`
	DutyEstimateRub    int64   `json:"duty_estimate_rub" example:"75"`
	TotalCostRub       int64   `json:"total_cost_rub" example:"4075"`
	EstimatedDays      int     `json:"estimated_days" example:"14"`
	Carrier            string  `json:"carrier" example:"СДЭК"`
	InsuranceIncluded  bool    `json:"insurance_included" example:"true"`
}
