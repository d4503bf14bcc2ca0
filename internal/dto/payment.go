package dto

import "time"

type AuthorizeRequestDTO struct {
	AmountRub   int64          `json:"amount_rub" example:"15000" validate:"required,gt=0"`
	Currency    string         `json:"currency,omitempty" example:"RUB" validate:"omitempty,len=3"`
	Provider    string         `json:"provider" example:"MOCKPAY" validate:"required"`
	Description string         `json:"description,omitempty" example:"Order #42"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type AuthorizeResponseDTO struct {
	PaymentID    string `json:"payment_id" example:"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`
	ProviderRef  string `json:"provider_ref" example:"mockpay_x7k2m9p4q1wz"`
	ClientSecret string `json:"client_secret" example:"secret_mockpay_x7k2m9p4q1wz"`
	Status       string `json:"status" example:"AUTHORIZED"`
}

type CaptureRequestDTO struct {
	PaymentID string `json:"payment_id" example:"6ba7b810-9dad-11d1-80b4-00c04fd430c8" validate:"required,uuid"`
	AmountRub *int64 `json:"amount_rub,omitempty" example:"15000" validate:"omitempty,gt=0"`
}

type CaptureResponseDTO struct {
	PaymentID      string `json:"payment_id"`
	CaptureRef     string `json:"capture_ref" example:"cap_mockpay_x7k2m9p4q1wz"`
	CapturedAmount int64  `json:"captured_amount" example:"15000"`
	Status         string `json:"status" example:"CAPTURED"`
}

type RefundRequestDTO struct {
	PaymentID string `json:"payment_id" validate:"required,uuid"`
	Reason    string `json:"reason,omitempty" example:"buyer cancelled"`
}

type RefundResponseDTO struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status" example:"REFUNDED"`
	Reason    string `json:"reason,omitempty"`
}

type PaymentResponseDTO struct {
	PaymentID   string         `json:"payment_id"`
	Provider    string         `json:"provider"`
	ProviderRef string         `json:"provider_ref"`
	AmountRub   int64          `json:"amount_rub"`
	Currency    string         `json:"currency"`
	Status      string         `json:"status"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	ProcessedAt *time.Time     `json:"processed_at,omitempty"`
}
