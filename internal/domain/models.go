package domain

import (
	"time"

	"github.com/google/uuid"
)

// Payment statuses.
const (
	PaymentAuthorized = "AUTHORIZED"
	PaymentCaptured   = "CAPTURED"
	PaymentCancelled  = "CANCELLED"
	PaymentRefunded   = "REFUNDED"
)

// Payment providers.
const (
	ProviderMockpay  = "MOCKPAY"
	ProviderYoomoney = "YOOMONEY"
	ProviderSber     = "SBER"
	ProviderTinkoff  = "TINKOFF"
)

// Order statuses.
const (
	OrderPending    = "PENDING"
	OrderPaid       = "PAID"
	OrderFulfilling = "FULFILLING"
	OrderDelivered  = "DELIVERED"
	OrderCancelled  = "CANCELLED"
)

// Escrow statuses shared by orders and service bookings.
const (
	EscrowHeld     = "HELD"
	EscrowReleased = "RELEASED"
	EscrowRefunded = "REFUNDED"
)

// Group-buy deal statuses.
const (
	DealActive    = "ACTIVE"
	DealCompleted = "COMPLETED"
	DealCancelled = "CANCELLED"
)

// Group-buy pledge statuses.
const (
	PledgePending   = "PENDING"
	PledgeConfirmed = "CONFIRMED"
)

// Service booking statuses.
const (
	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
	BookingCompleted = "COMPLETED"
	BookingCancelled = "CANCELLED"
)

// Payout ledger entry types.
const (
	EntryCredit = "CREDIT"
	EntryDebit  = "DEBIT"
)

// Payout retry task statuses.
const (
	TaskPending = "pending"
	TaskDone    = "done"
	TaskDead    = "dead"
)

type Payment struct {
	ID          uuid.UUID      `db:"id"`
	Provider    string         `db:"provider"`
	ProviderRef string         `db:"provider_ref"`
	AmountRub   int64          `db:"amount_rub"`
	Currency    string         `db:"currency"`
	Status      string         `db:"status"`
	Metadata    map[string]any `db:"metadata"`
	ProcessedAt *time.Time     `db:"processed_at"`
	CreatedAt   time.Time      `db:"created_at"`
}

// Order references exactly one purchase target: a listing, a vendor product
// or a service booking.
type Order struct {
	ID               int64      `db:"id"`
	BuyerID          uuid.UUID  `db:"buyer_id"`
	SellerID         uuid.UUID  `db:"seller_id"`
	ListingID        *int64     `db:"listing_id"`
	VendorProductID  *int64     `db:"vendor_product_id"`
	ServiceBookingID *uuid.UUID `db:"service_booking_id"`
	PaymentID        *uuid.UUID `db:"payment_id"`
	Status           string     `db:"status"`
	EscrowStatus     string     `db:"escrow_status"`
	TotalAmountRub   int64      `db:"total_amount_rub"`
	EscrowAmountRub  int64      `db:"escrow_amount_rub"`
	CreatedAt        time.Time  `db:"created_at"`
}

type GroupBuyDeal struct {
	ID                 int64     `db:"id"`
	VendorProductID    int64     `db:"vendor_product_id"`
	SellerID           uuid.UUID `db:"seller_id"`
	PricePerUnitRub    int64     `db:"price_per_unit_rub"`
	MinQuantity        int       `db:"min_quantity"`
	CurrentQuantity    int       `db:"current_quantity"`
	DiscountPercentage int       `db:"discount_percentage"`
	Status             string    `db:"status"`
	CreatedAt          time.Time `db:"created_at"`
}

type GroupBuyOrder struct {
	ID                int64      `db:"id"`
	DealID            int64      `db:"deal_id"`
	BuyerID           uuid.UUID  `db:"buyer_id"`
	PaymentID         *uuid.UUID `db:"payment_id"`
	Quantity          int        `db:"quantity"`
	PricePerUnitRub   int64      `db:"price_per_unit_rub"`
	TotalAmountRub    int64      `db:"total_amount_rub"`
	DiscountAmountRub int64      `db:"discount_amount_rub"`
	Status            string     `db:"status"`
	OrderID           *int64     `db:"order_id"`
	CreatedAt         time.Time  `db:"created_at"`
}

type ServiceBooking struct {
	ID                uuid.UUID `db:"id"`
	ClientID          uuid.UUID `db:"client_id"`
	ServiceID         int64     `db:"service_id"`
	ProviderProfileID uuid.UUID `db:"provider_profile_id"`
	AmountRub         int64     `db:"amount_rub"`
	Status            string    `db:"status"`
	EscrowStatus      string    `db:"escrow_status"`
	CreatedAt         time.Time `db:"created_at"`
}

// PayoutLedgerEntry rows are append-only: a user's balance is the fold of all
// CREDIT minus DEBIT entries. IdempotencyKey deduplicates retried appends.
type PayoutLedgerEntry struct {
	ID             int64     `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	OrderID        int64     `db:"order_id"`
	AmountRub      int64     `db:"amount_rub"`
	Type           string    `db:"type"`
	IdempotencyKey string    `db:"idempotency_key"`
	CreatedAt      time.Time `db:"created_at"`
}

// PayoutTask is a queued ledger append that failed inline and is retried by
// the settlement worker.
type PayoutTask struct {
	ID             int64     `db:"id"`
	IdempotencyKey string    `db:"idempotency_key"`
	UserID         uuid.UUID `db:"user_id"`
	OrderID        int64     `db:"order_id"`
	AmountRub      int64     `db:"amount_rub"`
	EntryType      string    `db:"entry_type"`
	Status         string    `db:"status"`
	Attempts       int       `db:"attempts"`
	CreatedAt      time.Time `db:"created_at"`
}

type ShippingQuote struct {
	ID                 uuid.UUID `db:"id"`
	FromCountry        string    `db:"from_country"`
	ToCountry          string    `db:"to_country"`
	WeightKg           float64   `db:"weight_kg"`
	LengthCm           float64   `db:"length_cm"`
	WidthCm            float64   `db:"width_cm"`
	HeightCm           float64   `db:"height_cm"`
	ChargeableWeightKg float64   `db:"chargeable_weight_kg"`
	ValueRub           int64     `db:"value_rub"`
	Contents           string    `db:"contents"`
	ServiceLevel       string    `db:"service_level"`
	Carrier            string    `db:"carrier"`
	InsuranceIncluded  bool      `db:"insurance_included"`
	BaseCostRub        int64     `db:"base_cost_rub"`
	DutyRub            int64     `db:"duty_rub"`
	TotalCostRub       int64     `db:"total_cost_rub"`
	EstimatedDays      int       `db:"estimated_days"`
	CreatedAt          time.Time `db:"created_at"`
}
