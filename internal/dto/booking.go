package dto

type CompleteBookingRequestDTO struct {
	BookingID string `json:"booking_id" example:"6ba7b810-9dad-11d1-80b4-00c04fd430c8" validate:"required,uuid"`
}

type CompleteBookingResponseDTO struct {
	BookingID    string `json:"booking_id"`
	OrderID      int64  `json:"order_id" example:"42"`
	Status       string `json:"status" example:"COMPLETED"`
	EscrowStatus string `json:"escrow_status" example:"RELEASED"`
	Amount       int64  `json:"amount" example:"5000"`
}
