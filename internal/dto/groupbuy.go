package dto

type CloseDealRequestDTO struct {
	DealID int64 `json:"deal_id" example:"7" validate:"required,gt=0"`
}

type CloseDealResponseDTO struct {
	DealID             int64  `json:"deal_id"`
	Status             string `json:"status" example:"COMPLETED"`
	TotalOrders        int    `json:"total_orders" example:"12"`
	DiscountPercentage int    `json:"discount_percentage" example:"15"`
	OriginalPrice      int64  `json:"original_price" example:"1000"`
	DiscountedPrice    int64  `json:"discounted_price" example:"850"`
	TotalSavings       int64  `json:"total_savings" example:"1800"`
}

type GroupBuyPledgeDTO struct {
	PledgeID          int64  `json:"pledge_id"`
	BuyerID           string `json:"buyer_id"`
	Quantity          int    `json:"quantity"`
	PricePerUnitRub   int64  `json:"price_per_unit_rub"`
	TotalAmountRub    int64  `json:"total_amount_rub"`
	DiscountAmountRub int64  `json:"discount_amount_rub"`
	Status            string `json:"status"`
	OrderID           *int64 `json:"order_id,omitempty"`
}

type GetDealResponseDTO struct {
	DealID             int64               `json:"deal_id"`
	VendorProductID    int64               `json:"vendor_product_id"`
	PricePerUnitRub    int64               `json:"price_per_unit_rub"`
	MinQuantity        int                 `json:"min_quantity"`
	CurrentQuantity    int                 `json:"current_quantity"`
	DiscountPercentage int                 `json:"discount_percentage"`
	Status             string              `json:"status"`
	Pledges            []GroupBuyPledgeDTO `json:"pledges"`
}
