package orders

import "time"

// order confirmation returned to the buyer; seller-side figures are omitted
type OrderResponse struct {
	ID           string    `json:"id"`
	Reference    string    `json:"reference"`
	EventID      string    `json:"event_id"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unit_price"`
	CurrencyCode string    `json:"currency_code"`
	Subtotal     float64   `json:"subtotal"`
	ProcessorFee float64   `json:"processor_fee"`
	Commission   float64   `json:"commission"`
	TotalCharged float64   `json:"total_charged"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// publisher-facing view of a sale, including payout figures
type SaleResponse struct {
	ID              string    `json:"id"`
	Reference       string    `json:"reference"`
	EventID         string    `json:"event_id"`
	Quantity        int       `json:"quantity"`
	CurrencyCode    string    `json:"currency_code"`
	Subtotal        float64   `json:"subtotal"`
	Commission      float64   `json:"commission"`
	RemittanceFee   float64   `json:"remittance_fee"`
	SellerNetAmount float64   `json:"seller_net_amount"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type PaginatedOrders struct {
	Orders     []OrderResponse `json:"orders"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}

func (o *Order) ToResponse() OrderResponse {
	return OrderResponse{
		ID:           o.ID.String(),
		Reference:    o.Reference,
		EventID:      o.EventID.String(),
		Quantity:     o.Quantity,
		UnitPrice:    o.UnitPrice,
		CurrencyCode: o.CurrencyCode,
		Subtotal:     o.Subtotal,
		ProcessorFee: o.ProcessorFee,
		Commission:   o.Commission,
		TotalCharged: o.TotalCharged,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
	}
}

func (o *Order) ToSaleResponse() SaleResponse {
	return SaleResponse{
		ID:              o.ID.String(),
		Reference:       o.Reference,
		EventID:         o.EventID.String(),
		Quantity:        o.Quantity,
		CurrencyCode:    o.CurrencyCode,
		Subtotal:        o.Subtotal,
		Commission:      o.Commission,
		RemittanceFee:   o.RemittanceFee,
		SellerNetAmount: o.SellerNetAmount,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
	}
}
