package orders

// checkout request; displayed_total is the total the frontend showed the
// buyer and is re-verified server-side before anything is persisted
type CreateOrderRequest struct {
	EventID        string  `json:"event_id" binding:"required,uuid"`
	Quantity       int     `json:"quantity" binding:"required,min=1,max=20"`
	DisplayedTotal float64 `json:"displayed_total" binding:"required,min=0"`
}

type OrderListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=CONFIRMED CANCELLED"`
}
