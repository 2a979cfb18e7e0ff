package orders

import (
	"time"

	"github.com/google/uuid"
)

// Order is one confirmed ticket purchase. The full fee breakdown computed at
// checkout is denormalized onto the row so earnings reports never have to
// re-derive historical figures after a fee-schedule change.
type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Reference   string    `gorm:"unique;not null" json:"reference"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	EventID     uuid.UUID `gorm:"type:uuid;index;not null" json:"event_id"`
	PublisherID uuid.UUID `gorm:"type:uuid;index;not null" json:"publisher_id"`

	Quantity     int     `gorm:"not null" json:"quantity"`
	UnitPrice    float64 `gorm:"not null" json:"unit_price"`
	CurrencyCode string  `gorm:"type:varchar(3);not null" json:"currency_code"`

	// Fee breakdown as computed at purchase time
	Subtotal           float64 `gorm:"not null" json:"subtotal"`
	ProcessorFee       float64 `gorm:"not null" json:"processor_fee"`
	Commission         float64 `gorm:"not null" json:"commission"`
	TotalCharged       float64 `gorm:"not null" json:"total_charged"`
	SellerGrossAmount  float64 `gorm:"not null" json:"seller_gross_amount"`
	RemittanceFee      float64 `gorm:"not null" json:"remittance_fee"`
	SellerNetAmount    float64 `gorm:"not null" json:"seller_net_amount"`
	IsOrganizationSale bool    `gorm:"default:false" json:"is_organization_sale"`

	Status      Status     `gorm:"type:varchar(20);default:'CONFIRMED'" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// EarningsByCurrency aggregates a publisher's confirmed sales in one currency.
type EarningsByCurrency struct {
	CurrencyCode string  `json:"currency_code"`
	OrderCount   int64   `json:"order_count"`
	TicketsSold  int64   `json:"tickets_sold"`
	GrossAmount  float64 `json:"gross_amount"`
	NetAmount    float64 `json:"net_amount"`
}

// EarningsSummary is the publisher dashboard payload.
type EarningsSummary struct {
	PublisherID string               `json:"publisher_id"`
	Currencies  []EarningsByCurrency `json:"currencies"`
	GeneratedAt time.Time            `json:"generated_at"`
}
