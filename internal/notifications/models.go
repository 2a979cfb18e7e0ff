package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	TypeOrderConfirmation NotificationType = "order_confirmation"
	TypeSaleNotice        NotificationType = "sale_notice"
	TypeOrderCancelled    NotificationType = "order_cancelled"
)

type NotificationStatus string

const (
	StatusPending NotificationStatus = "pending"
	StatusQueued  NotificationStatus = "queued"
	StatusSent    NotificationStatus = "sent"
	StatusFailed  NotificationStatus = "failed"
)

// PurchaseEvent is what the checkout flow hands to the publisher. One event
// fans out into a buyer confirmation and a seller sale notice.
type PurchaseEvent struct {
	OrderID        string    `json:"order_id"`
	OrderReference string    `json:"order_reference"`
	EventID        string    `json:"event_id"`
	EventName      string    `json:"event_name"`
	BuyerID        string    `json:"buyer_id"`
	BuyerEmail     string    `json:"buyer_email"`
	BuyerName      string    `json:"buyer_name"`
	SellerID       string    `json:"seller_id"`
	SellerEmail    string    `json:"seller_email"`
	SellerName     string    `json:"seller_name"`
	Quantity       int       `json:"quantity"`
	CurrencyCode   string    `json:"currency_code"`
	TotalCharged   float64   `json:"total_charged"`
	SellerNet      float64   `json:"seller_net"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EmailNotification is the message that travels through Kafka to the
// consumer workers.
type EmailNotification struct {
	ID             uuid.UUID              `json:"id"`
	Type           NotificationType       `json:"type"`
	RecipientID    string                 `json:"recipient_id"`
	RecipientEmail string                 `json:"recipient_email"`
	RecipientName  string                 `json:"recipient_name"`
	Subject        string                 `json:"subject"`
	TemplateData   map[string]interface{} `json:"template_data"`
	Status         NotificationStatus     `json:"status"`
	RetryCount     int                    `json:"retry_count"`
	MaxRetries     int                    `json:"max_retries"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// GetPartitionKey routes all notifications for one recipient to the same
// partition so they are delivered in order.
func (en *EmailNotification) GetPartitionKey() string {
	return en.RecipientID
}

func (en *EmailNotification) ToJSON() ([]byte, error) {
	return json.Marshal(en)
}

func (en *EmailNotification) ShouldRetry() bool {
	return en.RetryCount < en.MaxRetries
}

func (en *EmailNotification) MarkSent() {
	en.Status = StatusSent
	en.UpdatedAt = time.Now()
}

func (en *EmailNotification) MarkFailed() {
	en.Status = StatusFailed
	en.UpdatedAt = time.Now()
}

// notificationsFromPurchase builds the buyer and seller messages for one sale.
func notificationsFromPurchase(purchase PurchaseEvent) []*EmailNotification {
	now := time.Now()

	common := map[string]interface{}{
		"order_reference": purchase.OrderReference,
		"event_name":      purchase.EventName,
		"quantity":        purchase.Quantity,
		"currency_code":   purchase.CurrencyCode,
	}

	buyerData := map[string]interface{}{"total_charged": purchase.TotalCharged}
	sellerData := map[string]interface{}{"seller_net": purchase.SellerNet}
	for k, v := range common {
		buyerData[k] = v
		sellerData[k] = v
	}

	return []*EmailNotification{
		{
			ID:             uuid.New(),
			Type:           TypeOrderConfirmation,
			RecipientID:    purchase.BuyerID,
			RecipientEmail: purchase.BuyerEmail,
			RecipientName:  purchase.BuyerName,
			Subject:        "Your tickets for " + purchase.EventName,
			TemplateData:   buyerData,
			Status:         StatusPending,
			MaxRetries:     3,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:             uuid.New(),
			Type:           TypeSaleNotice,
			RecipientID:    purchase.SellerID,
			RecipientEmail: purchase.SellerEmail,
			RecipientName:  purchase.SellerName,
			Subject:        "You sold tickets for " + purchase.EventName,
			TemplateData:   sellerData,
			Status:         StatusPending,
			MaxRetries:     3,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}
}
