package notifications

import (
	"encoding/json"
	"testing"
	"time"
)

func samplePurchase() PurchaseEvent {
	return PurchaseEvent{
		OrderID:        "8f0c2b6e-0000-0000-0000-000000000001",
		OrderReference: "TKT-20260830-ABC123",
		EventID:        "8f0c2b6e-0000-0000-0000-000000000002",
		EventName:      "Cape Town Jazz Night",
		BuyerID:        "buyer-1",
		BuyerEmail:     "buyer@example.com",
		BuyerName:      "Amina Okafor",
		SellerID:       "seller-1",
		SellerEmail:    "seller@example.com",
		SellerName:     "Thandi Dlamini",
		Quantity:       2,
		CurrencyCode:   "ZAR",
		TotalCharged:   218.80,
		SellerNet:      187.15,
		OccurredAt:     time.Now(),
	}
}

func TestNotificationsFromPurchaseFanOut(t *testing.T) {
	messages := notificationsFromPurchase(samplePurchase())

	if len(messages) != 2 {
		t.Fatalf("fan-out produced %d messages, want 2", len(messages))
	}

	buyer, seller := messages[0], messages[1]

	if buyer.Type != TypeOrderConfirmation {
		t.Errorf("first message type = %s, want order_confirmation", buyer.Type)
	}
	if buyer.RecipientEmail != "buyer@example.com" {
		t.Errorf("buyer recipient = %s", buyer.RecipientEmail)
	}
	if _, ok := buyer.TemplateData["total_charged"]; !ok {
		t.Error("buyer message missing total_charged")
	}
	if _, ok := buyer.TemplateData["seller_net"]; ok {
		t.Error("buyer message leaks seller_net")
	}

	if seller.Type != TypeSaleNotice {
		t.Errorf("second message type = %s, want sale_notice", seller.Type)
	}
	if seller.RecipientEmail != "seller@example.com" {
		t.Errorf("seller recipient = %s", seller.RecipientEmail)
	}
	if _, ok := seller.TemplateData["seller_net"]; !ok {
		t.Error("seller message missing seller_net")
	}
	if _, ok := seller.TemplateData["total_charged"]; ok {
		t.Error("seller message leaks the buyer total")
	}

	for _, msg := range messages {
		if msg.Status != StatusPending {
			t.Errorf("new message status = %s, want pending", msg.Status)
		}
		if msg.MaxRetries != 3 {
			t.Errorf("max retries = %d, want 3", msg.MaxRetries)
		}
		if msg.GetPartitionKey() != msg.RecipientID {
			t.Error("partition key must be the recipient ID")
		}
	}
}

func TestEmailNotificationRoundTrip(t *testing.T) {
	original := notificationsFromPurchase(samplePurchase())[0]

	data, err := original.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON returned error: %v", err)
	}

	var decoded EmailNotification
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to decode message: %v", err)
	}
	if decoded.ID != original.ID || decoded.Type != original.Type || decoded.Subject != original.Subject {
		t.Error("decoded message does not match original")
	}
}

func TestEmailNotificationRetryBookkeeping(t *testing.T) {
	msg := &EmailNotification{MaxRetries: 3}

	for i := 0; i < 3; i++ {
		if !msg.ShouldRetry() {
			t.Fatalf("ShouldRetry = false after %d attempts, want true", i)
		}
		msg.RetryCount++
	}
	if msg.ShouldRetry() {
		t.Error("ShouldRetry = true after exhausting retries")
	}

	msg.MarkFailed()
	if msg.Status != StatusFailed {
		t.Errorf("status = %s, want failed", msg.Status)
	}
	msg.MarkSent()
	if msg.Status != StatusSent {
		t.Errorf("status = %s, want sent", msg.Status)
	}
}
