package orders

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ticketly/internal/auth"
	"ticketly/internal/events"
	"ticketly/internal/fees"
)

// fakeRepository keeps orders in memory and runs transactions inline.
type fakeRepository struct {
	orders  map[uuid.UUID]*Order
	created []*Order
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{orders: make(map[uuid.UUID]*Order)}
}

func (r *fakeRepository) Create(ctx context.Context, tx *gorm.DB, order *Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now()
	r.orders[order.ID] = order
	r.created = append(r.created, order)
	return nil
}

func (r *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *fakeRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status Status, cancelledAt *time.Time) error {
	order, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	order.CancelledAt = cancelledAt
	return nil
}

func (r *fakeRepository) GetUserOrders(ctx context.Context, userID uuid.UUID, query OrderListQuery) ([]Order, int64, error) {
	var results []Order
	for _, order := range r.orders {
		if order.UserID == userID {
			results = append(results, *order)
		}
	}
	return results, int64(len(results)), nil
}

func (r *fakeRepository) GetPublisherSales(ctx context.Context, publisherID uuid.UUID, query OrderListQuery) ([]Order, int64, error) {
	var results []Order
	for _, order := range r.orders {
		if order.PublisherID == publisherID {
			results = append(results, *order)
		}
	}
	return results, int64(len(results)), nil
}

func (r *fakeRepository) GetPublisherEarnings(ctx context.Context, publisherID uuid.UUID) ([]EarningsByCurrency, error) {
	return nil, nil
}

func (r *fakeRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

// fakeEventService overrides only the checkout-facing methods; the embedded
// nil interface panics on anything else, which would mean the service grew a
// dependency this test does not know about.
type fakeEventService struct {
	events.Service

	event         *events.Event
	available     bool
	adjustments   []int
	invalidations []uuid.UUID
}

func (f *fakeEventService) GetEventForCheckout(eventID uuid.UUID) (*events.Event, error) {
	if f.event == nil || f.event.ID != eventID {
		return nil, events.ErrEventNotFound
	}
	return f.event, nil
}

func (f *fakeEventService) CheckEventAvailability(eventID uuid.UUID, ticketCount int) (bool, error) {
	return f.available, nil
}

func (f *fakeEventService) AdjustBookedCount(tx *gorm.DB, eventID uuid.UUID, delta int) error {
	f.adjustments = append(f.adjustments, delta)
	return nil
}

func (f *fakeEventService) InvalidateEventCache(ctx context.Context, eventID uuid.UUID) {
	f.invalidations = append(f.invalidations, eventID)
}

func (f *fakeEventService) GetEventByID(id uuid.UUID) (*events.EventResponse, error) {
	if f.event == nil || f.event.ID != id {
		return nil, events.ErrEventNotFound
	}
	return &events.EventResponse{
		ID:       f.event.ID.String(),
		DateTime: f.event.DateTime,
	}, nil
}

type fakeSellerDirectory struct {
	profile *auth.SellerProfile
}

func (f *fakeSellerDirectory) GetSellerProfile(ctx context.Context, userID uuid.UUID) (*auth.SellerProfile, error) {
	if f.profile == nil {
		return nil, errors.New("no such seller")
	}
	return f.profile, nil
}

func (f *fakeSellerDirectory) GetRecipient(ctx context.Context, userID uuid.UUID) (string, string, error) {
	return "buyer@example.com", "Buyer", nil
}

func newCheckoutFixture(isOrganization bool) (Service, *fakeRepository, *fakeEventService, uuid.UUID) {
	publisherID := uuid.New()
	event := &events.Event{
		ID:            uuid.New(),
		Name:          "Cape Town Jazz Night",
		DateTime:      time.Now().Add(72 * time.Hour),
		TotalCapacity: 100,
		Price:         100.00,
		CurrencyCode:  "ZAR",
		Status:        events.StatusPublished,
		CreatedBy:     publisherID,
	}

	repo := newFakeRepository()
	eventService := &fakeEventService{event: event, available: true}
	sellers := &fakeSellerDirectory{profile: &auth.SellerProfile{
		UserID:         publisherID,
		Email:          "seller@example.com",
		DisplayName:    "Seller",
		IsOrganization: isOrganization,
		CountryCode:    "ZA",
	}}

	svc := NewService(repo, eventService, fees.NewService(), sellers)
	return svc, repo, eventService, event.ID
}

func TestCreateOrderIndividualSeller(t *testing.T) {
	svc, repo, eventService, eventID := newCheckoutFixture(false)
	userID := uuid.New()

	// ZAR 100 x 2, individual seller: total is 218.80
	resp, err := svc.CreateOrder(context.Background(), userID, CreateOrderRequest{
		EventID:        eventID.String(),
		Quantity:       2,
		DisplayedTotal: 218.80,
	})
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("created %d orders, want 1", len(repo.created))
	}
	order := repo.created[0]

	if math.Abs(order.TotalCharged-218.80) > 1e-9 {
		t.Errorf("total charged = %v, want 218.80", order.TotalCharged)
	}
	if math.Abs(order.SellerNetAmount-187.15) > 1e-9 {
		t.Errorf("seller net = %v, want 187.15", order.SellerNetAmount)
	}
	if order.IsOrganizationSale {
		t.Error("individual sale stored as organization sale")
	}
	if order.Status != StatusConfirmed {
		t.Errorf("status = %s, want CONFIRMED", order.Status)
	}
	if order.Reference == "" {
		t.Error("order reference is empty")
	}

	if len(eventService.adjustments) != 1 || eventService.adjustments[0] != 2 {
		t.Errorf("booked count adjustments = %v, want [2]", eventService.adjustments)
	}
	if len(eventService.invalidations) != 1 || eventService.invalidations[0] != eventID {
		t.Errorf("cache invalidations = %v, want [%s]", eventService.invalidations, eventID)
	}

	if resp.Status != string(StatusConfirmed) {
		t.Errorf("response status = %s, want CONFIRMED", resp.Status)
	}
}

func TestCreateOrderOrganizationSeller(t *testing.T) {
	svc, repo, _, eventID := newCheckoutFixture(true)

	// Organization commission is 4%, so the valid total drops to 216.80
	_, err := svc.CreateOrder(context.Background(), uuid.New(), CreateOrderRequest{
		EventID:        eventID.String(),
		Quantity:       2,
		DisplayedTotal: 216.80,
	})
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}

	order := repo.created[0]
	if math.Abs(order.Commission-8.00) > 1e-9 {
		t.Errorf("commission = %v, want 8.00", order.Commission)
	}
	if !order.IsOrganizationSale {
		t.Error("organization sale not flagged")
	}
}

func TestCreateOrderTamperedTotal(t *testing.T) {
	svc, repo, eventService, eventID := newCheckoutFixture(false)

	_, err := svc.CreateOrder(context.Background(), uuid.New(), CreateOrderRequest{
		EventID:        eventID.String(),
		Quantity:       2,
		DisplayedTotal: 200.00, // buyer-side price, fees stripped
	})
	if !errors.Is(err, ErrTotalMismatch) {
		t.Fatalf("CreateOrder error = %v, want ErrTotalMismatch", err)
	}

	if len(repo.created) != 0 {
		t.Error("order persisted despite total mismatch")
	}
	if len(eventService.adjustments) != 0 {
		t.Error("booked count changed despite total mismatch")
	}
	if len(eventService.invalidations) != 0 {
		t.Error("event cache invalidated despite total mismatch")
	}
}

func TestCreateOrderSoldOut(t *testing.T) {
	svc, repo, eventService, eventID := newCheckoutFixture(false)
	eventService.available = false

	_, err := svc.CreateOrder(context.Background(), uuid.New(), CreateOrderRequest{
		EventID:        eventID.String(),
		Quantity:       2,
		DisplayedTotal: 218.80,
	})
	if !errors.Is(err, ErrSoldOut) {
		t.Fatalf("CreateOrder error = %v, want ErrSoldOut", err)
	}
	if len(repo.created) != 0 {
		t.Error("order persisted despite sold-out event")
	}
}

func TestCancelOrder(t *testing.T) {
	svc, _, eventService, eventID := newCheckoutFixture(false)
	userID := uuid.New()

	resp, err := svc.CreateOrder(context.Background(), userID, CreateOrderRequest{
		EventID:        eventID.String(),
		Quantity:       2,
		DisplayedTotal: 218.80,
	})
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}
	orderID, err := uuid.Parse(resp.ID)
	if err != nil {
		t.Fatalf("response ID is not a uuid: %v", err)
	}

	// Another user cannot cancel the buyer's order
	if _, err := svc.CancelOrder(context.Background(), orderID, uuid.New()); !errors.Is(err, ErrNotOrderOwner) {
		t.Errorf("CancelOrder by stranger error = %v, want ErrNotOrderOwner", err)
	}

	cancelled, err := svc.CancelOrder(context.Background(), orderID, userID)
	if err != nil {
		t.Fatalf("CancelOrder returned error: %v", err)
	}
	if cancelled.Status != string(StatusCancelled) {
		t.Errorf("status = %s, want CANCELLED", cancelled.Status)
	}

	// Capacity was released and the cached listings dropped again
	if len(eventService.adjustments) != 2 || eventService.adjustments[1] != -2 {
		t.Errorf("booked count adjustments = %v, want [2 -2]", eventService.adjustments)
	}
	if len(eventService.invalidations) != 2 {
		t.Errorf("cache invalidations = %d, want 2", len(eventService.invalidations))
	}

	// Cancelling twice fails
	if _, err := svc.CancelOrder(context.Background(), orderID, userID); !errors.Is(err, ErrAlreadyCancelled) {
		t.Errorf("second CancelOrder error = %v, want ErrAlreadyCancelled", err)
	}
}

func TestCancelOrderPastEvent(t *testing.T) {
	svc, repo, eventService, eventID := newCheckoutFixture(false)
	userID := uuid.New()

	resp, err := svc.CreateOrder(context.Background(), userID, CreateOrderRequest{
		EventID:        eventID.String(),
		Quantity:       1,
		DisplayedTotal: 109.40,
	})
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}
	orderID, _ := uuid.Parse(resp.ID)

	// The event has since happened
	eventService.event.DateTime = time.Now().Add(-24 * time.Hour)

	if _, err := svc.CancelOrder(context.Background(), orderID, userID); !errors.Is(err, ErrEventAlreadyHeld) {
		t.Errorf("CancelOrder error = %v, want ErrEventAlreadyHeld", err)
	}
	if repo.orders[orderID].Status != StatusConfirmed {
		t.Error("order for a held event was cancelled")
	}
}

func TestCreateOrderUnknownEvent(t *testing.T) {
	svc, _, _, _ := newCheckoutFixture(false)

	_, err := svc.CreateOrder(context.Background(), uuid.New(), CreateOrderRequest{
		EventID:        uuid.New().String(),
		Quantity:       1,
		DisplayedTotal: 109.40,
	})
	if !errors.Is(err, events.ErrEventNotFound) {
		t.Fatalf("CreateOrder error = %v, want ErrEventNotFound", err)
	}
}
