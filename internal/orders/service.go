package orders

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"ticketly/internal/auth"
	"ticketly/internal/events"
	"ticketly/internal/fees"
	"ticketly/internal/notifications"
	"ticketly/internal/shared/constants"
	"ticketly/pkg/cache"
	"ticketly/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrNotOrderOwner     = errors.New("order belongs to another user")
	ErrSoldOut           = errors.New("not enough tickets available")
	ErrTotalMismatch     = errors.New("displayed total does not match server calculation")
	ErrAlreadyCancelled  = errors.New("order is already cancelled")
	ErrEventAlreadyHeld  = errors.New("orders for past events cannot be cancelled")
	ErrSellerUnavailable = errors.New("event publisher could not be resolved")
)

// SellerDirectory resolves the publisher profile checkout prices against,
// plus notification recipients. Implemented by auth.SellerDirectoryAdapter.
type SellerDirectory interface {
	GetSellerProfile(ctx context.Context, userID uuid.UUID) (*auth.SellerProfile, error)
	GetRecipient(ctx context.Context, userID uuid.UUID) (email, name string, err error)
}

type Service interface {
	SetCacheService(cacheService cache.Service)
	SetNotificationService(notifier notifications.Publisher)

	CreateOrder(ctx context.Context, userID uuid.UUID, req CreateOrderRequest) (*OrderResponse, error)
	CancelOrder(ctx context.Context, orderID, userID uuid.UUID) (*OrderResponse, error)
	GetOrder(ctx context.Context, orderID, userID uuid.UUID, isAdmin bool) (*OrderResponse, error)
	GetUserOrders(ctx context.Context, userID uuid.UUID, query OrderListQuery) (*PaginatedOrders, error)

	GetPublisherSales(ctx context.Context, publisherID uuid.UUID, query OrderListQuery) ([]SaleResponse, int64, error)
	GetPublisherEarnings(ctx context.Context, publisherID uuid.UUID) (*EarningsSummary, error)
}

type service struct {
	repo         Repository
	eventService events.Service
	feeService   fees.Service
	sellers      SellerDirectory
	cacheService cache.Service
	notifier     notifications.Publisher
	logger       *logger.Logger
}

func NewService(repo Repository, eventService events.Service, feeService fees.Service, sellers SellerDirectory) Service {
	return &service{
		repo:         repo,
		eventService: eventService,
		feeService:   feeService,
		sellers:      sellers,
		logger:       logger.GetDefault(),
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) SetNotificationService(notifier notifications.Publisher) {
	s.notifier = notifier
}

// CreateOrder is the checkout flow: price the purchase server-side, verify
// the total the buyer saw, then persist the order and the capacity change in
// one transaction. The stored breakdown is exactly what the calculator
// returned; nothing is recomputed afterwards.
func (s *service) CreateOrder(ctx context.Context, userID uuid.UUID, req CreateOrderRequest) (*OrderResponse, error) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID: %w", err)
	}

	event, err := s.eventService.GetEventForCheckout(eventID)
	if err != nil {
		return nil, err
	}

	available, err := s.eventService.CheckEventAvailability(eventID, req.Quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to check availability: %w", err)
	}
	if !available {
		return nil, ErrSoldOut
	}

	seller, err := s.sellers.GetSellerProfile(ctx, event.CreatedBy)
	if err != nil {
		return nil, ErrSellerUnavailable
	}

	calcReq := fees.CalculationRequest{
		UnitPrice:      event.Price,
		Quantity:       req.Quantity,
		IsOrganization: seller.IsOrganization,
		CurrencyCode:   event.CurrencyCode,
	}

	verification, err := s.feeService.VerifyTotal(calcReq, req.DisplayedTotal)
	if err != nil {
		return nil, err
	}
	if !verification.IsValid {
		s.logger.LogFeeMismatch(ctx, eventID.String(), userID.String(), req.DisplayedTotal, verification.Breakdown.TotalToCharge)
		return nil, ErrTotalMismatch
	}

	reference, err := generateOrderReference()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order reference: %w", err)
	}

	breakdown := verification.Breakdown
	order := &Order{
		Reference:          reference,
		UserID:             userID,
		EventID:            eventID,
		PublisherID:        seller.UserID,
		Quantity:           req.Quantity,
		UnitPrice:          event.Price,
		CurrencyCode:       event.CurrencyCode,
		Subtotal:           breakdown.Subtotal,
		ProcessorFee:       breakdown.ProcessorFee,
		Commission:         breakdown.Commission,
		TotalCharged:       breakdown.TotalToCharge,
		SellerGrossAmount:  breakdown.SellerGrossAmount,
		RemittanceFee:      breakdown.RemittanceFee,
		SellerNetAmount:    breakdown.SellerNetAmount,
		IsOrganizationSale: seller.IsOrganization,
		Status:             StatusConfirmed,
	}

	err = s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.eventService.AdjustBookedCount(tx, eventID, req.Quantity); err != nil {
			return ErrSoldOut
		}
		return s.repo.Create(ctx, tx, order)
	})
	if err != nil {
		return nil, err
	}

	s.logger.LogOrderCreated(ctx, order.ID.String(), eventID.String(), userID.String())
	s.eventService.InvalidateEventCache(ctx, eventID)
	s.invalidateEarnings(ctx, seller.UserID)
	s.publishOrderNotifications(ctx, order, event.Name, seller)

	resp := order.ToResponse()
	return &resp, nil
}

func (s *service) CancelOrder(ctx context.Context, orderID, userID uuid.UUID) (*OrderResponse, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if order.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	if order.Status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	// Tickets for events that already happened stay sold.
	if event, err := s.eventService.GetEventByID(order.EventID); err == nil {
		if event.DateTime.Before(time.Now()) {
			return nil, ErrEventAlreadyHeld
		}
	}

	now := time.Now()
	err = s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.repo.UpdateStatus(ctx, tx, orderID, StatusCancelled, &now); err != nil {
			return err
		}
		return s.eventService.AdjustBookedCount(tx, order.EventID, -order.Quantity)
	})
	if err != nil {
		return nil, err
	}

	order.Status = StatusCancelled
	order.CancelledAt = &now

	s.logger.LogOrderCancelled(ctx, order.ID.String(), order.EventID.String(), userID.String())
	s.eventService.InvalidateEventCache(ctx, order.EventID)
	s.invalidateEarnings(ctx, order.PublisherID)

	resp := order.ToResponse()
	return &resp, nil
}

func (s *service) GetOrder(ctx context.Context, orderID, userID uuid.UUID, isAdmin bool) (*OrderResponse, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !isAdmin && order.UserID != userID {
		return nil, ErrNotOrderOwner
	}

	resp := order.ToResponse()
	return &resp, nil
}

func (s *service) GetUserOrders(ctx context.Context, userID uuid.UUID, query OrderListQuery) (*PaginatedOrders, error) {
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}

	orderList, totalCount, err := s.repo.GetUserOrders(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orderList))
	for i := range orderList {
		responses = append(responses, orderList[i].ToResponse())
	}

	return &PaginatedOrders{
		Orders:     responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
	}, nil
}

func (s *service) GetPublisherSales(ctx context.Context, publisherID uuid.UUID, query OrderListQuery) ([]SaleResponse, int64, error) {
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}

	orderList, totalCount, err := s.repo.GetPublisherSales(ctx, publisherID, query)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SaleResponse, 0, len(orderList))
	for i := range orderList {
		responses = append(responses, orderList[i].ToSaleResponse())
	}
	return responses, totalCount, nil
}

func (s *service) GetPublisherEarnings(ctx context.Context, publisherID uuid.UUID) (*EarningsSummary, error) {
	cacheKey := constants.KeyPublisherEarnings(publisherID.String())

	if s.cacheService != nil {
		var cached EarningsSummary
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	rows, err := s.repo.GetPublisherEarnings(ctx, publisherID)
	if err != nil {
		return nil, err
	}

	summary := &EarningsSummary{
		PublisherID: publisherID.String(),
		Currencies:  rows,
		GeneratedAt: time.Now(),
	}

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, cacheKey, summary, constants.TTL_EARNINGS_SUMMARY)
	}
	return summary, nil
}

func (s *service) invalidateEarnings(ctx context.Context, publisherID uuid.UUID) {
	if s.cacheService == nil {
		return
	}
	_ = s.cacheService.Delete(ctx, constants.KeyPublisherEarnings(publisherID.String()))
}

// publishOrderNotifications emits the buyer confirmation and the seller sale
// notice. Delivery is best-effort: a broker outage never fails a paid order.
func (s *service) publishOrderNotifications(ctx context.Context, order *Order, eventName string, seller *auth.SellerProfile) {
	if s.notifier == nil {
		return
	}

	buyerEmail, buyerName, err := s.sellers.GetRecipient(ctx, order.UserID)
	if err != nil {
		s.logger.ErrorWithContext(ctx, "failed to resolve buyer for notification", err, map[string]interface{}{
			"order_id": order.ID.String(),
		})
		return
	}

	purchase := notifications.PurchaseEvent{
		OrderID:        order.ID.String(),
		OrderReference: order.Reference,
		EventID:        order.EventID.String(),
		EventName:      eventName,
		BuyerID:        order.UserID.String(),
		BuyerEmail:     buyerEmail,
		BuyerName:      buyerName,
		SellerID:       seller.UserID.String(),
		SellerEmail:    seller.Email,
		SellerName:     seller.DisplayName,
		Quantity:       order.Quantity,
		CurrencyCode:   order.CurrencyCode,
		TotalCharged:   order.TotalCharged,
		SellerNet:      order.SellerNetAmount,
		OccurredAt:     order.CreatedAt,
	}

	if err := s.notifier.PublishPurchase(ctx, purchase); err != nil {
		s.logger.ErrorWithContext(ctx, "failed to publish purchase notification", err, map[string]interface{}{
			"order_id": order.ID.String(),
		})
	}
}

// generateOrderReference builds a human-readable unique reference like
// TKT-20260830-QJXKMZ.
func generateOrderReference() (string, error) {
	const letters = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = letters[int(buf[i])%len(letters)]
	}

	return fmt.Sprintf("TKT-%s-%s", time.Now().Format("20060102"), string(buf)), nil
}
