package events

import (
	"context"
	"errors"
	"math"
	"time"

	"ticketly/internal/currencies"
	"ticketly/internal/shared/constants"
	"ticketly/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrNotEventOwner       = errors.New("event belongs to another publisher")
	ErrUnsupportedCurrency = errors.New("event currency is not supported")
	ErrEventNotPublished   = errors.New("event is not open for sale")
	ErrEventInPast         = errors.New("event date is in the past")
)

type Service interface {
	SetCacheService(cacheService cache.Service)

	CreateEvent(publisherID uuid.UUID, req CreateEventRequest) (*EventResponse, error)
	GetEventByID(id uuid.UUID) (*EventResponse, error)
	GetAllEvents(query EventListQuery) (*PaginatedEvents, error)
	GetUpcomingEvents(limit int) ([]EventResponse, error)
	GetPublisherEvents(publisherID uuid.UUID) ([]EventResponse, error)

	UpdateEvent(id uuid.UUID, publisherID uuid.UUID, req UpdateEventRequest) (*EventResponse, error)
	DeleteEvent(id uuid.UUID, publisherID uuid.UUID) error
	UpdateEventAsAdmin(id uuid.UUID, adminID uuid.UUID, req UpdateEventRequest) (*EventResponse, error)
	DeleteEventAsAdmin(id uuid.UUID) error

	// Checkout support
	GetEventForCheckout(eventID uuid.UUID) (*Event, error)
	CheckEventAvailability(eventID uuid.UUID, ticketCount int) (bool, error)
	AdjustBookedCount(tx *gorm.DB, eventID uuid.UUID, delta int) error
	InvalidateEventCache(ctx context.Context, eventID uuid.UUID)
}

type service struct {
	repo         Repository
	cacheService cache.Service
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// Cache helper methods
func (s *service) setCache(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if s.cacheService == nil {
		return
	}
	// Cache failures are not purchase failures
	_ = s.cacheService.Set(ctx, key, value, ttl)
}

func (s *service) getCache(ctx context.Context, key string, dest interface{}) bool {
	if s.cacheService == nil {
		return false
	}
	return s.cacheService.Get(ctx, key, dest) == nil
}

func (s *service) invalidateEventCache(ctx context.Context, eventID *uuid.UUID) {
	if s.cacheService == nil {
		return
	}

	patterns := []string{constants.PATTERN_INVALIDATE_EVENT_ALL}
	if eventID != nil {
		patterns = append(patterns, constants.PATTERN_INVALIDATE_EVENT_DETAIL+eventID.String()+"*")
	}

	for _, pattern := range patterns {
		_ = s.cacheService.DeletePattern(ctx, pattern)
	}
}

func (s *service) CreateEvent(publisherID uuid.UUID, req CreateEventRequest) (*EventResponse, error) {
	if !currencies.IsSupported(req.CurrencyCode) {
		return nil, ErrUnsupportedCurrency
	}

	if req.DateTime.Before(time.Now()) {
		return nil, ErrEventInPast
	}

	event := &Event{
		Name:          req.Name,
		Description:   req.Description,
		Venue:         req.Venue,
		Category:      req.Category,
		DateTime:      req.DateTime,
		TotalCapacity: req.TotalCapacity,
		Price:         req.Price,
		CurrencyCode:  req.CurrencyCode,
		Status:        StatusDraft,
		ImageURL:      req.ImageURL,
		CreatedBy:     publisherID,
	}

	if err := s.repo.Create(event); err != nil {
		return nil, err
	}

	s.invalidateEventCache(context.Background(), nil)

	resp := event.ToResponse()
	return &resp, nil
}

func (s *service) GetEventByID(id uuid.UUID) (*EventResponse, error) {
	ctx := context.Background()
	cacheKey := constants.KeyEventDetail(id.String())

	var cached EventResponse
	if s.getCache(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	resp := event.ToResponse()
	s.setCache(ctx, cacheKey, resp, constants.TTL_EVENT_DETAIL)
	return &resp, nil
}

func (s *service) GetAllEvents(query EventListQuery) (*PaginatedEvents, error) {
	// Apply defaults
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}
	// Public browsing never sees drafts
	if query.Status == "" {
		query.Status = string(StatusPublished)
	}

	ctx := context.Background()
	cacheKey := constants.KeyEventList(query.Page, query.Limit, query.Search, query.Venue, query.Category, query.Status)

	var cached PaginatedEvents
	if s.getCache(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	eventList, totalCount, err := s.repo.GetAll(query)
	if err != nil {
		return nil, err
	}

	responses := make([]EventResponse, 0, len(eventList))
	for i := range eventList {
		responses = append(responses, eventList[i].ToResponse())
	}

	result := &PaginatedEvents{
		Events:     responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}

	s.setCache(ctx, cacheKey, result, constants.TTL_EVENT_LIST)
	return result, nil
}

func (s *service) GetUpcomingEvents(limit int) ([]EventResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	ctx := context.Background()

	var cached []EventResponse
	if s.getCache(ctx, constants.KEY_UPCOMING_EVENTS, &cached) && len(cached) >= limit {
		return cached[:limit], nil
	}

	eventList, err := s.repo.GetUpcomingEvents(limit)
	if err != nil {
		return nil, err
	}

	responses := make([]EventResponse, 0, len(eventList))
	for i := range eventList {
		responses = append(responses, eventList[i].ToResponse())
	}

	s.setCache(ctx, constants.KEY_UPCOMING_EVENTS, responses, constants.TTL_UPCOMING_QUICK)
	return responses, nil
}

func (s *service) GetPublisherEvents(publisherID uuid.UUID) ([]EventResponse, error) {
	eventList, err := s.repo.GetByPublisher(publisherID)
	if err != nil {
		return nil, err
	}

	responses := make([]EventResponse, 0, len(eventList))
	for i := range eventList {
		responses = append(responses, eventList[i].ToResponse())
	}
	return responses, nil
}

func (s *service) UpdateEvent(id uuid.UUID, publisherID uuid.UUID, req UpdateEventRequest) (*EventResponse, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if event.CreatedBy != publisherID {
		return nil, ErrNotEventOwner
	}

	return s.applyUpdate(event, publisherID, req)
}

func (s *service) UpdateEventAsAdmin(id uuid.UUID, adminID uuid.UUID, req UpdateEventRequest) (*EventResponse, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	return s.applyUpdate(event, adminID, req)
}

func (s *service) applyUpdate(event *Event, actorID uuid.UUID, req UpdateEventRequest) (*EventResponse, error) {
	updates := map[string]interface{}{
		"updated_by": actorID,
	}

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Venue != nil {
		updates["venue"] = *req.Venue
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.DateTime != nil {
		updates["date_time"] = *req.DateTime
	}
	if req.TotalCapacity != nil {
		if *req.TotalCapacity < event.BookedCount {
			return nil, errors.New("total capacity cannot drop below tickets already sold")
		}
		updates["total_capacity"] = *req.TotalCapacity
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.CurrencyCode != nil {
		if !currencies.IsSupported(*req.CurrencyCode) {
			return nil, ErrUnsupportedCurrency
		}
		updates["currency_code"] = *req.CurrencyCode
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}

	updated, err := s.repo.Update(event.ID, updates)
	if err != nil {
		return nil, err
	}

	s.invalidateEventCache(context.Background(), &event.ID)

	resp := updated.ToResponse()
	return &resp, nil
}

func (s *service) DeleteEvent(id uuid.UUID, publisherID uuid.UUID) error {
	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	if event.CreatedBy != publisherID {
		return ErrNotEventOwner
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.invalidateEventCache(context.Background(), &id)
	return nil
}

func (s *service) DeleteEventAsAdmin(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.invalidateEventCache(context.Background(), &id)
	return nil
}

// GetEventForCheckout returns the raw event record the checkout flow prices
// against. Only published future events are sellable.
func (s *service) GetEventForCheckout(eventID uuid.UUID) (*Event, error) {
	event, err := s.repo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if event.Status != StatusPublished {
		return nil, ErrEventNotPublished
	}
	if event.DateTime.Before(time.Now()) {
		return nil, ErrEventInPast
	}

	return event, nil
}

func (s *service) CheckEventAvailability(eventID uuid.UUID, ticketCount int) (bool, error) {
	return s.repo.CheckCapacityAvailability(eventID, ticketCount)
}

// AdjustBookedCount is invoked inside the checkout transaction. It must not
// touch the cache: a concurrent reader could re-populate it with the
// pre-commit count. The caller invalidates after commit.
func (s *service) AdjustBookedCount(tx *gorm.DB, eventID uuid.UUID, delta int) error {
	return s.repo.UpdateBookedCount(tx, eventID, delta)
}

// InvalidateEventCache drops cached listings and the detail entry for the
// event. Checkout calls this once its transaction has committed.
func (s *service) InvalidateEventCache(ctx context.Context, eventID uuid.UUID) {
	s.invalidateEventCache(ctx, &eventID)
}
