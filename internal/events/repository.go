package events

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(event *Event) error
	GetByID(id uuid.UUID) (*Event, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*Event, error)
	Delete(id uuid.UUID) error
	GetAll(query EventListQuery) ([]Event, int64, error)
	GetByPublisher(publisherID uuid.UUID) ([]Event, error)
	GetUpcomingEvents(limit int) ([]Event, error)
	UpdateBookedCount(tx *gorm.DB, eventID uuid.UUID, delta int) error
	CheckCapacityAvailability(eventID uuid.UUID, requestedTickets int) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(event *Event) error {
	return r.db.Create(event).Error
}

func (r *repository) GetByID(id uuid.UUID) (*Event, error) {
	var event Event
	err := r.db.Where("id = ?", id).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *repository) Update(id uuid.UUID, updates map[string]interface{}) (*Event, error) {
	var event Event

	if err := r.db.Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&event).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}

	return &event, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&Event{}).Error
}

func (r *repository) GetAll(query EventListQuery) ([]Event, int64, error) {
	var events []Event
	var totalCount int64

	db := r.db.Model(&Event{})

	if query.Search != "" {
		searchTerm := "%" + strings.ToLower(query.Search) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(venue) LIKE ?",
			searchTerm, searchTerm, searchTerm)
	}

	if query.Venue != "" {
		db = db.Where("LOWER(venue) LIKE ?", "%"+strings.ToLower(query.Venue)+"%")
	}

	if query.Category != "" {
		db = db.Where("LOWER(category) = ?", strings.ToLower(query.Category))
	}

	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	if query.DateFrom != "" {
		if from, err := time.Parse("2006-01-02", query.DateFrom); err == nil {
			db = db.Where("date_time >= ?", from)
		}
	}

	if query.DateTo != "" {
		if to, err := time.Parse("2006-01-02", query.DateTo); err == nil {
			db = db.Where("date_time <= ?", to.Add(24*time.Hour))
		}
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := db.Order("date_time ASC").Offset(offset).Limit(query.Limit).Find(&events).Error
	if err != nil {
		return nil, 0, err
	}

	return events, totalCount, nil
}

func (r *repository) GetByPublisher(publisherID uuid.UUID) ([]Event, error) {
	var events []Event
	err := r.db.Where("created_by = ?", publisherID).Order("date_time DESC").Find(&events).Error
	return events, err
}

func (r *repository) GetUpcomingEvents(limit int) ([]Event, error) {
	var events []Event
	err := r.db.
		Where("status = ? AND date_time > ?", StatusPublished, time.Now()).
		Order("date_time ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

// UpdateBookedCount adjusts the booked counter inside the caller's
// transaction so checkout can fail the whole purchase if capacity ran out.
// A negative delta releases tickets on cancellation.
func (r *repository) UpdateBookedCount(tx *gorm.DB, eventID uuid.UUID, delta int) error {
	db := tx
	if db == nil {
		db = r.db
	}

	result := db.Model(&Event{}).
		Where("id = ? AND booked_count + ? >= 0 AND booked_count + ? <= total_capacity", eventID, delta, delta).
		Update("booked_count", gorm.Expr("booked_count + ?", delta))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CheckCapacityAvailability(eventID uuid.UUID, requestedTickets int) (bool, error) {
	var count int64
	err := r.db.Model(&Event{}).
		Where("id = ? AND total_capacity - booked_count >= ?", eventID, requestedTickets).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
