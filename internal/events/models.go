package events

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID            uuid.UUID   `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name          string      `json:"name" gorm:"not null;size:255"`
	Description   string      `json:"description" gorm:"type:text"`
	Venue         string      `json:"venue" gorm:"not null;size:255"`
	Category      string      `json:"category" gorm:"size:100;index"`
	DateTime      time.Time   `json:"date_time" gorm:"not null"`
	TotalCapacity int         `json:"total_capacity" gorm:"not null;check:total_capacity > 0"`
	BookedCount   int         `json:"booked_count" gorm:"default:0;check:booked_count >= 0"`
	Price         float64     `json:"price" gorm:"not null;check:price >= 0"`
	CurrencyCode  string      `json:"currency_code" gorm:"not null;size:3"`
	Status        EventStatus `json:"status" gorm:"type:varchar(20);default:'draft'"`
	ImageURL      string      `json:"image_url" gorm:"size:500"`

	CreatedBy uuid.UUID  `json:"created_by" gorm:"type:uuid;not null;index"`
	UpdatedBy *uuid.UUID `json:"updated_by" gorm:"type:uuid"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

type EventResponse struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	Venue            string      `json:"venue"`
	Category         string      `json:"category"`
	DateTime         time.Time   `json:"date_time"`
	TotalCapacity    int         `json:"total_capacity"`
	BookedCount      int         `json:"booked_count"`
	AvailableTickets int         `json:"available_tickets"`
	Price            float64     `json:"price"`
	CurrencyCode     string      `json:"currency_code"`
	Status           EventStatus `json:"status"`
	ImageURL         string      `json:"image_url"`
	PublisherID      string      `json:"publisher_id"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

type CreateEventRequest struct {
	Name          string    `json:"name" binding:"required,min=3,max=255"`
	Description   string    `json:"description" binding:"max=2000"`
	Venue         string    `json:"venue" binding:"required,min=3,max=255"`
	Category      string    `json:"category" binding:"omitempty,max=100"`
	DateTime      time.Time `json:"date_time" binding:"required"`
	TotalCapacity int       `json:"total_capacity" binding:"required,min=1,max=100000"`
	Price         float64   `json:"price" binding:"required,min=0"`
	CurrencyCode  string    `json:"currency_code" binding:"required,len=3"`
	ImageURL      string    `json:"image_url" binding:"omitempty,url"`
}

type UpdateEventRequest struct {
	Name          *string    `json:"name" binding:"omitempty,min=3,max=255"`
	Description   *string    `json:"description" binding:"omitempty,max=2000"`
	Venue         *string    `json:"venue" binding:"omitempty,min=3,max=255"`
	Category      *string    `json:"category" binding:"omitempty,max=100"`
	DateTime      *time.Time `json:"date_time"`
	TotalCapacity *int       `json:"total_capacity" binding:"omitempty,min=1,max=100000"`
	Price         *float64   `json:"price" binding:"omitempty,min=0"`
	CurrencyCode  *string    `json:"currency_code" binding:"omitempty,len=3"`
	Status        *string    `json:"status" binding:"omitempty,oneof=draft published cancelled completed"`
	ImageURL      *string    `json:"image_url" binding:"omitempty,url"`
}

type EventListQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
	Venue    string `form:"venue"`
	Category string `form:"category"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	Status   string `form:"status" binding:"omitempty,oneof=draft published cancelled completed"`
}

type PaginatedEvents struct {
	Events     []EventResponse `json:"events"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// Helper method to convert Event to EventResponse
func (e *Event) ToResponse() EventResponse {
	availableTickets := e.TotalCapacity - e.BookedCount
	if availableTickets < 0 {
		availableTickets = 0
	}

	return EventResponse{
		ID:               e.ID.String(),
		Name:             e.Name,
		Description:      e.Description,
		Venue:            e.Venue,
		Category:         e.Category,
		DateTime:         e.DateTime,
		TotalCapacity:    e.TotalCapacity,
		BookedCount:      e.BookedCount,
		AvailableTickets: availableTickets,
		Price:            e.Price,
		CurrencyCode:     e.CurrencyCode,
		Status:           e.Status,
		ImageURL:         e.ImageURL,
		PublisherID:      e.CreatedBy.String(),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

// TableName specifies the table name for GORM
func (Event) TableName() string {
	return "events"
}
