package support

import (
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	StatusOpen     TicketStatus = "OPEN"
	StatusAnswered TicketStatus = "ANSWERED"
	StatusClosed   TicketStatus = "CLOSED"
)

type Ticket struct {
	ID       uuid.UUID    `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID   uuid.UUID    `json:"user_id" gorm:"type:uuid;index;not null"`
	Subject  string       `json:"subject" gorm:"not null;size:255"`
	Message  string       `json:"message" gorm:"type:text;not null"`
	Category string       `json:"category" gorm:"size:50;default:'general'"`
	Status   TicketStatus `json:"status" gorm:"type:varchar(20);default:'OPEN'"`

	// Optional link to the order the ticket is about
	OrderID *uuid.UUID `json:"order_id,omitempty" gorm:"type:uuid"`

	Replies   []Reply   `json:"replies,omitempty" gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE;"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Reply struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TicketID uuid.UUID `json:"ticket_id" gorm:"type:uuid;index;not null"`
	AuthorID uuid.UUID `json:"author_id" gorm:"type:uuid;not null"`
	// True when the reply came from support staff rather than the reporter
	FromStaff bool      `json:"from_staff" gorm:"default:false"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Ticket) TableName() string {
	return "support_tickets"
}

func (Reply) TableName() string {
	return "support_replies"
}

type CreateTicketRequest struct {
	Subject  string `json:"subject" binding:"required,min=3,max=255"`
	Message  string `json:"message" binding:"required,min=10,max=5000"`
	Category string `json:"category" binding:"omitempty,oneof=general payment event account"`
	OrderID  string `json:"order_id" binding:"omitempty,uuid"`
}

type ReplyRequest struct {
	Message string `json:"message" binding:"required,min=1,max=5000"`
}

type TicketListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=OPEN ANSWERED CLOSED"`
}

type PaginatedTickets struct {
	Tickets    []Ticket `json:"tickets"`
	TotalCount int64    `json:"total_count"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
}
