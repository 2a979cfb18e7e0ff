package support

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, id uuid.UUID) (*Ticket, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status string, page, limit int) ([]Ticket, int64, error)
	ListAll(ctx context.Context, status string, page, limit int) ([]Ticket, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status TicketStatus) error
	AddReply(ctx context.Context, reply *Reply) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ticket *Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	var ticket Ticket
	err := r.db.WithContext(ctx).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&ticket, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, status string, page, limit int) ([]Ticket, int64, error) {
	query := r.db.WithContext(ctx).Model(&Ticket{}).Where("user_id = ?", userID)
	return r.paginate(query, status, page, limit)
}

func (r *repository) ListAll(ctx context.Context, status string, page, limit int) ([]Ticket, int64, error) {
	query := r.db.WithContext(ctx).Model(&Ticket{})
	return r.paginate(query, status, page, limit)
}

func (r *repository) paginate(query *gorm.DB, status string, page, limit int) ([]Ticket, int64, error) {
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tickets []Ticket
	offset := (page - 1) * limit
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&tickets).Error
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status TicketStatus) error {
	return r.db.WithContext(ctx).Model(&Ticket{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) AddReply(ctx context.Context, reply *Reply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}
