package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, tx *gorm.DB, order *Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status Status, cancelledAt *time.Time) error

	GetUserOrders(ctx context.Context, userID uuid.UUID, query OrderListQuery) ([]Order, int64, error)
	GetPublisherSales(ctx context.Context, publisherID uuid.UUID, query OrderListQuery) ([]Order, int64, error)
	GetPublisherEarnings(ctx context.Context, publisherID uuid.UUID) ([]EarningsByCurrency, error)

	// Transaction runs fn inside one database transaction; the checkout flow
	// uses it to pair the order insert with the capacity update.
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, tx *gorm.DB, order *Order) error {
	db := r.dbOrTx(tx)
	return db.WithContext(ctx).Create(order).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	var order Order
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status Status, cancelledAt *time.Time) error {
	db := r.dbOrTx(tx)
	updates := map[string]interface{}{"status": status}
	if cancelledAt != nil {
		updates["cancelled_at"] = cancelledAt
	}
	result := db.WithContext(ctx).Model(&Order{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) GetUserOrders(ctx context.Context, userID uuid.UUID, query OrderListQuery) ([]Order, int64, error) {
	return r.list(ctx, "user_id = ?", userID, query)
}

func (r *repository) GetPublisherSales(ctx context.Context, publisherID uuid.UUID, query OrderListQuery) ([]Order, int64, error) {
	return r.list(ctx, "publisher_id = ?", publisherID, query)
}

func (r *repository) list(ctx context.Context, cond string, id uuid.UUID, query OrderListQuery) ([]Order, int64, error) {
	var results []Order
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&Order{}).Where(cond, id)
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := db.Order("created_at DESC").Offset(offset).Limit(query.Limit).Find(&results).Error
	if err != nil {
		return nil, 0, err
	}

	return results, totalCount, nil
}

func (r *repository) GetPublisherEarnings(ctx context.Context, publisherID uuid.UUID) ([]EarningsByCurrency, error) {
	var rows []EarningsByCurrency
	err := r.db.WithContext(ctx).Model(&Order{}).
		Select("currency_code, COUNT(*) AS order_count, SUM(quantity) AS tickets_sold, SUM(seller_gross_amount) AS gross_amount, SUM(seller_net_amount) AS net_amount").
		Where("publisher_id = ? AND status = ?", publisherID, StatusConfirmed).
		Group("currency_code").
		Order("currency_code").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *repository) dbOrTx(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}
