package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds constraints and indexes the AutoMigrate step cannot express
func MigrateConstraints(db *gorm.DB) error {
	// Capacity can never be oversold or driven negative
	err := db.Exec(`
		ALTER TABLE events
		ADD CONSTRAINT IF NOT EXISTS chk_events_booked_within_capacity
		CHECK (booked_count >= 0 AND booked_count <= total_capacity);
	`).Error
	if err != nil {
		return err
	}

	// Order references are unique and human-facing
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_reference
		ON orders (reference);
	`).Error
	if err != nil {
		return err
	}

	// Earnings aggregation groups by publisher and currency
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_orders_publisher_currency
		ON orders (publisher_id, currency_code);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
