package database

import (
	"ticketly/internal/events"
	"ticketly/internal/orders"
	"ticketly/internal/support"
	"ticketly/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&events.Event{},
		&orders.Order{},
		&support.Ticket{},
		&support.Reply{},
	)
}
