package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"ticketly/internal/events"
	"ticketly/internal/fees"
	"ticketly/internal/orders"
	"ticketly/internal/shared/config"
	"ticketly/internal/shared/database"
	"ticketly/internal/support"
	"ticketly/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Ticketly Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"support_replies",
		"support_tickets",
		"orders",
		"events",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	userIDs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	eventIDs, err := s.SeedEvents(userIDs)
	if err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	if err := s.SeedOrders(userIDs, eventIDs); err != nil {
		return fmt.Errorf("failed to seed orders: %w", err)
	}

	if err := s.SeedSupportTickets(userIDs); err != nil {
		return fmt.Errorf("failed to seed support tickets: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedUsers creates an admin, two buyers and two publishers (one organization)
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	// Hash password for all users (using "qwerty")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key            string
		firstName      string
		lastName       string
		email          string
		role           users.Role
		isOrganization bool
		orgName        string
		countryCode    string
	}{
		{"admin", "Admin", "User", "admin@ticketly.io", users.RoleAdmin, false, "", ""},
		{"buyer1", "Amina", "Okafor", "amina.okafor@example.com", users.RoleUser, false, "", ""},
		{"buyer2", "Kwame", "Mensah", "kwame.mensah@example.com", users.RoleUser, false, "", ""},
		{"publisher_individual", "Thandi", "Dlamini", "thandi@example.com", users.RolePublisher, false, "", "ZA"},
		{"publisher_org", "Yusuf", "Kamara", "events@lagoslive.example.com", users.RolePublisher, true, "Lagos Live Entertainment", "NG"},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:               uuid.New(),
			FirstName:        userData.firstName,
			LastName:         userData.lastName,
			Email:            userData.email,
			Password:         string(hashedPassword),
			Role:             userData.role,
			IsOrganization:   userData.isOrganization,
			OrganizationName: userData.orgName,
			CountryCode:      userData.countryCode,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

// SeedEvents creates published events in a few supported markets
func (s *Seeder) SeedEvents(userIDs map[string]uuid.UUID) (map[string]uuid.UUID, error) {
	fmt.Println("  🎫 Seeding events...")

	eventIDs := make(map[string]uuid.UUID)

	eventsData := []struct {
		key          string
		name         string
		venue        string
		category     string
		daysAhead    int
		capacity     int
		price        float64
		currencyCode string
		publisher    string
	}{
		{"jazz_cape_town", "Cape Town Jazz Night", "Artscape Theatre, Cape Town", "Music", 21, 400, 150.00, "ZAR", "publisher_individual"},
		{"tech_lagos", "Lagos Tech Summit", "Landmark Centre, Lagos", "Technology", 35, 1200, 25000.00, "NGN", "publisher_org"},
		{"afrobeats_accra", "Accra Afrobeats Festival", "Black Star Square, Accra", "Music", 50, 5000, 120.00, "GHS", "publisher_org"},
	}

	for _, eventData := range eventsData {
		event := events.Event{
			ID:            uuid.New(),
			Name:          eventData.name,
			Description:   fmt.Sprintf("Seeded event: %s", eventData.name),
			Venue:         eventData.venue,
			Category:      eventData.category,
			DateTime:      time.Now().AddDate(0, 0, eventData.daysAhead),
			TotalCapacity: eventData.capacity,
			Price:         eventData.price,
			CurrencyCode:  eventData.currencyCode,
			Status:        events.StatusPublished,
			CreatedBy:     userIDs[eventData.publisher],
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&event).Error; err != nil {
			return nil, fmt.Errorf("failed to create event %s: %w", event.Name, err)
		}

		eventIDs[eventData.key] = event.ID
		fmt.Printf("    ✅ Created event: %s (%s %.2f)\n", event.Name, event.CurrencyCode, event.Price)
	}

	return eventIDs, nil
}

// SeedOrders creates confirmed purchases with the breakdown priced the same
// way checkout prices them
func (s *Seeder) SeedOrders(userIDs, eventIDs map[string]uuid.UUID) error {
	fmt.Println("  🧾 Seeding orders...")

	ordersData := []struct {
		reference      string
		buyer          string
		event          string
		publisher      string
		quantity       int
		unitPrice      float64
		currencyCode   string
		isOrganization bool
	}{
		{"TKT-SEED01", "buyer1", "jazz_cape_town", "publisher_individual", 2, 150.00, "ZAR", false},
		{"TKT-SEED02", "buyer2", "tech_lagos", "publisher_org", 1, 25000.00, "NGN", true},
		{"TKT-SEED03", "buyer1", "afrobeats_accra", "publisher_org", 4, 120.00, "GHS", true},
	}

	for _, orderData := range ordersData {
		breakdown, err := fees.Calculate(orderData.unitPrice, orderData.quantity, orderData.isOrganization, orderData.currencyCode)
		if err != nil {
			return fmt.Errorf("failed to price order %s: %w", orderData.reference, err)
		}

		order := orders.Order{
			ID:                 uuid.New(),
			Reference:          orderData.reference,
			UserID:             userIDs[orderData.buyer],
			EventID:            eventIDs[orderData.event],
			PublisherID:        userIDs[orderData.publisher],
			Quantity:           orderData.quantity,
			UnitPrice:          orderData.unitPrice,
			CurrencyCode:       orderData.currencyCode,
			Subtotal:           breakdown.Subtotal,
			ProcessorFee:       breakdown.ProcessorFee,
			Commission:         breakdown.Commission,
			TotalCharged:       breakdown.TotalToCharge,
			SellerGrossAmount:  breakdown.SellerGrossAmount,
			RemittanceFee:      breakdown.RemittanceFee,
			SellerNetAmount:    breakdown.SellerNetAmount,
			IsOrganizationSale: orderData.isOrganization,
			Status:             orders.StatusConfirmed,
			CreatedAt:          time.Now(),
			UpdatedAt:          time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order %s: %w", orderData.reference, err)
		}

		// Keep capacity accounting consistent with checkout
		err = s.db.PostgreSQL.Model(&events.Event{}).
			Where("id = ?", order.EventID).
			Update("booked_count", gorm.Expr("booked_count + ?", order.Quantity)).Error
		if err != nil {
			return fmt.Errorf("failed to bump booked count for order %s: %w", orderData.reference, err)
		}

		fmt.Printf("    ✅ Created order: %s (%d tickets, total %.2f %s)\n",
			order.Reference, order.Quantity, order.TotalCharged, order.CurrencyCode)
	}

	return nil
}

// SeedSupportTickets creates one open ticket so the support queue is not empty
func (s *Seeder) SeedSupportTickets(userIDs map[string]uuid.UUID) error {
	fmt.Println("  🎟️ Seeding support tickets...")

	ticket := support.Ticket{
		ID:       uuid.New(),
		UserID:   userIDs["buyer1"],
		Subject:  "Charged total looked different on my bank statement",
		Message:  "The checkout page showed one total but my bank statement shows a slightly different amount. Please confirm the fees that were applied to my order.",
		Category: "payment",
		Status:   support.StatusOpen,
	}

	if err := s.db.PostgreSQL.Create(&ticket).Error; err != nil {
		return fmt.Errorf("failed to create support ticket: %w", err)
	}

	fmt.Printf("    ✅ Created support ticket: %s\n", ticket.Subject)
	return nil
}
