package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTLs for the ticketly backend.
// Pattern: ticketly:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

const (
	// Static reference data (currency profiles, fee schedule responses)
	TTL_STATIC_LONG = 24 * time.Hour

	// Semi-static data
	TTL_EVENT_DETAIL   = 2 * time.Hour
	TTL_EVENT_LIST     = 1 * time.Hour
	TTL_UPCOMING_QUICK = 15 * time.Minute

	// Dynamic data
	TTL_EARNINGS_SUMMARY = 10 * time.Minute
	TTL_AVAILABILITY     = 2 * time.Minute
)

// ================== CACHE KEYS ==================

const (
	KEY_UPCOMING_EVENTS = "ticketly:events:upcoming"

	PATTERN_INVALIDATE_EVENT_ALL    = "ticketly:events:*"
	PATTERN_INVALIDATE_EVENT_DETAIL = "ticketly:events:detail:"
	PATTERN_INVALIDATE_EARNINGS     = "ticketly:publisher:earnings:*"
)

func KeyEventDetail(eventID string) string {
	return PATTERN_INVALIDATE_EVENT_DETAIL + eventID
}

func KeyEventList(page, limit int, search, venue, category, status string) string {
	return fmt.Sprintf("ticketly:events:list:%d:%d:%s:%s:%s:%s", page, limit, search, venue, category, status)
}

func KeyPublisherEarnings(publisherID string) string {
	return "ticketly:publisher:earnings:" + publisherID
}
