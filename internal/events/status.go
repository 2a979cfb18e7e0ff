package events

type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
	StatusCancelled EventStatus = "cancelled"
	StatusCompleted EventStatus = "completed"
)

func IsValidStatus(status string) bool {
	switch EventStatus(status) {
	case StatusDraft, StatusPublished, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}
