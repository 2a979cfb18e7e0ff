package support

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeRepository struct {
	tickets map[uuid.UUID]*Ticket
	replies []*Reply
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{tickets: make(map[uuid.UUID]*Ticket)}
}

func (r *fakeRepository) Create(ctx context.Context, ticket *Ticket) error {
	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	r.tickets[ticket.ID] = ticket
	return nil
}

func (r *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *ticket
	return &copied, nil
}

func (r *fakeRepository) ListByUser(ctx context.Context, userID uuid.UUID, status string, page, limit int) ([]Ticket, int64, error) {
	var results []Ticket
	for _, ticket := range r.tickets {
		if ticket.UserID == userID && (status == "" || string(ticket.Status) == status) {
			results = append(results, *ticket)
		}
	}
	return results, int64(len(results)), nil
}

func (r *fakeRepository) ListAll(ctx context.Context, status string, page, limit int) ([]Ticket, int64, error) {
	var results []Ticket
	for _, ticket := range r.tickets {
		if status == "" || string(ticket.Status) == status {
			results = append(results, *ticket)
		}
	}
	return results, int64(len(results)), nil
}

func (r *fakeRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status TicketStatus) error {
	ticket, ok := r.tickets[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	ticket.Status = status
	return nil
}

func (r *fakeRepository) AddReply(ctx context.Context, reply *Reply) error {
	if reply.ID == uuid.Nil {
		reply.ID = uuid.New()
	}
	r.replies = append(r.replies, reply)
	return nil
}

func TestCreateTicketDefaults(t *testing.T) {
	svc := NewService(newFakeRepository())
	userID := uuid.New()

	ticket, err := svc.CreateTicket(context.Background(), userID, CreateTicketRequest{
		Subject: "Refund for cancelled event",
		Message: "The event I bought tickets for was cancelled, when do I get my refund?",
	})
	if err != nil {
		t.Fatalf("CreateTicket returned error: %v", err)
	}

	if ticket.Status != StatusOpen {
		t.Errorf("status = %s, want OPEN", ticket.Status)
	}
	if ticket.Category != "general" {
		t.Errorf("category = %s, want general", ticket.Category)
	}
	if ticket.UserID != userID {
		t.Error("ticket not attributed to the reporter")
	}
}

func TestGetTicketOwnership(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	owner := uuid.New()

	ticket, err := svc.CreateTicket(context.Background(), owner, CreateTicketRequest{
		Subject: "Wrong total on statement",
		Message: "My bank statement shows a different amount than checkout did.",
	})
	if err != nil {
		t.Fatalf("CreateTicket returned error: %v", err)
	}

	// A stranger cannot read the ticket, staff can
	if _, err := svc.GetTicket(context.Background(), ticket.ID, uuid.New(), false); !errors.Is(err, ErrNotTicketOwner) {
		t.Errorf("stranger GetTicket error = %v, want ErrNotTicketOwner", err)
	}
	if _, err := svc.GetTicket(context.Background(), ticket.ID, uuid.New(), true); err != nil {
		t.Errorf("staff GetTicket error = %v, want nil", err)
	}

	if _, err := svc.GetTicket(context.Background(), uuid.New(), owner, false); !errors.Is(err, ErrTicketNotFound) {
		t.Errorf("missing ticket error = %v, want ErrTicketNotFound", err)
	}
}

func TestReplyFlipsStatus(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	owner := uuid.New()
	staff := uuid.New()

	ticket, err := svc.CreateTicket(context.Background(), owner, CreateTicketRequest{
		Subject: "Cannot see my tickets",
		Message: "I paid but the tickets are not in my account yet.",
	})
	if err != nil {
		t.Fatalf("CreateTicket returned error: %v", err)
	}

	// Staff reply marks the ticket answered
	reply, err := svc.Reply(context.Background(), ticket.ID, staff, true, ReplyRequest{Message: "Looking into it."})
	if err != nil {
		t.Fatalf("staff Reply returned error: %v", err)
	}
	if !reply.FromStaff {
		t.Error("staff reply not flagged as from staff")
	}
	if repo.tickets[ticket.ID].Status != StatusAnswered {
		t.Errorf("status after staff reply = %s, want ANSWERED", repo.tickets[ticket.ID].Status)
	}

	// The user following up reopens it
	if _, err := svc.Reply(context.Background(), ticket.ID, owner, false, ReplyRequest{Message: "Still missing."}); err != nil {
		t.Fatalf("user Reply returned error: %v", err)
	}
	if repo.tickets[ticket.ID].Status != StatusOpen {
		t.Errorf("status after user reply = %s, want OPEN", repo.tickets[ticket.ID].Status)
	}
}

func TestCloseTicket(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	owner := uuid.New()

	ticket, err := svc.CreateTicket(context.Background(), owner, CreateTicketRequest{
		Subject: "Duplicate charge",
		Message: "I was charged twice for the same order reference.",
	})
	if err != nil {
		t.Fatalf("CreateTicket returned error: %v", err)
	}

	if err := svc.CloseTicket(context.Background(), ticket.ID, owner, false); err != nil {
		t.Fatalf("CloseTicket returned error: %v", err)
	}
	if repo.tickets[ticket.ID].Status != StatusClosed {
		t.Errorf("status = %s, want CLOSED", repo.tickets[ticket.ID].Status)
	}

	// Closed tickets accept no more replies and cannot close twice
	if _, err := svc.Reply(context.Background(), ticket.ID, owner, false, ReplyRequest{Message: "One more thing"}); !errors.Is(err, ErrTicketClosed) {
		t.Errorf("Reply on closed ticket error = %v, want ErrTicketClosed", err)
	}
	if err := svc.CloseTicket(context.Background(), ticket.ID, owner, false); !errors.Is(err, ErrTicketClosed) {
		t.Errorf("second CloseTicket error = %v, want ErrTicketClosed", err)
	}
}
