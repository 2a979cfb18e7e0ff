package support

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrNotTicketOwner = errors.New("ticket belongs to another user")
	ErrTicketClosed   = errors.New("ticket is closed")
)

type Service interface {
	CreateTicket(ctx context.Context, userID uuid.UUID, req CreateTicketRequest) (*Ticket, error)
	GetTicket(ctx context.Context, ticketID, requesterID uuid.UUID, isStaff bool) (*Ticket, error)
	ListUserTickets(ctx context.Context, userID uuid.UUID, query TicketListQuery) (*PaginatedTickets, error)
	ListAllTickets(ctx context.Context, query TicketListQuery) (*PaginatedTickets, error)
	Reply(ctx context.Context, ticketID, authorID uuid.UUID, isStaff bool, req ReplyRequest) (*Reply, error)
	CloseTicket(ctx context.Context, ticketID, requesterID uuid.UUID, isStaff bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateTicket(ctx context.Context, userID uuid.UUID, req CreateTicketRequest) (*Ticket, error) {
	ticket := &Ticket{
		UserID:   userID,
		Subject:  req.Subject,
		Message:  req.Message,
		Category: req.Category,
		Status:   StatusOpen,
	}
	if ticket.Category == "" {
		ticket.Category = "general"
	}
	if req.OrderID != "" {
		orderID, err := uuid.Parse(req.OrderID)
		if err != nil {
			return nil, fmt.Errorf("invalid order id: %w", err)
		}
		ticket.OrderID = &orderID
	}

	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	return ticket, nil
}

func (s *service) GetTicket(ctx context.Context, ticketID, requesterID uuid.UUID, isStaff bool) (*Ticket, error) {
	ticket, err := s.repo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	if !isStaff && ticket.UserID != requesterID {
		return nil, ErrNotTicketOwner
	}
	return ticket, nil
}

func (s *service) ListUserTickets(ctx context.Context, userID uuid.UUID, query TicketListQuery) (*PaginatedTickets, error) {
	page, limit := normalizePaging(query)
	tickets, total, err := s.repo.ListByUser(ctx, userID, query.Status, page, limit)
	if err != nil {
		return nil, err
	}
	return &PaginatedTickets{Tickets: tickets, TotalCount: total, Page: page, Limit: limit}, nil
}

func (s *service) ListAllTickets(ctx context.Context, query TicketListQuery) (*PaginatedTickets, error) {
	page, limit := normalizePaging(query)
	tickets, total, err := s.repo.ListAll(ctx, query.Status, page, limit)
	if err != nil {
		return nil, err
	}
	return &PaginatedTickets{Tickets: tickets, TotalCount: total, Page: page, Limit: limit}, nil
}

func (s *service) Reply(ctx context.Context, ticketID, authorID uuid.UUID, isStaff bool, req ReplyRequest) (*Reply, error) {
	ticket, err := s.GetTicket(ctx, ticketID, authorID, isStaff)
	if err != nil {
		return nil, err
	}
	if ticket.Status == StatusClosed {
		return nil, ErrTicketClosed
	}

	reply := &Reply{
		TicketID:  ticket.ID,
		AuthorID:  authorID,
		FromStaff: isStaff,
		Message:   req.Message,
	}
	if err := s.repo.AddReply(ctx, reply); err != nil {
		return nil, fmt.Errorf("failed to add reply: %w", err)
	}

	// Staff replies flip the ticket to ANSWERED; a user reply reopens it.
	next := StatusOpen
	if isStaff {
		next = StatusAnswered
	}
	if err := s.repo.UpdateStatus(ctx, ticket.ID, next); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *service) CloseTicket(ctx context.Context, ticketID, requesterID uuid.UUID, isStaff bool) error {
	ticket, err := s.GetTicket(ctx, ticketID, requesterID, isStaff)
	if err != nil {
		return err
	}
	if ticket.Status == StatusClosed {
		return ErrTicketClosed
	}
	return s.repo.UpdateStatus(ctx, ticket.ID, StatusClosed)
}

func normalizePaging(query TicketListQuery) (int, int) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
