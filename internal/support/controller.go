package support

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ticketly/internal/shared/utils/response"
)

type Controller interface {
	CreateTicket(c *gin.Context)
	GetTicket(c *gin.Context)
	GetMyTickets(c *gin.Context)
	Reply(c *gin.Context)
	CloseTicket(c *gin.Context)
	GetAllTickets(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func isStaff(c *gin.Context) bool {
	role, exists := c.Get("user_role")
	return exists && role == "ADMIN"
}

func (ctrl *controller) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	ticket, err := ctrl.service.CreateTicket(c.Request.Context(), userID, req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Failed to create ticket", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusCreated, "Ticket created successfully", ticket, nil)
}

func (ctrl *controller) GetTicket(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid ticket ID", nil, err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	ticket, err := ctrl.service.GetTicket(c.Request.Context(), ticketID, userID, isStaff(c))
	if err != nil {
		switch err {
		case ErrTicketNotFound:
			response.RespondJSON(c, "error", http.StatusNotFound, "Ticket not found", nil, nil)
		case ErrNotTicketOwner:
			response.RespondJSON(c, "error", http.StatusForbidden, "You cannot view this ticket", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch ticket", nil, err.Error())
		}
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Ticket retrieved successfully", ticket, nil)
}

func (ctrl *controller) GetMyTickets(c *gin.Context) {
	var query TicketListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	result, err := ctrl.service.ListUserTickets(c.Request.Context(), userID, query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch tickets", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Tickets retrieved successfully", result, nil)
}

func (ctrl *controller) Reply(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid ticket ID", nil, err.Error())
		return
	}

	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	reply, err := ctrl.service.Reply(c.Request.Context(), ticketID, userID, isStaff(c), req)
	if err != nil {
		switch err {
		case ErrTicketNotFound:
			response.RespondJSON(c, "error", http.StatusNotFound, "Ticket not found", nil, nil)
		case ErrNotTicketOwner:
			response.RespondJSON(c, "error", http.StatusForbidden, "You cannot reply to this ticket", nil, nil)
		case ErrTicketClosed:
			response.RespondJSON(c, "error", http.StatusConflict, "Ticket is closed", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to add reply", nil, err.Error())
		}
		return
	}
	response.RespondJSON(c, "success", http.StatusCreated, "Reply added successfully", reply, nil)
}

func (ctrl *controller) CloseTicket(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid ticket ID", nil, err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	if err := ctrl.service.CloseTicket(c.Request.Context(), ticketID, userID, isStaff(c)); err != nil {
		switch err {
		case ErrTicketNotFound:
			response.RespondJSON(c, "error", http.StatusNotFound, "Ticket not found", nil, nil)
		case ErrNotTicketOwner:
			response.RespondJSON(c, "error", http.StatusForbidden, "You cannot close this ticket", nil, nil)
		case ErrTicketClosed:
			response.RespondJSON(c, "error", http.StatusConflict, "Ticket is already closed", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to close ticket", nil, err.Error())
		}
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Ticket closed successfully", nil, nil)
}

func (ctrl *controller) GetAllTickets(c *gin.Context) {
	var query TicketListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := ctrl.service.ListAllTickets(c.Request.Context(), query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch tickets", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Tickets retrieved successfully", result, nil)
}
