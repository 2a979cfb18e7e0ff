package orders

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ticketly/internal/events"
	"ticketly/internal/fees"
	"ticketly/internal/shared/utils/response"
	"ticketly/internal/users"
)

type Controller interface {
	CreateOrder(c *gin.Context)
	CancelOrder(c *gin.Context)
	GetOrder(c *gin.Context)
	GetMyOrders(c *gin.Context)
	GetPublisherSales(c *gin.Context)
	GetPublisherEarnings(c *gin.Context)
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

func isAdmin(c *gin.Context) bool {
	role, exists := c.Get("user_role")
	return exists && role.(string) == string(users.RoleAdmin)
}

func (ctrl *controller) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	order, err := ctrl.service.CreateOrder(c.Request.Context(), userID, req)
	if err != nil {
		switch err {
		case events.ErrEventNotFound:
			response.RespondJSON(c, "error", http.StatusNotFound, "Event not found", nil, nil)
		case events.ErrEventNotPublished, events.ErrEventInPast:
			response.RespondJSON(c, "error", http.StatusConflict, "Event is not open for sale", nil, nil)
		case ErrSoldOut:
			response.RespondJSON(c, "error", http.StatusConflict, "Not enough tickets available", nil, nil)
		case ErrTotalMismatch:
			response.RespondJSON(c, "error", http.StatusUnprocessableEntity, "Displayed total does not match the server calculation", nil, nil)
		case fees.ErrUnknownCurrency:
			response.RespondJSON(c, "error", http.StatusBadRequest, "Event currency is not supported", nil, nil)
		case fees.ErrInvalidInput:
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid price or quantity", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create order", nil, nil)
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Order confirmed", order, nil)
}

func (ctrl *controller) CancelOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid order ID", nil, nil)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	order, err := ctrl.service.CancelOrder(c.Request.Context(), orderID, userID)
	if err != nil {
		switch err {
		case ErrOrderNotFound:
			response.RespondJSON(c, "error", http.StatusNotFound, "Order not found", nil, nil)
		case ErrNotOrderOwner:
			response.RespondJSON(c, "error", http.StatusForbidden, "You can only cancel your own orders", nil, nil)
		case ErrAlreadyCancelled:
			response.RespondJSON(c, "error", http.StatusConflict, "Order is already cancelled", nil, nil)
		case ErrEventAlreadyHeld:
			response.RespondJSON(c, "error", http.StatusConflict, "Orders for past events cannot be cancelled", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to cancel order", nil, nil)
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Order cancelled", order, nil)
}

func (ctrl *controller) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid order ID", nil, nil)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	order, err := ctrl.service.GetOrder(c.Request.Context(), orderID, userID, isAdmin(c))
	if err != nil {
		switch err {
		case ErrOrderNotFound:
			response.RespondJSON(c, "error", http.StatusNotFound, "Order not found", nil, nil)
		case ErrNotOrderOwner:
			response.RespondJSON(c, "error", http.StatusForbidden, "You can only view your own orders", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to get order", nil, nil)
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Order retrieved", order, nil)
}

func (ctrl *controller) GetMyOrders(c *gin.Context) {
	var query OrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	result, err := ctrl.service.GetUserOrders(c.Request.Context(), userID, query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list orders", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Orders retrieved", result, nil)
}

func (ctrl *controller) GetPublisherSales(c *gin.Context) {
	var query OrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	publisherID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	sales, totalCount, err := ctrl.service.GetPublisherSales(c.Request.Context(), publisherID, query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list sales", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Sales retrieved", gin.H{
		"sales":       sales,
		"total_count": totalCount,
	}, nil)
}

func (ctrl *controller) GetPublisherEarnings(c *gin.Context) {
	publisherID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	summary, err := ctrl.service.GetPublisherEarnings(c.Request.Context(), publisherID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to compute earnings", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Earnings retrieved", summary, nil)
}
