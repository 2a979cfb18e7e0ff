package events

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ticketly/internal/shared/utils/response"
)

type Controller interface {
	CreateEvent(c *gin.Context)
	GetEvent(c *gin.Context)
	UpdateEvent(c *gin.Context)
	DeleteEvent(c *gin.Context)
	GetAllEvents(c *gin.Context)
	GetUpcomingEvents(c *gin.Context)
	GetMyEvents(c *gin.Context)
	UpdateEventAsAdmin(c *gin.Context)
	DeleteEventAsAdmin(c *gin.Context)
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

func (ctrl *controller) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	publisherID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	event, err := ctrl.service.CreateEvent(publisherID, req)
	if err != nil {
		switch err {
		case ErrUnsupportedCurrency:
			response.RespondJSON(c, "error", http.StatusBadRequest, "Currency is not supported", nil, req.CurrencyCode)
		case ErrEventInPast:
			response.RespondJSON(c, "error", http.StatusBadRequest, "Event date must be in the future", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create event", nil, nil)
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Event created successfully", event, nil)
}

func (ctrl *controller) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}

	event, err := ctrl.service.GetEventByID(id)
	if err != nil {
		if err == ErrEventNotFound {
			response.RespondJSON(c, "error", http.StatusNotFound, "Event not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to get event", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Event retrieved successfully", event, nil)
}

func (ctrl *controller) GetAllEvents(c *gin.Context) {
	var query EventListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := ctrl.service.GetAllEvents(query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list events", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Events retrieved successfully", result, nil)
}

func (ctrl *controller) GetUpcomingEvents(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := parsePositiveInt(raw); err == nil {
			limit = parsed
		}
	}

	eventList, err := ctrl.service.GetUpcomingEvents(limit)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list upcoming events", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Upcoming events retrieved successfully", eventList, nil)
}

func (ctrl *controller) GetMyEvents(c *gin.Context) {
	publisherID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	eventList, err := ctrl.service.GetPublisherEvents(publisherID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list publisher events", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Publisher events retrieved successfully", eventList, nil)
}

func (ctrl *controller) UpdateEvent(c *gin.Context) {
	ctrl.updateEvent(c, false)
}

func (ctrl *controller) UpdateEventAsAdmin(c *gin.Context) {
	ctrl.updateEvent(c, true)
}

func (ctrl *controller) updateEvent(c *gin.Context, asAdmin bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	actorID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var event *EventResponse
	if asAdmin {
		event, err = ctrl.service.UpdateEventAsAdmin(id, actorID, req)
	} else {
		event, err = ctrl.service.UpdateEvent(id, actorID, req)
	}

	if err != nil {
		switch err {
		case ErrEventNotFound:
			response.RespondJSON(c, "error", http.StatusNotFound, "Event not found", nil, nil)
		case ErrNotEventOwner:
			response.RespondJSON(c, "error", http.StatusForbidden, "You can only modify your own events", nil, nil)
		case ErrUnsupportedCurrency:
			response.RespondJSON(c, "error", http.StatusBadRequest, "Currency is not supported", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusBadRequest, "Failed to update event", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Event updated successfully", event, nil)
}

func (ctrl *controller) DeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}

	publisherID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	if err := ctrl.service.DeleteEvent(id, publisherID); err != nil {
		switch err {
		case ErrEventNotFound:
			response.RespondJSON(c, "error", http.StatusNotFound, "Event not found", nil, nil)
		case ErrNotEventOwner:
			response.RespondJSON(c, "error", http.StatusForbidden, "You can only delete your own events", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to delete event", nil, nil)
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Event deleted successfully", nil, nil)
}

func (ctrl *controller) DeleteEventAsAdmin(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}

	if err := ctrl.service.DeleteEventAsAdmin(id); err != nil {
		if err == ErrEventNotFound {
			response.RespondJSON(c, "error", http.StatusNotFound, "Event not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to delete event", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Event deleted successfully", nil, nil)
}
