package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"heritage-server/internal/schemas"
	"heritage-server/internal/services"
	"heritage-server/internal/utils"
)

type EventHdl interface {
	ListEvents(c *gin.Context)
	GetEvent(c *gin.Context)
	CreateEvent(c *gin.Context)
	UpdateEvent(c *gin.Context)
	DeleteEvent(c *gin.Context)
}

type EventHandler struct {
	EventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) EventHdl {
	return &EventHandler{
		EventService: eventService,
	}
}

func (handler *EventHandler) ListEvents(c *gin.Context) {
	events, err := handler.EventService.ListEvents(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if events == nil {
		events = []*schemas.Event{}
	}
	utils.WriteAndLogResponse(c, events, http.StatusOK)
}

func (handler *EventHandler) GetEvent(c *gin.Context) {
	id, ok := resourceId(c)
	if !ok {
		return
	}

	event, err := handler.EventService.GetEvent(c, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, event, http.StatusOK)
}

func (handler *EventHandler) CreateEvent(c *gin.Context) {
	accountId, ok := actingAccount(c)
	if !ok {
		return
	}
	request, ok := payload[schemas.EventRequest](c)
	if !ok {
		return
	}

	event, err := handler.EventService.CreateEvent(c, accountId, request)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, event, http.StatusCreated)
}

// UpdateEvent is only allowed for the account that created the event.
func (handler *EventHandler) UpdateEvent(c *gin.Context) {
	accountId, ok := actingAccount(c)
	if !ok {
		return
	}
	id, ok := resourceId(c)
	if !ok {
		return
	}
	request, ok := payload[schemas.UpdateEventRequest](c)
	if !ok {
		return
	}

	event, err := handler.EventService.UpdateEvent(c, accountId, id, request)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, event, http.StatusOK)
}

func (handler *EventHandler) DeleteEvent(c *gin.Context) {
	accountId, ok := actingAccount(c)
	if !ok {
		return
	}
	id, ok := resourceId(c)
	if !ok {
		return
	}

	if err := handler.EventService.DeleteEvent(c, accountId, id); err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, &schemas.MessageDTO{Message: "Event removed"}, http.StatusOK)
}
