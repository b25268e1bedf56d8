package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"heritage-server/internal/repositories"
	"heritage-server/internal/schemas"
	"heritage-server/internal/utils"
)

type EventService struct {
	events repositories.EventRepository
	now    func() time.Time
}

func NewEventService(events repositories.EventRepository) *EventService {
	return &EventService{events: events, now: time.Now}
}

func (s *EventService) ListEvents(ctx context.Context) ([]*schemas.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, storeError(err)
	}

	return events, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uuid.UUID) (*schemas.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, resourceError(err)
	}

	return event, nil
}

func (s *EventService) CreateEvent(ctx context.Context, actor uuid.UUID, req *schemas.EventRequest) (*schemas.Event, error) {
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, ErrValidation
	}

	event := &schemas.Event{
		ID:          uuid.New(),
		Name:        req.Name,
		Date:        date,
		Location:    req.Location,
		Description: req.Description,
		Category:    req.Category,
		CreatedBy:   actor,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, storeError(err)
	}

	return event, nil
}

// UpdateEvent applies the given fields if actor created the event.
func (s *EventService) UpdateEvent(ctx context.Context, actor, id uuid.UUID, req *schemas.UpdateEventRequest) (*schemas.Event, error) {
	event, err := CheckOwnership(ctx, s.events.FindByID, id, actor)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Date != nil {
		date, err := utils.ParseDate(*req.Date)
		if err != nil {
			return nil, ErrValidation
		}
		event.Date = date
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Category != nil {
		event.Category = *req.Category
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, resourceError(err)
	}

	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, actor, id uuid.UUID) error {
	if _, err := CheckOwnership(ctx, s.events.FindByID, id, actor); err != nil {
		return err
	}

	if err := s.events.Delete(ctx, id); err != nil {
		return resourceError(err)
	}

	return nil
}

func resourceError(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrResourceNotFound
	}
	return storeError(err)
}
