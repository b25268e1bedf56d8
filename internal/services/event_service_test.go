package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"heritage-server/internal/repositories"
	repoMocks "heritage-server/internal/repositories/mocks"
	"heritage-server/internal/schemas"
)

func TestEventService_CreateEvent(t *testing.T) {
	events := &repoMocks.MockEventRepository{}
	actor := uuid.New()
	events.On("Create", mock.Anything, mock.MatchedBy(func(event *schemas.Event) bool {
		return event.CreatedBy == actor && event.Name == "Pongal" &&
			event.Date.Equal(time.Date(2027, 1, 14, 0, 0, 0, 0, time.UTC))
	})).Return(nil)

	event, err := NewEventService(events).CreateEvent(context.Background(), actor, &schemas.EventRequest{
		Name: "Pongal",
		Date: "2027-01-14",
	})
	require.NoError(t, err)
	assert.Equal(t, actor, event.OwnerID())
	events.AssertExpectations(t)
}

func TestEventService_OwnershipOnMutation(t *testing.T) {
	owner, stranger := uuid.New(), uuid.New()
	existing := &schemas.Event{ID: uuid.New(), Name: "Onam", CreatedBy: owner}
	missing := uuid.New()

	newService := func() (*EventService, *repoMocks.MockEventRepository) {
		events := &repoMocks.MockEventRepository{}
		copied := *existing
		events.On("FindByID", mock.Anything, existing.ID).Return(&copied, nil)
		return NewEventService(events), events
	}

	name := "Onam Sadhya"

	t.Run("stranger cannot update", func(t *testing.T) {
		service, events := newService()
		_, err := service.UpdateEvent(context.Background(), stranger, existing.ID, &schemas.UpdateEventRequest{Name: &name})
		assert.ErrorIs(t, err, ErrForbidden)
		events.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		service, events := newService()
		assert.ErrorIs(t, service.DeleteEvent(context.Background(), stranger, existing.ID), ErrForbidden)
		events.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing event", func(t *testing.T) {
		service, events := newService()
		events.On("FindByID", mock.Anything, missing).Return(nil, repositories.ErrNotFound)
		_, err := service.UpdateEvent(context.Background(), owner, missing, &schemas.UpdateEventRequest{Name: &name})
		assert.ErrorIs(t, err, ErrResourceNotFound)
		assert.ErrorIs(t, service.DeleteEvent(context.Background(), stranger, missing), ErrResourceNotFound)
		events.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		events.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("owner updates", func(t *testing.T) {
		service, events := newService()
		events.On("Update", mock.Anything, mock.Anything).Return(nil)
		updated, err := service.UpdateEvent(context.Background(), owner, existing.ID, &schemas.UpdateEventRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Onam Sadhya", updated.Name)
		events.AssertExpectations(t)
	})

	t.Run("owner deletes", func(t *testing.T) {
		service, events := newService()
		events.On("Delete", mock.Anything, existing.ID).Return(nil)
		assert.NoError(t, service.DeleteEvent(context.Background(), owner, existing.ID))
		events.AssertExpectations(t)
	})
}
