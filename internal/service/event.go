package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/eventify/eventify-go/internal/client"
	"github.com/eventify/eventify-go/internal/model"
	"github.com/eventify/eventify-go/internal/repository"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrNotOwner        = errors.New("user is not the owner of the event")
	ErrForbiddenUpdate = errors.New("event update not allowed inside the same-day window")
	ErrUnknownCEP      = errors.New("postal code does not exist")
)

// sameDayMinLead is the minimum lead time a same-day event may be moved to.
const sameDayMinLead = 4 * time.Hour

// EventService is the event lifecycle engine: creation, update and
// deletion, with ownership authorization and address enrichment.
type EventService struct {
	events   EventStore
	users    *UserService
	resolver AddressResolver
	now      func() time.Time
}

// NewEventService creates a new EventService.
func NewEventService(events EventStore, users *UserService, resolver AddressResolver) *EventService {
	return &EventService{
		events:   events,
		users:    users,
		resolver: resolver,
		now:      time.Now,
	}
}

// FindByID retrieves an event.
func (s *EventService) FindByID(ctx context.Context, id string) (*model.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if errors.Is(err, repository.ErrEventNotFound) {
		return nil, ErrEventNotFound
	}
	return event, err
}

// FindAll retrieves all events.
func (s *EventService) FindAll(ctx context.Context) ([]*model.Event, error) {
	return s.events.List(ctx)
}

// Create validates the request, authorizes the owner, resolves the postal
// code and persists the enriched event. Validation happens before any
// external call, and an unknown postal code leaves nothing persisted.
func (s *EventService) Create(ctx context.Context, ownerPin string, req model.CreateEventRequest) (*model.Event, error) {
	if fields := req.Validate(s.now()); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	if _, err := s.users.Validate(ctx, req.OwnerID, ownerPin); err != nil {
		return nil, err
	}

	event := &model.Event{
		ID:            uuid.NewString(),
		OwnerID:       req.OwnerID,
		Title:         req.Title,
		Description:   req.Description,
		DateTime:      req.DateTime,
		CEP:           req.CEP,
		AddressNumber: req.AddressNumber,
	}

	if err := s.enrichAddress(ctx, event); err != nil {
		return nil, err
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Update applies a partial patch to an event. Only the owner may update,
// same-day events are protected by the edit window, and the address is
// re-resolved exactly when the patch changes the postal code.
func (s *EventService) Update(ctx context.Context, id, ownerID, ownerPin string, req model.UpdateEventRequest) (*model.Event, error) {
	if fields := req.Validate(s.now()); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	event, err := s.findAndAuthorizeOwner(ctx, id, ownerID, ownerPin)
	if err != nil {
		return nil, err
	}

	if req.DateTime != nil {
		if err := s.checkSameDayPolicy(event.DateTime, *req.DateTime); err != nil {
			return nil, err
		}
	}

	previousCEP := event.CEP

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.DateTime != nil {
		event.DateTime = *req.DateTime
	}
	if req.CEP != nil {
		event.CEP = *req.CEP
	}
	if req.AddressNumber != nil {
		event.AddressNumber = *req.AddressNumber
	}

	if event.CEP != previousCEP {
		if err := s.enrichAddress(ctx, event); err != nil {
			return nil, err
		}
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes an event. Ownership is checked; there is no time-window
// restriction on deletion.
func (s *EventService) Delete(ctx context.Context, id, ownerID, ownerPin string) error {
	event, err := s.findAndAuthorizeOwner(ctx, id, ownerID, ownerPin)
	if err != nil {
		return err
	}

	err = s.events.Delete(ctx, event.ID)
	if errors.Is(err, repository.ErrEventNotFound) {
		return ErrEventNotFound
	}
	return err
}

func (s *EventService) findAndAuthorizeOwner(ctx context.Context, id, ownerID, ownerPin string) (*model.Event, error) {
	event, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.Validate(ctx, ownerID, ownerPin); err != nil {
		return nil, err
	}
	if event.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return event, nil
}

// checkSameDayPolicy enforces the edit window: when the event currently
// falls on today's calendar day, the new start must stay on the same day
// and leave at least 4 hours of lead time. Events on a future day may be
// moved freely.
func (s *EventService) checkSameDayPolicy(current, proposed time.Time) error {
	now := s.now()
	if !sameCalendarDay(current, now) {
		return nil
	}
	if !sameCalendarDay(current, proposed) {
		return ErrForbiddenUpdate
	}
	if proposed.Before(now.Add(sameDayMinLead)) {
		return ErrForbiddenUpdate
	}
	return nil
}

func sameCalendarDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// enrichAddress resolves the event's postal code and copies the resolved
// fields verbatim onto the event.
func (s *EventService) enrichAddress(ctx context.Context, event *model.Event) error {
	info, err := s.resolver.Resolve(ctx, event.CEP)
	if err != nil {
		if errors.Is(err, client.ErrCEPNotFound) {
			return ErrUnknownCEP
		}
		return err
	}

	event.Address = info.Address
	event.District = info.District
	event.City = info.City
	event.State = info.State
	return nil
}
