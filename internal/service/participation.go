package service

import (
	"context"
	"errors"
	"time"

	"github.com/eventify/eventify-go/internal/model"
	"github.com/eventify/eventify-go/internal/repository"
)

var (
	ErrForbiddenRegister    = errors.New("registration not allowed for this event")
	ErrImpossibleUnregister = errors.New("unregistration not possible for this event")
)

// Joining closes earlier than leaving: a late joiner needs lead time to
// travel, while leaving only reduces headcount. Both cutoffs are inclusive:
// exactly at the cutoff the operation still succeeds.
const (
	registerCutoff   = 30 * time.Minute
	unregisterCutoff = 15 * time.Minute
)

// ParticipationService manages join/leave state transitions for events.
// Membership is a single relation written through the event store, so a
// registration is one atomic insert rather than a read-modify-write of a
// participant set.
type ParticipationService struct {
	events EventStore
	users  *UserService
	now    func() time.Time
}

// NewParticipationService creates a new ParticipationService.
func NewParticipationService(events EventStore, users *UserService) *ParticipationService {
	return &ParticipationService{
		events: events,
		users:  users,
		now:    time.Now,
	}
}

// Register adds the user to the event's participants. It fails when the
// user already participates, the event has started, or less than 30
// minutes remain before the start.
func (s *ParticipationService) Register(ctx context.Context, eventID, userID, userPin string) error {
	event, err := s.loadAndAuthorize(ctx, eventID, userID, userPin)
	if err != nil {
		return err
	}

	already, err := s.events.IsParticipant(ctx, eventID, userID)
	if err != nil {
		return err
	}
	if already {
		return ErrForbiddenRegister
	}

	now := s.now()
	if now.After(event.DateTime) {
		return ErrForbiddenRegister
	}
	if now.After(event.DateTime.Add(-registerCutoff)) {
		return ErrForbiddenRegister
	}

	err = s.events.AddParticipant(ctx, eventID, userID)
	if errors.Is(err, repository.ErrAlreadyParticipant) {
		// Lost a race with a concurrent registration of the same pair.
		return ErrForbiddenRegister
	}
	return err
}

// Unregister removes the user from the event's participants. It fails when
// the user does not participate, the event has started, or less than 15
// minutes remain before the start.
func (s *ParticipationService) Unregister(ctx context.Context, eventID, userID, userPin string) error {
	event, err := s.loadAndAuthorize(ctx, eventID, userID, userPin)
	if err != nil {
		return err
	}

	participates, err := s.events.IsParticipant(ctx, eventID, userID)
	if err != nil {
		return err
	}
	if !participates {
		return ErrImpossibleUnregister
	}

	now := s.now()
	if now.After(event.DateTime) {
		return ErrImpossibleUnregister
	}
	if now.After(event.DateTime.Add(-unregisterCutoff)) {
		return ErrImpossibleUnregister
	}

	err = s.events.RemoveParticipant(ctx, eventID, userID)
	if errors.Is(err, repository.ErrNotParticipant) {
		return ErrImpossibleUnregister
	}
	return err
}

// ListParticipants returns the users registered for an event.
func (s *ParticipationService) ListParticipants(ctx context.Context, eventID string) ([]*model.User, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return s.events.ListParticipants(ctx, eventID)
}

func (s *ParticipationService) loadAndAuthorize(ctx context.Context, eventID, userID, userPin string) (*model.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if _, err := s.users.Validate(ctx, userID, userPin); err != nil {
		return nil, err
	}
	return event, nil
}
