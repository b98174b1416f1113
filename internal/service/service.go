// Package service implements the event lifecycle and participation rules:
// PIN-gated mutation, edit and registration time windows, and the
// orchestration of the postal-code and weather lookups.
package service

import (
	"context"
	"strings"

	"github.com/eventify/eventify-go/internal/model"
)

// UserStore is the persistence surface the user directory needs.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
}

// EventStore is the persistence surface for events and the participant
// relation.
type EventStore interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id string) error
	AddParticipant(ctx context.Context, eventID, userID string) error
	RemoveParticipant(ctx context.Context, eventID, userID string) error
	IsParticipant(ctx context.Context, eventID, userID string) (bool, error)
	ListParticipants(ctx context.Context, eventID string) ([]*model.User, error)
	ListByParticipant(ctx context.Context, userID string) ([]*model.Event, error)
}

// AddressResolver resolves a postal code to a full address with coordinates.
type AddressResolver interface {
	Resolve(ctx context.Context, cep string) (model.AddressInfo, error)
}

// WeatherProvider fetches the daily forecast series for a coordinate pair.
type WeatherProvider interface {
	Forecast(ctx context.Context, latitude, longitude float64) ([]model.DailyForecast, error)
}

// ValidationError carries one message per invalid request field.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}
