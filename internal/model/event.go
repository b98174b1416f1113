package model

import (
	"regexp"
	"strings"
	"time"
)

var cepPattern = regexp.MustCompile(`^[0-9]{5}-[0-9]{3}$`)

// Event is a schedulable entity. Address, district, city and state are
// always a verbatim copy of the most recent successful postal-code
// resolution for CEP and are never supplied by clients.
type Event struct {
	ID            string
	OwnerID       string
	Title         string
	Description   string
	DateTime      time.Time
	CEP           string
	Address       string
	AddressNumber string
	District      string
	City          string
	State         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CreateEventRequest is the payload for event creation.
type CreateEventRequest struct {
	OwnerID       string    `json:"ownerId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DateTime      time.Time `json:"dateTime"`
	CEP           string    `json:"cep"`
	AddressNumber string    `json:"addressNumber"`
}

// Validate returns one message per invalid field. The dateTime check uses
// now so callers can pin the clock in tests.
func (r CreateEventRequest) Validate(now time.Time) []string {
	var errs []string
	if r.OwnerID == "" {
		errs = append(errs, "ownerId: must not be blank")
	}
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, "title: must not be blank")
	} else if len(r.Title) > 100 {
		errs = append(errs, "title: must be at most 100 characters")
	}
	if strings.TrimSpace(r.Description) == "" {
		errs = append(errs, "description: must not be blank")
	}
	if r.DateTime.IsZero() {
		errs = append(errs, "dateTime: must not be null")
	} else if !r.DateTime.After(now) {
		errs = append(errs, "dateTime: must be in the future")
	}
	if !cepPattern.MatchString(r.CEP) {
		errs = append(errs, "cep: invalid CEP, expected format 12345-678")
	}
	return errs
}

// UpdateEventRequest is a partial update; nil fields are left untouched.
type UpdateEventRequest struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	DateTime      *time.Time `json:"dateTime"`
	CEP           *string    `json:"cep"`
	AddressNumber *string    `json:"addressNumber"`
}

func (r UpdateEventRequest) Validate(now time.Time) []string {
	var errs []string
	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			errs = append(errs, "title: must not be blank")
		} else if len(*r.Title) > 100 {
			errs = append(errs, "title: must be at most 100 characters")
		}
	}
	if r.DateTime != nil && !r.DateTime.After(now) {
		errs = append(errs, "dateTime: must be in the future")
	}
	if r.CEP != nil && !cepPattern.MatchString(*r.CEP) {
		errs = append(errs, "cep: invalid CEP, expected format 12345-678")
	}
	return errs
}

// EventResponse is the event representation returned by the API.
type EventResponse struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"ownerId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DateTime      time.Time `json:"dateTime"`
	CEP           string    `json:"cep"`
	Address       string    `json:"address"`
	AddressNumber string    `json:"addressNumber"`
	District      string    `json:"district"`
	City          string    `json:"city"`
	State         string    `json:"state"`
}

// EventWithForecastResponse pairs an event with its 14-day forecast.
type EventWithForecastResponse struct {
	Event    EventResponse   `json:"event"`
	Forecast []DailyForecast `json:"forecast"`
}

// ToEventResponse converts an Event entity to its API representation.
func ToEventResponse(e *Event) EventResponse {
	return EventResponse{
		ID:            e.ID,
		OwnerID:       e.OwnerID,
		Title:         e.Title,
		Description:   e.Description,
		DateTime:      e.DateTime,
		CEP:           e.CEP,
		Address:       e.Address,
		AddressNumber: e.AddressNumber,
		District:      e.District,
		City:          e.City,
		State:         e.State,
	}
}

// ToEventResponseList converts a slice of events.
func ToEventResponseList(events []*Event) []EventResponse {
	result := make([]EventResponse, len(events))
	for i, e := range events {
		result[i] = ToEventResponse(e)
	}
	return result
}
