package service

import (
	"context"
	"sort"

	"github.com/eventify/eventify-go/internal/model"
	"github.com/eventify/eventify-go/internal/repository"
)

// memUserStore is an in-memory UserStore.
type memUserStore struct {
	users map[string]*model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*model.User)}
}

func (s *memUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range s.users {
		if u.CPF == user.CPF {
			return repository.ErrDuplicateCPF
		}
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *memUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memUserStore) Update(_ context.Context, user *model.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *memUserStore) Delete(_ context.Context, id string) error {
	if _, ok := s.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

// memEventStore is an in-memory EventStore with a participant relation.
type memEventStore struct {
	events       map[string]*model.Event
	participants map[string]map[string]bool // eventID -> userID set
	users        *memUserStore
}

func newMemEventStore(users *memUserStore) *memEventStore {
	return &memEventStore{
		events:       make(map[string]*model.Event),
		participants: make(map[string]map[string]bool),
		users:        users,
	}
}

func (s *memEventStore) Create(_ context.Context, event *model.Event) error {
	cp := *event
	s.events[event.ID] = &cp
	return nil
}

func (s *memEventStore) GetByID(_ context.Context, id string) (*model.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

func (s *memEventStore) List(_ context.Context) ([]*model.Event, error) {
	var events []*model.Event
	for _, e := range s.events {
		cp := *e
		events = append(events, &cp)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].DateTime.Before(events[j].DateTime) })
	return events, nil
}

func (s *memEventStore) Update(_ context.Context, event *model.Event) error {
	if _, ok := s.events[event.ID]; !ok {
		return repository.ErrEventNotFound
	}
	cp := *event
	s.events[event.ID] = &cp
	return nil
}

func (s *memEventStore) Delete(_ context.Context, id string) error {
	if _, ok := s.events[id]; !ok {
		return repository.ErrEventNotFound
	}
	delete(s.events, id)
	delete(s.participants, id)
	return nil
}

func (s *memEventStore) AddParticipant(_ context.Context, eventID, userID string) error {
	set, ok := s.participants[eventID]
	if !ok {
		set = make(map[string]bool)
		s.participants[eventID] = set
	}
	if set[userID] {
		return repository.ErrAlreadyParticipant
	}
	set[userID] = true
	return nil
}

func (s *memEventStore) RemoveParticipant(_ context.Context, eventID, userID string) error {
	if !s.participants[eventID][userID] {
		return repository.ErrNotParticipant
	}
	delete(s.participants[eventID], userID)
	return nil
}

func (s *memEventStore) IsParticipant(_ context.Context, eventID, userID string) (bool, error) {
	return s.participants[eventID][userID], nil
}

func (s *memEventStore) ListParticipants(_ context.Context, eventID string) ([]*model.User, error) {
	var users []*model.User
	for userID := range s.participants[eventID] {
		if u, ok := s.users.users[userID]; ok {
			cp := *u
			users = append(users, &cp)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *memEventStore) ListByParticipant(_ context.Context, userID string) ([]*model.Event, error) {
	var events []*model.Event
	for eventID, set := range s.participants {
		if set[userID] {
			cp := *s.events[eventID]
			events = append(events, &cp)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].DateTime.Before(events[j].DateTime) })
	return events, nil
}

// stubResolver is a canned AddressResolver that counts calls.
type stubResolver struct {
	info  model.AddressInfo
	err   error
	calls int
}

func (r *stubResolver) Resolve(_ context.Context, _ string) (model.AddressInfo, error) {
	r.calls++
	if r.err != nil {
		return model.AddressInfo{}, r.err
	}
	return r.info, nil
}

// stubWeather is a canned WeatherProvider that counts calls.
type stubWeather struct {
	days  []model.DailyForecast
	err   error
	calls int
	lat   float64
	lng   float64
}

func (w *stubWeather) Forecast(_ context.Context, lat, lng float64) ([]model.DailyForecast, error) {
	w.calls++
	w.lat, w.lng = lat, lng
	if w.err != nil {
		return nil, w.err
	}
	return w.days, nil
}
