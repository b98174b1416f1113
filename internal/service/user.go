package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/eventify/eventify-go/internal/model"
	"github.com/eventify/eventify-go/internal/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidPin   = errors.New("invalid pin")
	ErrCPFTaken     = errors.New("cpf already registered")
)

// UserService is the user directory: it owns user records and is the only
// authorization primitive in the system.
type UserService struct {
	users  UserStore
	events EventStore
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore, events EventStore) *UserService {
	return &UserService{users: users, events: events}
}

// Validate looks up a user and checks the supplied PIN against the stored
// one by exact string equality. Every mutating operation in the system
// authorizes through this method.
func (s *UserService) Validate(ctx context.Context, id, pin string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.PIN != pin {
		return nil, ErrInvalidPin
	}
	return user, nil
}

// Create registers a new user. The CPF is unique across the directory.
func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	if fields := req.Validate(); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	user := &model.User{
		ID:    uuid.NewString(),
		Name:  req.Name,
		CPF:   req.CPF,
		Email: req.Email,
		PIN:   req.PIN,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateCPF) {
			return nil, ErrCPFTaken
		}
		return nil, err
	}

	return user, nil
}

// Update applies the present fields of the patch to the user. Absent
// fields are left untouched.
func (s *UserService) Update(ctx context.Context, id, pin string, req model.UpdateUserRequest) (*model.User, error) {
	if fields := req.Validate(); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	user, err := s.Validate(ctx, id, pin)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.PIN != nil {
		user.PIN = *req.PIN
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user. Their participation links are removed with them.
func (s *UserService) Delete(ctx context.Context, id, pin string) error {
	if _, err := s.Validate(ctx, id, pin); err != nil {
		return err
	}

	err := s.users.Delete(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrUserNotFound
	}
	return err
}

// EventsByUser returns the events the user participates in.
func (s *UserService) EventsByUser(ctx context.Context, id, pin string) ([]*model.Event, error) {
	if _, err := s.Validate(ctx, id, pin); err != nil {
		return nil, err
	}
	return s.events.ListByParticipant(ctx, id)
}
