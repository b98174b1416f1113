package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/eventify/eventify-go/internal/model"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrAlreadyParticipant = errors.New("user is already a participant")
	ErrNotParticipant     = errors.New("user is not a participant")
)

const eventColumns = `id, owner_id, title, description, date_time, cep, address,
	address_number, district, city, state, created_at, updated_at`

// EventRepository handles event persistence and the participant relation.
// Participation lives in a single event_participants table written only
// here, so both sides of the many-to-many are views over the same rows and
// a membership change is one atomic statement.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event.
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	query := `INSERT INTO events (id, owner_id, title, description, date_time, cep, address,
		address_number, district, city, state)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		event.ID, event.OwnerID, event.Title, event.Description, event.DateTime,
		event.CEP, event.Address, event.AddressNumber, event.District, event.City, event.State,
	)
	return err
}

// GetByID retrieves an event by its ID.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`

	event := &model.Event{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&event.ID, &event.OwnerID, &event.Title, &event.Description, &event.DateTime,
		&event.CEP, &event.Address, &event.AddressNumber, &event.District, &event.City,
		&event.State, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

// List retrieves all events ordered by start time.
func (r *EventRepository) List(ctx context.Context) ([]*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date_time ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// Update persists the mutable fields of an event.
func (r *EventRepository) Update(ctx context.Context, event *model.Event) error {
	query := `UPDATE events SET title = ?, description = ?, date_time = ?, cep = ?,
		address = ?, address_number = ?, district = ?, city = ?, state = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		event.Title, event.Description, event.DateTime, event.CEP,
		event.Address, event.AddressNumber, event.District, event.City, event.State,
		event.ID,
	)
	return err
}

// Delete removes an event. Participation rows cascade.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

// AddParticipant registers a user for an event. The composite primary key
// makes concurrent registrations safe: the second insert for the same pair
// fails instead of overwriting the first.
func (r *EventRepository) AddParticipant(ctx context.Context, eventID, userID string) error {
	query := `INSERT INTO event_participants (event_id, user_id) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, eventID, userID)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrAlreadyParticipant
		}
		return err
	}
	return nil
}

// RemoveParticipant unregisters a user from an event.
func (r *EventRepository) RemoveParticipant(ctx context.Context, eventID, userID string) error {
	query := `DELETE FROM event_participants WHERE event_id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, eventID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotParticipant
	}
	return nil
}

// IsParticipant reports whether the user is registered for the event.
func (r *EventRepository) IsParticipant(ctx context.Context, eventID, userID string) (bool, error) {
	query := `SELECT COUNT(*) FROM event_participants WHERE event_id = ? AND user_id = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, eventID, userID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListParticipants retrieves the users registered for an event.
func (r *EventRepository) ListParticipants(ctx context.Context, eventID string) ([]*model.User, error) {
	query := `SELECT u.id, u.name, u.cpf, u.email, u.pin, u.created_at, u.updated_at
		FROM users u
		JOIN event_participants p ON p.user_id = u.id
		WHERE p.event_id = ?
		ORDER BY p.registered_at ASC`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		u := &model.User{}
		if err := rows.Scan(&u.ID, &u.Name, &u.CPF, &u.Email, &u.PIN, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// ListByParticipant retrieves the events a user has joined.
func (r *EventRepository) ListByParticipant(ctx context.Context, userID string) ([]*model.Event, error) {
	query := `SELECT e.id, e.owner_id, e.title, e.description, e.date_time, e.cep, e.address,
		e.address_number, e.district, e.city, e.state, e.created_at, e.updated_at
		FROM events e
		JOIN event_participants p ON p.event_id = e.id
		WHERE p.user_id = ?
		ORDER BY e.date_time ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]*model.Event, error) {
	var events []*model.Event
	for rows.Next() {
		e := &model.Event{}
		if err := rows.Scan(
			&e.ID, &e.OwnerID, &e.Title, &e.Description, &e.DateTime,
			&e.CEP, &e.Address, &e.AddressNumber, &e.District, &e.City,
			&e.State, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
