package model

import (
	"regexp"
	"strings"
	"time"
)

var (
	pinPattern   = regexp.MustCompile(`^[0-9]{4}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// User is a registered member of the scheduling service. The PIN is the
// only credential in the system and is compared by exact string equality.
type User struct {
	ID        string
	Name      string
	CPF       string
	Email     string
	PIN       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateUserRequest is the payload for user registration.
type CreateUserRequest struct {
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
	PIN   string `json:"pin"`
}

// Validate returns one message per invalid field, empty when the request
// is well formed.
func (r CreateUserRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name: must not be blank")
	} else if len(r.Name) > 100 {
		errs = append(errs, "name: must be at most 100 characters")
	}
	if strings.TrimSpace(r.CPF) == "" {
		errs = append(errs, "cpf: must not be blank")
	} else if !ValidCPF(r.CPF) {
		errs = append(errs, "cpf: invalid CPF")
	}
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email: must not be blank")
	} else if !emailPattern.MatchString(r.Email) {
		errs = append(errs, "email: invalid email address")
	}
	if !pinPattern.MatchString(r.PIN) {
		errs = append(errs, "pin: must be exactly 4 numeric digits")
	}
	return errs
}

// UpdateUserRequest is a partial update. Nil fields are left untouched;
// a present field always overwrites, so an explicit empty string is
// distinguishable from an absent one.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	PIN   *string `json:"pin"`
}

func (r UpdateUserRequest) Validate() []string {
	var errs []string
	if r.Name != nil && len(*r.Name) > 100 {
		errs = append(errs, "name: must be at most 100 characters")
	}
	if r.Email != nil && !emailPattern.MatchString(*r.Email) {
		errs = append(errs, "email: invalid email address")
	}
	if r.PIN != nil && !pinPattern.MatchString(*r.PIN) {
		errs = append(errs, "pin: must be exactly 4 numeric digits")
	}
	return errs
}

// UserResponse is the user representation returned by the API.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
	PIN   string `json:"pin"`
}

// ToUserResponse converts a User entity to its API representation.
func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		CPF:   u.CPF,
		Email: u.Email,
		PIN:   u.PIN,
	}
}

// ToUserResponseList converts a slice of users.
func ToUserResponseList(users []*User) []UserResponse {
	result := make([]UserResponse, len(users))
	for i, u := range users {
		result[i] = ToUserResponse(u)
	}
	return result
}
