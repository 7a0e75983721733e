package entities

import "github.com/google/uuid"

// Principal is the authenticated caller of a request. It is read-only for the request's lifetime.
type Principal struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  UserRole  `json:"role"`
}
