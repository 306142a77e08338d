package user

import (
	"time"

	"github.com/google/uuid"
)

// TypeCustomer is the role marker that scopes email uniqueness: an email may
// be reused by accounts of other types, but not by another customer-role (or
// untyped) account.
const TypeCustomer = "cliente"

type (
	UUID = uuid.UUID
	User struct {
		UUID         UUID
		Email        string
		PasswordHash string
		Type         string
		CustomerID   uuid.UUID

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
