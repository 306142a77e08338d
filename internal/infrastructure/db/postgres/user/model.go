package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		UUID         uuid.UUID
		Email        string
		PasswordHash string
		Type         *string
		CustomerID   uuid.UUID

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
