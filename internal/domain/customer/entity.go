package customer

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID     = uuid.UUID
	Customer struct {
		UUID    UUID
		Name    string
		Surname string
		Phone   string
		Photo   *string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Customers []*Customer
)
