package customer

import (
	"time"

	"github.com/google/uuid"
)

type (
	Customer struct {
		UUID    uuid.UUID
		Name    string
		Surname string
		Phone   string
		Photo   *string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Customers []*Customer
)
