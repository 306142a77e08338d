package customer

import (
	"time"

	"github.com/google/uuid"
)

type (
	Customer struct {
		UUID      uuid.UUID `json:"id"`
		Name      string    `json:"name"`
		Surname   string    `json:"surname"`
		Phone     string    `json:"phone"`
		Photo     *string   `json:"photo"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	Customers []Customer

	// Account is a user with its paired customer nested, the shape returned
	// by create and update.
	Account struct {
		UUID     uuid.UUID `json:"id"`
		Email    string    `json:"email"`
		Type     string    `json:"type"`
		Customer Customer  `json:"customer"`
	}

	// Profile is the flattened read view: the customer with the paired
	// user's email and type copied in.
	Profile struct {
		UUID      uuid.UUID `json:"id"`
		Name      string    `json:"name"`
		Surname   string    `json:"surname"`
		Phone     string    `json:"phone"`
		Photo     *string   `json:"photo"`
		Email     string    `json:"email"`
		Type      string    `json:"type"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)
