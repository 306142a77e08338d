package user

import (
	"context"

	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/infrastructure/db/postgres"
	"github.com/google/uuid"
)

type Repository interface {
	FetchUserByCustomerID(ctx context.Context, customerID uuid.UUID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	// EmailInUseByRole reports whether email is taken by a user whose type
	// matches role or is unset, excluding the user with UUID exclude.
	// Pass uuid.Nil to check against all such users.
	EmailInUseByRole(ctx context.Context, email, role string, exclude UUID) (bool, error)
	CreateUser(ctx context.Context, q postgres.Querier, req User) (*User, error)
	UpdateUserEmail(ctx context.Context, q postgres.Querier, id UUID, email string) (*User, error)
	DeleteUsersByCustomerID(ctx context.Context, q postgres.Querier, customerID uuid.UUID) error
}
