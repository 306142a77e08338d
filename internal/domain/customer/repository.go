package customer

import (
	"context"

	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/infrastructure/db/postgres"
)

// Repository write methods take an explicit Querier so a single pgx.Tx can
// span the paired customer+user writes of one operation.
type Repository interface {
	FetchCustomers(ctx context.Context) (Customers, error)
	FetchCustomerByID(ctx context.Context, id UUID) (*Customer, error)
	// PhoneInUse reports whether phone belongs to any customer other than
	// exclude. Pass uuid.Nil to check against all customers.
	PhoneInUse(ctx context.Context, phone string, exclude UUID) (bool, error)
	CreateCustomer(ctx context.Context, q postgres.Querier, req Customer) (*Customer, error)
	UpdateCustomer(ctx context.Context, q postgres.Querier, req Customer) (*Customer, error)
	SetCustomerPhoto(ctx context.Context, q postgres.Querier, id UUID, photoURL *string) error
	DeleteCustomer(ctx context.Context, q postgres.Querier, id UUID) error
}
