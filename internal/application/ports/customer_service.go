package ports

import (
	"context"
	"mime/multipart"

	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/domain/customer"
	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/domain/user"
)

type (
	CustomerCreateInput struct {
		Name     string
		Surname  string
		Email    string
		Password string
		Phone    string
		Type     string
		Photo    *multipart.FileHeader
	}
	CustomerUpdateInput struct {
		Name    string
		Surname string
		Email   string
		Phone   string
		Photo   *multipart.FileHeader
	}
)

type CustomerService interface {
	ListCustomers(ctx context.Context) (customer.Customers, error)
	CreateCustomer(ctx context.Context, in CustomerCreateInput) (*user.User, *customer.Customer, error)
	GetCustomer(ctx context.Context, id customer.UUID) (*customer.Customer, *user.User, error)
	UpdateCustomer(ctx context.Context, id customer.UUID, in CustomerUpdateInput) (*user.User, *customer.Customer, error)
	DeleteCustomer(ctx context.Context, id customer.UUID) (*customer.Customer, error)
	FindUserByEmail(ctx context.Context, email string) (*user.User, error)
}
