package customer

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "github.com/benjamincondori/Api-Asistencia-Tecnica/internal/domain/customer"
	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/infrastructure/db/postgres"
)

// ErrPhoneAlreadyExists surfaces the customers_phone_key constraint.
var ErrPhoneAlreadyExists = errors.New("phone already in use")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchCustomers(ctx context.Context) (domain.Customers, error) {
	rows, err := r.db.Query(ctx, SelectCustomers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cs Customers
	for rows.Next() {
		c := new(Customer)

		if err = rows.Scan(
			&c.UUID,
			&c.Name,
			&c.Surname,
			&c.Phone,
			&c.Photo,

			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, err
		}

		cs = append(cs, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&cs), nil
}

func (r *Repository) FetchCustomerByID(ctx context.Context, id domain.UUID) (*domain.Customer, error) {
	c := new(Customer)
	err := r.db.QueryRow(ctx, SelectCustomerByID, id).Scan(
		&c.UUID,
		&c.Name,
		&c.Surname,
		&c.Phone,
		&c.Photo,

		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), err
}

func (r *Repository) PhoneInUse(ctx context.Context, phone string, exclude domain.UUID) (bool, error) {
	var inUse bool
	if err := r.db.QueryRow(ctx, SelectPhoneInUse, phone, exclude).Scan(&inUse); err != nil {
		return false, err
	}

	return inUse, nil
}

func (r *Repository) CreateCustomer(ctx context.Context, q postgres.Querier, req domain.Customer) (*domain.Customer, error) {
	c := new(Customer)

	err := q.QueryRow(
		ctx,
		InsertCustomer,
		req.Name, req.Surname, req.Phone, req.Photo,
	).Scan(
		&c.UUID,
		&c.Name,
		&c.Surname,
		&c.Phone,
		&c.Photo,

		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrPhoneAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(c), err
}

func (r *Repository) UpdateCustomer(ctx context.Context, q postgres.Querier, req domain.Customer) (*domain.Customer, error) {
	c := new(Customer)

	err := q.QueryRow(ctx, UpdateCustomerByID,
		req.Name, req.Surname, req.Phone, req.UUID,
	).Scan(
		&c.UUID,
		&c.Name,
		&c.Surname,
		&c.Phone,
		&c.Photo,

		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrPhoneAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), err
}

func (r *Repository) SetCustomerPhoto(ctx context.Context, q postgres.Querier, id domain.UUID, photoURL *string) error {
	_, err := q.Exec(ctx, UpdateCustomerPhotoByID, photoURL, id)
	return err
}

func (r *Repository) DeleteCustomer(ctx context.Context, q postgres.Querier, id domain.UUID) error {
	_, err := q.Exec(ctx, DeleteCustomerByID, id)
	return err
}
