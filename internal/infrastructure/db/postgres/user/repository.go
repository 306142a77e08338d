package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domain "github.com/benjamincondori/Api-Asistencia-Tecnica/internal/domain/user"
	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/infrastructure/db/postgres"
)

// ErrEmailAlreadyExists surfaces the role-scoped users_email_customer_key
// partial unique index.
var ErrEmailAlreadyExists = errors.New("email already in use")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUserByCustomerID(ctx context.Context, customerID uuid.UUID) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByCustomerID, customerID).Scan(
		&u.UUID,
		&u.Email,
		&u.PasswordHash,
		&u.Type,
		&u.CustomerID,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByEmail, email).Scan(
		&u.UUID,
		&u.Email,
		&u.PasswordHash,
		&u.Type,
		&u.CustomerID,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) EmailInUseByRole(ctx context.Context, email, role string, exclude domain.UUID) (bool, error) {
	var inUse bool
	if err := r.db.QueryRow(ctx, SelectEmailInUseByRole, email, role, exclude).Scan(&inUse); err != nil {
		return false, err
	}

	return inUse, nil
}

func (r *Repository) CreateUser(ctx context.Context, q postgres.Querier, req domain.User) (*domain.User, error) {
	u := new(User)

	err := q.QueryRow(
		ctx,
		InsertUser,
		req.Email, req.PasswordHash, req.Type, req.CustomerID,
	).Scan(
		&u.UUID,
		&u.Email,
		&u.PasswordHash,
		&u.Type,
		&u.CustomerID,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) UpdateUserEmail(ctx context.Context, q postgres.Querier, id domain.UUID, email string) (*domain.User, error) {
	u := new(User)

	err := q.QueryRow(ctx, UpdateUserEmailByID, email, id).Scan(
		&u.UUID,
		&u.Email,
		&u.PasswordHash,
		&u.Type,
		&u.CustomerID,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) DeleteUsersByCustomerID(ctx context.Context, q postgres.Querier, customerID uuid.UUID) error {
	_, err := q.Exec(ctx, DeleteUsersByCustomerID, customerID)
	return err
}
