package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/mail"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/application/ports"
	domainCustomer "github.com/benjamincondori/Api-Asistencia-Tecnica/internal/domain/customer"
	domainUser "github.com/benjamincondori/Api-Asistencia-Tecnica/internal/domain/user"
	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/infrastructure/db/postgres"
	customerDB "github.com/benjamincondori/Api-Asistencia-Tecnica/internal/infrastructure/db/postgres/customer"
	userDB "github.com/benjamincondori/Api-Asistencia-Tecnica/internal/infrastructure/db/postgres/user"
	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/infrastructure/mq"
	dtoCustomer "github.com/benjamincondori/Api-Asistencia-Tecnica/internal/interface/api/rest/dto/customer"
)

// 10MB
const maxPhotoSize = int64(10 << 20)

var photoExts = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".png":  {},
}

type CustomerService struct {
	logger    *zap.Logger
	db        postgres.DB
	customers domainCustomer.Repository
	users     domainUser.Repository
	storage   ports.PhotoStorage
	mq        ports.RabbitMQ
	mCounter  *prometheus.CounterVec
}

func NewCustomerService(
	logger *zap.Logger,
	db postgres.DB,
	customers domainCustomer.Repository,
	users domainUser.Repository,
	storage ports.PhotoStorage,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.CustomerService {
	return &CustomerService{
		logger:    logger,
		db:        db,
		customers: customers,
		users:     users,
		storage:   storage,
		mq:        rabbit,
		mCounter:  mCounter,
	}
}

func (cs *CustomerService) ListCustomers(ctx context.Context) (domainCustomer.Customers, error) {
	return cs.customers.FetchCustomers(ctx)
}

func (cs *CustomerService) FindUserByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	return cs.users.FetchUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// CreateCustomer validates the input, then inserts the customer and its
// paired user inside one transaction. The stored photo file is not removed
// on rollback; only row writes are atomic.
func (cs *CustomerService) CreateCustomer(ctx context.Context, in ports.CustomerCreateInput) (*domainUser.User, *domainCustomer.Customer, error) {
	errs, err := cs.validateCreate(ctx, in)
	if err != nil {
		return nil, nil, err
	}
	if len(errs) > 0 {
		return nil, nil, &ValidationError{Fields: errs}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	tx, err := cs.db.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}

	c, u, err := cs.createInTx(ctx, tx, in, string(hash))
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, nil, asValidationError(err)
	}
	if err = tx.Commit(ctx); err != nil {
		_ = tx.Rollback(ctx)
		return nil, nil, err
	}

	cs.publishEvent(http.MethodPost, c)
	cs.mCounter.WithLabelValues("customer_created_total").Inc()

	return u, c, nil
}

func (cs *CustomerService) createInTx(
	ctx context.Context,
	tx pgx.Tx,
	in ports.CustomerCreateInput,
	passwordHash string,
) (*domainCustomer.Customer, *domainUser.User, error) {
	var photoURL *string
	if in.Photo != nil {
		url, err := cs.storage.Save(in.Photo, photoFileName(in.Photo.Filename, time.Now()))
		if err != nil {
			return nil, nil, err
		}
		photoURL = &url
	}

	c, err := cs.customers.CreateCustomer(ctx, tx, domainCustomer.Customer{
		Name:    strings.TrimSpace(in.Name),
		Surname: strings.TrimSpace(in.Surname),
		Phone:   strings.TrimSpace(in.Phone),
		Photo:   photoURL,
	})
	if err != nil {
		return nil, nil, err
	}

	u, err := cs.users.CreateUser(ctx, tx, domainUser.User{
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: passwordHash,
		Type:         strings.TrimSpace(in.Type),
		CustomerID:   c.UUID,
	})
	if err != nil {
		return nil, nil, err
	}

	return c, u, nil
}

// GetCustomer returns the customer and its paired user; (nil, nil, nil)
// means not found.
func (cs *CustomerService) GetCustomer(ctx context.Context, id domainCustomer.UUID) (*domainCustomer.Customer, *domainUser.User, error) {
	c, err := cs.customers.FetchCustomerByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, nil
	}

	u, err := cs.users.FetchUserByCustomerID(ctx, c.UUID)
	if err != nil {
		return nil, nil, err
	}
	if u == nil {
		return nil, nil, fmt.Errorf("paired user not found for customer %s", c.UUID)
	}

	return c, u, nil
}

func (cs *CustomerService) UpdateCustomer(ctx context.Context, id domainCustomer.UUID, in ports.CustomerUpdateInput) (*domainUser.User, *domainCustomer.Customer, error) {
	c, err := cs.customers.FetchCustomerByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, nil
	}

	u, err := cs.users.FetchUserByCustomerID(ctx, c.UUID)
	if err != nil {
		return nil, nil, err
	}
	if u == nil {
		return nil, nil, fmt.Errorf("paired user not found for customer %s", c.UUID)
	}

	errs, err := cs.validateUpdate(ctx, in, c.UUID, u.UUID)
	if err != nil {
		return nil, nil, err
	}
	if len(errs) > 0 {
		return nil, nil, &ValidationError{Fields: errs}
	}

	tx, err := cs.db.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}

	updC, updU, err := cs.updateInTx(ctx, tx, c, u, in)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, nil, asValidationError(err)
	}
	if err = tx.Commit(ctx); err != nil {
		_ = tx.Rollback(ctx)
		return nil, nil, err
	}

	cs.publishEvent(http.MethodPut, updC)
	cs.mCounter.WithLabelValues("customer_updated_total").Inc()

	return updU, updC, nil
}

func (cs *CustomerService) updateInTx(
	ctx context.Context,
	tx pgx.Tx,
	c *domainCustomer.Customer,
	u *domainUser.User,
	in ports.CustomerUpdateInput,
) (*domainCustomer.Customer, *domainUser.User, error) {
	updC, err := cs.customers.UpdateCustomer(ctx, tx, domainCustomer.Customer{
		UUID:    c.UUID,
		Name:    strings.TrimSpace(in.Name),
		Surname: strings.TrimSpace(in.Surname),
		Phone:   strings.TrimSpace(in.Phone),
	})
	if err != nil {
		return nil, nil, err
	}
	if updC == nil {
		return nil, nil, fmt.Errorf("customer %s vanished during update", c.UUID)
	}

	updU, err := cs.users.UpdateUserEmail(ctx, tx, u.UUID, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, nil, err
	}

	if in.Photo != nil {
		if c.Photo != nil {
			if rmErr := cs.storage.Remove(*c.Photo); rmErr != nil {
				cs.logger.Warn("failed to remove previous photo",
					zap.String("photo", *c.Photo), zap.Error(rmErr))
			}
		}

		url, err := cs.storage.Save(in.Photo, photoFileName(in.Photo.Filename, time.Now()))
		if err != nil {
			return nil, nil, err
		}
		if err = cs.customers.SetCustomerPhoto(ctx, tx, c.UUID, &url); err != nil {
			return nil, nil, err
		}
		updC.Photo = &url
	}

	return updC, updU, nil
}

// DeleteCustomer removes the customer, its paired user row and its stored
// photo. The file removal is best-effort; (nil, nil) means not found.
func (cs *CustomerService) DeleteCustomer(ctx context.Context, id domainCustomer.UUID) (*domainCustomer.Customer, error) {
	c, err := cs.customers.FetchCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	tx, err := cs.db.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if c.Photo != nil {
		if rmErr := cs.storage.Remove(*c.Photo); rmErr != nil {
			cs.logger.Warn("failed to remove photo",
				zap.String("photo", *c.Photo), zap.Error(rmErr))
		}
	}

	if err = cs.users.DeleteUsersByCustomerID(ctx, tx, c.UUID); err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}
	if err = cs.customers.DeleteCustomer(ctx, tx, c.UUID); err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}

	cs.publishEvent(http.MethodDelete, c)
	cs.mCounter.WithLabelValues("customer_deleted_total").Inc()

	return c, nil
}

func (cs *CustomerService) validateCreate(ctx context.Context, in ports.CustomerCreateInput) (map[string]string, error) {
	errs := make(map[string]string)

	requireField(errs, "name", in.Name)
	requireField(errs, "surname", in.Surname)
	requireField(errs, "phone", in.Phone)
	requireField(errs, "type", in.Type)
	if strings.TrimSpace(in.Password) == "" {
		errs["password"] = "password is required"
	}
	validateEmailField(errs, in.Email)
	validatePhotoField(errs, in.Photo)

	if err := cs.checkUniqueness(ctx, errs, in.Email, in.Phone, uuid.Nil, uuid.Nil); err != nil {
		return nil, err
	}

	return errs, nil
}

func (cs *CustomerService) validateUpdate(
	ctx context.Context,
	in ports.CustomerUpdateInput,
	customerID domainCustomer.UUID,
	userID domainUser.UUID,
) (map[string]string, error) {
	errs := make(map[string]string)

	requireField(errs, "name", in.Name)
	requireField(errs, "surname", in.Surname)
	requireField(errs, "phone", in.Phone)
	validateEmailField(errs, in.Email)
	validatePhotoField(errs, in.Photo)

	if err := cs.checkUniqueness(ctx, errs, in.Email, in.Phone, customerID, userID); err != nil {
		return nil, err
	}

	return errs, nil
}

// checkUniqueness runs the optimistic pre-checks. The unique constraints in
// the store remain the authoritative guard; a race lost here is caught on
// insert and reported in the same shape.
func (cs *CustomerService) checkUniqueness(
	ctx context.Context,
	errs map[string]string,
	email, phone string,
	excludeCustomer domainCustomer.UUID,
	excludeUser domainUser.UUID,
) error {
	if _, bad := errs["email"]; !bad {
		inUse, err := cs.users.EmailInUseByRole(
			ctx,
			strings.ToLower(strings.TrimSpace(email)),
			domainUser.TypeCustomer,
			excludeUser,
		)
		if err != nil {
			return err
		}
		if inUse {
			errs["email"] = "email already in use"
		}
	}

	if _, bad := errs["phone"]; !bad {
		inUse, err := cs.customers.PhoneInUse(ctx, strings.TrimSpace(phone), excludeCustomer)
		if err != nil {
			return err
		}
		if inUse {
			errs["phone"] = "phone already in use"
		}
	}

	return nil
}

func (cs *CustomerService) publishEvent(method string, c *domainCustomer.Customer) {
	cs.mq.GetInputChan() <- mq.Event{
		Id:         uuid.New(),
		TS:         time.Now(),
		Method:     method,
		CustomerID: c.UUID.String(),
		Payload:    dtoCustomer.ToResponseCustomer(*c),
	}
}

func requireField(errs map[string]string, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = field + " is required"
	}
}

func validateEmailField(errs map[string]string, email string) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		errs["email"] = "email is required"
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}
}

func validatePhotoField(errs map[string]string, fh *multipart.FileHeader) {
	if fh == nil {
		return
	}
	if _, ok := photoExts[strings.ToLower(filepath.Ext(fh.Filename))]; !ok {
		errs["photo"] = "photo must be a jpeg, jpg or png image"
		return
	}
	if fh.Size > maxPhotoSize {
		errs["photo"] = "photo must not exceed 10MB"
	}
}

func asValidationError(err error) error {
	switch {
	case errors.Is(err, customerDB.ErrPhoneAlreadyExists):
		return &ValidationError{Fields: map[string]string{"phone": "phone already in use"}}
	case errors.Is(err, userDB.ErrEmailAlreadyExists):
		return &ValidationError{Fields: map[string]string{"email": "email already in use"}}
	}
	return err
}
