package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/application/ports"
	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/application/services"
	domainCustomer "github.com/benjamincondori/Api-Asistencia-Tecnica/internal/domain/customer"
	domainUser "github.com/benjamincondori/Api-Asistencia-Tecnica/internal/domain/user"
	jwtSvc "github.com/benjamincondori/Api-Asistencia-Tecnica/internal/infrastructure/jwt"
	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/interface/api/rest/middleware"
)

type FakeCustomerService struct {
	ListCustomersFunc   func(ctx context.Context) (domainCustomer.Customers, error)
	CreateCustomerFunc  func(ctx context.Context, in ports.CustomerCreateInput) (*domainUser.User, *domainCustomer.Customer, error)
	GetCustomerFunc     func(ctx context.Context, id domainCustomer.UUID) (*domainCustomer.Customer, *domainUser.User, error)
	UpdateCustomerFunc  func(ctx context.Context, id domainCustomer.UUID, in ports.CustomerUpdateInput) (*domainUser.User, *domainCustomer.Customer, error)
	DeleteCustomerFunc  func(ctx context.Context, id domainCustomer.UUID) (*domainCustomer.Customer, error)
	FindUserByEmailFunc func(ctx context.Context, email string) (*domainUser.User, error)
}

func (f *FakeCustomerService) ListCustomers(ctx context.Context) (domainCustomer.Customers, error) {
	if f.ListCustomersFunc == nil {
		return nil, errors.New("not used")
	}
	return f.ListCustomersFunc(ctx)
}
func (f *FakeCustomerService) CreateCustomer(ctx context.Context, in ports.CustomerCreateInput) (*domainUser.User, *domainCustomer.Customer, error) {
	if f.CreateCustomerFunc == nil {
		return nil, nil, errors.New("not used")
	}
	return f.CreateCustomerFunc(ctx, in)
}
func (f *FakeCustomerService) GetCustomer(ctx context.Context, id domainCustomer.UUID) (*domainCustomer.Customer, *domainUser.User, error) {
	if f.GetCustomerFunc == nil {
		return nil, nil, errors.New("not used")
	}
	return f.GetCustomerFunc(ctx, id)
}
func (f *FakeCustomerService) UpdateCustomer(ctx context.Context, id domainCustomer.UUID, in ports.CustomerUpdateInput) (*domainUser.User, *domainCustomer.Customer, error) {
	if f.UpdateCustomerFunc == nil {
		return nil, nil, errors.New("not used")
	}
	return f.UpdateCustomerFunc(ctx, id, in)
}
func (f *FakeCustomerService) DeleteCustomer(ctx context.Context, id domainCustomer.UUID) (*domainCustomer.Customer, error) {
	if f.DeleteCustomerFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteCustomerFunc(ctx, id)
}
func (f *FakeCustomerService) FindUserByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	if f.FindUserByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindUserByEmailFunc(ctx, email)
}

func setupRouter(t *testing.T, cs ports.CustomerService, withJWT bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	j := jwtSvc.New("test-secret")

	cc := &CustomerController{
		customerService: cs,
		logger:          zap.NewNop(),
	}

	r.GET("/customers", cc.ListCustomersHandler)
	r.GET("/customers/:customer_id", cc.GetCustomerHandler)
	r.POST("/customers", cc.CreateCustomerHandler)
	if withJWT {
		r.PUT("/customers/:customer_id", middleware.AuthMiddleware(j), cc.UpdateCustomerHandler)
		r.DELETE("/customers/:customer_id", middleware.AuthMiddleware(j), cc.DeleteCustomerHandler)
	} else {
		r.PUT("/customers/:customer_id", cc.UpdateCustomerHandler)
		r.DELETE("/customers/:customer_id", cc.DeleteCustomerHandler)
	}

	return r
}

func doReq(t *testing.T, r *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, bytes.NewReader(nil))
	require.NoError(t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func doFormReq(
	t *testing.T,
	r *gin.Engine,
	method, path string,
	fields map[string]string,
	fileName string,
	fileContent []byte,
	headers map[string]string,
) *httptest.ResponseRecorder {
	t.Helper()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("photo", fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(method, path, &b)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func authHeader(t *testing.T) map[string]string {
	t.Helper()
	tok, err := jwtSvc.New("test-secret").GenerateJWT("123", domainUser.TypeCustomer, time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}

func validCreateFields() map[string]string {
	return map[string]string{
		"name":     "John",
		"surname":  "Doe",
		"email":    "john.doe@example.com",
		"password": "VeryStrongPassw0rd!",
		"phone":    "+59171234567",
		"type":     domainUser.TypeCustomer,
	}
}

func someDomainCustomer() *domainCustomer.Customer {
	photo := "/storage/img/customers/1700000000_avatar.png"
	return &domainCustomer.Customer{
		UUID:    uuid.New(),
		Name:    "John",
		Surname: "Doe",
		Phone:   "+59171234567",
		Photo:   &photo,
	}
}

func someDomainUser(customerID uuid.UUID) *domainUser.User {
	return &domainUser.User{
		UUID:       uuid.New(),
		Email:      "john.doe@example.com",
		Type:       domainUser.TypeCustomer,
		CustomerID: customerID,
	}
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestCustomerController_ListCustomersHandler(t *testing.T) {
	tests := []struct {
		name        string
		mockCS      func() ports.CustomerService
		wantStatus  int
		wantSuccess bool
	}{
		{
			name: "500 when service fails",
			mockCS: func() ports.CustomerService {
				return &FakeCustomerService{
					ListCustomersFunc: func(ctx context.Context) (domainCustomer.Customers, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus:  http.StatusInternalServerError,
			wantSuccess: false,
		},
		{
			name: "200 success",
			mockCS: func() ports.CustomerService {
				return &FakeCustomerService{
					ListCustomersFunc: func(ctx context.Context) (domainCustomer.Customers, error) {
						return domainCustomer.Customers{someDomainCustomer()}, nil
					},
				}
			},
			wantStatus:  http.StatusOK,
			wantSuccess: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockCS(), false)
			rr := doReq(t, r, http.MethodGet, "/customers", nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			resp := decodeEnvelope(t, rr)
			assert.Equal(t, tt.wantSuccess, resp["success"])
			if tt.wantSuccess {
				data, isSlice := resp["data"].([]any)
				require.True(t, isSlice)
				assert.Len(t, data, 1)
			} else {
				assert.Equal(t, "db error", resp["error"])
			}
		})
	}
}

func TestCustomerController_GetCustomerHandler(t *testing.T) {
	okID := uuid.New()

	tests := []struct {
		name       string
		customerID string
		mockCS     func() ports.CustomerService
		wantStatus int
		check      func(t *testing.T, resp map[string]any)
	}{
		{
			name:       "404 invalid id",
			customerID: "not-a-uuid",
			mockCS:     func() ports.CustomerService { return &FakeCustomerService{} },
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "404 not found",
			customerID: okID.String(),
			mockCS: func() ports.CustomerService {
				return &FakeCustomerService{
					GetCustomerFunc: func(ctx context.Context, id domainCustomer.UUID) (*domainCustomer.Customer, *domainUser.User, error) {
						return nil, nil, nil
					},
				}
			},
			wantStatus: http.StatusNotFound,
			check: func(t *testing.T, resp map[string]any) {
				assert.Equal(t, "customer not found", resp["message"])
			},
		},
		{
			name:       "500 service error",
			customerID: okID.String(),
			mockCS: func() ports.CustomerService {
				return &FakeCustomerService{
					GetCustomerFunc: func(ctx context.Context, id domainCustomer.UUID) (*domainCustomer.Customer, *domainUser.User, error) {
						return nil, nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "200 flattened profile",
			customerID: okID.String(),
			mockCS: func() ports.CustomerService {
				c := someDomainCustomer()
				c.UUID = okID
				u := someDomainUser(okID)
				return &FakeCustomerService{
					GetCustomerFunc: func(ctx context.Context, id domainCustomer.UUID) (*domainCustomer.Customer, *domainUser.User, error) {
						assert.Equal(t, okID, id)
						return c, u, nil
					},
				}
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, resp map[string]any) {
				data, isMap := resp["data"].(map[string]any)
				require.True(t, isMap)
				assert.Equal(t, "john.doe@example.com", data["email"])
				assert.Equal(t, domainUser.TypeCustomer, data["type"])
				assert.Equal(t, "John", data["name"])
				assert.NotNil(t, data["photo"])
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockCS(), false)
			rr := doReq(t, r, http.MethodGet, "/customers/"+tt.customerID, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.check != nil {
				tt.check(t, decodeEnvelope(t, rr))
			}
		})
	}
}

func TestCustomerController_CreateCustomerHandler(t *testing.T) {
	tests := []struct {
		name       string
		fields     map[string]string
		fileName   string
		mockCS     func() ports.CustomerService
		wantStatus int
		check      func(t *testing.T, resp map[string]any)
	}{
		{
			name:   "400 validation error",
			fields: map[string]string{"name": ""},
			mockCS: func() ports.CustomerService {
				return &FakeCustomerService{
					CreateCustomerFunc: func(ctx context.Context, in ports.CustomerCreateInput) (*domainUser.User, *domainCustomer.Customer, error) {
						return nil, nil, &services.ValidationError{Fields: map[string]string{
							"name":  "name is required",
							"email": "email is required",
						}}
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, resp map[string]any) {
				assert.Equal(t, false, resp["success"])
				fieldErrs, isMap := resp["error"].(map[string]any)
				require.True(t, isMap)
				assert.Equal(t, "name is required", fieldErrs["name"])
			},
		},
		{
			name:   "500 service error",
			fields: validCreateFields(),
			mockCS: func() ports.CustomerService {
				return &FakeCustomerService{
					CreateCustomerFunc: func(ctx context.Context, in ports.CustomerCreateInput) (*domainUser.User, *domainCustomer.Customer, error) {
						return nil, nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			check: func(t *testing.T, resp map[string]any) {
				assert.Equal(t, "db error", resp["error"])
			},
		},
		{
			name:     "201 success with photo",
			fields:   validCreateFields(),
			fileName: "Avatar Ñiño.PNG",
			mockCS: func() ports.CustomerService {
				c := someDomainCustomer()
				u := someDomainUser(c.UUID)
				return &FakeCustomerService{
					CreateCustomerFunc: func(ctx context.Context, in ports.CustomerCreateInput) (*domainUser.User, *domainCustomer.Customer, error) {
						assert.Equal(t, "john.doe@example.com", in.Email)
						assert.Equal(t, domainUser.TypeCustomer, in.Type)
						require.NotNil(t, in.Photo)
						assert.Equal(t, "Avatar Ñiño.PNG", in.Photo.Filename)
						return u, c, nil
					},
				}
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, resp map[string]any) {
				assert.Equal(t, true, resp["success"])
				data, isMap := resp["data"].(map[string]any)
				require.True(t, isMap)
				assert.Equal(t, "john.doe@example.com", data["email"])
				nested, isMap := data["customer"].(map[string]any)
				require.True(t, isMap)
				assert.Equal(t, "John", nested["name"])
			},
		},
		{
			name:   "201 success without photo",
			fields: validCreateFields(),
			mockCS: func() ports.CustomerService {
				c := someDomainCustomer()
				c.Photo = nil
				u := someDomainUser(c.UUID)
				return &FakeCustomerService{
					CreateCustomerFunc: func(ctx context.Context, in ports.CustomerCreateInput) (*domainUser.User, *domainCustomer.Customer, error) {
						assert.Nil(t, in.Photo)
						return u, c, nil
					},
				}
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockCS(), false)
			rr := doFormReq(t, r, http.MethodPost, "/customers", tt.fields, tt.fileName, []byte("png-bytes"), nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.check != nil {
				tt.check(t, decodeEnvelope(t, rr))
			}
		})
	}
}

func TestCustomerController_UpdateCustomerHandler(t *testing.T) {
	id := uuid.New()
	validFields := map[string]string{
		"name":    "John",
		"surname": "Doe",
		"email":   "john.doe@example.com",
		"phone":   "+59171234567",
	}

	tests := []struct {
		name       string
		customerID string
		withAuth   bool
		fields     map[string]string
		mockCS     func() ports.CustomerService
		wantStatus int
	}{
		{
			name:       "401 missing auth header",
			customerID: id.String(),
			fields:     validFields,
			mockCS:     func() ports.CustomerService { return &FakeCustomerService{} },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "404 invalid id",
			customerID: "not-a-uuid",
			withAuth:   true,
			fields:     validFields,
			mockCS:     func() ports.CustomerService { return &FakeCustomerService{} },
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "400 validation error",
			customerID: id.String(),
			withAuth:   true,
			fields:     map[string]string{"name": ""},
			mockCS: func() ports.CustomerService {
				return &FakeCustomerService{
					UpdateCustomerFunc: func(ctx context.Context, id domainCustomer.UUID, in ports.CustomerUpdateInput) (*domainUser.User, *domainCustomer.Customer, error) {
						return nil, nil, &services.ValidationError{Fields: map[string]string{"name": "name is required"}}
					},
				}
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "404 not found",
			customerID: id.String(),
			withAuth:   true,
			fields:     validFields,
			mockCS: func() ports.CustomerService {
				return &FakeCustomerService{
					UpdateCustomerFunc: func(ctx context.Context, id domainCustomer.UUID, in ports.CustomerUpdateInput) (*domainUser.User, *domainCustomer.Customer, error) {
						return nil, nil, nil
					},
				}
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "500 service error",
			customerID: id.String(),
			withAuth:   true,
			fields:     validFields,
			mockCS: func() ports.CustomerService {
				return &FakeCustomerService{
					UpdateCustomerFunc: func(ctx context.Context, id domainCustomer.UUID, in ports.CustomerUpdateInput) (*domainUser.User, *domainCustomer.Customer, error) {
						return nil, nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "200 success",
			customerID: id.String(),
			withAuth:   true,
			fields:     validFields,
			mockCS: func() ports.CustomerService {
				c := someDomainCustomer()
				c.UUID = id
				u := someDomainUser(id)
				return &FakeCustomerService{
					UpdateCustomerFunc: func(ctx context.Context, gotID domainCustomer.UUID, in ports.CustomerUpdateInput) (*domainUser.User, *domainCustomer.Customer, error) {
						assert.Equal(t, id, gotID)
						return u, c, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockCS(), true)
			var headers map[string]string
			if tt.withAuth {
				headers = authHeader(t)
			}
			rr := doFormReq(t, r, http.MethodPut, "/customers/"+tt.customerID, tt.fields, "", nil, headers)
			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCustomerController_DeleteCustomerHandler(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		customerID string
		withAuth   bool
		mockCS     func() ports.CustomerService
		wantStatus int
		check      func(t *testing.T, resp map[string]any)
	}{
		{
			name:       "401 missing auth header",
			customerID: id.String(),
			withAuth:   false,
			mockCS:     func() ports.CustomerService { return &FakeCustomerService{} },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "404 invalid id",
			customerID: "not-a-uuid",
			withAuth:   true,
			mockCS:     func() ports.CustomerService { return &FakeCustomerService{} },
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "404 not found",
			customerID: id.String(),
			withAuth:   true,
			mockCS: func() ports.CustomerService {
				return &FakeCustomerService{
					DeleteCustomerFunc: func(ctx context.Context, id domainCustomer.UUID) (*domainCustomer.Customer, error) {
						return nil, nil
					},
				}
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "500 service error",
			customerID: id.String(),
			withAuth:   true,
			mockCS: func() ports.CustomerService {
				return &FakeCustomerService{
					DeleteCustomerFunc: func(ctx context.Context, id domainCustomer.UUID) (*domainCustomer.Customer, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			check: func(t *testing.T, resp map[string]any) {
				assert.Equal(t, "db error", resp["error"])
			},
		},
		{
			name:       "200 success returns last known data",
			customerID: id.String(),
			withAuth:   true,
			mockCS: func() ports.CustomerService {
				c := someDomainCustomer()
				c.UUID = id
				return &FakeCustomerService{
					DeleteCustomerFunc: func(ctx context.Context, gotID domainCustomer.UUID) (*domainCustomer.Customer, error) {
						assert.Equal(t, id, gotID)
						return c, nil
					},
				}
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, resp map[string]any) {
				assert.Equal(t, true, resp["success"])
				data, isMap := resp["data"].(map[string]any)
				require.True(t, isMap)
				assert.Equal(t, id.String(), data["id"])
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockCS(), true)
			var headers map[string]string
			if tt.withAuth {
				headers = authHeader(t)
			}
			rr := doReq(t, r, http.MethodDelete, "/customers/"+tt.customerID, headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.check != nil {
				tt.check(t, decodeEnvelope(t, rr))
			}
		})
	}
}
