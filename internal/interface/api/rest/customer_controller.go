package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/application/ports"
	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/application/services"
	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/infrastructure/jwt"
	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/interface/api/rest/dto/customer"
	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/interface/api/rest/middleware"
	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/interface/api/rest/validator"
)

type CustomerController struct {
	customerService ports.CustomerService
	logger          *zap.Logger
}

// NewCustomerController registers the customer CRUD routes. Creation doubles
// as registration and stays public; mutations of existing customers require
// a token.
func NewCustomerController(
	r *gin.Engine,
	customerService ports.CustomerService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *CustomerController {
	cc := &CustomerController{
		customerService: customerService,
		logger:          logger,
	}

	r.GET(RouteCustomers, cc.ListCustomersHandler)
	r.GET(RouteCustomer, cc.GetCustomerHandler)
	r.POST(RouteCustomers, cc.CreateCustomerHandler)
	r.PUT(RouteCustomer, middleware.AuthMiddleware(jwtService), cc.UpdateCustomerHandler)
	r.PATCH(RouteCustomer, middleware.AuthMiddleware(jwtService), cc.UpdateCustomerHandler)
	r.DELETE(RouteCustomer, middleware.AuthMiddleware(jwtService), cc.DeleteCustomerHandler)

	return cc
}

func (cc *CustomerController) ListCustomersHandler(c *gin.Context) {
	customers, err := cc.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			fail("an error occurred while fetching customers", err.Error()),
		)
		cc.logger.Error("ListCustomers() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, ok("customers retrieved successfully", customer.ToResponseCustomers(customers)))
}

func (cc *CustomerController) CreateCustomerHandler(c *gin.Context) {
	var req customer.CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail("invalid request body", err.Error()))
		return
	}

	// photo is optional; any FormFile error is treated as "not supplied"
	fh, err := c.FormFile("photo")
	if err != nil {
		fh = nil
	}

	u, cst, err := cc.customerService.CreateCustomer(c.Request.Context(), ports.CustomerCreateInput{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Type:     req.Type,
		Photo:    fh,
	})
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, fail("", vErr.Fields))
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			fail("an error occurred while registering the customer", err.Error()),
		)
		cc.logger.Error("CreateCustomer() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, ok("customer registered successfully", customer.ToResponseAccount(*u, *cst)))
}

func (cc *CustomerController) GetCustomerHandler(c *gin.Context) {
	valid, id := validator.IsUUID(c.Param("customer_id"))
	if !valid {
		c.JSON(http.StatusNotFound, fail("customer not found", nil))
		return
	}

	cst, u, err := cc.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			fail("an error occurred while fetching the customer", err.Error()),
		)
		cc.logger.Error("GetCustomer() error", zap.Error(err))
		return
	}
	if cst == nil {
		c.JSON(http.StatusNotFound, fail("customer not found", nil))
		return
	}

	c.JSON(http.StatusOK, ok("customer retrieved successfully", customer.ToResponseProfile(*cst, *u)))
}

func (cc *CustomerController) UpdateCustomerHandler(c *gin.Context) {
	valid, id := validator.IsUUID(c.Param("customer_id"))
	if !valid {
		c.JSON(http.StatusNotFound, fail("customer not found", nil))
		return
	}

	var req customer.UpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail("invalid request body", err.Error()))
		return
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		fh = nil
	}

	u, cst, err := cc.customerService.UpdateCustomer(c.Request.Context(), id, ports.CustomerUpdateInput{
		Name:    req.Name,
		Surname: req.Surname,
		Email:   req.Email,
		Phone:   req.Phone,
		Photo:   fh,
	})
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, fail("", vErr.Fields))
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			fail("an error occurred while updating the customer", err.Error()),
		)
		cc.logger.Error("UpdateCustomer() error", zap.Error(err))
		return
	}
	if cst == nil {
		c.JSON(http.StatusNotFound, fail("customer not found", nil))
		return
	}

	c.JSON(http.StatusOK, ok("customer updated successfully", customer.ToResponseAccount(*u, *cst)))
}

func (cc *CustomerController) DeleteCustomerHandler(c *gin.Context) {
	valid, id := validator.IsUUID(c.Param("customer_id"))
	if !valid {
		c.JSON(http.StatusNotFound, fail("customer not found", nil))
		return
	}

	cst, err := cc.customerService.DeleteCustomer(c.Request.Context(), id)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			fail("an error occurred while deleting the customer", err.Error()),
		)
		cc.logger.Error("DeleteCustomer() error", zap.Error(err))
		return
	}
	if cst == nil {
		c.JSON(http.StatusNotFound, fail("customer not found", nil))
		return
	}

	c.JSON(http.StatusOK, ok("customer deleted successfully", customer.ToResponseCustomer(*cst)))
}
