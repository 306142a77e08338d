package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/application/ports"
	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/application/services"
	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/interface/api/rest/dto/auth"
	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger          *zap.Logger
	customerService ports.CustomerService
	authService     ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	customerService ports.CustomerService,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:          logger,
		customerService: customerService,
		authService:     authService,
	}

	r.POST(RouteLogin, ac.LoginHandler)

	return ac
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := ac.customerService.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		ac.logger.Error("FindUserByEmail() error", zap.Error(err))
		return
	}
	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	token, err := ac.authService.GenerateToken(u, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		ac.logger.Error("GenerateToken() error", zap.Error(err), zap.Stringer("user_uuid", u.UUID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
	})
}
