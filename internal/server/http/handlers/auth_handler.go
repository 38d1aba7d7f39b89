package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dribbleops/orderadmin/internal/domain/errors"
	"github.com/dribbleops/orderadmin/internal/server/http/dto"
)

// AuthHandler processes operator sign-in and profile requests.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("Invalid request body"))
		return
	}

	user, token, err := h.facade.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, dto.NewError("Invalid email/mobile or password"))
		case errors.Is(err, domainErrors.ErrAccountDisabled):
			c.JSON(http.StatusForbidden, dto.NewError("Account is disabled"))
		default:
			c.JSON(http.StatusInternalServerError, dto.NewError("Login failed"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.facade.CurrentUser(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, dto.NewError("User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewError("Failed to load profile"))
		return
	}
	c.JSON(http.StatusOK, user)
}
