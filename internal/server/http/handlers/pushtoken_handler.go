package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dribbleops/orderadmin/internal/domain/errors"
	"github.com/dribbleops/orderadmin/internal/server/http/dto"
)

// PushTokenHandler manages device push token registration endpoints.
type PushTokenHandler struct {
	facade PushTokenFacade
}

// NewPushTokenHandler constructs PushTokenHandler.
func NewPushTokenHandler(facade PushTokenFacade) *PushTokenHandler {
	return &PushTokenHandler{facade: facade}
}

// Register handles POST /admin/push-tokens.
func (h *PushTokenHandler) Register(c *gin.Context) {
	var req dto.PushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("Invalid request body"))
		return
	}

	err := h.facade.RegisterPushToken(c.Request.Context(), CurrentUserID(c), req.Token, req.DeviceInfo)
	if err != nil {
		if errors.Is(err, domainErrors.ErrMissingPushToken) {
			c.JSON(http.StatusBadRequest, dto.NewError("push_token is required"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewError("Failed to register push token"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Unregister handles DELETE /admin/push-tokens.
func (h *PushTokenHandler) Unregister(c *gin.Context) {
	var req dto.PushTokenRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.NewError("Invalid request body"))
			return
		}
	}

	if err := h.facade.UnregisterPushToken(c.Request.Context(), req.Token); err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewError("Failed to remove push token"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
