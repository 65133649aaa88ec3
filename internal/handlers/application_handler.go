package handlers

import (
	"net/http"

	"parttime_backend/internal/middleware"
	"parttime_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	apps := r.Group("/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		apps.POST("/:applicationId/:action", h.Transition)
	}
}

// Transition godoc
// @Summary Move an application through its lifecycle
// @Description Applies one action to the application: "accepted" or "rejected" (publisher, from pending), "withdraw" (applicant, from pending), "complete" (either party, from accepted). Any other actor gets 403, a wrong starting status 409.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param applicationId path string true "Application ID"
// @Param action path string true "accepted, rejected, withdraw or complete"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /applications/{applicationId}/{action} [post]
func (h *ApplicationHandler) Transition(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.Transition(
		h.GetDB(c),
		c.Param("applicationId"),
		userID,
		c.Param("action"),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
