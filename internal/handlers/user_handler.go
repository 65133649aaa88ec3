package handlers

import (
	"net/http"

	"parttime_backend/internal/middleware"
	"parttime_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService        *services.UserService
	jobService         *services.JobService
	applicationService *services.ApplicationService
}

func NewUserHandler(
	base *BaseHandler,
	userService *services.UserService,
	jobService *services.JobService,
	applicationService *services.ApplicationService,
) *UserHandler {
	return &UserHandler{
		BaseHandler:        base,
		userService:        userService,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	me := r.Group("/users/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("", h.GetMe)
		me.GET("/published-jobs", h.ListMyJobs)
		me.GET("/applications", h.ListMyApplications)
	}
}

// GetMe godoc
// @Summary Current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.userService.GetByID(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListMyJobs godoc
// @Summary Jobs published by the current user
// @Description Returns the caller's own jobs, any status, newest first.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.JobResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /users/me/published-jobs [get]
func (h *UserHandler) ListMyJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.jobService.ListByPublisher(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": resp})
}

// ListMyApplications godoc
// @Summary Applications submitted by the current user
// @Description Returns the caller's applications with their jobs, newest first.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ApplicationResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /users/me/applications [get]
func (h *UserHandler) ListMyApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.ListByApplicant(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": resp})
}
