package handlers

import (
	"net/http"

	"parttime_backend/internal/middleware"
	"parttime_backend/internal/models"
	"parttime_backend/internal/repositories"
	"parttime_backend/internal/services"
	"parttime_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService         *services.JobService
	applicationService *services.ApplicationService
}

func NewJobHandler(
	base *BaseHandler,
	jobService *services.JobService,
	applicationService *services.ApplicationService,
) *JobHandler {
	return &JobHandler{
		BaseHandler:        base,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("", h.List)
		jobs.GET("/:jobId", middleware.OptionalAuthMiddleware(), h.Get)

		protected := jobs.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("", h.Create)
			protected.PUT("/:jobId", h.Update)
			protected.PATCH("/:jobId", h.Update)
			protected.DELETE("/:jobId", h.Delete)
			protected.POST("/:jobId/close", h.Close)
			protected.POST("/:jobId/apply", h.Apply)
			protected.GET("/:jobId/applications", h.ListApplications)
		}
	}
}

// List godoc
// @Summary List open jobs
// @Description Filters and orders open jobs. Unparseable salary bounds and unknown enum values are ignored; unknown order_by falls back to newest. The applied filter is echoed back along with the valid categories.
// @Tags jobs
// @Produce json
// @Param search query string false "Substring match on title, description or location"
// @Param category query string false "Job category"
// @Param salary_type query string false "Salary unit (hourly, daily, total)"
// @Param min_salary query string false "Minimum salary, inclusive"
// @Param max_salary query string false "Maximum salary, inclusive"
// @Param location query string false "Substring match on location"
// @Param order_by query string false "newest, oldest, salary_high, salary_low, positions_high, positions_low"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	var filter repositories.JobFilter
	if !h.BindAndValidateQuery(c, &filter) {
		return
	}

	jobs, total, err := h.jobService.List(h.GetDB(c), &filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":       jobs,
		"total":      total,
		"filters":    filter,
		"categories": models.JobCategories,
	})
}

// Get godoc
// @Summary Job detail
// @Description Returns the job regardless of status, with application counts. Authenticated callers also learn whether they already applied.
// @Tags jobs
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {object} dto.JobDetailResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /jobs/{jobId} [get]
func (h *JobHandler) Get(c *gin.Context) {
	jobID := c.Param("jobId")
	requesterID := middleware.GetUserID(c)

	resp, err := h.jobService.Get(h.GetDB(c), jobID, requesterID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Publish a job
// @Description Creates a job with the caller as publisher. Status starts open.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Job data"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.jobService.Create(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update godoc
// @Summary Edit a job
// @Description Publisher only. All fields optional, so PATCH and PUT behave identically. Status cannot be changed here; use the close endpoint.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Param request body dto.UpdateJobRequest true "Fields to change"
// @Success 200 {object} dto.JobResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /jobs/{jobId} [put]
// @Router /jobs/{jobId} [patch]
func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.jobService.Update(h.GetDB(c), c.Param("jobId"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Close godoc
// @Summary Close recruiting
// @Description Publisher only. One-way; closing an already closed job is a no-op. Existing applications are untouched.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /jobs/{jobId}/close [post]
func (h *JobHandler) Close(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.Close(h.GetDB(c), c.Param("jobId"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}

// Delete godoc
// @Summary Delete a job
// @Description Publisher only. Removes the job together with all of its applications.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Success 204
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /jobs/{jobId} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(h.GetDB(c), c.Param("jobId"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Apply godoc
// @Summary Apply to a job
// @Description Submits an application. Fails if the job is closed, the caller published it, or the caller already applied.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Param request body dto.ApplyRequest true "Application message"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /jobs/{jobId}/apply [post]
func (h *JobHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.applicationService.Apply(h.GetDB(c), c.Param("jobId"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListApplications godoc
// @Summary Applications for a job
// @Description Publisher's management view. Lists every application for the job with applicant profiles.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Success 200 {array} dto.ApplicationResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /jobs/{jobId}/applications [get]
func (h *JobHandler) ListApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.ListByJob(h.GetDB(c), c.Param("jobId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var accepted int64
	for _, a := range resp {
		if a.Status == models.ApplicationStatusAccepted {
			accepted++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"applications":   resp,
		"applied_count":  len(resp),
		"accepted_count": accepted,
	})
}
