package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"parttime_backend/internal/models"
	"parttime_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobListResponse struct {
	Jobs []struct {
		ID     string  `json:"id"`
		Title  string  `json:"title"`
		Salary float64 `json:"salary"`
	} `json:"jobs"`
	Total   int64 `json:"total"`
	Filters struct {
		Category   string `json:"category"`
		SalaryType string `json:"salary_type"`
		OrderBy    string `json:"order_by"`
		MinSalary  string `json:"min_salary"`
	} `json:"filters"`
	Categories []string `json:"categories"`
}

func listJobs(t *testing.T, ts *helpers.TestServer, query string) jobListResponse {
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs"+query, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp jobListResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return resp
}

func TestCreateJob(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginEmployer(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", token, map[string]interface{}{
		"title":       "Campus flyer distribution",
		"category":    "promotion",
		"description": "Hand out flyers at the main gate",
		"salary":      80,
		"location":    "Main gate",
		"contact":     "phone: 12345678",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var job struct {
		ID         string `json:"id"`
		Status     string `json:"status"`
		SalaryType string `json:"salary_type"`
		Positions  int    `json:"positions"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &job))
	assert.Equal(t, "open", job.Status)
	// Defaults applied when omitted.
	assert.Equal(t, "hourly", job.SalaryType)
	assert.Equal(t, 1, job.Positions)
}

func TestCreateJobValidation(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginEmployer(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", token, map[string]interface{}{
		"title":    "No description",
		"category": "nonsense",
		"salary":   -5,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestListJobsFilters(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, employer := helpers.CreateAndLoginEmployer(t, ts)

	CreateTestJob(t, ts.DB, employer.ID, func(j *models.Job) {
		j.Title = "Math tutoring"
		j.Category = models.JobCategoryTutoring
		j.Salary = 50
	})
	CreateTestJob(t, ts.DB, employer.ID, func(j *models.Job) {
		j.Title = "Event staff"
		j.Category = models.JobCategoryEvent
		j.Salary = 120
		j.Location = "Convention center"
	})
	CreateTestJob(t, ts.DB, employer.ID, func(j *models.Job) {
		j.Title = "Closed gig"
		j.Category = models.JobCategoryEvent
		j.Salary = 500
		j.Status = models.JobStatusClosed
	})

	// Closed jobs never appear in the listing.
	resp := listJobs(t, ts, "")
	assert.Equal(t, int64(2), resp.Total)
	for _, j := range resp.Jobs {
		assert.NotEqual(t, "Closed gig", j.Title)
	}

	// Category filter.
	resp = listJobs(t, ts, "?category=event")
	require.Equal(t, int64(1), resp.Total)
	assert.Equal(t, "Event staff", resp.Jobs[0].Title)

	// Substring search matches title or location, case-insensitively.
	resp = listJobs(t, ts, "?search=math")
	require.Equal(t, int64(1), resp.Total)
	assert.Equal(t, "Math tutoring", resp.Jobs[0].Title)

	resp = listJobs(t, ts, "?search=convention")
	require.Equal(t, int64(1), resp.Total)
	assert.Equal(t, "Event staff", resp.Jobs[0].Title)
}

func TestListJobsSalaryBounds(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, employer := helpers.CreateAndLoginEmployer(t, ts)

	CreateTestJob(t, ts.DB, employer.ID, func(j *models.Job) { j.Title = "Low"; j.Salary = 30 })
	CreateTestJob(t, ts.DB, employer.ID, func(j *models.Job) { j.Title = "Mid"; j.Salary = 50 })
	CreateTestJob(t, ts.DB, employer.ID, func(j *models.Job) { j.Title = "High"; j.Salary = 100 })

	// Bounds are inclusive.
	resp := listJobs(t, ts, "?min_salary=50&max_salary=100")
	assert.Equal(t, int64(2), resp.Total)

	resp = listJobs(t, ts, "?min_salary=50&max_salary=50")
	require.Equal(t, int64(1), resp.Total)
	assert.Equal(t, "Mid", resp.Jobs[0].Title)

	// Unparseable bounds are ignored, not rejected.
	resp = listJobs(t, ts, "?min_salary=abc")
	assert.Equal(t, int64(3), resp.Total)
}

func TestListJobsIgnoresUnknownEnumFilters(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, employer := helpers.CreateAndLoginEmployer(t, ts)

	CreateTestJob(t, ts.DB, employer.ID, func(j *models.Job) { j.Category = models.JobCategoryTutoring })
	CreateTestJob(t, ts.DB, employer.ID, func(j *models.Job) { j.Category = models.JobCategoryEvent })

	// An unknown category behaves like no category filter at all, and the
	// echoed filter shows it was dropped.
	resp := listJobs(t, ts, "?category=gardening")
	assert.Equal(t, int64(2), resp.Total)
	assert.Empty(t, resp.Filters.Category)

	resp = listJobs(t, ts, "?salary_type=weekly")
	assert.Equal(t, int64(2), resp.Total)
	assert.Empty(t, resp.Filters.SalaryType)

	// The valid category set rides along for filter UIs.
	assert.Len(t, resp.Categories, 6)
	assert.Contains(t, resp.Categories, "tutoring")
}

func TestListJobsOrdering(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, employer := helpers.CreateAndLoginEmployer(t, ts)

	CreateTestJob(t, ts.DB, employer.ID, func(j *models.Job) { j.Title = "Cheap"; j.Salary = 20 })
	CreateTestJob(t, ts.DB, employer.ID, func(j *models.Job) { j.Title = "Pricey"; j.Salary = 200 })

	resp := listJobs(t, ts, "?order_by=salary_high")
	require.Equal(t, int64(2), resp.Total)
	assert.Equal(t, "Pricey", resp.Jobs[0].Title)
	assert.Equal(t, "salary_high", resp.Filters.OrderBy)

	resp = listJobs(t, ts, "?order_by=salary_low")
	assert.Equal(t, "Cheap", resp.Jobs[0].Title)

	// Unknown order falls back to newest and the echo reflects that.
	resp = listJobs(t, ts, "?order_by=bogus")
	assert.Equal(t, "newest", resp.Filters.OrderBy)
}

func TestJobDetail(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, employer := helpers.CreateAndLoginEmployer(t, ts)
	studentToken, student := helpers.CreateAndLoginStudent(t, ts)

	job := CreateTestJob(t, ts.DB, employer.ID, nil)
	CreateTestApplication(t, ts.DB, job.ID, student.ID, models.ApplicationStatusPending)

	// Anonymous view: counts, no personalization.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var detail struct {
		Job struct {
			ID string `json:"id"`
		} `json:"job"`
		AppliedCount  int64 `json:"applied_count"`
		AcceptedCount int64 `json:"accepted_count"`
		HasApplied    bool  `json:"has_applied"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &detail))
	assert.Equal(t, job.ID, detail.Job.ID)
	assert.Equal(t, int64(1), detail.AppliedCount)
	assert.Equal(t, int64(0), detail.AcceptedCount)
	assert.False(t, detail.HasApplied)

	// Authenticated applicant sees their application.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID, studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &detail))
	assert.True(t, detail.HasApplied)

	// A closed job is still visible in detail.
	closed := CreateTestJob(t, ts.DB, employer.ID, func(j *models.Job) { j.Status = models.JobStatusClosed })
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+closed.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestUpdateJobPublisherOnly(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	ownerToken, employer := helpers.CreateAndLoginEmployer(t, ts)
	strangerToken, _ := helpers.CreateAndLoginStudent(t, ts)

	job := CreateTestJob(t, ts.DB, employer.ID, nil)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/jobs/"+job.ID, strangerToken, map[string]interface{}{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/jobs/"+job.ID, ownerToken, map[string]interface{}{
		"title":  "Updated title",
		"salary": 75,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated struct {
		Title  string  `json:"title"`
		Salary float64 `json:"salary"`
		Status string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "Updated title", updated.Title)
	assert.Equal(t, 75.0, updated.Salary)
	assert.Equal(t, "open", updated.Status)

	// PATCH is an alias for the same partial update.
	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/jobs/"+job.ID, ownerToken, map[string]interface{}{
		"salary": 90,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "Updated title", updated.Title)
	assert.Equal(t, 90.0, updated.Salary)
}

func TestCloseJob(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	ownerToken, employer := helpers.CreateAndLoginEmployer(t, ts)
	studentToken, _ := helpers.CreateAndLoginStudent(t, ts)

	job := CreateTestJob(t, ts.DB, employer.ID, nil)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/close", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/close", ownerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// Closing again is a no-op, not an error.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/close", ownerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	// Applications to a closed job are refused.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", studentToken, map[string]interface{}{
		"message": "too late",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
}

func TestDeleteJobRemovesApplications(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	ownerToken, employer := helpers.CreateAndLoginEmployer(t, ts)
	_, student := helpers.CreateAndLoginStudent(t, ts)

	job := CreateTestJob(t, ts.DB, employer.ID, nil)
	CreateTestApplication(t, ts.DB, job.ID, student.ID, models.ApplicationStatusPending)

	res, body := ts.SendRequest(t, http.MethodDelete, "/api/v1/jobs/"+job.ID, ownerToken, nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode, body)

	var count int64
	ts.DB.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestListMyJobs(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	ownerToken, employer := helpers.CreateAndLoginEmployer(t, ts)
	_, other := helpers.CreateAndLoginEmployer(t, ts)

	CreateTestJob(t, ts.DB, employer.ID, func(j *models.Job) { j.Title = "Mine open" })
	CreateTestJob(t, ts.DB, employer.ID, func(j *models.Job) {
		j.Title = "Mine closed"
		j.Status = models.JobStatusClosed
	})
	CreateTestJob(t, ts.DB, other.ID, func(j *models.Job) { j.Title = "Not mine" })

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/users/me/published-jobs", ownerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Jobs []struct {
			Title string `json:"title"`
		} `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	// Own jobs of every status, nobody else's.
	require.Len(t, resp.Jobs, 2)
	for _, j := range resp.Jobs {
		assert.NotEqual(t, "Not mine", j.Title)
	}
}
