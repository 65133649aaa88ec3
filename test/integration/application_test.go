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

func TestApplyLifecycleHappyPath(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employerToken, employer := helpers.CreateAndLoginEmployer(t, ts)
	studentToken, _ := helpers.CreateAndLoginStudent(t, ts)

	job := CreateTestJob(t, ts.DB, employer.ID, nil)

	// Apply.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", studentToken, map[string]interface{}{
		"message": "I have tutoring experience",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var app struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &app))
	assert.Equal(t, "pending", app.Status)

	// Publisher accepts.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+app.ID+"/accepted", employerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var accepted struct {
		Status      string  `json:"status"`
		CompletedAt *string `json:"completed_at"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &accepted))
	assert.Equal(t, "accepted", accepted.Status)
	assert.Nil(t, accepted.CompletedAt)

	// Student completes; the completion timestamp is set.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+app.ID+"/complete", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var completed struct {
		Status      string  `json:"status"`
		CompletedAt *string `json:"completed_at"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &completed))
	assert.Equal(t, "completed", completed.Status)
	assert.NotNil(t, completed.CompletedAt)

	// Completed is terminal.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+app.ID+"/rejected", employerToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
}

func TestApplyRejectsDuplicates(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, employer := helpers.CreateAndLoginEmployer(t, ts)
	studentToken, _ := helpers.CreateAndLoginStudent(t, ts)

	job := CreateTestJob(t, ts.DB, employer.ID, nil)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", studentToken, map[string]interface{}{
		"message": "first try",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", studentToken, map[string]interface{}{
		"message": "second try",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
}

func TestApplyRejectsWithdrawnReapply(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, employer := helpers.CreateAndLoginEmployer(t, ts)
	studentToken, student := helpers.CreateAndLoginStudent(t, ts)

	job := CreateTestJob(t, ts.DB, employer.ID, nil)
	CreateTestApplication(t, ts.DB, job.ID, student.ID, models.ApplicationStatusWithdrawn)

	// One application per (job, applicant), even after withdrawal.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", studentToken, map[string]interface{}{
		"message": "let me back in",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
}

func TestApplyToOwnJobRejected(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employerToken, employer := helpers.CreateAndLoginEmployer(t, ts)
	job := CreateTestJob(t, ts.DB, employer.ID, nil)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", employerToken, map[string]interface{}{
		"message": "hiring myself",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
}

func TestWithdrawApplication(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employerToken, employer := helpers.CreateAndLoginEmployer(t, ts)
	studentToken, student := helpers.CreateAndLoginStudent(t, ts)

	job := CreateTestJob(t, ts.DB, employer.ID, nil)
	app := CreateTestApplication(t, ts.DB, job.ID, student.ID, models.ApplicationStatusPending)

	// Only the applicant may withdraw.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+app.ID+"/withdraw", employerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+app.ID+"/withdraw", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// Withdrawing twice fails: the record already left pending.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+app.ID+"/withdraw", studentToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
}

func TestTransitionGuards(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, employer := helpers.CreateAndLoginEmployer(t, ts)
	studentToken, student := helpers.CreateAndLoginStudent(t, ts)
	strangerToken, _ := helpers.CreateAndLoginStudent(t, ts)

	job := CreateTestJob(t, ts.DB, employer.ID, nil)
	app := CreateTestApplication(t, ts.DB, job.ID, student.ID, models.ApplicationStatusPending)

	// Only the publisher may accept.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+app.ID+"/accepted", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	// A third party may do nothing at all.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+app.ID+"/withdraw", strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	// Complete requires the accepted status.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+app.ID+"/complete", studentToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	// Unknown actions are a client error.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+app.ID+"/promote", studentToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestEmployerCompletesAcceptedApplication(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employerToken, employer := helpers.CreateAndLoginEmployer(t, ts)
	_, student := helpers.CreateAndLoginStudent(t, ts)

	job := CreateTestJob(t, ts.DB, employer.ID, nil)
	app := CreateTestApplication(t, ts.DB, job.ID, student.ID, models.ApplicationStatusAccepted)

	// Either party may complete; here the employer does.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+app.ID+"/complete", employerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var completed struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &completed))
	assert.Equal(t, "completed", completed.Status)
}

func TestListJobApplicationsPublisherOnly(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employerToken, employer := helpers.CreateAndLoginEmployer(t, ts)
	studentToken, student := helpers.CreateAndLoginStudent(t, ts)
	_, student2 := helpers.CreateAndLoginStudent(t, ts)

	job := CreateTestJob(t, ts.DB, employer.ID, nil)
	CreateTestApplication(t, ts.DB, job.ID, student.ID, models.ApplicationStatusPending)
	CreateTestApplication(t, ts.DB, job.ID, student2.ID, models.ApplicationStatusRejected)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID+"/applications", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID+"/applications", employerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Applications []struct {
			Status    string `json:"status"`
			Applicant *struct {
				Username string `json:"username"`
			} `json:"applicant"`
		} `json:"applications"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.Applications, 2)
	for _, a := range resp.Applications {
		assert.NotNil(t, a.Applicant)
	}
}

func TestListMyApplications(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, employer := helpers.CreateAndLoginEmployer(t, ts)
	studentToken, student := helpers.CreateAndLoginStudent(t, ts)
	_, otherStudent := helpers.CreateAndLoginStudent(t, ts)

	job1 := CreateTestJob(t, ts.DB, employer.ID, func(j *models.Job) { j.Title = "First job" })
	job2 := CreateTestJob(t, ts.DB, employer.ID, func(j *models.Job) { j.Title = "Second job" })

	CreateTestApplication(t, ts.DB, job1.ID, student.ID, models.ApplicationStatusPending)
	CreateTestApplication(t, ts.DB, job2.ID, student.ID, models.ApplicationStatusAccepted)
	CreateTestApplication(t, ts.DB, job1.ID, otherStudent.ID, models.ApplicationStatusPending)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/users/me/applications", studentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Applications []struct {
			Status string `json:"status"`
			Job    *struct {
				Title string `json:"title"`
			} `json:"job"`
		} `json:"applications"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.Applications, 2)
	for _, a := range resp.Applications {
		assert.NotNil(t, a.Job)
	}
}
