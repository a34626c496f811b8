package job

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tajobs/internal/middleware"
	"tajobs/internal/models"
)

var (
	student    = middleware.Identity{UserID: 11, Email: "s@x.edu", Role: models.RoleStudent}
	student2   = middleware.Identity{UserID: 12, Email: "s2@x.edu", Role: models.RoleStudent}
	instructor = middleware.Identity{UserID: 20, Email: "prof@x.edu", Role: models.RoleInstructor}
)

func seedJob(t *testing.T, jobs *fakeJobStore, instructorEmail string) int64 {
	t.Helper()
	id, err := jobs.Create(context.Background(), &models.Job{
		JobTitle: "Grader", JobDescription: "Grade homework",
		EmployerEmail: "emp@x.com", InstructorEmail: instructorEmail,
	})
	require.NoError(t, err)
	return id
}

func doApply(h *ApplyHandler, jobID string, id middleware.Identity) *httptest.ResponseRecorder {
	req := asUser(withJobID(httptest.NewRequest("POST", "/jobs/"+jobID+"/apply", nil), jobID), id)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestApply_InstructorForbidden(t *testing.T) {
	t.Parallel()

	jobs := newFakeJobStore()
	seedJob(t, jobs, "prof@x.edu")
	h := &ApplyHandler{Jobs: jobs}

	rec := doApply(h, "1", instructor)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only students can apply for jobs")
}

func TestApply_JobNotFound(t *testing.T) {
	t.Parallel()

	h := &ApplyHandler{Jobs: newFakeJobStore()}
	rec := doApply(h, "99", student)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Job not found")
}

func TestApply_DuplicateApplication(t *testing.T) {
	t.Parallel()

	jobs := newFakeJobStore()
	jobID := seedJob(t, jobs, "prof@x.edu")
	h := &ApplyHandler{Jobs: jobs}

	first := doApply(h, "1", student)
	second := doApply(h, "1", student)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusBadRequest, second.Code)
	assert.Contains(t, second.Body.String(), "already applied")

	j, err := jobs.Get(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, []int64{student.UserID}, j.Applicants, "applicant set must grow by exactly one")
}

func TestApply_OrderPreserved(t *testing.T) {
	t.Parallel()

	jobs := newFakeJobStore()
	jobID := seedJob(t, jobs, "prof@x.edu")
	h := &ApplyHandler{Jobs: jobs}

	require.Equal(t, http.StatusOK, doApply(h, "1", student).Code)
	require.Equal(t, http.StatusOK, doApply(h, "1", student2).Code)

	j, err := jobs.Get(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, []int64{student.UserID, student2.UserID}, j.Applicants)
}

func TestCheckApplication(t *testing.T) {
	t.Parallel()

	jobs := newFakeJobStore()
	seedJob(t, jobs, "prof@x.edu")
	apply := &ApplyHandler{Jobs: jobs}
	check := &CheckApplicationHandler{Jobs: jobs}

	doCheck := func(jobID string, id middleware.Identity) *httptest.ResponseRecorder {
		req := asUser(withJobID(httptest.NewRequest("GET", "/jobs/"+jobID+"/check-application", nil), jobID), id)
		rec := httptest.NewRecorder()
		check.ServeHTTP(rec, req)
		return rec
	}

	rec := doCheck("1", student)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"hasApplied":false`)

	require.Equal(t, http.StatusOK, doApply(apply, "1", student).Code)

	rec = doCheck("1", student)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"hasApplied":true`)

	rec = doCheck("42", student)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
