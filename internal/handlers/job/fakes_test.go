package job

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tajobs/internal/middleware"
	"tajobs/internal/models"
	"tajobs/internal/store"
)

type fakeJobStore struct {
	jobs   map[int64]*models.Job
	nextID int64
	// profile data for applicant expansion
	profiles map[int64]models.Applicant
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: map[int64]*models.Job{}, profiles: map[int64]models.Applicant{}}
}

func (f *fakeJobStore) Create(ctx context.Context, j *models.Job) (int64, error) {
	f.nextID++
	cp := *j
	cp.ID = f.nextID
	cp.IsActive = true
	f.jobs[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeJobStore) List(ctx context.Context) ([]models.Job, error) {
	var out []models.Job
	for id := int64(1); id <= f.nextID; id++ {
		if j, ok := f.jobs[id]; ok {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJobStore) Get(ctx context.Context, id int64) (*models.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJobStore) AddApplicant(ctx context.Context, jobID, userID int64) error {
	j, ok := f.jobs[jobID]
	if !ok {
		return store.ErrNotFound
	}
	for _, a := range j.Applicants {
		if a == userID {
			return store.ErrDuplicateApplicant
		}
	}
	j.Applicants = append(j.Applicants, userID)
	return nil
}

func (f *fakeJobStore) HasApplicant(ctx context.Context, jobID, userID int64) (bool, error) {
	j, ok := f.jobs[jobID]
	if !ok {
		return false, store.ErrNotFound
	}
	for _, a := range j.Applicants {
		if a == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeJobStore) ListByInstructor(ctx context.Context, email string) ([]models.JobWithApplicants, error) {
	var out []models.JobWithApplicants
	for id := int64(1); id <= f.nextID; id++ {
		j, ok := f.jobs[id]
		if !ok || j.InstructorEmail != email {
			continue
		}
		jw := models.JobWithApplicants{Job: *j}
		for _, uid := range j.Applicants {
			jw.ApplicantProfiles = append(jw.ApplicantProfiles, f.profiles[uid])
		}
		out = append(out, jw)
	}
	return out, nil
}

func (f *fakeJobStore) ListByApplicant(ctx context.Context, userID int64) ([]models.Application, error) {
	var out []models.Application
	for id := int64(1); id <= f.nextID; id++ {
		j, ok := f.jobs[id]
		if !ok {
			continue
		}
		for _, a := range j.Applicants {
			if a == userID {
				out = append(out, models.Application{ID: j.ID, JobTitle: j.JobTitle, EmployerEmail: j.EmployerEmail})
			}
		}
	}
	return out, nil
}

func (f *fakeJobStore) Update(ctx context.Context, id int64, e *models.JobEdit) error {
	j, ok := f.jobs[id]
	if !ok {
		return store.ErrNotFound
	}
	j.JobTitle = e.JobTitle
	j.JobDescription = e.JobDescription
	j.EmployerEmail = e.EmployerEmail
	j.EmployerPhone = e.EmployerPhone
	return nil
}

func (f *fakeJobStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.jobs[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.jobs, id)
	return nil
}

func asUser(req *http.Request, id middleware.Identity) *http.Request {
	return req.WithContext(middleware.WithIdentity(req.Context(), id))
}

func withJobID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
