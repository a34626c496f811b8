package job

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"tajobs/internal/middleware"
	"tajobs/internal/models"
	"tajobs/internal/store"
	"tajobs/internal/utils"
)

// ApplyHandler handles POST /jobs/{id}/apply. Students only; the append is
// a single atomic insert, so concurrent duplicates cannot slip through.
type ApplyHandler struct {
	Jobs store.JobStore
}

func (h *ApplyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}
	if id.Role != models.RoleStudent {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Only students can apply for jobs"})
		return
	}

	jobID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid job id"})
		return
	}

	if err := h.Jobs.AddApplicant(r.Context(), jobID, id.UserID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.JSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Job not found"})
		case errors.Is(err, store.ErrDuplicateApplicant):
			utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "You have already applied for this job"})
		default:
			log.WithError(err).WithField("job_id", jobID).Error("apply: adding applicant")
			utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		}
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully applied for job"})
}

// CheckApplicationHandler handles GET /jobs/{id}/check-application: reports
// whether the caller already applied.
type CheckApplicationHandler struct {
	Jobs store.JobStore
}

func (h *CheckApplicationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	jobID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid job id"})
		return
	}

	hasApplied, err := h.Jobs.HasApplicant(r.Context(), jobID, id.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.JSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Job not found"})
			return
		}
		log.WithError(err).WithField("job_id", jobID).Error("check-application: checking applicant")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]bool{"hasApplied": hasApplied}})
}
