package job

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"tajobs/internal/middleware"
	"tajobs/internal/store"
	"tajobs/internal/utils"
)

// DeleteJobHandler handles DELETE /delete-job/{id}. Same ownership rule as
// editing: only the posting instructor may delete, and an unknown id is a
// 404 rather than a silent no-op.
type DeleteJobHandler struct {
	Jobs store.JobStore
}

func (h *DeleteJobHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	j, err := h.Jobs.Get(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.JSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Job not found"})
			return
		}
		log.WithError(err).WithField("job_id", jobID).Error("delete-job: fetching job")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}
	if j.InstructorEmail != id.Email {
		utils.JSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Unauthorized: You can only delete your own job posts"})
		return
	}

	if err := h.Jobs.Delete(r.Context(), jobID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.JSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Job not found"})
			return
		}
		log.WithError(err).WithField("job_id", jobID).Error("delete-job: deleting job")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to delete job"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Job deleted successfully"})
}
