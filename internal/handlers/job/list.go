package job

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"tajobs/internal/store"
	"tajobs/internal/utils"
)

// ListJobsHandler handles GET /jobs: unrestricted read of all postings.
type ListJobsHandler struct {
	Jobs store.JobStore
}

func (h *ListJobsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Jobs.List(r.Context())
	if err != nil {
		log.WithError(err).Error("jobs: listing")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}
	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"jobs": jobs}})
}

// GetJobHandler handles GET /jobs/{id}.
type GetJobHandler struct {
	Jobs store.JobStore
}

func (h *GetJobHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid job id"})
		return
	}

	j, err := h.Jobs.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.JSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Job not found"})
			return
		}
		log.WithError(err).Error("jobs: fetching job")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"job": j}})
}
