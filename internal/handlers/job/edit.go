package job

import (
	"encoding/json"
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

// EditJobHandler handles PUT /edit-job/{id}. Only the posting instructor
// may edit; the editable fields are replaced wholesale.
type EditJobHandler struct {
	Jobs store.JobStore
}

func (h *EditJobHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	var edit models.JobEdit
	if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}

	j, err := h.Jobs.Get(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.JSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Job not found"})
			return
		}
		log.WithError(err).WithField("job_id", jobID).Error("edit-job: fetching job")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}
	if j.InstructorEmail != id.Email {
		utils.JSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Unauthorized: You can only edit your own job posts"})
		return
	}

	if err := h.Jobs.Update(r.Context(), jobID, &edit); err != nil {
		log.WithError(err).WithField("job_id", jobID).Error("edit-job: updating job")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update job"})
		return
	}

	updated, err := h.Jobs.Get(r.Context(), jobID)
	if err != nil {
		log.WithError(err).WithField("job_id", jobID).Error("edit-job: re-fetching job")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Job updated successfully",
		Data:    map[string]interface{}{"job": updated},
	})
}
