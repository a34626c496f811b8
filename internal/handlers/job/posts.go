package job

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"tajobs/internal/middleware"
	"tajobs/internal/models"
	"tajobs/internal/store"
	"tajobs/internal/utils"
)

// MyPostsHandler handles GET /my-posts: an instructor's own postings with
// applicants expanded to profile summaries.
type MyPostsHandler struct {
	Jobs store.JobStore
}

func (h *MyPostsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}
	// defensive: unreachable if the middleware populated the claims
	if id.Role == "" {
		utils.JSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "User role not found in token"})
		return
	}
	if id.Role != models.RoleInstructor {
		utils.JSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Unauthorized access. Instructor role is required"})
		return
	}
	if id.Email == "" {
		utils.JSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "User email not found in token"})
		return
	}

	jobs, err := h.Jobs.ListByInstructor(r.Context(), id.Email)
	if err != nil {
		log.WithError(err).WithField("instructor", id.Email).Error("my-posts: listing jobs")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"jobs": jobs}})
}
