package job

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"tajobs/internal/middleware"
	"tajobs/internal/models"
	"tajobs/internal/store"
	"tajobs/internal/utils"
)

// MyApplicationsHandler handles GET /my-applications: the jobs the calling
// student applied to, projected to id, title and employer email.
type MyApplicationsHandler struct {
	Jobs store.JobStore
}

func (h *MyApplicationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}
	if id.Role != models.RoleStudent {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Access denied. Only students can view their applications"})
		return
	}

	apps, err := h.Jobs.ListByApplicant(r.Context(), id.UserID)
	if err != nil {
		log.WithError(err).WithField("user_id", id.UserID).Error("my-applications: listing")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"applications": apps}})
}
