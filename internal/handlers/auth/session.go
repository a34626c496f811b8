package auth

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"tajobs/internal/middleware"
	"tajobs/internal/store"
	"tajobs/internal/utils"
)

// CheckAuthHandler handles GET /verify-email/{token} (historical route name,
// kept for the deployed frontend). It re-fetches the account behind a valid
// session, since a token can outlive account deletion.
type CheckAuthHandler struct {
	Users store.UserStore
}

func (h *CheckAuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	u, err := h.Users.GetByID(r.Context(), id.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "User not found"})
			return
		}
		log.WithError(err).Error("check-auth: fetching user")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"user": u}})
}

// VerifyHandler handles GET /verify: validates the session and returns the
// caller's role and email.
type VerifyHandler struct {
	Users store.UserStore
}

func (h *VerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	u, err := h.Users.GetByID(r.Context(), id.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "User not found"})
			return
		}
		log.WithError(err).Error("verify: fetching user")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Data:    map[string]string{"role": u.Role, "email": u.Email},
	})
}
