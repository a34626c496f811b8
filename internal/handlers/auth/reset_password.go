package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"tajobs/internal/mailer"
	"tajobs/internal/store"
	"tajobs/internal/utils"
)

type ResetPasswordHandler struct {
	Users store.UserStore
	Mail  mailer.Mailer
}

type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// ServeHTTP handles POST /reset-password/{token}. The token must match and
// its expiry must still be in the future.
func (h *ResetPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Password is required"})
		return
	}

	u, err := h.Users.GetByResetToken(r.Context(), token, time.Now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid or expired reset token"})
			return
		}
		log.WithError(err).Error("reset-password: looking up token")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.WithError(err).Error("reset-password: hashing password")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to hash password"})
		return
	}
	if err := h.Users.UpdatePassword(r.Context(), u.ID, hash); err != nil {
		log.WithError(err).WithField("user_id", u.ID).Error("reset-password: storing password")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to reset password"})
		return
	}

	if err := h.Mail.SendResetConfirmation(r.Context(), u.Email); err != nil {
		log.WithError(err).WithField("email", u.Email).Error("reset-password: sending confirmation email")
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Failed to send confirmation email"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Password reset successfully"})
}
