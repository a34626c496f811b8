package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"tajobs/internal/mailer"
	"tajobs/internal/store"
	"tajobs/internal/utils"
)

type VerifyEmailHandler struct {
	Users store.UserStore
	Mail  mailer.Mailer
}

type VerifyEmailRequest struct {
	Code string `json:"code"`
}

// ServeHTTP handles POST /verify-email. The code must match and still be
// within its 24-hour window; an expired code is indistinguishable from a
// wrong one.
func (h *VerifyEmailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req VerifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid verification code"})
		return
	}

	u, err := h.Users.GetByVerificationCode(r.Context(), req.Code, time.Now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid verification code"})
			return
		}
		log.WithError(err).Error("verify-email: looking up code")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	if err := h.Users.MarkVerified(r.Context(), u.ID); err != nil {
		log.WithError(err).WithField("user_id", u.ID).Error("verify-email: marking verified")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to verify email"})
		return
	}

	if err := h.Mail.SendWelcome(r.Context(), u.Email, u.Name); err != nil {
		log.WithError(err).WithField("email", u.Email).Error("verify-email: sending welcome email")
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Failed to send welcome email"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Email verified successfully"})
}
