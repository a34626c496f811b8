package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"tajobs/internal/mailer"
	"tajobs/internal/store"
	"tajobs/internal/utils"
)

type ForgotPasswordHandler struct {
	Users       store.UserStore
	Mail        mailer.Mailer
	FrontendURL string
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ServeHTTP handles POST /forgot-password. The reset token is high-entropy
// (32 random bytes, hex) with a 1-hour window, unlike the short numeric
// verification code.
func (h *ForgotPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}

	u, err := h.Users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "User not found"})
			return
		}
		log.WithError(err).Error("forgot-password: fetching user")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	token, err := utils.RandomTokenHex(32)
	if err != nil {
		log.WithError(err).Error("forgot-password: generating reset token")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create reset token"})
		return
	}
	if err := h.Users.SetResetToken(r.Context(), u.ID, token, time.Now().Add(time.Hour)); err != nil {
		log.WithError(err).WithField("user_id", u.ID).Error("forgot-password: storing reset token")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create reset token"})
		return
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", h.FrontendURL, token)
	if err := h.Mail.SendPasswordReset(r.Context(), u.Email, resetURL); err != nil {
		log.WithError(err).WithField("email", u.Email).Error("forgot-password: sending reset email")
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Failed to send reset email"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Password reset email sent successfully"})
}
