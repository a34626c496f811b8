package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"tajobs/internal/auth"
	"tajobs/internal/store"
	"tajobs/internal/utils"
)

type LoginHandler struct {
	Users     store.UserStore
	JWTSecret string
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Role  string `json:"role"`
	Email string `json:"email"`
}

// ServeHTTP handles POST /login. An unverified account is rejected even
// with the correct password.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
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
		log.WithError(err).Error("login: fetching user")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	if !utils.CheckPassword(req.Password, u.PasswordHash) {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid password"})
		return
	}

	if !u.IsVerified {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "User not verified"})
		return
	}

	token, err := auth.GenerateToken(u.ID, u.Email, u.Role, h.JWTSecret)
	if err != nil {
		log.WithError(err).Error("login: generating token")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to generate token"})
		return
	}
	auth.SetSessionCookie(w, token)

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Login successful",
		Data:    LoginResponse{Role: u.Role, Email: u.Email},
	})
}
