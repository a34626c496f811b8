package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"tajobs/internal/auth"
	"tajobs/internal/mailer"
	"tajobs/internal/models"
	"tajobs/internal/store"
	"tajobs/internal/utils"
)

type SignupHandler struct {
	Users     store.UserStore
	Mail      mailer.Mailer
	JWTSecret string
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type SignupResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ServeHTTP handles POST /signup. Signup logs the user in right away: the
// session cookie is issued before verification, while login stays blocked
// until the email is verified.
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "All fields are required"})
		return
	}
	if !models.ValidRole(req.Role) {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Role must be student or instructor"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.WithError(err).Error("signup: hashing password")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to hash password"})
		return
	}

	code, err := utils.VerificationCode()
	if err != nil {
		log.WithError(err).Error("signup: generating verification code")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create user"})
		return
	}
	expires := time.Now().Add(24 * time.Hour)

	u := &models.User{
		Name:                req.Name,
		Email:               req.Email,
		PasswordHash:        hash,
		Role:                req.Role,
		VerificationCode:    code,
		VerificationExpires: &expires,
	}
	id, err := h.Users.Create(r.Context(), u)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "User already exists"})
			return
		}
		log.WithError(err).Error("signup: creating user")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create user"})
		return
	}

	token, err := auth.GenerateToken(id, req.Email, req.Role, h.JWTSecret)
	if err != nil {
		log.WithError(err).Error("signup: generating token")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to generate token"})
		return
	}
	auth.SetSessionCookie(w, token)

	if err := h.Mail.SendVerification(r.Context(), req.Email, code); err != nil {
		log.WithError(err).WithField("email", req.Email).Error("signup: sending verification email")
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Failed to send verification email"})
		return
	}

	utils.JSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "User created successfully",
		Data:    SignupResponse{ID: id, Name: req.Name, Email: req.Email, Role: req.Role},
	})
}
