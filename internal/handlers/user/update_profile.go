package user

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"tajobs/internal/middleware"
	"tajobs/internal/models"
	"tajobs/internal/store"
	"tajobs/internal/utils"
)

type UpdateProfileHandler struct {
	Users store.UserStore
}

// courseGrades matches the field name the frontend sends; it is stored as
// coursework.
type UpdateProfileRequest struct {
	Major         *string           `json:"major"`
	ClassStanding *string           `json:"classStanding"`
	GPA           *float64          `json:"gpa"`
	CourseGrades  map[string]string `json:"courseGrades"`
}

// ServeHTTP handles PUT /update-profile. Partial update: absent fields are
// left untouched, never cleared.
func (h *UpdateProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}

	upd := &models.ProfileUpdate{
		Major:         req.Major,
		ClassStanding: req.ClassStanding,
		GPA:           req.GPA,
		Coursework:    req.CourseGrades,
	}
	if err := h.Users.UpdateProfile(r.Context(), id.UserID, upd); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.JSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
		case errors.Is(err, models.ErrInvalidMajor), errors.Is(err, models.ErrInvalidClassStanding):
			utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: err.Error()})
		default:
			log.WithError(err).WithField("user_id", id.UserID).Error("update-profile: storing profile")
			utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update profile"})
		}
		return
	}

	u, err := h.Users.GetByID(r.Context(), id.UserID)
	if err != nil {
		log.WithError(err).WithField("user_id", id.UserID).Error("update-profile: re-fetching user")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Profile updated successfully",
		Data: models.Profile{
			Major:         u.Major,
			ClassStanding: u.ClassStanding,
			GPA:           u.GPA,
			Coursework:    u.Coursework,
		},
	})
}
