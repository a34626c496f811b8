package user

import (
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

// GetProfileHandler handles GET /profile/{userId}: an instructor viewing a
// student's academic profile.
type GetProfileHandler struct {
	Users store.UserStore
}

func (h *GetProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}
	if id.Role != models.RoleInstructor {
		utils.JSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Access denied. Only instructors can view student profiles"})
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid user id"})
		return
	}

	u, err := h.Users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.JSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
			return
		}
		log.WithError(err).Error("get-profile: fetching user")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Data: models.Profile{
			Major:         u.Major,
			ClassStanding: u.ClassStanding,
			GPA:           u.GPA,
			Coursework:    u.Coursework,
		},
	})
}

// MyProfileHandler handles GET /profile: a student viewing their own
// academic profile.
type MyProfileHandler struct {
	Users store.UserStore
}

func (h *MyProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}
	if id.Role != models.RoleStudent {
		utils.JSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Access denied. Only students can access their profiles"})
		return
	}

	u, err := h.Users.GetByID(r.Context(), id.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.JSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
			return
		}
		log.WithError(err).Error("my-profile: fetching user")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Data: models.Profile{
			Major:         u.Major,
			ClassStanding: u.ClassStanding,
			GPA:           u.GPA,
			Coursework:    u.Coursework,
		},
	})
}
