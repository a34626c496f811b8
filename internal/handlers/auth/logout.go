package auth

import (
	"net/http"

	"tajobs/internal/auth"
	"tajobs/internal/utils"
)

type LogoutHandler struct{}

// ServeHTTP handles POST /logout. Always succeeds.
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Logged out successfully"})
}
