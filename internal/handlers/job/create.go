package job

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"tajobs/internal/models"
	"tajobs/internal/store"
	"tajobs/internal/utils"
)

type AddJobHandler struct {
	Jobs store.JobStore
}

type AddJobRequest struct {
	JobTitle        string `json:"jobTitle"`
	JobDescription  string `json:"jobDescription"`
	EmployerEmail   string `json:"employerEmail"`
	EmployerPhone   string `json:"employerPhone"`
	InstructorEmail string `json:"instructorEmail"`
}

// ServeHTTP handles POST /add-job. The route is public; the posting
// instructor is named in the request body.
func (h *AddJobHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req AddJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}
	if req.JobTitle == "" || req.JobDescription == "" || req.EmployerEmail == "" || req.InstructorEmail == "" {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "jobTitle, jobDescription, employerEmail and instructorEmail are required"})
		return
	}

	j := &models.Job{
		JobTitle:        req.JobTitle,
		JobDescription:  req.JobDescription,
		EmployerEmail:   req.EmployerEmail,
		EmployerPhone:   req.EmployerPhone,
		InstructorEmail: req.InstructorEmail,
	}
	if _, err := h.Jobs.Create(r.Context(), j); err != nil {
		log.WithError(err).Error("add-job: creating job")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to add job"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Job added successfully"})
}
