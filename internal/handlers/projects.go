package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lancelocker.dev/internal/services"
)

// ProjectHandler handles the JSON API
type ProjectHandler struct {
	lockers *services.LockerService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ls *services.LockerService) *ProjectHandler {
	return &ProjectHandler{lockers: ls}
}

func (h *ProjectHandler) projects() *services.ProjectService {
	return services.NewProjectService(h.lockers.Current())
}

// GetProfile handles GET /api/profile
func (h *ProjectHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.projects().Profile())
}

// ListTags handles GET /api/tags
func (h *ProjectHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.projects().Tags())
}

// ListProjects handles GET /api/projects?q=&tag=&sort=
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projects().Search(filterOptions(r))
	respondJSON(w, r, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projects().GetByID(id)
	if err != nil {
		respondError(w, r, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, r, http.StatusOK, project)
}
