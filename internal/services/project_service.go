package services

import (
	"errors"
	"fmt"
	"strings"

	"lancelocker.dev/internal/models"
)

// ErrProjectNotFound is returned when no project carries the requested id
var ErrProjectNotFound = errors.New("project not found")

// DefaultModelDir is where models are looked up when a project names none
const DefaultModelDir = "your_projects"

// ProjectService answers project queries against one locker document
type ProjectService struct {
	locker *models.Locker
}

// NewProjectService creates a new ProjectService
func NewProjectService(locker *models.Locker) *ProjectService {
	return &ProjectService{locker: locker}
}

// Profile returns the hero profile
func (s *ProjectService) Profile() *models.Profile {
	return s.locker.Profile
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	if p := findProject(s.locker.Projects, id); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}

// Tags returns the sorted set of tags offered in the filter bar
func (s *ProjectService) Tags() []string {
	return AllTags(s.locker.Projects)
}

// Search filters and sorts the projects
func (s *ProjectService) Search(opts FilterOptions) []models.Project {
	return FilterProjects(s.locker.Projects, opts)
}

// Route resolves the view for a raw query string
func (s *ProjectService) Route(rawQuery string) View {
	return ResolveView(s.locker.Projects, rawQuery)
}

// ResolveModelSrc returns the model URL for a project: absolute URLs pass through,
// an empty model falls back to your_projects/<id>.glb.
func ResolveModelSrc(model, id string) string {
	if strings.HasPrefix(model, "http://") || strings.HasPrefix(model, "https://") {
		return model
	}
	if model == "" {
		return DefaultModelDir + "/" + id + ".glb"
	}
	return model
}
