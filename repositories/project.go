package repositories

import (
	"github.com/atolyedigital/agency-api/models"
)

const projectsResource = "projects"

// ProjectRepository handles storage operations for projects
type ProjectRepository struct {
	store Store
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(store Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

// FindAll retrieves all projects in stored order
func (r *ProjectRepository) FindAll() ([]models.Project, error) {
	return loadAll[models.Project](r.store, projectsResource)
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	projects, err := r.FindAll()
	if err != nil {
		return models.Project{}, err
	}
	for _, project := range projects {
		if project.ID == id {
			return project, nil
		}
	}
	return models.Project{}, ErrNotFound
}

// Insert prepends a new project so that recent records sort first
func (r *ProjectRepository) Insert(project models.Project) error {
	projects, err := r.FindAll()
	if err != nil {
		return err
	}
	projects = append([]models.Project{project}, projects...)
	return saveAll(r.store, projectsResource, projects)
}

// Replace overwrites the stored record with the same ID
func (r *ProjectRepository) Replace(project models.Project) error {
	projects, err := r.FindAll()
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].ID == project.ID {
			projects[i] = project
			return saveAll(r.store, projectsResource, projects)
		}
	}
	return ErrNotFound
}

// Delete removes a project by ID
func (r *ProjectRepository) Delete(id string) error {
	projects, err := r.FindAll()
	if err != nil {
		return err
	}
	kept := projects[:0:0]
	for _, project := range projects {
		if project.ID != id {
			kept = append(kept, project)
		}
	}
	if len(kept) == len(projects) {
		return ErrNotFound
	}
	return saveAll(r.store, projectsResource, kept)
}
