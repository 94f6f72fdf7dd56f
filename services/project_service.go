package services

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/atolyedigital/agency-api/dto"
	"github.com/atolyedigital/agency-api/models"
	"github.com/atolyedigital/agency-api/repositories"
	"github.com/atolyedigital/agency-api/utils"
)

// ProjectService implements the portfolio CRUD semantics
type ProjectService struct {
	repo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService(store repositories.Store) *ProjectService {
	return &ProjectService{repo: repositories.NewProjectRepository(store)}
}

// ListPublished returns projects visible on the public site
func (s *ProjectService) ListPublished() ([]models.Project, error) {
	projects, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	published := make([]models.Project, 0, len(projects))
	for _, project := range projects {
		if project.Status == models.StatusPublished {
			published = append(published, project)
		}
	}
	return published, nil
}

// ListFeatured returns published projects flagged for the home page
func (s *ProjectService) ListFeatured() ([]models.Project, error) {
	published, err := s.ListPublished()
	if err != nil {
		return nil, err
	}
	featured := make([]models.Project, 0, len(published))
	for _, project := range published {
		if project.Featured {
			featured = append(featured, project)
		}
	}
	return featured, nil
}

// ListAll returns every project including drafts
func (s *ProjectService) ListAll() ([]models.Project, error) {
	return s.repo.FindAll()
}

// GetBySlug returns the first published project with a matching slug.
// Drafts are invisible here regardless of slug.
func (s *ProjectService) GetBySlug(slug string) (models.Project, error) {
	projects, err := s.repo.FindAll()
	if err != nil {
		return models.Project{}, err
	}
	for _, project := range projects {
		if project.Slug == slug && project.Status == models.StatusPublished {
			return project, nil
		}
	}
	return models.Project{}, repositories.ErrNotFound
}

// GetByID returns a project by ID, drafts included
func (s *ProjectService) GetByID(id string) (models.Project, error) {
	return s.repo.FindByID(id)
}

// Create validates the payload and stores a new project
func (s *ProjectService) Create(req dto.ProjectCreateRequest) (models.Project, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required),
		validation.Field(&req.Description, validation.Required),
	)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	status := models.Status(req.Status)
	if status == "" {
		status = models.StatusDraft
	}
	technologies := req.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	gallery := req.Gallery
	if gallery == nil {
		gallery = []string{}
	}

	project := models.Project{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Slug:            utils.Slugify(req.Title),
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Category:        req.Category,
		Technologies:    technologies,
		Image:           req.Image,
		Gallery:         gallery,
		Client:          req.Client,
		Year:            req.Year,
		URL:             req.URL,
		Featured:        req.Featured,
		Status:          status,
		CreatedAt:       time.Now(),
	}

	if err := s.repo.Insert(project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// Update merges the submitted patch over the stored record. The slug is
// recomputed only when a title is submitted; slug collisions are not
// checked.
func (s *ProjectService) Update(id string, req dto.ProjectUpdateRequest) (models.Project, error) {
	project, err := s.repo.FindByID(id)
	if err != nil {
		return models.Project{}, err
	}

	if req.Title != nil {
		project.Title = *req.Title
		project.Slug = utils.Slugify(*req.Title)
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.FullDescription != nil {
		project.FullDescription = *req.FullDescription
	}
	if req.Category != nil {
		project.Category = *req.Category
	}
	if req.Technologies != nil {
		project.Technologies = *req.Technologies
	}
	if req.Image != nil {
		project.Image = *req.Image
	}
	if req.Gallery != nil {
		project.Gallery = *req.Gallery
	}
	if req.Client != nil {
		project.Client = *req.Client
	}
	if req.Year != nil {
		project.Year = *req.Year
	}
	if req.URL != nil {
		project.URL = *req.URL
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	if req.Status != nil {
		project.Status = models.Status(*req.Status)
	}

	if err := s.repo.Replace(project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// Delete removes a project by ID
func (s *ProjectService) Delete(id string) error {
	return s.repo.Delete(id)
}
