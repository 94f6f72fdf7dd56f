package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atolyedigital/agency-api/dto"
	"github.com/atolyedigital/agency-api/repositories"
	"github.com/atolyedigital/agency-api/services"
)

// ProjectController exposes the portfolio endpoints
type ProjectController struct {
	service *services.ProjectService
}

// NewProjectController creates a new project controller instance
func NewProjectController(store repositories.Store) *ProjectController {
	return &ProjectController{service: services.NewProjectService(store)}
}

// ListPublished returns published projects for the public site
func (ctrl *ProjectController) ListPublished(c *gin.Context) {
	projects, err := ctrl.service.ListPublished()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListFeatured returns published projects flagged for the home page
func (ctrl *ProjectController) ListFeatured(c *gin.Context) {
	projects, err := ctrl.service.ListFeatured()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetBySlug returns a single published project
func (ctrl *ProjectController) GetBySlug(c *gin.Context) {
	project, err := ctrl.service.GetBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// ListAll returns every project for the dashboard, drafts included
func (ctrl *ProjectController) ListAll(c *gin.Context) {
	projects, err := ctrl.service.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetByID returns a single project for the dashboard
func (ctrl *ProjectController) GetByID(c *gin.Context) {
	project, err := ctrl.service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Create stores a new project
func (ctrl *ProjectController) Create(c *gin.Context) {
	var req dto.ProjectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	project, err := ctrl.service.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// Update merges a patch over an existing project
func (ctrl *ProjectController) Update(c *gin.Context) {
	var req dto.ProjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	project, err := ctrl.service.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Delete removes a project
func (ctrl *ProjectController) Delete(c *gin.Context) {
	if err := ctrl.service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted",
	})
}
