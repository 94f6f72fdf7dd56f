package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atolyedigital/agency-api/dto"
	"github.com/atolyedigital/agency-api/repositories"
	"github.com/atolyedigital/agency-api/services"
)

// BlogController exposes the blog endpoints
type BlogController struct {
	service *services.BlogService
}

// NewBlogController creates a new blog controller instance
func NewBlogController(store repositories.Store) *BlogController {
	return &BlogController{service: services.NewBlogService(store)}
}

// ListPublished returns published posts for the public site
func (ctrl *BlogController) ListPublished(c *gin.Context) {
	posts, err := ctrl.service.ListPublished()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetBySlug returns a single published post and counts the view
func (ctrl *BlogController) GetBySlug(c *gin.Context) {
	post, err := ctrl.service.GetBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListAll returns every post for the dashboard, drafts included
func (ctrl *BlogController) ListAll(c *gin.Context) {
	posts, err := ctrl.service.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetByID returns a single post for the dashboard without counting a view
func (ctrl *BlogController) GetByID(c *gin.Context) {
	post, err := ctrl.service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Create stores a new post
func (ctrl *BlogController) Create(c *gin.Context) {
	var req dto.BlogCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	post, err := ctrl.service.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// Update merges a patch over an existing post
func (ctrl *BlogController) Update(c *gin.Context) {
	var req dto.BlogUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	post, err := ctrl.service.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete removes a post
func (ctrl *BlogController) Delete(c *gin.Context) {
	if err := ctrl.service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Blog post deleted",
	})
}
