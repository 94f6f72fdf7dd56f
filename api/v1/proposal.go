package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atolyedigital/agency-api/dto"
	"github.com/atolyedigital/agency-api/repositories"
	"github.com/atolyedigital/agency-api/services"
)

// ProposalController exposes proposal intake and admin review endpoints
type ProposalController struct {
	service *services.ProposalService
}

// NewProposalController creates a new proposal controller instance
func NewProposalController(store repositories.Store) *ProposalController {
	return &ProposalController{service: services.NewProposalService(store)}
}

// Submit accepts a proposal from the public wizard without authentication
func (ctrl *ProposalController) Submit(c *gin.Context) {
	var req dto.ProposalCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	proposal, err := ctrl.service.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, proposal)
}

// ListAll returns every proposal for the dashboard
func (ctrl *ProposalController) ListAll(c *gin.Context) {
	proposals, err := ctrl.service.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposals)
}

// GetByID returns a single proposal for the dashboard
func (ctrl *ProposalController) GetByID(c *gin.Context) {
	proposal, err := ctrl.service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// Update applies status and notes changes
func (ctrl *ProposalController) Update(c *gin.Context) {
	var req dto.ProposalUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	proposal, err := ctrl.service.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// Delete removes a proposal
func (ctrl *ProposalController) Delete(c *gin.Context) {
	if err := ctrl.service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Proposal deleted",
	})
}
