package services

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/atolyedigital/agency-api/dto"
	"github.com/atolyedigital/agency-api/models"
	"github.com/atolyedigital/agency-api/repositories"
)

// ProposalService implements proposal intake and workflow updates
type ProposalService struct {
	repo *repositories.ProposalRepository
}

// NewProposalService creates a new proposal service instance
func NewProposalService(store repositories.Store) *ProposalService {
	return &ProposalService{repo: repositories.NewProposalRepository(store)}
}

// ListAll returns every proposal. There is no public listing.
func (s *ProposalService) ListAll() ([]models.Proposal, error) {
	return s.repo.FindAll()
}

// GetByID returns a proposal by ID
func (s *ProposalService) GetByID(id string) (models.Proposal, error) {
	return s.repo.FindByID(id)
}

// Create stores a submission from the public wizard. This is the only write
// path reachable without a token. New proposals always start in "new".
func (s *ProposalService) Create(req dto.ProposalCreateRequest) (models.Proposal, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Email, validation.Required),
		validation.Field(&req.Phone, validation.Required),
	)
	if err != nil {
		return models.Proposal{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	services := req.Services
	if services == nil {
		services = []string{}
	}

	proposal := models.Proposal{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Website:     req.Website,
		Platform:    req.Platform,
		Sector:      req.Sector,
		Services:    services,
		Description: req.Description,
		Budget:      req.Budget,
		Timeline:    req.Timeline,
		Status:      models.ProposalStatusNew,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Insert(proposal); err != nil {
		return models.Proposal{}, err
	}
	return proposal, nil
}

// Update applies status and notes changes. Status transitions are not
// validated: any value may overwrite any other, including reopening a
// rejected proposal.
func (s *ProposalService) Update(id string, req dto.ProposalUpdateRequest) (models.Proposal, error) {
	proposal, err := s.repo.FindByID(id)
	if err != nil {
		return models.Proposal{}, err
	}

	if req.Status != nil {
		proposal.Status = models.ProposalStatus(*req.Status)
	}
	if req.Notes != nil {
		proposal.Notes = *req.Notes
	}

	if err := s.repo.Replace(proposal); err != nil {
		return models.Proposal{}, err
	}
	return proposal, nil
}

// Delete removes a proposal by ID
func (s *ProposalService) Delete(id string) error {
	return s.repo.Delete(id)
}
