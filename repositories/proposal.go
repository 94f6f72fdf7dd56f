package repositories

import (
	"github.com/atolyedigital/agency-api/models"
)

const proposalsResource = "proposals"

// ProposalRepository handles storage operations for proposals
type ProposalRepository struct {
	store Store
}

// NewProposalRepository creates a new proposal repository instance
func NewProposalRepository(store Store) *ProposalRepository {
	return &ProposalRepository{store: store}
}

// FindAll retrieves all proposals in stored order
func (r *ProposalRepository) FindAll() ([]models.Proposal, error) {
	return loadAll[models.Proposal](r.store, proposalsResource)
}

// FindByID retrieves a proposal by its ID
func (r *ProposalRepository) FindByID(id string) (models.Proposal, error) {
	proposals, err := r.FindAll()
	if err != nil {
		return models.Proposal{}, err
	}
	for _, proposal := range proposals {
		if proposal.ID == id {
			return proposal, nil
		}
	}
	return models.Proposal{}, ErrNotFound
}

// Insert prepends a new proposal so that recent submissions sort first
func (r *ProposalRepository) Insert(proposal models.Proposal) error {
	proposals, err := r.FindAll()
	if err != nil {
		return err
	}
	proposals = append([]models.Proposal{proposal}, proposals...)
	return saveAll(r.store, proposalsResource, proposals)
}

// Replace overwrites the stored record with the same ID
func (r *ProposalRepository) Replace(proposal models.Proposal) error {
	proposals, err := r.FindAll()
	if err != nil {
		return err
	}
	for i := range proposals {
		if proposals[i].ID == proposal.ID {
			proposals[i] = proposal
			return saveAll(r.store, proposalsResource, proposals)
		}
	}
	return ErrNotFound
}

// Delete removes a proposal by ID
func (r *ProposalRepository) Delete(id string) error {
	proposals, err := r.FindAll()
	if err != nil {
		return err
	}
	kept := proposals[:0:0]
	for _, proposal := range proposals {
		if proposal.ID != id {
			kept = append(kept, proposal)
		}
	}
	if len(kept) == len(proposals) {
		return ErrNotFound
	}
	return saveAll(r.store, proposalsResource, kept)
}
