package services

import (
	"errors"
	"testing"

	"github.com/atolyedigital/agency-api/dto"
	"github.com/atolyedigital/agency-api/models"
	"github.com/atolyedigital/agency-api/repositories"
)

func TestProposalCreateRequiresContactFields(t *testing.T) {
	service := NewProposalService(repositories.NewMemoryStore())

	tests := []struct {
		name string
		req  dto.ProposalCreateRequest
	}{
		{"missing name", dto.ProposalCreateRequest{Email: "a@x.com", Phone: "555"}},
		{"missing email", dto.ProposalCreateRequest{Name: "Ada", Phone: "555"}},
		{"missing phone", dto.ProposalCreateRequest{Name: "Ada", Email: "a@x.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.Create(tt.req); !errors.Is(err, ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestProposalCreateStartsNew(t *testing.T) {
	service := NewProposalService(repositories.NewMemoryStore())

	proposal, err := service.Create(dto.ProposalCreateRequest{
		Name:     "Ada",
		Email:    "a@x.com",
		Phone:    "555",
		Services: []string{"seo"},
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if proposal.ID == "" {
		t.Error("ID not assigned")
	}
	if proposal.Status != models.ProposalStatusNew {
		t.Errorf("Status = %q, want new", proposal.Status)
	}

	all, err := service.ListAll()
	if err != nil {
		t.Fatalf("ListAll() error: %v", err)
	}
	if len(all) != 1 || all[0].ID != proposal.ID {
		t.Errorf("submitted proposal missing from list")
	}
}

func TestProposalStatusTransitionsUnrestricted(t *testing.T) {
	service := NewProposalService(repositories.NewMemoryStore())

	proposal, err := service.Create(dto.ProposalCreateRequest{Name: "Ada", Email: "a@x.com", Phone: "555"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Any value may overwrite any other, including backward transitions
	for _, status := range []string{"approved", "rejected", "new", "reviewing"} {
		updated, err := service.Update(proposal.ID, dto.ProposalUpdateRequest{Status: strPtr(status)})
		if err != nil {
			t.Fatalf("Update(status=%s) error: %v", status, err)
		}
		if string(updated.Status) != status {
			t.Errorf("Status = %q, want %q", updated.Status, status)
		}
	}

	// Notes merge without touching status
	updated, err := service.Update(proposal.ID, dto.ProposalUpdateRequest{Notes: strPtr("görüşme yapıldı")})
	if err != nil {
		t.Fatalf("Update(notes) error: %v", err)
	}
	if updated.Status != models.ProposalStatusReviewing {
		t.Errorf("Status = %q, notes patch must not reset it", updated.Status)
	}
	if updated.Notes != "görüşme yapıldı" {
		t.Errorf("Notes = %q, patch not applied", updated.Notes)
	}
}
