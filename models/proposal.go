package models

import (
	"time"
)

// ProposalStatus represents the workflow state of an incoming proposal.
// Transitions are unrestricted: any value may overwrite any other.
type ProposalStatus string

const (
	ProposalStatusNew       ProposalStatus = "new"
	ProposalStatusReviewing ProposalStatus = "reviewing"
	ProposalStatusApproved  ProposalStatus = "approved"
	ProposalStatusRejected  ProposalStatus = "rejected"
)

// Proposal represents a project request submitted through the public wizard
type Proposal struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Company     string         `json:"company"`
	Website     string         `json:"website"`
	Platform    string         `json:"platform"`
	Sector      string         `json:"sector"`
	Services    []string       `json:"services"`
	Description string         `json:"description"`
	Budget      string         `json:"budget"`
	Timeline    string         `json:"timeline"`
	Status      ProposalStatus `json:"status"`
	Notes       string         `json:"notes"`
	CreatedAt   time.Time      `json:"createdAt"`
}
