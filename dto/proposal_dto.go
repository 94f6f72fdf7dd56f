package dto

// ProposalCreateRequest is submitted by the public proposal wizard.
// Name, Email and Phone are required.
type ProposalCreateRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Company     string   `json:"company"`
	Website     string   `json:"website"`
	Platform    string   `json:"platform"`
	Sector      string   `json:"sector"`
	Services    []string `json:"services"`
	Description string   `json:"description"`
	Budget      string   `json:"budget"`
	Timeline    string   `json:"timeline"`
}

// ProposalUpdateRequest lets an admin adjust workflow state and notes.
// Status accepts any value: transitions are deliberately unrestricted.
type ProposalUpdateRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}
