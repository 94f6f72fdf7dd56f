package dto

// ProposalStats breaks down proposals by workflow state. Rejected proposals
// count toward Total but are not reported separately.
type ProposalStats struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Reviewing int `json:"reviewing"`
	Approved  int `json:"approved"`
}

// ProjectStats breaks down projects by publish state
type ProjectStats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Draft     int `json:"draft"`
}

// BlogStats breaks down blog posts by publish state plus accumulated views
type BlogStats struct {
	Total      int `json:"total"`
	Published  int `json:"published"`
	Draft      int `json:"draft"`
	TotalViews int `json:"totalViews"`
}

// StatsResponse is the aggregate returned by the stats endpoint
type StatsResponse struct {
	Proposals ProposalStats `json:"proposals"`
	Projects  ProjectStats  `json:"projects"`
	Blogs     BlogStats     `json:"blogs"`
}
