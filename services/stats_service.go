package services

import (
	"github.com/atolyedigital/agency-api/dto"
	"github.com/atolyedigital/agency-api/models"
	"github.com/atolyedigital/agency-api/repositories"
)

// StatsService reduces the three content stores into summary counters.
// Counters are recomputed fully on every call; a read failure on any store
// fails the whole call.
type StatsService struct {
	proposals *repositories.ProposalRepository
	projects  *repositories.ProjectRepository
	blogs     *repositories.BlogRepository
}

// NewStatsService creates a new stats service instance
func NewStatsService(store repositories.Store) *StatsService {
	return &StatsService{
		proposals: repositories.NewProposalRepository(store),
		projects:  repositories.NewProjectRepository(store),
		blogs:     repositories.NewBlogRepository(store),
	}
}

// GetStats scans all three stores and returns the aggregate counters
func (s *StatsService) GetStats() (dto.StatsResponse, error) {
	var stats dto.StatsResponse

	proposals, err := s.proposals.FindAll()
	if err != nil {
		return dto.StatsResponse{}, err
	}
	stats.Proposals.Total = len(proposals)
	for _, proposal := range proposals {
		switch proposal.Status {
		case models.ProposalStatusNew:
			stats.Proposals.New++
		case models.ProposalStatusReviewing:
			stats.Proposals.Reviewing++
		case models.ProposalStatusApproved:
			stats.Proposals.Approved++
		}
	}

	projects, err := s.projects.FindAll()
	if err != nil {
		return dto.StatsResponse{}, err
	}
	stats.Projects.Total = len(projects)
	for _, project := range projects {
		if project.Status == models.StatusPublished {
			stats.Projects.Published++
		} else {
			stats.Projects.Draft++
		}
	}

	posts, err := s.blogs.FindAll()
	if err != nil {
		return dto.StatsResponse{}, err
	}
	stats.Blogs.Total = len(posts)
	for _, post := range posts {
		if post.Status == models.StatusPublished {
			stats.Blogs.Published++
		} else {
			stats.Blogs.Draft++
		}
		stats.Blogs.TotalViews += post.Views
	}

	return stats, nil
}
