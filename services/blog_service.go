package services

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/atolyedigital/agency-api/dto"
	"github.com/atolyedigital/agency-api/models"
	"github.com/atolyedigital/agency-api/repositories"
	"github.com/atolyedigital/agency-api/utils"
)

// BlogService implements the blog CRUD and view-count semantics
type BlogService struct {
	repo *repositories.BlogRepository
}

// NewBlogService creates a new blog service instance
func NewBlogService(store repositories.Store) *BlogService {
	return &BlogService{repo: repositories.NewBlogRepository(store)}
}

// ListPublished returns posts visible on the public site
func (s *BlogService) ListPublished() ([]models.BlogPost, error) {
	posts, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	published := make([]models.BlogPost, 0, len(posts))
	for _, post := range posts {
		if post.Status == models.StatusPublished {
			published = append(published, post)
		}
	}
	return published, nil
}

// ListAll returns every post including drafts
func (s *BlogService) ListAll() ([]models.BlogPost, error) {
	return s.repo.FindAll()
}

// GetBySlug returns the first published post with a matching slug and
// increments its view counter as a persisted side effect. Drafts are
// invisible here and never gain views.
func (s *BlogService) GetBySlug(slug string) (models.BlogPost, error) {
	posts, err := s.repo.FindAll()
	if err != nil {
		return models.BlogPost{}, err
	}
	for _, post := range posts {
		if post.Slug == slug && post.Status == models.StatusPublished {
			post.Views++
			if err := s.repo.Replace(post); err != nil {
				return models.BlogPost{}, err
			}
			return post, nil
		}
	}
	return models.BlogPost{}, repositories.ErrNotFound
}

// GetByID returns a post by ID, drafts included, without touching views
func (s *BlogService) GetByID(id string) (models.BlogPost, error) {
	return s.repo.FindByID(id)
}

// Create validates the payload and stores a new post
func (s *BlogService) Create(req dto.BlogCreateRequest) (models.BlogPost, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required),
		validation.Field(&req.Content, validation.Required),
	)
	if err != nil {
		return models.BlogPost{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	status := models.Status(req.Status)
	if status == "" {
		status = models.StatusDraft
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	post := models.BlogPost{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Slug:      utils.Slugify(req.Title),
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Category:  req.Category,
		Tags:      tags,
		Image:     req.Image,
		Author:    req.Author,
		Status:    status,
		Views:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(post); err != nil {
		return models.BlogPost{}, err
	}
	return post, nil
}

// Update merges the submitted patch over the stored record, restamps
// updatedAt and recomputes the slug only when a title is submitted
func (s *BlogService) Update(id string, req dto.BlogUpdateRequest) (models.BlogPost, error) {
	post, err := s.repo.FindByID(id)
	if err != nil {
		return models.BlogPost{}, err
	}

	if req.Title != nil {
		post.Title = *req.Title
		post.Slug = utils.Slugify(*req.Title)
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Tags != nil {
		post.Tags = *req.Tags
	}
	if req.Image != nil {
		post.Image = *req.Image
	}
	if req.Author != nil {
		post.Author = *req.Author
	}
	if req.Status != nil {
		post.Status = models.Status(*req.Status)
	}
	post.UpdatedAt = time.Now()

	if err := s.repo.Replace(post); err != nil {
		return models.BlogPost{}, err
	}
	return post, nil
}

// Delete removes a post by ID
func (s *BlogService) Delete(id string) error {
	return s.repo.Delete(id)
}
