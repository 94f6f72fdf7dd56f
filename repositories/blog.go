package repositories

import (
	"github.com/atolyedigital/agency-api/models"
)

const blogsResource = "blogs"

// BlogRepository handles storage operations for blog posts
type BlogRepository struct {
	store Store
}

// NewBlogRepository creates a new blog repository instance
func NewBlogRepository(store Store) *BlogRepository {
	return &BlogRepository{store: store}
}

// FindAll retrieves all blog posts in stored order
func (r *BlogRepository) FindAll() ([]models.BlogPost, error) {
	return loadAll[models.BlogPost](r.store, blogsResource)
}

// FindByID retrieves a blog post by its ID
func (r *BlogRepository) FindByID(id string) (models.BlogPost, error) {
	posts, err := r.FindAll()
	if err != nil {
		return models.BlogPost{}, err
	}
	for _, post := range posts {
		if post.ID == id {
			return post, nil
		}
	}
	return models.BlogPost{}, ErrNotFound
}

// Insert prepends a new post so that recent records sort first
func (r *BlogRepository) Insert(post models.BlogPost) error {
	posts, err := r.FindAll()
	if err != nil {
		return err
	}
	posts = append([]models.BlogPost{post}, posts...)
	return saveAll(r.store, blogsResource, posts)
}

// Replace overwrites the stored record with the same ID
func (r *BlogRepository) Replace(post models.BlogPost) error {
	posts, err := r.FindAll()
	if err != nil {
		return err
	}
	for i := range posts {
		if posts[i].ID == post.ID {
			posts[i] = post
			return saveAll(r.store, blogsResource, posts)
		}
	}
	return ErrNotFound
}

// Delete removes a blog post by ID
func (r *BlogRepository) Delete(id string) error {
	posts, err := r.FindAll()
	if err != nil {
		return err
	}
	kept := posts[:0:0]
	for _, post := range posts {
		if post.ID != id {
			kept = append(kept, post)
		}
	}
	if len(kept) == len(posts) {
		return ErrNotFound
	}
	return saveAll(r.store, blogsResource, kept)
}
