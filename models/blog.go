package models

import (
	"time"
)

// BlogPost represents a blog article. Content is free text; the rendering
// layer interprets "## "/"### " prefixes as headings and "- "/"1. " as list
// items, the store does not validate it.
type BlogPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Image     string    `json:"image"`
	Author    string    `json:"author"`
	Status    Status    `json:"status"`
	Views     int       `json:"views"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
