package models

import (
	"time"
)

// Status represents the publish state of a content record
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Project represents a portfolio entry shown on the public site
type Project struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	FullDescription string    `json:"fullDescription"`
	Category        string    `json:"category"`
	Technologies    []string  `json:"technologies"`
	Image           string    `json:"image"`
	Gallery         []string  `json:"gallery"`
	Client          string    `json:"client"`
	Year            string    `json:"year"`
	URL             string    `json:"url"`
	Featured        bool      `json:"featured"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}
