package entity

import (
	"time"

	"github.com/google/uuid"
)

// Content field limits.
const (
	BlogTitleMaxLength  = 250
	EventTitleMaxLength = 200
)

// Blog is an article written by a seller.
type Blog struct {
	ID          uuid.UUID  `json:"id"`
	AuthorID    uuid.UUID  `json:"author_id"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content"`
	ImageKey    string     `json:"image_key,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Publish makes the blog visible from the given instant.
func (b *Blog) Publish(at time.Time) {
	b.Published = true
	b.PublishedAt = &at
}

// Event is a happening announced by a seller (fair, sale, workshop).
type Event struct {
	ID          uuid.UUID `json:"id"`
	OrganizerID uuid.UUID `json:"organizer_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ImageKey    string    `json:"image_key,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
