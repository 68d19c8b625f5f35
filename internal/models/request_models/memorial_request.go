package request_models

import "time"

type CreateProfileRequest struct {
	FirstName     string     `json:"first_name" binding:"required"`
	LastName      string     `json:"last_name" binding:"required"`
	BornDate      *time.Time `json:"born_date"`
	DeathDate     *time.Time `json:"death_date"`
	MemorialPlace string     `json:"memorial_place"`
}

type UpdateProfileRequest struct {
	FirstName     *string    `json:"first_name"`
	LastName      *string    `json:"last_name"`
	BornDate      *time.Time `json:"born_date"`
	DeathDate     *time.Time `json:"death_date"`
	MemorialPlace *string    `json:"memorial_place"`
}

type BiographyRequest struct {
	Content string `json:"content" binding:"required"`
}

type FamilyRequest struct {
	Relation string `json:"relation" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	PhotoURL string `json:"photo_url"`
	LinkSlug string `json:"link_slug"`
}

type EventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date" binding:"required"`
	Images      []string  `json:"images"`
}

type SocialLinkRequest struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required,url"`
}

type GuestBookItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Contact  string `json:"contact"`
	Message  string `json:"message" binding:"required"`
	PhotoURL string `json:"photo_url"`
}
