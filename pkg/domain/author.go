package domain

import "time"

// Author is the stored per-source record, overwritten wholesale on every refresh
type Author struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	PublicationName string        `json:"publicationName"`
	SubstackURL     string        `json:"substackUrl"`
	RSSURL          string        `json:"rssUrl"`
	ProfilePhotoURL string        `json:"profilePhotoUrl"`
	Bio             string        `json:"bio"`
	LogoURL         string        `json:"logoUrl,omitempty"`
	RecentPosts     []PostSummary `json:"recentPosts"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// NewAuthor builds an author record from a roster source, its resolved profile and recent posts
func NewAuthor(src Source, profile Profile, recent []PostSummary) Author {
	if recent == nil {
		recent = []PostSummary{}
	}
	return Author{
		ID:              src.ID,
		Name:            src.Name,
		PublicationName: src.PublicationName,
		SubstackURL:     src.SubstackURL,
		RSSURL:          src.RSSURL,
		ProfilePhotoURL: profile.PhotoURL,
		Bio:             profile.Bio,
		LogoURL:         profile.LogoURL,
		RecentPosts:     recent,
	}
}
