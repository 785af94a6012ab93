package domain

import "errors"

// ErrNotFound is returned when a requested record does not exist in storage
var ErrNotFound = errors.New("not found")

// Source is a roster entry describing one publication to aggregate
type Source struct {
	ID              string `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	PublicationName string `json:"publicationName" yaml:"publication_name"`
	SubstackURL     string `json:"substackUrl" yaml:"substack_url"`
	RSSURL          string `json:"rssUrl" yaml:"rss_url"`
}

// Profile is the author presentation data resolved from a source feed
type Profile struct {
	PhotoURL string
	Bio      string
	LogoURL  string
}
