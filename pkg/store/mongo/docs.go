package mongo

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
	"github.com/alfonsotech/philosophers-alliance/pkg/store"
)

// authorDoc is the stored form of domain.Author
type authorDoc struct {
	ID              string       `bson:"id"`
	Name            string       `bson:"name"`
	PublicationName string       `bson:"publicationName"`
	SubstackURL     string       `bson:"substackUrl"`
	RSSURL          string       `bson:"rssUrl"`
	ProfilePhotoURL string       `bson:"profilePhotoUrl"`
	Bio             string       `bson:"bio"`
	LogoURL         string       `bson:"logoUrl,omitempty"`
	RecentPosts     []summaryDoc `bson:"recentPosts"`
	CreatedAt       time.Time    `bson:"createdAt"`
	UpdatedAt       time.Time    `bson:"updatedAt"`
}

type summaryDoc struct {
	Title         string    `bson:"title"`
	CoverImageURL string    `bson:"coverImageUrl"`
	URL           string    `bson:"url"`
	Date          time.Time `bson:"date"`
	Excerpt       string    `bson:"excerpt"`
}

// postDoc is the stored form of domain.Post
type postDoc struct {
	ID              string    `bson:"id"`
	Title           string    `bson:"title"`
	Subtitle        string    `bson:"subtitle"`
	Author          string    `bson:"author"`
	PublicationName string    `bson:"publicationName"`
	PublishDate     time.Time `bson:"publishDate"`
	Link            string    `bson:"link"`
	SourceID        string    `bson:"sourceId"`
	CoverImageURL   string    `bson:"coverImageUrl,omitempty"`
	LogoURL         string    `bson:"logoUrl,omitempty"`
}

// aggregatedDoc is the stored form of domain.AggregatedPost
type aggregatedDoc struct {
	PostURL       string    `bson:"postUrl"`
	Title         string    `bson:"title"`
	CoverImageURL string    `bson:"coverImageUrl"`
	Date          time.Time `bson:"date"`
	Excerpt       string    `bson:"excerpt"`
	AuthorName    string    `bson:"authorName"`
	AuthorURL     string    `bson:"authorUrl"`
	CreatedAt     time.Time `bson:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt"`
}

// authorSet builds $set part of the author upsert, creation time goes to $setOnInsert
func authorSet(a domain.Author, now time.Time) bson.M {
	recent := make([]summaryDoc, 0, len(a.RecentPosts))
	for _, s := range a.RecentPosts {
		recent = append(recent, summaryDoc(s))
	}
	return bson.M{
		"id":              a.ID,
		"name":            a.Name,
		"publicationName": a.PublicationName,
		"substackUrl":     a.SubstackURL,
		"rssUrl":          a.RSSURL,
		"profilePhotoUrl": a.ProfilePhotoURL,
		"bio":             a.Bio,
		"logoUrl":         a.LogoURL,
		"recentPosts":     recent,
		"updatedAt":       now,
	}
}

func (d authorDoc) toDomain() domain.Author {
	recent := make([]domain.PostSummary, 0, len(d.RecentPosts))
	for _, s := range d.RecentPosts {
		recent = append(recent, domain.PostSummary(s))
	}
	return domain.Author{
		ID:              d.ID,
		Name:            d.Name,
		PublicationName: d.PublicationName,
		SubstackURL:     d.SubstackURL,
		RSSURL:          d.RSSURL,
		ProfilePhotoURL: d.ProfilePhotoURL,
		Bio:             d.Bio,
		LogoURL:         d.LogoURL,
		RecentPosts:     recent,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func newPostDoc(p domain.Post) postDoc {
	return postDoc(p)
}

func (d postDoc) toDomain() domain.Post {
	return domain.Post(d)
}

// aggregatedSet builds $set part of the aggregated post upsert
func aggregatedSet(p domain.AggregatedPost, now time.Time) bson.M {
	return bson.M{
		"postUrl":       p.PostURL,
		"title":         p.Title,
		"coverImageUrl": p.CoverImageURL,
		"date":          p.Date,
		"excerpt":       p.Excerpt,
		"authorName":    p.AuthorName,
		"authorUrl":     p.AuthorURL,
		"updatedAt":     now,
	}
}

func (d aggregatedDoc) toDomain() domain.AggregatedPost {
	return domain.AggregatedPost(d)
}

// authorsFilter matches search as a case-insensitive substring of name, bio or publication
func authorsFilter(q store.AuthorQuery) bson.M {
	filter := bson.M{}
	if or := searchClause(q.Search, "name", "bio", "publicationName"); or != nil {
		filter["$or"] = or
	}
	return filter
}

// postsFilter matches search as a case-insensitive substring of title, subtitle, author or publication
func postsFilter(q store.PostQuery) bson.M {
	filter := bson.M{}
	if q.SourceID != "" {
		filter["sourceId"] = q.SourceID
	}
	if or := searchClause(q.Search, "title", "subtitle", "author", "publicationName"); or != nil {
		filter["$or"] = or
	}
	return filter
}

// aggregatedFilter matches search as a case-insensitive substring of title, excerpt or author name
func aggregatedFilter(q store.PostQuery) bson.M {
	filter := bson.M{}
	if or := searchClause(q.Search, "title", "excerpt", "authorName"); or != nil {
		filter["$or"] = or
	}
	return filter
}

func searchClause(search string, fields ...string) bson.A {
	search = strings.TrimSpace(search)
	if search == "" {
		return nil
	}
	re := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	res := make(bson.A, 0, len(fields))
	for _, f := range fields {
		res = append(res, bson.M{f: re})
	}
	return res
}
