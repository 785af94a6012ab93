package feed

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"

	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
)

// RecentPostsLimit is the number of posts kept as author's recent posts
const RecentPostsLimit = 3

// feedCacheTTL covers the profile, recent and posts fetches of one source,
// a typical source has the same url for all three
const feedCacheTTL = 30 * time.Second

// Fetcher turns source feeds into domain records
type Fetcher struct {
	parser   FeedParser
	cacheTTL time.Duration

	lock  sync.Mutex
	cache map[string]cachedFeed
}

type cachedFeed struct {
	feed *gofeed.Feed
	err  error
	ts   time.Time
}

// FeedParser fetches and parses a feed by url
type FeedParser interface {
	Parse(ctx context.Context, url string) (*gofeed.Feed, error)
}

// NewFetcher makes a fetcher on top of the given parser
func NewFetcher(parser FeedParser) *Fetcher {
	return &Fetcher{parser: parser, cacheTTL: feedCacheTTL, cache: map[string]cachedFeed{}}
}

// FetchPosts fetches all items of the source rss feed as catalog posts
func (f *Fetcher) FetchPosts(ctx context.Context, src domain.Source) ([]domain.Post, error) {
	if src.RSSURL == "" {
		return nil, fmt.Errorf("source %s has no rss url", src.ID)
	}

	feed, err := f.parse(ctx, src.RSSURL)
	if err != nil {
		return nil, fmt.Errorf("fetch posts for %s: %w", src.ID, err)
	}

	pubName := src.PublicationName
	if pubName == "" {
		pubName = feed.Title
	}
	logo := LogoURL(feed)

	posts := make([]domain.Post, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		posts = append(posts, domain.Post{
			ID:              src.ID + ":" + itemKey(item),
			Title:           strings.TrimSpace(item.Title),
			Subtitle:        Subtitle(item.Content, item.Description),
			Author:          src.Name,
			PublicationName: pubName,
			PublishDate:     itemDate(item),
			Link:            item.Link,
			SourceID:        src.ID,
			CoverImageURL:   CoverImage(item),
			LogoURL:         logo,
		})
	}
	lgr.Printf("[DEBUG] fetched %d posts for %s", len(posts), src.ID)
	return posts, nil
}

// FetchRecent fetches the first few items of the publication feed as post summaries
func (f *Fetcher) FetchRecent(ctx context.Context, src domain.Source) ([]domain.PostSummary, error) {
	feedURL := PublicationFeedURL(src)
	if feedURL == "" {
		return nil, fmt.Errorf("source %s has no feed url", src.ID)
	}

	feed, err := f.parse(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch recent posts for %s: %w", src.ID, err)
	}

	res := make([]domain.PostSummary, 0, RecentPostsLimit)
	for _, item := range feed.Items {
		if len(res) >= RecentPostsLimit {
			break
		}
		if item == nil {
			continue
		}

		title := strings.TrimSpace(item.Title)
		if title == "" {
			title = "Untitled"
		}
		link := item.Link
		if link == "" {
			link = src.SubstackURL
		}
		body := item.Content
		if strings.TrimSpace(body) == "" {
			body = item.Description
		}
		date := itemDate(item)
		if date.IsZero() {
			date = time.Now()
		}

		res = append(res, domain.PostSummary{
			Title:         title,
			CoverImageURL: CoverImage(item),
			URL:           link,
			Date:          date,
			Excerpt:       Excerpt(body, ExcerptLength),
		})
	}
	return res, nil
}

// FetchProfile resolves author photo, bio and logo from the feed.
// It never fails, a broken feed yields default photo and bio.
func (f *Fetcher) FetchProfile(ctx context.Context, rssURL, substackURL string) domain.Profile {
	feedURL := rssURL
	if feedURL == "" {
		feedURL = PublicationFeedURL(domain.Source{SubstackURL: substackURL})
	}

	feed, err := f.parse(ctx, feedURL)
	if err != nil {
		lgr.Printf("[WARN] can't fetch profile from %s, using defaults: %v", feedURL, err)
		return domain.Profile{PhotoURL: DefaultProfilePhoto, Bio: DefaultBio}
	}

	return domain.Profile{
		PhotoURL: ProfilePhoto(feed),
		Bio:      Bio(feed, substackURL),
		LogoURL:  LogoURL(feed),
	}
}

// parse returns the feed parsed within the last cacheTTL, or downloads it.
// Failures are kept too, the parser already retried them. Cancellations are not kept.
func (f *Fetcher) parse(ctx context.Context, url string) (*gofeed.Feed, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	now := time.Now()
	for k, c := range f.cache {
		if now.Sub(c.ts) >= f.cacheTTL {
			delete(f.cache, k)
		}
	}
	if c, ok := f.cache[url]; ok {
		lgr.Printf("[DEBUG] reuse parsed feed %s", url)
		return c.feed, c.err
	}

	feed, err := f.parser.Parse(ctx, url)
	if ctx.Err() != nil {
		return feed, err
	}
	f.cache[url] = cachedFeed{feed: feed, err: err, ts: now}
	return feed, err
}

// PublicationFeedURL returns "<substack url>/feed", or the rss url when substack url is not set
func PublicationFeedURL(src domain.Source) string {
	if src.SubstackURL == "" {
		return src.RSSURL
	}
	return strings.TrimSuffix(src.SubstackURL, "/") + "/feed"
}

// itemKey returns guid, then link, then a random id
func itemKey(item *gofeed.Item) string {
	if guid := strings.TrimSpace(item.GUID); guid != "" {
		return guid
	}
	if link := strings.TrimSpace(item.Link); link != "" {
		return link
	}
	return uuid.NewString()
}

// itemDate returns published time, then updated time, zero time if the item has neither
func itemDate(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC()
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.UTC()
	}
	return time.Time{}
}
