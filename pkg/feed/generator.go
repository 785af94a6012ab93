package feed

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
)

// Generator makes the alliance RSS feed and the OPML of the roster
type Generator struct {
	baseURL string
	title   string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL, title string) *Generator {
	if title == "" {
		title = "Philosophers Alliance"
	}
	return &Generator{baseURL: strings.TrimRight(baseURL, "/"), title: title}
}

// GenerateRSS creates an RSS 2.0 feed from posts, search narrows the title and self link
func (g *Generator) GenerateRSS(posts []domain.Post, search string) (string, error) {
	title := g.title + " - Latest Posts"
	selfLink := g.baseURL + "/rss"
	if search != "" {
		title = fmt.Sprintf("%s - %s", g.title, search)
		selfLink += "?search=" + url.QueryEscape(search)
	}

	items := make([]*RSSItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, g.convertToRSSItem(p))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   "Recent writing from independent philosophers",
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         items,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

func (g *Generator) convertToRSSItem(p domain.Post) *RSSItem {
	res := &RSSItem{
		Title:       p.Title,
		Link:        p.Link,
		GUID:        p.ID,
		Description: p.Subtitle,
		Author:      p.Author,
	}
	if !p.PublishDate.IsZero() {
		res.PubDate = p.PublishDate.Format(time.RFC1123Z)
	}
	if p.PublicationName != "" {
		res.Categories = []string{p.PublicationName}
	}
	if p.CoverImageURL != "" {
		res.Enclosure = &RSSEnclosure{URL: p.CoverImageURL, Type: "image/jpeg"}
	}
	return res
}

// GenerateOPML creates an OPML file with the roster feeds, sources without rss url are skipped
func (g *Generator) GenerateOPML(sources []domain.Source) (string, error) {
	type outline struct {
		XMLName xml.Name `xml:"outline"`
		Text    string   `xml:"text,attr"`
		Title   string   `xml:"title,attr"`
		Type    string   `xml:"type,attr"`
		XMLUrl  string   `xml:"xmlUrl,attr"`
		HTMLUrl string   `xml:"htmlUrl,attr,omitempty"`
	}

	type body struct {
		XMLName  xml.Name  `xml:"body"`
		Outlines []outline `xml:"outline"`
	}

	type head struct {
		XMLName     xml.Name `xml:"head"`
		Title       string   `xml:"title"`
		DateCreated string   `xml:"dateCreated"`
	}

	type opml struct {
		XMLName xml.Name `xml:"opml"`
		Version string   `xml:"version,attr"`
		Head    head     `xml:"head"`
		Body    body     `xml:"body"`
	}

	outlines := make([]outline, 0, len(sources))
	for _, src := range sources {
		if src.RSSURL == "" {
			continue
		}
		text := src.Name
		if src.PublicationName != "" {
			text = fmt.Sprintf("%s (%s)", src.PublicationName, src.Name)
		}
		outlines = append(outlines, outline{
			Text:    text,
			Title:   text,
			Type:    "rss",
			XMLUrl:  src.RSSURL,
			HTMLUrl: src.SubstackURL,
		})
	}

	doc := opml{
		Version: "2.0",
		Head: head{
			Title:       g.title + " Roster",
			DateCreated: time.Now().Format(time.RFC1123Z),
		},
		Body: body{Outlines: outlines},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal OPML: %w", err)
	}
	return xml.Header + string(output), nil
}
