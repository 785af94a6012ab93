package feed

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	xhtml "golang.org/x/net/html"
)

// defaults used when a feed provides nothing usable
const (
	DefaultCoverImage   = "https://images.unsplash.com/photo-1456513080510-7bf3a84b82f8?w=800&h=400&fit=crop"
	DefaultProfilePhoto = "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop"
	DefaultBio          = "Writer and thinker exploring philosophy and ideas."
)

// length limits for derived text fields
const (
	ExcerptLength  = 150
	SubtitleLength = 150
	BioLength      = 200
)

var (
	// strips all markup, replacing each removed tag with a space
	textPolicy = bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true)

	paragraphRe = regexp.MustCompile(`\n\s*\n`)

	// video thumbnail patterns, tried in order after <video poster> and data-thumbnail
	videoThumbPatterns = []*regexp.Regexp{
		regexp.MustCompile(`https://[^"'\s]+\.substack\.com/[^"'\s]*video[^"'\s]*\.(?:jpg|jpeg|png|webp)`),
		regexp.MustCompile(`https://substack[^"'\s]*\.s3\.amazonaws\.com/[^"'\s]*\.(?:jpg|jpeg|png|webp)`),
		regexp.MustCompile(`https://substackcdn\.com/image/[^"'\s]+\.(?:jpg|jpeg|png|webp)`),
	}

	trackingMarkers = []string{"track", "pixel", "1x1"}
)

// CoverImage picks the best cover image for a feed item. Precedence is image enclosure,
// then video thumbnail for video enclosures, then the first usable <img> of the content,
// then of the description, and finally DefaultCoverImage.
func CoverImage(item *gofeed.Item) string {
	if item == nil {
		return DefaultCoverImage
	}

	if enc := firstEnclosure(item); enc != nil {
		encType := strings.ToLower(enc.Type)
		if strings.HasPrefix(encType, "image/") {
			return enc.URL
		}
		if strings.HasPrefix(encType, "video/") {
			for _, body := range []string{item.Content, item.Description} {
				if u := videoThumbnail(body); u != "" {
					return u
				}
			}
		}
	}

	for _, body := range []string{item.Content, item.Description} {
		if u := firstImage(body); u != "" {
			return u
		}
	}
	return DefaultCoverImage
}

// Excerpt converts html to plain text with collapsed whitespace and truncates it to maxLen
// characters at a word boundary, appending "...". The result never exceeds maxLen+3 characters.
func Excerpt(htmlText string, maxLen int) string {
	text := strings.Join(strings.Fields(stripTags(htmlText)), " ")
	return truncateWords(text, maxLen)
}

// Subtitle returns the first paragraph of the content, or of the description when content
// has no text, limited to SubtitleLength characters. Empty when neither has text.
func Subtitle(content, description string) string {
	for _, body := range []string{content, description} {
		if p := firstParagraph(body); p != "" {
			return truncate(p, SubtitleLength)
		}
	}
	return ""
}

// LogoURL returns the feed-level image, empty if the feed has none
func LogoURL(f *gofeed.Feed) string {
	if f == nil || f.Image == nil {
		return ""
	}
	return strings.TrimSpace(f.Image.URL)
}

// ProfilePhoto returns the feed image, then the itunes image, then DefaultProfilePhoto
func ProfilePhoto(f *gofeed.Feed) string {
	if u := LogoURL(f); u != "" {
		return u
	}
	if f != nil && f.ITunesExt != nil && strings.TrimSpace(f.ITunesExt.Image) != "" {
		return strings.TrimSpace(f.ITunesExt.Image)
	}
	return DefaultProfilePhoto
}

// Bio returns the feed description as plain text limited to BioLength characters,
// or a generic line mentioning the publication url
func Bio(f *gofeed.Feed, substackURL string) string {
	bio := ""
	if f != nil {
		bio = strings.Join(strings.Fields(stripTags(f.Description)), " ")
	}
	if bio == "" {
		bio = "Writer and thinker exploring ideas at " + substackURL
	}
	return truncate(bio, BioLength)
}

// firstEnclosure returns the first enclosure with a url
func firstEnclosure(item *gofeed.Item) *gofeed.Enclosure {
	for _, enc := range item.Enclosures {
		if enc != nil && strings.TrimSpace(enc.URL) != "" {
			return enc
		}
	}
	return nil
}

// videoThumbnail looks for a poster or thumbnail of an embedded video
func videoThumbnail(body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}

	if doc := parseHTML(body); doc != nil {
		if poster, ok := doc.Find("video[poster]").First().Attr("poster"); ok && strings.TrimSpace(poster) != "" {
			return strings.TrimSpace(poster)
		}
		if thumb, ok := doc.Find("[data-thumbnail]").First().Attr("data-thumbnail"); ok && strings.TrimSpace(thumb) != "" {
			return strings.TrimSpace(thumb)
		}
	}

	for _, re := range videoThumbPatterns {
		if m := re.FindString(body); m != "" {
			return m
		}
	}

	return firstImage(body)
}

// firstImage returns src of the first <img> which doesn't look like a tracking pixel
func firstImage(body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	doc := parseHTML(body)
	if doc == nil {
		return ""
	}

	result := ""
	doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src := strings.TrimSpace(s.AttrOr("src", ""))
		if src == "" || isTracking(src) {
			return true
		}
		result = src
		return false
	})
	return result
}

func isTracking(src string) bool {
	lower := strings.ToLower(src)
	for _, marker := range trackingMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// parseHTML builds a goquery document, nil if the fragment can't be parsed
func parseHTML(body string) *goquery.Document {
	node, err := xhtml.Parse(strings.NewReader(body))
	if err != nil {
		return nil
	}
	return goquery.NewDocumentFromNode(node)
}

// stripTags removes markup and decodes entities, leaving line breaks of the text intact
func stripTags(body string) string {
	if body == "" {
		return ""
	}
	return html.UnescapeString(textPolicy.Sanitize(body))
}

func firstParagraph(body string) string {
	text := strings.TrimSpace(stripTags(body))
	if text == "" {
		return ""
	}
	first := paragraphRe.Split(text, 2)[0]
	return strings.Join(strings.Fields(first), " ")
}

// truncate cuts text longer than maxLen characters to maxLen-3 and appends "..."
func truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	cut := maxLen - 3
	if cut < 0 {
		cut = 0
	}
	return strings.TrimSpace(string(runes[:cut])) + "..."
}

// truncateWords cuts text longer than maxLen characters at the last space and appends "..."
func truncateWords(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen < 0 {
		maxLen = 0
	}
	cut := runes[:maxLen]
	if idx := lastSpace(cut); idx > 0 {
		cut = cut[:idx]
	}
	return string(cut) + "..."
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}
