package feed

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/stretchr/testify/assert"
)

func TestCoverImage(t *testing.T) {
	tbl := []struct {
		name string
		item *gofeed.Item
		want string
	}{
		{
			name: "image enclosure wins over body images",
			item: &gofeed.Item{
				Enclosures: []*gofeed.Enclosure{{URL: "https://cdn.example.com/cover.jpg", Type: "image/jpeg"}},
				Content:    `<p><img src="https://cdn.example.com/inline.png"></p>`,
			},
			want: "https://cdn.example.com/cover.jpg",
		},
		{
			name: "image enclosure with upper case type",
			item: &gofeed.Item{
				Enclosures: []*gofeed.Enclosure{{URL: "https://cdn.example.com/cover.webp", Type: "IMAGE/WEBP"}},
			},
			want: "https://cdn.example.com/cover.webp",
		},
		{
			name: "video enclosure uses poster",
			item: &gofeed.Item{
				Enclosures: []*gofeed.Enclosure{{URL: "https://cdn.example.com/v.mp4", Type: "video/mp4"}},
				Content:    `<video src="v.mp4" poster="https://cdn.example.com/poster.jpg"></video><img src="https://cdn.example.com/inline.png">`,
			},
			want: "https://cdn.example.com/poster.jpg",
		},
		{
			name: "video enclosure uses data-thumbnail",
			item: &gofeed.Item{
				Enclosures: []*gofeed.Enclosure{{URL: "https://cdn.example.com/v.mp4", Type: "video/mp4"}},
				Content:    `<div data-thumbnail="https://cdn.example.com/thumb.png"></div>`,
			},
			want: "https://cdn.example.com/thumb.png",
		},
		{
			name: "video enclosure uses substack cdn url from description",
			item: &gofeed.Item{
				Enclosures:  []*gofeed.Enclosure{{URL: "https://cdn.example.com/v.mp4", Type: "video/mp4"}},
				Description: `watch it <a href="https://substackcdn.com/image/fetch/w_600/abc.jpeg">here</a>`,
			},
			want: "https://substackcdn.com/image/fetch/w_600/abc.jpeg",
		},
		{
			name: "first content image skipping tracking pixels",
			item: &gofeed.Item{
				Content: `<img src="https://track.example.com/open.gif"><img src="https://example.com/1x1.png">` +
					`<img src="https://example.com/real.jpg"><img src="https://example.com/second.jpg">`,
			},
			want: "https://example.com/real.jpg",
		},
		{
			name: "description image when content has none",
			item: &gofeed.Item{
				Content:     `<p>just text</p>`,
				Description: `<img src="https://example.com/desc.jpg">`,
			},
			want: "https://example.com/desc.jpg",
		},
		{
			name: "default when nothing found",
			item: &gofeed.Item{Title: "plain", Description: "no markup at all"},
			want: DefaultCoverImage,
		},
		{
			name: "nil item",
			item: nil,
			want: DefaultCoverImage,
		},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoverImage(tt.item))
		})
	}
}

func TestExcerpt(t *testing.T) {
	t.Run("short text kept as is", func(t *testing.T) {
		assert.Equal(t, "Hello world", Excerpt("<p>Hello</p>\n\n<p>  world</p>", 150))
	})

	t.Run("entities decoded", func(t *testing.T) {
		assert.Equal(t, "Kant & Hegel's dialectic", Excerpt("<b>Kant &amp; Hegel&#39;s</b> dialectic", 150))
	})

	t.Run("cut at word boundary", func(t *testing.T) {
		res := Excerpt("<p>one two three four five</p>", 12)
		assert.Equal(t, "one two...", res)
	})

	t.Run("no space to cut at", func(t *testing.T) {
		res := Excerpt(strings.Repeat("a", 20), 10)
		assert.Equal(t, strings.Repeat("a", 10)+"...", res)
	})

	t.Run("length bound", func(t *testing.T) {
		long := "<div>" + strings.Repeat("wisdom begins in wonder ", 40) + "</div>"
		res := Excerpt(long, 150)
		assert.LessOrEqual(t, utf8.RuneCountInString(res), 153)
		assert.True(t, strings.HasSuffix(res, "..."))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Excerpt("", 150))
		assert.Empty(t, Excerpt("<p> </p>", 150))
	})
}

func TestSubtitle(t *testing.T) {
	t.Run("first paragraph of content", func(t *testing.T) {
		content := "<p>First paragraph here.</p>\n\n<p>Second paragraph.</p>"
		assert.Equal(t, "First paragraph here.", Subtitle(content, "desc"))
	})

	t.Run("falls back to description", func(t *testing.T) {
		assert.Equal(t, "Short description", Subtitle("<p> </p>", "<i>Short</i> description"))
	})

	t.Run("long paragraph truncated", func(t *testing.T) {
		res := Subtitle(strings.Repeat("x", 300), "")
		assert.Equal(t, 150, utf8.RuneCountInString(res))
		assert.True(t, strings.HasSuffix(res, "..."))
	})

	t.Run("empty when nothing", func(t *testing.T) {
		assert.Empty(t, Subtitle("", ""))
	})
}

func TestProfileHelpers(t *testing.T) {
	t.Run("feed image", func(t *testing.T) {
		f := &gofeed.Feed{Image: &gofeed.Image{URL: "https://example.com/logo.png"}, Description: "About <b>me</b>"}
		assert.Equal(t, "https://example.com/logo.png", LogoURL(f))
		assert.Equal(t, "https://example.com/logo.png", ProfilePhoto(f))
		assert.Equal(t, "About me", Bio(f, "https://x.substack.com"))
	})

	t.Run("itunes image", func(t *testing.T) {
		f := &gofeed.Feed{ITunesExt: &ext.ITunesFeedExtension{Image: "https://example.com/itunes.png"}}
		assert.Empty(t, LogoURL(f))
		assert.Equal(t, "https://example.com/itunes.png", ProfilePhoto(f))
	})

	t.Run("defaults", func(t *testing.T) {
		f := &gofeed.Feed{}
		assert.Empty(t, LogoURL(f))
		assert.Equal(t, DefaultProfilePhoto, ProfilePhoto(f))
		assert.Equal(t, "Writer and thinker exploring ideas at https://x.substack.com", Bio(f, "https://x.substack.com"))
		assert.Equal(t, DefaultProfilePhoto, ProfilePhoto(nil))
	})

	t.Run("bio truncated", func(t *testing.T) {
		f := &gofeed.Feed{Description: strings.Repeat("b", 500)}
		assert.Equal(t, BioLength, utf8.RuneCountInString(Bio(f, "")))
	})
}
