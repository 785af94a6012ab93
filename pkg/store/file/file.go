// Package file implements the local fallback storage backend on top of json files.
//
// Layout under the base directory:
//
//	cache/<source>.json      posts of a single source, feed order
//	cache/all-posts.json     merged posts of all sources, newest first
//	logos/<source>.json      {"logoUrl": "..."}
//	authors.json             all authors, sorted by name
//	aggregated-posts.json    aggregated posts, newest first
//
// Every file is replaced atomically, readers never see a partially written file.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
	"github.com/alfonsotech/philosophers-alliance/pkg/store"
)

const (
	cacheDir           = "cache"
	logosDir           = "logos"
	allPostsFile       = "all-posts.json"
	authorsFile        = "authors.json"
	aggregatedPostFile = "aggregated-posts.json"
)

// Store is a json files backend. Writers are serialized, readers are never blocked
// for longer than a single file swap.
type Store struct {
	dir  string
	lock sync.RWMutex
}

type logoRecord struct {
	LogoURL string `json:"logoUrl"`
}

// New makes a file store rooted at dir, creating the directory layout
func New(dir string) (*Store, error) {
	for _, d := range []string{dir, filepath.Join(dir, cacheDir), filepath.Join(dir, logosDir)} {
		if err := os.MkdirAll(d, 0o750); err != nil {
			return nil, fmt.Errorf("make directory %s: %w", d, err)
		}
	}
	return &Store{dir: dir}, nil
}

// UpsertAuthor creates or overwrites the author, keeping its creation time.
// Substack url must be unique across authors.
func (s *Store) UpsertAuthor(_ context.Context, author domain.Author) (bool, error) {
	if err := checkID(author.ID); err != nil {
		return false, err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	authors := []domain.Author{}
	if err := s.readJSON(authorsFile, &authors); err != nil {
		return false, fmt.Errorf("read authors: %w", err)
	}

	now := time.Now().UTC()
	author.UpdatedAt = now
	created := true
	for i, a := range authors {
		if a.ID != author.ID && author.SubstackURL != "" && a.SubstackURL == author.SubstackURL {
			return false, fmt.Errorf("substack url %s already used by author %s", author.SubstackURL, a.ID)
		}
		if a.ID == author.ID {
			author.CreatedAt = a.CreatedAt
			authors[i] = author
			created = false
		}
	}
	if created {
		author.CreatedAt = now
		authors = append(authors, author)
	}
	sort.SliceStable(authors, func(i, j int) bool { return authors[i].Name < authors[j].Name })

	if err := s.writeJSON(authorsFile, authors); err != nil {
		return false, fmt.Errorf("write authors: %w", err)
	}

	if author.LogoURL != "" {
		if err := s.writeJSON(filepath.Join(logosDir, author.ID+".json"), logoRecord{LogoURL: author.LogoURL}); err != nil {
			return false, fmt.Errorf("write logo of %s: %w", author.ID, err)
		}
	}
	return created, nil
}

// ReplacePostsForSource rewrites the source file and the merged index
func (s *Store) ReplacePostsForSource(_ context.Context, sourceID string, posts []domain.Post) error {
	if err := checkID(sourceID); err != nil {
		return err
	}
	if posts == nil {
		posts = []domain.Post{}
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.writeJSON(filepath.Join(cacheDir, sourceID+".json"), dedupPosts(posts)); err != nil {
		return fmt.Errorf("write posts of %s: %w", sourceID, err)
	}

	all := []domain.Post{}
	if err := s.readJSON(filepath.Join(cacheDir, allPostsFile), &all); err != nil {
		return fmt.Errorf("read merged posts: %w", err)
	}
	merged := make([]domain.Post, 0, len(all)+len(posts))
	for _, p := range all {
		if p.SourceID != sourceID {
			merged = append(merged, p)
		}
	}
	merged = dedupPosts(append(merged, posts...))
	sortPosts(merged)

	if err := s.writeJSON(filepath.Join(cacheDir, allPostsFile), merged); err != nil {
		return fmt.Errorf("write merged posts: %w", err)
	}
	lgr.Printf("[DEBUG] saved %d posts of %s to file storage, %d total", len(posts), sourceID, len(merged))
	return nil
}

// UpsertAggregatedPost creates or overwrites the aggregated post by url
func (s *Store) UpsertAggregatedPost(_ context.Context, post domain.AggregatedPost) (bool, error) {
	if post.PostURL == "" {
		return false, errors.New("aggregated post without url")
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	posts := []domain.AggregatedPost{}
	if err := s.readJSON(aggregatedPostFile, &posts); err != nil {
		return false, fmt.Errorf("read aggregated posts: %w", err)
	}

	now := time.Now().UTC()
	post.UpdatedAt = now
	created := true
	for i, p := range posts {
		if p.PostURL == post.PostURL {
			post.CreatedAt = p.CreatedAt
			posts[i] = post
			created = false
			break
		}
	}
	if created {
		post.CreatedAt = now
		posts = append(posts, post)
	}
	sort.SliceStable(posts, func(i, j int) bool { return posts[i].Date.After(posts[j].Date) })

	if err := s.writeJSON(aggregatedPostFile, posts); err != nil {
		return false, fmt.Errorf("write aggregated posts: %w", err)
	}
	return created, nil
}

// QueryAuthors lists authors matching the search by name, bio or publication
func (s *Store) QueryAuthors(_ context.Context, q store.AuthorQuery) ([]domain.Author, int64, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	authors := []domain.Author{}
	if err := s.readJSON(authorsFile, &authors); err != nil {
		return nil, 0, fmt.Errorf("read authors: %w", err)
	}

	res := make([]domain.Author, 0, len(authors))
	for _, a := range authors {
		if matches(q.Search, a.Name, a.Bio, a.PublicationName) {
			res = append(res, a)
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return paginate(res, 0, q.Limit), int64(len(res)), nil
}

// QueryPosts lists posts of one or all sources, newest first
func (s *Store) QueryPosts(_ context.Context, q store.PostQuery) ([]domain.Post, int64, error) {
	name := filepath.Join(cacheDir, allPostsFile)
	if q.SourceID != "" {
		if err := checkID(q.SourceID); err != nil {
			return nil, 0, err
		}
		name = filepath.Join(cacheDir, q.SourceID+".json")
	}

	s.lock.RLock()
	defer s.lock.RUnlock()

	posts := []domain.Post{}
	if err := s.readJSON(name, &posts); err != nil {
		return nil, 0, fmt.Errorf("read posts: %w", err)
	}

	res := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if matches(q.Search, p.Title, p.Subtitle, p.Author, p.PublicationName) {
			res = append(res, p)
		}
	}
	sortPosts(res)
	return paginate(res, q.Skip, q.Limit), int64(len(res)), nil
}

// QueryAggregated lists aggregated posts matching the search by title, excerpt or author
func (s *Store) QueryAggregated(_ context.Context, q store.PostQuery) ([]domain.AggregatedPost, int64, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	posts := []domain.AggregatedPost{}
	if err := s.readJSON(aggregatedPostFile, &posts); err != nil {
		return nil, 0, fmt.Errorf("read aggregated posts: %w", err)
	}

	res := make([]domain.AggregatedPost, 0, len(posts))
	for _, p := range posts {
		if matches(q.Search, p.Title, p.Excerpt, p.AuthorName) {
			res = append(res, p)
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Date.After(res[j].Date) })
	return paginate(res, q.Skip, q.Limit), int64(len(res)), nil
}

// GetLogo returns the stored logo url of the source
func (s *Store) GetLogo(_ context.Context, sourceID string) (string, error) {
	if err := checkID(sourceID); err != nil {
		return "", err
	}

	s.lock.RLock()
	defer s.lock.RUnlock()

	var rec logoRecord
	if err := s.readJSON(filepath.Join(logosDir, sourceID+".json"), &rec); err != nil {
		return "", fmt.Errorf("read logo of %s: %w", sourceID, err)
	}
	if rec.LogoURL == "" {
		return "", domain.ErrNotFound
	}
	return rec.LogoURL, nil
}

// readJSON decodes the file into v, missing file leaves v untouched
func (s *Store) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name)) //nolint:gosec // name is built from validated ids
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// writeJSON writes v to a temp file next to the target and renames it over the target
func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	target := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// checkID rejects ids which can't be used as a file name
func checkID(id string) error {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return fmt.Errorf("invalid source id %q", id)
	}
	return nil
}

// matches checks if any of the fields contains the search, case-insensitive. Empty search matches all.
func matches(search string, fields ...string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

// dedupPosts keeps the last post for every id
func dedupPosts(posts []domain.Post) []domain.Post {
	idx := make(map[string]int, len(posts))
	res := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if i, ok := idx[p.ID]; ok {
			res[i] = p
			continue
		}
		idx[p.ID] = len(res)
		res = append(res, p)
	}
	return res
}

func sortPosts(posts []domain.Post) {
	sort.SliceStable(posts, func(i, j int) bool { return posts[i].PublishDate.After(posts[j].PublishDate) })
}

func paginate[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
