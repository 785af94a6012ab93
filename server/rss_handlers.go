package server

import (
	"log"
	"net/http"
)

const rssPostsLimit = 50

// rssFeedHandler serves the latest posts of all sources as RSS, GET /rss?search=
func (s *Server) rssFeedHandler(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	page, err := s.Catalog.ListPosts(r.Context(), search, 1, rssPostsLimit)
	if err != nil {
		log.Printf("[ERROR] failed to get posts for rss: %v", err)
		http.Error(w, "Failed to get posts", http.StatusInternalServerError)
		return
	}

	rss, err := s.generator.GenerateRSS(page.Items, search)
	if err != nil {
		log.Printf("[ERROR] failed to generate rss: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[WARN] failed to write rss response: %v", err)
	}
}

// opmlHandler serves the roster as OPML subscription list
func (s *Server) opmlHandler(w http.ResponseWriter, _ *http.Request) {
	opml, err := s.generator.GenerateOPML(s.params.Sources)
	if err != nil {
		log.Printf("[ERROR] failed to generate opml: %v", err)
		http.Error(w, "Failed to generate OPML", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/x-opml; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="philosophers-alliance.opml"`)
	if _, err := w.Write([]byte(opml)); err != nil {
		log.Printf("[WARN] failed to write opml response: %v", err)
	}
}
