package domain

import "time"

// Refresh triggers
const (
	TriggerSchedule = "schedule"
	TriggerAPI      = "api"
	TriggerCLI      = "cli"
)

// RefreshSummary describes the outcome of one refresh run over the roster
type RefreshSummary struct {
	ID                 int64     `json:"id,omitempty"`
	Trigger            string    `json:"trigger,omitempty"`
	StartedAt          time.Time `json:"startedAt"`
	FinishedAt         time.Time `json:"finishedAt"`
	Sources            int       `json:"sources"`
	Updated            int       `json:"updated"`
	Failed             int       `json:"failed"`
	NewContentFound    bool      `json:"newContentFound"`
	NewPosts           []Post    `json:"-"`
	NewPostsCount      int       `json:"newPostsCount"`
	AuthorsInserted    int       `json:"authorsInserted"`
	AuthorsUpdated     int       `json:"authorsUpdated"`
	AggregatedInserted int       `json:"aggregatedInserted"`
	AggregatedUpdated  int       `json:"aggregatedUpdated"`
}

// Duration returns how long the run took
func (s RefreshSummary) Duration() time.Duration {
	if s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}
