// internal/widget/widget.go

// Package widget implements the comment-box client: paginated comment state,
// the {{placeholder}} template renderer and the HTTP client that talks to the
// comment API. The embedded browser script mirrors this behavior; keeping the
// state machine here makes it testable and lets the server pre-render embeds.
package widget

import (
	"context"
	"sort"
	"time"
)

// DefaultPerPage is the page size used when the embed declares none.
const DefaultPerPage = 10

// Comment is the widget's view of an API comment.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Config mirrors the embed tag attributes: perpage and the ascending flag.
type Config struct {
	PerPage   int
	Ascending bool
}

// State is the per-embed widget state: the fetched comments, the pagination
// cursor and the last fetch/submit errors. It lives for the lifetime of one
// embedded component and is mutated by fetch/submit/pagination actions.
type State struct {
	comments  []Comment
	pageIndex int
	perPage   int
	ascending bool

	FetchError      string
	AddCommentError string

	fetchSeq uint64
}

// NewState creates widget state from the embed configuration. Comments are
// shown most-recent-first unless ascending is set.
func NewState(cfg Config) *State {
	perPage := cfg.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return &State{
		perPage:   perPage,
		ascending: cfg.Ascending,
	}
}

// SetComments replaces the comment list, resetting the page cursor when it
// falls past the new last page.
func (s *State) SetComments(comments []Comment) {
	s.comments = comments
	if s.pageIndex >= s.TotalPages() {
		s.pageIndex = 0
	}
}

// Comments returns the full unsorted comment list.
func (s *State) Comments() []Comment {
	return s.comments
}

// DisplayedComments returns the sorted slice of comments visible on the
// current page.
func (s *State) DisplayedComments() []Comment {
	displayed := make([]Comment, len(s.comments))
	copy(displayed, s.comments)
	sort.SliceStable(displayed, func(i, j int) bool {
		if s.ascending {
			return displayed[i].CreatedAt.Before(displayed[j].CreatedAt)
		}
		return displayed[i].CreatedAt.After(displayed[j].CreatedAt)
	})

	start := s.perPage * s.pageIndex
	if start >= len(displayed) {
		return nil
	}
	end := start + s.perPage
	if end > len(displayed) {
		end = len(displayed)
	}
	return displayed[start:end]
}

// Page is the 1-based page number.
func (s *State) Page() int {
	return s.pageIndex + 1
}

// TotalPages is the number of pages at the current page size.
func (s *State) TotalPages() int {
	return (len(s.comments) + s.perPage - 1) / s.perPage
}

// HasPrev reports whether a previous page exists.
func (s *State) HasPrev() bool {
	return s.Page() > 1
}

// HasNext reports whether a next page exists.
func (s *State) HasNext() bool {
	return s.Page() < s.TotalPages()
}

// Prev moves one page back, clamping at the first page.
func (s *State) Prev() {
	if s.HasPrev() {
		s.pageIndex--
	}
}

// Next moves one page forward, clamping at the last page.
func (s *State) Next() {
	if s.HasNext() {
		s.pageIndex++
	}
}

// Fetch loads comments through the client. An empty result is reported as
// the fetch error "No comments found": a valid domain with no comments yet is
// indistinguishable from a wrong-origin request here, which is the inherited
// product behavior. Overlapping fetches resolve last-write-wins: a fetch
// superseded by a newer one discards its result instead of overwriting
// fresher state.
func (s *State) Fetch(ctx context.Context, client *Client) {
	s.fetchSeq++
	seq := s.fetchSeq

	comments, err := client.FetchComments(ctx)

	if seq != s.fetchSeq {
		return
	}

	if err != nil {
		s.FetchError = err.Error()
		return
	}
	if len(comments) == 0 {
		s.FetchError = "No comments found"
		return
	}
	s.FetchError = ""
	s.SetComments(comments)
}

// Submit posts a new comment through the client and appends it to the local
// state on success.
func (s *State) Submit(ctx context.Context, client *Client, author, body string) {
	comment, err := client.SubmitComment(ctx, author, body)
	if err != nil {
		s.AddCommentError = err.Error()
		return
	}
	s.AddCommentError = ""
	s.comments = append(s.comments, *comment)
}
