// internal/api/handler/site.go
package handler

import (
	"context"
	"embed"
	"net/http"

	"commentbox/internal/api/types"
	"commentbox/internal/domain"
	"commentbox/internal/service"
	"commentbox/internal/widget"
)

//go:embed static
var staticFS embed.FS

// SiteHandler serves the embed demo page, the no-script comment preview and
// the static widget assets.
type SiteHandler struct {
	comments service.CommentService
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(comments service.CommentService) *SiteHandler {
	return &SiteHandler{comments: comments}
}

// Home serves the embed demo page. The page is emitted verbatim so the
// client-side {{field}} templates reach the browser intact.
// GET /
func (h *SiteHandler) Home(ctx context.Context, req *RequestContext) (*types.Result, error) {
	tpl, err := staticFS.ReadFile("static/demo.html")
	if err != nil {
		return nil, err
	}
	return types.HTML(0, string(tpl)), nil
}

// Preview renders the caller's comments server-side through the widget
// renderer, for embedders that want a no-script fallback.
// GET /embed/preview
func (h *SiteHandler) Preview(ctx context.Context, req *RequestContext) (*types.Result, error) {
	tpl, err := staticFS.ReadFile("static/preview.html")
	if err != nil {
		return nil, err
	}

	comments, err := h.comments.ListByOrigin(ctx, req.Origin.Host)
	if err != nil {
		return nil, err
	}

	state := widget.NewState(widget.Config{})
	state.SetComments(toWidgetComments(comments))
	return types.HTML(0, state.Render(string(tpl))), nil
}

// Script serves the embeddable widget script.
// GET /commentbox.js
func (h *SiteHandler) Script(w http.ResponseWriter, r *http.Request) {
	script, err := staticFS.ReadFile("static/commentbox.js")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	_, _ = w.Write(script)
}

func toWidgetComments(comments []domain.Comment) []widget.Comment {
	out := make([]widget.Comment, 0, len(comments))
	for _, c := range comments {
		out = append(out, widget.Comment{
			ID:        c.ID.String(),
			Author:    c.Author,
			Body:      c.Body,
			CreatedAt: c.CreatedAt,
		})
	}
	return out
}
