// internal/api/handler/comment.go
package handler

import (
	"context"
	"net/http"

	"commentbox/internal/api/types"
	"commentbox/internal/service"
	"commentbox/internal/validate"
)

// CommentHandler handles the /api/comment endpoints.
type CommentHandler struct {
	service service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(svc service.CommentService) *CommentHandler {
	return &CommentHandler{service: svc}
}

// List returns the comments scoped to the caller's resolved origin.
// GET /api/comment
func (h *CommentHandler) List(ctx context.Context, req *RequestContext) (*types.Result, error) {
	comments, err := h.service.ListByOrigin(ctx, req.Origin.Host)
	if err != nil {
		return nil, err
	}
	return types.JSON(0, "Comments retrieved", comments), nil
}

// Create posts a new comment against the caller's origin domain.
// POST /api/comment
func (h *CommentHandler) Create(ctx context.Context, req *RequestContext) (*types.Result, error) {
	err := validate.Body(req.Body, []validate.Field{
		{
			Name:           "author",
			Type:           validate.TypeString,
			Trim:           true,
			CollapseSpaces: true,
			Len:            []int{1},
		},
		{
			Name:           "body",
			Type:           validate.TypeString,
			Trim:           true,
			CollapseSpaces: true,
			Len:            []int{1},
		},
	})
	if err != nil {
		return nil, err
	}

	author, _ := req.Body["author"].(string)
	body, _ := req.Body["body"].(string)

	comment, err := h.service.Create(ctx, req.Origin.Host, author, body)
	if err != nil {
		return nil, err
	}

	return types.JSON(http.StatusCreated, "Comment added", comment), nil
}
