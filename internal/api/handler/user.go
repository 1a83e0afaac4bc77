// internal/api/handler/user.go
package handler

import (
	"context"
	"net/http"

	"commentbox/internal/api/types"
	"commentbox/internal/service"
	"commentbox/internal/validate"
)

// UserHandler handles the /api/user endpoints.
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// Register creates a new user together with their first domain.
// POST /api/user/register
func (h *UserHandler) Register(ctx context.Context, req *RequestContext) (*types.Result, error) {
	err := validate.Body(req.Body, []validate.Field{
		{
			Name:      "username",
			Type:      validate.TypeString,
			Normalize: true,
			Len:       []int{3, 50},
		},
		{
			Name: "password",
			Type: validate.TypeString,
			Checks: []validate.Check{{
				Validator: validate.IsStrongPassword,
				Message:   validate.StrongPasswordMessage,
			}},
		},
		{
			Name: "domain",
			Type: validate.TypeString,
			Checks: []validate.Check{{
				Validator: func(v string) bool {
					return v == "localhost:5500" || validate.IsURL(v)
				},
				Message: "Domain must be a URL",
			}},
		},
	})
	if err != nil {
		return nil, err
	}

	username, _ := req.Body["username"].(string)
	password, _ := req.Body["password"].(string)
	domainValue, _ := req.Body["domain"].(string)

	user, newDomain, err := h.service.Register(ctx, username, password, domainValue)
	if err != nil {
		return nil, err
	}

	// The user struct redacts its password hash during serialization.
	return types.JSON(http.StatusCreated, "New user and domain registered.", map[string]any{
		"user":   user,
		"domain": newDomain,
	}), nil
}
