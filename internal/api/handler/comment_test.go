// internal/api/handler/comment_test.go
package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"commentbox/internal/domain"
	"commentbox/internal/util"
)

// MockCommentService is a mock implementation of service.CommentService.
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListByOrigin(ctx context.Context, originHost string) ([]domain.Comment, error) {
	args := m.Called(ctx, originHost)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *MockCommentService) Create(ctx context.Context, originHost, author, body string) (*domain.Comment, error) {
	args := m.Called(ctx, originHost, author, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func postJSON(t *testing.T, h http.Handler, path, origin, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if origin != "" {
		r.Header.Set("Origin", origin)
	}
	WithRequestContext(h).ServeHTTP(rec, r)
	return rec
}

func TestCommentList_ScopedToResolvedOrigin(t *testing.T) {
	svc := new(MockCommentService)
	comments := []domain.Comment{*domain.NewComment("jane", "first!", uuid.New())}
	svc.On("ListByOrigin", mock.Anything, "example.com").Return(comments, nil)

	h := NewCommentHandler(svc)
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/comment", nil)
	r.Header.Set("Origin", "https://example.com")
	WithRequestContext(Define(h.List)).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Comments retrieved"`)
	assert.Contains(t, rec.Body.String(), `"author":"jane"`)
	svc.AssertExpectations(t)
}

func TestCommentList_UnresolvedOriginQueriesEmptyHost(t *testing.T) {
	svc := new(MockCommentService)
	svc.On("ListByOrigin", mock.Anything, "").Return([]domain.Comment{}, nil)

	h := NewCommentHandler(svc)
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/comment", nil)
	WithRequestContext(Define(h.List)).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":false,"message":"Comments retrieved","data":[]}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestCommentCreate_SanitizesBeforeService(t *testing.T) {
	svc := new(MockCommentService)
	created := domain.NewComment("jane doe", "nice post", uuid.New())
	created.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.On("Create", mock.Anything, "example.com", "jane doe", "nice post").Return(created, nil)

	h := NewCommentHandler(svc)
	rec := postJSON(t, Define(h.Create), "/api/comment", "https://example.com",
		`{"author":"  jane   doe  ","body":" nice   post "}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Comment added"`)
	svc.AssertExpectations(t)
}

func TestCommentCreate_UnregisteredOriginIs404(t *testing.T) {
	svc := new(MockCommentService)
	svc.On("Create", mock.Anything, "nope.example", "jane", "hi there").
		Return(nil, util.NewNotFoundError(`Domain not registered: "nope.example"`))

	h := NewCommentHandler(svc)
	rec := postJSON(t, Define(h.Create), "/api/comment", "https://nope.example",
		`{"author":"jane","body":"hi there"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":true,"message":"Domain not registered: \"nope.example\""}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestCommentCreate_InvalidBodyNeverReachesService(t *testing.T) {
	svc := new(MockCommentService)

	h := NewCommentHandler(svc)
	rec := postJSON(t, Define(h.Create), "/api/comment", "https://example.com",
		`{"author":123}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Invalid input"`)
	assert.Contains(t, rec.Body.String(), "must be a string")
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
