package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/just-nibble/codehost/internal/http/dtos"
	"github.com/just-nibble/codehost/internal/testdb"
	"github.com/just-nibble/codehost/internal/usecases"
	"github.com/just-nibble/codehost/pkg/response"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := testdb.NewStore(t)
	log := zerolog.Nop()
	return NewRouter(Dependencies{
		Users:          usecases.NewUserUsecase(store, log),
		Repositories:   usecases.NewRepositoryUsecase(store, log),
		Commits:        usecases.NewCommitUsecase(store, log),
		Issues:         usecases.NewIssueUsecase(store, log),
		Stars:          usecases.NewStarUsecase(store, log),
		Search:         usecases.NewSearchUsecase(store, log),
		DB:             store,
		Log:            log,
		AllowedOrigins: []string{"*"},
	})
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createUser(t *testing.T, h http.Handler, username string) dtos.User {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/users", map[string]any{"username": username, "email": username + "@x.com"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[dtos.User](t, rec)
}

func createRepo(t *testing.T, h http.Handler, ownerID uint, name string) dtos.Repository {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/repositories", map[string]any{"owner_id": ownerID, "name": name})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[dtos.Repository](t, rec)
}

func TestCommitAndStarFlow(t *testing.T) {
	h := newTestRouter(t)
	alice := createUser(t, h, "alice")
	repo := createRepo(t, h, alice.ID, "proj")
	assert.True(t, repo.IsPublic)
	assert.Zero(t, repo.StarsCount)
	require.NotNil(t, repo.Owner)
	assert.Equal(t, "alice", repo.Owner.Username)

	rec := do(t, h, http.MethodPost, fmt.Sprintf("/repositories/%d/commits", repo.ID), map[string]any{"author_id": alice.ID, "message": "init"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	commit := decode[dtos.Commit](t, rec)
	assert.Len(t, commit.Hash, 40)
	assert.Equal(t, "alice", commit.Author.Username)

	starPath := fmt.Sprintf("/users/%d/stars/%d", alice.ID, repo.ID)
	rec = do(t, h, http.MethodPost, starPath, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	star := decode[dtos.StarResponse](t, rec)
	assert.Equal(t, "Repository starred successfully", star.Message)
	assert.NotZero(t, star.StarID)

	rec = do(t, h, http.MethodPost, starPath, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, response.ErrorBody{Kind: "conflict", Message: "repository already starred"}, decode[response.ErrorBody](t, rec))

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/repositories/%d", repo.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode[dtos.Repository](t, rec).StarsCount)

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/repositories/%d/stars/count", repo.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dtos.StarsCount{RepositoryID: repo.ID, StarsCount: 1}, decode[dtos.StarsCount](t, rec))

	rec = do(t, h, http.MethodGet, starPath+"/check", nil)
	assert.True(t, decode[dtos.StarCheck](t, rec).IsStarred)

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/users/%d/stars", alice.ID), nil)
	starred := decode[dtos.RepositoryList](t, rec)
	assert.EqualValues(t, 1, starred.Total)

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, starPath, nil).Code)
	rec = do(t, h, http.MethodDelete, starPath, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decode[response.ErrorBody](t, rec).Kind)
}

func TestUserErrors(t *testing.T) {
	h := newTestRouter(t)
	createUser(t, h, "alice")

	rec := do(t, h, http.MethodPost, "/users", map[string]any{"username": "alice", "email": "other@x.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "conflict", decode[response.ErrorBody](t, rec).Kind)

	rec = do(t, h, http.MethodGet, "/users/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "user 99 not found", decode[response.ErrorBody](t, rec).Message)

	rec = do(t, h, http.MethodGet, "/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid", decode[response.ErrorBody](t, rec).Kind)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("{"))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", decode[response.ErrorBody](t, rec).Message)

	rec = do(t, h, http.MethodGet, "/users/username/alice", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateUserClearsBio(t *testing.T) {
	h := newTestRouter(t)
	rec := do(t, h, http.MethodPost, "/users", map[string]any{"username": "alice", "email": "a@x.com", "bio": "hi"})
	require.Equal(t, http.StatusCreated, rec.Code)
	alice := decode[dtos.User](t, rec)
	require.NotNil(t, alice.Bio)

	rec = do(t, h, http.MethodPut, fmt.Sprintf("/users/%d", alice.ID), map[string]any{"bio": ""})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[dtos.User](t, rec)
	assert.Nil(t, updated.Bio)
	assert.Equal(t, "alice", updated.Username)
}

func TestCommitPagination(t *testing.T) {
	h := newTestRouter(t)
	alice := createUser(t, h, "alice")
	repo := createRepo(t, h, alice.ID, "proj")
	for i := range 5 {
		rec := do(t, h, http.MethodPost, fmt.Sprintf("/repositories/%d/commits", repo.ID), map[string]any{"author_id": alice.ID, "message": fmt.Sprintf("c%d", i)})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := do(t, h, http.MethodGet, fmt.Sprintf("/repositories/%d/commits?skip=0&limit=1", repo.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[dtos.CommitList](t, rec)
	assert.Len(t, list.Commits, 1)
	assert.EqualValues(t, 5, list.Total)
	assert.Equal(t, "c4", list.Commits[0].Message)

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/repositories/%d/commits?limit=x", repo.ID), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRepositoryListing(t *testing.T) {
	h := newTestRouter(t)
	alice := createUser(t, h, "alice")
	createRepo(t, h, alice.ID, "public")
	rec := do(t, h, http.MethodPost, "/repositories", map[string]any{"owner_id": alice.ID, "name": "secret", "is_public": false})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodGet, "/repositories", nil)
	assert.EqualValues(t, 1, decode[dtos.RepositoryList](t, rec).Total)

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/repositories?owner_id=%d", alice.ID), nil)
	assert.EqualValues(t, 2, decode[dtos.RepositoryList](t, rec).Total)

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/users/%d/repositories", alice.ID), nil)
	assert.EqualValues(t, 2, decode[dtos.RepositoryList](t, rec).Total)

	rec = do(t, h, http.MethodGet, "/repositories?owner_id=42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIssueLifecycle(t *testing.T) {
	h := newTestRouter(t)
	alice := createUser(t, h, "alice")
	repo := createRepo(t, h, alice.ID, "proj")

	rec := do(t, h, http.MethodPost, fmt.Sprintf("/repositories/%d/issues", repo.ID), map[string]any{"creator_id": alice.ID, "title": "bug"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	issue := decode[dtos.Issue](t, rec)
	assert.Equal(t, "open", issue.Status)

	rec = do(t, h, http.MethodPut, fmt.Sprintf("/issues/%d", issue.ID), map[string]any{"status": "closed"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "closed", decode[dtos.Issue](t, rec).Status)

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/repositories/%d/issues?status=open", repo.ID), nil)
	assert.EqualValues(t, 0, decode[dtos.IssueList](t, rec).Total)

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/repositories/%d/issues?status=stale", repo.ID), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPut, fmt.Sprintf("/issues/%d", issue.ID), map[string]any{"status": "stale"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteUserCascades(t *testing.T) {
	h := newTestRouter(t)
	alice := createUser(t, h, "alice")
	repo := createRepo(t, h, alice.ID, "proj")

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, fmt.Sprintf("/users/%d", alice.ID), nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, fmt.Sprintf("/repositories/%d", repo.ID), nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, fmt.Sprintf("/users/%d", alice.ID), nil).Code)
}

func TestSearch(t *testing.T) {
	h := newTestRouter(t)
	alice := createUser(t, h, "alice")
	createRepo(t, h, alice.ID, "alice-tools")

	rec := do(t, h, http.MethodGet, "/search?q=ALICE", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[dtos.SearchResults](t, rec)
	assert.EqualValues(t, 1, res.UsersTotal)
	assert.EqualValues(t, 1, res.RepositoriesTotal)

	rec = do(t, h, http.MethodGet, "/search?q=alice&type=users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"repositories":[]`)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/search", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/search?q=a&type=issues", nil).Code)
}

func TestHealthMetricsAndDocs(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dtos.HealthResponse{Status: "ok", Database: "ok"}, decode[dtos.HealthResponse](t, rec))

	do(t, h, http.MethodGet, "/users/7", nil)
	rec = do(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `codehost_http_requests_total{method="GET",route="/users/{id}",status_class="4xx"} 1`)

	rec = do(t, h, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "codehost API")
}

func TestCORSPreflight(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/users", nil)
	req.Header.Set("Origin", "http://app.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, response.ErrorBody{Kind: "not_found", Message: "route not found"}, decode[response.ErrorBody](t, rec))

	rec = do(t, h, http.MethodPatch, "/users", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHTTPStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", httpStatusClass(204))
	assert.Equal(t, "4xx", httpStatusClass(404))
	assert.Equal(t, "5xx", httpStatusClass(503))
	assert.Equal(t, "1xx", httpStatusClass(0))
}
