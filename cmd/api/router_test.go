package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-management/internal/config"
	"book-management/pkg/container"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestServer(t *testing.T) (*gin.Engine, *container.Container) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	cfg := &config.Config{
		App: config.AppConfig{Name: "Book Management API", Environment: "test", Port: "0", DefaultLocale: "en"},
		Database: config.DatabaseConfig{
			Driver:     config.DriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "api.db"),
		},
	}

	c, err := container.NewContainer(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)
	require.NoError(t, c.DB.Migrate(ctx))

	return SetupRouter(c), c
}

func call(t *testing.T, r *gin.Engine, method, path, body string, headers ...string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func registerAuthor(t *testing.T, r *gin.Engine, name string) string {
	t.Helper()
	status, env := call(t, r, http.MethodPost, "/api/authors", `{"name":"`+name+`","dateOfBirth":"1867-02-09"}`)
	require.Equal(t, http.StatusCreated, status)

	var author struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &author))
	return author.ID
}

type bookJSON struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Price     int      `json:"price"`
	AuthorIDs []string `json:"authorIds"`
	Status    string   `json:"status"`
}

func Test_API_BookLifecycle(t *testing.T) {
	r, _ := newTestServer(t)
	soseki := registerAuthor(t, r, "Natsume Soseki")
	ogai := registerAuthor(t, r, "Mori Ogai")

	// register
	status, env := call(t, r, http.MethodPost, "/api/books",
		`{"title":"Kokoro","price":1200,"authorIds":["`+soseki+`"],"status":"UNPUBLISHED"}`)
	require.Equal(t, http.StatusCreated, status)
	var created bookJSON
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, []string{soseki}, created.AuthorIDs)

	// publish and add a co-author
	status, env = call(t, r, http.MethodPut, "/api/books/"+created.ID,
		`{"title":"Kokoro","price":1300,"authorIds":["`+ogai+`","`+soseki+`"],"status":"PUBLISHED"}`)
	require.Equal(t, http.StatusOK, status)
	var updated bookJSON
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, []string{ogai, soseki}, updated.AuthorIDs)

	// list by author
	status, env = call(t, r, http.MethodGet, "/api/books/author/"+ogai, "")
	require.Equal(t, http.StatusOK, status)
	var byAuthor []bookJSON
	require.NoError(t, json.Unmarshal(env.Data, &byAuthor))
	require.Len(t, byAuthor, 1)
	assert.Equal(t, updated, byAuthor[0])

	// downgrade is rejected and nothing changes
	status, env = call(t, r, http.MethodPut, "/api/books/"+created.ID,
		`{"title":"Kokoro","price":1300,"authorIds":["`+soseki+`"],"status":"UNPUBLISHED"}`,
		"Accept-Language", "ja")
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BOOK_STATUS_DOWNGRADE", env.Error.Code)

	status, env = call(t, r, http.MethodGet, "/api/books", "")
	require.Equal(t, http.StatusOK, status)
	var all []bookJSON
	require.NoError(t, json.Unmarshal(env.Data, &all))
	require.Len(t, all, 1)
	assert.Equal(t, updated, all[0])
}

func Test_API_RegisterBook_UnknownAuthor(t *testing.T) {
	r, _ := newTestServer(t)
	known := registerAuthor(t, r, "Known")

	status, env := call(t, r, http.MethodPost, "/api/books",
		`{"title":"T","price":100,"authorIds":["`+known+`","3f2504e0-4f89-11d3-9a0c-0305e82c3301"],"status":"PUBLISHED"}`)

	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BOOK_AUTHORS_MISSING", env.Error.Code)

	_, env = call(t, r, http.MethodGet, "/api/books", "")
	assert.JSONEq(t, `[]`, string(env.Data))
}

func Test_API_RegisterBook_NonCanonicalAuthorID(t *testing.T) {
	r, _ := newTestServer(t)
	author := registerAuthor(t, r, "Braced")

	status, env := call(t, r, http.MethodPost, "/api/books",
		`{"title":"T","price":100,"authorIds":["{`+author+`}"],"status":"PUBLISHED"}`)

	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BOOK_INVALID_AUTHOR_ID", env.Error.Code)
}

func Test_API_UpdateBook_MalformedID(t *testing.T) {
	r, _ := newTestServer(t)
	author := registerAuthor(t, r, "A")

	status, env := call(t, r, http.MethodPut, "/api/books/123",
		`{"title":"T","price":100,"authorIds":["`+author+`"],"status":"PUBLISHED"}`)

	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BOOK_NOT_FOUND", env.Error.Code)
}

func Test_API_UpdateAuthor(t *testing.T) {
	r, _ := newTestServer(t)
	id := registerAuthor(t, r, "Before")

	status, env := call(t, r, http.MethodPut, "/api/authors/"+id, `{"name":"After","dateOfBirth":"1870-01-01"}`)

	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":"`+id+`","name":"After","dateOfBirth":"1870-01-01"}`, string(env.Data))
}

func Test_API_RouteErrors(t *testing.T) {
	r, _ := newTestServer(t)

	status, env := call(t, r, http.MethodGet, "/api/nothing", "")
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ROUTE_NOT_FOUND", env.Error.Code)

	status, env = call(t, r, http.MethodDelete, "/api/books", "")
	assert.Equal(t, http.StatusMethodNotAllowed, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "METHOD_NOT_ALLOWED", env.Error.Code)
}

func Test_API_Health(t *testing.T) {
	r, c := newTestServer(t)

	status, env := call(t, r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	require.NoError(t, c.DB.Close())

	status, env = call(t, r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SERVICE_UNAVAILABLE", env.Error.Code)
}
