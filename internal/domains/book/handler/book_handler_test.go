package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"safaia-backend/internal/domains/book/model"
	"safaia-backend/internal/domains/book/query"
	"safaia-backend/internal/domains/book/repository"
	bookService "safaia-backend/internal/domains/book/service"
	"safaia-backend/internal/shared/middleware"
	"safaia-backend/pkg/cache"
	"safaia-backend/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testCookieName = "safaia_admin_session"

var testCategories = []string{"Art", "Fashion", "Photography", "Folk Art", "Culinary History"}

type testEnv struct {
	router  *gin.Engine
	session *session.Manager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewFileRepository(t.TempDir())
	engine := query.New(testCategories, 9)
	svc := bookService.NewService(repo, engine, cache.NewNoop(), testCategories)
	h := NewHandler(svc)

	manager := session.NewManager("test-secret", time.Hour)

	router := gin.New()
	v1 := router.Group("/api/v1")

	books := v1.Group("/books")
	books.GET("", h.ListCatalog)
	books.GET("/featured", h.Featured)
	books.GET("/:slug", h.GetBySlug)
	v1.GET("/categories", h.Categories)

	admin := v1.Group("/admin")
	admin.Use(middleware.SessionAuth(manager, testCookieName))
	admin.GET("/books", h.ListAll)
	admin.POST("/books", h.Create)
	admin.PUT("/books/:slug", h.Update)
	admin.DELETE("/books/:slug", h.Delete)
	admin.GET("/export/csv", h.ExportCSV)
	admin.GET("/export/json", h.ExportJSON)

	return &testEnv{router: router, session: manager}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		token, err := e.session.Generate()
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func validBook(id int, slug string) map[string]interface{} {
	return map[string]interface{}{
		"id":       id,
		"slug":     slug,
		"title":    "Tytuł " + slug,
		"category": "Art",
		"author":   map[string]string{"name": "Anna Kowalska"},
	}
}

func TestAdminRoutesRequireSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/admin/books", validBook(1, "bez-sesji"), false)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRejectExpiredSession(t *testing.T) {
	env := newTestEnv(t)

	expired := session.NewManager("test-secret", -time.Minute)
	token, err := expired.Generate()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/books", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateBook(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/admin/books", validBook(1, "nowa-ksiazka"), true)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool       `json:"success"`
		Data    model.Book `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "nowa-ksiazka", resp.Data.Slug)
}

func TestCreateDuplicateSlugConflicts(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/admin/books", validBook(1, "moda"), true)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/admin/books", validBook(2, "moda"), true)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateInvalidCategory(t *testing.T) {
	env := newTestEnv(t)

	book := validBook(1, "zly-gatunek")
	book["category"] = "Science Fiction"

	w := env.do(t, http.MethodPost, "/api/v1/admin/books", book, true)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	token, err := env.session.Generate()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/books", bytes.NewReader([]byte("{broken")))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBySlugNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/books/nie-ma", nil, false)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePartial(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/admin/books", validBook(1, "do-zmiany"), true)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPut, "/api/v1/admin/books/do-zmiany",
		map[string]interface{}{"featured": true}, true)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.Book `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Data.Featured)
	require.Equal(t, "Tytuł do-zmiany", resp.Data.Title)
}

func TestUpdateMissingBook(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPut, "/api/v1/admin/books/nie-ma",
		map[string]interface{}{"featured": true}, true)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBook(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/admin/books", validBook(1, "do-usuniecia"), true)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodDelete, "/api/v1/admin/books/do-usuniecia", nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/books/do-usuniecia", nil, false)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCatalogPaginates(t *testing.T) {
	env := newTestEnv(t)

	for i := 1; i <= 12; i++ {
		w := env.do(t, http.MethodPost, "/api/v1/admin/books",
			validBook(i, fmt.Sprintf("ksiazka-%02d", i)), true)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.do(t, http.MethodGet, "/api/v1/books?sort=title&page=2", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []model.Book `json:"data"`
		Meta struct {
			Page       int `json:"page"`
			Total      int `json:"total"`
			TotalPages int `json:"total_pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)
	require.Equal(t, 2, resp.Meta.Page)
	require.Equal(t, 12, resp.Meta.Total)
	require.Equal(t, 2, resp.Meta.TotalPages)
}

func TestCategoriesEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/categories", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, append([]string{"All"}, testCategories...), resp.Data)
}

func TestExportCSVHeaders(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/admin/books", validBook(1, "eksport"), true)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/admin/export/csv", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), "safaia-books-")
	require.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
	require.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte{0xEF, 0xBB, 0xBF}))
}
