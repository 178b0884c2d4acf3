package models

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/musegrid/server/musegrid/catalog"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	featured   []catalog.Model
	trending   []catalog.Model
	model      *catalog.Model
	similar    []catalog.SimilarModel
	err        error
	lastWindow string
}

func (f *fakeCatalog) Featured(_ context.Context, _ int) ([]catalog.Model, error) {
	return f.featured, f.err
}

func (f *fakeCatalog) Trending(_ context.Context, window string, _ int) ([]catalog.Model, error) {
	f.lastWindow = window
	return f.trending, f.err
}

func (f *fakeCatalog) GetByID(_ context.Context, _ int64) (*catalog.Model, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.model, nil
}

func (f *fakeCatalog) Similar(_ context.Context, _ int64, _ int) ([]catalog.SimilarModel, error) {
	return f.similar, f.err
}

func setupRouter(cat Catalog) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router.Group("/"), cat)

	return router
}

func get(router *gin.Engine, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestFeaturedModels(t *testing.T) {
	cat := &fakeCatalog{featured: []catalog.Model{{ID: 1, Name: "aurora", Featured: true}}}
	router := setupRouter(cat)

	w := get(router, "/models/featured")

	require.Equal(t, http.StatusOK, w.Code)

	var resp ModelsListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Models, 1)
	assert.Equal(t, "aurora", resp.Models[0].Name)
}

func TestTrendingModels_WindowMapping(t *testing.T) {
	cat := &fakeCatalog{}
	router := setupRouter(cat)

	w := get(router, "/models/trending?window=7d")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7 days", cat.lastWindow)

	// default window
	get(router, "/models/trending")
	assert.Equal(t, "24 hours", cat.lastWindow)
}

func TestTrendingModels_RejectsUnknownWindow(t *testing.T) {
	router := setupRouter(&fakeCatalog{})

	w := get(router, "/models/trending?window=forever")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetModel_NotFound(t *testing.T) {
	router := setupRouter(&fakeCatalog{err: pgx.ErrNoRows})

	w := get(router, "/models/99")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetModel_InvalidID(t *testing.T) {
	router := setupRouter(&fakeCatalog{})

	w := get(router, "/models/abc")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSimilarModels(t *testing.T) {
	cat := &fakeCatalog{similar: []catalog.SimilarModel{
		{Model: catalog.Model{ID: 2, Name: "twin"}, Distance: 0.12},
	}}
	router := setupRouter(cat)

	w := get(router, "/models/1/similar")

	require.Equal(t, http.StatusOK, w.Code)

	var resp SimilarListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Models, 1)
	assert.Equal(t, "twin", resp.Models[0].Name)
	assert.InDelta(t, 0.12, resp.Models[0].Distance, 1e-9)
}
