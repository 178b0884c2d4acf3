package recommendations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/musegrid/server/musegrid/recommend"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	lastQuery recommend.Query
	response  recommend.Response
}

func (f *fakeProvider) Personalized(_ context.Context, query recommend.Query) recommend.Response {
	f.lastQuery = query
	return f.response
}

func setupRouter(provider Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/recommendations", GetRecommendationsHandler(provider))

	return router
}

func get(router *gin.Engine, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestGetRecommendations_ParsesQuery(t *testing.T) {
	provider := &fakeProvider{response: recommend.Response{
		Recommendations: []recommend.Recommendation{},
		Source:          recommend.SourcePersonalized,
	}}
	router := setupRouter(provider)

	w := get(router, "/recommendations?userId=7&limit=5&excludeIds=1,2,3&sessionDuration=120&currentCategory=portrait")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), provider.lastQuery.UserID)
	assert.Equal(t, 5, provider.lastQuery.Limit)
	assert.Equal(t, []int64{1, 2, 3}, provider.lastQuery.ExcludeIDs)
	assert.Equal(t, 120, provider.lastQuery.SessionDuration)
	assert.Equal(t, "portrait", provider.lastQuery.CurrentCategory)

	var resp recommend.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, recommend.SourcePersonalized, resp.Source)
}

func TestGetRecommendations_MissingUserID(t *testing.T) {
	router := setupRouter(&fakeProvider{})

	w := get(router, "/recommendations")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecommendations_RejectsBadParams(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"non-numeric user id", "/recommendations?userId=abc"},
		{"negative user id", "/recommendations?userId=-1"},
		{"non-numeric limit", "/recommendations?userId=7&limit=abc"},
		{"zero limit", "/recommendations?userId=7&limit=0"},
		{"bad exclude ids", "/recommendations?userId=7&excludeIds=1,x,3"},
		{"negative session duration", "/recommendations?userId=7&sessionDuration=-5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := setupRouter(&fakeProvider{})
			w := get(router, tc.url)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
