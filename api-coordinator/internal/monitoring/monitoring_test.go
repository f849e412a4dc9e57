package monitoring

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gotrip/api-coordinator/internal/health"
	"gotrip/api-coordinator/internal/recommend"
	"gotrip/pkg/recommender"
	"gotrip/pkg/types"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitoringReportsEngineCounters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := recommender.New(recommender.DefaultCatalog(), recommender.WithPolicy(recommender.PolicySampledTopK), recommender.WithSeed(3))
	rec := recommend.NewService(engine)
	hs := health.NewService(func() int { return rec.Catalog().Len() }, nil)

	_, err := rec.Recommend(context.Background(), types.ProfileRequest{
		Preferences: []string{"spa"}, Budget: "Alto", Companion: "pareja",
	})
	require.NoError(t, err)
	_, err = rec.Recommend(context.Background(), types.ProfileRequest{Budget: "Alto", Companion: "pareja"})
	require.ErrorIs(t, err, recommender.ErrInvalidProfile)

	r := gin.New()
	NewHandler(NewService(rec, hs, engine.TopK())).RegisterRoutes(r.Group("/api"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/monitoring", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var st MonitoringStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.Equal(t, "sampled", st.Engine.Policy)
	assert.Equal(t, 5, st.Engine.TopK)
	assert.Equal(t, 56, st.Engine.CatalogSize)
	assert.Equal(t, int64(2), st.Engine.Counters.Requests)
	assert.Equal(t, int64(1), st.Engine.Counters.Recommendations)
	assert.Equal(t, int64(1), st.Engine.Counters.InvalidProfiles)
	assert.Equal(t, "ok", st.Dependencies["catalog"].Status)
	assert.Positive(t, st.System.TotalCPUCores)
}
