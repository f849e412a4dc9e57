package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func size(n int) func() int { return func() int { return n } }

func serve(t *testing.T, svc Service) (int, Status) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	var st Status
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	return w.Code, st
}

func TestHealthWithoutDependencies(t *testing.T) {
	code, st := serve(t, NewService(size(56), nil))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, StatusOK, st.Status)
	assert.Equal(t, 56, st.Catalog)
	assert.Equal(t, StatusOK, st.Services["catalog"].Status)
}

func TestHealthDegradedWhenDependencyDown(t *testing.T) {
	checks := map[string]Pinger{
		"mongodb": pingFunc(func(context.Context) error { return nil }),
		"redis":   pingFunc(func(context.Context) error { return errors.New("connection refused") }),
	}
	code, st := serve(t, NewService(size(3), checks))

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, StatusDegraded, st.Status)
	assert.Equal(t, StatusOK, st.Services["mongodb"].Status)
	assert.Equal(t, StatusDown, st.Services["redis"].Status)
	assert.Equal(t, "connection refused", st.Services["redis"].Error)
}

func TestHealthEmptyCatalog(t *testing.T) {
	code, st := serve(t, NewService(size(0), nil))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, StatusDown, st.Services["catalog"].Status)
}
