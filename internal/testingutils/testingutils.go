package testingutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/foodfight/backend/internal/router"
	"github.com/pageza/foodfight/backend/internal/service"
)

// SetupTestRouter creates the application router over catalogService for testing
func SetupTestRouter(catalogService service.ICatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return router.SetupRouter(catalogService, nil, nil, zap.NewNop())
}

// PerformRequest performs an HTTP request for testing
func PerformRequest(handler http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// AssertResponse asserts the status code and decodes the JSON body into out
func AssertResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, out interface{}) {
	t.Helper()
	assert.Equal(t, expectedStatus, w.Code)
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
}
