package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/pageza/foodfight/backend/config"
	"github.com/pageza/foodfight/backend/internal/dataset"
	"github.com/pageza/foodfight/backend/internal/model"
	"github.com/pageza/foodfight/backend/internal/service"
)

func testServer() *Server {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		ServerHost: "127.0.0.1",
		ServerPort: "0",
	}
	snap := &dataset.Snapshot{
		Recipes: model.NormalizeAll([]model.RawRecipe{{ID: "r1", Name: "Miso Soup", Category: "Soup"}}),
		Source:  "file:test.json",
	}
	svc := service.NewCatalogService(snap, nil, nil, 0, zap.NewNop())
	return New(cfg, svc, nil, zap.NewNop())
}

func TestNew(t *testing.T) {
	server := testServer()
	require.NotNil(t, server)
	assert.Equal(t, "127.0.0.1:0", server.http.Addr)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	server.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	server := testServer()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, ln) }()

	url := fmt.Sprintf("http://%s/api/health", ln.Addr())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	http.DefaultClient.CloseIdleConnections()
}
