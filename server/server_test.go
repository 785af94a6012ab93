package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfonsotech/philosophers-alliance/server/mocks"
)

func testConfig() *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return ":8080", 30 * time.Second
		},
	}
}

func TestServer_New(t *testing.T) {
	srv := New(testConfig(), Deps{Catalog: &mocks.CatalogMock{}, Refresher: &mocks.RefresherMock{}}, Params{Version: "1.0.0"})
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.params.Version)
	assert.False(t, srv.params.Debug)
	assert.NotNil(t, srv.Catalog)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
		},
	}
	srv := New(cfg, Deps{Catalog: &mocks.CatalogMock{}, Refresher: &mocks.RefresherMock{}}, Params{Version: "1.0.0", Debug: true})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// wait for server to start
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		return err == nil
	}, time.Second, 10*time.Millisecond)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
	assert.Equal(t, "philosophers-alliance", resp.Header.Get("App-Name"))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_statusHandler(t *testing.T) {
	tbl := []struct {
		name    string
		primary bool
		storage string
	}{
		{name: "primary available", primary: true, storage: "primary"},
		{name: "fallback in use", primary: false, storage: "fallback"},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			deps := Deps{
				Refresher: &mocks.RefresherMock{RunningFunc: func() bool { return true }},
				Storage:   &mocks.StorageProbeMock{ProbeFunc: func(ctx context.Context) bool { return tt.primary }},
			}
			srv := New(testConfig(), deps, Params{Version: "1.2.3"})

			req := httptest.NewRequest("GET", "/api/v1/status", http.NoBody)
			w := httptest.NewRecorder()
			srv.router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "ok", resp["status"])
			assert.Equal(t, "1.2.3", resp["version"])
			assert.Equal(t, tt.storage, resp["storage"])
			assert.Equal(t, true, resp["refreshing"])
			assert.NotEmpty(t, resp["time"])
		})
	}
}

func TestRenderError(t *testing.T) {
	w := httptest.NewRecorder()
	RenderError(w, httptest.NewRequest("GET", "/", http.NoBody), nil, http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"error":"unknown error"}`, w.Body.String())
}
