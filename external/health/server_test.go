package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/foxseedlab/practicasbot/internal/metrics"
	"github.com/stretchr/testify/require"
)

func TestLiveness_GetRoot(t *testing.T) {
	s := NewLivenessServer(3000)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Bot Practicas Trabajo activo", rec.Body.String())
}

func TestLiveness_HeadRoot(t *testing.T) {
	s := NewLivenessServer(3000)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLiveness_NoOtherRoutes(t *testing.T) {
	s := NewLivenessServer(3000)

	for _, path := range []string{"/health", "/metrics"} {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestMetricsServer_ServesCounters(t *testing.T) {
	m := metrics.New()
	m.RecordCommand("ayuda")
	s := NewMetricsServer(9100, m.Handler())

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `practicasbot_commands_total{command="ayuda"} 1`)
}

func TestRun_StopsOnCancel(t *testing.T) {
	s := newServer("test", 0, http.NotFoundHandler())
	s.srv.Addr = "127.0.0.1:0"
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
