package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/houseworklog/houseworklog/pkg/application"
	"github.com/houseworklog/houseworklog/pkg/eventbus"
)

type pingController struct{}

func (c *pingController) Key() string { return "/ping" }

func (c *pingController) Register(r *mux.Router) {
	r.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
}

func newTestServer() *HTTPServer {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	app.RegisterMiddleware(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Chain", "on")
			next.ServeHTTP(w, r)
		})
	})
	app.RegisterControllers(&pingController{})

	notFound := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "404 page not found", http.StatusNotFound)
	})
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "405 method not allowed", http.StatusMethodNotAllowed)
	})
	return NewHTTPServer(app, notFound, methodNotAllowed)
}

func TestHTTPServer_RoutesRegisteredControllers(t *testing.T) {
	router := newTestServer().Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "on", rec.Header().Get("X-Chain"))
}

func TestHTTPServer_FallbackHandlersRunTheMiddlewareChain(t *testing.T) {
	router := newTestServer().Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "on", rec.Header().Get("X-Chain"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ping", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, "on", rec.Header().Get("X-Chain"))
}
