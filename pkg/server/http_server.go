package server

import (
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"

	"github.com/houseworklog/houseworklog/pkg/application"
)

// HTTPServer assembles the controllers and middleware registered on the
// application into a single gzip-wrapped handler.
type HTTPServer struct {
	controllers      []application.Controller
	middlewares      []mux.MiddlewareFunc
	notFound         http.Handler
	methodNotAllowed http.Handler
}

func NewHTTPServer(
	app application.Application,
	notFound, methodNotAllowed http.Handler,
) *HTTPServer {
	return &HTTPServer{
		controllers:      app.Controllers(),
		middlewares:      app.Middleware(),
		notFound:         notFound,
		methodNotAllowed: methodNotAllowed,
	}
}

func (s *HTTPServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.middlewares...)
	for _, controller := range s.controllers {
		controller.Register(r)
	}

	// mux skips the global middleware for its fallback handlers, so the
	// chain is applied to them by hand: 404s and 405s should be logged
	// like any other request.
	r.NotFoundHandler = s.wrap(s.notFound)
	r.MethodNotAllowedHandler = s.wrap(s.methodNotAllowed)
	return r
}

func (s *HTTPServer) wrap(h http.Handler) http.Handler {
	for i := len(s.middlewares) - 1; i >= 0; i-- {
		h = s.middlewares[i](h)
	}
	return h
}

func (s *HTTPServer) Handler() http.Handler {
	return gziphandler.GzipHandler(s.Router())
}

func (s *HTTPServer) Start(socketAddress string) error {
	return http.ListenAndServe(socketAddress, s.Handler())
}
