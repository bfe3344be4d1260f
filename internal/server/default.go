package server

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/houseworklog/houseworklog/pkg/application"
	"github.com/houseworklog/houseworklog/pkg/configuration"
	"github.com/houseworklog/houseworklog/pkg/constants"
	"github.com/houseworklog/houseworklog/pkg/middleware"
	"github.com/houseworklog/houseworklog/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Pool          *pgxpool.Pool
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application
	app.RegisterMiddleware(
		middleware.WithLogger(options.Logger, options.Configuration),
		middleware.Provide(constants.AppKey, app),
		middleware.Provide(constants.PoolKey, options.Pool),
		middleware.Cors(options.Configuration.Origin),
	)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "404 page not found", http.StatusNotFound)
	})
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "405 method not allowed", http.StatusMethodNotAllowed)
	})
	return server.NewHTTPServer(app, notFound, methodNotAllowed), nil
}
