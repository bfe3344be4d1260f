package main

import (
	"context"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/houseworklog/houseworklog/internal/server"
	"github.com/houseworklog/houseworklog/modules/housework"
	"github.com/houseworklog/houseworklog/modules/housework/domain/record"
	"github.com/houseworklog/houseworklog/pkg/application"
	"github.com/houseworklog/houseworklog/pkg/configuration"
	"github.com/houseworklog/houseworklog/pkg/eventbus"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		panic(err)
	}

	app := application.New(&application.ApplicationOptions{
		Pool:     pool,
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
		DSN:      conf.Database.Opts,
	})
	if err := application.Load(app, housework.NewModule()); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}

	if err := app.Migrations().Run(ctx); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	subscribeAuditLog(app.EventPublisher(), logger)

	options := &server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
		Pool:          pool,
	}
	serverInstance, err := server.Default(options)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}
	log.Printf("Listening on: %s\n", conf.Origin)
	if err := serverInstance.Start(conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func subscribeAuditLog(bus eventbus.EventBus, logger *logrus.Logger) {
	bus.Subscribe(func(event *record.CreatedEvent) {
		logger.WithFields(logrus.Fields{
			"person_id": event.Record.PersonID(),
			"task_id":   event.Record.TaskID(),
			"date":      event.Record.Date().Format(record.DateLayout),
			"minutes":   event.Record.DurationMinutes(),
		}).Info("task record staged")
	})
	bus.Subscribe(func(event *record.BatchIngestedEvent) {
		logger.WithFields(logrus.Fields{
			"inserted": event.Inserted,
			"skipped":  event.Skipped,
		}).Info("CSV batch ingested")
	})
}
