package housework

import (
	"embed"
	"io/fs"

	"github.com/houseworklog/houseworklog/modules/housework/infrastructure/persistence"
	"github.com/houseworklog/houseworklog/modules/housework/presentation/controllers"
	"github.com/houseworklog/houseworklog/modules/housework/services"
	"github.com/houseworklog/houseworklog/pkg/application"
	"github.com/houseworklog/houseworklog/pkg/configuration"
)

//go:embed infrastructure/persistence/schema/*.sql
var migrationFiles embed.FS

type Module struct{}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "housework"
}

func (m *Module) Register(app application.Application) error {
	schema, err := fs.Sub(migrationFiles, "infrastructure/persistence/schema")
	if err != nil {
		return err
	}
	app.Migrations().RegisterSchema(schema)

	personRepo := persistence.NewPersonRepository()
	taskRepo := persistence.NewTaskRepository()
	recordRepo := persistence.NewRecordRepository()
	pipeline := persistence.NewPipelineRepository()

	app.RegisterServices(
		services.NewDimensionService(personRepo, taskRepo),
		services.NewRecordService(personRepo, taskRepo, recordRepo, pipeline, app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewRecordController(app, configuration.Use()),
	)
	return nil
}
