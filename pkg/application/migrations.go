package application

import (
	"context"
	"database/sql"
	"io/fs"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

// MigrationManager applies the SQL schemas modules register at load time.
type MigrationManager interface {
	RegisterSchema(fsys fs.FS)
	Run(ctx context.Context) error
}

func NewMigrationManager(dsn string) MigrationManager {
	return &migrationManager{dsn: dsn}
}

type migrationManager struct {
	dsn     string
	schemas []fs.FS
}

func (m *migrationManager) RegisterSchema(fsys fs.FS) {
	m.schemas = append(m.schemas, fsys)
}

// Run applies every registered schema in registration order. goose tracks
// applied versions in its own table, so reruns are no-ops.
func (m *migrationManager) Run(ctx context.Context) error {
	if len(m.schemas) == 0 {
		return nil
	}

	db, err := sql.Open("postgres", m.dsn)
	if err != nil {
		return errors.Wrap(err, "failed to open migration connection")
	}
	defer func() {
		_ = db.Close()
	}()

	for _, fsys := range m.schemas {
		provider, err := goose.NewProvider(database.DialectPostgres, db, fsys)
		if err != nil {
			return errors.Wrap(err, "failed to create migration provider")
		}
		if _, err := provider.Up(ctx); err != nil {
			return errors.Wrap(err, "failed to apply migrations")
		}
	}
	return nil
}
