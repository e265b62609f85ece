package application

import (
	"context"
	"embed"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MigrationManager applies module schema files. Schemas are plain SQL files
// embedded per module; they are expected to be idempotent (CREATE TABLE IF
// NOT EXISTS) and are applied in lexical order.
type MigrationManager interface {
	RegisterSchema(fs ...*embed.FS)
	Run(ctx context.Context) error
}

func NewMigrationManager(pool *pgxpool.Pool) MigrationManager {
	return &migrationManager{pool: pool}
}

type migrationManager struct {
	pool    *pgxpool.Pool
	schemas []*embed.FS
}

func (m *migrationManager) RegisterSchema(fsList ...*embed.FS) {
	m.schemas = append(m.schemas, fsList...)
}

func (m *migrationManager) Run(ctx context.Context) error {
	for _, schemaFs := range m.schemas {
		var files []string
		err := fs.WalkDir(schemaFs, ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".sql") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return err
		}
		sort.Strings(files)

		for _, file := range files {
			stmt, err := schemaFs.ReadFile(file)
			if err != nil {
				return err
			}
			if _, err := m.pool.Exec(ctx, string(stmt)); err != nil {
				return err
			}
		}
	}
	return nil
}
