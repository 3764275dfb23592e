// Package sqlite opens the embedded database used for report templates.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const templateSchema = `
	CREATE TABLE IF NOT EXISTS report_templates (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		config TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);
`

var bootQueries = []string{
	templateSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite", settings.DbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run boot query: %w", err)
		}
	}

	return db, nil
}
