package template

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lince-tools/lince-report/pkg/models/domain"
)

// ErrNotFound is returned when a template id does not exist.
var ErrNotFound = errors.New("template not found")

type Store interface {
	List(ctx context.Context) ([]*domain.ReportTemplate, error)
	Get(ctx context.Context, id string) (*domain.ReportTemplate, error)
	Create(ctx context.Context, name string, config domain.ReportTemplateConfig) (*domain.ReportTemplate, error)
	Update(ctx context.Context, id, name string, config domain.ReportTemplateConfig) (*domain.ReportTemplate, error)
	Delete(ctx context.Context, id string) error
}

type defaultStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &defaultStore{db: db, now: time.Now}, nil
}

func (s *defaultStore) List(ctx context.Context) ([]*domain.ReportTemplate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, config, created_at, updated_at FROM report_templates ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []*domain.ReportTemplate
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}
	return templates, rows.Err()
}

func (s *defaultStore) Get(ctx context.Context, id string) (*domain.ReportTemplate, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, config, created_at, updated_at FROM report_templates WHERE id = ?`, id)

	tpl, err := scanTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return tpl, err
}

func (s *defaultStore) Create(ctx context.Context, name string, config domain.ReportTemplateConfig) (*domain.ReportTemplate, error) {
	raw, err := json.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to encode template config: %w", err)
	}

	now := s.now().UTC()
	tpl := &domain.ReportTemplate{
		ID:        uuid.NewString(),
		Name:      name,
		Config:    config,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO report_templates (id, name, config, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		tpl.ID, tpl.Name, string(raw), tpl.CreatedAt, tpl.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert template: %w", err)
	}
	return tpl, nil
}

func (s *defaultStore) Update(ctx context.Context, id, name string, config domain.ReportTemplateConfig) (*domain.ReportTemplate, error) {
	raw, err := json.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to encode template config: %w", err)
	}

	now := s.now().UTC()
	res, err := s.db.ExecContext(ctx,
		`UPDATE report_templates SET name = ?, config = ?, updated_at = ? WHERE id = ?`,
		name, string(raw), now, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, ErrNotFound
	}

	return s.Get(ctx, id)
}

func (s *defaultStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM report_templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTemplate(row rowScanner) (*domain.ReportTemplate, error) {
	var tpl domain.ReportTemplate
	var raw string
	if err := row.Scan(&tpl.ID, &tpl.Name, &raw, &tpl.CreatedAt, &tpl.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(raw), &tpl.Config); err != nil {
		return nil, fmt.Errorf("failed to decode template config: %w", err)
	}
	return &tpl, nil
}
