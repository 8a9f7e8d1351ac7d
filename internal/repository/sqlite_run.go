package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/hoursreport/internal/db"
	"github.com/alexanderramin/hoursreport/internal/domain"
	"github.com/google/uuid"
)

// SQLiteRunRepo implements RunRepo on the report_runs tables.
type SQLiteRunRepo struct {
	db db.DBTX
}

// NewSQLiteRunRepo accepts a *sql.DB or a transaction from db.UnitOfWork.
func NewSQLiteRunRepo(tx db.DBTX) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: tx}
}

var _ RunRepo = (*SQLiteRunRepo)(nil)

// Create fills in an empty ID and zero CreatedAt before inserting.
func (r *SQLiteRunRepo) Create(ctx context.Context, run *domain.ReportRun) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = nowUTC()
	}

	query := `INSERT INTO report_runs (id, config_key, output_path, project_count, sheet_count, total_hours, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.ConfigKey,
		run.OutputPath,
		run.ProjectCount,
		run.SheetCount,
		run.TotalHours,
		formatTime(run.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting report run: %w", err)
	}

	for i, p := range run.Projects {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO report_run_projects (run_id, position, title, source_file, hours, weeks, dropped)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			run.ID, i, p.Title, p.SourceFile, p.Hours, p.Weeks, p.Dropped,
		)
		if err != nil {
			return fmt.Errorf("inserting project %q of run %s: %w", p.Title, run.ID, err)
		}
	}
	return nil
}

func (r *SQLiteRunRepo) GetByID(ctx context.Context, id string) (*domain.ReportRun, error) {
	query := `SELECT id, config_key, output_path, project_count, sheet_count, total_hours, created_at
		FROM report_runs WHERE id = ?`
	run, err := scanRun(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("report run %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	projects, err := r.listProjects(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	run.Projects = projects
	return run, nil
}

func (r *SQLiteRunRepo) ResolveID(ctx context.Context, prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("report run: %w", ErrNotFound)
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM report_runs WHERE substr(id, 1, ?) = ? LIMIT 2`, len(prefix), prefix)
	if err != nil {
		return "", fmt.Errorf("resolving run id: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scanning run id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("resolving run id: %w", err)
	}
	switch len(ids) {
	case 0:
		return "", fmt.Errorf("report run %s: %w", prefix, ErrNotFound)
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("report run %s: %w", prefix, ErrAmbiguous)
	}
}

func (r *SQLiteRunRepo) ListRecent(ctx context.Context, configKey string, limit int) ([]*domain.ReportRun, error) {
	if limit <= 0 {
		return nil, nil
	}
	query := `SELECT id, config_key, output_path, project_count, sheet_count, total_hours, created_at
		FROM report_runs
		WHERE (? = '' OR config_key = ?)
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, configKey, configKey, limit)
	if err != nil {
		return nil, fmt.Errorf("listing report runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.ReportRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating report runs: %w", err)
	}
	return runs, nil
}

func (r *SQLiteRunRepo) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM report_runs WHERE id NOT IN (
			SELECT id FROM report_runs ORDER BY created_at DESC, rowid DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning report runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("pruning report runs: %w", err)
	}
	return n, nil
}

func (r *SQLiteRunRepo) listProjects(ctx context.Context, runID string) ([]domain.RunProject, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT title, source_file, hours, weeks, dropped
		FROM report_run_projects WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing projects of run %s: %w", runID, err)
	}
	defer rows.Close()

	var projects []domain.RunProject
	for rows.Next() {
		var p domain.RunProject
		if err := rows.Scan(&p.Title, &p.SourceFile, &p.Hours, &p.Weeks, &p.Dropped); err != nil {
			return nil, fmt.Errorf("scanning run project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run projects: %w", err)
	}
	return projects, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*domain.ReportRun, error) {
	var run domain.ReportRun
	var createdAt string
	err := row.Scan(
		&run.ID, &run.ConfigKey, &run.OutputPath,
		&run.ProjectCount, &run.SheetCount, &run.TotalHours,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning report run: %w", err)
	}
	if run.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	return &run, nil
}
