package store

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var _ Store = (*PostgresStore)(nil)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	db, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Close() {
	s.db.Close()
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
        CREATE TABLE IF NOT EXISTS analysis_reports (
            id         BIGSERIAL PRIMARY KEY,
            url        TEXT        NOT NULL,
            title      TEXT        NOT NULL,
            site_name  TEXT        NOT NULL DEFAULT '',
            byline     TEXT        NOT NULL DEFAULT '',
            report     TEXT        NOT NULL,
            degraded   BOOLEAN     NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );
        ALTER TABLE analysis_reports ADD COLUMN IF NOT EXISTS site_name TEXT NOT NULL DEFAULT '';
        ALTER TABLE analysis_reports ADD COLUMN IF NOT EXISTS byline TEXT NOT NULL DEFAULT '';
    `
	if _, err := s.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create analysis_reports: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveReport(ctx context.Context, report *Report) (int64, error) {
	log.Printf("[Store.SaveReport] Inserting report - URL: %s, Degraded: %t", report.URL, report.Degraded)
	query := `
        INSERT INTO analysis_reports (url, title, site_name, byline, report, degraded)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at;
    `
	err := s.db.QueryRow(ctx, query,
		report.URL, report.Title, report.SiteName, report.Byline, report.Report, report.Degraded).
		Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		log.Printf("[Store.SaveReport] Insert failed: %v", err)
		return 0, fmt.Errorf("failed to insert report: %w", err)
	}
	log.Printf("[Store.SaveReport] Report saved with ID: %d", report.ID)
	return report.ID, nil
}
