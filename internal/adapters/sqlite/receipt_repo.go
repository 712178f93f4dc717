// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/example/stagehand/internal/ports/secondary"
)

// ReceiptRepository implements secondary.ReceiptStore with SQLite.
type ReceiptRepository struct {
	db *sql.DB
}

// NewReceiptRepository creates a new SQLite receipt repository.
func NewReceiptRepository(db *sql.DB) *ReceiptRepository {
	return &ReceiptRepository{db: db}
}

// Create persists a staging receipt.
func (r *ReceiptRepository) Create(ctx context.Context, receipt *secondary.ReceiptRecord) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO receipts (version, workflow_url, workflow, branch, commit_sha, match_tier, archives)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		receipt.Version,
		receipt.WorkflowURL,
		receipt.Workflow,
		receipt.Branch,
		receipt.CommitSHA,
		receipt.MatchTier,
		strings.Join(receipt.Archives, "\n"),
	)
	if err != nil {
		return fmt.Errorf("failed to create receipt: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		receipt.ID = id
	}
	return nil
}

// List returns the most recent receipts, newest first.
func (r *ReceiptRepository) List(ctx context.Context, limit int) ([]*secondary.ReceiptRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, version, workflow_url, workflow, branch, commit_sha, match_tier, archives, created_at
		 FROM receipts ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	var receipts []*secondary.ReceiptRecord
	for rows.Next() {
		var (
			record    secondary.ReceiptRecord
			archives  string
			createdAt time.Time
		)
		if err := rows.Scan(
			&record.ID,
			&record.Version,
			&record.WorkflowURL,
			&record.Workflow,
			&record.Branch,
			&record.CommitSHA,
			&record.MatchTier,
			&archives,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		if archives != "" {
			record.Archives = strings.Split(archives, "\n")
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		receipts = append(receipts, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipts: %w", err)
	}

	return receipts, nil
}
