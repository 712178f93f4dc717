package secondary

import "context"

// ReceiptRecord is one persisted staging run, kept so operators can audit
// which workflow run and match tier produced which archives.
type ReceiptRecord struct {
	ID          int64
	Version     string
	WorkflowURL string
	Workflow    string
	Branch      string
	CommitSHA   string
	MatchTier   string
	Archives    []string
	CreatedAt   string
}

// ReceiptStore defines the secondary port for staging-receipt persistence.
type ReceiptStore interface {
	Create(ctx context.Context, receipt *ReceiptRecord) error
	// List returns the most recent receipts, newest first.
	List(ctx context.Context, limit int) ([]*ReceiptRecord, error)
}
