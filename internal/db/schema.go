package db

import "database/sql"

const schema = `
CREATE TABLE IF NOT EXISTS receipts (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    version      TEXT NOT NULL,
    workflow_url TEXT NOT NULL,
    workflow     TEXT NOT NULL DEFAULT '',
    branch       TEXT NOT NULL DEFAULT '',
    commit_sha   TEXT NOT NULL DEFAULT '',
    match_tier   TEXT NOT NULL DEFAULT '',
    archives     TEXT NOT NULL DEFAULT '',
    created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_receipts_version ON receipts(version);
`

// InitSchema creates the database schema
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
