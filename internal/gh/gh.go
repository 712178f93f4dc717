// Package gh wraps the GitHub CLI. Only the read-only `gh run list` surface
// is used; authentication is whatever the ambient gh login provides.
package gh

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/example/stagehand/internal/core/release"
)

// runFields are the JSON fields requested from gh.
const runFields = "databaseId,headBranch,headSha,displayTitle,url"

// runRecord mirrors gh's JSON output for a single run.
type runRecord struct {
	DatabaseID   int64  `json:"databaseId"`
	HeadBranch   string `json:"headBranch"`
	HeadSha      string `json:"headSha"`
	DisplayTitle string `json:"displayTitle"`
	URL          string `json:"url"`
}

// Client shells out to the gh binary.
type Client struct {
	bin string
}

// NewClient creates a gh client using the given binary name, or "gh" when
// empty.
func NewClient(bin string) *Client {
	if bin == "" {
		bin = "gh"
	}
	return &Client{bin: bin}
}

// ListRuns returns up to limit recent runs of the named workflow.
func (c *Client) ListRuns(ctx context.Context, workflow string, limit int) ([]release.Run, error) {
	cmd := exec.CommandContext(ctx, c.bin, "run", "list",
		"--workflow", workflow,
		"--json", runFields,
		"--limit", strconv.Itoa(limit),
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("gh run list failed for %s: %w: %s", workflow, err, stderr.String())
	}

	runs, err := parseRuns(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to parse gh run list output for %s: %w", workflow, err)
	}
	return runs, nil
}

// parseRuns decodes gh's JSON run list. Empty output means no runs.
func parseRuns(out []byte) ([]release.Run, error) {
	if len(bytes.TrimSpace(out)) == 0 {
		return nil, nil
	}

	var records []runRecord
	if err := json.Unmarshal(out, &records); err != nil {
		return nil, err
	}

	runs := make([]release.Run, 0, len(records))
	for _, rec := range records {
		runs = append(runs, release.Run{
			ID:        rec.DatabaseID,
			Branch:    rec.HeadBranch,
			CommitSHA: rec.HeadSha,
			Title:     rec.DisplayTitle,
			URL:       rec.URL,
		})
	}
	return runs, nil
}

// Available reports whether the gh binary is on PATH.
func (c *Client) Available() bool {
	_, err := exec.LookPath(c.bin)
	return err == nil
}
