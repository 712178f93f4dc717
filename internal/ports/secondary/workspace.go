package secondary

// StagingWorkspace defines the secondary port for temporary staging
// directory lifecycle.
type StagingWorkspace interface {
	// CreateStagingDir creates a fresh temp directory whose name starts
	// with prefix, under the runner temp root.
	CreateStagingDir(prefix string) (string, error)
	// RemoveStagingDir deletes a staging directory. Best effort; removal
	// failures must not mask the staging result.
	RemoveStagingDir(path string)
}
