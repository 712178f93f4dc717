// Package wire provides dependency injection for the stagehand application.
// It creates singleton services with lazy initialization.
package wire

import (
	"fmt"
	"os"
	"sync"

	"github.com/example/stagehand/internal/adapters/filesystem"
	ghadapter "github.com/example/stagehand/internal/adapters/gh"
	"github.com/example/stagehand/internal/adapters/sqlite"
	"github.com/example/stagehand/internal/adapters/toolchain"
	"github.com/example/stagehand/internal/app"
	"github.com/example/stagehand/internal/config"
	"github.com/example/stagehand/internal/db"
	"github.com/example/stagehand/internal/gh"
	"github.com/example/stagehand/internal/ports/primary"
	"github.com/example/stagehand/internal/ports/secondary"
)

var (
	cfg      *config.Config
	resolver primary.WorkflowResolver
	stager   primary.Stager
	receipts secondary.ReceiptStore
	initErr  error
	once     sync.Once
)

// Config returns the loaded configuration.
func Config() (*config.Config, error) {
	once.Do(initServices)
	return cfg, initErr
}

// Resolver returns the singleton WorkflowResolver instance.
func Resolver() (primary.WorkflowResolver, error) {
	once.Do(initServices)
	return resolver, initErr
}

// Stager returns the singleton Stager instance.
func Stager() (primary.Stager, error) {
	once.Do(initServices)
	return stager, initErr
}

// Receipts returns the singleton ReceiptStore instance.
func Receipts() (secondary.ReceiptStore, error) {
	once.Do(initServices)
	if initErr != nil {
		return nil, initErr
	}
	if receipts == nil {
		return nil, fmt.Errorf("receipt store unavailable")
	}
	return receipts, nil
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cwd, err := os.Getwd()
	if err != nil {
		initErr = fmt.Errorf("failed to get working directory: %w", err)
		return
	}

	cfg, err = config.Load(cwd)
	if err != nil {
		initErr = err
		return
	}

	// Secondary adapters
	ci := ghadapter.NewAdapter(gh.NewClient(""))
	installer := toolchain.NewInstaller(cfg.InstallerScript, os.Stdout)
	builder := toolchain.NewBuilder(cfg.BuilderScript, os.Stdout)
	workspace := filesystem.NewWorkspaceAdapter("")

	// The receipt store is best-effort: a broken local DB must not block a
	// release.
	if database, dbErr := db.GetDB(); dbErr == nil {
		receipts = sqlite.NewReceiptRepository(database)
	} else {
		fmt.Fprintf(os.Stderr, "warning: receipt store unavailable: %v\n", dbErr)
	}

	// Services (primary ports implementation)
	resolver = app.NewResolverService(ci, cfg, os.Stderr)
	stager = app.NewStageService(resolver, installer, builder, workspace, receipts, cfg, os.Stdout)
}
