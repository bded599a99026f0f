// Package runner drives one extraction end to end: download the run
// archive, select its metadata members, flatten them, and write the merged
// document.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/nfmeta/runmeta/internal/archive"
	"github.com/nfmeta/runmeta/internal/metadata"
	"github.com/nfmeta/runmeta/internal/output"
	"github.com/nfmeta/runmeta/internal/platform"
)

// ErrMissingData indicates the downloaded archive lacks a member the
// extraction requires. Nothing is written when it is returned.
var ErrMissingData = errors.New("required workflow files not found in run archive")

// Options configure how the runner performs an extraction.
type Options struct {
	// Client downloads run archives. Required.
	Client platform.Client
	// Log receives progress lines. Defaults to a no-op.
	Log *zap.Logger
	// ArchiveDir is where the intermediate archive lands. Empty means the
	// working directory, giving the documented relative <id>.tar.gz path.
	ArchiveDir string
	// CleanupArchive removes the intermediate archive after a successful
	// run. By default it stays on disk.
	CleanupArchive bool
}

// Request identifies one workflow run extraction.
type Request struct {
	Workspace  string
	WorkflowID string
	OutputPath string
}

// Runner executes extraction requests sequentially. There are no retries;
// the first failure aborts the run.
type Runner struct {
	opts Options
}

// New creates a runner with the supplied options.
func New(opts Options) *Runner {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	return &Runner{opts: opts}
}

// ArchivePath returns where the run archive for workflowID is written.
func (r *Runner) ArchivePath(workflowID string) string {
	return filepath.Join(r.opts.ArchiveDir, workflowID+".tar.gz")
}

// Run downloads the run archive for req, flattens the workflow metadata out
// of it and writes the merged document to req.OutputPath.
func (r *Runner) Run(ctx context.Context, req Request) error {
	log := r.opts.Log

	log.Info("Getting workflow run data...")
	archivePath := r.ArchivePath(req.WorkflowID)
	if err := r.opts.Client.DumpRun(ctx, req.Workspace, req.WorkflowID, archivePath); err != nil {
		return err
	}

	log.Info("Extracting workflow metadata...")
	members, err := archive.Select(archivePath, metadata.LoadMetricsFile, metadata.WorkflowFile)
	if err != nil {
		return err
	}
	loadMetrics, haveLoad := members[metadata.LoadMetricsFile]
	workflow, haveWorkflow := members[metadata.WorkflowFile]
	if !haveLoad || !haveWorkflow {
		return fmt.Errorf("%w: missing %s", ErrMissingData, strings.Join(missingMembers(haveLoad, haveWorkflow), ", "))
	}

	log.Info("Parsing workflow metadata...")
	doc := metadata.Document(loadMetrics, workflow)

	log.Info("Writing workflow metadata to JSON file...")
	if err := output.WriteFile(req.OutputPath, doc); err != nil {
		return err
	}

	if r.opts.CleanupArchive {
		if err := os.Remove(archivePath); err != nil {
			log.Warn("unable to remove archive", zap.String("path", archivePath), zap.Error(err))
		} else {
			log.Debug("removed archive", zap.String("path", archivePath))
		}
	}

	log.Info(fmt.Sprintf("Workflow metadata written to %s.", req.OutputPath))
	return nil
}

func missingMembers(haveLoad, haveWorkflow bool) []string {
	var missing []string
	if !haveLoad {
		missing = append(missing, metadata.LoadMetricsFile)
	}
	if !haveWorkflow {
		missing = append(missing, metadata.WorkflowFile)
	}
	return missing
}
