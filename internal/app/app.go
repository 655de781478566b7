// Package app implements the application layer for keel.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/keel/internal/invocation"
	"go.trai.ch/zerr"
)

// App represents the main application logic: resolve the invocation request,
// configure logging from it, then hand the build plan to the engine.
type App struct {
	logger     ports.Logger
	workspace  ports.WorkspaceLoader
	store      ports.PropertyStore
	terminal   ports.Terminal
	executor   ports.Executor
	workingDir string
	processors int
}

// New creates a new App instance.
func New(
	log ports.Logger,
	workspace ports.WorkspaceLoader,
	store ports.PropertyStore,
	terminal ports.Terminal,
	exec ports.Executor,
) *App {
	return &App{
		logger:    log,
		workspace: workspace,
		store:     store,
		terminal:  terminal,
		executor:  exec,
	}
}

// WithWorkingDirectory overrides the process working directory. Used for testing.
func (a *App) WithWorkingDirectory(dir string) *App {
	a.workingDir = dir
	return a
}

// WithProcessors overrides the detected processor count. Used for testing.
func (a *App) WithProcessors(n int) *App {
	a.processors = n
	return a
}

// Run executes one build invocation for the given raw arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	cwd := a.workingDir
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return zerr.Wrap(err, "failed to determine working directory")
		}
		cwd = wd
	}

	resolver := invocation.NewResolver(a.workspace, a.store, a.terminal)
	if a.processors > 0 {
		resolver = resolver.WithProcessors(a.processors)
	}

	req, err := resolver.Resolve(args, cwd)
	if err != nil {
		return err
	}

	// Apply the logging decisions before any build output is produced.
	if req.LogFile != "" {
		logPath := req.LogFile
		if !filepath.IsAbs(logPath) {
			logPath = filepath.Join(cwd, logPath)
		}
		// #nosec G304 -- destination chosen by the invoking user
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.FilePerm)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrLogFileOpenFailed.Error()), "path", logPath)
		}
		defer func() {
			a.logger.SetOutput(nil)
			_ = f.Close()
		}()
		a.logger.SetOutput(f)
	}
	a.logger.SetColorEnabled(req.ColorEnabled)

	if len(req.Goals) == 0 {
		return domain.ErrNoGoalsSpecified
	}

	projects, err := a.workspace.LoadProjects(req.RootDirectory)
	if err != nil {
		return err
	}

	plan := domain.BuildPlan{
		Goals:      req.Goals,
		Builder:    req.Builder,
		Threads:    req.DegreeOfConcurrency,
		Projects:   projects,
		ResumeFrom: req.ResumeFrom,
	}

	if err := a.executor.Execute(ctx, plan); err != nil {
		var failure *domain.BuildFailure
		if errors.As(err, &failure) {
			selector := invocation.ResumeSelector(projects, failure.Project)
			a.logger.Info(fmt.Sprintf(
				"After correcting the problem, resume the build with: keel build %s -r %s",
				strings.Join(req.Goals, " "), selector,
			))
		}
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}

	return nil
}
