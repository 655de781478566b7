// Package executor dispatches resolved build plans to goal runners. It is the
// thin edge of the build engine: the actual build-graph logic lives beyond
// the GoalRunner boundary.
package executor

import (
	"context"
	"fmt"

	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// GoalRunner performs one goal for one project.
type GoalRunner func(ctx context.Context, project domain.ProjectIdentity, goal string) error

// Executor implements ports.Executor. The builder id in the plan selects the
// dispatch strategy; the plan's thread count caps the multithreaded one.
type Executor struct {
	logger ports.Logger
	run    GoalRunner
}

// NewExecutor creates an Executor whose goal runner logs each dispatched goal.
func NewExecutor(logger ports.Logger) *Executor {
	e := &Executor{logger: logger}
	e.run = e.logGoal
	return e
}

// WithGoalRunner replaces the per-goal work function. Used for testing and by
// embedders that supply a real build engine.
func (e *Executor) WithGoalRunner(run GoalRunner) *Executor {
	e.run = run
	return e
}

// Execute runs every goal of the plan against every project. The failure of a
// project is reported as a domain.BuildFailure so callers can compute a
// resume-from selector.
func (e *Executor) Execute(ctx context.Context, plan domain.BuildPlan) error {
	switch plan.Builder {
	case domain.BuilderSinglethreaded:
		return e.executeSerial(ctx, plan)
	case domain.BuilderMultithreaded:
		return e.executeParallel(ctx, plan)
	default:
		return zerr.With(domain.ErrUnknownBuilder, "builder", plan.Builder)
	}
}

func (e *Executor) executeSerial(ctx context.Context, plan domain.BuildPlan) error {
	for _, project := range plan.Projects {
		if err := e.buildProject(ctx, project, plan.Goals); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) executeParallel(ctx context.Context, plan domain.BuildPlan) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(plan.Threads)

	for _, project := range plan.Projects {
		g.Go(func() error {
			return e.buildProject(ctx, project, plan.Goals)
		})
	}
	return g.Wait()
}

// buildProject runs the plan's goals in order for one project. Goals within a
// project are always sequential; only projects run concurrently.
func (e *Executor) buildProject(ctx context.Context, project domain.ProjectIdentity, goals []string) error {
	for _, goal := range goals {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.run(ctx, project, goal); err != nil {
			return &domain.BuildFailure{Project: project, Err: err}
		}
	}
	return nil
}

func (e *Executor) logGoal(_ context.Context, project domain.ProjectIdentity, goal string) error {
	e.logger.Info(fmt.Sprintf("%s %s", project, goal))
	return nil
}
