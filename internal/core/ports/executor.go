package ports

import (
	"context"

	"go.trai.ch/keel/internal/core/domain"
)

// Executor defines the interface to the build engine. The engine consumes a
// fully resolved plan; it never re-reads flags or configuration.
type Executor interface {
	Execute(ctx context.Context, plan domain.BuildPlan) error
}
