package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/keel/internal/adapters/config"
	"go.trai.ch/keel/internal/adapters/logger"
	"go.trai.ch/keel/internal/adapters/propstore"
	"go.trai.ch/keel/internal/adapters/terminal"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/keel/internal/engine/executor"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			config.NodeID,
			propstore.NodeID,
			terminal.NodeID,
			executor.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := graft.Dep[ports.WorkspaceLoader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.PropertyStore](ctx)
	if err != nil {
		return nil, err
	}

	term, err := graft.Dep[ports.Terminal](ctx)
	if err != nil {
		return nil, err
	}

	exec, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	return New(log, workspace, store, term, exec), nil
}
