package terminal

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/keel/internal/core/ports"
)

// NodeID is the unique identifier for the terminal detector Graft node.
const NodeID graft.ID = "adapter.terminal"

func init() {
	graft.Register(graft.Node[ports.Terminal]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Terminal, error) {
			return New(), nil
		},
	})
}
