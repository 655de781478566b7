package propstore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/keel/internal/core/ports"
)

// NodeID is the unique identifier for the property store Graft node.
const NodeID graft.ID = "adapter.propstore"

func init() {
	graft.Register(graft.Node[ports.PropertyStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PropertyStore, error) {
			return New(), nil
		},
	})
}
