package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/carve/internal/adapters/logger"
	"go.trai.ch/carve/internal/core/ports"
)

const (
	// RunnerNodeID is the unique identifier for the cargo runner Graft node.
	RunnerNodeID graft.ID = "adapter.cargo.runner"
	// MetadataNodeID is the unique identifier for the metadata provider Graft node.
	MetadataNodeID graft.ID = "adapter.cargo.metadata"
	// DescriptorNodeID is the unique identifier for the descriptor writer Graft node.
	DescriptorNodeID graft.ID = "adapter.cargo.descriptor"
)

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner("", log), nil
		},
	})

	graft.Register(graft.Node[ports.MetadataProvider]{
		ID:        MetadataNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RunnerNodeID},
		Run: func(ctx context.Context) (ports.MetadataProvider, error) {
			runner, err := graft.Dep[*Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewMetadataProvider(runner), nil
		},
	})

	graft.Register(graft.Node[ports.DescriptorWriter]{
		ID:        DescriptorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DescriptorWriter, error) {
			return NewDescriptorWriter(), nil
		},
	})
}
