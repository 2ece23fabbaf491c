package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/carve/internal/adapters/cargo"     //nolint:depguard // Wired in app layer
	"go.trai.ch/carve/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/carve/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/carve/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/carve/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/carve/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cargo.MetadataNodeID,
			cargo.DescriptorNodeID,
			fs.CopierNodeID,
			fs.HasherNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
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

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	metadata, err := graft.Dep[ports.MetadataProvider](ctx)
	if err != nil {
		return nil, err
	}

	copier, err := graft.Dep[ports.TreeCopier](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.DescriptorWriter](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.TreeHasher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, metadata, copier, writer, hasher, tracer, log), nil
}
