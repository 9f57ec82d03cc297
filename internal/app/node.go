package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/importcache/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/importcache/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/importcache/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/importcache/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/importcache/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			manifest.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			schemas, err := graft.Dep[ports.SchemaLoader](ctx)
			if err != nil {
				return nil, err
			}

			runtimes, err := graft.Dep[ports.RuntimeLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(schemas, runtimes, log, tel), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: tel,
	}, nil
}
