package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/descriptor" //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/ledger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/network"    //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/process"    //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/registry"   //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/watcher"    //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/core/ports"
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
			logger.NodeID,
			ledger.NodeID,
			network.NodeID,
			descriptor.NodeID,
			process.NodeID,
			watcher.NodeID,
			telemetry.TracerNodeID,
			registry.NodeID,
		},
		Run: runAppNode,
	})

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

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	database, err := graft.Dep[ports.CompiledResourceDatabase](ctx)
	if err != nil {
		return nil, err
	}

	networkServer, err := graft.Dep[ports.NetworkServer](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.DependencyReader](ctx)
	if err != nil {
		return nil, err
	}

	proc, err := graft.Dep[ports.CompilerProcess](ctx)
	if err != nil {
		return nil, err
	}

	fsMonitor, err := graft.Dep[ports.FileMonitor](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	registries, err := graft.Dep[registry.Factory](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, database, networkServer, reader, proc, fsMonitor, tracer, registries), nil
}
