// Package app implements the application layer for forge.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.trai.ch/forge/internal/adapters/network"
	"go.trai.ch/forge/internal/adapters/registry"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/server"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	database     ports.CompiledResourceDatabase
	network      ports.NetworkServer
	reader       ports.DependencyReader
	process      ports.CompilerProcess
	monitor      ports.FileMonitor
	tracer       ports.Tracer
	registries   registry.Factory

	out         io.Writer
	configPath  string
	dialOptions []grpc.DialOption
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	database ports.CompiledResourceDatabase,
	networkServer ports.NetworkServer,
	reader ports.DependencyReader,
	process ports.CompilerProcess,
	fsMonitor ports.FileMonitor,
	tracer ports.Tracer,
	registries registry.Factory,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		database:     database,
		network:      networkServer,
		reader:       reader,
		process:      process,
		monitor:      fsMonitor,
		tracer:       tracer,
		registries:   registries,
		out:          os.Stdout,
	}
}

// WithOutput sets the writer that command reports are rendered to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithDialOptions adds gRPC dial options used by Request.
// This is primarily used for testing with in-memory listeners.
func (a *App) WithDialOptions(opts ...grpc.DialOption) *App {
	a.dialOptions = append(a.dialOptions, opts...)
	return a
}

// GlobalOptions are the settings shared by every command.
type GlobalOptions struct {
	ConfigPath string
	Verbose    bool
	JSON       bool
}

type configurableLogger interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// Configure applies the global options.
func (a *App) Configure(opts GlobalOptions) {
	a.configPath = opts.ConfigPath
	if l, ok := a.logger.(configurableLogger); ok {
		l.SetVerbose(opts.Verbose)
		l.SetJSON(opts.JSON)
	}
}

// Serve runs the resource server until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	settings, reg, err := a.load()
	if err != nil {
		return err
	}

	srv := server.New(a.logger, a.database, a.network, a.reader, a.process, a.monitor, a.tracer)
	if err := srv.Initialize(ctx, settings, reg); err != nil {
		return zerr.Wrap(err, "failed to start resource server")
	}
	a.logger.Info("resource server ready",
		"workers", srv.MaxSimultaneousCompilations(),
		"watch", settings.Watch,
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return tick(ctx, srv, settings.TickInterval, nil)
	})

	g.Go(func() error {
		if settings.CleanupInterval <= 0 {
			return nil
		}
		ticker := time.NewTicker(settings.CleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				srv.RequestCleanup()
			}
		}
	})

	err = g.Wait()
	a.logger.Info("shutting down resource server")
	return shutdown(srv, err)
}

// CompileOptions configuration for the Compile method.
type CompileOptions struct {
	// Force skips the up-to-date check.
	Force bool
}

// Compile compiles the given resources without opening a listening socket.
// It returns domain.ErrRequestsFailed when any request failed.
func (a *App) Compile(ctx context.Context, paths []string, opts CompileOptions) error {
	if len(paths) == 0 {
		return zerr.With(domain.ErrInvalidResourceID, "reason", "no resources given")
	}

	settings, reg, err := a.load()
	if err != nil {
		return err
	}
	settings.Watch = false

	loopback := network.NewLoopback()
	srv := server.New(a.logger, a.database, loopback, a.reader, a.process, nil, a.tracer)
	if err := srv.Initialize(ctx, settings, reg); err != nil {
		return zerr.Wrap(err, "failed to start resource server")
	}

	for _, p := range paths {
		if opts.Force {
			srv.CreateResourceRequest(ctx, domain.NewResourceID(p), 0, domain.OriginManualCompile)
			continue
		}
		loopback.Request(p)
	}

	err = tick(ctx, srv, settings.TickInterval, func() bool {
		return srv.PendingRequests() == 0 && srv.ActiveRequests() == 0
	})
	for _, n := range loopback.TakeNotifications() {
		a.logger.Debug("notification", "kind", n.Kind.String(), "resource", n.ResourceID)
	}

	results := srv.CompletedRequests()
	if renderErr := NewReport(a.out).Requests(results); renderErr != nil {
		err = errors.Join(err, renderErr)
	}
	if err := shutdown(srv, err); err != nil {
		return err
	}
	return failures(results)
}

// PackageOptions configuration for the Package method.
type PackageOptions struct {
	// Maps are added to the maps selected in the settings.
	Maps []string
}

// Package builds the packaged resource tree for the selected maps.
// It returns domain.ErrRequestsFailed when any packaged resource failed.
func (a *App) Package(ctx context.Context, opts PackageOptions) error {
	settings, reg, err := a.load()
	if err != nil {
		return err
	}
	settings.Watch = false

	srv := server.New(a.logger, a.database, network.NewLoopback(), a.reader, a.process, nil, a.tracer)
	if err := srv.Initialize(ctx, settings, reg); err != nil {
		return zerr.Wrap(err, "failed to start resource server")
	}

	err = a.runPackaging(ctx, srv, opts, settings.TickInterval)
	results := srv.CompletedRequests()
	failed := srv.PackagingFailures()

	if err == nil {
		err = NewReport(a.out).Requests(results)
	}
	if err := shutdown(srv, err); err != nil {
		return err
	}
	if failed > 0 {
		return domain.ErrRequestsFailed
	}
	return nil
}

func (a *App) runPackaging(ctx context.Context, srv *server.Server, opts PackageOptions, interval time.Duration) error {
	for _, m := range opts.Maps {
		if err := srv.AddMapToPackagingList(domain.NewResourceID(m)); err != nil {
			return err
		}
	}
	if err := srv.StartPackaging(ctx); err != nil {
		return err
	}
	return tick(ctx, srv, interval, func() bool {
		return !srv.IsPackaging()
	})
}

// Maps lists the maps found under the raw resource tree.
func (a *App) Maps(ctx context.Context) error {
	settings, reg, err := a.load()
	if err != nil {
		return err
	}
	settings.Watch = false

	srv := server.New(a.logger, a.database, network.NewLoopback(), a.reader, a.process, nil, a.tracer)
	if err := srv.Initialize(ctx, settings, reg); err != nil {
		return zerr.Wrap(err, "failed to start resource server")
	}

	err = NewReport(a.out).Maps(srv.AvailableMaps(), srv.MapsToBePackaged())
	return shutdown(srv, err)
}

// Request asks a running server for the given resources and waits for the answers.
// It returns domain.ErrRequestsFailed when any request failed.
func (a *App) Request(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return zerr.With(domain.ErrInvalidResourceID, "reason", "no resources given")
	}

	settings, err := a.loadSettings()
	if err != nil {
		return err
	}

	client, err := network.Dial(ctx, settings.ServerAddress, a.dialOptions...)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	a.logger.Debug("connected to resource server", "address", settings.ServerAddress, "client", client.ID())

	outstanding := make(map[string]int, len(paths))
	for _, p := range paths {
		if err := client.Request(p); err != nil {
			return err
		}
		outstanding[domain.NewResourcePath(p).String()]++
	}

	var responses []domain.ResourceNotification
	for len(outstanding) > 0 {
		msg, err := client.Receive()
		if err != nil {
			return err
		}
		if msg.Kind != domain.NotificationRequestComplete {
			a.logger.Debug("resource updated", "resource", msg.ResourceID)
			continue
		}
		if outstanding[msg.ResourceID] == 0 {
			continue
		}
		outstanding[msg.ResourceID]--
		if outstanding[msg.ResourceID] == 0 {
			delete(outstanding, msg.ResourceID)
		}
		responses = append(responses, msg)
	}

	if err := NewReport(a.out).Responses(responses); err != nil {
		return err
	}

	failed := 0
	for _, r := range responses {
		if r.FilePath == "" {
			failed++
		}
	}
	if failed > 0 {
		return domain.ErrRequestsFailed
	}
	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Ledger   bool
	Compiled bool
}

// Clean removes the compiled resource ledger and the compiled resource tree.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	settings, err := a.loadSettings()
	if err != nil {
		return err
	}

	var errs error

	remove := func(path, name string, rm func(string) error) {
		a.logger.Info(fmt.Sprintf("removing %s...", name), "path", path)
		if err := rm(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	if options.Ledger {
		remove(settings.CompiledResourceDatabasePath, "compiled resource ledger", os.Remove)
	}
	if options.Compiled {
		remove(settings.CompiledResourcePath, "compiled resources", os.RemoveAll)
	}

	return errs
}

func (a *App) loadSettings() (*domain.Settings, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get working directory")
	}

	settings, err := a.configLoader.Load(cwd, a.configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return settings, nil
}

func (a *App) load() (*domain.Settings, *registry.Registry, error) {
	settings, err := a.loadSettings()
	if err != nil {
		return nil, nil, err
	}

	reg, err := a.registries(settings.Compilers)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to register compilers")
	}
	return settings, reg, nil
}

// tick drives srv.Update every interval until ctx is done or done reports true.
func tick(ctx context.Context, srv *server.Server, interval time.Duration, done func() bool) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		srv.Update(ctx)
		if done != nil && done() {
			return nil
		}

		select {
		case <-ctx.Done():
			if done != nil {
				return ctx.Err()
			}
			return nil
		case <-ticker.C:
		}
	}
}

// shutdown stops srv and returns err joined with any shutdown error.
func shutdown(srv *server.Server, err error) error {
	if shutdownErr := srv.Shutdown(); shutdownErr != nil {
		return errors.Join(err, shutdownErr)
	}
	return err
}

func failures(results []domain.CompilationRequest) error {
	failed := 0
	for i := range results {
		if results[i].HasFailed() {
			failed++
		}
	}
	if failed > 0 {
		return domain.ErrRequestsFailed
	}
	return nil
}
