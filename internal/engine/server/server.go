// Package server implements the resource server: request admission, the per-tick
// scheduler and packaging.
//
// Every method except OnFilesModified and RequestCleanup must be called from the
// goroutine that drives Update.
package server

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/uptodate"
	"go.trai.ch/forge/internal/engine/workers"
	"go.trai.ch/zerr"
)

// Server turns resource requests into compiled resources.
type Server struct {
	logger   ports.Logger
	database ports.CompiledResourceDatabase
	network  ports.NetworkServer
	reader   ports.DependencyReader
	process  ports.CompilerProcess
	monitor  ports.FileMonitor
	tracer   ports.Tracer

	settings *domain.Settings
	registry ports.CompilerRegistry
	checker  *uptodate.Checker
	pool     *workers.Pool
	watching bool

	maxConcurrent int
	initialized   bool

	arena     requestArena
	pending   []domain.RequestHandle
	active    []domain.RequestHandle
	completed []domain.RequestHandle

	numRequested int

	cleanupRequested atomic.Bool

	modifiedMu sync.Mutex
	modified   []string

	availableMaps    []domain.ResourceID
	mapsToBePackaged []domain.ResourceID
	isPackaging      bool
	packageOrder     []domain.ResourceID
	packageResources mapset.Set[domain.ResourceID]
	packageCompleted mapset.Set[domain.ResourceID]
	packageFailed    int

	now func() time.Time
}

// New creates an uninitialized server. fsMonitor may be nil to disable file watching.
func New(
	logger ports.Logger,
	database ports.CompiledResourceDatabase,
	network ports.NetworkServer,
	reader ports.DependencyReader,
	process ports.CompilerProcess,
	fsMonitor ports.FileMonitor,
	tracer ports.Tracer,
) *Server {
	return &Server{
		logger:           logger,
		database:         database,
		network:          network,
		reader:           reader,
		process:          process,
		monitor:          fsMonitor,
		tracer:           tracer,
		packageResources: mapset.NewThreadUnsafeSet[domain.ResourceID](),
		packageCompleted: mapset.NewThreadUnsafeSet[domain.ResourceID](),
		now:              time.Now,
	}
}

// Initialize connects the ledger, starts the network front-end and the file
// watcher, and creates the workers. Ledger and network failures are fatal.
func (s *Server) Initialize(ctx context.Context, settings *domain.Settings, registry ports.CompilerRegistry) error {
	invariant(!s.initialized, "server initialized twice")

	if err := s.database.Connect(settings.CompiledResourceDatabasePath); err != nil {
		return err
	}

	if err := s.network.Start(ctx, settings.ServerAddress); err != nil {
		_ = s.database.Close()
		return err
	}

	s.settings = settings
	s.registry = registry
	s.checker = uptodate.NewChecker(
		registry,
		s.database,
		s.reader,
		s.logger,
		settings.RawResourcePath,
		settings.CompiledResourcePath,
	)
	s.pool = workers.NewPool(settings.MaxSimultaneousCompilations, s.process, settings.CompilerExecutablePath)
	s.maxConcurrent = s.pool.Size()

	if settings.Watch && s.monitor != nil {
		if err := s.monitor.Start(ctx, settings.RawResourcePath, s.OnFilesModified); err != nil {
			s.logger.Warn("file watching disabled", "root", settings.RawResourcePath, "error", err.Error())
		} else {
			s.watching = true
		}
	}

	s.RefreshAvailableMapList()
	for _, id := range settings.PackagedMaps {
		if err := s.AddMapToPackagingList(id); err != nil {
			s.logger.Warn("ignoring packaged map", "map", id.String(), "error", err.Error())
		}
	}

	s.initialized = true
	s.logger.Debug("resource server initialized",
		"workers", s.maxConcurrent,
		"raw", settings.RawResourcePath,
		"compiled", settings.CompiledResourcePath,
	)
	return nil
}

// Shutdown waits for running compiles, stops the watcher and the network
// front-end, discards every request and closes the ledger.
func (s *Server) Shutdown() error {
	if !s.initialized {
		return nil
	}
	s.initialized = false

	s.pool.Drain()

	var errs error
	if s.watching {
		if err := s.monitor.Stop(); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, "failed to stop file watcher"))
		}
		s.watching = false
	}

	for _, h := range s.pending {
		s.discard(h)
	}
	for _, h := range s.active {
		s.discard(h)
	}
	s.pending, s.active = nil, nil
	s.cleanupCompletedRequests(0)

	s.network.Stop()

	if err := s.database.Close(); err != nil {
		errs = errors.Join(errs, err)
	}
	return errs
}

// Update runs one scheduler tick.
func (s *Server) Update(ctx context.Context) {
	invariant(s.initialized, "update before initialize")

	// Inbound requests.
	if s.network.IsRunning() {
		s.network.ProcessIncomingMessages(func(msg domain.ResourceRequestMessage) {
			s.CreateResourceRequest(ctx, domain.NewResourceID(msg.ResourcePath), msg.ClientID, domain.OriginExternal)
		})
	}

	// Finished compiles.
	for _, c := range s.pool.PollCompleted() {
		h, result := s.pool.Worker(c.Worker).AcceptResult()
		s.finishCompile(h, result)
	}

	// Admission.
	for len(s.pending) > 0 && len(s.active) < s.maxConcurrent {
		h := s.pending[0]
		s.pending = s.pending[1:]
		s.active = append(s.active, h)
		s.startCompile(h)
	}
	invariant(len(s.active) <= s.maxConcurrent, "%d active requests exceed %d workers", len(s.active), s.maxConcurrent)

	if s.cleanupRequested.CompareAndSwap(true, false) {
		s.cleanupCompletedRequests(s.settings.CompletedRequestRetention)
	}

	s.processModifiedFiles(ctx)

	if s.isPackaging && s.packageResources.IsSubset(s.packageCompleted) {
		s.finishPackaging()
	}

	if len(s.pending)+len(s.active) == 0 {
		s.numRequested = 0
	}
}

// BusyState reports progress through the current burst of requests.
func (s *Server) BusyState() domain.BusyState {
	outstanding := len(s.pending) + len(s.active)
	if outstanding == 0 {
		return domain.BusyState{}
	}

	state := domain.BusyState{
		TotalRequests:     s.numRequested,
		CompletedRequests: s.numRequested - outstanding,
		IsBusy:            true,
	}
	invariant(state.TotalRequests > 0, "busy without requests")
	invariant(state.CompletedRequests <= state.TotalRequests, "%d of %d requests completed", state.CompletedRequests, state.TotalRequests)
	return state
}

// RequestCleanup asks the next tick to drop completed requests older than the
// configured retention.
func (s *Server) RequestCleanup() {
	s.cleanupRequested.Store(true)
}

// OnFilesModified queues modified source files for the next tick.
// It is safe to call from any goroutine.
func (s *Server) OnFilesModified(paths []string) {
	s.modifiedMu.Lock()
	defer s.modifiedMu.Unlock()
	s.modified = append(s.modified, paths...)
}

func (s *Server) takeModifiedFiles() []string {
	s.modifiedMu.Lock()
	defer s.modifiedMu.Unlock()
	paths := s.modified
	s.modified = nil
	return paths
}

// processModifiedFiles recompiles modified sources that were compiled before.
func (s *Server) processModifiedFiles(ctx context.Context) {
	for _, path := range s.takeModifiedFiles() {
		resourcePath := domain.ResourcePathFromFileSystemPath(s.settings.RawResourcePath, path)
		if !resourcePath.IsValid() {
			continue
		}
		id := domain.ResourceIDFromPath(resourcePath)
		if !id.IsValid() {
			continue
		}
		if !s.database.GetRecord(id).IsValid() {
			continue
		}

		s.logger.Info("source modified, recompiling", "resource", id.String())
		s.CreateResourceRequest(ctx, id, 0, domain.OriginFileWatcher)
	}
}
