package server_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/descriptor"
	"go.trai.ch/forge/internal/adapters/ledger"
	"go.trai.ch/forge/internal/adapters/logger"
	"go.trai.ch/forge/internal/adapters/network"
	"go.trai.ch/forge/internal/adapters/registry"
	"go.trai.ch/forge/internal/adapters/telemetry"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/server"
)

// fakeProcess stands in for the compiler executable. With autoComplete set, every
// job finishes as soon as it is submitted and successful jobs write their output.
type fakeProcess struct {
	mu           sync.Mutex
	autoComplete bool
	failing      map[string]bool
	jobs         []domain.CompileJob
	handles      []*fakeHandle
}

func newFakeProcess() *fakeProcess {
	return &fakeProcess{autoComplete: true, failing: make(map[string]bool)}
}

func (p *fakeProcess) Submit(job domain.CompileJob) (ports.ProcessHandle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	h := &fakeHandle{job: job}
	p.jobs = append(p.jobs, job)
	p.handles = append(p.handles, h)
	if p.autoComplete {
		h.finish(!p.failing[job.CompilerArgs])
	}
	return h, nil
}

func (p *fakeProcess) Jobs() []domain.CompileJob {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.CompileJob(nil), p.jobs...)
}

// FinishAll completes every outstanding job successfully.
func (p *fakeProcess) FinishAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, h := range p.handles {
		if !h.Poll() {
			h.finish(true)
		}
	}
}

type fakeHandle struct {
	mu     sync.Mutex
	job    domain.CompileJob
	done   bool
	result domain.CompileResult
}

func (h *fakeHandle) finish(succeeded bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if succeeded {
		_ = os.MkdirAll(filepath.Dir(h.job.DestinationFile), 0o750)
		_ = os.WriteFile(h.job.DestinationFile, []byte("compiled "+h.job.CompilerArgs), 0o600)
		h.result = domain.CompileResult{Succeeded: true, Output: "Compiled " + h.job.CompilerArgs}
	} else {
		h.result = domain.CompileResult{ExitCode: 2, Output: "Error: bad input"}
	}
	h.done = true
}

func (h *fakeHandle) Poll() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.done
}

func (h *fakeHandle) Collect() domain.CompileResult {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.result
}

func (h *fakeHandle) Wait() {}

type harness struct {
	ctx      context.Context
	settings *domain.Settings
	db       *ledger.Database
	net      *network.Loopback
	proc     *fakeProcess
	srv      *server.Server
}

func testSettings(root string) *domain.Settings {
	return &domain.Settings{
		RawResourcePath:              filepath.Join(root, "raw"),
		CompiledResourcePath:         filepath.Join(root, "compiled"),
		PackagedBuildPath:            filepath.Join(root, "packaged"),
		CompiledResourceDatabasePath: ":memory:",
		CompilerExecutablePath:       "/opt/forge/compiler",
		MaxSimultaneousCompilations:  2,
		TickInterval:                 10 * time.Millisecond,
		CompletedRequestRetention:    0,
		Compilers: []domain.Compiler{
			{Name: "Texture", Version: 3, OutputTypes: []domain.ResourceTypeID{"tex"}, InputFileRequired: true},
			{Name: "Material", Version: 1, OutputTypes: []domain.ResourceTypeID{"mat"}, InputFileRequired: true},
			{
				Name: "Entity", Version: 2, InputFileRequired: true,
				OutputTypes:  []domain.ResourceTypeID{"map"},
				VirtualTypes: []domain.ResourceTypeID{"ent"},
			},
			{Name: "Script", Version: 0, OutputTypes: []domain.ResourceTypeID{"lua"}},
		},
		RequiredResources: []domain.ResourceID{domain.NewResourceID("data://engine/default.tex")},
	}
}

func newHarness(t *testing.T, tracer ports.Tracer, opts ...func(*domain.Settings)) *harness {
	t.Helper()
	return newMonitoredHarness(t, tracer, nil, opts...)
}

func newMonitoredHarness(
	t *testing.T,
	tracer ports.Tracer,
	monitor ports.FileMonitor,
	opts ...func(*domain.Settings),
) *harness {
	t.Helper()

	settings := testSettings(t.TempDir())
	for _, opt := range opts {
		opt(settings)
	}
	require.NoError(t, os.MkdirAll(settings.RawResourcePath, 0o750))

	if tracer == nil {
		tracer = telemetry.NewNoOpTracer()
	}

	log := logger.NewWithWriter(io.Discard)
	h := &harness{
		ctx:      context.Background(),
		settings: settings,
		db:       ledger.New(log),
		net:      network.NewLoopback(),
		proc:     newFakeProcess(),
	}
	h.srv = server.New(log, h.db, h.net, descriptor.NewReader(), h.proc, monitor, tracer)

	reg, err := registry.New(settings.Compilers)
	require.NoError(t, err)
	require.NoError(t, h.srv.Initialize(h.ctx, settings, reg))
	t.Cleanup(func() { _ = h.srv.Shutdown() })
	return h
}

func (h *harness) writeSource(t *testing.T, path, content string) string {
	t.Helper()
	file := domain.ResourcePath(path).ToFileSystemPath(h.settings.RawResourcePath)
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o750))
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))
	return file
}

func (h *harness) compiledPath(path string) string {
	return domain.ResourcePath(path).ToFileSystemPath(h.settings.CompiledResourcePath)
}

func (h *harness) request(path string, origin domain.RequestOrigin) domain.RequestHandle {
	var client uint32
	if origin == domain.OriginExternal {
		client = network.LoopbackClientID
	}
	return h.srv.CreateResourceRequest(h.ctx, domain.NewResourceID(path), client, origin)
}

func (h *harness) get(t *testing.T, handle domain.RequestHandle) domain.CompilationRequest {
	t.Helper()
	req, ok := h.srv.Request(handle)
	require.True(t, ok, "request was cleaned up")
	return req
}

// runUntilIdle ticks until no request is outstanding.
func (h *harness) runUntilIdle(t *testing.T) {
	t.Helper()
	for range 50 {
		h.srv.Update(h.ctx)
		if h.srv.PendingRequests() == 0 && h.srv.ActiveRequests() == 0 {
			return
		}
	}
	t.Fatal("server did not become idle")
}
