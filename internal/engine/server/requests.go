package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// CreateResourceRequest admits a request for id. Requests that can be resolved
// without a compiler complete immediately and notify their clients before this
// method returns; the others are queued.
func (s *Server) CreateResourceRequest(
	ctx context.Context,
	id domain.ResourceID,
	clientID uint32,
	origin domain.RequestOrigin,
) domain.RequestHandle {
	invariant(s.database.IsConnected(), "request created without a ledger connection")

	req := &domain.CompilationRequest{
		ResourceID: id,
		Origin:     origin,
		ClientID:   clientID,
		Status:     domain.StatusPending,
	}

	_, span := s.tracer.Start(ctx, "resource request")
	span.SetAttribute("resource", id.String())
	span.SetAttribute("origin", origin.String())
	span.SetAttribute("client", clientID)

	if id.IsValid() {
		if origin == domain.OriginExternal {
			invariant(clientID != 0, "external request for %s without a client", id)
		} else {
			invariant(clientID == 0, "%s request for %s with client %d", origin, id, clientID)
		}
		s.prepareRequest(req)
	} else {
		req.Fail("Error: Invalid resource ID (%s)", id)
	}

	h := s.arena.alloc(req, span)
	if req.IsPending() {
		s.pending = append(s.pending, h)
	} else {
		invariant(req.IsComplete(), "request for %s is neither pending nor complete", id)
		s.complete(h)
	}

	s.numRequested++
	return h
}

// prepareRequest resolves the paths of a request and runs every check that can
// complete it without a compiler.
func (s *Server) prepareRequest(req *domain.CompilationRequest) {
	path := req.ResourceID.Path()
	req.SourceFile = path.ToFileSystemPath(s.settings.RawResourcePath)
	req.CompilerArgs = path.String()
	if req.Origin == domain.OriginPackage {
		req.DestinationFile = path.ToFileSystemPath(s.settings.PackagedBuildPath)
	} else {
		req.DestinationFile = path.ToFileSystemPath(s.settings.CompiledResourcePath)
	}

	typeID := req.ResourceID.TypeID()
	if s.registry.IsVirtualType(typeID) {
		req.Succeed("Virtual Resource (%s) - Nothing to do!", req.SourceFile)
		return
	}

	compiler, ok := s.registry.CompilerForType(typeID)
	if !ok {
		req.Fail("Error: No compiler found for resource type (%s)!", req.ResourceID)
		return
	}

	sourceExists := fileExists(req.SourceFile)
	if compiler.InputFileRequired && !sourceExists {
		req.Fail("Error: Source file (%s) doesnt exist!", req.SourceFile)
		return
	}

	destinationDir := filepath.Dir(req.DestinationFile)
	if err := os.MkdirAll(destinationDir, domain.DirPerm); err != nil {
		req.Fail("Error: Destination path (%s) doesnt exist!", destinationDir)
		return
	}

	if isReadOnly(req.DestinationFile) {
		req.Fail("Error: Destination file (%s) is read-only!", req.DestinationFile)
		return
	}

	var deps []domain.ResourcePath
	if sourceExists && typeID != domain.MapResourceTypeID {
		var err error
		deps, err = s.reader.ReadCompileDependencies(req.SourceFile)
		if err != nil {
			req.Fail("%s", err.Error())
			req.Fail("Error: failed to read compile dependencies!")
			return
		}
	}

	if req.Origin == domain.OriginManualCompile {
		req.Fingerprint, _ = s.checker.Fingerprint(req, deps)
		return
	}
	s.checker.CheckRequest(req, deps)
}

func (s *Server) startCompile(h domain.RequestHandle) {
	req := s.arena.get(h)
	invariant(req.IsPending(), "starting %s request %s", req.Status, req.ResourceID)

	req.Status = domain.StatusCompiling
	req.CompilationStarted = s.now()

	_, ok := s.pool.Dispatch(domain.CompileJob{
		Request:         h,
		ResourceID:      req.ResourceID,
		CompilerArgs:    req.CompilerArgs,
		DestinationFile: req.DestinationFile,
		ForPackaging:    req.Origin == domain.OriginPackage,
	})
	invariant(ok, "no idle worker for %s", req.ResourceID)

	s.logger.Debug("compiling resource", "resource", req.ResourceID.String(), "origin", req.Origin.String())
}

func (s *Server) finishCompile(h domain.RequestHandle, result domain.CompileResult) {
	req := s.arena.get(h)
	invariant(req.IsCompiling(), "completing %s request %s", req.Status, req.ResourceID)

	req.CompilationFinished = s.now()
	req.Log = result.Output
	if result.Succeeded {
		req.Status = domain.StatusSucceeded
		s.writeRecord(req)
	} else {
		req.Fail("Error: Compiler exited with code %d", result.ExitCode)
	}

	idx := slices.Index(s.active, h)
	invariant(idx >= 0, "completed request %s is not active", req.ResourceID)
	s.active = slices.Delete(s.active, idx, idx+1)

	s.complete(h)
}

func (s *Server) writeRecord(req *domain.CompilationRequest) {
	record := domain.CompiledResourceRecord{ResourceID: req.ResourceID, Fingerprint: req.Fingerprint}
	if err := s.database.WriteRecord(record); err != nil {
		s.logger.Error(zerr.With(err, "resource", req.ResourceID.String()))
	}
}

// complete moves a finished request to the completed list, notifies clients and
// ends its span.
func (s *Server) complete(h domain.RequestHandle) {
	req := s.arena.get(h)
	req.CompletedAt = s.now()
	s.completed = append(s.completed, h)

	s.notify(req)
	s.logCompletion(req)

	span := s.arena.span(h)
	span.SetAttribute("status", req.Status.String())
	if req.HasFailed() {
		span.RecordError(errors.New(lastLine(req.Log)))
	}
	span.End()
}

func (s *Server) notify(req *domain.CompilationRequest) {
	msg := domain.ResourceNotification{ResourceID: req.ResourceID.String()}
	if req.HasSucceeded() {
		msg.FilePath = req.DestinationFile
	}

	if !req.IsInternal() {
		msg.Kind = domain.NotificationRequestComplete
		msg.ClientID = req.ClientID
		s.network.Send(msg)
		return
	}

	if req.Origin == domain.OriginPackage {
		s.packageCompleted.Add(req.ResourceID)
		if req.HasFailed() {
			s.packageFailed++
		}
	}

	msg.Kind = domain.NotificationResourceUpdated
	for _, client := range s.network.ConnectedClients() {
		msg.ClientID = client
		s.network.Send(msg)
	}
}

func (s *Server) logCompletion(req *domain.CompilationRequest) {
	args := []any{"resource", req.ResourceID.String(), "origin", req.Origin.String()}
	switch req.Status {
	case domain.StatusSucceeded:
		if req.CompilationFinished.IsZero() {
			s.logger.Debug(lastLine(req.Log), args...)
			return
		}
		s.logger.Info("compiled resource", append(args, "duration", req.CompilationDuration().Round(time.Millisecond))...)
	case domain.StatusUpToDate:
		s.logger.Debug(lastLine(req.Log), args...)
	case domain.StatusFailed:
		s.logger.Warn(lastLine(req.Log), args...)
	default:
		panic(fmt.Sprintf("logging completion of %s request", req.Status))
	}
}

// discard drops a request that never completed.
func (s *Server) discard(h domain.RequestHandle) {
	span := s.arena.span(h)
	span.SetAttribute("status", "Discarded")
	span.End()
	s.arena.release(h)
}

// cleanupCompletedRequests drops completed requests that finished more than
// retention ago. A zero retention drops all of them.
func (s *Server) cleanupCompletedRequests(retention time.Duration) {
	cutoff := s.now().Add(-retention)
	kept := s.completed[:0]
	for _, h := range s.completed {
		invariant(!slices.Contains(s.active, h) && !slices.Contains(s.pending, h),
			"completed request %d/%d is still queued", h.Index, h.Generation)

		req := s.arena.get(h)
		if retention > 0 && req.CompletedAt.After(cutoff) {
			kept = append(kept, h)
			continue
		}
		s.arena.release(h)
	}
	clear(s.completed[len(kept):])
	s.completed = kept
}

// Request returns a copy of the request behind h. It returns false once the
// request was cleaned up.
func (s *Server) Request(h domain.RequestHandle) (domain.CompilationRequest, bool) {
	slot, ok := s.arena.lookup(h)
	if !ok {
		return domain.CompilationRequest{}, false
	}
	return *slot.request, true
}

// CompletedRequests returns copies of the retained completed requests, oldest first.
func (s *Server) CompletedRequests() []domain.CompilationRequest {
	out := make([]domain.CompilationRequest, 0, len(s.completed))
	for _, h := range s.completed {
		out = append(out, *s.arena.get(h))
	}
	return out
}

// PendingRequests returns the number of requests waiting for a worker.
func (s *Server) PendingRequests() int {
	return len(s.pending)
}

// ActiveRequests returns the number of requests bound to a worker.
func (s *Server) ActiveRequests() int {
	return len(s.active)
}

// MaxSimultaneousCompilations returns the number of workers.
func (s *Server) MaxSimultaneousCompilations() int {
	return s.maxConcurrent
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isReadOnly(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0o200 == 0
}

func lastLine(log string) string {
	log = strings.TrimRight(log, "\n")
	if i := strings.LastIndexByte(log, '\n'); i >= 0 {
		return log[i+1:]
	}
	return log
}
