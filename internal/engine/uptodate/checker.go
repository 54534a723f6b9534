// Package uptodate decides whether a compiled resource still matches its sources.
package uptodate

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// Checker compares the current state of a resource's sources against its ledger record.
type Checker struct {
	registry ports.CompilerRegistry
	database ports.CompiledResourceDatabase
	reader   ports.DependencyReader
	logger   ports.Logger

	rawRoot      string
	compiledRoot string

	now func() time.Time
}

// NewChecker creates a checker resolving sources under rawRoot and compiled
// resources under compiledRoot.
func NewChecker(
	registry ports.CompilerRegistry,
	database ports.CompiledResourceDatabase,
	reader ports.DependencyReader,
	logger ports.Logger,
	rawRoot, compiledRoot string,
) *Checker {
	return &Checker{
		registry:     registry,
		database:     database,
		reader:       reader,
		logger:       logger,
		rawRoot:      rawRoot,
		compiledRoot: compiledRoot,
		now:          time.Now,
	}
}

// Fingerprint computes the inputs the request would be compiled from. The bool
// reports whether every compile dependency exists and every compileable
// dependency is itself up to date.
//
// The dependency hash covers all dependencies even after one is found stale,
// so a record written after compiling matches the next check.
func (c *Checker) Fingerprint(req *domain.CompilationRequest, deps []domain.ResourcePath) (domain.Fingerprint, bool) {
	version := c.registry.VersionForType(req.ResourceID.TypeID())
	if version < 0 {
		panic(fmt.Sprintf("no compiler version for resource type %q", req.ResourceID.TypeID()))
	}

	fp := domain.Fingerprint{CompilerVersion: version}
	fp.SourceTimestamp, _ = modTime(req.SourceFile)

	t := newTraversal(req.ResourceID)
	depsUpToDate := true
	for _, dep := range deps {
		depID := domain.ResourceIDFromPath(dep)
		if depsUpToDate && c.registry.IsCompileableType(depID.TypeID()) && !c.isUpToDate(depID, t) {
			depsUpToDate = false
		}

		ts, ok := modTime(dep.ToFileSystemPath(c.rawRoot))
		if !ok {
			depsUpToDate = false
		}
		fp.DependencyTimestampHash += ts
	}
	return fp, depsUpToDate
}

// CheckRequest runs the up-to-date check for a pending request. The request's
// fingerprint and check timestamps are always recorded; when the compiled
// resource is current the request completes with StatusUpToDate.
func (c *Checker) CheckRequest(req *domain.CompilationRequest, deps []domain.ResourcePath) bool {
	if !req.IsPending() {
		panic(fmt.Sprintf("up-to-date check on %s request %s", req.Status, req.ResourceID))
	}

	req.UpToDateCheckStarted = c.now()
	defer func() { req.UpToDateCheckFinished = c.now() }()

	fp, upToDate := c.Fingerprint(req, deps)
	req.Fingerprint = fp

	if upToDate {
		upToDate = c.database.GetRecord(req.ResourceID).Matches(fp)
	}
	if upToDate && !fileExists(req.DestinationFile) {
		upToDate = false
	}

	if upToDate {
		req.Succeed("Resource up to date! (%s)", req.SourceFile)
		req.Status = domain.StatusUpToDate
	}
	return upToDate
}

// IsResourceUpToDate reports whether the compiled resource for id matches its
// sources, its compile dependencies and the ledger.
func (c *Checker) IsResourceUpToDate(id domain.ResourceID) bool {
	return c.isUpToDate(id, newTraversal())
}

func (c *Checker) isUpToDate(id domain.ResourceID, t *traversal) bool {
	if !t.push(id) {
		c.logger.Warn("compile dependency cycle detected, treating resource as out of date",
			"resource", id.String(),
			"cycle", t.cycle(id),
		)
		return false
	}
	defer t.pop()

	if !fileExists(id.Path().ToFileSystemPath(c.compiledRoot)) {
		return false
	}

	version := c.registry.VersionForType(id.TypeID())
	if version < 0 {
		panic(fmt.Sprintf("no compiler version for resource type %q", id.TypeID()))
	}

	sourceFile := id.Path().ToFileSystemPath(c.rawRoot)
	sourceTimestamp, ok := modTime(sourceFile)
	if !ok {
		return false
	}

	deps, err := c.reader.ReadCompileDependencies(sourceFile)
	if err != nil {
		return false
	}

	var hash uint64
	for _, dep := range deps {
		// A missing dependency contributes zero; the ledger comparison catches it.
		ts, _ := modTime(dep.ToFileSystemPath(c.rawRoot))
		hash += ts

		depID := domain.ResourceIDFromPath(dep)
		if c.registry.IsCompileableType(depID.TypeID()) && !c.isUpToDate(depID, t) {
			return false
		}
	}

	return c.database.GetRecord(id).Matches(domain.Fingerprint{
		CompilerVersion:         version,
		SourceTimestamp:         sourceTimestamp,
		DependencyTimestampHash: hash,
	})
}

// traversal tracks the resources currently being checked in one recursive walk.
type traversal struct {
	stack   []domain.ResourceID
	onStack map[uint64]struct{}
}

func newTraversal(roots ...domain.ResourceID) *traversal {
	t := &traversal{onStack: make(map[uint64]struct{})}
	for _, id := range roots {
		t.push(id)
	}
	return t
}

// push returns false when id is already being checked.
func (t *traversal) push(id domain.ResourceID) bool {
	if _, ok := t.onStack[id.Hash()]; ok {
		return false
	}
	t.onStack[id.Hash()] = struct{}{}
	t.stack = append(t.stack, id)
	return true
}

func (t *traversal) pop() {
	last := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	delete(t.onStack, last.Hash())
}

// cycle renders the chain from the first occurrence of id back to id.
func (t *traversal) cycle(id domain.ResourceID) string {
	parts := make([]string, 0, len(t.stack)+1)
	started := false
	for _, s := range t.stack {
		if s.Hash() == id.Hash() {
			started = true
		}
		if started {
			parts = append(parts, s.String())
		}
	}
	parts = append(parts, id.String())
	return strings.Join(parts, " -> ")
}

func modTime(path string) (uint64, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false
	}
	return uint64(info.ModTime().UnixNano()), true //nolint:gosec // timestamps after 1970
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
