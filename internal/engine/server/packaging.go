package server

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// RefreshAvailableMapList scans the raw resource tree for maps.
func (s *Server) RefreshAvailableMapList() {
	root := s.settings.RawResourcePath
	maps := make([]domain.ResourceID, 0, len(s.availableMaps))

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), "."+domain.MapResourceTypeID.String()) {
			return nil
		}
		id := domain.ResourceIDFromPath(domain.ResourcePathFromFileSystemPath(root, path))
		if id.IsValid() {
			maps = append(maps, id)
		}
		return nil
	})
	if err != nil {
		s.logger.Debug("failed to scan for maps", "root", root, "error", err.Error())
	}

	slices.SortFunc(maps, func(a, b domain.ResourceID) int {
		return strings.Compare(a.String(), b.String())
	})
	s.availableMaps = maps
}

// AvailableMaps returns the maps found by the last RefreshAvailableMapList.
func (s *Server) AvailableMaps() []domain.ResourceID {
	return slices.Clone(s.availableMaps)
}

// AddMapToPackagingList selects a map for the next packaging run.
func (s *Server) AddMapToPackagingList(id domain.ResourceID) error {
	if !id.IsValid() || id.TypeID() != domain.MapResourceTypeID {
		return zerr.With(domain.ErrNotAMap, "resource", id.String())
	}
	if !slices.Contains(s.mapsToBePackaged, id) {
		s.mapsToBePackaged = append(s.mapsToBePackaged, id)
	}
	return nil
}

// RemoveMapFromPackagingList deselects a map.
func (s *Server) RemoveMapFromPackagingList(id domain.ResourceID) error {
	if !id.IsValid() || id.TypeID() != domain.MapResourceTypeID {
		return zerr.With(domain.ErrNotAMap, "resource", id.String())
	}
	s.mapsToBePackaged = slices.DeleteFunc(s.mapsToBePackaged, func(m domain.ResourceID) bool {
		return m == id
	})
	return nil
}

// MapsToBePackaged returns the selected maps.
func (s *Server) MapsToBePackaged() []domain.ResourceID {
	return slices.Clone(s.mapsToBePackaged)
}

// CanStartPackaging reports whether StartPackaging would succeed.
func (s *Server) CanStartPackaging() bool {
	return !s.isPackaging && s.packageResources.IsEmpty() && len(s.mapsToBePackaged) > 0
}

// IsPackaging reports whether a packaging run is in progress.
func (s *Server) IsPackaging() bool {
	return s.isPackaging
}

// PackagedResources returns the closure of the running packaging run, in
// submission order.
func (s *Server) PackagedResources() []domain.ResourceID {
	return slices.Clone(s.packageOrder)
}

// StartPackaging submits a Package request for every required resource and every
// resource reachable from the selected maps.
func (s *Server) StartPackaging(ctx context.Context) error {
	if s.isPackaging || !s.packageResources.IsEmpty() {
		return domain.ErrPackagingInProgress
	}
	if len(s.mapsToBePackaged) == 0 {
		return domain.ErrNothingToPackage
	}

	s.packageCompleted.Clear()
	s.packageFailed = 0

	for _, id := range s.settings.RequiredResources {
		s.addPackageResource(id)
	}
	walked := mapset.NewThreadUnsafeSet[domain.ResourceID]()
	for _, id := range s.mapsToBePackaged {
		s.enqueueForPackaging(id, walked)
	}

	s.logger.Info("packaging started",
		"maps", len(s.mapsToBePackaged),
		"resources", len(s.packageOrder),
		"destination", s.settings.PackagedBuildPath,
	)

	for _, id := range s.packageOrder {
		s.CreateResourceRequest(ctx, id, 0, domain.OriginPackage)
	}

	s.isPackaging = true
	return nil
}

func (s *Server) addPackageResource(id domain.ResourceID) {
	if s.packageResources.Add(id) {
		s.packageOrder = append(s.packageOrder, id)
	}
}

// enqueueForPackaging adds id and everything it references, for types with a compiler.
// walked holds the resources whose references were already followed; it is separate
// from the closure so required resources reached from a map are followed too.
func (s *Server) enqueueForPackaging(id domain.ResourceID, walked mapset.Set[domain.ResourceID]) {
	if !s.registry.HasCompilerForType(id.TypeID()) {
		return
	}
	if !walked.Add(id) {
		return
	}
	s.addPackageResource(id)

	source := id.Path().ToFileSystemPath(s.settings.RawResourcePath)
	refs, err := s.reader.ReadReferencedResources(source)
	if err != nil {
		s.logger.Debug("no referenced resources", "resource", id.String(), "error", err.Error())
		return
	}
	for _, ref := range refs {
		s.enqueueForPackaging(ref, walked)
	}
}

// PackagingFailures returns the number of failed Package requests of the running
// or most recent packaging run.
func (s *Server) PackagingFailures() int {
	return s.packageFailed
}

func (s *Server) finishPackaging() {
	s.logger.Info("packaging complete", "resources", len(s.packageOrder), "failed", s.packageFailed)

	s.packageResources.Clear()
	s.packageCompleted.Clear()
	s.packageOrder = nil
	s.isPackaging = false
}
