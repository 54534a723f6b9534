package descriptor

import (
	"os"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Reader implements ports.DependencyReader over descriptor files on disk.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadCompileDependencies returns the compile dependencies declared by the descriptor at path.
func (r *Reader) ReadCompileDependencies(path string) ([]domain.ResourcePath, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	deps, err := ParseCompileDependencies(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return deps, nil
}

// ReadReferencedResources returns every resource referenced by the descriptor at path.
func (r *Reader) ReadReferencedResources(path string) ([]domain.ResourceID, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	ids, err := ParseReferencedResources(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return ids, nil
}

func readFile(path string) ([]byte, error) {
	// #nosec G304 -- path is derived from a validated resource path
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDescriptorRead.Error()), "path", path)
	}
	return data, nil
}
