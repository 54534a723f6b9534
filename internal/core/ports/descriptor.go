package ports

import "go.trai.ch/forge/internal/core/domain"

// DependencyReader extracts resource references from descriptor files without
// deserializing the descriptor itself.
//
//go:generate go run go.uber.org/mock/mockgen -source=descriptor.go -destination=mocks/mock_descriptor.go -package=mocks
type DependencyReader interface {
	// ReadCompileDependencies returns the declared compile dependencies of the file.
	ReadCompileDependencies(path string) ([]domain.ResourcePath, error)

	// ReadReferencedResources returns every resource referenced anywhere in the file.
	ReadReferencedResources(path string) ([]domain.ResourceID, error)
}
