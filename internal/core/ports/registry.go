package ports

import "go.trai.ch/forge/internal/core/domain"

// CompilerRegistry maps resource types to the compilers producing them.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type CompilerRegistry interface {
	// CompilerForType returns the compiler owning typeID, as output or virtual type.
	CompilerForType(typeID domain.ResourceTypeID) (*domain.Compiler, bool)

	// HasCompilerForType reports whether some compiler owns typeID.
	HasCompilerForType(typeID domain.ResourceTypeID) bool

	// IsVirtualType reports whether typeID is a logical-only type.
	IsVirtualType(typeID domain.ResourceTypeID) bool

	// VersionForType returns the version of the compiler owning typeID, or -1.
	VersionForType(typeID domain.ResourceTypeID) int

	// IsCompileableType reports whether typeID is valid, not virtual and has a compiler.
	IsCompileableType(typeID domain.ResourceTypeID) bool
}
