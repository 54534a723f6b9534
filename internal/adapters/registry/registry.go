// Package registry maps resource types to the compilers that produce them.
package registry

import (
	"slices"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

type entry struct {
	compiler *domain.Compiler
	virtual  bool
}

// Registry implements ports.CompilerRegistry.
type Registry struct {
	compilers []*domain.Compiler
	types     map[domain.ResourceTypeID]entry
}

// New builds a registry from the configured compilers.
func New(compilers []domain.Compiler) (*Registry, error) {
	r := &Registry{types: make(map[domain.ResourceTypeID]entry)}
	for i := range compilers {
		if err := r.Register(compilers[i]); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a compiler and claims its output and virtual types.
func (r *Registry) Register(c domain.Compiler) error {
	if c.Version < 0 {
		err := zerr.With(domain.ErrInvalidCompilerVersion, "compiler", c.Name)
		return zerr.With(err, "version", c.Version)
	}

	claimed := make(map[domain.ResourceTypeID]bool, len(c.OutputTypes)+len(c.VirtualTypes))
	claim := func(t domain.ResourceTypeID) error {
		if !t.IsValid() {
			err := zerr.With(domain.ErrInvalidResourceType, "compiler", c.Name)
			return zerr.With(err, "type", t.String())
		}
		if existing, ok := r.types[t]; ok || claimed[t] {
			err := zerr.With(domain.ErrDuplicateResourceType, "type", t.String())
			err = zerr.With(err, "compiler", c.Name)
			if ok {
				err = zerr.With(err, "registered_by", existing.compiler.Name)
			}
			return err
		}
		claimed[t] = true
		return nil
	}

	for _, t := range c.OutputTypes {
		if err := claim(t); err != nil {
			return err
		}
	}
	for _, t := range c.VirtualTypes {
		if err := claim(t); err != nil {
			return err
		}
	}

	compiler := &c
	r.compilers = append(r.compilers, compiler)
	for _, t := range c.OutputTypes {
		r.types[t] = entry{compiler: compiler}
	}
	for _, t := range c.VirtualTypes {
		r.types[t] = entry{compiler: compiler, virtual: true}
	}
	return nil
}

// CompilerForType returns the compiler owning typeID.
func (r *Registry) CompilerForType(typeID domain.ResourceTypeID) (*domain.Compiler, bool) {
	e, ok := r.types[typeID]
	if !ok {
		return nil, false
	}
	return e.compiler, true
}

// HasCompilerForType reports whether some compiler owns typeID.
func (r *Registry) HasCompilerForType(typeID domain.ResourceTypeID) bool {
	_, ok := r.types[typeID]
	return ok
}

// IsVirtualType reports whether typeID is a logical-only type.
func (r *Registry) IsVirtualType(typeID domain.ResourceTypeID) bool {
	return r.types[typeID].virtual
}

// VersionForType returns the compiler version for typeID, or -1.
func (r *Registry) VersionForType(typeID domain.ResourceTypeID) int {
	e, ok := r.types[typeID]
	if !ok {
		return -1
	}
	return e.compiler.Version
}

// IsCompileableType reports whether typeID is valid, not virtual and has a compiler.
func (r *Registry) IsCompileableType(typeID domain.ResourceTypeID) bool {
	if !typeID.IsValid() {
		return false
	}
	e, ok := r.types[typeID]
	return ok && !e.virtual
}

// Compilers returns the registered compilers in registration order.
func (r *Registry) Compilers() []*domain.Compiler {
	return slices.Clone(r.compilers)
}
