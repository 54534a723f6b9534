package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/registry"
	"go.trai.ch/forge/internal/core/domain"
)

func testCompilers() []domain.Compiler {
	return []domain.Compiler{
		{Name: "Texture", Version: 4, OutputTypes: []domain.ResourceTypeID{"tex"}, InputFileRequired: true},
		{
			Name:         "Entity",
			Version:      0,
			OutputTypes:  []domain.ResourceTypeID{"map", "ent"},
			VirtualTypes: []domain.ResourceTypeID{"ecol"},
		},
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r, err := registry.New(testCompilers())
	require.NoError(t, err)

	c, ok := r.CompilerForType("tex")
	require.True(t, ok)
	assert.Equal(t, "Texture", c.Name)

	c, ok = r.CompilerForType("ecol")
	require.True(t, ok)
	assert.Equal(t, "Entity", c.Name)

	_, ok = r.CompilerForType("wav")
	assert.False(t, ok)

	assert.True(t, r.HasCompilerForType("map"))
	assert.False(t, r.HasCompilerForType("wav"))

	assert.Equal(t, 4, r.VersionForType("tex"))
	assert.Equal(t, 0, r.VersionForType("ent"))
	assert.Equal(t, -1, r.VersionForType("wav"))

	assert.True(t, r.IsVirtualType("ecol"))
	assert.False(t, r.IsVirtualType("tex"))
	assert.False(t, r.IsVirtualType("wav"))

	assert.Len(t, r.Compilers(), 2)
}

func TestRegistry_IsCompileableType(t *testing.T) {
	r, err := registry.New(testCompilers())
	require.NoError(t, err)

	tests := []struct {
		typeID domain.ResourceTypeID
		want   bool
	}{
		{"tex", true},
		{"map", true},
		{"ecol", false},
		{"wav", false},
		{"TEX", false},
		{"toolong", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.typeID), func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsCompileableType(tt.typeID))
		})
	}
}

func TestRegistry_Register_Errors(t *testing.T) {
	tests := []struct {
		name      string
		compilers []domain.Compiler
		wantErr   error
	}{
		{
			name: "duplicate across compilers",
			compilers: []domain.Compiler{
				{Name: "A", OutputTypes: []domain.ResourceTypeID{"tex"}},
				{Name: "B", OutputTypes: []domain.ResourceTypeID{"tex"}},
			},
			wantErr: domain.ErrDuplicateResourceType,
		},
		{
			name: "output and virtual overlap",
			compilers: []domain.Compiler{
				{Name: "A", OutputTypes: []domain.ResourceTypeID{"ent"}, VirtualTypes: []domain.ResourceTypeID{"ent"}},
			},
			wantErr: domain.ErrDuplicateResourceType,
		},
		{
			name:      "negative version",
			compilers: []domain.Compiler{{Name: "A", Version: -1}},
			wantErr:   domain.ErrInvalidCompilerVersion,
		},
		{
			name:      "invalid type",
			compilers: []domain.Compiler{{Name: "A", OutputTypes: []domain.ResourceTypeID{"mesh2"}}},
			wantErr:   domain.ErrInvalidResourceType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := registry.New(tt.compilers)
			require.Error(t, err)
			require.ErrorContains(t, err, tt.wantErr.Error())
			assert.Nil(t, r)
		})
	}
}
