package descriptor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/descriptor"
	"go.trai.ch/forge/internal/core/domain"
)

func TestParseCompileDependencies(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []domain.ResourcePath
		wantErr error
	}{
		{
			name:  "dependencies",
			input: `{"compileDependencies": ["data://textures/stone.png", "data://materials/base.mtl"]}`,
			want:  []domain.ResourcePath{"data://textures/stone.png", "data://materials/base.mtl"},
		},
		{
			name: "other fields are skipped",
			input: `{
				"name": "stone",
				"settings": {"compileDependencies": ["data://nested/ignored.tex"], "sizes": [1, 2, {"x": null}]},
				"compileDependencies": ["data://textures/stone.png"],
				"trailing": true
			}`,
			want: []domain.ResourcePath{"data://textures/stone.png"},
		},
		{
			name:  "missing field",
			input: `{"name": "stone"}`,
			want:  nil,
		},
		{
			name:  "empty array",
			input: `{"compileDependencies": []}`,
			want:  nil,
		},
		{
			name:    "invalid path",
			input:   `{"compileDependencies": ["textures/stone.png"]}`,
			wantErr: domain.ErrInvalidDependencyPath,
		},
		{
			name:    "non string entry",
			input:   `{"compileDependencies": [42]}`,
			wantErr: domain.ErrInvalidDependencyPath,
		},
		{
			name:    "not an array",
			input:   `{"compileDependencies": "data://textures/stone.png"}`,
			wantErr: domain.ErrDescriptorParse,
		},
		{
			name:    "truncated field",
			input:   `{"compileDependencies": ["data://a.png"`,
			wantErr: domain.ErrDescriptorParse,
		},
		{
			name:  "not an object",
			input: `["data://textures/stone.png"]`,
			want:  nil,
		},
		{
			name:  "raw asset",
			input: "pixels\x00\x01",
			want:  nil,
		},
		{
			name:  "empty",
			input: ``,
			want:  nil,
		},
		{
			name:  "truncated before the field",
			input: `{"name": "sto`,
			want:  nil,
		},
		{
			name:  "first field wins",
			input: `{"compileDependencies": ["data://a.png"], "compileDependencies": ["data://b.png"]}`,
			want:  []domain.ResourcePath{"data://a.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := descriptor.ParseCompileDependencies([]byte(tt.input))
			if tt.wantErr != nil {
				require.Error(t, err)
				require.ErrorContains(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseReferencedResources(t *testing.T) {
	input := `{
		"data://keys/are/ignored.tex": 1,
		"entities": [
			{"mesh": "data://meshes/rock.mesh", "material": "data://materials/rock.mtl"},
			{"mesh": "data://meshes/rock.mesh", "name": "not a resource"},
			{"nested": {"deep": ["data://textures/moss.tex", "data://bad/noext", "data://Textures/Moss.tex"]}}
		],
		"count": 3,
		"enabled": false,
		"script": "data://scripts/../escape.lua"
	}`

	got, err := descriptor.ParseReferencedResources([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, []domain.ResourceID{
		domain.NewResourceID("data://meshes/rock.mesh"),
		domain.NewResourceID("data://materials/rock.mtl"),
		domain.NewResourceID("data://textures/moss.tex"),
		domain.NewResourceID("data://Textures/Moss.tex"),
	}, got)
}

func TestParseReferencedResources_Malformed(t *testing.T) {
	for _, input := range []string{
		`{"a": [`,
		`{"a": "data://textures/a.tex"`,
		`[{"b": {}}`,
		`{"a": }`,
	} {
		t.Run(input, func(t *testing.T) {
			_, err := descriptor.ParseReferencedResources([]byte(input))
			require.Error(t, err)
			require.ErrorContains(t, err, domain.ErrDescriptorParse.Error())
		})
	}
}
