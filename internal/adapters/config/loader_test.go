package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/config"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), domain.PrivateFilePerm))
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

const fullSettings = `
rawResourcePath: raw
compiledResourcePath: compiled
packagedBuildPath: /opt/build
compilerExecutablePath: bin/resourcecompiler
serverAddress: 127.0.0.1:7000
maxSimultaneousCompilations: 3
tickInterval: 5ms
completedRequestRetention: 10s
cleanupInterval: 2m
watch: false
compilers:
  - name: Texture
    version: 4
    types: [tex]
  - name: Entity
    version: 1
    types: [map, ent]
    virtualTypes: [ecol]
    inputFileRequired: false
packaging:
  requiredResources:
    - data://engine/default.tex
  maps:
    - data://maps/level1.map
`

func TestLoader_Load(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.SettingsFileName, fullSettings)

	s, err := newLoader(t).Load(root, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "raw"), s.RawResourcePath)
	assert.Equal(t, filepath.Join(root, "compiled"), s.CompiledResourcePath)
	assert.Equal(t, "/opt/build", s.PackagedBuildPath)
	assert.Equal(t, filepath.Join(root, "compiled", domain.DefaultDatabaseFileName), s.CompiledResourceDatabasePath)
	assert.Equal(t, filepath.Join(root, "bin", "resourcecompiler"), s.CompilerExecutablePath)
	assert.Equal(t, "127.0.0.1:7000", s.ServerAddress)
	assert.Equal(t, 3, s.MaxSimultaneousCompilations)
	assert.Equal(t, 5*time.Millisecond, s.TickInterval)
	assert.Equal(t, 10*time.Second, s.CompletedRequestRetention)
	assert.Equal(t, 2*time.Minute, s.CleanupInterval)
	assert.False(t, s.Watch)

	require.Len(t, s.Compilers, 2)
	assert.Equal(t, domain.Compiler{
		Name:              "Texture",
		Version:           4,
		OutputTypes:       []domain.ResourceTypeID{"tex"},
		InputFileRequired: true,
	}, s.Compilers[0])
	assert.Equal(t, []domain.ResourceTypeID{"ecol"}, s.Compilers[1].VirtualTypes)
	assert.False(t, s.Compilers[1].InputFileRequired)

	assert.Equal(t, []domain.ResourceID{domain.NewResourceID("data://engine/default.tex")}, s.RequiredResources)
	assert.Equal(t, []domain.ResourceID{domain.NewResourceID("data://maps/level1.map")}, s.PackagedMaps)
}

func TestLoader_Load_Defaults(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.SettingsFileName, `
rawResourcePath: raw
compiledResourcePath: compiled
compilerExecutablePath: rc
`)

	config.SetCoreCounter(t, func(logical bool) (int, error) {
		assert.False(t, logical)
		return 6, nil
	})

	s, err := newLoader(t).Load(root, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "packaged"), s.PackagedBuildPath)
	assert.Equal(t, domain.DefaultServerAddress, s.ServerAddress)
	assert.Equal(t, 6, s.MaxSimultaneousCompilations)
	assert.Equal(t, 10*time.Millisecond, s.TickInterval)
	assert.True(t, s.Watch)
	assert.Empty(t, s.Compilers)
	assert.Empty(t, s.RequiredResources)
}

func TestLoader_Load_Discovery(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.SettingsFileName, fullSettings)

	nested := filepath.Join(root, "raw", "textures", "stone")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	s, err := newLoader(t).Load(nested, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "raw"), s.RawResourcePath)
}

func TestLoader_Load_ExplicitPath(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "conf")
	require.NoError(t, os.MkdirAll(sub, domain.DirPerm))
	createFile(t, sub, "server.yaml", fullSettings)

	s, err := newLoader(t).Load(root, "conf/server.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(sub, "raw"), s.RawResourcePath)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
	}{
		{
			name:        "malformed yaml",
			content:     "rawResourcePath: [",
			expectedErr: domain.ErrSettingsParseFailed,
		},
		{
			name:        "missing raw path",
			content:     "compiledResourcePath: c\ncompilerExecutablePath: rc\n",
			expectedErr: domain.ErrMissingSetting,
		},
		{
			name:        "missing compiler executable",
			content:     "rawResourcePath: r\ncompiledResourcePath: c\n",
			expectedErr: domain.ErrMissingSetting,
		},
		{
			name:        "bad duration",
			content:     "rawResourcePath: r\ncompiledResourcePath: c\ncompilerExecutablePath: rc\ntickInterval: soon\n",
			expectedErr: domain.ErrInvalidSetting,
		},
		{
			name:        "zero tick interval",
			content:     "rawResourcePath: r\ncompiledResourcePath: c\ncompilerExecutablePath: rc\ntickInterval: 0s\n",
			expectedErr: domain.ErrInvalidSetting,
		},
		{
			name:        "negative workers",
			content:     "rawResourcePath: r\ncompiledResourcePath: c\ncompilerExecutablePath: rc\nmaxSimultaneousCompilations: -1\n",
			expectedErr: domain.ErrInvalidSetting,
		},
		{
			name: "negative compiler version",
			content: "rawResourcePath: r\ncompiledResourcePath: c\ncompilerExecutablePath: rc\n" +
				"compilers:\n  - name: Texture\n    version: -2\n    types: [tex]\n",
			expectedErr: domain.ErrInvalidCompilerVersion,
		},
		{
			name: "invalid packaged map",
			content: "rawResourcePath: r\ncompiledResourcePath: c\ncompilerExecutablePath: rc\n" +
				"packaging:\n  maps: [maps/level1.map]\n",
			expectedErr: domain.ErrInvalidResourceID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			createFile(t, root, domain.SettingsFileName, tt.content)

			s, err := newLoader(t).Load(root, "")
			require.Error(t, err)
			require.ErrorContains(t, err, tt.expectedErr.Error())
			assert.Nil(t, s)
		})
	}
}

func TestLoader_Load_NotFound(t *testing.T) {
	_, err := newLoader(t).Load(t.TempDir(), "")
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrSettingsNotFound.Error())
}

func TestLoader_Load_WorkersFallBackToLogicalCores(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.SettingsFileName, `
rawResourcePath: raw
compiledResourcePath: compiled
compilerExecutablePath: rc
`)

	for name, counter := range map[string]func(bool) (int, error){
		"error": func(bool) (int, error) { return 0, errors.New("no cpuinfo") },
		"zero":  func(bool) (int, error) { return 0, nil },
	} {
		t.Run(name, func(t *testing.T) {
			config.SetCoreCounter(t, counter)

			s, err := newLoader(t).Load(root, "")
			require.NoError(t, err)
			assert.Equal(t, runtime.NumCPU(), s.MaxSimultaneousCompilations)
		})
	}
}
