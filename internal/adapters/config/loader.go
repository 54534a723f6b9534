// Package config provides the settings loader for forge.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var countCores = cpu.Counts

// defaultWorkers is the number of physical cores, or of logical cores when the
// platform does not report physical ones.
func defaultWorkers() int {
	if n, err := countCores(false); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

const (
	defaultTickInterval              = 10 * time.Millisecond
	defaultCompletedRequestRetention = 30 * time.Second
	defaultCleanupInterval           = time.Minute
	defaultPackagedBuildDir          = "packaged"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the settings file and returns the resolved settings.
func (l *Loader) Load(cwd, explicitPath string) (*domain.Settings, error) {
	configPath := explicitPath
	if configPath == "" {
		var err error
		configPath, err = findSettingsFile(cwd)
		if err != nil {
			return nil, err
		}
	} else if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(cwd, configPath)
	}

	var file Settingsfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	settings, err := l.resolve(filepath.Dir(configPath), &file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return settings, nil
}

func findSettingsFile(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.SettingsFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrSettingsNotFound, "cwd", cwd)
}

func (l *Loader) resolve(baseDir string, file *Settingsfile) (*domain.Settings, error) {
	if file.RawResourcePath == "" {
		return nil, zerr.With(domain.ErrMissingSetting, "key", "rawResourcePath")
	}
	if file.CompiledResourcePath == "" {
		return nil, zerr.With(domain.ErrMissingSetting, "key", "compiledResourcePath")
	}
	if file.CompilerExecutablePath == "" {
		return nil, zerr.With(domain.ErrMissingSetting, "key", "compilerExecutablePath")
	}

	s := &domain.Settings{
		RawResourcePath:              resolvePath(baseDir, file.RawResourcePath),
		CompiledResourcePath:         resolvePath(baseDir, file.CompiledResourcePath),
		PackagedBuildPath:            resolvePath(baseDir, file.PackagedBuildPath),
		CompiledResourceDatabasePath: resolvePath(baseDir, file.CompiledResourceDatabasePath),
		CompilerExecutablePath:       resolvePath(baseDir, file.CompilerExecutablePath),
		ServerAddress:                file.ServerAddress,
		MaxSimultaneousCompilations:  file.MaxSimultaneousCompilations,
		Watch:                        file.Watch == nil || *file.Watch,
	}

	if s.PackagedBuildPath == "" {
		s.PackagedBuildPath = filepath.Join(baseDir, defaultPackagedBuildDir)
	}
	if s.CompiledResourceDatabasePath == "" {
		s.CompiledResourceDatabasePath = filepath.Join(s.CompiledResourcePath, domain.DefaultDatabaseFileName)
	}
	if s.ServerAddress == "" {
		s.ServerAddress = domain.DefaultServerAddress
	}

	switch {
	case s.MaxSimultaneousCompilations < 0:
		return nil, zerr.With(domain.ErrInvalidSetting, "key", "maxSimultaneousCompilations")
	case s.MaxSimultaneousCompilations == 0:
		s.MaxSimultaneousCompilations = defaultWorkers()
	}

	var err error
	if s.TickInterval, err = parseDuration("tickInterval", file.TickInterval, defaultTickInterval); err != nil {
		return nil, err
	}
	if s.TickInterval <= 0 {
		return nil, zerr.With(domain.ErrInvalidSetting, "key", "tickInterval")
	}
	if s.CompletedRequestRetention, err = parseDuration(
		"completedRequestRetention", file.CompletedRequestRetention, defaultCompletedRequestRetention,
	); err != nil {
		return nil, err
	}
	if s.CleanupInterval, err = parseDuration("cleanupInterval", file.CleanupInterval, defaultCleanupInterval); err != nil {
		return nil, err
	}

	if s.Compilers, err = buildCompilers(file.Compilers); err != nil {
		return nil, err
	}
	if s.RequiredResources, err = l.resourceIDs("packaging.requiredResources", file.Packaging.RequiredResources); err != nil {
		return nil, err
	}
	if s.PackagedMaps, err = l.resourceIDs("packaging.maps", file.Packaging.Maps); err != nil {
		return nil, err
	}

	return s, nil
}

func buildCompilers(dtos []CompilerDTO) ([]domain.Compiler, error) {
	compilers := make([]domain.Compiler, 0, len(dtos))
	for i := range dtos {
		dto := &dtos[i]
		if dto.Name == "" {
			return nil, zerr.With(domain.ErrMissingSetting, "key", "compilers.name")
		}
		if dto.Version < 0 {
			err := zerr.With(domain.ErrInvalidCompilerVersion, "compiler", dto.Name)
			return nil, zerr.With(err, "version", dto.Version)
		}

		compilers = append(compilers, domain.Compiler{
			Name:              dto.Name,
			Version:           dto.Version,
			OutputTypes:       typeIDs(dto.Types),
			VirtualTypes:      typeIDs(dto.VirtualTypes),
			InputFileRequired: dto.InputFileRequired == nil || *dto.InputFileRequired,
		})
	}
	return compilers, nil
}

func typeIDs(raw []string) []domain.ResourceTypeID {
	if len(raw) == 0 {
		return nil
	}
	ids := make([]domain.ResourceTypeID, len(raw))
	for i, t := range raw {
		ids[i] = domain.ResourceTypeID(strings.ToLower(strings.TrimSpace(t)))
	}
	return ids
}

func (l *Loader) resourceIDs(key string, raw []string) ([]domain.ResourceID, error) {
	ids := make([]domain.ResourceID, 0, len(raw))
	for _, s := range raw {
		id := domain.NewResourceID(s)
		if !id.IsValid() {
			err := zerr.With(domain.ErrInvalidResourceID, "key", key)
			return nil, zerr.With(err, "value", s)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 && key == "packaging.requiredResources" {
		l.Logger.Debug("no required resources configured for packaging")
	}
	return ids, nil
}

func parseDuration(key, raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		err := zerr.With(domain.ErrInvalidSetting, "key", key)
		return 0, zerr.With(err, "value", raw)
	}
	return d, nil
}

func resolvePath(baseDir, p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(baseDir, p))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered or given on the command line
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrSettingsReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrSettingsParseFailed.Error())
	}

	return nil
}
