package config

// Settingsfile represents the structure of the forge.yaml configuration file.
type Settingsfile struct {
	RawResourcePath              string `yaml:"rawResourcePath"`
	CompiledResourcePath         string `yaml:"compiledResourcePath"`
	PackagedBuildPath            string `yaml:"packagedBuildPath"`
	CompiledResourceDatabasePath string `yaml:"compiledResourceDatabasePath"`
	CompilerExecutablePath       string `yaml:"compilerExecutablePath"`
	ServerAddress                string `yaml:"serverAddress"`

	MaxSimultaneousCompilations int    `yaml:"maxSimultaneousCompilations"`
	TickInterval                string `yaml:"tickInterval"`
	CompletedRequestRetention   string `yaml:"completedRequestRetention"`
	CleanupInterval             string `yaml:"cleanupInterval"`
	Watch                       *bool  `yaml:"watch"`

	Compilers []CompilerDTO `yaml:"compilers"`
	Packaging PackagingDTO  `yaml:"packaging"`
}

// CompilerDTO represents a compiler definition in the configuration.
type CompilerDTO struct {
	Name              string   `yaml:"name"`
	Version           int      `yaml:"version"`
	Types             []string `yaml:"types"`
	VirtualTypes      []string `yaml:"virtualTypes"`
	InputFileRequired *bool    `yaml:"inputFileRequired"`
}

// PackagingDTO represents the packaging section of the configuration.
type PackagingDTO struct {
	RequiredResources []string `yaml:"requiredResources"`
	Maps              []string `yaml:"maps"`
}
