package domain

import "time"

// Settings is the resolved server configuration. Paths are absolute.
type Settings struct {
	RawResourcePath              string
	CompiledResourcePath         string
	PackagedBuildPath            string
	CompiledResourceDatabasePath string
	CompilerExecutablePath       string
	ServerAddress                string

	MaxSimultaneousCompilations int
	TickInterval                time.Duration
	CompletedRequestRetention   time.Duration
	CleanupInterval             time.Duration
	Watch                       bool

	Compilers []Compiler

	// RequiredResources are packaged unconditionally for the engine and game modules.
	RequiredResources []ResourceID
	// PackagedMaps is the initial selection of maps to package.
	PackagedMaps []ResourceID
}
