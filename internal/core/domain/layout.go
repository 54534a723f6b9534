package domain

const (
	// SettingsFileName is the name of the server configuration file.
	SettingsFileName = "forge.yaml"

	// DefaultDatabaseFileName is the ledger file used when no database path is configured.
	DefaultDatabaseFileName = "compiledResources.db"

	// DefaultServerAddress is the address the network front-end listens on.
	DefaultServerAddress = "127.0.0.1:5556"

	// CompilerCompileFlag is passed to the compiler executable before the resource path.
	CompilerCompileFlag = "-compile"

	// CompilerPackageFlag marks compiles whose output goes to the packaged build.
	CompilerPackageFlag = "-package"

	// CompilerOutputFlag is passed to the compiler executable before the destination file.
	CompilerOutputFlag = "-out"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)
