package domain

import "go.trai.ch/zerr"

var (
	// ErrSettingsNotFound is returned when no settings file can be found.
	ErrSettingsNotFound = zerr.New("could not find forge.yaml")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrMissingSetting is returned when a required setting is empty.
	ErrMissingSetting = zerr.New("missing required setting")

	// ErrInvalidSetting is returned when a setting has an invalid value.
	ErrInvalidSetting = zerr.New("invalid setting")

	// ErrDatabaseConnectFailed is returned when the compiled resource database cannot be opened.
	ErrDatabaseConnectFailed = zerr.New("failed to connect to compiled resource database")

	// ErrDatabaseNotConnected is returned when the database is used before Connect.
	ErrDatabaseNotConnected = zerr.New("compiled resource database is not connected")

	// ErrDatabaseWriteFailed is returned when a record cannot be written.
	ErrDatabaseWriteFailed = zerr.New("failed to write compiled resource record")

	// ErrDuplicateResourceType is returned when two compilers claim the same resource type.
	ErrDuplicateResourceType = zerr.New("resource type already registered")

	// ErrInvalidCompilerVersion is returned when a compiler declares a negative version.
	ErrInvalidCompilerVersion = zerr.New("compiler version must not be negative")

	// ErrInvalidResourceType is returned when a compiler declares a malformed type id.
	ErrInvalidResourceType = zerr.New("invalid resource type")

	// ErrDescriptorRead is returned when a descriptor file cannot be read.
	ErrDescriptorRead = zerr.New("failed to read descriptor")

	// ErrDescriptorParse is returned when a descriptor is not a well-formed JSON object.
	ErrDescriptorParse = zerr.New("failed to parse descriptor")

	// ErrInvalidDependencyPath is returned when a compile dependency is not a valid resource path.
	ErrInvalidDependencyPath = zerr.New("invalid compile dependency path")

	// ErrInvalidResourceID is returned when a string does not name a valid resource.
	ErrInvalidResourceID = zerr.New("invalid resource id")

	// ErrNotAMap is returned when a non-map resource is added to the packaging list.
	ErrNotAMap = zerr.New("resource is not a map")

	// ErrPackagingInProgress is returned when packaging is started twice.
	ErrPackagingInProgress = zerr.New("packaging already in progress")

	// ErrNothingToPackage is returned when packaging starts with no selected maps.
	ErrNothingToPackage = zerr.New("no maps selected for packaging")

	// ErrNetworkListenFailed is returned when the network front-end cannot bind its address.
	ErrNetworkListenFailed = zerr.New("failed to listen for resource clients")

	// ErrNetworkDialFailed is returned when a client cannot reach the server.
	ErrNetworkDialFailed = zerr.New("failed to connect to resource server")

	// ErrConnectionClosed is returned when the server closes a client stream.
	ErrConnectionClosed = zerr.New("resource server closed the connection")

	// ErrWatcherStartFailed is returned when the file system watcher cannot start.
	ErrWatcherStartFailed = zerr.New("failed to start file system watcher")

	// ErrProcessStartFailed is returned when a compiler process cannot be launched.
	ErrProcessStartFailed = zerr.New("failed to start compiler process")

	// ErrRequestsFailed is returned by one-shot commands when at least one request failed.
	ErrRequestsFailed = zerr.New("one or more resource requests failed")

	// ErrWireDecode is returned when a network message cannot be decoded.
	ErrWireDecode = zerr.New("failed to decode network message")

	// ErrWireUnsupportedType is returned when the codec is handed an unknown message type.
	ErrWireUnsupportedType = zerr.New("unsupported network message type")
)
