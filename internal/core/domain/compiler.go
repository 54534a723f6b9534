package domain

// Compiler describes a resource compiler known to the server.
type Compiler struct {
	// Name is the human readable compiler name.
	Name string
	// Version is bumped whenever the compiler output changes; it invalidates ledger records.
	Version int
	// OutputTypes are the resource types produced by this compiler.
	OutputTypes []ResourceTypeID
	// VirtualTypes are logical-only types: requests for them succeed without compiling.
	VirtualTypes []ResourceTypeID
	// InputFileRequired reports whether the source file must exist before compiling.
	InputFileRequired bool
}

// CompileJob is the work handed to an external compiler process.
type CompileJob struct {
	Request         RequestHandle
	ResourceID      ResourceID
	Executable      string
	CompilerArgs    string
	DestinationFile string
	ForPackaging    bool
}

// CompileResult is what a compiler process reports once it exits.
type CompileResult struct {
	Succeeded bool
	ExitCode  int
	Output    string
}

// WorkerState is the state of one compiler worker.
type WorkerState uint8

const (
	// WorkerIdle indicates no request is bound to the worker.
	WorkerIdle WorkerState = iota
	// WorkerBusy indicates a compiler process is running for the bound request.
	WorkerBusy
	// WorkerComplete indicates the process exited and the result awaits collection.
	WorkerComplete
)

func (s WorkerState) String() string {
	switch s {
	case WorkerIdle:
		return "Idle"
	case WorkerBusy:
		return "Busy"
	case WorkerComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// BusyState is a snapshot of the server's progress through the current burst of requests.
type BusyState struct {
	TotalRequests     int
	CompletedRequests int
	IsBusy            bool
}
