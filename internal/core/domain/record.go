package domain

// Fingerprint captures the inputs a compiled resource was produced from.
type Fingerprint struct {
	// CompilerVersion is the version of the compiler registered for the resource type.
	CompilerVersion int
	// SourceTimestamp is the modification time of the source file, in nanoseconds.
	SourceTimestamp uint64
	// DependencyTimestampHash is the wrapping sum of the compile dependencies' source timestamps.
	// The sum is order-independent; distinct timestamp sets may collide.
	DependencyTimestampHash uint64
}

// CompiledResourceRecord is the ledger entry for a resource that compiled successfully.
// The zero value is the invalid record returned for resources that were never compiled.
type CompiledResourceRecord struct {
	ResourceID  ResourceID
	Fingerprint Fingerprint
}

// IsValid reports whether the record came from the ledger.
func (r CompiledResourceRecord) IsValid() bool {
	return r.ResourceID.IsValid()
}

// Matches reports whether the record was produced from the given fingerprint.
func (r CompiledResourceRecord) Matches(fp Fingerprint) bool {
	return r.IsValid() && r.Fingerprint == fp
}
