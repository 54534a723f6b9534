package ports

import "go.trai.ch/forge/internal/core/domain"

// CompiledResourceDatabase is the persistent ledger of successfully compiled resources.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CompiledResourceDatabase interface {
	// Connect opens the database at path, creating it if needed.
	Connect(path string) error

	// IsConnected reports whether Connect succeeded and Close was not called.
	IsConnected() bool

	// GetRecord returns the record for id, or the invalid record if there is none.
	GetRecord(id domain.ResourceID) domain.CompiledResourceRecord

	// WriteRecord stores the record, replacing any previous record for the same resource.
	WriteRecord(record domain.CompiledResourceRecord) error

	// DeleteRecord removes the record for id. Deleting a missing record is not an error.
	DeleteRecord(id domain.ResourceID) error

	// Close releases the database connection.
	Close() error
}
