// Package storage defines the persistence the fortune service relies on.
// Every write is a single statement whose outcome is decided by the database
// (the ledger key, the user unique keys, river's unique jobs), so no caller
// needs a transaction.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

// AllStorage is every domain capability a storage backend provides.
type AllStorage interface {
	UserStorage
	LedgerStorage
	JobStorage
}

// Storage is a storage backend with its lifecycle.
type Storage interface {
	AllStorage

	// Close releases the connection pool. The instance must not be used afterwards.
	Close() error
}
