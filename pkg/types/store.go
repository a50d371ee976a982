package types

import "errors"

// Store defines the interface for backend-agnostic roster storage.
// Callers attach to a backend, obtain the teachers table, and detach when done.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, table operations return ErrStoreDetached.
	Detach() error

	// Teachers returns the table holding Teacher records.
	Teachers() (Table, error)
}

// Filter narrows Table.Fetch. A nil or empty filter matches every record.
// Recognised keys: FilterIsActive (bool).
type Filter map[string]any

// Filter keys accepted by Table.Fetch.
const (
	FilterIsActive = "is_active"
)

// Table provides CRUD operations over Teacher records.
type Table interface {
	// Get retrieves the teacher with the given ID.
	// Returns ErrNotFound if no teacher exists with that ID.
	Get(id string) (*Teacher, error)

	// Insert stores a new teacher. The ID must already be assigned
	// (see NewTeacher). Returns ErrAlreadyExists if the ID is taken.
	Insert(t *Teacher) error

	// Update replaces the stored fields of an existing teacher.
	// Returns ErrNotFound if the teacher does not exist.
	Update(t *Teacher) error

	// Delete removes the teacher with the given ID.
	// Returns ErrNotFound if no teacher exists with that ID.
	Delete(id string) error

	// Fetch returns all teachers matching the filter in insertion order.
	// Never returns a nil slice on success.
	Fetch(filter Filter) ([]*Teacher, error)
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Table operation errors.
var (
	ErrNotFound      = errors.New("teacher not found")
	ErrInvalidID     = errors.New("invalid teacher ID")
	ErrInvalidData   = errors.New("invalid teacher data")
	ErrAlreadyExists = errors.New("teacher already exists")
	ErrInvalidFilter = errors.New("invalid filter")
)
