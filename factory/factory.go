// Package factory is the runtime for factorygen-generated test-data
// factories. A factory is a value type holding default field values for
// one database record; tests override individual fields through generated
// setters and call Insert to persist the record (and, recursively, any
// not-yet-persisted parent records it references).
package factory

import "context"

// Factory is the contract every generated factory satisfies. M is the
// model type the factory inserts and ID the type of its primary key.
type Factory[M any, ID comparable] interface {
	// Insert persists the factory's record and returns the hydrated model.
	// The receiver is taken by value, so the call operates on a copy; the
	// original factory value is never mutated by an insert, failed or not.
	//
	// Insert always attempts the write. Deduplication of shared parents is
	// the caller's job via Association sharing, never the factory's.
	Insert(ctx context.Context, db Querier) (M, error)

	// IDForModel extracts the primary key from a persisted model. It must
	// be a pure projection, callable on the factory type's zero value.
	IDForModel(m *M) ID
}
