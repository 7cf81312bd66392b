package factory

import "context"

// Association is a "belongs to" reference from a child factory to a parent
// that may or may not have been inserted yet. It holds at most one of:
//
//   - an existing persisted parent model, owned by the caller and shared
//     freely between sibling factories without triggering a second insert
//   - a pending parent factory, owned by the association and inserted
//     exactly once when the child resolves it
//
// The zero Association is empty and cannot resolve; constructors produced
// by factorygen (and hand-written NewXxxFactory functions) populate a
// Pending default instead.
type Association[M any, ID comparable, F Factory[M, ID]] struct {
	existing *M
	pending  *F
}

// Existing returns an Association pointing at an already-persisted model.
// Resolving it never writes to the database; the caller keeps ownership of
// the record and several child factories may share it.
func Existing[M any, ID comparable, F Factory[M, ID]](m *M) Association[M, ID, F] {
	return Association[M, ID, F]{existing: m}
}

// Pending returns an Association owning a not-yet-persisted parent factory.
// Resolving it inserts the parent and yields the fresh primary key. Each
// Pending value owns its factory, so two factories built from separate
// defaults insert two separate parent rows.
func Pending[M any, ID comparable, F Factory[M, ID]](f F) Association[M, ID, F] {
	return Association[M, ID, F]{pending: &f}
}

// Model returns the existing persisted model, if that variant is active.
func (a Association[M, ID, F]) Model() (*M, bool) {
	return a.existing, a.existing != nil
}

// Factory returns the pending parent factory, if that variant is active.
func (a Association[M, ID, F]) Factory() (F, bool) {
	if a.pending == nil {
		var zero F
		return zero, false
	}
	return *a.pending, true
}

// Resolve turns the association into the parent's primary key, inserting
// the pending parent first when needed.
//
// The existing branch is a pure read. The pending branch inserts a copy of
// the owned factory value, so the association itself stays intact: a failed
// insert leaves no half-consumed state behind. Nested associations resolve
// depth-first, because each Insert resolves its own associations before
// assembling its row.
func (a Association[M, ID, F]) Resolve(ctx context.Context, db Querier) (ID, error) {
	switch {
	case a.existing != nil:
		var f F
		return f.IDForModel(a.existing), nil
	case a.pending != nil:
		f := *a.pending
		m, err := f.Insert(ctx, db)
		if err != nil {
			var zero ID
			return zero, err
		}
		return f.IDForModel(&m), nil
	default:
		var zero ID
		return zero, ErrEmptyAssociation
	}
}
