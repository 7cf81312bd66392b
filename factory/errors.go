package factory

import "errors"

// ErrEmptyAssociation is returned when resolving a zero-valued Association
// that holds neither a persisted model nor a pending factory.
var ErrEmptyAssociation = errors.New("factory: empty association")
