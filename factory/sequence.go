package factory

import "sync/atomic"

// Counter is a concurrency-safe source of unique numbers. The zero value
// is ready to use; Next never returns the same number twice.
type Counter struct {
	n atomic.Int64
}

// Next increments the counter and returns the new value. Under concurrent
// callers every call observes a distinct number; ordering between callers
// is not guaranteed.
func (c *Counter) Next() int64 {
	return c.n.Add(1)
}

// defaultCounter backs Sequence. One counter per process, never reset.
var defaultCounter Counter

// Sequence passes a process-wide unique number to f and returns the
// result. Use it to mint values that must not collide across records
// inserted in the same test run:
//
//	email := factory.Sequence(func(n int64) string {
//		return fmt.Sprintf("user-%d@example.com", n)
//	})
func Sequence[T any](f func(n int64) T) T {
	return f(defaultCounter.Next())
}

// SequenceFrom is Sequence with a caller-owned Counter, for suites that
// want an isolated number space instead of the shared process counter.
func SequenceFrom[T any](c *Counter, f func(n int64) T) T {
	return f(c.Next())
}
