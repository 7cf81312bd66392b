package factory

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

var errMockQueryRows = errors.New("mock: QueryContext rows are not implemented")

// TestQuerier is a mock Querier that records executed statements and hands
// out sequential insert ids. Exported for use in the factory_test package.
type TestQuerier struct {
	D       Dialect
	Queries []TestQuery

	// FailOn makes ExecContext return FailErr for any statement whose SQL
	// contains the substring.
	FailOn  string
	FailErr error

	nextID int64
}

// TestQuery holds a captured statement and its args.
type TestQuery struct {
	SQL  string
	Args []any
}

// NewTestQuerier creates a TestQuerier with the given Dialect.
func NewTestQuerier(d Dialect) *TestQuerier {
	return &TestQuerier{D: d}
}

func (tq *TestQuerier) QueryContext(_ context.Context, query string, args ...any) (*sql.Rows, error) {
	tq.Queries = append(tq.Queries, TestQuery{query, args})
	return nil, errMockQueryRows
}

func (tq *TestQuerier) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	tq.Queries = append(tq.Queries, TestQuery{query, args})
	if tq.FailOn != "" && strings.Contains(query, tq.FailOn) {
		err := tq.FailErr
		if err == nil {
			err = errors.New("mock: forced failure")
		}
		return nil, err
	}
	tq.nextID++
	return testResult{id: tq.nextID}, nil
}

var _ Querier = (*TestQuerier)(nil)

// LastQuery returns the most recently captured statement.
func (tq *TestQuerier) LastQuery() TestQuery {
	return tq.Queries[len(tq.Queries)-1]
}

func (tq *TestQuerier) dialect() Dialect { return tq.D }

type testResult struct{ id int64 }

func (r testResult) LastInsertId() (int64, error) { return r.id, nil }
func (testResult) RowsAffected() (int64, error)   { return 1, nil }
