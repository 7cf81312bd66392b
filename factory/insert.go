package factory

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// InsertRow is the insert primitive generated factories delegate to. It
// builds a single-row INSERT for the given columns and values, executes it
// through db, and returns the auto-generated primary key.
//
// pk names the auto-increment primary key column; pass "" for tables whose
// key is supplied in columns, in which case the returned id is 0. Key
// retrieval uses RETURNING on dialects that support it and LastInsertId
// elsewhere.
//
// Failures are returned unchanged. A record either inserts fully or fails;
// there is no retry and no partial state for the caller to clean up.
func InsertRow(ctx context.Context, db Querier, table, pk string, columns []string, values []any) (int64, error) {
	if len(columns) != len(values) {
		return 0, fmt.Errorf("factory: %d columns but %d values for %s", len(columns), len(values), table)
	}

	d := db.dialect()
	query := buildInsert(d, table, columns)
	query = rewritePlaceholders(d, query)

	if pk != "" && d.UseReturning() {
		query += d.ReturningClause(pk)
		rows, err := db.QueryContext(ctx, query, values...)
		if err != nil {
			return 0, err //nolint:wrapcheck // pass through
		}
		defer func() { _ = rows.Close() }()
		if !rows.Next() {
			return 0, errors.New("factory: INSERT RETURNING returned no rows")
		}
		var id int64
		if err := rows.Scan(&id); err != nil {
			return 0, err //nolint:wrapcheck // pass through
		}
		return id, rows.Err() //nolint:wrapcheck // pass through
	}

	result, err := db.ExecContext(ctx, query, values...)
	if err != nil {
		return 0, err //nolint:wrapcheck // pass through
	}
	if pk == "" {
		return 0, nil
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err //nolint:wrapcheck // pass through
	}
	return id, nil
}

func buildInsert(d Dialect, table string, columns []string) string {
	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = d.QuoteIdent(c)
		placeholders[i] = "?"
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		d.QuoteIdent(table),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)
}

// rewritePlaceholders converts ? placeholders to dialect-specific ones.
// For MySQL and SQLite this is a no-op; for PostgreSQL ? becomes $1, $2, …
func rewritePlaceholders(d Dialect, query string) string {
	if usesQuestionPlaceholders(d) {
		return query
	}
	var b strings.Builder
	b.Grow(len(query))
	idx := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			b.WriteString(d.Placeholder(idx))
			idx++
		} else {
			b.WriteByte(query[i])
		}
	}
	return b.String()
}
