package factory_test

import (
	"testing"

	"github.com/mickamy/factorygen/factory"
)

func TestMySQLPlaceholder(t *testing.T) {
	t.Parallel()

	for _, index := range []int{1, 2, 10} {
		if got := factory.MySQL.Placeholder(index); got != "?" {
			t.Errorf("Placeholder(%d) = %q, want %q", index, got, "?")
		}
	}
}

func TestMySQLUseReturning(t *testing.T) {
	t.Parallel()

	if factory.MySQL.UseReturning() {
		t.Error("MySQL.UseReturning() = true, want false")
	}
}

func TestPostgreSQLPlaceholder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		index int
		want  string
	}{
		{1, "$1"},
		{2, "$2"},
		{10, "$10"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := factory.PostgreSQL.Placeholder(tt.index); got != tt.want {
				t.Errorf("Placeholder(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestPostgreSQLReturningClause(t *testing.T) {
	t.Parallel()

	want := ` RETURNING "id"`
	if got := factory.PostgreSQL.ReturningClause("id"); got != want {
		t.Errorf("PostgreSQL.ReturningClause(\"id\") = %q, want %q", got, want)
	}
}

func TestSQLitePlaceholder(t *testing.T) {
	t.Parallel()

	for _, index := range []int{1, 2, 10} {
		if got := factory.SQLite.Placeholder(index); got != "?" {
			t.Errorf("Placeholder(%d) = %q, want %q", index, got, "?")
		}
	}
}

func TestSQLiteUseReturning(t *testing.T) {
	t.Parallel()

	if factory.SQLite.UseReturning() {
		t.Error("SQLite.UseReturning() = true, want false")
	}
}

func TestQuoteIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dialect factory.Dialect
		want    string
	}{
		{"MySQL", factory.MySQL, "`order`"},
		{"PostgreSQL", factory.PostgreSQL, `"order"`},
		{"SQLite", factory.SQLite, `"order"`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.dialect.QuoteIdent("order"); got != tt.want {
				t.Errorf("QuoteIdent = %q, want %q", got, tt.want)
			}
		})
	}
}
