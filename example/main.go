package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"

	"github.com/mickamy/factorygen/example/factories"
	"github.com/mickamy/factorygen/factory"
)

var schema = []string{
	`CREATE TABLE countries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE cities (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		country_id INTEGER NOT NULL REFERENCES countries(id)
	)`,
	`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		city_id INTEGER NOT NULL REFERENCES cities(id),
		country_id INTEGER REFERENCES countries(id)
	)`,
}

func main() {
	ctx := context.Background()

	db := openDB(ctx)
	defer func() { _ = db.Close() }()

	// Shared parent: two cities pointing at one persisted country.
	fmt.Println("--- SHARED COUNTRY ---")
	country, err := factories.NewCountryFactory().WithName("Netherlands").Insert(ctx, db)
	if err != nil {
		log.Fatalf("insert country: %v", err)
	}
	fmt.Printf("Created: %+v\n", country)

	amsterdam, err := factories.NewCityFactory().WithName("Amsterdam").WithCountry(&country).Insert(ctx, db)
	if err != nil {
		log.Fatalf("insert Amsterdam: %v", err)
	}
	hague, err := factories.NewCityFactory().WithName("The Hague").WithCountry(&country).Insert(ctx, db)
	if err != nil {
		log.Fatalf("insert The Hague: %v", err)
	}
	fmt.Printf("Created: %+v\n", amsterdam)
	fmt.Printf("Created: %+v\n", hague)
	fmt.Printf("Countries in DB: %d\n", count(ctx, db, "countries"))

	// Default chain: one call inserts user, city, and country.
	fmt.Println("\n--- DEFAULT CHAIN ---")
	user, err := factories.NewUserFactory().Insert(ctx, db)
	if err != nil {
		log.Fatalf("insert user: %v", err)
	}
	fmt.Printf("Created: %+v\n", user)
	fmt.Printf("Cities in DB: %d\n", count(ctx, db, "cities"))

	// Optional association: country_id stays NULL.
	fmt.Println("\n--- OPTIONAL ASSOCIATION ---")
	stateless, err := factories.NewUserFactory().WithName("Nomad").WithoutCountry().Insert(ctx, db)
	if err != nil {
		log.Fatalf("insert user without country: %v", err)
	}
	fmt.Printf("Created: %+v (CountryID=%v)\n", stateless, stateless.CountryID)

	// Transaction rollback: nothing inserted inside survives.
	fmt.Println("\n--- TRANSACTION ROLLBACK ---")
	before := count(ctx, db, "users")
	err = db.Transaction(ctx, func(tx *factory.Tx) error {
		if _, err := factories.NewUserFactory().Insert(ctx, tx); err != nil {
			return err
		}
		return fmt.Errorf("roll everything back")
	})
	fmt.Printf("Transaction returned: %v\n", err)
	fmt.Printf("Users before=%d after=%d\n", before, count(ctx, db, "users"))
}

func openDB(ctx context.Context) *factory.DB {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	// one connection so every statement sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	for _, stmt := range schema {
		if _, err := sqlDB.ExecContext(ctx, stmt); err != nil {
			log.Fatalf("create table: %v", err)
		}
	}
	return factory.New(sqlDB, factory.SQLite)
}

func count(ctx context.Context, db *factory.DB, table string) int {
	rows, err := db.QueryContext(ctx, "SELECT COUNT(*) FROM "+table)
	if err != nil {
		log.Fatalf("count %s: %v", table, err)
	}
	defer func() { _ = rows.Close() }()
	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			log.Fatalf("scan count: %v", err)
		}
	}
	return n
}
