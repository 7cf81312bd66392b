// Command factorygen generates builder setters, association setters, and
// the Insert / IDForModel methods for test-data factory structs. It is
// meant to be run through go:generate:
//
//	//go:generate go tool factorygen -type=CityFactory -model=model.City
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/mickamy/factorygen/internal/gen"
	"github.com/mickamy/factorygen/internal/naming"
)

var version = "dev"

func main() {
	typeName := flag.String("type", "", "factory struct type name (required)")
	modelType := flag.String("model", "", "model type the factory inserts, e.g. model.City (required)")
	tableName := flag.String("table", "", "table name (optional; inferred from -model if omitted)")
	pkColumn := flag.String("pk", "id", "primary key column")
	idType := flag.String("id", "int64", "primary key Go type")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("factorygen", version)
		return
	}

	if *typeName == "" {
		log.Fatal("-type flag is required")
	}
	if *modelType == "" {
		log.Fatal("-model flag is required")
	}

	if *tableName == "" {
		*tableName = inferTableName(*modelType)
	}

	goFile := os.Getenv("GOFILE")
	if goFile == "" {
		log.Fatal("GOFILE environment variable is not set (run via go:generate)")
	}

	info, err := gen.Parse(goFile, *typeName)
	if err != nil {
		log.Fatalf("parse: %v", err)
	}

	info.ModelType = *modelType
	info.TableName = *tableName
	info.PKColumn = *pkColumn
	info.IDType = *idType

	src, err := gen.Render(info)
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	outFile := strings.ToLower(*typeName) + "_gen.go"
	outPath := filepath.Join(filepath.Dir(goFile), outFile)

	if err := os.WriteFile(outPath, src, 0o644); err != nil { //nolint:gosec // generated code should be world-readable
		log.Fatalf("write %s: %v", outPath, err)
	}

	fmt.Printf("factorygen: wrote %s\n", outPath)
}

// inferTableName converts a model type to a snake_case plural table name.
// e.g. "model.City" -> "cities", "UserProfile" -> "user_profiles"
func inferTableName(modelType string) string {
	base := modelType
	if i := strings.LastIndex(base, "."); i >= 0 {
		base = base[i+1:]
	}
	return inflection.Plural(naming.CamelToSnake(base))
}
