// Package gen parses factory struct declarations and renders the
// generated builder, insert, and id-projection code for them.
package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strings"

	"github.com/mickamy/factorygen/internal/naming"
)

// FieldInfo holds parsed metadata for one plain struct field.
type FieldInfo struct {
	Name   string // Go field name, e.g. "Name"
	Column string // DB column name from `db:"name"` tag
	GoType string // Go type as string, e.g. "string", "time.Time"
}

// AssocInfo holds parsed metadata for one Association field.
type AssocInfo struct {
	FieldName   string // Go field name, e.g. "Country"
	Column      string // FK column, e.g. "country_id"
	ModelType   string // parent model type, e.g. "model.Country"
	IDType      string // parent id type, e.g. "int64"
	FactoryType string // parent factory type, e.g. "CountryFactory"
	Optional    bool   // true for *factory.Association fields (NULL FK)
}

// StructInfo holds parsed metadata for one factory struct, plus the
// generator settings the CLI fills in.
type StructInfo struct {
	Name    string      // factory struct name, e.g. "CityFactory"
	Package string      // package name, e.g. "factories"
	Fields  []FieldInfo // plain db fields, in declaration order
	Assocs  []AssocInfo // association fields, in declaration order

	// Filled in by the caller (CLI flags / inference).
	ModelType string // e.g. "model.City"
	TableName string // e.g. "cities"
	PKColumn  string // e.g. "id"
	IDType    string // e.g. "int64"

	// Import paths of the source file, keyed by package qualifier. Used to
	// carry the model package import into the generated file.
	Imports map[string]string
}

// Parse reads the Go file at path and returns the StructInfo for the
// named factory struct.
func Parse(filePath, typeName string) (*StructInfo, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}

	imports := make(map[string]string)
	for _, imp := range file.Imports {
		path := strings.Trim(imp.Path.Value, `"`)
		name := path
		if i := strings.LastIndex(path, "/"); i >= 0 {
			name = path[i+1:]
		}
		if imp.Name != nil {
			name = imp.Name.Name
		}
		imports[name] = path
	}

	var info *StructInfo
	ast.Inspect(file, func(n ast.Node) bool {
		ts, ok := n.(*ast.TypeSpec)
		if !ok || ts.Name.Name != typeName {
			return true
		}
		st, ok := ts.Type.(*ast.StructType)
		if !ok {
			return true
		}
		info = &StructInfo{
			Name:    typeName,
			Package: file.Name.Name,
			Imports: imports,
		}
		for _, field := range st.Fields.List {
			parseField(info, field)
		}
		return false
	})

	if info == nil {
		return nil, fmt.Errorf("struct %s not found in %s", typeName, filePath)
	}
	if len(info.Fields) == 0 && len(info.Assocs) == 0 {
		return nil, fmt.Errorf("struct %s has no usable fields", typeName)
	}
	return info, nil
}

func parseField(info *StructInfo, field *ast.Field) {
	if len(field.Names) == 0 {
		return // embedded field, skip
	}
	name := field.Names[0].Name
	if !field.Names[0].IsExported() {
		return
	}

	column := tagColumn(field)
	if column == "-" {
		return // explicitly skipped
	}

	typ := field.Type
	optional := false
	if star, ok := typ.(*ast.StarExpr); ok {
		typ = star.X
		optional = true
	}

	if model, id, fac, ok := associationArgs(typ); ok {
		if column == "" {
			column = naming.CamelToSnake(name) + "_id"
		}
		info.Assocs = append(info.Assocs, AssocInfo{
			FieldName:   name,
			Column:      column,
			ModelType:   model,
			IDType:      id,
			FactoryType: fac,
			Optional:    optional,
		})
		return
	}

	if column == "" {
		column = naming.CamelToSnake(name)
	}
	info.Fields = append(info.Fields, FieldInfo{
		Name:   name,
		Column: column,
		GoType: typeToString(field.Type),
	})
}

// tagColumn returns the column from a db tag, "-" for skipped fields, or
// "" when no tag is present.
func tagColumn(field *ast.Field) string {
	if field.Tag == nil {
		return ""
	}
	tag := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
	dbTag, ok := tag.Lookup("db")
	if !ok {
		return ""
	}
	return strings.Split(dbTag, ",")[0]
}

// associationArgs recognizes factory.Association[Model, ID, Factory] and
// returns its three type arguments.
func associationArgs(expr ast.Expr) (model, id, fac string, ok bool) {
	idx, isIdx := expr.(*ast.IndexListExpr)
	if !isIdx || len(idx.Indices) != 3 {
		return "", "", "", false
	}
	sel, isSel := idx.X.(*ast.SelectorExpr)
	if !isSel || sel.Sel.Name != "Association" {
		return "", "", "", false
	}
	if pkg, isIdent := sel.X.(*ast.Ident); !isIdent || pkg.Name != "factory" {
		return "", "", "", false
	}
	return typeToString(idx.Indices[0]), typeToString(idx.Indices[1]), typeToString(idx.Indices[2]), true
}

func typeToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return typeToString(t.X) + "." + t.Sel.Name
	case *ast.StarExpr:
		return "*" + typeToString(t.X)
	case *ast.ArrayType:
		if t.Len == nil {
			return "[]" + typeToString(t.Elt)
		}
		return fmt.Sprintf("[%s]%s", typeToString(t.Len), typeToString(t.Elt))
	case *ast.IndexExpr:
		return typeToString(t.X) + "[" + typeToString(t.Index) + "]"
	case *ast.IndexListExpr:
		args := make([]string, len(t.Indices))
		for i, a := range t.Indices {
			args[i] = typeToString(a)
		}
		return typeToString(t.X) + "[" + strings.Join(args, ", ") + "]"
	default:
		return fmt.Sprintf("%T", expr)
	}
}
