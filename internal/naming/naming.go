// Package naming converts between Go CamelCase identifiers and SQL
// snake_case names.
package naming

import (
	"strings"
	"unicode"
)

// CamelToSnake converts a CamelCase string to snake_case. Consecutive
// uppercase letters (acronyms) are kept together:
// "ID" → "id", "CountryID" → "country_id", "HTTPServer" → "http_server".
func CamelToSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				next := rune(0)
				if i+1 < len(runes) {
					next = runes[i+1]
				}
				if unicode.IsLower(prev) || (unicode.IsUpper(prev) && unicode.IsLower(next)) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SnakeToCamel converts a snake_case string to CamelCase. A trailing "id"
// segment becomes "ID": "country_id" → "CountryID".
func SnakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if p == "id" && i == len(parts)-1 {
			b.WriteString("ID")
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
