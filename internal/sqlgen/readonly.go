package sqlgen

import (
	"strings"
	"unicode"
)

// writeKeywords are statement keywords that disqualify a query from execution.
// Matched as whole tokens so column names like "created_at" pass.
var writeKeywords = map[string]struct{}{
	"INSERT":   {},
	"UPDATE":   {},
	"DELETE":   {},
	"DROP":     {},
	"ALTER":    {},
	"CREATE":   {},
	"TRUNCATE": {},
	"GRANT":    {},
	"REVOKE":   {},
	"MERGE":    {},
	"COPY":     {},
}

// IsReadQuery reports whether the query is a single read-only statement.
// The guard is deliberately conservative: the SQL comes from a language model
// and must be treated as untrusted input.
func IsReadQuery(query string) bool {
	q := strings.TrimSpace(query)
	q = strings.TrimSuffix(q, ";")
	if q == "" {
		return false
	}

	// A second statement after the first semicolon is never allowed.
	if strings.Contains(q, ";") {
		return false
	}

	upper := strings.ToUpper(q)
	if !strings.HasPrefix(upper, "SELECT") && !strings.HasPrefix(upper, "WITH") {
		return false
	}

	tokens := strings.FieldsFunc(upper, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	for _, tok := range tokens {
		if _, banned := writeKeywords[tok]; banned {
			return false
		}
	}

	return true
}
