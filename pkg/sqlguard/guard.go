package sqlguard

import (
	"regexp"
	"strings"

	"catalog-chat-be/internal/apperror"
)

// The SQL text comes from an untrusted external model, so validation is the
// one safety-critical boundary: exactly one read-only SELECT touching only
// allow-listed tables ever reaches the database.

var forbiddenKeywords = []string{
	"insert", "update", "delete", "drop", "alter", "create", "truncate",
	"grant", "revoke", "replace", "merge", "attach", "detach", "pragma",
	"vacuum", "exec", "execute", "call", "copy", "into",
}

var (
	keywordRes = compileKeywordRes()
	fromJoinRe = regexp.MustCompile(`(?i)\b(?:from|join)\b`)
	identRe    = regexp.MustCompile(`^[a-zA-Z_"][a-zA-Z0-9_.""]*`)
)

// Words that can follow a table item without being its alias. "from" and
// "join" are included so a following clause starts a fresh scan instead of
// being swallowed.
var clauseKeywords = map[string]bool{
	"select": true, "from": true, "where": true, "join": true, "inner": true,
	"left": true, "right": true, "full": true, "cross": true, "natural": true,
	"on": true, "using": true, "group": true, "order": true, "having": true,
	"limit": true, "offset": true, "union": true, "intersect": true,
	"except": true, "window": true,
}

func compileKeywordRes() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(forbiddenKeywords))
	for _, kw := range forbiddenKeywords {
		res[kw] = regexp.MustCompile(`(?i)\b` + kw + `\b`)
	}
	return res
}

// Validate rejects anything that is not a single read-only SELECT scoped to
// the allowed tables. It never touches the database.
func Validate(sqlText string, allowedTables []string) error {
	stmt := strings.TrimSpace(sqlText)
	if stmt == "" {
		return &apperror.ValidationError{Reason: "empty statement"}
	}

	// SQL comments can smuggle a second statement past keyword checks.
	if strings.Contains(stmt, "--") || strings.Contains(stmt, "/*") {
		return &apperror.ValidationError{Reason: "comments are not allowed"}
	}

	// A single trailing semicolon is tolerated; any other means a
	// multi-statement payload.
	stmt = strings.TrimSuffix(stmt, ";")
	if strings.Contains(stmt, ";") {
		return &apperror.ValidationError{Reason: "multiple statements are not allowed"}
	}

	if !strings.HasPrefix(strings.ToLower(stmt), "select") {
		return &apperror.ValidationError{Reason: "only SELECT statements are allowed"}
	}

	for _, kw := range forbiddenKeywords {
		if keywordRes[kw].MatchString(stmt) {
			return &apperror.ValidationError{Reason: "forbidden keyword: " + strings.ToUpper(kw)}
		}
	}

	tables := referencedTables(stmt)
	if len(tables) == 0 {
		// SELECT without FROM (e.g. SELECT 1) reads no tables; allow it.
		return nil
	}

	allowed := make(map[string]bool, len(allowedTables))
	for _, t := range allowedTables {
		allowed[strings.ToLower(t)] = true
	}
	for _, t := range tables {
		if !allowed[t] {
			return &apperror.ValidationError{Reason: "table not in allow-list: " + t}
		}
	}
	return nil
}

// referencedTables extracts every table named after FROM or JOIN, including
// comma-separated lists and names behind aliases. Subqueries are skipped as
// a unit; their inner FROM/JOIN clauses match independently.
func referencedTables(stmt string) []string {
	var tables []string
	for _, loc := range fromJoinRe.FindAllStringIndex(stmt, -1) {
		tables = append(tables, scanTableList(stmt, loc[1])...)
	}
	return tables
}

// scanTableList reads the list of table items starting right after a
// FROM/JOIN keyword: identifier or parenthesized subquery, optional alias,
// then optionally a comma and the next item.
func scanTableList(stmt string, pos int) []string {
	var names []string
	for {
		pos = skipSpaces(stmt, pos)
		if pos >= len(stmt) {
			return names
		}
		if stmt[pos] == '(' {
			pos = skipBalanced(stmt, pos)
		} else {
			ident := identRe.FindString(stmt[pos:])
			if ident == "" {
				return names
			}
			names = append(names, normalizeTableName(ident))
			pos += len(ident)
		}
		pos = skipAlias(stmt, pos)
		pos = skipSpaces(stmt, pos)
		if pos < len(stmt) && stmt[pos] == ',' {
			pos++
			continue
		}
		return names
	}
}

func skipSpaces(stmt string, pos int) int {
	for pos < len(stmt) {
		switch stmt[pos] {
		case ' ', '\t', '\n', '\r':
			pos++
		default:
			return pos
		}
	}
	return pos
}

func skipBalanced(stmt string, pos int) int {
	depth := 0
	for pos < len(stmt) {
		switch stmt[pos] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return pos + 1
			}
		}
		pos++
	}
	return pos
}

// skipAlias consumes an optional "alias" or "AS alias" after a table item so
// a trailing comma separator is still seen.
func skipAlias(stmt string, pos int) int {
	next := skipSpaces(stmt, pos)
	ident := identRe.FindString(stmt[next:])
	if ident == "" {
		return pos
	}
	lower := strings.ToLower(ident)
	if lower == "as" {
		next += len(ident)
		next = skipSpaces(stmt, next)
		alias := identRe.FindString(stmt[next:])
		return next + len(alias)
	}
	if clauseKeywords[lower] {
		return pos
	}
	return next + len(ident)
}

func normalizeTableName(ident string) string {
	name := strings.Trim(ident, `"`)
	// Strip an optional schema qualifier.
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return strings.ToLower(name)
}
