package repository

import "strings"

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// placeholders returns "?, ?, ?" for n arguments.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// inClause appends "AND column IN (...)" for a non-empty value list.
func inClause[T ~string](query *strings.Builder, args *[]any, column string, vals []T) {
	if len(vals) == 0 {
		return
	}
	query.WriteString(" AND " + column + " IN (" + placeholders(len(vals)) + ")")
	for _, v := range vals {
		*args = append(*args, string(v))
	}
}

func joinCorpus(words []string) string {
	return strings.Join(words, " ")
}

func splitCorpus(s string) []string {
	return strings.Fields(s)
}

