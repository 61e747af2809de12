package util

import (
	"database/sql"
)

// NullString converts a string to sql.NullString.
// An empty string is stored as NULL.
func NullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// StringOrEmpty returns the string of a NullString, or "" for NULL.
func StringOrEmpty(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}
