// Package sqlite persists key-value slots in a SQLite database.
package sqlite
