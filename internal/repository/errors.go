// Package repository defines the storage error taxonomy shared by all
// backends. Services translate these into client-facing errors.
package repository

import "errors"

var (
	// ErrNotFound means a lookup by identity missed.
	ErrNotFound = errors.New("not found")
	// ErrUniqueViolation means a write hit a unique constraint (e.g. duplicate email).
	ErrUniqueViolation = errors.New("unique constraint violation")
	// ErrForeignKeyViolation means a write referenced an owner that does not exist.
	ErrForeignKeyViolation = errors.New("referenced owner does not exist")
)
