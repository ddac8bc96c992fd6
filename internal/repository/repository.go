package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

// Order selects the creation-time ordering of a project listing.
type Order string

const (
	// OrderAsc lists projects oldest first (public view).
	OrderAsc Order = "ASC"
	// OrderDesc lists projects newest first (admin view).
	OrderDesc Order = "DESC"
)
