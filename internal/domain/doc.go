// Package domain contains the core business entities of the gradebook: the
// student record, its invariants and the errors raised when they are violated.
// It has no dependency on storage or delivery mechanisms.
package domain
