// Package repository contains the catalog storage abstractions.
// Implementations live in subpackages (e.g., memory) inside this directory.
package repository

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every OutOfRangeError.
var ErrOutOfRange = errors.New("document index out of range")

// OutOfRangeError reports a lookup outside the stored documents.
// It is a user-input condition, not a storage fault.
type OutOfRangeError struct {
	Index int
	Count int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("document index %d out of range [0, %d)", e.Index, e.Count)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
