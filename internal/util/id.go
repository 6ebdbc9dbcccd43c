// internal/util/id.go
package util

import "github.com/google/uuid"

// NewID generates an opaque unique identifier (UUID v4).
func NewID() string {
	return uuid.New().String()
}
