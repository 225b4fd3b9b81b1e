package uuidx

import "github.com/google/uuid"

// New generates a new UUID using the version 7 format and returns it.
// It panics if the UUID generation fails.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// NewString generates a new UUID using the version 7 format and returns it as a string.
func NewString() string {
	return New().String()
}

// Short returns the last group of the UUID's string form. Version 7 UUIDs
// start with a millisecond timestamp, so the tail is the part that tells
// two ids minted in the same millisecond apart.
func Short(id uuid.UUID) string {
	s := id.String()
	return s[len(s)-12:]
}
