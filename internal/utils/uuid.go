package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for users and sessions.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random v4 if the
// clock-based generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// RandomUUIDGenerator produces fully random UUIDv4 strings for identifiers
// that must not be guessable, such as session ids.
type RandomUUIDGenerator struct {
}

func NewRandomUUIDGenerator() *RandomUUIDGenerator {
	return &RandomUUIDGenerator{}
}

func (g *RandomUUIDGenerator) Generate() string {
	return uuid.NewString()
}
