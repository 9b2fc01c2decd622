package pokedex

import "github.com/google/uuid"

// Trainer is a session: an identity pair and the Pokedex it owns.
type Trainer struct {
	ID       string // UUID v7, generated on creation.
	Name     string
	Hometown string
	Pokedex  *Pokedex
}

// NewTrainer creates a Trainer with a fresh, empty Pokedex.
func NewTrainer(name, hometown string) *Trainer {
	return &Trainer{
		ID:       generateUUID(),
		Name:     name,
		Hometown: hometown,
		Pokedex:  New(),
	}
}

// generateUUID generates a new UUID v7 for session IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
