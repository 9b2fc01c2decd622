package pokedex

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrainer(t *testing.T) {
	tr := NewTrainer("Ash", "Pallet Town")

	assert.Equal(t, "Ash", tr.Name)
	assert.Equal(t, "Pallet Town", tr.Hometown)
	require.NotNil(t, tr.Pokedex)
	assert.Zero(t, tr.Pokedex.Len())

	id, err := uuid.Parse(tr.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestTrainersOwnSeparatePokedexes(t *testing.T) {
	a := NewTrainer("", "")
	b := NewTrainer("", "")

	require.NoError(t, a.Pokedex.AddExisting(species(t, "Eevee")))
	assert.Equal(t, 1, a.Pokedex.Len())
	assert.Zero(t, b.Pokedex.Len())
	assert.NotEqual(t, a.ID, b.ID)
}
