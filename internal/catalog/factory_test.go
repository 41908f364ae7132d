package catalog

import (
	"bytes"
	"testing"

	"github.com/metinatakli/movie-ticket-system/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactories(t *testing.T) {
	tests := []struct {
		name    string
		factory domain.MovieFactory
		want    domain.Movie
	}{
		{"action", ActionMovieFactory{}, domain.Movie{Title: "Top Gun", Genre: domain.GenreAction}},
		{"romance", RomanceMovieFactory{}, domain.Movie{Title: "The Notebook", Genre: domain.GenreRomance}},
		{"sf", SFMovieFactory{}, domain.Movie{Title: "Interstellar", Genre: domain.GenreSF}},
		{"comedy", ComedyMovieFactory{}, domain.Movie{Title: "3 Idiots", Genre: domain.GenreComedy}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.factory.CreateMovie())
			assert.Equal(t, tt.factory.CreateMovie(), tt.factory.CreateMovie())
		})
	}
}

func TestFactoryFor(t *testing.T) {
	for _, genre := range Genres() {
		f, err := FactoryFor(genre)
		require.NoError(t, err)
		assert.Equal(t, genre, f.CreateMovie().Genre)
	}

	_, err := FactoryFor("Horror")
	assert.ErrorIs(t, err, domain.ErrUnknownGenre)

	// Drama has recommendations but no movie variant.
	_, err = FactoryFor(domain.GenreDrama)
	assert.ErrorIs(t, err, domain.ErrUnknownGenre)
}

func TestMoviePlay(t *testing.T) {
	var buf bytes.Buffer

	ActionMovieFactory{}.CreateMovie().Play(&buf)

	assert.Equal(t, "Movie \"Top Gun\" selected!\n", buf.String())
}
