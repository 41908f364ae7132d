// Package catalog provides the fixed movie variants and their factories.
package catalog

import (
	"fmt"

	"github.com/metinatakli/movie-ticket-system/internal/domain"
)

type ActionMovieFactory struct{}

func (ActionMovieFactory) CreateMovie() domain.Movie {
	return domain.Movie{Title: "Top Gun", Genre: domain.GenreAction}
}

type RomanceMovieFactory struct{}

func (RomanceMovieFactory) CreateMovie() domain.Movie {
	return domain.Movie{Title: "The Notebook", Genre: domain.GenreRomance}
}

type SFMovieFactory struct{}

func (SFMovieFactory) CreateMovie() domain.Movie {
	return domain.Movie{Title: "Interstellar", Genre: domain.GenreSF}
}

type ComedyMovieFactory struct{}

func (ComedyMovieFactory) CreateMovie() domain.Movie {
	return domain.Movie{Title: "3 Idiots", Genre: domain.GenreComedy}
}

var factories = map[domain.Genre]domain.MovieFactory{
	domain.GenreAction:  ActionMovieFactory{},
	domain.GenreRomance: RomanceMovieFactory{},
	domain.GenreSF:      SFMovieFactory{},
	domain.GenreComedy:  ComedyMovieFactory{},
}

// Genres lists the genres that have a factory.
func Genres() []domain.Genre {
	return []domain.Genre{
		domain.GenreAction,
		domain.GenreRomance,
		domain.GenreSF,
		domain.GenreComedy,
	}
}

// FactoryFor selects the factory for the given genre.
func FactoryFor(genre domain.Genre) (domain.MovieFactory, error) {
	f, ok := factories[genre]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownGenre, genre)
	}

	return f, nil
}
