package domain

import (
	"fmt"
	"io"
)

type Genre string

const (
	GenreAction  Genre = "Action"
	GenreRomance Genre = "Romance"
	GenreSF      Genre = "SF"
	GenreComedy  Genre = "Comedy"
	GenreDrama   Genre = "Drama"
)

type Movie struct {
	Title string
	Genre Genre
}

// Play writes the selection line for the movie.
func (m Movie) Play(w io.Writer) {
	fmt.Fprintf(w, "Movie %q selected!\n", m.Title)
}

// MovieFactory creates one fixed movie variant. Factories take no parameters.
type MovieFactory interface {
	CreateMovie() Movie
}
