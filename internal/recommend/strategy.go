// Package recommend holds the interchangeable recommendation strategies. The
// data behind them is fixed; no location or popularity source is consulted.
package recommend

import (
	"fmt"
	"io"

	"github.com/metinatakli/movie-ticket-system/internal/domain"
)

var popularByGenre = map[domain.Genre][]string{
	domain.GenreAction: {"Top Gun: Maverick", "John Wick", "Mad Max: Fury Road"},
	domain.GenreDrama:  {"The Shawshank Redemption", "Forrest Gump", "The Pursuit of Happyness"},
	domain.GenreSF:     {"Interstellar", "Inception", "The Matrix"},
	domain.GenreComedy: {"The Hangover", "Superbad", "21 Jump Street"},
}

var defaultPicks = []string{"Default pick 1", "Default pick 2", "Default pick 3"}

// PopularMovies recommends the top three movies of a genre. An empty Genre
// means Action.
type PopularMovies struct {
	Genre domain.Genre
	Out   io.Writer
}

func (s PopularMovies) Recommend(user *domain.User) []string {
	genre := s.Genre
	if genre == "" {
		genre = domain.GenreAction
	}

	picks, ok := popularByGenre[genre]
	if !ok {
		picks = defaultPicks
	}

	w := writerOrDiscard(s.Out)
	fmt.Fprintln(w, "[Popular movies] Top 3 recommendations")
	fmt.Fprintf(w, "Selected genre: %s\n", genre)
	for i, title := range picks {
		fmt.Fprintf(w, "%d. %s\n", i+1, title)
	}

	result := make([]string, len(picks))
	copy(result, picks)
	return result
}

const nearestTheater = "Mohyeon CGV"

// NearestTheater recommends the theater closest to the user.
type NearestTheater struct {
	Out io.Writer
}

func (s NearestTheater) Recommend(user *domain.User) []string {
	w := writerOrDiscard(s.Out)
	fmt.Fprintln(w, "[Nearest theater] Analyzing your current location...")
	fmt.Fprintf(w, "The nearest theater is %s!\n", nearestTheater)

	return []string{nearestTheater}
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
