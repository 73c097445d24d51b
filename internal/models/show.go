package models

// MediaType represents the type of media (movie or series)
type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeSeries MediaType = "series"
)

// Valid reports whether the media type is one of the known categories
func (t MediaType) Valid() bool {
	return t == MediaTypeMovie || t == MediaTypeSeries
}

// Show is the unified representation of a movie or series returned to the
// mobile client. Both TMDB categories normalize into this one shape; Type
// records which category produced the record. Instances are never mutated
// after construction.
type Show struct {
	ID            int       `json:"id"`
	Type          MediaType `json:"type"`
	Title         string    `json:"title"`
	Overview      string    `json:"overview"`
	ArtworkURL    *string   `json:"artworkURL"`
	BackdropURL   *string   `json:"backdropURL"`
	Genres        []string  `json:"genres"`
	Runtime       int       `json:"runtime"`
	ContentRating *string   `json:"contentRating"`
	ReleaseDate   string    `json:"releaseDate"`
	Rating        float64   `json:"rating"`
}
