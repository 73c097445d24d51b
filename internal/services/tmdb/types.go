package tmdb

// Genre represents an id/name pair from a TMDB detail response
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieResult is the abbreviated movie shape returned by the search and
// trending endpoints. List responses carry only genre IDs and no runtime.
type MovieResult struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	GenreIDs     []int   `json:"genre_ids"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Adult        bool    `json:"adult"`
}

// SeriesResult is the abbreviated TV shape returned by the search and
// trending endpoints
type SeriesResult struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	FirstAirDate string  `json:"first_air_date"`
	GenreIDs     []int   `json:"genre_ids"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
}

// MovieDetail is the full movie shape returned by /movie/{id}
type MovieDetail struct {
	MovieResult
	Genres  []Genre `json:"genres"`
	Runtime int     `json:"runtime"`
}

// SeriesDetail is the full TV shape returned by /tv/{id}
type SeriesDetail struct {
	SeriesResult
	Genres         []Genre `json:"genres"`
	EpisodeRunTime []int   `json:"episode_run_time"`
}

type movieListResponse struct {
	Page    int           `json:"page"`
	Results []MovieResult `json:"results"`
}

type seriesListResponse struct {
	Page    int            `json:"page"`
	Results []SeriesResult `json:"results"`
}
