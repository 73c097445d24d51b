package tmdb

import (
	"math"

	"github.com/channeled/backend/internal/models"
)

const (
	posterSize   = "w500"
	backdropSize = "w780"
)

// imageURL joins the TMDB image base, a size tier and a provider-relative
// path. A nil or empty path passes through as nil.
func imageURL(path *string, size string) *string {
	if path == nil || *path == "" {
		return nil
	}
	u := imageBaseURL + "/" + size + *path
	return &u
}

// averageRuntime returns the mean of per-episode runtimes rounded to the
// nearest minute, or 0 when the list is empty
func averageRuntime(runtimes []int) int {
	if len(runtimes) == 0 {
		return 0
	}
	sum := 0
	for _, r := range runtimes {
		sum += r
	}
	return int(math.Round(float64(sum) / float64(len(runtimes))))
}

func genreNames(genres []Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}

// normalizeMovieItem maps a movie list item (search/trending) to the unified
// shape. List responses carry no runtime and only opaque genre IDs, which
// are not resolved to names, so runtime is 0 and genres is empty. The adult
// flag is the only content-rating signal available at this level; it maps
// to a rating for search results only, trending and detail records never
// carry one.
func normalizeMovieItem(m MovieResult, withAdultRating bool) models.Show {
	var contentRating *string
	if withAdultRating && m.Adult {
		r := "R"
		contentRating = &r
	}

	return models.Show{
		ID:            m.ID,
		Type:          models.MediaTypeMovie,
		Title:         m.Title,
		Overview:      m.Overview,
		ArtworkURL:    imageURL(m.PosterPath, posterSize),
		BackdropURL:   imageURL(m.BackdropPath, backdropSize),
		Genres:        []string{},
		Runtime:       0,
		ContentRating: contentRating,
		ReleaseDate:   m.ReleaseDate,
		Rating:        m.VoteAverage,
	}
}

// normalizeSeriesItem maps a TV list item (search/trending) to the unified
// shape
func normalizeSeriesItem(s SeriesResult) models.Show {
	return models.Show{
		ID:          s.ID,
		Type:        models.MediaTypeSeries,
		Title:       s.Name,
		Overview:    s.Overview,
		ArtworkURL:  imageURL(s.PosterPath, posterSize),
		BackdropURL: imageURL(s.BackdropPath, backdropSize),
		Genres:      []string{},
		Runtime:     0,
		ReleaseDate: s.FirstAirDate,
		Rating:      s.VoteAverage,
	}
}

// normalizeMovieDetail maps a full movie record to the unified shape, adding
// genre names and the real runtime
func normalizeMovieDetail(d *MovieDetail) models.Show {
	show := normalizeMovieItem(d.MovieResult, false)
	show.Genres = genreNames(d.Genres)
	show.Runtime = d.Runtime
	return show
}

// normalizeSeriesDetail maps a full TV record to the unified shape. Series
// have no single runtime, so the per-episode list collapses to its rounded
// mean.
func normalizeSeriesDetail(d *SeriesDetail) models.Show {
	show := normalizeSeriesItem(d.SeriesResult)
	show.Genres = genreNames(d.Genres)
	show.Runtime = averageRuntime(d.EpisodeRunTime)
	return show
}
