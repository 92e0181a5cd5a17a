package model

import "time"

// ContentType distinguishes movies from series. Series accrue views and
// likes faster in the stats model (longer engagement).
type ContentType string

const (
	TypeMovie  ContentType = "movie"
	TypeSeries ContentType = "series"
)

// Categories is the fixed set of catalog categories.
var Categories = []string{
	"Acción",
	"Aventura",
	"Ciencia Ficción",
	"Comedia",
	"Drama",
	"Fantasía",
	"Misterio",
	"Romance",
	"Terror",
	"Thriller",
}

// Content is an immutable catalog entry. Entries are loaded once at startup
// and never mutated or deleted afterwards.
type Content struct {
	ID            string      `json:"id" validate:"required,max=64"`
	Type          ContentType `json:"type" validate:"required,oneof=movie series"`
	Title         string      `json:"title" validate:"required"`
	Description   string      `json:"description" validate:"required"`
	Category      string      `json:"category" validate:"required"`
	QualityRating int         `json:"qualityRating" validate:"min=0,max=100"`
	HypeLevel     int         `json:"hypeLevel" validate:"min=0,max=100"`
	ReleaseDate   time.Time   `json:"releaseDate" validate:"required"`
	Director      string      `json:"director"`
	Cast          []string    `json:"cast"`
	Production    string      `json:"production"`
	PosterURL     string      `json:"posterUrl"`
	HeroImageURL  string      `json:"heroImageUrl,omitempty"`
	Duration      string      `json:"duration,omitempty"` // movies only, e.g. "2h 18min"
	Seasons       int         `json:"seasons,omitempty"`  // series only
}

// ContentDetail is the API response for a single content lookup. Stats may be
// absent when the entry has not been registered with the stats store.
type ContentDetail struct {
	Content
	Stats *ContentStats `json:"stats,omitempty"`
}
