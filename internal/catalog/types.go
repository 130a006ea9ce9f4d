// Package catalog provides a client for the upstream title catalog service.
package catalog

// Kind distinguishes the two title id spaces. Movie and TV ids overlap
// numerically upstream, so a bare id is never a valid key on its own.
type Kind string

const (
	KindMovie Kind = "movie"
	KindTV    Kind = "tv"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindMovie || k == KindTV
}

// ReleaseType classifies one entry in a title's release-date history.
type ReleaseType int

const (
	ReleasePremiere          ReleaseType = 1
	ReleaseTheatricalLimited ReleaseType = 2
	ReleaseTheatrical        ReleaseType = 3
	ReleaseDigital           ReleaseType = 4
	ReleasePhysical          ReleaseType = 5
	ReleaseTV                ReleaseType = 6
)

// IsTheatrical reports whether the entry marks a cinema release
// (limited or wide).
func (t ReleaseType) IsTheatrical() bool {
	return t == ReleaseTheatricalLimited || t == ReleaseTheatrical
}

// IsDigital reports whether the entry marks an OTT/streaming release.
func (t ReleaseType) IsDigital() bool {
	return t == ReleaseDigital
}

// ReleaseDate is one entry in a region's release-date history.
type ReleaseDate struct {
	Date          string      `json:"release_date"` // "2006-01-02", sometimes with a time suffix
	Type          ReleaseType `json:"type"`
	Certification string      `json:"certification"`
}

// RegionReleases groups release-date entries by region.
type RegionReleases struct {
	Region string        `json:"region"`
	Dates  []ReleaseDate `json:"release_dates"`
}

// Season is one season of a TV title.
type Season struct {
	SeasonNumber int    `json:"season_number"`
	AirDate      string `json:"air_date"`
	PosterPath   string `json:"poster_path"`
}

// SeasonList is the season listing for a TV title.
type SeasonList struct {
	Seasons      []Season `json:"seasons"`
	FirstAirDate string   `json:"first_air_date"`
	LastAirDate  string   `json:"last_air_date"`
}

// Provider is a raw watch-provider object as the catalog returns it.
// The service has renamed the name and logo fields twice over its history
// and old records still carry the old keys, so all variants are declared
// and the consumer picks the first non-empty one.
type Provider struct {
	ProviderName string `json:"provider_name"`
	Name         string `json:"name"`
	DisplayName  string `json:"providerName"`
	LogoPath     string `json:"logo_path"`
	Logo         string `json:"logo"`
	LogoURL      string `json:"logoPath"`
}

// TitleMeta is the provider/age-rating bundle for one title in one region.
type TitleMeta struct {
	Providers     []Provider `json:"providers"`
	Certification string     `json:"certification"`
}

type listingResponse struct {
	Page    int `json:"page"`
	Results []struct {
		ID int64 `json:"id"`
	} `json:"results"`
}

type releaseDatesResponse struct {
	ID      int64            `json:"id"`
	Results []RegionReleases `json:"results"`
}
