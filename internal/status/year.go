package status

import "github.com/vmunix/marquee/internal/catalog"

// UnknownYear is shown when no usable date exists anywhere.
const UnknownYear = "TBA"

// YearInput carries the per-title facts DisplayYear consults. Rerun is only
// meaningful for movies, Season only for TV; the unused one may be zero.
type YearInput struct {
	Ref     ContentRef
	RawDate string
	Status  StatusKind
	Rerun   RerunInfo
	Season  LatestSeason
}

// DisplayYear derives the single year string a card shows. Pure.
//
// A rerun movie shows its original theatrical year, not the year of the
// current re-release: a 1997 title back in theaters in 2025 is still "1997".
// TV prefers the latest season's year over the show's first-air date.
func DisplayYear(in YearInput) string {
	if in.Ref.Kind == catalog.KindTV {
		if in.Season.Year != "" {
			return in.Season.Year
		}
		if y := YearOf(in.RawDate); y != "" {
			return y
		}
		return UnknownYear
	}

	if in.Status == StatusRerun {
		if y := YearOf(in.Rerun.EarliestTheatrical); y != "" {
			return y
		}
	}
	if y := YearOf(in.RawDate); y != "" {
		return y
	}
	return UnknownYear
}
