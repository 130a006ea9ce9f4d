package status

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/vmunix/marquee/internal/catalog"
)

const defaultSeasonTTL = 6 * time.Hour

// LatestSeason is the poster and year of the season judged latest for a TV
// title. Year may be empty when no usable date exists anywhere.
type LatestSeason struct {
	PosterPath string
	Year       string
}

// seasonResolver caches the latest-season pick per TV id. Failures are
// recorded but never fresh (zero failure TTL), so a failed lookup is
// retried on the next read.
type seasonResolver struct {
	api    CatalogAPI
	loader *loader[LatestSeason]
	log    *slog.Logger
}

func newSeasonResolver(api CatalogAPI, ttl time.Duration, log *slog.Logger) *seasonResolver {
	if ttl <= 0 {
		ttl = defaultSeasonTTL
	}
	return &seasonResolver{
		api:    api,
		loader: newLoader[LatestSeason](ttlPolicy{success: ttl}),
		log:    log,
	}
}

func (s *seasonResolver) latest(ctx context.Context, id int64) (LatestSeason, error) {
	key := fmt.Sprintf("season:%d", id)
	return s.loader.resolve(ctx, key, func(ctx context.Context) (LatestSeason, error) {
		list, err := s.api.Seasons(ctx, id)
		if err != nil {
			return LatestSeason{}, fmt.Errorf("season list for %d: %w", id, err)
		}
		return latestSeason(list), nil
	})
}

// latestSeason picks the season with the greatest air date, ties broken by
// the higher season number. Season 0 and below (specials) never compete.
// When the pick has no usable date the show's last-air-date and then
// first-air-date stand in for the year.
func latestSeason(list *catalog.SeasonList) LatestSeason {
	candidates := make([]catalog.Season, 0, len(list.Seasons))
	for _, season := range list.Seasons {
		if season.SeasonNumber <= 0 {
			continue
		}
		candidates = append(candidates, season)
	}

	if len(candidates) == 0 {
		return LatestSeason{Year: fallbackYear("", list)}
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		ad, aok := parseDay(a.AirDate)
		bd, bok := parseDay(b.AirDate)
		switch {
		case aok && bok && !ad.Equal(bd):
			return ad.After(bd)
		case aok != bok:
			return aok // dated seasons beat undated ones
		default:
			return a.SeasonNumber > b.SeasonNumber
		}
	})

	pick := candidates[0]
	return LatestSeason{
		PosterPath: pick.PosterPath,
		Year:       fallbackYear(pick.AirDate, list),
	}
}

func fallbackYear(airDate string, list *catalog.SeasonList) string {
	if y := YearOf(airDate); y != "" {
		return y
	}
	if y := YearOf(list.LastAirDate); y != "" {
		return y
	}
	return YearOf(list.FirstAirDate)
}
