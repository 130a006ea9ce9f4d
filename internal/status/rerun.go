package status

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/vmunix/marquee/internal/catalog"
)

const (
	defaultRerunTTL        = 7 * 24 * time.Hour
	defaultRerunFailureTTL = time.Minute
)

// RerunInfo summarizes a movie's theatrical release-date history. Dates are
// calendar-date strings ("2006-01-02"); empty means absent.
// LatestTheatrical is only set when there are at least two distinct dates.
type RerunInfo struct {
	HasMultipleTheatrical bool
	EarliestTheatrical    string
	LatestTheatrical      string
}

// GapQualifies reports whether the spread between the first and latest
// theatrical release is at least minMonths whole calendar months. A title
// re-listed a few weeks after a wide release is a long run, not a rerun.
func (r RerunInfo) GapQualifies(minMonths int) bool {
	if !r.HasMultipleTheatrical {
		return false
	}
	return MonthsBetween(r.EarliestTheatrical, r.LatestTheatrical) >= minMonths
}

// rerunResolver caches per-movie theatrical release history. Successes live
// for a week; failures are negative-cached for a minute so an upstream
// outage cannot pin a wrong "not a rerun" verdict for seven days.
type rerunResolver struct {
	api    CatalogAPI
	region string
	loader *loader[RerunInfo]
	log    *slog.Logger
}

func newRerunResolver(api CatalogAPI, region string, ttl, failureTTL time.Duration, log *slog.Logger) *rerunResolver {
	if ttl <= 0 {
		ttl = defaultRerunTTL
	}
	if failureTTL <= 0 {
		failureTTL = defaultRerunFailureTTL
	}
	return &rerunResolver{
		api:    api,
		region: region,
		loader: newLoader[RerunInfo](ttlPolicy{success: ttl, failure: failureTTL}),
		log:    log,
	}
}

func (r *rerunResolver) info(ctx context.Context, id int64) (RerunInfo, error) {
	key := fmt.Sprintf("rerun:%d:%s", id, r.region)
	return r.loader.resolve(ctx, key, func(ctx context.Context) (RerunInfo, error) {
		history, err := r.api.ReleaseDates(ctx, id)
		if err != nil {
			return RerunInfo{}, fmt.Errorf("rerun history for %d: %w", id, err)
		}
		return rerunFromHistory(history, r.region), nil
	})
}

// rerunFromHistory derives RerunInfo from a release-date history. The fixed
// region's bucket is preferred; when it carries no theatrical entries the
// remaining buckets are consulted so a title released theatrically only
// abroad still gets dated.
func rerunFromHistory(history []catalog.RegionReleases, region string) RerunInfo {
	dates := theatricalDates(history, region)
	if len(dates) == 0 {
		dates = theatricalDates(history, "")
	}
	if len(dates) == 0 {
		return RerunInfo{}
	}

	info := RerunInfo{EarliestTheatrical: dates[0]}
	if len(dates) >= 2 {
		info.HasMultipleTheatrical = true
		info.LatestTheatrical = dates[len(dates)-1]
	}
	return info
}

// theatricalDates collects the distinct theatrical calendar dates for one
// region (or all regions when region is empty), sorted ascending. ISO dates
// sort correctly as strings. The same date repeated across entries counts
// once: two limited screenings on one day are not "multiple releases".
func theatricalDates(history []catalog.RegionReleases, region string) []string {
	seen := make(map[string]struct{})
	for _, bucket := range history {
		if region != "" && bucket.Region != region {
			continue
		}
		for _, rd := range bucket.Dates {
			if !rd.Type.IsTheatrical() {
				continue
			}
			if day, ok := parseDay(rd.Date); ok {
				seen[day.Format(dayLayout)] = struct{}{}
			}
		}
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
