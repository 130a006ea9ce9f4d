package status

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/vmunix/marquee/internal/catalog"
)

// ottResolver caches whether a movie is OTT-exclusive in the fixed region:
// it has a digital release and no theatrical release at all. The flag keeps
// streaming-only titles that leak into the now-playing listing from being
// labeled as showing in theaters.
//
// Unlike every other resolver, entries here are never re-validated within
// the process lifetime, and upstream failures are recorded as a plain false
// rather than a retryable error. Exclusivity is treated as a fact that does
// not change mid-session. This asymmetry is deliberate; do not "fix" it to
// a TTL without revisiting every consumer that relies on a stable verdict.
type ottResolver struct {
	api    CatalogAPI
	region string
	loader *loader[bool]
	log    *slog.Logger
}

func newOTTResolver(api CatalogAPI, region string, log *slog.Logger) *ottResolver {
	return &ottResolver{
		api:    api,
		region: region,
		loader: newLoader[bool](ttlPolicy{success: time.Duration(math.MaxInt64)}),
		log:    log,
	}
}

// exclusive reports whether the movie is digital-only in the region. The
// answer is best-effort: on upstream failure it is false (not suppressed),
// which errs toward showing a label rather than hiding one.
func (o *ottResolver) exclusive(ctx context.Context, id int64) bool {
	key := fmt.Sprintf("ott:%d:%s", id, o.region)
	v, _ := o.loader.resolve(ctx, key, func(ctx context.Context) (bool, error) {
		history, err := o.api.ReleaseDates(ctx, id)
		if err != nil {
			o.log.Warn("release history unavailable, assuming not OTT-exclusive", "id", id, "error", err)
			return false, nil
		}
		return digitalOnly(history, o.region), nil
	})
	return v
}

// digitalOnly inspects the region's bucket for release-type evidence.
func digitalOnly(history []catalog.RegionReleases, region string) bool {
	var hasTheatrical, hasDigital bool
	for _, bucket := range history {
		if bucket.Region != region {
			continue
		}
		for _, rd := range bucket.Dates {
			if rd.Type.IsTheatrical() {
				hasTheatrical = true
			}
			if rd.Type.IsDigital() {
				hasDigital = true
			}
		}
	}
	return !hasTheatrical && hasDigital
}
