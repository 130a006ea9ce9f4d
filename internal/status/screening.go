package status

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// screeningPages is how many listing pages are folded into one snapshot.
const screeningPages = 5

const defaultScreeningTTL = 30 * time.Minute

// ScreeningSnapshot holds the region's theatrical listing windows as two id
// sets. It is rebuilt wholesale on every refresh; the upstream listing is
// itself a full paginated snapshot, so incremental patching would only
// invent states the upstream never had.
type ScreeningSnapshot struct {
	NowPlaying map[int64]struct{}
	Upcoming   map[int64]struct{}
	FetchedAt  time.Time
}

// InNowPlaying reports membership in the now-playing window.
func (s ScreeningSnapshot) InNowPlaying(id int64) bool {
	_, ok := s.NowPlaying[id]
	return ok
}

// InUpcoming reports membership in the upcoming window.
func (s ScreeningSnapshot) InUpcoming(id int64) bool {
	_, ok := s.Upcoming[id]
	return ok
}

// screeningIndex builds and caches the region's ScreeningSnapshot. A failed
// page is tolerated as an empty page; only a build where every page failed
// is treated as an error, and errors are never cached (failure TTL zero).
type screeningIndex struct {
	api    CatalogAPI
	region string
	loader *loader[ScreeningSnapshot]
	log    *slog.Logger
	now    func() time.Time
}

func newScreeningIndex(api CatalogAPI, region string, ttl time.Duration, log *slog.Logger) *screeningIndex {
	if ttl <= 0 {
		ttl = defaultScreeningTTL
	}
	return &screeningIndex{
		api:    api,
		region: region,
		loader: newLoader[ScreeningSnapshot](ttlPolicy{success: ttl}),
		log:    log,
		now:    time.Now,
	}
}

// snapshot returns the current snapshot, building one if none is fresh.
func (s *screeningIndex) snapshot(ctx context.Context) (ScreeningSnapshot, error) {
	return s.loader.resolve(ctx, "screening:"+s.region, s.build)
}

func (s *screeningIndex) build(ctx context.Context) (ScreeningSnapshot, error) {
	snap := ScreeningSnapshot{
		NowPlaying: make(map[int64]struct{}),
		Upcoming:   make(map[int64]struct{}),
		FetchedAt:  s.now(),
	}

	var (
		mu     sync.Mutex
		failed int
	)
	collect := func(name string, set map[int64]struct{}, fetch func(context.Context, string, int) ([]int64, error)) func(int) func() error {
		return func(page int) func() error {
			return func() error {
				ids, err := fetch(ctx, s.region, page)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					failed++
					s.log.Warn("screening page fetch failed", "list", name, "page", page, "error", err)
					return nil
				}
				for _, id := range ids {
					set[id] = struct{}{}
				}
				return nil
			}
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	nowPage := collect("now_playing", snap.NowPlaying, s.api.NowPlaying)
	upPage := collect("upcoming", snap.Upcoming, s.api.Upcoming)
	for page := 1; page <= screeningPages; page++ {
		g.Go(nowPage(page))
		g.Go(upPage(page))
	}
	_ = g.Wait() // page workers never return errors

	if failed == 2*screeningPages {
		return ScreeningSnapshot{}, fmt.Errorf("screening snapshot for %s: all %d page fetches failed", s.region, failed)
	}

	s.log.Debug("screening snapshot built",
		"region", s.region,
		"now_playing", len(snap.NowPlaying),
		"upcoming", len(snap.Upcoming),
		"failed_pages", failed,
	)
	return snap, nil
}
