package status

import (
	"context"

	"github.com/vmunix/marquee/internal/catalog"
)

//go:generate mockgen -source=deps.go -destination=mocks/catalog_mock.go -package=mocks

// CatalogAPI is the slice of the upstream catalog this package consumes.
type CatalogAPI interface {
	NowPlaying(ctx context.Context, region string, page int) ([]int64, error)
	Upcoming(ctx context.Context, region string, page int) ([]int64, error)
	ReleaseDates(ctx context.Context, id int64) ([]catalog.RegionReleases, error)
	Seasons(ctx context.Context, id int64) (*catalog.SeasonList, error)
	TitleMeta(ctx context.Context, kind catalog.Kind, id int64, region string) (*catalog.TitleMeta, error)
}

// ContentRef identifies one title. Kind is always part of the identity:
// movie and TV ids share a numeric space upstream and must never be mixed
// under a bare id.
type ContentRef struct {
	Kind catalog.Kind
	ID   int64
}
