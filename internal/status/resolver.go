package status

import (
	"context"
	"log/slog"
	"time"

	"github.com/vmunix/marquee/internal/catalog"
)

// defaultRerunMinGapMonths is the minimum first-to-latest theatrical spread
// before a rerun gap qualifies for labeling.
const defaultRerunMinGapMonths = 4

// Config tunes a Resolver. Zero values fall back to defaults.
type Config struct {
	Region            string
	Thresholds        Thresholds
	RerunMinGapMonths int

	ScreeningTTL    time.Duration
	RerunTTL        time.Duration
	RerunFailureTTL time.Duration
	SeasonTTL       time.Duration
	MetaTTL         time.Duration
	MetaFailureTTL  time.Duration
}

// Display is the pair every consumer surface ultimately renders.
type Display struct {
	Status StatusKind `json:"status"`
	Year   string     `json:"year"`
}

// Resolver owns every cache in the system. One Resolver per process; all
// consumer surfaces share it, which is what makes their answers consistent
// with each other. There is no package-level cache state.
type Resolver struct {
	region       string
	thresholds   Thresholds
	minGapMonths int

	screening *screeningIndex
	rerun     *rerunResolver
	ott       *ottResolver
	season    *seasonResolver
	meta      *metaResolver

	log *slog.Logger
	now func() time.Time
}

// New creates a Resolver over the given catalog.
func New(api CatalogAPI, cfg Config, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	minGap := cfg.RerunMinGapMonths
	if minGap <= 0 {
		minGap = defaultRerunMinGapMonths
	}
	return &Resolver{
		region:       cfg.Region,
		thresholds:   cfg.Thresholds.withDefaults(),
		minGapMonths: minGap,
		screening:    newScreeningIndex(api, cfg.Region, cfg.ScreeningTTL, log.With("component", "screening")),
		rerun:        newRerunResolver(api, cfg.Region, cfg.RerunTTL, cfg.RerunFailureTTL, log.With("component", "rerun")),
		ott:          newOTTResolver(api, cfg.Region, log.With("component", "ott")),
		season:       newSeasonResolver(api, cfg.SeasonTTL, log.With("component", "season")),
		meta:         newMetaResolver(api, cfg.Region, cfg.MetaTTL, cfg.MetaFailureTTL, log.With("component", "meta")),
		log:          log,
		now:          time.Now,
	}
}

// Region returns the fixed region every cache is scoped to.
func (r *Resolver) Region() string {
	return r.region
}

// Screening returns the region's listing snapshot, building it if stale.
func (r *Resolver) Screening(ctx context.Context) (ScreeningSnapshot, error) {
	return r.screening.snapshot(ctx)
}

// Status classifies a title. Best-effort: a missing snapshot degrades to the
// date-window fallback instead of failing, so a card always gets an answer.
func (r *Resolver) Status(ctx context.Context, ref ContentRef, rawDate string) StatusKind {
	snap, err := r.screening.snapshot(ctx)
	if err != nil {
		r.log.Debug("classifying without screening snapshot", "kind", ref.Kind, "id", ref.ID, "error", err)
		snap = ScreeningSnapshot{}
	}

	var ottOnly bool
	if ref.Kind == catalog.KindMovie {
		ottOnly = r.ott.exclusive(ctx, ref.ID)
	}

	return Classify(ClassifyInput{
		Ref:      ref,
		RawDate:  rawDate,
		Snapshot: snap,
		OTTOnly:  ottOnly,
		Now:      r.now(),
	}, r.thresholds)
}

// Year resolves the display year for a title given its current status.
func (r *Resolver) Year(ctx context.Context, ref ContentRef, rawDate string, status StatusKind) string {
	in := YearInput{Ref: ref, RawDate: rawDate, Status: status}

	switch {
	case ref.Kind == catalog.KindTV:
		season, err := r.season.latest(ctx, ref.ID)
		if err != nil {
			r.log.Debug("latest season unavailable", "id", ref.ID, "error", err)
		}
		in.Season = season
	case status == StatusRerun:
		info, err := r.rerun.info(ctx, ref.ID)
		if err != nil {
			r.log.Debug("rerun history unavailable", "id", ref.ID, "error", err)
		}
		in.Rerun = info
	}

	return DisplayYear(in)
}

// Display resolves status and year in one pass.
func (r *Resolver) Display(ctx context.Context, ref ContentRef, rawDate string) Display {
	status := r.Status(ctx, ref, rawDate)
	return Display{
		Status: status,
		Year:   r.Year(ctx, ref, rawDate, status),
	}
}

// RerunQualifies reports whether a movie's theatrical history spans the
// configured minimum gap. Consumers use it to gate the rerun badge on
// surfaces where a mere long run should not count.
func (r *Resolver) RerunQualifies(ctx context.Context, id int64) bool {
	info, err := r.rerun.info(ctx, id)
	if err != nil {
		return false
	}
	return info.GapQualifies(r.minGapMonths)
}

// Rerun exposes the cached theatrical history for a movie.
func (r *Resolver) Rerun(ctx context.Context, id int64) (RerunInfo, error) {
	return r.rerun.info(ctx, id)
}

// Meta resolves provider badges and the age rating. Disarmed calls never
// fetch; they only return what is already cached. Best-effort: failures
// yield an empty record.
func (r *Resolver) Meta(ctx context.Context, ref ContentRef, armed bool) MetaRecord {
	rec, err := r.meta.record(ctx, ref, armed)
	if err != nil {
		r.log.Debug("title meta unavailable", "kind", ref.Kind, "id", ref.ID, "error", err)
		return MetaRecord{}
	}
	return rec
}
