package status

import (
	"time"

	"github.com/vmunix/marquee/internal/catalog"
)

// StatusKind is a title's release status. It is always recomputed from the
// caches, never stored.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusNow
	StatusUpcoming
	StatusRerun
)

func (s StatusKind) String() string {
	switch s {
	case StatusNow:
		return "now"
	case StatusUpcoming:
		return "upcoming"
	case StatusRerun:
		return "rerun"
	default:
		return "none"
	}
}

// Thresholds tune the classifier's day arithmetic.
type Thresholds struct {
	// RerunThresholdDays is the age at which a now-playing movie is labeled
	// a re-release instead of a new one.
	RerunThresholdDays int
	// NowWindowDays bounds the fallback "recently released" window used when
	// the movie is absent from the now-playing set (e.g. the snapshot has
	// not loaded yet).
	NowWindowDays int
}

// DefaultThresholds are the values the UI ships with.
var DefaultThresholds = Thresholds{
	RerunThresholdDays: 180,
	NowWindowDays:      90,
}

func (t Thresholds) withDefaults() Thresholds {
	if t.RerunThresholdDays <= 0 {
		t.RerunThresholdDays = DefaultThresholds.RerunThresholdDays
	}
	if t.NowWindowDays <= 0 {
		t.NowWindowDays = DefaultThresholds.NowWindowDays
	}
	return t
}

// ClassifyInput carries everything Classify consults. RawDate is the
// release date for movies and the first-air date for TV.
type ClassifyInput struct {
	Ref      ContentRef
	RawDate  string
	Snapshot ScreeningSnapshot
	OTTOnly  bool
	Now      time.Time
}

// Classify derives a StatusKind. Pure: identical inputs always yield the
// identical kind, and no shared state is touched, so it is safe from any
// goroutine. All date arithmetic is calendar-day based; time-of-day never
// flips a verdict across an hour boundary.
//
// TV is binary: a strictly future first-air date is upcoming, anything else
// is none. Movies consult the screening snapshot, where upcoming membership
// wins over the raw date, and now-playing membership is suppressed for
// OTT-exclusive titles and downgraded to rerun past the age threshold.
func Classify(in ClassifyInput, th Thresholds) StatusKind {
	th = th.withDefaults()
	releaseDay, hasDate := parseDay(in.RawDate)

	if in.Ref.Kind == catalog.KindTV {
		if hasDate && daysBetween(in.Now, releaseDay) > 0 {
			return StatusUpcoming
		}
		return StatusNone
	}

	if in.Snapshot.InUpcoming(in.Ref.ID) {
		return StatusUpcoming
	}

	if hasDate {
		since := daysBetween(releaseDay, in.Now)
		switch {
		case since < 0:
			return StatusUpcoming
		case in.Snapshot.InNowPlaying(in.Ref.ID):
			if in.OTTOnly {
				return StatusNone
			}
			if since >= th.RerunThresholdDays {
				return StatusRerun
			}
			return StatusNow
		default:
			if !in.OTTOnly && since <= th.NowWindowDays {
				return StatusNow
			}
			return StatusNone
		}
	}

	if in.Snapshot.InNowPlaying(in.Ref.ID) {
		if in.OTTOnly {
			return StatusNone
		}
		return StatusNow
	}
	return StatusNone
}
