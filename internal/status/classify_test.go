package status_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/status"
)

var classifyNow = time.Date(2025, 8, 27, 14, 30, 0, 0, time.UTC)

func idSet(ids ...int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func movieRef(id int64) status.ContentRef {
	return status.ContentRef{Kind: catalog.KindMovie, ID: id}
}

func tvRef(id int64) status.ContentRef {
	return status.ContentRef{Kind: catalog.KindTV, ID: id}
}

func TestClassify_Movie(t *testing.T) {
	tests := []struct {
		name       string
		ref        status.ContentRef
		date       string
		nowPlaying []int64
		upcoming   []int64
		ottOnly    bool
		want       status.StatusKind
	}{
		{
			name: "upcoming set wins over a past date",
			ref:  movieRef(1), date: "2020-01-01",
			upcoming: []int64{1},
			want:     status.StatusUpcoming,
		},
		{
			name: "future date",
			ref:  movieRef(2), date: "2025-09-15",
			want: status.StatusUpcoming,
		},
		{
			name: "now playing, recent release",
			ref:  movieRef(3), date: "2025-08-01",
			nowPlaying: []int64{3},
			want:       status.StatusNow,
		},
		{
			name: "now playing, old release is a rerun",
			ref:  movieRef(4), date: "1999-03-31",
			nowPlaying: []int64{4},
			want:       status.StatusRerun,
		},
		{
			name: "now playing but OTT-exclusive is suppressed",
			ref:  movieRef(5), date: "2025-08-01",
			nowPlaying: []int64{5},
			ottOnly:    true,
			want:       status.StatusNone,
		},
		{
			name: "not listed, inside the recent window",
			ref:  movieRef(6), date: "2025-07-01",
			want: status.StatusNow,
		},
		{
			name: "not listed, outside the recent window",
			ref:  movieRef(7), date: "2025-01-01",
			want: status.StatusNone,
		},
		{
			name: "not listed, recent but OTT-exclusive",
			ref:  movieRef(8), date: "2025-08-01",
			ottOnly: true,
			want:    status.StatusNone,
		},
		{
			name: "no date, now playing",
			ref:  movieRef(9),
			nowPlaying: []int64{9},
			want:       status.StatusNow,
		},
		{
			name: "no date, now playing, OTT-exclusive",
			ref:  movieRef(10),
			nowPlaying: []int64{10},
			ottOnly:    true,
			want:       status.StatusNone,
		},
		{
			name: "no date, unlisted",
			ref:  movieRef(11),
			want: status.StatusNone,
		},
		{
			name: "released today counts as now",
			ref:  movieRef(12), date: "2025-08-27",
			want: status.StatusNow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := status.ClassifyInput{
				Ref:     tt.ref,
				RawDate: tt.date,
				Snapshot: status.ScreeningSnapshot{
					NowPlaying: idSet(tt.nowPlaying...),
					Upcoming:   idSet(tt.upcoming...),
				},
				OTTOnly: tt.ottOnly,
				Now:     classifyNow,
			}
			got := status.Classify(in, status.DefaultThresholds)
			assert.Equal(t, tt.want, got)

			// Pure: the same inputs always yield the same verdict.
			assert.Equal(t, got, status.Classify(in, status.DefaultThresholds))
		})
	}
}

func TestClassify_TV(t *testing.T) {
	snap := status.ScreeningSnapshot{NowPlaying: idSet(100), Upcoming: idSet(100)}

	in := status.ClassifyInput{Ref: tvRef(100), RawDate: "2025-10-01", Snapshot: snap, Now: classifyNow}
	assert.Equal(t, status.StatusUpcoming, status.Classify(in, status.DefaultThresholds))

	in.RawDate = "2025-08-27" // airing today is not "upcoming"
	assert.Equal(t, status.StatusNone, status.Classify(in, status.DefaultThresholds))

	in.RawDate = "2008-01-20"
	assert.Equal(t, status.StatusNone, status.Classify(in, status.DefaultThresholds),
		"TV never resolves to now or rerun, whatever the snapshot says")

	in.RawDate = ""
	assert.Equal(t, status.StatusNone, status.Classify(in, status.DefaultThresholds))
}

func TestClassify_EndToEndScenario(t *testing.T) {
	// Movie 603: released 1999, back in theaters in 2025.
	in := status.ClassifyInput{
		Ref:      movieRef(603),
		RawDate:  "1999-03-31",
		Snapshot: status.ScreeningSnapshot{NowPlaying: idSet(603)},
		Now:      classifyNow,
	}
	kind := status.Classify(in, status.DefaultThresholds)
	assert.Equal(t, status.StatusRerun, kind)

	year := status.DisplayYear(status.YearInput{
		Ref:     movieRef(603),
		RawDate: "1999-03-31",
		Status:  kind,
		Rerun: status.RerunInfo{
			HasMultipleTheatrical: true,
			EarliestTheatrical:    "1999-03-31",
			LatestTheatrical:      "2025-05-02",
		},
	})
	assert.Equal(t, "1999", year)
}
