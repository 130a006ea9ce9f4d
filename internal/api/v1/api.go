// Package v1 implements the native REST API over the status resolver.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/status"
)

// Server is the v1 API server.
type Server struct {
	resolver *status.Resolver
	version  string
	started  time.Time
}

// New creates a new v1 API server.
func New(resolver *status.Resolver, version string) *Server {
	return &Server{
		resolver: resolver,
		version:  version,
		started:  time.Now(),
	}
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Shared region snapshot
	mux.HandleFunc("GET /api/v1/screening", s.getScreening)

	// Per-title resolution
	mux.HandleFunc("GET /api/v1/titles/{kind}/{id}/status", s.getTitleStatus)
	mux.HandleFunc("GET /api/v1/titles/{kind}/{id}/meta", s.getTitleMeta)
	mux.HandleFunc("GET /api/v1/titles/{kind}/{id}/rerun", s.getTitleRerun)

	// Operational
	mux.HandleFunc("GET /api/v1/system", s.getSystem)
}

// Responses

type screeningResponse struct {
	Region     string    `json:"region"`
	NowPlaying []int64   `json:"now_playing"`
	Upcoming   []int64   `json:"upcoming"`
	FetchedAt  time.Time `json:"fetched_at"`
}

type titleStatusResponse struct {
	Kind   string `json:"kind"`
	ID     int64  `json:"id"`
	Status string `json:"status"`
	Year   string `json:"year"`
}

type titleMetaResponse struct {
	Providers []status.ProviderBadge `json:"providers"`
	AgeRating string                 `json:"age_rating,omitempty"`
}

type titleRerunResponse struct {
	HasMultipleTheatrical bool   `json:"has_multiple_theatrical"`
	EarliestTheatrical    string `json:"earliest_theatrical,omitempty"`
	LatestTheatrical      string `json:"latest_theatrical,omitempty"`
	GapQualifies          bool   `json:"gap_qualifies"`
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// pathRef extracts the {kind}/{id} pair from the URL path.
func pathRef(r *http.Request) (status.ContentRef, error) {
	kind := catalog.Kind(r.PathValue("kind"))
	if !kind.Valid() {
		return status.ContentRef{}, fmt.Errorf("kind must be movie or tv, got %q", r.PathValue("kind"))
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return status.ContentRef{}, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return status.ContentRef{Kind: kind, ID: id}, nil
}

// queryBool extracts an optional boolean from the query string.
func queryBool(r *http.Request, name string, defaultVal bool) bool {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

// Handlers

func (s *Server) getScreening(w http.ResponseWriter, r *http.Request) {
	snap, err := s.resolver.Screening(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, screeningResponse{
		Region:     s.resolver.Region(),
		NowPlaying: sortedIDs(snap.NowPlaying),
		Upcoming:   sortedIDs(snap.Upcoming),
		FetchedAt:  snap.FetchedAt,
	})
}

func (s *Server) getTitleStatus(w http.ResponseWriter, r *http.Request) {
	ref, err := pathRef(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REF", err.Error())
		return
	}

	// The raw release/first-air date travels with the consumer's own listing
	// data; resolution is best-effort even without it.
	date := r.URL.Query().Get("date")
	display := s.resolver.Display(r.Context(), ref, date)

	writeJSON(w, http.StatusOK, titleStatusResponse{
		Kind:   string(ref.Kind),
		ID:     ref.ID,
		Status: display.Status.String(),
		Year:   display.Year,
	})
}

func (s *Server) getTitleMeta(w http.ResponseWriter, r *http.Request) {
	ref, err := pathRef(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REF", err.Error())
		return
	}

	armed := queryBool(r, "armed", true)
	rec := s.resolver.Meta(r.Context(), ref, armed)

	providers := rec.Providers
	if providers == nil {
		providers = []status.ProviderBadge{}
	}
	writeJSON(w, http.StatusOK, titleMetaResponse{
		Providers: providers,
		AgeRating: rec.AgeRating,
	})
}

func (s *Server) getTitleRerun(w http.ResponseWriter, r *http.Request) {
	ref, err := pathRef(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REF", err.Error())
		return
	}
	if ref.Kind != catalog.KindMovie {
		writeError(w, http.StatusBadRequest, "INVALID_REF", "rerun history only exists for movies")
		return
	}

	info, err := s.resolver.Rerun(r.Context(), ref.ID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Title not found")
			return
		}
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, titleRerunResponse{
		HasMultipleTheatrical: info.HasMultipleTheatrical,
		EarliestTheatrical:    info.EarliestTheatrical,
		LatestTheatrical:      info.LatestTheatrical,
		GapQualifies:          s.resolver.RerunQualifies(r.Context(), ref.ID),
	})
}

func (s *Server) getSystem(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"version":        s.version,
		"region":         s.resolver.Region(),
		"uptime_seconds": int(time.Since(s.started).Seconds()),
	})
}

func sortedIDs(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
