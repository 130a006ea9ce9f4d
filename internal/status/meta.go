package status

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vmunix/marquee/internal/catalog"
)

const (
	defaultMetaTTL        = 6 * time.Hour
	defaultMetaFailureTTL = time.Minute
)

// Age rating buckets. AgeRatingUnknown is the catch-all for titles the
// catalog has no certification for.
const (
	AgeRatingAll     = "ALL"
	AgeRating12      = "12"
	AgeRating15      = "15"
	AgeRating18      = "18"
	AgeRatingUnknown = ""
)

// providerDupThreshold is the Jaro-Winkler similarity above which two
// provider names are considered the same service under cosmetic renaming
// ("Disney Plus" vs "Disney+").
const providerDupThreshold = 0.95

// ProviderBadge is one normalized watch-provider entry.
type ProviderBadge struct {
	Name     string `json:"name"`
	LogoPath string `json:"logo_path"`
}

// MetaRecord bundles the provider badges and age rating for one title.
type MetaRecord struct {
	Providers []ProviderBadge
	AgeRating string
}

// metaResolver caches provider/age-rating metadata per (kind, id, region).
type metaResolver struct {
	api    CatalogAPI
	region string
	loader *loader[MetaRecord]
	log    *slog.Logger
}

func newMetaResolver(api CatalogAPI, region string, ttl, failureTTL time.Duration, log *slog.Logger) *metaResolver {
	if ttl <= 0 {
		ttl = defaultMetaTTL
	}
	if failureTTL <= 0 {
		failureTTL = defaultMetaFailureTTL
	}
	return &metaResolver{
		api:    api,
		region: region,
		loader: newLoader[MetaRecord](ttlPolicy{success: ttl, failure: failureTTL}),
		log:    log,
	}
}

// record resolves the metadata for a title. While disarmed (the consumer is
// not visibly rendered) no fetch is ever issued; a previously cached fresh
// value is still returned so arming and disarming never loses state.
func (m *metaResolver) record(ctx context.Context, ref ContentRef, armed bool) (MetaRecord, error) {
	key := fmt.Sprintf("meta:%s:%d:%s", ref.Kind, ref.ID, m.region)
	if !armed {
		if v, err, ok := m.loader.peekFresh(key); ok {
			return v, err
		}
		return MetaRecord{}, nil
	}

	return m.loader.resolve(ctx, key, func(ctx context.Context) (MetaRecord, error) {
		meta, err := m.api.TitleMeta(ctx, ref.Kind, ref.ID, m.region)
		if err != nil {
			return MetaRecord{}, fmt.Errorf("title meta for %s %d: %w", ref.Kind, ref.ID, err)
		}
		return MetaRecord{
			Providers: normalizeProviders(meta.Providers),
			AgeRating: normalizeAgeRating(meta.Certification),
		}, nil
	})
}

// normalizeProviders folds the catalog's historical field-name variants into
// canonical badges and drops duplicate services. Exact duplicates are caught
// by an accent-stripped, case-folded key; renamed-but-same services by
// Jaro-Winkler similarity against the names already kept.
func normalizeProviders(raw []catalog.Provider) []ProviderBadge {
	badges := make([]ProviderBadge, 0, len(raw))
	seen := make(map[string]struct{})

	for _, p := range raw {
		name := firstNonEmpty(p.ProviderName, p.Name, p.DisplayName)
		if name == "" {
			continue
		}
		logo := firstNonEmpty(p.LogoPath, p.Logo, p.LogoURL)

		key := providerKey(name)
		if _, dup := seen[key]; dup {
			continue
		}
		if fuzzyDuplicate(key, badges) {
			continue
		}
		seen[key] = struct{}{}
		badges = append(badges, ProviderBadge{Name: name, LogoPath: logo})
	}
	return badges
}

func fuzzyDuplicate(key string, kept []ProviderBadge) bool {
	for _, b := range kept {
		if edlib.JaroWinklerSimilarity(key, providerKey(b.Name)) >= providerDupThreshold {
			return true
		}
	}
	return false
}

// providerKey normalizes a provider name for comparison: lowercase, accents
// stripped, punctuation removed, whitespace collapsed.
func providerKey(name string) string {
	s := strings.ToLower(name)
	s = removeAccents(s)

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var ageDigits = regexp.MustCompile(`\d+`)

// normalizeAgeRating buckets a raw certification string into the closed
// rating set. The first run of digits decides the bucket; digit-free
// certifications ("ALL", "G") land in ALL. An empty certification is a
// data-quality gap, not an error, and maps to unknown.
func normalizeAgeRating(cert string) string {
	cert = strings.TrimSpace(cert)
	if cert == "" {
		return AgeRatingUnknown
	}

	digits := ageDigits.FindString(cert)
	if digits == "" {
		return AgeRatingAll
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return AgeRatingUnknown
	}

	switch {
	case n <= 0:
		return AgeRatingAll
	case n <= 12:
		return AgeRating12
	case n <= 15:
		return AgeRating15
	default:
		return AgeRating18
	}
}
