package sections

import "context"

type strategy int

const (
	// strategyMerge folds resolved fields into the authored content.
	// Used by sources that augment a largely-static layout with a
	// small amount of live data.
	strategyMerge strategy = iota

	// strategySidecar leaves the authored content untouched and
	// returns the shaped collection under ResolvedData. Used by
	// sources whose entire purpose is to enumerate a collection.
	strategySidecar
)

// A resolveFunc fetches tenant-scoped records and shapes them. For
// merge sources it returns a Content of fields to fold in, or nil when
// the underlying record is absent. For sidecar sources it returns the
// shaped collection, never nil.
type resolveFunc func(ctx context.Context, r *Resolver, tenantID string, content Content) (any, error)

type sourceEntry struct {
	strategy strategy
	resolve  resolveFunc
}

// defaultSources maps section types to their default data-source key.
// It applies only when the authored content omits an explicit
// dataSource; section types absent here (hero, custom-html, ...) have
// no data binding and resolve to their authored content unchanged.
var defaultSources = map[string]string{
	"spotlight-media":     "latest-message",
	"media-grid":          "latest-videos",
	"highlight-cards":     "featured-events",
	"all-messages":        "all-messages",
	"all-events":          "all-events",
	"all-bible-studies":   "all-bible-studies",
	"all-videos":          "all-videos",
	"upcoming-events":     "upcoming-events",
	"ministry-events":     "ministry-events",
	"campus-grid":         "all-campuses",
	"daily-bread-feature": "latest-daily-bread",
}

// sourceTable maps data-source keys to their resolver and merge
// strategy. The strategy is a property of the key, fixed here, so a
// source cannot pick an inconsistent strategy at different call sites.
var sourceTable = map[string]sourceEntry{
	"latest-message":     {strategyMerge, resolveLatestMessage},
	"featured-events":    {strategyMerge, resolveFeaturedEvents},
	"latest-videos":      {strategyMerge, resolveLatestVideos},
	"all-campuses":       {strategyMerge, resolveAllCampuses},
	"latest-daily-bread": {strategyMerge, resolveLatestDailyBread},
	"upcoming-events":    {strategySidecar, resolveUpcomingEvents},
	"ministry-events":    {strategySidecar, resolveMinistryEvents},
	"all-messages":       {strategySidecar, resolveAllMessages},
	"all-events":         {strategySidecar, resolveAllEvents},
	"all-bible-studies":  {strategySidecar, resolveAllBibleStudies},
	"all-videos":         {strategySidecar, resolveAllVideos},
}

// DefaultSource returns the default data-source key for a section
// type, or "" when the type has no data binding.
func DefaultSource(sectionType string) string {
	return defaultSources[sectionType]
}
