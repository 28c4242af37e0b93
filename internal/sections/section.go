// Package sections implements content resolution for page sections. At
// render time each authored section is bound to live domain data: a
// registry infers a default data source from the section type, a
// dispatch table maps data-source keys to resolvers, and each resolver
// fetches tenant-scoped records and shapes them into the fields its
// renderer expects. Resolution is read-only and holds no state of its
// own; caching, ordering, and failure isolation belong to the caller.
package sections

// Content is a section's open authored configuration. It may carry a
// dataSource key naming the resolver to invoke, plus resolver-specific
// parameters such as count or ministrySlug.
type Content map[string]any

// Result is the outcome of resolving one section. Content is the
// authored configuration, extended with resolved fields for
// merge-strategy sources. ResolvedData carries the shaped collection
// for sidecar-strategy sources and is nil otherwise.
type Result struct {
	Content      Content `json:"content"`
	ResolvedData any     `json:"resolvedData,omitempty"`
}
