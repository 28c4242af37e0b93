package sections

import (
	"context"
	"log/slog"
)

// Resolver dispatches section resolution to the registered data
// sources. It is safe for concurrent use; resolution reads domain
// state but never writes, and tenant scope is explicit per call.
type Resolver struct {
	sources Sources
	logger  *slog.Logger
}

// NewResolver creates a Resolver over the given domain accessors.
func NewResolver(sources Sources, logger *slog.Logger) *Resolver {
	return &Resolver{
		sources: sources,
		logger:  logger.With("system", "sections"),
	}
}

// Resolve binds one section to live domain data. The effective
// data-source key is the authored content's dataSource when present,
// else the registry default for the section type. No effective key, or
// an unrecognized one, degrades to the authored content unchanged; an
// unrecognized key additionally logs a warning. Accessor failures
// propagate to the caller without retry or suppression.
func (r *Resolver) Resolve(
	ctx context.Context,
	tenantID, sectionType string,
	content Content,
) (Result, error) {
	key, _ := content["dataSource"].(string)
	if key == "" {
		key = defaultSources[sectionType]
	}
	if key == "" {
		return Result{Content: content}, nil
	}

	entry, ok := sourceTable[key]
	if !ok {
		r.logger.Warn(
			"unknown data source",
			"dataSource", key,
			"sectionType", sectionType,
			"tenant", tenantID,
		)
		return Result{Content: content}, nil
	}

	payload, err := entry.resolve(ctx, r, tenantID, content)
	if err != nil {
		return Result{}, err
	}

	if entry.strategy == strategySidecar {
		return Result{Content: content, ResolvedData: payload}, nil
	}

	fields, _ := payload.(Content)
	if fields == nil {
		// Absent single-entity record: the expected no-data-yet
		// case, not a failure.
		return Result{Content: content}, nil
	}

	return Result{Content: merge(content, fields)}, nil
}

// merge returns a new map holding the authored content plus the
// resolved fields. The input is never mutated; untouched keys survive.
func merge(content, fields Content) Content {
	out := make(Content, len(content)+len(fields))
	for k, v := range content {
		out[k] = v
	}
	for k, v := range fields {
		out[k] = v
	}
	return out
}
