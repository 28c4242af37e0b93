package sections

import (
	"context"
	"fmt"

	"github.com/steeplehq/steeple/internal/events"
)

func resolveFeaturedEvents(
	ctx context.Context,
	r *Resolver,
	tenantID string,
	content Content,
) (any, error) {
	evts, err := r.sources.Events.Featured(ctx, tenantID, countParam(content, defaultCount))
	if err != nil {
		return nil, fmt.Errorf("resolve featured events: %w", err)
	}

	views := make([]Content, 0, len(evts))
	for i := range evts {
		e := &evts[i]
		views = append(views, Content{
			"title":           e.Title,
			"date":            isoDate(e.StartsAt),
			"location":        deref(e.Location),
			"imageUrl":        deref(e.ImageURL),
			"registrationUrl": deref(e.RegistrationURL),
		})
	}

	return Content{"featuredEvents": views}, nil
}

func resolveUpcomingEvents(
	ctx context.Context,
	r *Resolver,
	tenantID string,
	content Content,
) (any, error) {
	evts, err := r.sources.Events.Upcoming(ctx, tenantID, countParam(content, 0))
	if err != nil {
		return nil, fmt.Errorf("resolve upcoming events: %w", err)
	}
	return eventListViews(evts), nil
}

func resolveMinistryEvents(
	ctx context.Context,
	r *Resolver,
	tenantID string,
	content Content,
) (any, error) {
	slug := stringParam(content, "ministrySlug")

	evts, err := r.sources.Events.Upcoming(ctx, tenantID, 0)
	if err != nil {
		return nil, fmt.Errorf("resolve ministry events: %w", err)
	}

	matched := make([]events.Event, 0, len(evts))
	for _, e := range evts {
		if deref(e.MinistrySlug) == slug {
			matched = append(matched, e)
		}
	}
	return eventListViews(matched), nil
}

func resolveAllEvents(
	ctx context.Context,
	r *Resolver,
	tenantID string,
	_ Content,
) (any, error) {
	evts, err := r.sources.Events.All(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("resolve all events: %w", err)
	}
	return eventListViews(evts), nil
}

func eventListViews(evts []events.Event) []Content {
	views := make([]Content, 0, len(evts))
	for i := range evts {
		e := &evts[i]
		views = append(views, Content{
			"id":              e.ID.String(),
			"title":           e.Title,
			"date":            isoDate(e.StartsAt),
			"time":            clockLabel(e.StartsAt),
			"location":        deref(e.Location),
			"ministry":        ministryLabel(deref(e.MinistrySlug)),
			"imageUrl":        deref(e.ImageURL),
			"registrationUrl": deref(e.RegistrationURL),
		})
	}
	return views
}
