package sections

import (
	"context"
	"fmt"
)

// allCampusesSlug marks the sentinel "All Campuses" row some tenants
// keep for campus-selection UIs; it is not a real campus and is
// excluded from campus grids.
const allCampusesSlug = "all"

func resolveAllCampuses(
	ctx context.Context,
	r *Resolver,
	tenantID string,
	_ Content,
) (any, error) {
	all, err := r.sources.Campuses.All(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("resolve campuses: %w", err)
	}

	views := make([]Content, 0, len(all))
	for i := range all {
		c := &all[i]
		if c.Slug == allCampusesSlug {
			continue
		}
		views = append(views, Content{
			"name":         c.Name,
			"slug":         c.Slug,
			"address":      deref(c.Address),
			"city":         deref(c.City),
			"serviceTimes": deref(c.ServiceTimes),
			"imageUrl":     deref(c.ImageURL),
		})
	}

	return Content{"campuses": views}, nil
}
