package sections

import (
	"context"
	"fmt"
)

func resolveLatestDailyBread(
	ctx context.Context,
	r *Resolver,
	tenantID string,
	_ Content,
) (any, error) {
	entry, err := r.sources.DailyBread.Latest(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("resolve daily bread: %w", err)
	}
	if entry == nil {
		return nil, nil
	}

	return Content{
		"title":     entry.Title,
		"passage":   entry.Passage,
		"body":      entry.Body,
		"dateLabel": dateLabel(entry.EntryDate),
	}, nil
}
