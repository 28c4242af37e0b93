package sections

import (
	"context"
	"fmt"
)

func resolveAllBibleStudies(
	ctx context.Context,
	r *Resolver,
	tenantID string,
	_ Content,
) (any, error) {
	studies, err := r.sources.BibleStudies.All(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("resolve bible studies: %w", err)
	}

	views := make([]Content, 0, len(studies))
	for i := range studies {
		s := &studies[i]
		views = append(views, Content{
			"id":       s.ID.String(),
			"title":    s.Title,
			"passage":  s.Passage,
			"date":     isoDate(s.StudyDate),
			"guideUrl": deref(s.GuideURL),
		})
	}
	return views, nil
}
