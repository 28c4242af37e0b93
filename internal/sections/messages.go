package sections

import (
	"context"
	"fmt"

	"github.com/steeplehq/steeple/internal/messages"
)

func resolveLatestMessage(
	ctx context.Context,
	r *Resolver,
	tenantID string,
	_ Content,
) (any, error) {
	m, err := r.sources.Messages.Latest(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("resolve latest message: %w", err)
	}
	if m == nil {
		return nil, nil
	}

	return Content{
		"title":        m.Title,
		"speaker":      m.Speaker,
		"passage":      deref(m.Passage),
		"dateLabel":    dateLabel(m.PreachedAt),
		"videoUrl":     youtubeWatchURL(m.VideoURL, deref(m.VideoID)),
		"thumbnailUrl": youtubeThumbnail(m.ThumbnailURL, deref(m.VideoID)),
		"description":  deref(m.Description),
	}, nil
}

func resolveAllMessages(
	ctx context.Context,
	r *Resolver,
	tenantID string,
	_ Content,
) (any, error) {
	msgs, err := r.sources.Messages.All(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("resolve all messages: %w", err)
	}

	views := make([]Content, 0, len(msgs))
	for i := range msgs {
		views = append(views, messageListView(&msgs[i]))
	}
	return views, nil
}

func messageListView(m *messages.Message) Content {
	return Content{
		"id":           m.ID.String(),
		"title":        m.Title,
		"speaker":      m.Speaker,
		"passage":      deref(m.Passage),
		"date":         isoDate(m.PreachedAt),
		"videoUrl":     youtubeWatchURL(m.VideoURL, deref(m.VideoID)),
		"thumbnailUrl": youtubeThumbnail(m.ThumbnailURL, deref(m.VideoID)),
	}
}
