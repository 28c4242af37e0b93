package sections

import (
	"context"
	"fmt"

	"github.com/steeplehq/steeple/internal/videos"
)

func resolveLatestVideos(
	ctx context.Context,
	r *Resolver,
	tenantID string,
	content Content,
) (any, error) {
	vids, err := r.sources.Videos.Latest(ctx, tenantID, countParam(content, defaultCount))
	if err != nil {
		return nil, fmt.Errorf("resolve latest videos: %w", err)
	}

	views := make([]Content, 0, len(vids))
	for i := range vids {
		v := &vids[i]
		views = append(views, Content{
			"title":        v.Title,
			"videoUrl":     youtubeWatchURL(nil, v.YoutubeID),
			"thumbnailUrl": youtubeThumbnail(v.ThumbnailURL, v.YoutubeID),
			"publishedAt":  isoDate(v.PublishedAt),
		})
	}

	return Content{"videos": views}, nil
}

func resolveAllVideos(
	ctx context.Context,
	r *Resolver,
	tenantID string,
	_ Content,
) (any, error) {
	vids, err := r.sources.Videos.All(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("resolve all videos: %w", err)
	}

	views := make([]Content, 0, len(vids))
	for i := range vids {
		views = append(views, videoListView(&vids[i]))
	}
	return views, nil
}

func videoListView(v *videos.Video) Content {
	return Content{
		"id":           v.ID.String(),
		"title":        v.Title,
		"videoUrl":     youtubeWatchURL(nil, v.YoutubeID),
		"thumbnailUrl": youtubeThumbnail(v.ThumbnailURL, v.YoutubeID),
		"publishedAt":  isoDate(v.PublishedAt),
	}
}
