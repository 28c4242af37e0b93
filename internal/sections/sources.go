package sections

import (
	"context"

	"github.com/steeplehq/steeple/internal/biblestudies"
	"github.com/steeplehq/steeple/internal/campuses"
	"github.com/steeplehq/steeple/internal/dailybread"
	"github.com/steeplehq/steeple/internal/events"
	"github.com/steeplehq/steeple/internal/messages"
	"github.com/steeplehq/steeple/internal/videos"
)

// MessageSource provides the message reads the engine consumes.
// Latest returns (nil, nil) when the tenant has no messages.
type MessageSource interface {
	Latest(ctx context.Context, tenantID string) (*messages.Message, error)
	All(ctx context.Context, tenantID string) ([]messages.Message, error)
}

// EventSource provides the event reads the engine consumes.
type EventSource interface {
	Upcoming(ctx context.Context, tenantID string, limit int) ([]events.Event, error)
	Featured(ctx context.Context, tenantID string, limit int) ([]events.Event, error)
	All(ctx context.Context, tenantID string) ([]events.Event, error)
}

// VideoSource provides the video reads the engine consumes.
type VideoSource interface {
	Latest(ctx context.Context, tenantID string, count int) ([]videos.Video, error)
	All(ctx context.Context, tenantID string) ([]videos.Video, error)
}

// BibleStudySource provides the bible study reads the engine consumes.
type BibleStudySource interface {
	All(ctx context.Context, tenantID string) ([]biblestudies.Study, error)
}

// DailyBreadSource provides the devotional reads the engine consumes.
// Latest returns (nil, nil) when no entry is current.
type DailyBreadSource interface {
	Latest(ctx context.Context, tenantID string) (*dailybread.Entry, error)
}

// CampusSource provides the campus reads the engine consumes.
type CampusSource interface {
	All(ctx context.Context, tenantID string) ([]campuses.Campus, error)
}

// Sources bundles the domain accessors the engine resolves against.
// The domain systems satisfy these interfaces directly.
type Sources struct {
	Messages     MessageSource
	Events       EventSource
	Videos       VideoSource
	BibleStudies BibleStudySource
	DailyBread   DailyBreadSource
	Campuses     CampusSource
}
