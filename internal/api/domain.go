package api

import (
	"github.com/steeplehq/steeple/internal/biblestudies"
	"github.com/steeplehq/steeple/internal/campuses"
	"github.com/steeplehq/steeple/internal/dailybread"
	"github.com/steeplehq/steeple/internal/events"
	"github.com/steeplehq/steeple/internal/media"
	"github.com/steeplehq/steeple/internal/messages"
	"github.com/steeplehq/steeple/internal/pages"
	"github.com/steeplehq/steeple/internal/videos"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Messages     messages.System
	Events       events.System
	Videos       videos.System
	BibleStudies biblestudies.System
	DailyBread   dailybread.System
	Campuses     campuses.System
	Pages        pages.System
	Media        media.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	return &Domain{
		Messages:     messages.New(db, runtime.Logger, runtime.Pagination),
		Events:       events.New(db, runtime.Logger, runtime.Pagination),
		Videos:       videos.New(db, runtime.Logger, runtime.Pagination),
		BibleStudies: biblestudies.New(db, runtime.Logger, runtime.Pagination),
		DailyBread:   dailybread.New(db, runtime.Logger, runtime.Pagination),
		Campuses:     campuses.New(db, runtime.Logger, runtime.Pagination),
		Pages:        pages.New(db, runtime.Logger, runtime.Pagination),
		Media:        media.New(db, runtime.Storage, runtime.Logger, runtime.Pagination),
	}
}
