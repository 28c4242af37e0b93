package site_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/steeplehq/steeple/internal/biblestudies"
	"github.com/steeplehq/steeple/internal/campuses"
	"github.com/steeplehq/steeple/internal/config"
	"github.com/steeplehq/steeple/internal/dailybread"
	"github.com/steeplehq/steeple/internal/events"
	"github.com/steeplehq/steeple/internal/messages"
	"github.com/steeplehq/steeple/internal/pages"
	"github.com/steeplehq/steeple/internal/sections"
	"github.com/steeplehq/steeple/internal/site"
	"github.com/steeplehq/steeple/internal/videos"
	"github.com/steeplehq/steeple/pkg/pagination"
)

type fakePages struct {
	page     *pages.Page
	sections []pages.Section
	finds    int
}

func (f *fakePages) Handler() *pages.Handler { return nil }

func (f *fakePages) List(
	context.Context, pagination.PageRequest, pages.Filters,
) (*pagination.PageResult[pages.Page], error) {
	return nil, nil
}

func (f *fakePages) Find(context.Context, uuid.UUID) (*pages.Page, error) { return nil, nil }

func (f *fakePages) Create(context.Context, pages.CreateCommand) (*pages.Page, error) {
	return nil, nil
}

func (f *fakePages) Update(context.Context, uuid.UUID, pages.UpdateCommand) (*pages.Page, error) {
	return nil, nil
}

func (f *fakePages) Delete(context.Context, uuid.UUID) error { return nil }

func (f *fakePages) FindBySlug(context.Context, string, string) (*pages.Page, error) {
	f.finds++
	return f.page, nil
}

func (f *fakePages) Sections(context.Context, uuid.UUID) ([]pages.Section, error) {
	return f.sections, nil
}

func (f *fakePages) FindSection(context.Context, uuid.UUID) (*pages.Section, error) {
	return nil, nil
}

func (f *fakePages) CreateSection(
	context.Context, uuid.UUID, pages.CreateSectionCommand,
) (*pages.Section, error) {
	return nil, nil
}

func (f *fakePages) UpdateSection(
	context.Context, uuid.UUID, pages.UpdateSectionCommand,
) (*pages.Section, error) {
	return nil, nil
}

func (f *fakePages) DeleteSection(context.Context, uuid.UUID) error { return nil }

type stubMessages struct {
	latest *messages.Message
	err    error
}

func (s *stubMessages) Latest(context.Context, string) (*messages.Message, error) {
	return s.latest, s.err
}

func (s *stubMessages) All(context.Context, string) ([]messages.Message, error) {
	return nil, s.err
}

type stubEvents struct{ all []events.Event }

func (s *stubEvents) Upcoming(context.Context, string, int) ([]events.Event, error) {
	return s.all, nil
}

func (s *stubEvents) Featured(context.Context, string, int) ([]events.Event, error) {
	return s.all, nil
}

func (s *stubEvents) All(context.Context, string) ([]events.Event, error) {
	return s.all, nil
}

type stubVideos struct{}

func (stubVideos) Latest(context.Context, string, int) ([]videos.Video, error) { return nil, nil }
func (stubVideos) All(context.Context, string) ([]videos.Video, error)         { return nil, nil }

type stubStudies struct{}

func (stubStudies) All(context.Context, string) ([]biblestudies.Study, error) { return nil, nil }

type stubDailyBread struct{}

func (stubDailyBread) Latest(context.Context, string) (*dailybread.Entry, error) {
	return nil, nil
}

type stubCampuses struct{}

func (stubCampuses) All(context.Context, string) ([]campuses.Campus, error) { return nil, nil }

func testSources(msgs *stubMessages) sections.Sources {
	return sections.Sources{
		Messages:     msgs,
		Events:       &stubEvents{},
		Videos:       stubVideos{},
		BibleStudies: stubStudies{},
		DailyBread:   stubDailyBread{},
		Campuses:     stubCampuses{},
	}
}

func testComposer(
	t *testing.T,
	cfg *config.SiteConfig,
	store *fakePages,
	sources sections.Sources,
) *site.Composer {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	resolver := sections.NewResolver(sources, logger)

	composer, err := site.NewComposer(cfg, store, resolver, logger)
	if err != nil {
		t.Fatalf("NewComposer() error = %v", err)
	}
	t.Cleanup(composer.Close)

	return composer
}

func testPageStore() *fakePages {
	pageID := uuid.New()
	return &fakePages{
		page: &pages.Page{
			ID:        pageID,
			TenantID:  "grace",
			Slug:      "home",
			Title:     "Home",
			Published: true,
		},
		sections: []pages.Section{
			{
				ID:          uuid.New(),
				PageID:      pageID,
				SectionType: "hero",
				Content:     map[string]any{"heading": "Welcome"},
				SortOrder:   0,
				Visible:     true,
			},
			{
				ID:          uuid.New(),
				PageID:      pageID,
				SectionType: "spotlight-media",
				Content:     map[string]any{},
				SortOrder:   1,
				Visible:     true,
			},
			{
				ID:          uuid.New(),
				PageID:      pageID,
				SectionType: "all-events",
				Content:     map[string]any{},
				SortOrder:   2,
				Visible:     false,
			},
		},
	}
}

func TestComposePageOrderAndVisibility(t *testing.T) {
	store := testPageStore()
	msg := &messages.Message{
		ID:         uuid.New(),
		Title:      "The Prodigal Son",
		Speaker:    "Pastor Kim",
		PreachedAt: time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC),
	}
	composer := testComposer(t, &config.SiteConfig{CacheTTL: "30s"}, store, testSources(&stubMessages{latest: msg}))

	page, err := composer.ComposePage(context.Background(), "grace", "home")
	if err != nil {
		t.Fatalf("ComposePage() error = %v", err)
	}

	if page.Slug != "home" || page.Title != "Home" {
		t.Errorf("page = %v, want home page", page)
	}
	if len(page.Sections) != 2 {
		t.Fatalf("sections length = %d, want hidden section excluded", len(page.Sections))
	}
	if page.Sections[0].SectionType != "hero" || page.Sections[1].SectionType != "spotlight-media" {
		t.Errorf("section order = %s, %s; want authored order preserved",
			page.Sections[0].SectionType, page.Sections[1].SectionType)
	}
	if page.Sections[1].Content["title"] != "The Prodigal Son" {
		t.Errorf("resolved title = %v, want merged message", page.Sections[1].Content["title"])
	}
}

func TestComposePageSectionFailureIsolated(t *testing.T) {
	store := testPageStore()
	composer := testComposer(
		t,
		&config.SiteConfig{CacheTTL: "30s"},
		store,
		testSources(&stubMessages{err: errors.New("connection refused")}),
	)

	page, err := composer.ComposePage(context.Background(), "grace", "home")
	if err != nil {
		t.Fatalf("ComposePage() error = %v, want failing section isolated", err)
	}

	if len(page.Sections) != 2 {
		t.Fatalf("sections length = %d, want 2", len(page.Sections))
	}

	// The failed section falls back to its authored content.
	failed := page.Sections[1]
	if failed.SectionType != "spotlight-media" {
		t.Fatalf("section type = %s", failed.SectionType)
	}
	if _, ok := failed.Content["title"]; ok {
		t.Error("failed section has merged fields, want authored content only")
	}
	if failed.ResolvedData != nil {
		t.Errorf("failed section ResolvedData = %v, want nil", failed.ResolvedData)
	}
}

func TestComposePageNotFound(t *testing.T) {
	tests := []struct {
		name string
		page *pages.Page
	}{
		{"missing page", nil},
		{"unpublished page", &pages.Page{ID: uuid.New(), Slug: "draft", Published: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakePages{page: tt.page}
			composer := testComposer(
				t,
				&config.SiteConfig{CacheTTL: "30s"},
				store,
				testSources(&stubMessages{}),
			)

			_, err := composer.ComposePage(context.Background(), "grace", "draft")
			if !errors.Is(err, site.ErrPageNotFound) {
				t.Errorf("ComposePage() error = %v, want ErrPageNotFound", err)
			}
		})
	}
}

func TestComposePageCacheHit(t *testing.T) {
	store := testPageStore()
	composer := testComposer(
		t,
		&config.SiteConfig{CacheEnabled: true, CacheMaxCost: 1 << 20, CacheTTL: "1m"},
		store,
		testSources(&stubMessages{}),
	)

	if _, err := composer.ComposePage(context.Background(), "grace", "home"); err != nil {
		t.Fatalf("first ComposePage() error = %v", err)
	}

	// Ristretto admits asynchronously; poll until a compose is served
	// from cache without touching the page store.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		before := store.finds
		if _, err := composer.ComposePage(context.Background(), "grace", "home"); err != nil {
			t.Fatalf("ComposePage() error = %v", err)
		}
		if store.finds == before {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Error("page was never served from cache")
}
