// Package site composes public pages for rendering. It loads a
// tenant's published page, resolves every visible section concurrently
// through the section resolution engine, and serves the composed page
// as JSON, with an optional in-process cache over the result.
package site

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/steeplehq/steeple/internal/config"
	"github.com/steeplehq/steeple/internal/pages"
	"github.com/steeplehq/steeple/internal/sections"
)

// RenderedPage is the composed output for one page render.
type RenderedPage struct {
	ID       uuid.UUID         `json:"id"`
	Slug     string            `json:"slug"`
	Title    string            `json:"title"`
	Sections []RenderedSection `json:"sections"`
}

// RenderedSection pairs a section's authored identity with its
// resolution result.
type RenderedSection struct {
	ID           uuid.UUID        `json:"id"`
	SectionType  string           `json:"sectionType"`
	SortOrder    int              `json:"sortOrder"`
	Content      sections.Content `json:"content"`
	ResolvedData any              `json:"resolvedData,omitempty"`
}

// Composer builds rendered pages from stored page definitions and the
// section resolver.
type Composer struct {
	pages    pages.System
	resolver *sections.Resolver
	cache    *pageCache
	logger   *slog.Logger
}

// NewComposer creates a Composer. The composed-page cache is created
// only when enabled in the site config.
func NewComposer(
	cfg *config.SiteConfig,
	pagesSys pages.System,
	resolver *sections.Resolver,
	logger *slog.Logger,
) (*Composer, error) {
	c := &Composer{
		pages:    pagesSys,
		resolver: resolver,
		logger:   logger.With("system", "site"),
	}

	if cfg.CacheEnabled {
		cache, err := newPageCache(cfg.CacheMaxCost, cfg.CacheTTLDuration())
		if err != nil {
			return nil, fmt.Errorf("page cache init failed: %w", err)
		}
		c.cache = cache
	}

	return c, nil
}

// Close releases the composed-page cache, if any.
func (c *Composer) Close() {
	if c.cache != nil {
		c.cache.close()
	}
}

// ComposePage loads the tenant's published page by slug and resolves
// its visible sections concurrently, preserving section order in the
// output. A section whose resolution fails falls back to its authored
// content; the failure is logged and sibling sections proceed.
func (c *Composer) ComposePage(
	ctx context.Context,
	tenantID, slug string,
) (*RenderedPage, error) {
	key := cacheKey(tenantID, slug)
	if c.cache != nil {
		if page, ok := c.cache.get(key); ok {
			return page, nil
		}
	}

	page, err := c.pages.FindBySlug(ctx, tenantID, slug)
	if err != nil {
		return nil, fmt.Errorf("compose page: %w", err)
	}
	if page == nil || !page.Published {
		return nil, ErrPageNotFound
	}

	stored, err := c.pages.Sections(ctx, page.ID)
	if err != nil {
		return nil, fmt.Errorf("compose page sections: %w", err)
	}

	visible := make([]pages.Section, 0, len(stored))
	for _, s := range stored {
		if s.Visible {
			visible = append(visible, s)
		}
	}

	rendered := make([]RenderedSection, len(visible))
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range visible {
		g.Go(func() error {
			rendered[i] = c.resolveSection(gctx, tenantID, s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &RenderedPage{
		ID:       page.ID,
		Slug:     page.Slug,
		Title:    page.Title,
		Sections: rendered,
	}

	if c.cache != nil {
		c.cache.set(key, result)
	}

	return result, nil
}

func (c *Composer) resolveSection(
	ctx context.Context,
	tenantID string,
	s pages.Section,
) RenderedSection {
	res, err := c.resolver.Resolve(ctx, tenantID, s.SectionType, sections.Content(s.Content))
	if err != nil {
		c.logger.Error(
			"section resolution failed",
			"section", s.ID,
			"sectionType", s.SectionType,
			"tenant", tenantID,
			"error", err,
		)
		res = sections.Result{Content: sections.Content(s.Content)}
	}

	return RenderedSection{
		ID:           s.ID,
		SectionType:  s.SectionType,
		SortOrder:    s.SortOrder,
		Content:      res.Content,
		ResolvedData: res.ResolvedData,
	}
}
