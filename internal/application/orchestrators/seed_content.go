package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"greenvours/internal/adapters/storage/docstore"
	"greenvours/internal/application/accessors"
	"greenvours/internal/domain/article"
	"greenvours/internal/domain/program"
	"greenvours/internal/domain/project"
	"greenvours/internal/domain/relief"
	"greenvours/internal/domain/sitecontent"
	"greenvours/internal/domain/team"
	"greenvours/internal/domain/tour"
)

// SeedContentDeps holds the accessors the content seeder populates.
type SeedContentDeps struct {
	Tours       *accessors.Accessor[tour.Tour]
	News        *accessors.Accessor[article.Article]
	Team        *accessors.Accessor[team.Member]
	Projects    *accessors.Accessor[project.Project]
	Programs    *accessors.Accessor[program.Program]
	Relief      *accessors.Accessor[relief.Project]
	HowWeHelp   *accessors.Accessor[sitecontent.HowWeHelpItem]
	Vision      *accessors.Singleton[sitecontent.VisionContent]
	ContactInfo *accessors.Singleton[sitecontent.ContactInfo]
}

// ExecuteSeedContent populates every empty content collection with the
// initial site data. Non-empty collections are left untouched, so running
// the seeder repeatedly is safe.
// PRE: Database is initialized
// POST: Every content collection has at least its initial records
func ExecuteSeedContent(ctx context.Context, deps SeedContentDeps) error {
	if err := populate(ctx, deps.Tours, seedTours()); err != nil {
		return err
	}
	if err := populate(ctx, deps.News, seedNews()); err != nil {
		return err
	}
	if err := populate(ctx, deps.Team, seedTeam()); err != nil {
		return err
	}
	if err := populate(ctx, deps.Projects, seedProjects()); err != nil {
		return err
	}
	if err := populate(ctx, deps.Programs, seedPrograms()); err != nil {
		return err
	}
	if err := populate(ctx, deps.Relief, seedRelief()); err != nil {
		return err
	}
	if err := populate(ctx, deps.HowWeHelp, seedHowWeHelp()); err != nil {
		return err
	}
	if err := populateSingleton(ctx, deps.Vision, seedVision()); err != nil {
		return err
	}
	if err := populateSingleton(ctx, deps.ContactInfo, seedContactInfo()); err != nil {
		return err
	}
	slog.Info("content_seeded")
	return nil
}

// populate fills one collection when it is empty, keeping each record's
// seed id as its document key.
func populate[T any](ctx context.Context, acc *accessors.Accessor[T], records []T) error {
	existing, err := acc.List(ctx)
	if err != nil {
		return fmt.Errorf("seed %s: %w", acc.Collection(), err)
	}
	if len(existing) > 0 {
		slog.Info("seed_skipped", "collection", acc.Collection(), "existing", len(existing))
		return nil
	}
	for _, rec := range records {
		if _, err := acc.Add(ctx, rec); err != nil {
			return fmt.Errorf("seed %s: %w", acc.Collection(), err)
		}
	}
	slog.Info("seed_populated", "collection", acc.Collection(), "records", len(records))
	return nil
}

func populateSingleton[T any](ctx context.Context, s *accessors.Singleton[T], record T) error {
	_, err := s.Get(ctx)
	if err == nil {
		slog.Info("seed_skipped", "collection", s.Collection(), "existing", 1)
		return nil
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		return fmt.Errorf("seed %s: %w", s.Collection(), err)
	}
	if err := s.Save(ctx, record); err != nil {
		return fmt.Errorf("seed %s: %w", s.Collection(), err)
	}
	slog.Info("seed_populated", "collection", s.Collection(), "records", 1)
	return nil
}
