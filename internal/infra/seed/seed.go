// Package seed loads the bootstrap rows into an empty store.
//
// Every phase is idempotent: a phase that finds existing rows for its entity
// inserts nothing, so running the loader on every start is safe. Articles are
// seeded before comments because comment rows carry the article ids assigned
// at insert time.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dalahus/internal/domain/entity"
	"dalahus/internal/observability/logging"
	"dalahus/internal/observability/metrics"
	"dalahus/internal/repository"
)

// Repositories bundles the stores the loader writes to.
type Repositories struct {
	Brokers  repository.BrokerRepository
	Housing  repository.HousingRepository
	Offices  repository.OfficeRepository
	Accounts repository.AccountRepository
	Articles repository.ArticleRepository
	Comments repository.CommentRepository
}

// Loader seeds the bootstrap fixtures.
type Loader struct {
	repos  Repositories
	logger *slog.Logger
	now    func() time.Time
}

// NewLoader creates a seed loader writing through the given repositories.
func NewLoader(repos Repositories, logger *slog.Logger) *Loader {
	return &Loader{
		repos:  repos,
		logger: logger,
		now:    time.Now,
	}
}

// Run executes every seed phase in dependency order. The independent entities
// go first, then articles, then the comments that reference them. The loader's
// logger travels on the context so each phase logs through it.
func (l *Loader) Run(ctx context.Context) error {
	ctx = logging.WithLogger(ctx, l.logger)

	if err := l.seedBrokers(ctx); err != nil {
		return fmt.Errorf("seed brokers: %w", err)
	}
	if err := l.seedHousing(ctx); err != nil {
		return fmt.Errorf("seed housing: %w", err)
	}
	if err := l.seedOffices(ctx); err != nil {
		return fmt.Errorf("seed offices: %w", err)
	}
	if err := l.seedAccounts(ctx); err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}
	if err := l.seedArticles(ctx); err != nil {
		return fmt.Errorf("seed articles: %w", err)
	}
	if err := l.seedComments(ctx); err != nil {
		return fmt.Errorf("seed comments: %w", err)
	}
	return nil
}

func (l *Loader) skip(ctx context.Context, name string, rows int64) {
	phaseLogger(ctx, name).Info("seed phase skipped, rows exist", "rows", rows)
	metrics.RecordSeedSkipped(name)
}

func (l *Loader) done(ctx context.Context, name string, inserted int) {
	phaseLogger(ctx, name).Info("seed phase completed", "inserted", inserted)
	metrics.RecordSeedInserted(name, inserted)
}

func phaseLogger(ctx context.Context, name string) *slog.Logger {
	return logging.WithFields(logging.FromContext(ctx), map[string]interface{}{"entity": name})
}

func (l *Loader) seedBrokers(ctx context.Context) error {
	count, err := l.repos.Brokers.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		l.skip(ctx, "brokers", count)
		return nil
	}
	seeds := brokerSeeds()
	for _, b := range seeds {
		if err := l.repos.Brokers.Create(ctx, b); err != nil {
			return err
		}
	}
	l.done(ctx, "brokers", len(seeds))
	return nil
}

func (l *Loader) seedHousing(ctx context.Context) error {
	count, err := l.repos.Housing.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		l.skip(ctx, "housing", count)
		return nil
	}
	seeds := housingSeeds()
	for _, h := range seeds {
		if err := l.repos.Housing.Create(ctx, h); err != nil {
			return err
		}
	}
	l.done(ctx, "housing", len(seeds))
	return nil
}

func (l *Loader) seedOffices(ctx context.Context) error {
	count, err := l.repos.Offices.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		l.skip(ctx, "offices", count)
		return nil
	}
	seeds := officeSeeds()
	for _, o := range seeds {
		if err := l.repos.Offices.Create(ctx, o); err != nil {
			return err
		}
	}
	l.done(ctx, "offices", len(seeds))
	return nil
}

func (l *Loader) seedAccounts(ctx context.Context) error {
	count, err := l.repos.Accounts.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		l.skip(ctx, "accounts", count)
		return nil
	}
	seeds := accountSeeds()
	for _, a := range seeds {
		if err := l.repos.Accounts.Create(ctx, a); err != nil {
			return err
		}
	}
	l.done(ctx, "accounts", len(seeds))
	return nil
}

func (l *Loader) seedArticles(ctx context.Context) error {
	count, err := l.repos.Articles.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		l.skip(ctx, "articles", count)
		return nil
	}

	brokerIDs, err := l.brokerIDsByEmail(ctx)
	if err != nil {
		return err
	}

	now := l.now()
	seeds := articleSeeds()
	for _, s := range seeds {
		article := &entity.Article{
			Title:       s.Title,
			Body:        s.Body,
			PublishedAt: now.Add(-s.Age),
		}
		if s.AuthorEmail != "" {
			id, ok := brokerIDs[s.AuthorEmail]
			if !ok {
				return fmt.Errorf("article %q: no broker with email %q", s.Title, s.AuthorEmail)
			}
			article.BrokerID = &id
		}
		if err := l.repos.Articles.Create(ctx, article); err != nil {
			return err
		}
	}
	l.done(ctx, "articles", len(seeds))
	return nil
}

func (l *Loader) seedComments(ctx context.Context) error {
	count, err := l.repos.Comments.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		l.skip(ctx, "comments", count)
		return nil
	}

	articleIDs, err := l.articleIDsByTitle(ctx)
	if err != nil {
		return err
	}

	now := l.now()
	seeds := commentSeeds()
	for _, s := range seeds {
		id, ok := articleIDs[s.ArticleTitle]
		if !ok {
			return fmt.Errorf("comment by %q: no article titled %q", s.AuthorName, s.ArticleTitle)
		}
		comment := &entity.Comment{
			ArticleID:  id,
			AuthorName: s.AuthorName,
			Body:       s.Body,
			CreatedAt:  now.Add(-s.Age),
		}
		if err := l.repos.Comments.Create(ctx, comment); err != nil {
			return err
		}
	}
	l.done(ctx, "comments", len(seeds))
	return nil
}

func (l *Loader) brokerIDsByEmail(ctx context.Context) (map[string]int64, error) {
	brokers, err := l.repos.Brokers.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]int64, len(brokers))
	for _, b := range brokers {
		ids[b.Email] = b.ID
	}
	return ids, nil
}

func (l *Loader) articleIDsByTitle(ctx context.Context) (map[string]int64, error) {
	articles, err := l.repos.Articles.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]int64, len(articles))
	for _, a := range articles {
		ids[a.Title] = a.ID
	}
	return ids, nil
}
