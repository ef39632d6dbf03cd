// Package seed loads the compiled-in fixture data into an empty postgres
// database. Collections that already hold rows are left untouched, so a
// redeploy never duplicates or resets data.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslink/campuslink/internal/app/repositories"
	"github.com/campuslink/campuslink/internal/fixtures"
	"github.com/campuslink/campuslink/internal/pkg/logger"
)

// Postgres seeds every empty collection with its fixture records.
func Postgres(ctx context.Context, db *pgxpool.Pool, stores *repositories.Stores) error {
	empty, err := tableEmpty(ctx, db, "hostels")
	if err != nil {
		return err
	}
	if empty {
		for _, h := range fixtures.Hostels() {
			if err := stores.Hostels.Set(ctx, h); err != nil {
				return fmt.Errorf("failed to seed hostels: %w", err)
			}
		}
		logger.Info().Msg("Seeded hostels")
	}

	empty, err = tableEmpty(ctx, db, "news")
	if err != nil {
		return err
	}
	if empty {
		for _, n := range fixtures.News() {
			if err := stores.News.Set(ctx, n); err != nil {
				return fmt.Errorf("failed to seed news: %w", err)
			}
		}
		logger.Info().Msg("Seeded news")
	}

	empty, err = tableEmpty(ctx, db, "events")
	if err != nil {
		return err
	}
	if empty {
		for _, e := range fixtures.Events() {
			if err := stores.Events.Set(ctx, e); err != nil {
				return fmt.Errorf("failed to seed events: %w", err)
			}
		}
		logger.Info().Msg("Seeded events")
	}

	empty, err = tableEmpty(ctx, db, "jobs")
	if err != nil {
		return err
	}
	if empty {
		for _, j := range fixtures.Jobs() {
			if err := stores.Jobs.Set(ctx, j); err != nil {
				return fmt.Errorf("failed to seed jobs: %w", err)
			}
		}
		logger.Info().Msg("Seeded jobs")
	}

	empty, err = tableEmpty(ctx, db, "roommates")
	if err != nil {
		return err
	}
	if empty {
		for _, r := range fixtures.Roommates() {
			if err := stores.Roommates.Set(ctx, r); err != nil {
				return fmt.Errorf("failed to seed roommates: %w", err)
			}
		}
		logger.Info().Msg("Seeded roommates")
	}

	empty, err = tableEmpty(ctx, db, "spotlight")
	if err != nil {
		return err
	}
	if empty {
		for _, s := range fixtures.Spotlight() {
			if err := stores.Spotlight.Set(ctx, s); err != nil {
				return fmt.Errorf("failed to seed spotlight: %w", err)
			}
		}
		logger.Info().Msg("Seeded spotlight")
	}

	return nil
}

func tableEmpty(ctx context.Context, db *pgxpool.Pool, table string) (bool, error) {
	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count == 0, nil
}
