package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orevault/orevault/internal/domain"
)

// postgresStore implements Store on PostgreSQL. All mutations are
// single-statement upserts, so each call is atomic without transactions.
type postgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates the structured-query backend
func NewPostgresStore(db *pgxpool.Pool) Store {
	return &postgresStore{db: db}
}

// IsRewardsEnabled reads the player's preference, lazily inserting the
// default row on first contact so repeated lookups hit an existing record.
func (s *postgresStore) IsRewardsEnabled(ctx context.Context, playerID uuid.UUID) (bool, error) {
	var enabled bool
	err := s.db.QueryRow(ctx, SQLSelectRewardsEnabled, playerID).Scan(&enabled)
	if err == nil {
		return enabled, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return true, fmt.Errorf(ErrMsgSelectSettingsFailed, err)
	}

	if _, err := s.db.Exec(ctx, SQLInsertDefaultSettings, playerID); err != nil {
		return true, fmt.Errorf(ErrMsgInsertDefaultFailed, err)
	}
	return true, nil
}

func (s *postgresStore) SetRewardsEnabled(ctx context.Context, playerID uuid.UUID, enabled bool) error {
	if _, err := s.db.Exec(ctx, SQLUpsertRewardsEnabled, playerID, enabled); err != nil {
		return fmt.Errorf(ErrMsgUpsertSettingsFailed, err)
	}
	return nil
}

func (s *postgresStore) RecordStatistic(ctx context.Context, playerID uuid.UUID, ore domain.Ore, amount float64) error {
	if _, err := s.db.Exec(ctx, SQLUpsertStatistic, playerID, ore.String(), amount); err != nil {
		return fmt.Errorf(ErrMsgUpsertStatisticFailed, err)
	}
	return nil
}

func (s *postgresStore) GetStatistics(ctx context.Context, playerID uuid.UUID) (map[domain.Ore]domain.StatisticEntry, error) {
	rows, err := s.db.Query(ctx, SQLSelectStatistics, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSelectStatisticsFailed, err)
	}
	defer rows.Close()

	stats := make(map[domain.Ore]domain.StatisticEntry)
	for rows.Next() {
		var (
			ore   string
			entry domain.StatisticEntry
		)
		if err := rows.Scan(&ore, &entry.TimesMined, &entry.AmountEarned); err != nil {
			return nil, fmt.Errorf(ErrMsgSelectStatisticsFailed, err)
		}
		stats[domain.Ore(ore)] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgSelectStatisticsFailed, err)
	}

	return stats, nil
}
