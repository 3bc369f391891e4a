package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/brushtrack/brushtrack/internal/habits/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresHistoryRepository implements domain.Repository using PostgreSQL.
// Used by the hosted sync deployment mode.
type PostgresHistoryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresHistoryRepository creates a new PostgreSQL history repository.
func NewPostgresHistoryRepository(pool *pgxpool.Pool) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{pool: pool}
}

// Save persists a history and all of its day records.
func (r *PostgresHistoryRepository) Save(ctx context.Context, history *domain.History) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO habit_histories (id, user_id, last_recovery_used_at, recovered_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			last_recovery_used_at = EXCLUDED.last_recovery_used_at,
			recovered_date = EXCLUDED.recovered_date,
			updated_at = EXCLUDED.updated_at`,
		history.ID(),
		history.UserID(),
		history.LastRecoveryUsedAt(),
		recoveredDateString(history.RecoveredDate()),
		history.CreatedAt(),
		history.UpdatedAt(),
	)
	if err != nil {
		return err
	}

	for _, key := range history.Keys() {
		rec, _ := history.Record(key)
		_, err = tx.Exec(ctx, `
			INSERT INTO day_records (history_id, date_key, morning, night, floss, reflection)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (history_id, date_key) DO UPDATE SET
				morning = EXCLUDED.morning,
				night = EXCLUDED.night,
				floss = EXCLUDED.floss,
				reflection = EXCLUDED.reflection`,
			history.ID(),
			key.String(),
			rec.Morning(),
			rec.Night(),
			rec.Floss(),
			nullableString(rec.Reflection()),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// FindByUserID loads a user's history. Returns nil, nil when absent.
func (r *PostgresHistoryRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.History, error) {
	var (
		id                   uuid.UUID
		uid                  uuid.UUID
		lastRecoveryUsedAt   *time.Time
		recoveredDateStr     *string
		createdAt, updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, last_recovery_used_at, recovered_date, created_at, updated_at
		FROM habit_histories WHERE user_id = $1`,
		userID,
	).Scan(&id, &uid, &lastRecoveryUsedAt, &recoveredDateStr, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var recoveredDate *domain.DateKey
	if recoveredDateStr != nil {
		key, err := domain.ParseDateKey(*recoveredDateStr)
		if err != nil {
			return nil, err
		}
		recoveredDate = &key
	}

	records, err := r.loadRecords(ctx, id)
	if err != nil {
		return nil, err
	}

	return domain.RehydrateHistory(id, uid, records, lastRecoveryUsedAt, recoveredDate, createdAt, updatedAt), nil
}

func (r *PostgresHistoryRepository) loadRecords(ctx context.Context, historyID uuid.UUID) (map[domain.DateKey]domain.DayRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date_key, morning, night, floss, reflection
		FROM day_records WHERE history_id = $1`,
		historyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make(map[domain.DateKey]domain.DayRecord)
	for rows.Next() {
		var (
			keyStr                string
			morning, night, floss bool
			reflection            *string
		)
		if err := rows.Scan(&keyStr, &morning, &night, &floss, &reflection); err != nil {
			return nil, err
		}
		key, err := domain.ParseDateKey(keyStr)
		if err != nil {
			return nil, err
		}
		text := ""
		if reflection != nil {
			text = *reflection
		}
		records[key] = domain.RehydrateDayRecord(morning, night, floss, text)
	}
	return records, rows.Err()
}

func recoveredDateString(k *domain.DateKey) *string {
	if k == nil {
		return nil
	}
	s := k.String()
	return &s
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
