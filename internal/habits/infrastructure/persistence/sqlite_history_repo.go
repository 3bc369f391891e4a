package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/brushtrack/brushtrack/internal/habits/domain"
	"github.com/google/uuid"
)

// SQLiteHistoryRepository implements domain.Repository using SQLite.
type SQLiteHistoryRepository struct {
	db *sql.DB
}

// NewSQLiteHistoryRepository creates a new SQLite history repository.
func NewSQLiteHistoryRepository(db *sql.DB) *SQLiteHistoryRepository {
	return &SQLiteHistoryRepository{db: db}
}

// Save persists a history and all of its day records.
func (r *SQLiteHistoryRepository) Save(ctx context.Context, history *domain.History) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO habit_histories (id, user_id, last_recovery_used_at, recovered_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			last_recovery_used_at = excluded.last_recovery_used_at,
			recovered_date = excluded.recovered_date,
			updated_at = excluded.updated_at`,
		history.ID().String(),
		history.UserID().String(),
		nullTimeString(history.LastRecoveryUsedAt()),
		nullDateKeyString(history.RecoveredDate()),
		history.CreatedAt().Format(time.RFC3339),
		history.UpdatedAt().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	for _, key := range history.Keys() {
		rec, _ := history.Record(key)
		_, err = tx.ExecContext(ctx, `
			INSERT INTO day_records (history_id, date_key, morning, night, floss, reflection)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (history_id, date_key) DO UPDATE SET
				morning = excluded.morning,
				night = excluded.night,
				floss = excluded.floss,
				reflection = excluded.reflection`,
			history.ID().String(),
			key.String(),
			boolToInt64(rec.Morning()),
			boolToInt64(rec.Night()),
			boolToInt64(rec.Floss()),
			toNullString(rec.Reflection()),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindByUserID loads a user's history. Returns nil, nil when absent.
func (r *SQLiteHistoryRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.History, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, last_recovery_used_at, recovered_date, created_at, updated_at
		FROM habit_histories WHERE user_id = ?`,
		userID.String(),
	)

	var (
		idStr, userStr         string
		lastRecovery, recDate  sql.NullString
		createdStr, updatedStr string
	)
	if err := row.Scan(&idStr, &userStr, &lastRecovery, &recDate, &createdStr, &updatedStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	uid, err := uuid.Parse(userStr)
	if err != nil {
		return nil, err
	}
	createdAt, err := time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return nil, err
	}
	updatedAt, err := time.Parse(time.RFC3339, updatedStr)
	if err != nil {
		return nil, err
	}
	lastRecoveryUsedAt, err := parseNullTime(lastRecovery)
	if err != nil {
		return nil, err
	}
	recoveredDate, err := parseNullDateKey(recDate)
	if err != nil {
		return nil, err
	}

	records, err := r.loadRecords(ctx, idStr)
	if err != nil {
		return nil, err
	}

	return domain.RehydrateHistory(id, uid, records, lastRecoveryUsedAt, recoveredDate, createdAt, updatedAt), nil
}

func (r *SQLiteHistoryRepository) loadRecords(ctx context.Context, historyID string) (map[domain.DateKey]domain.DayRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date_key, morning, night, floss, reflection
		FROM day_records WHERE history_id = ?`,
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
			morning, night, floss int64
			reflection            sql.NullString
		)
		if err := rows.Scan(&keyStr, &morning, &night, &floss, &reflection); err != nil {
			return nil, err
		}
		key, err := domain.ParseDateKey(keyStr)
		if err != nil {
			return nil, err
		}
		records[key] = domain.RehydrateDayRecord(
			morning != 0,
			night != 0,
			floss != 0,
			fromNullString(reflection),
		)
	}
	return records, rows.Err()
}

// Helper functions
func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func fromNullString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

func boolToInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func nullTimeString(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339), Valid: true}
}

func nullDateKeyString(k *domain.DateKey) sql.NullString {
	if k == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: k.String(), Valid: true}
}

func parseNullTime(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseNullDateKey(ns sql.NullString) (*domain.DateKey, error) {
	if !ns.Valid {
		return nil, nil
	}
	k, err := domain.ParseDateKey(ns.String)
	if err != nil {
		return nil, err
	}
	return &k, nil
}
