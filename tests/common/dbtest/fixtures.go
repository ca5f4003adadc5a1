//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Fixed hall IDs so e2e tests can address the seed catalog directly.
var (
	HallAuditoriumID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	HallMainID       = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	HallSeminarID    = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	HallRetiredID    = uuid.MustParse("44444444-4444-4444-4444-444444444444")
)

func CreateTestHall(t *testing.T, db DBLike, name string, capacity int, active bool) uuid.UUID {
	t.Helper()

	hallID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO halls (id, name, capacity, is_active) VALUES ($1, $2, $3, $4) ON CONFLICT (name) DO NOTHING",
		hallID, name, capacity, active)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM halls WHERE name = $1", name).Scan(&hallID)
	}

	return hallID
}

// inserts the hall catalog needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO halls (id, name, capacity, is_active) VALUES
		    ($1, 'Auditorium',   400, true),
		    ($2, 'Main Hall',    250, true),
		    ($3, 'Seminar Room',  40, true),
		    ($4, 'Old Annex',    120, false)
		ON CONFLICT (name) DO NOTHING;
	`, HallAuditoriumID, HallMainID, HallSeminarID, HallRetiredID)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
