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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a connection and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type BoothSeed struct {
	Venue      string
	Name       string
	Capacity   int
	HourlyRate string // NUMERIC, in major units
	OpensAt    string
	ClosesAt   string
	Available  bool
}

func DefaultBooth() BoothSeed {
	return BoothSeed{
		Venue:      "soho",
		Name:       "Booth 1",
		Capacity:   8,
		HourlyRate: "40.00",
		OpensAt:    "12:00",
		ClosesAt:   "02:00",
		Available:  true,
	}
}

func CreateTestBooth(t *testing.T, db DBLike, seed BoothSeed) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO booths (id, venue, name, capacity, hourly_rate, opens_at, closes_at, is_available)
		 VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8)`,
		id, seed.Venue, seed.Name, seed.Capacity, seed.HourlyRate, seed.OpensAt, seed.ClosesAt, seed.Available)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
