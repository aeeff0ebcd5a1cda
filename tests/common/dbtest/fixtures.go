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

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateSpots inserts CAR spots 1..cars and BIKE spots after them, all free.
func CreateSpots(t *testing.T, db DBLike, cars, bikes int) {
	t.Helper()

	ctx := context.Background()
	for i := 1; i <= cars+bikes; i++ {
		spotType := "CAR"
		if i > cars {
			spotType = "BIKE"
		}
		_, err := db.Exec(ctx, "INSERT INTO parking (parking_number, type, available) VALUES ($1, $2, true)", i, spotType)
		require.NoError(t, err)
	}
}

// CreateOpenTicket parks a vehicle directly in the database, occupying the spot.
func CreateOpenTicket(t *testing.T, db DBLike, spot int32, reg string, inTime time.Time) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx,
		"INSERT INTO ticket (parking_number, vehicle_reg_number, price, in_time) VALUES ($1, $2, 0, $3) RETURNING id",
		spot, reg, inTime).Scan(&id)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "UPDATE parking SET available = false WHERE parking_number = $1", spot)
	require.NoError(t, err)
	return id
}

func SpotAvailable(t *testing.T, db DBLike, spot int32) bool {
	t.Helper()

	var available bool
	err := db.QueryRow(context.Background(),
		"SELECT available FROM parking WHERE parking_number = $1", spot).Scan(&available)
	require.NoError(t, err)
	return available
}

func CountTickets(t *testing.T, db DBLike, reg string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM ticket WHERE vehicle_reg_number = $1", reg).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and restarts the ticket id sequence.
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
