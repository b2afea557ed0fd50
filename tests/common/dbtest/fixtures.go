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

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

// CreateTestUser inserts an active account without a location.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()
	return insertUser(t, db, email, role, nil, nil)
}

// CreateTestUserAt inserts an active account with profile coordinates.
func CreateTestUserAt(t *testing.T, db DBLike, email, role string, lat, lon float64) uuid.UUID {
	t.Helper()
	return insertUser(t, db, email, role, &lat, &lon)
}

func insertUser(t *testing.T, db DBLike, email, role string, lat, lon *float64) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	name := strings.Split(email, "@")[0]

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, role, name, phone, latitude, longitude, city, is_active)
		VALUES ($1, $2, $3, $4, $5, '9999999999', $6, $7, 'Bengaluru', true)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash, role, name, lat, lon)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, email string) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
}

// CreateTestDonation inserts an available donation of a single item.
func CreateTestDonation(t *testing.T, db DBLike, donorID uuid.UUID, itemName string, quantity float64, expiry time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	items := fmt.Sprintf(`[{"name": %q, "quantity": %g, "unit": "kg"}]`, itemName, quantity)
	_, err := db.Exec(context.Background(), `INSERT INTO donations (id, donor_id, items, meal_type, expiry_time, status)
		VALUES ($1, $2, $3::jsonb, 'lunch', $4, 'available')`,
		id, donorID, items, expiry)
	require.NoError(t, err)
	return id
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
